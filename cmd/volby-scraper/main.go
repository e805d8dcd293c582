package main

import (
	"context"
	"os"
	"volby-scraper/cmd/volby-scraper/commands"
	"volby-scraper/lib/osutil"
)

func main() {
	ctx, stop := osutil.SignalContext(context.Background())
	code := commands.Execute(ctx)
	stop()
	os.Exit(code)
}
