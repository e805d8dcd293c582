package commands

import (
	"context"
	"errors"
	"fmt"
	"io"
	"os"
	"volby-scraper/internal/config"
	"volby-scraper/internal/scrapers/volby"
	"volby-scraper/internal/validate"

	"github.com/spf13/cobra"
)

const (
	messageRequestFailed = "Requested website responded with error message. " +
		"Please check provided URL and your internet connection."
	messageWrongUrl = "Something is wrong with your URL. Please check if it is correct."
)

type options struct {
	configPath string
	xlsxPath   string
	dbTarget   string
	dumpDir    string
	runID      int64
	table      bool
	verbose    bool

	stdout io.Writer
	stderr io.Writer
}

func newRootCmd(opts *options) *cobra.Command {
	cmd := &cobra.Command{
		Use:   "volby-scraper <region link> <results_*.csv>",
		Short: "volby-scraper writes the 2017 Czech parliamentary election results of a region to a CSV file.",
		Long: `volby-scraper fetches a region page of https://www.volby.cz/pls/ps2017nss,
then every municipality linked from it, and writes one semicolon separated row
per municipality (code, location, registered, envelopes, valid and the votes of
every party).

Example:
  volby-scraper 'https://www.volby.cz/pls/ps2017nss/ps32?xjazyk=CZ&xkraj=2&xnumnuts=2101' results_benesov.csv`,
		Args:          cobra.ExactArgs(2),
		SilenceErrors: true,
		SilenceUsage:  true,
		RunE: func(cmd *cobra.Command, args []string) error {
			return run(cmd.Context(), *opts, args[0], args[1])
		},
	}

	persistent := cmd.PersistentFlags()
	persistent.StringVar(&opts.configPath, "config", config.DefaultPath, "The json5 config file, a missing file means defaults.")
	persistent.BoolVarP(&opts.verbose, "verbose", "v", false, "Log debug information.")

	flags := cmd.Flags()
	flags.StringVar(&opts.xlsxPath, "xlsx", "", "Also write the results to this workbook.")
	flags.StringVar(&opts.dbTarget, "db", "", "Also store the run in this sqlite file or libsql url.")
	flags.StringVar(&opts.dumpDir, "dump-http", "", "Write every HTTP response to this directory.")
	flags.BoolVar(&opts.table, "table", false, "Print a summary table when done.")

	cmd.AddCommand(newExportCmd(opts))

	return cmd
}

// userMessage maps the errors a user can cause to the message they are shown.
func userMessage(err error) (string, bool) {
	if errors.Is(err, validate.ErrInvalidLink) || errors.Is(err, validate.ErrInvalidFilename) {
		return err.Error(), true
	}
	if errors.Is(err, volby.ErrNoMunicipalities) {
		return messageWrongUrl, true
	}
	if errors.Is(err, errRegionRequestFailed) {
		return messageRequestFailed, true
	}
	return "", false
}

func execute(ctx context.Context, args []string, stdout, stderr io.Writer) int {
	opts := &options{stdout: stdout, stderr: stderr}
	cmd := newRootCmd(opts)
	cmd.SetArgs(args)
	cmd.SetOut(stdout)
	cmd.SetErr(stderr)

	err := cmd.ExecuteContext(ctx)
	if err == nil {
		return 0
	}

	if message, ok := userMessage(err); ok {
		fmt.Fprintln(stdout, message)
		return 1
	}
	fmt.Fprintln(stderr, "Error:", err)
	return 1
}

// Execute runs the command with the process arguments and returns the exit code.
func Execute(ctx context.Context) int {
	return execute(ctx, os.Args[1:], os.Stdout, os.Stderr)
}
