package config

import (
	"time"
	"volby-scraper/internal/validate"
	"volby-scraper/lib/configutil"
)

const DefaultPath = "volby.json5"

type Config struct {
	// the prefix every region link has to start with
	LinkPrefix string `json:"link_prefix"`
	UserAgent  string `json:"user_agent"`
	// 0 means no timeout
	TimeoutSeconds int `json:"timeout_seconds"`
	// only used when --db points at a libsql server
	DbAuthToken string `json:"db_auth_token"`
}

func Default() Config {
	return Config{
		LinkPrefix: validate.LinkPrefix,
		UserAgent:  "volby-scraper/1.0",
	}
}

func (c Config) Timeout() time.Duration {
	return time.Duration(c.TimeoutSeconds) * time.Second
}

// Load reads the config at `path` (and its .local override), missing values
// fall back to Default().
func Load(path string) (Config, error) {
	return configutil.ReadConfigWithDefaults(path, Default())
}
