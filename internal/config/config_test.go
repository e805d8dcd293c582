package config

import (
	"os"
	"path/filepath"
	"testing"
	"time"
	"volby-scraper/internal/validate"

	"github.com/stretchr/testify/require"
)

func TestLoadDefaults(t *testing.T) {
	cfg, err := Load(filepath.Join(t.TempDir(), DefaultPath))
	require.NoError(t, err)
	require.Equal(t, validate.LinkPrefix, cfg.LinkPrefix)
	require.Equal(t, time.Duration(0), cfg.Timeout())
}

func TestLoadOverrides(t *testing.T) {
	path := filepath.Join(t.TempDir(), DefaultPath)
	err := os.WriteFile(path, []byte(`{
		user_agent: "tester",
		timeout_seconds: 12,
	}`), 0600)
	require.NoError(t, err)

	cfg, err := Load(path)
	require.NoError(t, err)
	require.Equal(t, "tester", cfg.UserAgent)
	require.Equal(t, 12*time.Second, cfg.Timeout())
	require.Equal(t, validate.LinkPrefix, cfg.LinkPrefix)
}
