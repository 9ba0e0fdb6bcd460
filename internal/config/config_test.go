package config

import (
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func writeConfig(t *testing.T, content string) string {
	t.Helper()
	path := filepath.Join(t.TempDir(), "config.yaml")
	require.NoError(t, os.WriteFile(path, []byte(content), 0644))
	return path
}

func TestLoad_AppliesDefaults(t *testing.T) {
	path := writeConfig(t, "server:\n  port: 9090\n")

	cfg, err := Load(path)
	require.NoError(t, err)

	assert.Equal(t, 9090, cfg.Server.Port)
	assert.Equal(t, "0.0.0.0", cfg.Server.Host)
	assert.Equal(t, "data/invoiceflow.db", cfg.Database.Path)
	assert.Equal(t, uint64(1), cfg.Demo.Seed)
	assert.Equal(t, 150, cfg.Demo.Invoices)
	assert.Equal(t, "generated_reports", cfg.Report.OutputDir)
}

func TestLoad_OverridesFromFile(t *testing.T) {
	path := writeConfig(t, `
demo:
  seed: 99
  invoices: 25
  vendors: 5
logger:
  level: debug
`)

	cfg, err := Load(path)
	require.NoError(t, err)

	assert.Equal(t, uint64(99), cfg.Demo.Seed)
	assert.Equal(t, 25, cfg.Demo.Invoices)
	assert.Equal(t, 5, cfg.Demo.Vendors)
	assert.Equal(t, "debug", cfg.Logger.Level)
}

func TestLoad_MissingFile(t *testing.T) {
	_, err := Load(filepath.Join(t.TempDir(), "absent.yaml"))
	assert.Error(t, err)
}

func TestValidate_RejectsNegativeCounts(t *testing.T) {
	path := writeConfig(t, "demo:\n  invoices: -1\n")

	_, err := Load(path)
	assert.ErrorContains(t, err, "demo record counts")
}

func TestValidate_RejectsBadPort(t *testing.T) {
	path := writeConfig(t, "server:\n  port: -4\n")

	_, err := Load(path)
	assert.ErrorContains(t, err, "server.port")
}
