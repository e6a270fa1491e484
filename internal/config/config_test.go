package config

import (
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestDefault(t *testing.T) {
	cfg := Default()
	assert.Equal(t, "gemini", cfg.Provider)
	assert.Equal(t, "gpt-4o", cfg.OpenAIModel)
	assert.Equal(t, "gemini-2.0-flash", cfg.GeminiModel)
	assert.Equal(t, "extracted_rules.json", cfg.RulesFile)
	assert.Equal(t, "reports", cfg.ReportsDir)
	assert.Equal(t, "rules_guide", cfg.GuideDir)
	assert.Equal(t, "0.0.0.0:5000", cfg.Addr())
	assert.Equal(t, ".", cfg.RepoPath)
	assert.Equal(t, "origin", cfg.GitRemote)
}

func TestModel(t *testing.T) {
	cfg := Default()
	assert.Equal(t, "gemini-2.0-flash", cfg.Model())

	cfg.Provider = "openai"
	assert.Equal(t, "gpt-4o", cfg.Model())
}

func TestLoadDefaultsWhenNoFile(t *testing.T) {
	t.Setenv("XDG_CONFIG_HOME", t.TempDir())

	cfg, err := Load("")
	require.NoError(t, err)
	assert.Equal(t, Default(), cfg)
}

func TestLoadFile(t *testing.T) {
	dir := t.TempDir()
	path := filepath.Join(dir, "config.yaml")
	require.NoError(t, os.WriteFile(path, []byte("provider: openai\nport: 8080\nguide_dir: /srv/guides\n"), 0o644))

	cfg, err := Load(path)
	require.NoError(t, err)
	assert.Equal(t, "openai", cfg.Provider)
	assert.Equal(t, 8080, cfg.Port)
	assert.Equal(t, "/srv/guides", cfg.GuideDir)
	// Untouched keys keep their defaults.
	assert.Equal(t, "reports", cfg.ReportsDir)
}

func TestLoadExplicitMissingFile(t *testing.T) {
	_, err := Load(filepath.Join(t.TempDir(), "nope.yaml"))
	assert.Error(t, err)
}

func TestLoadEnvOverridesFile(t *testing.T) {
	dir := t.TempDir()
	path := filepath.Join(dir, "config.yaml")
	require.NoError(t, os.WriteFile(path, []byte("provider: openai\n"), 0o644))

	t.Setenv("STDGUARD_PROVIDER", "gemini")
	t.Setenv("STDGUARD_REPORTS_DIR", "/var/reports")
	t.Setenv("STDGUARD_PORT", "9999")

	cfg, err := Load(path)
	require.NoError(t, err)
	assert.Equal(t, "gemini", cfg.Provider)
	assert.Equal(t, "/var/reports", cfg.ReportsDir)
	assert.Equal(t, 9999, cfg.Port)
}

func TestLoadMalformedFile(t *testing.T) {
	path := filepath.Join(t.TempDir(), "config.yaml")
	require.NoError(t, os.WriteFile(path, []byte("provider: [unclosed"), 0o644))

	_, err := Load(path)
	assert.Error(t, err)
}

func TestConfigDirXDG(t *testing.T) {
	t.Setenv("XDG_CONFIG_HOME", "/tmp/xdg-test")

	dir, err := ConfigDir()
	require.NoError(t, err)
	assert.Equal(t, "/tmp/xdg-test/stdguard", dir)

	path, err := ConfigPath()
	require.NoError(t, err)
	assert.Equal(t, "/tmp/xdg-test/stdguard/config.yaml", path)
}
