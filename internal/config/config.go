package config

import (
	"fmt"
	"os"
	"path/filepath"
	"runtime"
	"strings"

	"github.com/knadh/koanf/parsers/yaml"
	"github.com/knadh/koanf/providers/env"
	"github.com/knadh/koanf/providers/rawbytes"
	"github.com/knadh/koanf/v2"
)

// envPrefix is stripped from environment variables before they are mapped
// onto config keys, e.g. STDGUARD_REPORTS_DIR -> reports_dir.
const envPrefix = "STDGUARD_"

// Config holds the settings shared by the backend and the extraction tool.
type Config struct {
	Provider    string `koanf:"provider"`
	OpenAIModel string `koanf:"openai_model"`
	GeminiModel string `koanf:"gemini_model"`

	RulesFile  string `koanf:"rules_file"`
	ReportsDir string `koanf:"reports_dir"`
	GuideDir   string `koanf:"guide_dir"`

	Host string `koanf:"host"`
	Port int    `koanf:"port"`

	RepoPath  string `koanf:"repo_path"`
	GitRemote string `koanf:"git_remote"`
	GitBranch string `koanf:"git_branch"`
}

// Default returns a Config with all defaults applied.
func Default() Config {
	return Config{
		Provider:    "gemini",
		OpenAIModel: "gpt-4o",
		GeminiModel: "gemini-2.0-flash",
		RulesFile:   "extracted_rules.json",
		ReportsDir:  "reports",
		GuideDir:    "rules_guide",
		Host:        "0.0.0.0",
		Port:        5000,
		RepoPath:    ".",
		GitRemote:   "origin",
	}
}

// Model returns the model name for the configured provider.
func (c Config) Model() string {
	switch c.Provider {
	case "openai":
		return c.OpenAIModel
	default:
		return c.GeminiModel
	}
}

// Addr returns the host:port the backend listens on.
func (c Config) Addr() string {
	return fmt.Sprintf("%s:%d", c.Host, c.Port)
}

// ConfigDir returns the platform-appropriate config directory.
func ConfigDir() (string, error) {
	if xdg := os.Getenv("XDG_CONFIG_HOME"); xdg != "" {
		return filepath.Join(xdg, "stdguard"), nil
	}
	home, err := os.UserHomeDir()
	if err != nil {
		return "", fmt.Errorf("cannot determine home directory: %w", err)
	}
	switch runtime.GOOS {
	case "darwin":
		return filepath.Join(home, "Library", "Application Support", "stdguard"), nil
	case "windows":
		if appData := os.Getenv("APPDATA"); appData != "" {
			return filepath.Join(appData, "stdguard"), nil
		}
		return filepath.Join(home, "AppData", "Roaming", "stdguard"), nil
	default:
		return filepath.Join(home, ".config", "stdguard"), nil
	}
}

// ConfigPath returns the full path to the config file.
func ConfigPath() (string, error) {
	dir, err := ConfigDir()
	if err != nil {
		return "", err
	}
	return filepath.Join(dir, "config.yaml"), nil
}

// Load builds the effective config by merging: defaults <- file <- env.
// An empty path means the default config location; a missing file there is
// not an error, while a path given explicitly must exist.
func Load(path string) (Config, error) {
	cfg := Default()

	explicit := path != ""
	if !explicit {
		p, err := ConfigPath()
		if err != nil {
			return Config{}, err
		}
		path = p
	}

	k := koanf.New(".")

	data, err := os.ReadFile(path)
	switch {
	case err == nil:
		if err := k.Load(rawbytes.Provider(data), yaml.Parser()); err != nil {
			return Config{}, fmt.Errorf("parsing config file %s: %w", path, err)
		}
	case os.IsNotExist(err) && !explicit:
		// No config file is fine; defaults and env apply.
	default:
		return Config{}, fmt.Errorf("reading config file: %w", err)
	}

	if err := k.Load(env.Provider(envPrefix, ".", func(s string) string {
		return strings.ToLower(strings.TrimPrefix(s, envPrefix))
	}), nil); err != nil {
		return Config{}, fmt.Errorf("loading environment: %w", err)
	}

	if err := k.Unmarshal("", &cfg); err != nil {
		return Config{}, fmt.Errorf("unmarshaling config: %w", err)
	}
	return cfg, nil
}
