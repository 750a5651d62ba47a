// Package config loads workbench configuration from
// .evalboard/settings.yaml. A missing file is not an error: every accessor
// is safe on a nil *Settings and falls back to the built-in defaults, so the
// binary runs unconfigured.
package config

import (
	"fmt"
	"os"
	"path/filepath"

	"gopkg.in/yaml.v3"
)

// DefaultLogoPath is the branding logo used until one is configured.
const DefaultLogoPath = "logo.png"

// Settings holds workbench configuration from .evalboard/settings.yaml.
type Settings struct {
	Branding Branding `yaml:"branding"`
	Logging  Logging  `yaml:"logging"`
}

// Branding customizes the workbench appearance.
type Branding struct {
	// LogoPath points at a PNG replacing the default logo.
	LogoPath string `yaml:"logo_path"`
}

// Logging controls the file sink the TUI logs to. The terminal itself is
// owned by the interface, so logs never go to stderr while it runs.
type Logging struct {
	Path  string `yaml:"path"`
	Level string `yaml:"level"`
}

// Load reads .evalboard/settings.yaml relative to root.
// Returns nil (not an error) if the file does not exist.
func Load(root string) (*Settings, error) {
	path := filepath.Join(root, ".evalboard", "settings.yaml")
	data, err := os.ReadFile(path)
	if os.IsNotExist(err) {
		return nil, nil
	}
	if err != nil {
		return nil, fmt.Errorf("read %s: %w", path, err)
	}
	var s Settings
	if err := yaml.Unmarshal(data, &s); err != nil {
		return nil, fmt.Errorf("unmarshal %s: %w", path, err)
	}
	return &s, nil
}

// LogoPath returns the configured logo, or the default. Safe on a nil
// receiver.
func (s *Settings) LogoPath() string {
	if s == nil || s.Branding.LogoPath == "" {
		return DefaultLogoPath
	}
	return s.Branding.LogoPath
}

// LogPath returns the log file location, or the default under .evalboard.
// Safe on a nil receiver.
func (s *Settings) LogPath() string {
	if s == nil || s.Logging.Path == "" {
		return filepath.Join(".evalboard", "evalboard.log")
	}
	return s.Logging.Path
}

// LogLevel returns the configured level name, or "info". Safe on a nil
// receiver.
func (s *Settings) LogLevel() string {
	if s == nil || s.Logging.Level == "" {
		return "info"
	}
	return s.Logging.Level
}

// APIKey returns the Gemini credential from the environment. GEMINI_API_KEY
// wins; API_KEY is accepted for compatibility with older deployments. Keys
// are never read from the settings file.
func APIKey() string {
	if k := os.Getenv("GEMINI_API_KEY"); k != "" {
		return k
	}
	return os.Getenv("API_KEY")
}
