package config

import (
	"errors"
	"fmt"
	"os"
	"path/filepath"
	"strings"

	"github.com/charmbracelet/log"
	"gopkg.in/yaml.v3"
)

// DefaultSettingsPath is where settings live unless --config overrides it.
const DefaultSettingsPath = "~/.arcade/shooter.yaml"

// errMalformed marks a document that parsed but does not have the expected shape.
var errMalformed = errors.New("config: malformed settings document")

// ResolvePath expands a leading ~ to the user's home directory.
// An empty path resolves to DefaultSettingsPath.
func ResolvePath(path string) string {
	if path == "" {
		path = DefaultSettingsPath
	}
	if strings.HasPrefix(path, "~") {
		home, err := os.UserHomeDir()
		if err != nil {
			return path
		}
		path = filepath.Join(home, path[1:])
	}
	return path
}

// LoadSettings reads the settings document at path.
//
// If the document is missing, unreadable or malformed, the embedded defaults are
// written to path verbatim and returned. If it parses but some keys are missing or
// out of range, the defaults for those keys are substituted and the merged document
// is written back. LoadSettings never fails; write errors are logged.
func LoadSettings(path string, logger *log.Logger) Settings {
	if logger == nil {
		logger = log.Default()
	}
	path = ResolvePath(path)

	data, err := os.ReadFile(path)
	if err != nil {
		if !errors.Is(err, os.ErrNotExist) {
			logger.Warn("cannot read settings, using defaults", "path", path, "error", err)
		} else {
			logger.Info("no settings found, writing defaults", "path", path)
		}
		return writeDefaults(path, logger)
	}

	settings, filled, err := parseSettings(data)
	if err != nil {
		logger.Warn("malformed settings, restoring defaults", "path", path, "error", err)
		return writeDefaults(path, logger)
	}

	if len(filled) > 0 {
		logger.Info("filled missing settings with defaults", "path", path, "keys", strings.Join(filled, ","))
		if err := SaveSettings(path, settings); err != nil {
			logger.Warn("cannot write settings", "path", path, "error", err)
		}
	}

	return settings
}

// parseSettings decodes a document and merges it over the defaults.
// Returns the keys that were taken from the defaults.
func parseSettings(data []byte) (Settings, []string, error) {
	var raw map[string]any
	if err := yaml.Unmarshal(data, &raw); err != nil {
		return Settings{}, nil, fmt.Errorf("config: cannot parse settings: %w", err)
	}

	defaults := DefaultSettings()
	settings := defaults
	var filled []string

	for _, key := range keys {
		v, ok := raw[key]
		if !ok || v == nil {
			filled = append(filled, key)
			continue
		}

		num, ok := toFloat(v)
		if !ok {
			return Settings{}, nil, fmt.Errorf("%w: %s is not a number", errMalformed, key)
		}

		if !ValidValue(key, num) {
			filled = append(filled, key)
			continue
		}

		*settings.field(key) = num
	}

	return settings, filled, nil
}

// toFloat converts a decoded YAML scalar to float64.
func toFloat(v any) (float64, bool) {
	switch n := v.(type) {
	case int:
		return float64(n), true
	case int64:
		return float64(n), true
	case uint64:
		return float64(n), true
	case float64:
		return n, true
	default:
		return 0, false
	}
}

// writeDefaults persists the embedded default document and returns the defaults.
func writeDefaults(path string, logger *log.Logger) Settings {
	if err := writeFile(path, defaultShooterYAML); err != nil {
		logger.Warn("cannot write default settings", "path", path, "error", err)
	}

	var cfg Settings
	if err := yaml.Unmarshal(defaultShooterYAML, &cfg); err != nil {
		return DefaultSettings() // Fallback to hardcoded if embed fails
	}
	return cfg
}

// SaveSettings writes settings to path as YAML.
func SaveSettings(path string, s Settings) error {
	path = ResolvePath(path)

	data, err := yaml.Marshal(s)
	if err != nil {
		return fmt.Errorf("config: cannot encode settings: %w", err)
	}

	return writeFile(path, data)
}

// ResetSettings overwrites path with the embedded default document.
func ResetSettings(path string) error {
	return writeFile(ResolvePath(path), defaultShooterYAML)
}

// writeFile writes data to path, creating parent directories.
func writeFile(path string, data []byte) error {
	if dir := filepath.Dir(path); dir != "" {
		if err := os.MkdirAll(dir, 0o755); err != nil {
			return fmt.Errorf("config: cannot create directory %s: %w", dir, err)
		}
	}

	if err := os.WriteFile(path, data, 0o644); err != nil {
		return fmt.Errorf("config: cannot write %s: %w", path, err)
	}
	return nil
}
