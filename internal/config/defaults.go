package config

import (
	_ "embed"
)

// defaultShooterYAML is written verbatim to the settings path on first run or
// when the existing document cannot be parsed.
//
//go:embed defaults/shooter.yaml
var defaultShooterYAML []byte

// DefaultYAML returns the embedded default settings document.
func DefaultYAML() []byte {
	out := make([]byte, len(defaultShooterYAML))
	copy(out, defaultShooterYAML)
	return out
}
