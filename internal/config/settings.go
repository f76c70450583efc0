// Package config provides YAML-based game configuration loading and
// difficulty scaling for the shooter.
package config

import (
	"fmt"
	"math"
)

// Setting keys as they appear in the persisted store.
const (
	KeyPlayerSpeed     = "player_speed"
	KeyPlayerLives     = "player_lives"
	KeyEnemySpeed      = "enemy_speed"
	KeyEnemySpawnRate  = "enemy_spawn_rate"
	KeyBulletSpeed     = "bullet_speed"
	KeyPowerUpChance   = "powerup_chance"
	KeyPowerUpDuration = "powerup_duration"
)

// keys lists every setting in document order.
var keys = []string{
	KeyPlayerSpeed,
	KeyPlayerLives,
	KeyEnemySpeed,
	KeyEnemySpawnRate,
	KeyBulletSpeed,
	KeyPowerUpChance,
	KeyPowerUpDuration,
}

// Settings contains the tuning parameters of the shooter.
// All values are numeric; rates may be fractional.
type Settings struct {
	PlayerSpeed     float64 `yaml:"player_speed"`
	PlayerLives     float64 `yaml:"player_lives"`
	EnemySpeed      float64 `yaml:"enemy_speed"`
	EnemySpawnRate  float64 `yaml:"enemy_spawn_rate"`
	BulletSpeed     float64 `yaml:"bullet_speed"`
	PowerUpChance   float64 `yaml:"powerup_chance"`   // Percentage (0-100) per destroyed enemy
	PowerUpDuration float64 `yaml:"powerup_duration"` // Ticks of triple shot
}

// DefaultSettings returns the default shooter configuration.
func DefaultSettings() Settings {
	return Settings{
		PlayerSpeed:     5,
		PlayerLives:     3,
		EnemySpeed:      2,
		EnemySpawnRate:  1.0,
		BulletSpeed:     10,
		PowerUpChance:   15,
		PowerUpDuration: 300,
	}
}

// Keys returns every setting key in document order.
func Keys() []string {
	out := make([]string, len(keys))
	copy(out, keys)
	return out
}

// field returns a pointer to the value stored under key, or nil if unknown.
func (s *Settings) field(key string) *float64 {
	switch key {
	case KeyPlayerSpeed:
		return &s.PlayerSpeed
	case KeyPlayerLives:
		return &s.PlayerLives
	case KeyEnemySpeed:
		return &s.EnemySpeed
	case KeyEnemySpawnRate:
		return &s.EnemySpawnRate
	case KeyBulletSpeed:
		return &s.BulletSpeed
	case KeyPowerUpChance:
		return &s.PowerUpChance
	case KeyPowerUpDuration:
		return &s.PowerUpDuration
	default:
		return nil
	}
}

// Get returns the value stored under key.
func (s Settings) Get(key string) (float64, bool) {
	p := s.field(key)
	if p == nil {
		return 0, false
	}
	return *p, true
}

// Set validates and stores a value under key.
func (s *Settings) Set(key string, value float64) error {
	p := s.field(key)
	if p == nil {
		return fmt.Errorf("config: unknown setting %q", key)
	}
	if !ValidValue(key, value) {
		return fmt.Errorf("config: invalid value %v for %s", value, key)
	}
	*p = value
	return nil
}

// ValidValue reports whether value is acceptable for key.
// Every setting must be a finite positive number, except powerup_chance which
// may be zero (no drops) and is capped at 100.
func ValidValue(key string, value float64) bool {
	if math.IsNaN(value) || math.IsInf(value, 0) {
		return false
	}
	if key == KeyPowerUpChance {
		return value >= 0 && value <= 100
	}
	return value > 0
}
