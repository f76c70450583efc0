package config

import "math"

// Spawn cadence and difficulty steps.
const (
	SpawnThreshold  = 60.0 // Accumulator value that triggers one enemy spawn
	SpawnRateStep   = 0.5  // Added to the spawn increment per SpawnRateScore points
	SpawnRateScore  = 500  // Score interval for spawn rate increases
	EnemySpeedStep  = 1.0  // Added to enemy speed per EnemySpeedScore points
	EnemySpeedScore = 1000 // Score interval for enemy speed increases
)

// Difficulty derives score-dependent spawn parameters from the settings.
// It is stateless; the game owns the accumulator.
type Difficulty struct {
	baseSpawnRate  float64
	baseEnemySpeed float64
}

// NewDifficulty creates a difficulty calculator for the given settings.
func NewDifficulty(s Settings) *Difficulty {
	return &Difficulty{
		baseSpawnRate:  s.EnemySpawnRate,
		baseEnemySpeed: s.EnemySpeed,
	}
}

// SpawnIncrement returns how much the spawn accumulator grows per tick at score:
// enemy_spawn_rate + floor(score/500) * 0.5.
func (d *Difficulty) SpawnIncrement(score int) float64 {
	steps := math.Floor(float64(score) / SpawnRateScore)
	return d.baseSpawnRate + steps*SpawnRateStep
}

// EnemySpeed returns the fall speed of an enemy spawned at score:
// enemy_speed + floor(score/1000).
func (d *Difficulty) EnemySpeed(score int) float64 {
	steps := math.Floor(float64(score) / EnemySpeedScore)
	return d.baseEnemySpeed + steps*EnemySpeedStep
}
