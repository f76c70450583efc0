package shooter

import (
	"math/rand"

	"github.com/vovakirdan/arcade-shooter/internal/core"
)

// Enemy dimensions and spawn band.
const (
	EnemyW = 40
	EnemyH = 30

	// Enemies spawn with their centre this far from the side walls.
	enemyMarginX = 20

	// Spawn band for the enemy centre, above the visible area.
	enemySpawnMinY = -100
	enemySpawnMaxY = -40
)

// Enemy falls straight down at a constant speed.
type Enemy struct {
	Rect  core.Rect
	Speed float64
	dead  bool
}

// SpawnEnemy creates an enemy at a random column above the top edge.
func SpawnEnemy(rng *rand.Rand, speed, screenW float64) *Enemy {
	maxX := int(screenW) - enemyMarginX
	if maxX < enemyMarginX {
		maxX = enemyMarginX
	}
	cx := randRange(rng, enemyMarginX, maxX)
	cy := randRange(rng, enemySpawnMinY, enemySpawnMaxY)

	return &Enemy{
		Rect:  core.RectAt(float64(cx), float64(cy), EnemyW, EnemyH),
		Speed: speed,
	}
}

// Update moves the enemy down and marks it dead once below the screen.
func (e *Enemy) Update(screenH float64) {
	e.Rect.Y += e.Speed
	if e.Rect.Y > screenH {
		e.dead = true
	}
}

// Dead reports whether the enemy is marked for removal.
func (e *Enemy) Dead() bool { return e.dead }

// randRange returns a uniform integer in [lo, hi].
func randRange(rng *rand.Rand, lo, hi int) int {
	return lo + rng.Intn(hi-lo+1)
}
