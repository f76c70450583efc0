package shooter

import "github.com/vovakirdan/arcade-shooter/internal/core"

// Power-up dimensions and fall speed.
const (
	PowerUpSize  = 25
	PowerUpSpeed = 2
)

// PowerUp drifts down; catching it enables triple shot.
type PowerUp struct {
	Rect core.Rect
	dead bool
}

// NewPowerUp creates a power-up centred at the given point.
func NewPowerUp(center core.Point) *PowerUp {
	return &PowerUp{Rect: core.RectAt(center.X, center.Y, PowerUpSize, PowerUpSize)}
}

// Update moves the power-up down and marks it dead once below the screen.
func (p *PowerUp) Update(screenH float64) {
	p.Rect.Y += PowerUpSpeed
	if p.Rect.Y > screenH {
		p.dead = true
	}
}

// Dead reports whether the power-up is marked for removal.
func (p *PowerUp) Dead() bool { return p.dead }
