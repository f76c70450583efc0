package shooter

import "github.com/vovakirdan/arcade-shooter/internal/core"

// Bullet dimensions.
const (
	BulletW = 5
	BulletH = 15
)

// Bullet rises at a constant speed.
type Bullet struct {
	Rect  core.Rect
	Speed float64
	dead  bool
}

// NewBullet creates a bullet centred at (x, y).
func NewBullet(x, y, speed float64) *Bullet {
	return &Bullet{
		Rect:  core.RectAt(x, y, BulletW, BulletH),
		Speed: speed,
	}
}

// Update moves the bullet up and marks it dead once above the screen.
func (b *Bullet) Update() {
	b.Rect.Y -= b.Speed
	if b.Rect.Bottom() < 0 {
		b.dead = true
	}
}

// Dead reports whether the bullet is marked for removal.
func (b *Bullet) Dead() bool { return b.dead }
