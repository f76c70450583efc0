package shooter

import "github.com/vovakirdan/arcade-shooter/internal/core"

// Player ship dimensions and firing constants (world pixels / ticks).
const (
	PlayerW = 50
	PlayerH = 40

	// playerBottomOffset is the distance from the ship centre to the bottom edge.
	playerBottomOffset = 50

	// ShootCooldown is the number of ticks between shots.
	ShootCooldown = 5

	// Side bullets of a triple shot are offset this far sideways and this far down.
	tripleSpread = 20
	tripleDrop   = 5
)

// Player is the ship controlled by the user.
type Player struct {
	Rect         core.Rect
	Speed        float64
	PowerUpTimer int // >0 enables triple shot
	ShootDelay   int // >0 blocks firing

	screenW float64
}

// NewPlayer places a ship centred horizontally near the bottom of the world.
func NewPlayer(speed, screenW, screenH float64) *Player {
	return &Player{
		Rect:    core.RectAt(screenW/2, screenH-playerBottomOffset, PlayerW, PlayerH),
		Speed:   speed,
		screenW: screenW,
	}
}

// Update moves the ship while a direction is held and ticks both timers down.
func (p *Player) Update(left, right bool) {
	if left {
		p.Rect.X -= p.Speed
	}
	if right {
		p.Rect.X += p.Speed
	}
	p.Rect.X = core.ClampF(p.Rect.X, 0, p.screenW-p.Rect.W)

	if p.PowerUpTimer > 0 {
		p.PowerUpTimer--
	}
	if p.ShootDelay > 0 {
		p.ShootDelay--
	}
}

// Shoot fires one bullet, or three while powered up. It returns false and no
// bullets while the cooldown is running.
func (p *Player) Shoot(bulletSpeed float64) ([]*Bullet, bool) {
	if p.ShootDelay > 0 {
		return nil, false
	}
	p.ShootDelay = ShootCooldown

	cx := p.Rect.Center().X
	top := p.Rect.Y

	if p.PowerUpTimer > 0 {
		return []*Bullet{
			NewBullet(cx, top, bulletSpeed),
			NewBullet(cx-tripleSpread, top+tripleDrop, bulletSpeed),
			NewBullet(cx+tripleSpread, top+tripleDrop, bulletSpeed),
		}, true
	}
	return []*Bullet{NewBullet(cx, top, bulletSpeed)}, true
}

// ActivatePowerUp enables triple shot for duration ticks.
func (p *Player) ActivatePowerUp(duration int) {
	p.PowerUpTimer = duration
}

// PoweredUp reports whether triple shot is active.
func (p *Player) PoweredUp() bool {
	return p.PowerUpTimer > 0
}

// Hull returns the ship outline: a triangle pointing up.
func (p *Player) Hull() []core.Point {
	r := p.Rect
	return []core.Point{
		{X: r.X, Y: r.Bottom()},
		{X: r.X + r.W/2, Y: r.Y},
		{X: r.Right(), Y: r.Bottom()},
	}
}
