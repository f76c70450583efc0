package shooter

import "github.com/vovakirdan/arcade-shooter/internal/core"

// explosionFrames are the radii of the explosion animation.
var explosionFrames = []float64{10, 20, 30, 25, 15, 5}

// explosionFrameTicks is the number of updates each frame is shown.
const explosionFrameTicks = 3

// Explosion is a short expanding and contracting burst.
type Explosion struct {
	Center core.Point
	frame  int
	ticks  int
	dead   bool
}

// NewExplosion starts an explosion at the given centre.
func NewExplosion(center core.Point) *Explosion {
	return &Explosion{Center: center}
}

// Update advances the animation; the explosion dies after its last frame.
func (x *Explosion) Update() {
	if x.dead {
		return
	}
	x.ticks++
	if x.ticks%explosionFrameTicks != 0 {
		return
	}
	x.frame++
	if x.frame >= len(explosionFrames) {
		x.frame = len(explosionFrames) - 1
		x.dead = true
	}
}

// Radius returns the radius of the current frame.
func (x *Explosion) Radius() float64 {
	return explosionFrames[x.frame]
}

// Frame returns the index of the current frame.
func (x *Explosion) Frame() int { return x.frame }

// Dead reports whether the animation has finished.
func (x *Explosion) Dead() bool { return x.dead }
