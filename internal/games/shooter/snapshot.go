package shooter

import "math"

// Snapshot contains the complete game state for determinism checks.
// Uses primitive types only for stable comparison.
type Snapshot struct {
	Tick       uint64
	Phase      int
	Paused     bool
	Score      int
	Lives      int
	SpawnAccum float64

	// Player state (zero when no session is running)
	PlayerX      float64
	PowerUpTimer int
	ShootDelay   int

	// Entity positions, flattened as (x, y) pairs
	Enemies    []float64
	Bullets    []float64
	PowerUps   []float64
	Explosions []float64 // (x, y, radius) triples
}

// Snapshot returns the current game state as a Snapshot.
func (g *Game) Snapshot() Snapshot {
	snap := Snapshot{
		Tick:       uint64(g.tickCount), //#nosec G115 -- tick count is always positive
		Phase:      int(g.phase),
		Paused:     g.paused,
		Score:      g.score,
		Lives:      g.lives,
		SpawnAccum: g.spawnAccum,
	}

	if g.player != nil {
		snap.PlayerX = g.player.Rect.X
		snap.PowerUpTimer = g.player.PowerUpTimer
		snap.ShootDelay = g.player.ShootDelay
	}

	for _, e := range g.enemies {
		snap.Enemies = append(snap.Enemies, e.Rect.X, e.Rect.Y)
	}
	for _, b := range g.bullets {
		snap.Bullets = append(snap.Bullets, b.Rect.X, b.Rect.Y)
	}
	for _, p := range g.powerUps {
		snap.PowerUps = append(snap.PowerUps, p.Rect.X, p.Rect.Y)
	}
	for _, x := range g.explosions {
		snap.Explosions = append(snap.Explosions, x.Center.X, x.Center.Y, x.Radius())
	}

	return snap
}

// Hash returns a simple hash of the snapshot for determinism testing.
func (snap *Snapshot) Hash() uint64 {
	h := snap.Tick
	h = h*31 + uint64(snap.Phase) //#nosec G115 -- hash computation
	if snap.Paused {
		h = h*31 + 1
	}
	h = h*31 + uint64(snap.Score) //#nosec G115 -- hash computation
	h = h*31 + uint64(snap.Lives) //#nosec G115 -- hash computation
	h = h*31 + math.Float64bits(snap.SpawnAccum)
	h = h*31 + math.Float64bits(snap.PlayerX)
	h = h*31 + uint64(snap.PowerUpTimer) //#nosec G115 -- hash computation
	h = h*31 + uint64(snap.ShootDelay)   //#nosec G115 -- hash computation

	for _, group := range [][]float64{snap.Enemies, snap.Bullets, snap.PowerUps, snap.Explosions} {
		h = h*31 + uint64(len(group))
		for _, v := range group {
			h = h*31 + math.Float64bits(v)
		}
	}

	return h
}
