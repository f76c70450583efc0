package shooter

// mortal is implemented by every entity that can be marked for removal.
type mortal interface {
	Dead() bool
}

// compact drops dead entries in place, keeping order.
func compact[T mortal](items []T) []T {
	out := items[:0]
	for _, it := range items {
		if !it.Dead() {
			out = append(out, it)
		}
	}
	clear(items[len(out):])
	return out
}

// world holds one collection per entity type.
type world struct {
	player     *Player
	enemies    []*Enemy
	bullets    []*Bullet
	explosions []*Explosion
	powerUps   []*PowerUp
}

// reset empties every collection.
func (w *world) reset() {
	w.player = nil
	w.enemies = w.enemies[:0]
	w.bullets = w.bullets[:0]
	w.explosions = w.explosions[:0]
	w.powerUps = w.powerUps[:0]
}

// update advances every entity by one tick.
func (w *world) update(left, right bool, screenH float64) {
	if w.player != nil {
		w.player.Update(left, right)
	}
	for _, e := range w.enemies {
		e.Update(screenH)
	}
	for _, b := range w.bullets {
		b.Update()
	}
	for _, x := range w.explosions {
		x.Update()
	}
	for _, p := range w.powerUps {
		p.Update(screenH)
	}
}

// sweep removes everything marked dead.
func (w *world) sweep() {
	w.enemies = compact(w.enemies)
	w.bullets = compact(w.bullets)
	w.explosions = compact(w.explosions)
	w.powerUps = compact(w.powerUps)
}
