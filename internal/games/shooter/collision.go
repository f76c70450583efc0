package shooter

// Points awarded for each destroyed enemy.
const EnemyScore = 10

// resolveCollisions runs the three collision passes. Entities are only marked;
// the caller compacts the collections afterwards.
func (g *Game) resolveCollisions() {
	g.collideBulletsEnemies()
	g.collidePlayerEnemies()
	g.collidePlayerPowerUps()
}

// collideBulletsEnemies removes every overlapping bullet/enemy pair. Bullets
// are visited in order and a bullet takes out every live enemy it touches.
func (g *Game) collideBulletsEnemies() {
	for _, b := range g.bullets {
		if b.dead {
			continue
		}
		for _, e := range g.enemies {
			if e.dead || !b.Rect.Intersects(e.Rect) {
				continue
			}
			b.dead = true
			e.dead = true

			g.score += EnemyScore
			center := e.Rect.Center()
			g.explosions = append(g.explosions, NewExplosion(center))
			g.sound.Play(SoundExplosion)

			if g.rng.Float64()*100 < g.settings.PowerUpChance {
				g.powerUps = append(g.powerUps, NewPowerUp(center))
			}
		}
	}
}

// collidePlayerEnemies costs one life per enemy touching the ship.
func (g *Game) collidePlayerEnemies() {
	p := g.player
	if p == nil {
		return
	}
	for _, e := range g.enemies {
		if e.dead || !p.Rect.Intersects(e.Rect) {
			continue
		}
		e.dead = true
		g.lives--
		g.sound.Play(SoundPlayerHit)
		g.explosions = append(g.explosions, NewExplosion(p.Rect.Center()))
	}
}

// collidePlayerPowerUps consumes every power-up touching the ship.
func (g *Game) collidePlayerPowerUps() {
	p := g.player
	if p == nil {
		return
	}
	for _, pu := range g.powerUps {
		if pu.dead || !p.Rect.Intersects(pu.Rect) {
			continue
		}
		pu.dead = true
		p.ActivatePowerUp(g.powerUpDuration)
	}
}
