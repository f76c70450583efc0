package shooter

import (
	"testing"

	"go.uber.org/mock/gomock"
	"pgregory.net/rapid"

	"github.com/vovakirdan/arcade-shooter/internal/config"
	"github.com/vovakirdan/arcade-shooter/internal/core"
	"github.com/vovakirdan/arcade-shooter/internal/games/shooter/mocks"
)

func testRuntime() core.RuntimeConfig {
	return core.RuntimeConfig{
		WorldW:   800,
		WorldH:   600,
		TickRate: 60,
		Seed:     12345,
	}
}

// newPlaying returns a game already in a session.
func newPlaying(settings config.Settings, snd Sounder) *Game {
	g := New(settings, snd)
	g.Reset(testRuntime())
	g.startSession()
	return g
}

func noDropSettings() config.Settings {
	s := config.DefaultSettings()
	s.PowerUpChance = 0
	return s
}

func TestBulletHitsEnemy(t *testing.T) {
	ctrl := gomock.NewController(t)
	snd := mocks.NewMockSounder(ctrl)
	snd.EXPECT().Play(SoundExplosion).Times(1)

	g := newPlaying(noDropSettings(), snd)
	enemy := &Enemy{Rect: core.RectAt(300, 200, EnemyW, EnemyH), Speed: 2}
	g.enemies = append(g.enemies, enemy)
	g.bullets = append(g.bullets, NewBullet(305, 210, 10))

	g.resolveCollisions()
	g.sweep()

	if len(g.enemies) != 0 || len(g.bullets) != 0 {
		t.Errorf("enemies=%d bullets=%d, want both removed", len(g.enemies), len(g.bullets))
	}
	if g.score != EnemyScore {
		t.Errorf("score = %d, want %d", g.score, EnemyScore)
	}
	if len(g.explosions) != 1 {
		t.Fatalf("explosions = %d, want 1", len(g.explosions))
	}
	if c := g.explosions[0].Center; c != (core.Point{X: 300, Y: 200}) {
		t.Errorf("explosion centre = %v, want enemy centre (300, 200)", c)
	}
}

func TestBulletMissesEnemy(t *testing.T) {
	ctrl := gomock.NewController(t)
	snd := mocks.NewMockSounder(ctrl)

	g := newPlaying(noDropSettings(), snd)
	g.enemies = append(g.enemies, &Enemy{Rect: core.RectAt(300, 200, EnemyW, EnemyH)})
	g.bullets = append(g.bullets, NewBullet(500, 210, 10))

	g.resolveCollisions()
	g.sweep()

	if len(g.enemies) != 1 || len(g.bullets) != 1 {
		t.Errorf("enemies=%d bullets=%d, want both kept", len(g.enemies), len(g.bullets))
	}
	if g.score != 0 {
		t.Errorf("score = %d, want 0", g.score)
	}
}

func TestEnemyCountedOncePerPass(t *testing.T) {
	ctrl := gomock.NewController(t)
	snd := mocks.NewMockSounder(ctrl)
	snd.EXPECT().Play(SoundExplosion).Times(1)

	g := newPlaying(noDropSettings(), snd)
	g.enemies = append(g.enemies, &Enemy{Rect: core.RectAt(300, 200, EnemyW, EnemyH)})
	// Two bullets inside the same enemy.
	g.bullets = append(g.bullets, NewBullet(295, 200, 10), NewBullet(305, 200, 10))

	g.resolveCollisions()
	g.sweep()

	if g.score != EnemyScore {
		t.Errorf("score = %d, want %d", g.score, EnemyScore)
	}
	if len(g.bullets) != 1 {
		t.Errorf("bullets = %d, want the second bullet to survive", len(g.bullets))
	}
}

func TestBulletRemovesEveryOverlappingEnemy(t *testing.T) {
	ctrl := gomock.NewController(t)
	snd := mocks.NewMockSounder(ctrl)
	snd.EXPECT().Play(SoundExplosion).Times(2)

	g := newPlaying(noDropSettings(), snd)
	g.enemies = append(g.enemies,
		&Enemy{Rect: core.RectAt(300, 200, EnemyW, EnemyH)},
		&Enemy{Rect: core.RectAt(305, 205, EnemyW, EnemyH)},
	)
	g.bullets = append(g.bullets, NewBullet(302, 202, 10))

	g.resolveCollisions()
	g.sweep()

	if g.score != 2*EnemyScore {
		t.Errorf("score = %d, want %d", g.score, 2*EnemyScore)
	}
	if len(g.explosions) != 2 {
		t.Errorf("explosions = %d, want 2", len(g.explosions))
	}
}

func TestPlayerHitCostsLifePerEnemy(t *testing.T) {
	ctrl := gomock.NewController(t)
	snd := mocks.NewMockSounder(ctrl)
	snd.EXPECT().Play(SoundPlayerHit).Times(2)

	g := newPlaying(noDropSettings(), snd)
	pc := g.player.Rect.Center()
	g.enemies = append(g.enemies,
		&Enemy{Rect: core.RectAt(pc.X-10, pc.Y, EnemyW, EnemyH)},
		&Enemy{Rect: core.RectAt(pc.X+10, pc.Y, EnemyW, EnemyH)},
	)

	g.resolveCollisions()
	g.sweep()

	if g.lives != 1 {
		t.Errorf("lives = %d, want 1", g.lives)
	}
	if len(g.enemies) != 0 {
		t.Errorf("enemies = %d, want 0", len(g.enemies))
	}
	if len(g.explosions) != 2 {
		t.Fatalf("explosions = %d, want 2", len(g.explosions))
	}
	for _, x := range g.explosions {
		if x.Center != pc {
			t.Errorf("explosion centre = %v, want player centre %v", x.Center, pc)
		}
	}
}

func TestPlayerCollectsPowerUp(t *testing.T) {
	ctrl := gomock.NewController(t)
	snd := mocks.NewMockSounder(ctrl)

	g := newPlaying(noDropSettings(), snd)
	g.powerUps = append(g.powerUps, NewPowerUp(g.player.Rect.Center()))

	g.resolveCollisions()
	g.sweep()

	if len(g.powerUps) != 0 {
		t.Errorf("power-ups = %d, want 0", len(g.powerUps))
	}
	if g.player.PowerUpTimer != 300 {
		t.Errorf("PowerUpTimer = %d, want 300", g.player.PowerUpTimer)
	}
}

func TestGuaranteedDropSpawnsPowerUpAtEnemy(t *testing.T) {
	s := config.DefaultSettings()
	s.PowerUpChance = 100

	g := newPlaying(s, nil)
	g.enemies = append(g.enemies, &Enemy{Rect: core.RectAt(300, 200, EnemyW, EnemyH)})
	g.bullets = append(g.bullets, NewBullet(300, 200, 10))

	g.resolveCollisions()
	g.sweep()

	if len(g.powerUps) != 1 {
		t.Fatalf("power-ups = %d, want 1", len(g.powerUps))
	}
	if c := g.powerUps[0].Rect.Center(); c != (core.Point{X: 300, Y: 200}) {
		t.Errorf("power-up centre = %v, want (300, 200)", c)
	}
}

func TestZeroChanceNeverDrops(t *testing.T) {
	rapid.Check(t, func(t *rapid.T) {
		seed := rapid.Int64Min(1).Draw(t, "seed")
		kills := rapid.IntRange(1, 40).Draw(t, "kills")

		cfg := testRuntime()
		cfg.Seed = seed
		g := New(noDropSettings(), nil)
		g.Reset(cfg)
		g.startSession()

		for i := range kills {
			x := float64(20 + (i%15)*50)
			y := float64(40 + (i/15)*60)
			g.enemies = append(g.enemies, &Enemy{Rect: core.RectAt(x, y, EnemyW, EnemyH)})
			g.bullets = append(g.bullets, NewBullet(x, y, 10))
		}

		g.resolveCollisions()
		g.sweep()

		if g.score != kills*EnemyScore {
			t.Fatalf("score = %d, want %d", g.score, kills*EnemyScore)
		}
		if len(g.powerUps) != 0 {
			t.Fatalf("power-ups = %d with zero drop chance", len(g.powerUps))
		}
	})
}
