// Package shooter implements a vertical arcade shooter: the player's ship at
// the bottom fires at enemies falling from the top, collecting power-ups for a
// triple shot.
package shooter

import (
	"math"
	"math/rand"
	"time"

	"github.com/vovakirdan/arcade-shooter/internal/config"
	"github.com/vovakirdan/arcade-shooter/internal/core"
)

// Game implements core.Game for the shooter.
type Game struct {
	world

	// Configuration
	runtime         core.RuntimeConfig
	settings        config.Settings
	difficulty      *config.Difficulty
	startLives      int
	powerUpDuration int

	sound Sounder
	rng   *rand.Rand

	// Session state
	phase      core.Phase
	paused     bool
	score      int
	lives      int
	spawnAccum float64
	tickCount  int
}

// New creates a shooter using the given tuning values. A nil sounder plays
// nothing.
func New(settings config.Settings, snd Sounder) *Game {
	if snd == nil {
		snd = silent{}
	}

	lives := int(settings.PlayerLives)
	if lives < 1 {
		lives = 1
	}

	return &Game{
		settings:        settings,
		difficulty:      config.NewDifficulty(settings),
		startLives:      lives,
		powerUpDuration: int(math.Round(settings.PowerUpDuration)),
		sound:           snd,
	}
}

// ID returns the unique identifier for this game.
func (g *Game) ID() string {
	return "shooter"
}

// Title returns the display name for this game.
func (g *Game) Title() string {
	return "Graphical Shooter"
}

// Reset returns the game to the menu with an empty world and a fresh RNG.
func (g *Game) Reset(cfg core.RuntimeConfig) {
	if cfg.WorldW <= 0 || cfg.WorldH <= 0 {
		cfg.WorldW, cfg.WorldH = core.DefaultWorldW, core.DefaultWorldH
	}
	if cfg.TickRate <= 0 {
		cfg.TickRate = core.DefaultTickRate
	}
	if cfg.Seed == 0 {
		cfg.Seed = time.Now().UnixNano()
	}
	g.runtime = cfg
	g.rng = rand.New(rand.NewSource(cfg.Seed))

	g.world.reset()
	g.phase = core.PhaseMenu
	g.paused = false
	g.score = 0
	g.lives = g.startLives
	g.spawnAccum = 0
	g.tickCount = 0
}

// startSession clears the world and spawns the player.
func (g *Game) startSession() {
	g.world.reset()
	g.player = NewPlayer(g.settings.PlayerSpeed, g.runtime.WorldW, g.runtime.WorldH)
	g.score = 0
	g.lives = g.startLives
	g.spawnAccum = 0
	g.tickCount = 0
	g.paused = false
	g.phase = core.PhasePlaying
}

// Step advances the game by one tick.
func (g *Game) Step(in core.InputFrame) core.StepResult {
	switch g.phase {
	case core.PhaseMenu:
		if in.Has(core.ActionConfirm) || in.Has(core.ActionFire) {
			g.startSession()
		}

	case core.PhasePlaying:
		if in.Has(core.ActionPause) {
			g.paused = !g.paused
		}
		if !g.paused {
			g.tick(in)
		}

	case core.PhaseGameOver:
		if in.Has(core.ActionConfirm) {
			g.phase = core.PhaseMenu
		}
	}

	return core.StepResult{State: g.State()}
}

// tick runs one frame of play.
func (g *Game) tick(in core.InputFrame) {
	g.tickCount++

	if in.Has(core.ActionFire) {
		if shots, ok := g.player.Shoot(g.settings.BulletSpeed); ok {
			g.bullets = append(g.bullets, shots...)
			g.sound.Play(SoundShoot)
		}
	}

	g.world.update(in.Has(core.ActionLeft), in.Has(core.ActionRight), g.runtime.WorldH)

	g.spawnAccum += g.difficulty.SpawnIncrement(g.score)
	if g.spawnAccum >= config.SpawnThreshold {
		g.spawnAccum = 0
		g.enemies = append(g.enemies, SpawnEnemy(g.rng, g.difficulty.EnemySpeed(g.score), g.runtime.WorldW))
	}

	g.resolveCollisions()
	g.world.sweep()

	if g.lives <= 0 {
		g.phase = core.PhaseGameOver
		g.paused = false
	}
}

// State returns the current game state.
func (g *Game) State() core.GameState {
	return core.GameState{
		Phase:    g.phase,
		Score:    g.score,
		Lives:    g.lives,
		GameOver: g.phase == core.PhaseGameOver,
		Paused:   g.paused,
	}
}

// PowerUpSeconds returns the remaining triple-shot time in seconds.
func (g *Game) PowerUpSeconds() float64 {
	if g.player == nil || g.runtime.TickRate <= 0 {
		return 0
	}
	return float64(g.player.PowerUpTimer) / float64(g.runtime.TickRate)
}
