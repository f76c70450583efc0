// Package gui runs the shooter in a desktop window with Ebitengine.
package gui

import (
	"errors"

	"github.com/charmbracelet/log"
	"github.com/hajimehoshi/ebiten/v2"
	"github.com/hajimehoshi/ebiten/v2/inpututil"

	"github.com/vovakirdan/arcade-shooter/internal/core"
	"github.com/vovakirdan/arcade-shooter/internal/platform"
	"github.com/vovakirdan/arcade-shooter/internal/storage"
)

// Options carries the optional collaborators of a window session.
type Options struct {
	Store  *storage.Store // nil disables score saving
	Logger *log.Logger    // nil uses log.Default()
	Player string         // name recorded with scores
	Close  func()         // called once the loop ends, e.g. to stop audio
}

// Keys polled every tick.
var (
	leftKeys    = []ebiten.Key{ebiten.KeyArrowLeft, ebiten.KeyA}
	rightKeys   = []ebiten.Key{ebiten.KeyArrowRight, ebiten.KeyD}
	fireKeys    = []ebiten.Key{ebiten.KeySpace}
	confirmKeys = []ebiten.Key{ebiten.KeyEnter, ebiten.KeyNumpadEnter}
	pauseKeys   = []ebiten.Key{ebiten.KeyP, ebiten.KeyEscape}
	quitKeys    = []ebiten.Key{ebiten.KeyQ}
)

// Window adapts a core.Game to ebiten.Game.
type Window struct {
	game     core.Game
	config   core.RuntimeConfig
	canvas   canvas
	recorder *platform.Recorder
	frame    core.InputFrame
}

var _ ebiten.Game = (*Window)(nil)

// NewWindow resets game and wraps it for ebiten.
func NewWindow(game core.Game, cfg core.RuntimeConfig, opts Options) *Window {
	if cfg.TickRate <= 0 {
		cfg.TickRate = core.DefaultTickRate
	}
	if cfg.WorldW <= 0 || cfg.WorldH <= 0 {
		cfg.WorldW, cfg.WorldH = core.DefaultWorldW, core.DefaultWorldH
	}
	game.Reset(cfg)

	return &Window{
		game:     game,
		config:   cfg,
		recorder: platform.NewRecorder(opts.Store, opts.Logger, game.ID(), opts.Player, cfg.TickRate),
		frame:    core.NewInputFrame(),
	}
}

// pollInput reads the keyboard. Held keys use IsKeyPressed; discrete keys
// only fire on the tick they went down.
func (w *Window) pollInput() {
	w.frame.Clear()
	if anyPressed(leftKeys) {
		w.frame.Set(core.ActionLeft)
	}
	if anyPressed(rightKeys) {
		w.frame.Set(core.ActionRight)
	}
	if anyJustPressed(fireKeys) {
		w.frame.Set(core.ActionFire)
	}
	if anyJustPressed(confirmKeys) {
		w.frame.Set(core.ActionConfirm)
	}
	if anyJustPressed(pauseKeys) {
		w.frame.Set(core.ActionPause)
	}
	if anyJustPressed(quitKeys) {
		w.frame.Set(core.ActionQuit)
	}
}

func anyPressed(keys []ebiten.Key) bool {
	for _, k := range keys {
		if ebiten.IsKeyPressed(k) {
			return true
		}
	}
	return false
}

func anyJustPressed(keys []ebiten.Key) bool {
	for _, k := range keys {
		if inpututil.IsKeyJustPressed(k) {
			return true
		}
	}
	return false
}

// Update runs one simulation tick.
func (w *Window) Update() error {
	w.pollInput()
	return w.step(w.frame)
}

// step advances the game with the given input. Quit ends the loop.
func (w *Window) step(in core.InputFrame) error {
	if in.Has(core.ActionQuit) {
		return ebiten.Termination
	}
	res := w.game.Step(in)
	w.recorder.Observe(res.State)
	return nil
}

// Draw renders the game onto the window.
func (w *Window) Draw(screen *ebiten.Image) {
	w.canvas.dst = screen
	w.game.Render(&w.canvas)
}

// Layout fixes the logical screen to the world size; ebiten scales the window.
func (w *Window) Layout(_, _ int) (int, int) {
	return int(w.config.WorldW), int(w.config.WorldH)
}

// Best returns the best score known to the session.
func (w *Window) Best() int {
	return w.recorder.Best()
}

// Run opens a window and blocks until the player quits or closes it.
func Run(game core.Game, cfg core.RuntimeConfig, opts Options) error {
	w := NewWindow(game, cfg, opts)
	if opts.Close != nil {
		defer opts.Close()
	}

	ebiten.SetWindowSize(int(w.config.WorldW), int(w.config.WorldH))
	ebiten.SetWindowTitle(game.Title())
	ebiten.SetWindowResizable(true)
	ebiten.SetTPS(w.config.TickRate)

	if err := ebiten.RunGame(w); err != nil && !errors.Is(err, ebiten.Termination) {
		return err
	}
	return nil
}
