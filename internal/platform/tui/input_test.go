package tui

import (
	"io"
	"path/filepath"
	"strings"
	"testing"

	tea "github.com/charmbracelet/bubbletea"
	"github.com/charmbracelet/log"

	"github.com/vovakirdan/arcade-shooter/internal/core"
	"github.com/vovakirdan/arcade-shooter/internal/storage"
)

func TestMapKey(t *testing.T) {
	keys := DefaultKeyMap()

	tests := []struct {
		msg  tea.KeyMsg
		want core.Action
	}{
		{tea.KeyMsg{Type: tea.KeyLeft}, core.ActionLeft},
		{tea.KeyMsg{Type: tea.KeyRunes, Runes: []rune("a")}, core.ActionLeft},
		{tea.KeyMsg{Type: tea.KeyRight}, core.ActionRight},
		{tea.KeyMsg{Type: tea.KeyRunes, Runes: []rune("d")}, core.ActionRight},
		{tea.KeyMsg{Type: tea.KeySpace, Runes: []rune(" ")}, core.ActionFire},
		{tea.KeyMsg{Type: tea.KeyEnter}, core.ActionConfirm},
		{tea.KeyMsg{Type: tea.KeyRunes, Runes: []rune("p")}, core.ActionPause},
		{tea.KeyMsg{Type: tea.KeyEsc}, core.ActionPause},
		{tea.KeyMsg{Type: tea.KeyRunes, Runes: []rune("q")}, core.ActionQuit},
		{tea.KeyMsg{Type: tea.KeyCtrlC}, core.ActionQuit},
		{tea.KeyMsg{Type: tea.KeyRunes, Runes: []rune("z")}, core.ActionNone},
	}

	for _, tt := range tests {
		t.Run(tt.msg.String(), func(t *testing.T) {
			if got := keys.MapKey(tt.msg); got != tt.want {
				t.Errorf("MapKey(%q) = %v, want %v", tt.msg.String(), got, tt.want)
			}
		})
	}
}

func TestHeldKeysWindow(t *testing.T) {
	h := newHeldKeys(60)
	if h.first != 30 || h.repeat != 7 {
		t.Fatalf("windows = %d/%d ticks, want 30/7", h.first, h.repeat)
	}

	h.press(core.ActionLeft)
	for i := 0; i < 30; i++ {
		f := core.NewInputFrame()
		h.apply(&f)
		if !f.Has(core.ActionLeft) {
			t.Fatalf("left released after %d ticks, want 30", i)
		}
	}
	f := core.NewInputFrame()
	h.apply(&f)
	if f.Has(core.ActionLeft) {
		t.Error("left should be released after the first window")
	}

	// A repeat while held only extends by the short window.
	h.press(core.ActionRight)
	h.press(core.ActionRight)
	if h.right != h.repeat {
		t.Errorf("right = %d after repeat, want %d", h.right, h.repeat)
	}

	// The opposite direction releases the other one.
	h.press(core.ActionLeft)
	if h.right != 0 {
		t.Error("pressing left should release right")
	}

	h.release()
	f = core.NewInputFrame()
	h.apply(&f)
	if f.Has(core.ActionLeft) || f.Has(core.ActionRight) {
		t.Error("release should clear all held keys")
	}
}

// endingGame finishes a session with a fixed score on the first confirm.
type endingGame struct {
	state core.GameState
	steps int
}

func (g *endingGame) ID() string               { return "test" }
func (g *endingGame) Title() string            { return "Test" }
func (g *endingGame) Reset(core.RuntimeConfig) { g.state = core.GameState{Phase: core.PhaseMenu} }
func (g *endingGame) Render(dst core.Canvas)   { dst.Clear(core.ColorBackground) }
func (g *endingGame) State() core.GameState    { return g.state }
func (g *endingGame) Step(in core.InputFrame) core.StepResult {
	g.steps++
	if in.Has(core.ActionConfirm) {
		g.state = core.GameState{Phase: core.PhaseGameOver, Score: 120, GameOver: true}
	}
	return core.StepResult{State: g.state}
}

func TestModelSavesScoreOnce(t *testing.T) {
	store, err := storage.Open(filepath.Join(t.TempDir(), "scores.db"))
	if err != nil {
		t.Fatalf("Open() failed: %v", err)
	}
	defer store.Close()

	game := &endingGame{}
	m := NewModel(game, core.DefaultConfig(), 80, 24, Options{
		Store:  store,
		Logger: log.New(io.Discard),
		Player: "tester",
	})

	var model tea.Model = m
	model, _ = model.Update(tea.KeyMsg{Type: tea.KeyEnter})
	for range 5 {
		model, _ = model.Update(TickMsg{})
	}

	if !model.(Model).State().GameOver {
		t.Fatal("expected game over")
	}

	scores, err := store.TopScores("test", 10)
	if err != nil {
		t.Fatalf("TopScores() failed: %v", err)
	}
	if len(scores) != 1 {
		t.Fatalf("saved %d scores, want exactly 1", len(scores))
	}
	if scores[0].Score != 120 || scores[0].Player != "tester" {
		t.Errorf("saved %+v", scores[0])
	}

	view := model.View()
	if !strings.Contains(view, "best 120") {
		t.Error("status line should show the new best score")
	}
}

func TestModelQuit(t *testing.T) {
	m := NewModel(&endingGame{}, core.DefaultConfig(), 80, 24, Options{Logger: log.New(io.Discard)})

	model, cmd := m.Update(tea.KeyMsg{Type: tea.KeyRunes, Runes: []rune("q")})
	if cmd == nil {
		t.Fatal("quit key should return a command")
	}
	if _, ok := cmd().(tea.QuitMsg); !ok {
		t.Error("quit key should return tea.Quit")
	}
	if model.View() != "" {
		t.Error("view should be empty after quitting")
	}
}

func TestRenderScreenKeepsText(t *testing.T) {
	s := core.NewScreen(20, 3, 200, 30)
	s.Clear(core.ColorBackground)
	s.DrawText(2, 1, "hi", core.ColorText)

	out := RenderScreen(s, nil)
	if lines := strings.Split(out, "\n"); len(lines) != 3 {
		t.Errorf("rendered %d lines, want 3", len(lines))
	}
	if !strings.Contains(out, "hi") {
		t.Error("rendered output lost the text")
	}
}
