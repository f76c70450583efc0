package tui

import (
	"fmt"

	"github.com/charmbracelet/bubbles/help"
	tea "github.com/charmbracelet/bubbletea"
	"github.com/charmbracelet/lipgloss"
	"github.com/charmbracelet/log"

	"github.com/vovakirdan/arcade-shooter/internal/core"
	"github.com/vovakirdan/arcade-shooter/internal/platform"
	"github.com/vovakirdan/arcade-shooter/internal/storage"
)

// Options carries the optional collaborators of a terminal session.
type Options struct {
	Store    *storage.Store     // nil disables score saving
	Logger   *log.Logger        // nil uses log.Default()
	Player   string             // name recorded with scores
	Renderer *lipgloss.Renderer // nil uses the process stdout
}

// Model is the Bubble Tea model that drives one game in a terminal.
type Model struct {
	game       core.Game
	screen     *core.Screen
	renderer   *lipgloss.Renderer
	recorder   *platform.Recorder
	config     core.RuntimeConfig
	keys       KeyMap
	help       help.Model
	inputFrame core.InputFrame
	held       heldKeys
	gameState  core.GameState
	width      int
	quitting   bool
}

// NewModel creates a model for a terminal of width x height cells.
// The bottom row is kept for the status line.
func NewModel(game core.Game, cfg core.RuntimeConfig, width, height int, opts Options) Model {
	if cfg.TickRate <= 0 {
		cfg.TickRate = core.DefaultTickRate
	}
	if cfg.WorldW <= 0 || cfg.WorldH <= 0 {
		cfg.WorldW, cfg.WorldH = core.DefaultWorldW, core.DefaultWorldH
	}

	game.Reset(cfg)

	m := Model{
		game:       game,
		screen:     core.NewScreen(max(width, 1), max(height-1, 1), cfg.WorldW, cfg.WorldH),
		renderer:   opts.Renderer,
		recorder:   platform.NewRecorder(opts.Store, opts.Logger, game.ID(), opts.Player, cfg.TickRate),
		config:     cfg,
		keys:       DefaultKeyMap(),
		help:       help.New(),
		inputFrame: core.NewInputFrame(),
		held:       newHeldKeys(cfg.TickRate),
		gameState:  game.State(),
		width:      width,
	}
	m.help.Width = width

	return m
}

// Init starts the tick loop.
func (m Model) Init() tea.Cmd {
	return tickCmd(m.config.TickRate)
}

// Update handles messages and updates the model state.
func (m Model) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	switch msg := msg.(type) {
	case tea.KeyMsg:
		return m.handleKey(msg)

	case tea.WindowSizeMsg:
		m.width = msg.Width
		m.help.Width = msg.Width
		m.screen.Resize(max(msg.Width, 1), max(msg.Height-1, 1))
		return m, nil

	case TickMsg:
		return m.handleTick()
	}

	return m, nil
}

// handleKey processes keyboard input.
func (m Model) handleKey(msg tea.KeyMsg) (tea.Model, tea.Cmd) {
	switch action := m.keys.MapKey(msg); action {
	case core.ActionNone:
	case core.ActionQuit:
		m.quitting = true
		return m, tea.Quit
	case core.ActionLeft, core.ActionRight:
		m.held.press(action)
	default:
		m.inputFrame.Set(action)
	}
	return m, nil
}

// handleTick runs one simulation step.
func (m Model) handleTick() (tea.Model, tea.Cmd) {
	m.held.apply(&m.inputFrame)

	result := m.game.Step(m.inputFrame)
	m.gameState = result.State
	m.recorder.Observe(m.gameState)

	if m.gameState.GameOver {
		m.held.release()
	}

	m.inputFrame.Clear()
	return m, tickCmd(m.config.TickRate)
}

// View renders the current state to a string for display.
func (m Model) View() string {
	if m.quitting {
		return ""
	}

	m.game.Render(m.screen)
	return RenderScreen(m.screen, m.renderer) + "\n" + m.statusLine()
}

// statusLine shows the best score and the key help.
func (m Model) statusLine() string {
	r := m.renderer
	if r == nil {
		r = lipgloss.DefaultRenderer()
	}
	best := r.NewStyle().Bold(true).Foreground(lipgloss.Color(core.ColorBullet.Hex())).
		Render(fmt.Sprintf(" best %d ", m.recorder.Best()))
	m.help.Width = max(m.width-lipgloss.Width(best)-1, 0)
	return best + " " + m.help.View(m.keys)
}

// State returns the most recent game state.
func (m Model) State() core.GameState {
	return m.gameState
}

// Run starts the Bubble Tea program for a local terminal.
func Run(game core.Game, cfg core.RuntimeConfig, width, height int, opts Options) error {
	model := NewModel(game, cfg, width, height, opts)

	p := tea.NewProgram(
		model,
		tea.WithAltScreen(), // Use alternate screen buffer
	)

	_, err := p.Run()
	return err
}
