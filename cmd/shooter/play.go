package main

import (
	"fmt"
	"os"
	"path/filepath"

	"github.com/spf13/cobra"
	"golang.org/x/term"

	"github.com/vovakirdan/arcade-shooter/internal/config"
	"github.com/vovakirdan/arcade-shooter/internal/games/shooter"
	"github.com/vovakirdan/arcade-shooter/internal/platform/gui"
	"github.com/vovakirdan/arcade-shooter/internal/platform/tui"
	"github.com/vovakirdan/arcade-shooter/internal/sound"
	"github.com/vovakirdan/arcade-shooter/internal/storage"
)

var (
	flagGUI     bool
	flagAssets  string
	flagMute    bool
	flagLogFile string
)

var playCmd = &cobra.Command{
	Use:   "play",
	Short: "Play the game",
	Long: `Start the game at its menu.

Controls:
  Left/Right, A/D  - Move
  Space            - Fire (also starts from the menu)
  Enter            - Start / back to menu after game over
  P/Esc            - Pause
  Q/Ctrl+C         - Quit

Sounds are read from <assets>/shoot.wav, explosion.wav and player_hit.wav;
missing files are skipped.

Examples:
  shooter play
  shooter play --gui
  shooter play --assets ./sounds --seed 42
  shooter play --mute`,
	Args: cobra.NoArgs,
	RunE: runPlay,
}

func init() {
	playCmd.Flags().BoolVar(&flagGUI, "gui", false, "Open a desktop window instead of using the terminal")
	playCmd.Flags().StringVar(&flagAssets, "assets", "assets", "Directory with sound clips")
	playCmd.Flags().BoolVar(&flagMute, "mute", false, "Disable sound")
	playCmd.Flags().StringVar(&flagLogFile, "log-file", "~/.arcade/shooter.log", "Where logs go while the terminal UI is active")
}

func runPlay(_ *cobra.Command, _ []string) error {
	// In the terminal, stderr belongs to the UI; send logs to a file.
	if !flagGUI {
		f, err := openLogFile(flagLogFile)
		if err != nil {
			logger.Warn("could not open log file, logging disabled during play", "error", err)
		} else {
			defer f.Close()
			logger.SetOutput(f)
			defer logger.SetOutput(os.Stderr)
		}
	}

	settings := config.LoadSettings(settingsPath(), logger)

	var (
		snd     shooter.Sounder = sound.Nop{}
		surface *sound.Surface
	)
	if !flagMute {
		surface = sound.Open(flagAssets, logger)
		snd = surface
	}
	defer surface.Close()

	game := shooter.New(settings, snd)
	cfg := runtimeConfig()

	store, err := storage.Open(flagDBPath)
	if err != nil {
		logger.Warn("could not open scores database, playing without scores", "error", err)
		store = nil
	}
	if store != nil {
		defer store.Close()
	}

	player := os.Getenv("USER")

	if flagGUI {
		return gui.Run(game, cfg, gui.Options{
			Store:  store,
			Logger: logger,
			Player: player,
		})
	}

	width, height := 80, 24 // Defaults
	if w, h, termErr := term.GetSize(int(os.Stdout.Fd())); termErr == nil {
		width = w
		height = h
	}

	if err := tui.Run(game, cfg, width, height, tui.Options{
		Store:  store,
		Logger: logger,
		Player: player,
	}); err != nil {
		return fmt.Errorf("running game: %w", err)
	}
	return nil
}

// openLogFile opens path for appending, creating parent directories.
func openLogFile(path string) (*os.File, error) {
	path = config.ResolvePath(path)
	if err := os.MkdirAll(filepath.Dir(path), 0o755); err != nil {
		return nil, err
	}
	return os.OpenFile(path, os.O_CREATE|os.O_WRONLY|os.O_APPEND, 0o644)
}
