// shooter is a small arcade shooter for the terminal, a desktop window, or SSH.
//
// Usage:
//
//	shooter play              - Play in the terminal (--gui for a window)
//	shooter scores            - Show high scores
//	shooter settings          - Show or edit the tuning values
//	shooter serve             - Start SSH server for remote play
//
// Global flags:
//
//	--fps <rate>          - Set tick rate (default: 60)
//	--seed <value>        - Set RNG seed for reproducible gameplay
//	--db <path>           - Set database path (default: ~/.arcade/shooter.db)
//	--config <path>       - Set settings path (default: ~/.arcade/shooter.yaml)
//	--log-level <level>   - debug, info, warn or error (default: info)
package main

import (
	"fmt"
	"os"

	"github.com/charmbracelet/log"
	"github.com/spf13/cobra"

	"github.com/vovakirdan/arcade-shooter/internal/config"
	"github.com/vovakirdan/arcade-shooter/internal/core"
	"github.com/vovakirdan/arcade-shooter/internal/storage"
)

var (
	// Global flags
	flagFPS      int
	flagSeed     int64
	flagDBPath   string
	flagConfig   string
	flagLogLevel string

	logger = log.NewWithOptions(os.Stderr, log.Options{
		ReportTimestamp: true,
		Prefix:          "shooter",
	})
)

func main() {
	if err := rootCmd.Execute(); err != nil {
		fmt.Fprintln(os.Stderr, "Error:", err)
		os.Exit(1)
	}
}

var rootCmd = &cobra.Command{
	Use:   "shooter",
	Short: "Shooter - shoot down the falling enemies",
	Long: `Shooter is a small arcade game: move your ship along the bottom of the
screen, shoot the enemies falling from above and catch power-ups for a
triple shot.

Available commands:
  play      - Play in the terminal or a window
  scores    - View high scores
  settings  - Show or edit the tuning values
  serve     - Start SSH server for remote play

Examples:
  shooter play
  shooter play --gui
  shooter settings set enemy_speed 3
  shooter serve --ssh :2222
  shooter scores -i`,
	SilenceUsage:      true,
	SilenceErrors:     true,
	PersistentPreRunE: setupLogger,
}

func init() {
	rootCmd.PersistentFlags().IntVar(&flagFPS, "fps", core.DefaultTickRate, "Tick rate (frames per second)")
	rootCmd.PersistentFlags().Int64Var(&flagSeed, "seed", 0, "RNG seed (0 = random based on time)")
	rootCmd.PersistentFlags().StringVar(&flagDBPath, "db", storage.DefaultPath, "Path to scores database")
	rootCmd.PersistentFlags().StringVar(&flagConfig, "config", config.DefaultSettingsPath, "Path to settings YAML")
	rootCmd.PersistentFlags().StringVar(&flagLogLevel, "log-level", "info", "Log level: debug, info, warn, error")

	rootCmd.AddCommand(playCmd)
	rootCmd.AddCommand(scoresCmd)
	rootCmd.AddCommand(settingsCmd)
	rootCmd.AddCommand(serveCmd)
}

// setupLogger applies --log-level.
func setupLogger(_ *cobra.Command, _ []string) error {
	level, err := log.ParseLevel(flagLogLevel)
	if err != nil {
		return fmt.Errorf("invalid --log-level %q: %w", flagLogLevel, err)
	}
	logger.SetLevel(level)
	return nil
}

// runtimeConfig builds the runtime config from global flags.
func runtimeConfig() core.RuntimeConfig {
	cfg := core.DefaultConfig()
	if flagFPS > 0 {
		cfg.TickRate = flagFPS
	}
	cfg.Seed = flagSeed
	return cfg
}

// settingsPath returns the resolved --config path.
func settingsPath() string {
	return config.ResolvePath(flagConfig)
}
