package main

import (
	"fmt"
	"strconv"

	"github.com/spf13/cobra"

	"github.com/vovakirdan/arcade-shooter/internal/config"
)

var settingsCmd = &cobra.Command{
	Use:   "settings",
	Short: "Show or edit the tuning values",
	Long: `Inspect and change the settings file.

Keys:
  player_speed       Pixels per tick the ship moves
  player_lives       Lives at the start of a game
  enemy_speed        Pixels per tick enemies fall
  enemy_spawn_rate   Spawn accumulator growth per tick
  bullet_speed       Pixels per tick bullets rise
  powerup_chance     Percent chance a destroyed enemy drops a power-up
  powerup_duration   Ticks of triple shot per power-up

Examples:
  shooter settings show
  shooter settings set enemy_speed 3
  shooter settings reset`,
}

var settingsShowCmd = &cobra.Command{
	Use:   "show",
	Short: "Print every setting",
	Args:  cobra.NoArgs,
	RunE: func(_ *cobra.Command, _ []string) error {
		settings := config.LoadSettings(settingsPath(), logger)
		fmt.Printf("Settings (%s)\n\n", settingsPath())
		for _, key := range config.Keys() {
			v, _ := settings.Get(key)
			fmt.Printf("  %-18s %s\n", key, strconv.FormatFloat(v, 'g', -1, 64))
		}
		return nil
	},
}

var settingsSetCmd = &cobra.Command{
	Use:   "set <key> <value>",
	Short: "Change one setting",
	Args:  cobra.ExactArgs(2),
	RunE: func(_ *cobra.Command, args []string) error {
		value, err := strconv.ParseFloat(args[1], 64)
		if err != nil {
			return fmt.Errorf("%s: %q is not a number", args[0], args[1])
		}

		settings := config.LoadSettings(settingsPath(), logger)
		if err := settings.Set(args[0], value); err != nil {
			return err
		}
		if err := config.SaveSettings(settingsPath(), settings); err != nil {
			return fmt.Errorf("saving settings: %w", err)
		}
		fmt.Printf("%s = %s\n", args[0], strconv.FormatFloat(value, 'g', -1, 64))
		return nil
	},
}

var settingsResetCmd = &cobra.Command{
	Use:   "reset",
	Short: "Restore the default settings",
	Args:  cobra.NoArgs,
	RunE: func(_ *cobra.Command, _ []string) error {
		if err := config.ResetSettings(settingsPath()); err != nil {
			return fmt.Errorf("resetting settings: %w", err)
		}
		fmt.Printf("Defaults written to %s\n", settingsPath())
		return nil
	},
}

func init() {
	settingsCmd.AddCommand(settingsShowCmd)
	settingsCmd.AddCommand(settingsSetCmd)
	settingsCmd.AddCommand(settingsResetCmd)
}
