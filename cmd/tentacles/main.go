// tentacles is a terminal arcade game: steer a creature with many
// inverse-kinematics tentacles to collect orbs without touching the walls.
//
// Usage:
//
//	tentacles play [mode]    - Play a mode (default: tentacles)
//	tentacles menu           - Pick a mode interactively
//	tentacles list           - List available modes
//	tentacles config         - Print the effective configuration
//
// Global flags:
//
//	--fps <rate>    - Set tick rate (default: 60)
//	--seed <value>  - Set RNG seed
//	--log <path>    - Write a session log to a file
package main

import (
	"fmt"
	"io"
	"os"

	"github.com/charmbracelet/log"
	"github.com/spf13/cobra"

	// Register game modes
	_ "github.com/vovakirdan/tui-tentacles/internal/games/tentacles"
)

var (
	flagFPS     int
	flagSeed    int64
	flagLogPath string
)

func main() {
	if err := rootCmd.Execute(); err != nil {
		fmt.Fprintln(os.Stderr, err)
		os.Exit(1)
	}
}

var rootCmd = &cobra.Command{
	Use:   "tentacles",
	Short: "Tentacles - collect orbs with a many-armed creature",
	Long: `Tentacles is a terminal arcade game. A creature trailing a crown of
tentacles follows your mouse; collect the pulsing orbs and keep away from
the arena walls before the timer runs out.

Leave the mouse still or press A and the creature flies on autopilot.

Available commands:
  play     - Play a mode directly
  menu     - Interactive mode picker
  list     - Show all available modes
  config   - Print the effective configuration

Examples:
  tentacles play
  tentacles play tentacles_endless --difficulty hard
  tentacles menu --fps 30
  tentacles play --log ./tentacles.log`,
	SilenceUsage:  true,
	SilenceErrors: true,
}

func init() {
	rootCmd.PersistentFlags().IntVar(&flagFPS, "fps", 60, "Tick rate (frames per second)")
	rootCmd.PersistentFlags().Int64Var(&flagSeed, "seed", 0, "RNG seed (0 = random based on time)")
	rootCmd.PersistentFlags().StringVar(&flagLogPath, "log", "", "Write a session log to this file")

	rootCmd.AddCommand(playCmd)
	rootCmd.AddCommand(menuCmd)
	rootCmd.AddCommand(listCmd)
	rootCmd.AddCommand(configCmd)
}

// newLogger opens the --log file. The returned closer is never nil.
// Without --log the logger discards everything, since the terminal
// belongs to the TUI while a session runs.
func newLogger() (*log.Logger, io.Closer, error) {
	opts := log.Options{
		ReportTimestamp: true,
		Prefix:          "tentacles",
		Level:           log.DebugLevel,
	}
	if flagLogPath == "" {
		return log.NewWithOptions(io.Discard, opts), io.NopCloser(nil), nil
	}

	f, err := os.OpenFile(flagLogPath, os.O_CREATE|os.O_WRONLY|os.O_APPEND, 0o644)
	if err != nil {
		return nil, nil, fmt.Errorf("failed to open log file: %w", err)
	}
	return log.NewWithOptions(f, opts), f, nil
}
