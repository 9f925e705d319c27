package main

import (
	"errors"
	"fmt"
	"os"

	"github.com/charmbracelet/log"
	"github.com/spf13/cobra"
	"golang.org/x/term"

	"github.com/vovakirdan/tui-tentacles/internal/config"
	"github.com/vovakirdan/tui-tentacles/internal/core"
	"github.com/vovakirdan/tui-tentacles/internal/games/tentacles"
	"github.com/vovakirdan/tui-tentacles/internal/platform/tui"
	"github.com/vovakirdan/tui-tentacles/internal/registry"
)

const defaultMode = "tentacles"

var (
	flagConfig     string
	flagDifficulty string
)

var playCmd = &cobra.Command{
	Use:   "play [mode]",
	Short: "Play a mode",
	Long: `Start playing the specified mode (default: tentacles).

Controls:
  Mouse      - Steer the creature (hover or drag)
  A          - Hand over to the autopilot
  P/Esc      - Pause
  R          - Restart
  Q/Ctrl+C   - Quit

Difficulty options:
  easy   - Longer timer, bigger orbs
  normal - Default timer, orbs shrink as you score
  hard   - Short timer, small orbs, late wall warning
  fixed  - No progression

Examples:
  tentacles play
  tentacles play tentacles_endless
  tentacles play --difficulty hard
  tentacles play --config ./my-tentacles.yaml`,
	Args: cobra.MaximumNArgs(1),
	RunE: runPlay,
}

func init() {
	for _, c := range []*cobra.Command{playCmd, menuCmd, configCmd} {
		c.Flags().StringVar(&flagConfig, "config", "", "Path to custom config YAML")
		c.Flags().StringVar(&flagDifficulty, "difficulty", "", "Difficulty preset: easy, normal, hard, fixed")
	}
}

func runPlay(cmd *cobra.Command, args []string) error {
	gameID := defaultMode
	if len(args) == 1 {
		gameID = args[0]
	}
	if !registry.Exists(gameID) {
		return fmt.Errorf("unknown mode %q, run 'tentacles list' to see available modes", gameID)
	}

	logger, closer, err := newLogger()
	if err != nil {
		return err
	}
	defer closer.Close()

	if err := applyConfig(logger); err != nil {
		return err
	}

	return play(gameID, runtimeConfig(), logger)
}

// applyConfig loads the configuration, applies the difficulty preset and
// hands it to the game package. A broken config file falls back to the
// defaults with a warning.
func applyConfig(logger *log.Logger) error {
	cfg, err := loadConfig()
	if errors.Is(err, errUnknownDifficulty) {
		return err
	}
	if err != nil {
		fmt.Fprintf(os.Stderr, "Warning: %v, using defaults\n", err)
		logger.Warn("config load failed, using defaults", "err", err)
		cfg = config.DefaultTentaclesConfig()
		config.ApplyTentaclesPreset(&cfg, config.DifficultyPreset(flagDifficulty))
	}
	tentacles.SetConfig(cfg)
	return nil
}

// loadConfig returns the effective configuration for the current flags.
func loadConfig() (config.TentaclesConfig, error) {
	if err := checkPreset(); err != nil {
		return config.TentaclesConfig{}, err
	}
	cfg, err := config.LoadTentacles(flagConfig)
	if err != nil {
		return config.TentaclesConfig{}, err
	}
	config.ApplyTentaclesPreset(&cfg, config.DifficultyPreset(flagDifficulty))
	if err := cfg.Validate(); err != nil {
		return config.TentaclesConfig{}, fmt.Errorf("invalid config: %w", err)
	}
	return cfg, nil
}

var errUnknownDifficulty = errors.New("unknown difficulty")

func checkPreset() error {
	switch config.DifficultyPreset(flagDifficulty) {
	case "", config.DifficultyEasy, config.DifficultyNormal, config.DifficultyHard, config.DifficultyFixed:
		return nil
	default:
		return fmt.Errorf("%w %q", errUnknownDifficulty, flagDifficulty)
	}
}

// runtimeConfig builds the runtime config from the flags and terminal size.
func runtimeConfig() core.RuntimeConfig {
	cfg := core.DefaultConfig()
	if w, h, err := term.GetSize(int(os.Stdout.Fd())); err == nil {
		cfg.ScreenW = w
		cfg.ScreenH = h
	}
	if flagFPS > 0 {
		cfg.TickRate = flagFPS
	}
	cfg.Seed = flagSeed
	return cfg
}

func play(gameID string, cfg core.RuntimeConfig, logger *log.Logger) error {
	game, err := registry.Create(gameID)
	if err != nil {
		return fmt.Errorf("failed to create game: %w", err)
	}
	return tui.Run(game, cfg, logger)
}
