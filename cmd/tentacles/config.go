package main

import (
	"fmt"
	"os"

	"github.com/spf13/cobra"

	"github.com/vovakirdan/tui-tentacles/internal/config"
)

var configCmd = &cobra.Command{
	Use:   "config",
	Short: "Print the effective configuration",
	Long: `Prints the configuration a session would use, after the config
search (--config, ~/.arcade/configs, ./configs, built-in defaults) and the
difficulty preset are applied. The output is valid YAML and can be saved
as a starting point for a custom config.

With --defaults the built-in default file is printed verbatim, comments
included.

Examples:
  tentacles config
  tentacles config --defaults
  tentacles config --difficulty hard > ~/.arcade/configs/tentacles.yaml`,
	Args: cobra.NoArgs,
	RunE: runConfig,
}

var flagDefaults bool

func init() {
	configCmd.Flags().BoolVar(&flagDefaults, "defaults", false, "Print the built-in default config file")
}

func runConfig(_ *cobra.Command, _ []string) error {
	data, err := configYAML()
	if err != nil {
		return err
	}
	_, err = os.Stdout.Write(data)
	if err != nil {
		return fmt.Errorf("failed to write config: %w", err)
	}
	return nil
}

// configYAML renders the effective config, or the embedded default file
// when --defaults is set.
func configYAML() ([]byte, error) {
	if flagDefaults {
		return config.GetDefaultYAML(defaultMode), nil
	}
	cfg, err := loadConfig()
	if err != nil {
		return nil, err
	}
	return config.Marshal(cfg)
}
