package main

import (
	"os"

	"github.com/spf13/cobra"

	"github.com/vovakirdan/geodash/internal/config"
)

var configCmd = &cobra.Command{
	Use:   "config",
	Short: "Print the effective configuration",
	Long: `Loads the configuration the same way 'play' does and prints it as YAML.
The output is a complete config file and can be saved to
~/.geodash/config.yaml as a starting point.`,
	Args: cobra.NoArgs,
	RunE: runConfig,
}

func runConfig(cmd *cobra.Command, args []string) error {
	cfg, _, err := loadConfig()
	if err != nil {
		return err
	}

	data, err := config.Marshal(cfg)
	if err != nil {
		return err
	}
	_, err = os.Stdout.Write(data)
	return err
}
