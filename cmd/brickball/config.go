package main

import (
	"fmt"
	"os"

	"github.com/spf13/cobra"

	"github.com/vovakirdan/brickball/internal/config"
)

var configCmd = &cobra.Command{
	Use:   "config",
	Short: "Print the effective configuration",
	Long: `Print the configuration a session would use, as YAML.

The file is searched in this order: --config, ~/.brickball/configs/brickball.yaml,
./configs/brickball.yaml, then the built-in defaults. --difficulty is applied
on top. Redirect the output to start a custom config.

Examples:
  brickball config > my-brickball.yaml
  brickball config --difficulty hard`,
	RunE: runConfig,
}

func init() {
	addGameFlags(configCmd)
}

func runConfig(_ *cobra.Command, _ []string) error {
	cfg, err := config.LoadBrickball(flagConfig)
	if err != nil {
		return err
	}
	if flagDifficulty != "" {
		preset, err := config.ParsePreset(flagDifficulty)
		if err != nil {
			return err
		}
		config.ApplyBrickballPreset(&cfg, preset)
	}
	if err := cfg.Validate(); err != nil {
		return err
	}

	out, err := config.Marshal(cfg)
	if err != nil {
		return err
	}
	_, err = fmt.Fprint(os.Stdout, string(out))
	return err
}
