package main

import (
	"fmt"
	"os"

	"github.com/BurntSushi/toml"
	"github.com/spf13/cobra"

	"github.com/vovakirdan/dasher/internal/config"
)

var flagTOML bool

var configCmd = &cobra.Command{
	Use:   "config",
	Short: "Print the default config",
	Long: `Print the built-in config, ready to be saved and edited.

Copy it to ~/.dasher/configs/dasher.yaml or ./configs/dasher.yaml to change
the defaults, or pass any file with --config. Files ending in .toml are read
as TOML. With --config, the file is validated and printed resolved.

Examples:
  dasher config > ~/.dasher/configs/dasher.yaml
  dasher config --toml > dasher.toml
  dasher config --config ./dasher.toml --toml`,
	Args: cobra.NoArgs,
	Run:  runConfig,
}

func init() {
	configCmd.Flags().BoolVar(&flagTOML, "toml", false, "Print as TOML")
}

func runConfig(cmd *cobra.Command, _ []string) {
	if flagConfig == "" && !flagTOML {
		os.Stdout.Write(config.DefaultYAML())
		return
	}

	cfg := config.DefaultDasherConfig()
	if flagConfig != "" {
		loaded, err := config.LoadDasher(flagConfig)
		if err != nil {
			fmt.Fprintf(os.Stderr, "Error: %v\n", err)
			os.Exit(1)
		}
		cfg = loaded
	}
	preset, _ := config.ParsePreset(flagDifficulty)
	config.ApplyPreset(&cfg, preset)

	if flagTOML {
		if err := toml.NewEncoder(os.Stdout).Encode(cfg); err != nil {
			fmt.Fprintf(os.Stderr, "Error: %v\n", err)
			os.Exit(1)
		}
		return
	}
	if err := config.WriteYAML(os.Stdout, cfg); err != nil {
		fmt.Fprintf(os.Stderr, "Error: %v\n", err)
		os.Exit(1)
	}
}
