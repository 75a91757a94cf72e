package main

import (
	"fmt"
	"os"

	"github.com/spf13/cobra"

	"github.com/vovakirdan/eggcatch/internal/config"
)

var flagConfigDefaults bool

var configCmd = &cobra.Command{
	Use:   "config [classic|marathon]",
	Short: "Print the effective configuration",
	Long: `Print the configuration the game would use, as YAML, after applying
the config search order and the mode's round length. The output is a valid
config file.

Search order:
  --config <path> or EGGCATCH_CONFIG
  ~/.eggcatch/configs/eggcatch.yaml
  ./configs/eggcatch.yaml
  built-in defaults

Examples:
  eggcatch config
  eggcatch config marathon
  eggcatch config --defaults > ~/.eggcatch/configs/eggcatch.yaml`,
	Args: cobra.MaximumNArgs(1),
	Run:  runConfig,
}

func init() {
	configCmd.Flags().BoolVar(&flagConfigDefaults, "defaults", false, "Print the built-in defaults with comments")
}

func runConfig(_ *cobra.Command, args []string) {
	if flagConfigDefaults {
		os.Stdout.Write(config.DefaultYAML())
		return
	}

	mode, err := modeFromArgs(args)
	if err != nil {
		fmt.Fprintf(os.Stderr, "Error: %v\n", err)
		os.Exit(1)
	}
	cfg := mustValidConfig(mode)

	data, err := config.MarshalCatch(cfg)
	if err != nil {
		fmt.Fprintf(os.Stderr, "Error encoding configuration: %v\n", err)
		os.Exit(1)
	}
	os.Stdout.Write(data)
}
