package main

import (
	"fmt"
	"os"

	"github.com/spf13/cobra"
	"gopkg.in/yaml.v3"

	"github.com/vovakirdan/tui-snake/internal/config"
)

var flagResolved bool

var configCmd = &cobra.Command{
	Use:   "config",
	Short: "Print the configuration",
	Long: `Print the embedded default configuration. Save the output to
~/.tui-snake/config.yaml (or pass it with --config) and edit it to change
the grid, cell size, tick rates or colors.

With --resolved, prints the configuration that would be used after
layering the custom or user file over the defaults.

Examples:
  snake config > ~/.tui-snake/config.yaml
  snake config --resolved --config ./my-snake.yaml`,
	Args: cobra.NoArgs,
	Run:  runConfig,
}

func init() {
	configCmd.Flags().BoolVar(&flagResolved, "resolved", false, "Print the effective configuration instead of the defaults")
}

func runConfig(_ *cobra.Command, _ []string) {
	if !flagResolved {
		os.Stdout.Write(config.DefaultYAML()) //nolint:errcheck // stdout
		return
	}

	cfg, err := config.Load(flagConfig)
	if err != nil {
		fmt.Fprintf(os.Stderr, "Error: %v\n", err)
		os.Exit(1)
	}

	out, err := yaml.Marshal(cfg)
	if err != nil {
		fmt.Fprintf(os.Stderr, "Error: %v\n", err)
		os.Exit(1)
	}
	fmt.Printf("# source: %s\n", cfg.Source)
	os.Stdout.Write(out) //nolint:errcheck // stdout
}
