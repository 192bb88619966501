// snake is a terminal snake game with a pre-game difficulty selector.
//
// Usage:
//
//	snake                    - Pick a difficulty and play
//	snake serve              - Start SSH server for remote play
//	snake config             - Print the default configuration
//
// Global flags:
//
//	--seed <value>      - Set RNG seed for reproducible gameplay
//	--config <path>     - Use a custom YAML configuration
//	--log-file <path>   - Write debug logs to a file
package main

import (
	"fmt"
	"os"

	"github.com/spf13/cobra"
)

var (
	// Global flags
	flagSeed    int64
	flagConfig  string
	flagLogFile string
)

func main() {
	if err := rootCmd.Execute(); err != nil {
		fmt.Fprintln(os.Stderr, err)
		os.Exit(1)
	}
}

var rootCmd = &cobra.Command{
	Use:   "snake",
	Short: "Snake - the classic grid game in your terminal",
	Long: `Snake is a single-player terminal game. Pick a difficulty, then steer
the snake around a walled board, eat food to grow and avoid hitting the
walls or yourself.

Controls:
  Arrows/WASD  - Steer
  1/2/3        - Choose Easy/Medium/Hard (selector)
  R            - Restart (after game over)
  Esc/Q        - Quit

Examples:
  snake
  snake --difficulty hard
  snake --seed 42 --config ./my-snake.yaml
  snake serve --ssh :2222`,
	Args: cobra.NoArgs,
	Run:  runPlay,
}

func init() {
	rootCmd.PersistentFlags().Int64Var(&flagSeed, "seed", 0, "RNG seed (0 = random based on time)")
	rootCmd.PersistentFlags().StringVar(&flagConfig, "config", "", "Path to custom config YAML (default: ~/.tui-snake/config.yaml if present)")
	rootCmd.PersistentFlags().StringVar(&flagLogFile, "log-file", "", "Write debug logs to this file")

	rootCmd.Flags().StringVar(&flagDifficulty, "difficulty", "", "Skip the selector: easy, medium or hard")

	rootCmd.AddCommand(serveCmd)
	rootCmd.AddCommand(configCmd)
}
