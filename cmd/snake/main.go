// snake is the classic snake game for the terminal.
//
// Usage:
//
//	snake                    - Play, steering with w/a/s/d + Enter
//	snake play               - Same as above
//	snake play --tui         - Play with single key presses and colours
//
// Global flags:
//
//	--seed <value>       - Set RNG seed for reproducible cherries
//	--config <path>      - Path to a config YAML
//	--log-level <level>  - Override the configured log level
//	--trace <path>       - Write a CSV row per tick
package main

import (
	"fmt"
	"os"

	"github.com/spf13/cobra"
)

var (
	// Global flags
	flagSeed     int64
	flagConfig   string
	flagLogLevel string
	flagTrace    string
	flagTUI      bool
)

func main() {
	if err := rootCmd.Execute(); err != nil {
		fmt.Fprintln(os.Stderr, err)
		os.Exit(1)
	}
}

var rootCmd = &cobra.Command{
	Use:   "snake",
	Short: "Snake - eat cherries, don't bite yourself",
	Long: `Snake runs on a 25x50 grid that wraps around at every edge.
Each cherry (2) you eat makes the snake (1) one cell longer and a little
faster. The game ends when the snake's head runs into its own body.

Type a direction and press Enter:
  w - up     a - left     s - down     d - right

Examples:
  snake
  snake play --seed 42
  snake play --tui
  snake play --trace ./run.csv`,
	Args: cobra.NoArgs,
	Run:  runPlay,
}

func init() {
	// Global persistent flags
	rootCmd.PersistentFlags().Int64Var(&flagSeed, "seed", 0, "RNG seed (0 = random based on time)")
	rootCmd.PersistentFlags().StringVar(&flagConfig, "config", "", "Path to config YAML")
	rootCmd.PersistentFlags().StringVar(&flagLogLevel, "log-level", "", "Log level: debug, info, warn, error (default from config)")
	rootCmd.PersistentFlags().StringVar(&flagTrace, "trace", "", "Write a per-tick CSV trace to this path")
	rootCmd.PersistentFlags().BoolVar(&flagTUI, "tui", false, "Interactive mode: single key presses, colours")

	// Add subcommands
	rootCmd.AddCommand(playCmd)
}
