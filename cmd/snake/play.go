package main

import (
	"context"
	"fmt"
	"io"
	"math/rand"
	"os"
	"os/signal"
	"syscall"

	"github.com/charmbracelet/log"
	"github.com/spf13/cobra"

	"github.com/vovakirdan/tui-snake/internal/config"
	"github.com/vovakirdan/tui-snake/internal/core"
	"github.com/vovakirdan/tui-snake/internal/games/snake"
	"github.com/vovakirdan/tui-snake/internal/platform/console"
	"github.com/vovakirdan/tui-snake/internal/platform/tui"
	"github.com/vovakirdan/tui-snake/internal/telemetry"
)

var playCmd = &cobra.Command{
	Use:   "play",
	Short: "Play a game",
	Long: `Start a game of snake.

Controls (line mode, the default):
  w/a/s/d + Enter  - Steer
  Ctrl+C           - Quit

Controls (--tui):
  w/a/s/d, arrows  - Steer
  q/Esc/Ctrl+C     - Quit

Examples:
  snake play
  snake play --seed 7
  snake play --tui --config ./my-snake.yaml`,
	Args: cobra.NoArgs,
	Run:  runPlay,
}

func runPlay(cmd *cobra.Command, args []string) {
	cfg, err := config.Load(flagConfig)
	if err != nil {
		fmt.Fprintf(os.Stderr, "Error: %v\n", err)
		os.Exit(1)
	}

	logger, err := newLogger(cfg.Log, flagLogLevel)
	if err != nil {
		fmt.Fprintf(os.Stderr, "Error: %v\n", err)
		os.Exit(1)
	}

	if flagTUI {
		if termErr := tui.CheckTerminal(int(os.Stdout.Fd())); termErr != nil {
			fmt.Fprintf(os.Stderr, "Error: %v\n", termErr)
			fmt.Fprintln(os.Stderr, "Run without --tui to play in line mode.")
			os.Exit(1)
		}
		// Log lines would tear the alternate screen.
		logger.SetOutput(io.Discard)
	}

	trace, err := telemetry.OpenTrace(flagTrace)
	if err != nil {
		fmt.Fprintf(os.Stderr, "Error: %v\n", err)
		os.Exit(1)
	}

	rt := core.RuntimeConfig{Seed: flagSeed}
	seed := rt.ResolvedSeed()
	logger.Debug("starting", "seed", seed, "tui", flagTUI)

	slot := &core.DirectionSlot{}
	game := snake.New(rand.New(rand.NewSource(seed)), slot)

	ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt, syscall.SIGTERM)

	var runErr error
	if flagTUI {
		var status snake.Status
		status, runErr = tui.Run(ctx, game, slot, cfg.Theme, trace, logger)
		if runErr == nil && status == snake.StatusGameOver {
			fmt.Println(console.GameOverMessage)
		}
	} else {
		runErr = console.NewRunner(game, slot, os.Stdin, os.Stdout, logger, trace).Run(ctx)
	}
	stop()

	// Close trace before potential exit
	if closeErr := trace.Close(); closeErr != nil {
		logger.Warn("could not close trace", "error", closeErr)
	}

	if runErr != nil {
		fmt.Fprintf(os.Stderr, "Error running game: %v\n", runErr)
		os.Exit(1)
	}
}

// newLogger builds the stderr logger. A non-empty override replaces the
// configured level.
func newLogger(cfg config.LogConfig, override string) (*log.Logger, error) {
	levelName := cfg.Level
	if override != "" {
		levelName = override
	}
	level, err := log.ParseLevel(levelName)
	if err != nil {
		return nil, fmt.Errorf("invalid log level %q: %w", levelName, err)
	}

	return log.NewWithOptions(os.Stderr, log.Options{
		ReportTimestamp: true,
		Prefix:          cfg.Prefix,
		Level:           level,
	}), nil
}
