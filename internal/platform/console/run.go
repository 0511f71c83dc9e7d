package console

import (
	"context"
	"fmt"
	"io"
	"time"

	"github.com/charmbracelet/log"

	"github.com/vovakirdan/tui-snake/internal/core"
	"github.com/vovakirdan/tui-snake/internal/games/snake"
	"github.com/vovakirdan/tui-snake/internal/telemetry"
)

// inputShutdownTimeout bounds how long Run waits for the listener after
// the game ends. Inputs that can't be cancelled are left behind.
const inputShutdownTimeout = 200 * time.Millisecond

// Runner drives a game on line-oriented input and plain text output.
type Runner struct {
	game   *snake.Game
	slot   *core.DirectionSlot
	in     io.Reader
	out    io.Writer
	logger *log.Logger
	trace  *telemetry.Trace
	screen *core.Screen

	// pace blocks between ticks; replaced in tests.
	pace func(ctx context.Context, d time.Duration)
}

// NewRunner creates a runner. The slot must be the one the game reads.
// trace may be nil.
func NewRunner(game *snake.Game, slot *core.DirectionSlot, in io.Reader, out io.Writer, logger *log.Logger, trace *telemetry.Trace) *Runner {
	return &Runner{
		game:   game,
		slot:   slot,
		in:     in,
		out:    out,
		logger: logger,
		trace:  trace,
		screen: core.NewScreen(snake.Rows, snake.Cols),
		pace:   sleep,
	}
}

// Run plays until the snake collides with itself or ctx is cancelled.
// Both endings return nil; only output failures are errors.
func (r *Runner) Run(ctx context.Context) error {
	inputCtx, stopInput := context.WithCancel(ctx)
	inputDone := make(chan struct{})
	go func() {
		defer close(inputDone)
		NewListener(r.in, r.slot, r.logger).Run(inputCtx)
	}()
	defer r.stopListener(stopInput, inputDone)

	r.logger.Info("game started", "head", r.game.Head(), "cherry", r.game.Cherry())

	for {
		res := r.game.Step()
		if res.AteCherry {
			r.logger.Debug("cherry eaten", "length", r.game.Len(), "next", r.game.Cherry())
		}
		if err := r.trace.Record(r.game.Snapshot(), res); err != nil {
			r.logger.Warn("trace write failed", "error", err)
		}

		r.game.Render(r.screen)
		if err := WriteFrame(r.out, r.screen); err != nil {
			return fmt.Errorf("console: writing frame: %w", err)
		}

		if res.Status == snake.StatusGameOver {
			r.logger.Info("game over", "length", r.game.Len())
			if _, err := fmt.Fprintln(r.out, GameOverMessage); err != nil {
				return fmt.Errorf("console: writing frame: %w", err)
			}
			return nil
		}

		r.pace(ctx, r.game.Delay())
		if ctx.Err() != nil {
			r.logger.Info("game interrupted", "length", r.game.Len())
			return nil
		}
	}
}

// stopListener cancels the listener and waits briefly for it to exit.
func (r *Runner) stopListener(stop context.CancelFunc, done <-chan struct{}) {
	stop()
	select {
	case <-done:
	case <-time.After(inputShutdownTimeout):
		r.logger.Debug("input listener still blocked on read")
	}
}

// sleep waits for d. Cancellation cuts the wait short and is not an error.
func sleep(ctx context.Context, d time.Duration) {
	timer := time.NewTimer(d)
	defer timer.Stop()

	select {
	case <-ctx.Done():
	case <-timer.C:
	}
}
