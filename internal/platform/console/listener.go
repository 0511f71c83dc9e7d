// Package console runs the snake game on plain stdin/stdout: directions
// arrive as text lines and every tick prints a full ASCII frame.
package console

import (
	"bufio"
	"context"
	"errors"
	"io"
	"strings"
	"time"

	"github.com/charmbracelet/log"
	"github.com/muesli/cancelreader"

	"github.com/vovakirdan/tui-snake/internal/core"
)

// readRetryDelay spaces out retries after a failed read so a broken
// input doesn't spin.
const readRetryDelay = 10 * time.Millisecond

// ParseDirection maps a command line to a direction.
// Surrounding whitespace and case are ignored; w/a/s/d are recognised.
func ParseDirection(line string) (core.Direction, bool) {
	switch strings.ToLower(strings.TrimSpace(line)) {
	case "w":
		return core.DirUp, true
	case "a":
		return core.DirLeft, true
	case "s":
		return core.DirDown, true
	case "d":
		return core.DirRight, true
	}
	return core.DirNone, false
}

// Listener reads direction commands and publishes them to a slot.
type Listener struct {
	in     io.Reader
	slot   *core.DirectionSlot
	logger *log.Logger
}

// NewListener creates a listener reading from in.
func NewListener(in io.Reader, slot *core.DirectionSlot, logger *log.Logger) *Listener {
	return &Listener{
		in:     in,
		slot:   slot,
		logger: logger,
	}
}

// Run reads lines until ctx is cancelled or the input ends.
// Unrecognised lines and read errors are ignored.
func (l *Listener) Run(ctx context.Context) {
	in := l.in
	cr, err := cancelreader.NewReader(l.in)
	if err != nil {
		// Regular files can't be polled; they reach EOF on their own.
		l.logger.Debug("input is not cancellable", "error", err)
	} else {
		defer cr.Close()
		stop := context.AfterFunc(ctx, func() { cr.Cancel() })
		defer stop()
		in = cr
	}

	for ctx.Err() == nil {
		err := l.scan(in)
		if err == nil {
			l.logger.Debug("input closed")
			return
		}
		if errors.Is(err, cancelreader.ErrCanceled) || ctx.Err() != nil {
			return
		}

		l.logger.Debug("input read failed", "error", err)
		select {
		case <-ctx.Done():
			return
		case <-time.After(readRetryDelay):
		}
	}
}

// scan consumes lines until the reader fails. A nil error means EOF.
func (l *Listener) scan(in io.Reader) error {
	scanner := bufio.NewScanner(in)
	for scanner.Scan() {
		dir, ok := ParseDirection(scanner.Text())
		if !ok {
			continue
		}
		if prev := l.slot.Load(); prev != dir {
			l.logger.Debug("direction changed", "from", prev, "to", dir)
		}
		l.slot.Store(dir)
	}
	return scanner.Err()
}
