// Package telemetry writes an optional per-tick CSV trace of a game.
package telemetry

import (
	"fmt"
	"io"
	"os"
	"path/filepath"

	"github.com/gocarina/gocsv"

	"github.com/vovakirdan/tui-snake/internal/games/snake"
)

// TickRecord is one row of the trace.
type TickRecord struct {
	Tick      uint64 `csv:"tick"`
	Direction string `csv:"direction"`
	Length    int    `csv:"length"`
	HeadRow   int    `csv:"head_row"`
	HeadCol   int    `csv:"head_col"`
	CherryRow int    `csv:"cherry_row"`
	CherryCol int    `csv:"cherry_col"`
	AteCherry bool   `csv:"ate_cherry"`
	Status    string `csv:"status"`
}

// NewTickRecord builds a trace row from the state after a step.
func NewTickRecord(snap snake.Snapshot, res snake.StepResult) TickRecord {
	return TickRecord{
		Tick:      snap.Tick,
		Direction: snap.Dir.String(),
		Length:    snap.Length,
		HeadRow:   snap.Head.Row,
		HeadCol:   snap.Head.Col,
		CherryRow: snap.Cherry.Row,
		CherryCol: snap.Cherry.Col,
		AteCherry: res.AteCherry,
		Status:    res.Status.String(),
	}
}

// Trace appends tick records as CSV. A nil *Trace discards everything,
// so callers don't need to check whether tracing is enabled.
type Trace struct {
	w             io.Writer
	closer        io.Closer
	headerWritten bool
}

// OpenTrace creates the trace file at path, creating parent directories.
// Returns nil if path is empty (tracing disabled).
func OpenTrace(path string) (*Trace, error) {
	if path == "" {
		return nil, nil
	}

	if err := os.MkdirAll(filepath.Dir(path), 0o755); err != nil {
		return nil, fmt.Errorf("telemetry: cannot create directory for %s: %w", path, err)
	}
	f, err := os.Create(path)
	if err != nil {
		return nil, fmt.Errorf("telemetry: cannot create %s: %w", path, err)
	}
	return &Trace{w: f, closer: f}, nil
}

// NewTrace writes the trace to w. The caller owns w.
func NewTrace(w io.Writer) *Trace {
	return &Trace{w: w}
}

// Record writes one tick.
func (t *Trace) Record(snap snake.Snapshot, res snake.StepResult) error {
	if t == nil {
		return nil
	}

	records := []TickRecord{NewTickRecord(snap, res)}

	if !t.headerWritten {
		// First write includes headers
		if err := gocsv.Marshal(records, t.w); err != nil {
			return fmt.Errorf("telemetry: writing trace: %w", err)
		}
		t.headerWritten = true
		return nil
	}

	if err := gocsv.MarshalWithoutHeaders(records, t.w); err != nil {
		return fmt.Errorf("telemetry: writing trace: %w", err)
	}
	return nil
}

// Close closes the underlying file if the trace opened it.
func (t *Trace) Close() error {
	if t == nil || t.closer == nil {
		return nil
	}
	return t.closer.Close()
}
