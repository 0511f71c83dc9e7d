package snake

import "github.com/vovakirdan/tui-snake/internal/core"

// Snapshot captures the observable game state for determinism tests and
// tick traces.
type Snapshot struct {
	Tick    uint64
	Length  int
	Head    core.Cell
	Cherry  core.Cell
	Dir     core.Direction
	Growing bool
	Status  Status
}

// Snapshot returns the current game snapshot.
func (g *Game) Snapshot() Snapshot {
	return Snapshot{
		Tick:    g.tick,
		Length:  len(g.snake),
		Head:    g.snake[0],
		Cherry:  g.cherry,
		Dir:     g.dir.Load(),
		Growing: g.growing,
		Status:  g.status,
	}
}
