// Package snake implements the snake game loop engine: cherry handling,
// movement with wraparound, self-collision, rendering and pacing.
// The engine has no I/O; frontends feed it a direction slot and a random
// source and decide how frames reach the user.
package snake

import (
	"fmt"
	"strings"
	"time"

	"github.com/vovakirdan/tui-snake/internal/core"
)

// Grid dimensions.
const (
	Rows = 25
	Cols = 50
)

// Glyphs used by Render.
const (
	GlyphEmpty  = '-'
	GlyphSnake  = '1'
	GlyphCherry = '2'
)

var (
	startHead   = core.Cell{Row: 5, Col: 5}
	startCherry = core.Cell{Row: 10, Col: 10}
)

// Rand is the random source used to relocate the cherry.
// *math/rand.Rand satisfies it.
type Rand interface {
	Intn(n int) int
}

// Status is the lifecycle state of a game.
type Status int

const (
	StatusRunning Status = iota
	StatusGameOver
)

// String returns a human-readable name for the status.
func (s Status) String() string {
	switch s {
	case StatusRunning:
		return "running"
	case StatusGameOver:
		return "game_over"
	default:
		return "unknown"
	}
}

// StepResult is returned by Step after each tick.
type StepResult struct {
	Status    Status
	AteCherry bool // A cherry was eaten at the start of this tick
}

// Game holds the complete state of one snake game.
type Game struct {
	rng  Rand
	dir  *core.DirectionSlot
	tick uint64

	snake   []core.Cell // Head at index 0
	cherry  core.Cell
	growing bool // If true, don't remove tail on next move
	status  Status
}

// New creates a game at the initial position: head (5,5), cherry (10,10),
// no direction. The direction is read from dir on every move.
func New(rng Rand, dir *core.DirectionSlot) *Game {
	return NewWithState(rng, dir, []core.Cell{startHead}, startCherry)
}

// NewWithState creates a running game from an explicit body (head first)
// and cherry position. Cells outside the grid are not rejected; the first
// move wraps the head back in.
func NewWithState(rng Rand, dir *core.DirectionSlot, body []core.Cell, cherry core.Cell) *Game {
	if len(body) == 0 {
		body = []core.Cell{startHead}
	}
	g := &Game{
		rng:    rng,
		dir:    dir,
		snake:  append([]core.Cell(nil), body...),
		cherry: cherry,
	}
	return g
}

// Step advances the game by one tick: eat, move, then check for a
// collision. Once the game is over Step does nothing.
func (g *Game) Step() StepResult {
	if g.status == StatusGameOver {
		return StepResult{Status: g.status}
	}
	g.tick++

	ate := g.HandleCherry()
	g.Move()
	if g.CheckSelfCollision() {
		g.status = StatusGameOver
	}

	return StepResult{Status: g.status, AteCherry: ate}
}

// HandleCherry eats the cherry if the head is on it, marking the snake to
// grow on the next move and dropping a new cherry anywhere on the grid.
// The new cherry may land on the snake.
func (g *Game) HandleCherry() bool {
	if g.snake[0] != g.cherry {
		return false
	}

	g.growing = true
	row := g.rng.Intn(Rows)
	col := g.rng.Intn(Cols)
	g.cherry = core.Cell{Row: row, Col: col}
	return true
}

// Move pushes a new head one cell in the current direction and drops the
// tail unless the snake just ate.
func (g *Game) Move() {
	head := g.snake[0]
	newHead := wrap(head.Add(offset(g.dir.Load())))

	g.snake = append([]core.Cell{newHead}, g.snake...)

	// Remove tail unless growing
	if !g.growing {
		g.snake = g.snake[:len(g.snake)-1]
	}
	g.growing = false
}

// CheckSelfCollision reports whether the head shares a cell with any other
// body segment. The head is skipped by index, never by value.
func (g *Game) CheckSelfCollision() bool {
	head := g.snake[0]
	for i := 1; i < len(g.snake); i++ {
		if g.snake[i] == head {
			return true
		}
	}
	return false
}

// offset returns the unit step for a direction. Unmoving and unknown
// directions step by zero.
func offset(d core.Direction) core.Cell {
	switch d {
	case core.DirUp:
		return core.Cell{Row: -1}
	case core.DirDown:
		return core.Cell{Row: 1}
	case core.DirLeft:
		return core.Cell{Col: -1}
	case core.DirRight:
		return core.Cell{Col: 1}
	default:
		return core.Cell{}
	}
}

// wrap moves a head that stepped off one edge onto the opposite edge.
// Only the first out-of-range coordinate is corrected; a unit step can
// leave the grid on at most one axis.
func wrap(c core.Cell) core.Cell {
	if c.Row >= Rows {
		c.Row = 0
	} else if c.Row < 0 {
		c.Row = Rows - 1
	} else if c.Col >= Cols {
		c.Col = 0
	} else if c.Col < 0 {
		c.Col = Cols - 1
	}
	return c
}

// Delay returns how long to wait between ticks. Horizontal moves are paced
// twice as fast because the grid is twice as wide as it is tall, and both
// axes speed up as the snake grows.
func Delay(dir core.Direction, length int) time.Duration {
	if dir.Horizontal() {
		return time.Duration(max(30, 75-5*length)) * time.Millisecond
	}
	return time.Duration(max(60, 150-10*length)) * time.Millisecond
}

// Delay returns the pacing delay for the current direction and length.
func (g *Game) Delay() time.Duration {
	return Delay(g.dir.Load(), len(g.snake))
}

// Render draws the grid into dst, which should be Rows x Cols.
// The cherry is drawn last so it stays visible under the snake.
func (g *Game) Render(dst *core.Screen) {
	dst.Fill(GlyphEmpty)
	for _, seg := range g.snake {
		dst.Set(seg, GlyphSnake)
	}
	dst.Set(g.cherry, GlyphCherry)
}

// Status returns the current lifecycle state.
func (g *Game) Status() Status {
	return g.status
}

// Len returns the number of body segments.
func (g *Game) Len() int {
	return len(g.snake)
}

// Head returns the head cell.
func (g *Game) Head() core.Cell {
	return g.snake[0]
}

// Cherry returns the cherry cell.
func (g *Game) Cherry() core.Cell {
	return g.cherry
}

// Body returns a copy of the body, head first.
func (g *Game) Body() []core.Cell {
	return append([]core.Cell(nil), g.snake...)
}

// Direction returns the direction the next move will use.
func (g *Game) Direction() core.Direction {
	return g.dir.Load()
}

// DebugState returns a string representation of the game state.
func (g *Game) DebugState() string {
	var b strings.Builder
	fmt.Fprintf(&b, "Tick: %d, Status: %s\n", g.tick, g.status)
	fmt.Fprintf(&b, "Snake len: %d, Direction: %s\n", len(g.snake), g.dir.Load())
	fmt.Fprintf(&b, "Head: %s, Cherry: %s\n", g.snake[0], g.cherry)
	return b.String()
}
