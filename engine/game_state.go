package engine

import (
	"errors"
	"fmt"
	"math/rand/v2"
	"time"

	"github.com/lixenwraith/trophy-snake/board"
	"github.com/lixenwraith/trophy-snake/core"
	"github.com/lixenwraith/trophy-snake/parameter"
)

// ErrBoardTooSmall is returned when the initial snake cannot be laid down
var ErrBoardTooSmall = errors.New("board too small for initial snake")

// GameState is the complete state of one session, owned by the update loop
type GameState struct {
	board    *board.Board
	body     *Body
	trophies *TrophyManager
	clock    Clock

	dir    core.Direction
	size   int
	growth int // segments still to be added, one per tick
	delay  time.Duration
	ticks  int

	status  Status
	reason  EndReason
	crashAt core.Point
	crashed bool
}

// TickResult summarizes what one update did
type TickResult struct {
	Ate     int // value of the trophy eaten, 0 if none
	Expired bool
	Spawned bool
	Status  Status
}

// NewGameState lays down the initial snake in a random heading, spawns the first
// trophy and derives the start delay from the board width
// rows and cols are the full terminal dimensions, border included
func NewGameState(rows, cols int, rng *rand.Rand, clock Clock) (*GameState, error) {
	b := board.New(rows, cols)
	g := &GameState{
		board:    b,
		body:     NewBody(rows + cols),
		trophies: NewTrophyManager(rng),
		clock:    clock,
		dir:      core.Direction(rng.IntN(core.DirectionCount)),
		size:     parameter.InitialSnakeLength,
		delay:    StartDelay(cols),
	}

	seed := core.Point{Row: (rows - 1) / 2, Col: (cols-2)/2 - parameter.SeedColumnOffset}
	p := seed
	for i := 0; i < parameter.InitialSnakeLength; i++ {
		if b.Get(p) != board.CellEmpty {
			return nil, fmt.Errorf("%w: %dx%d heading %s", ErrBoardTooSmall, rows, cols, g.dir)
		}
		b.Set(p, board.CellSegment)
		g.body.PushHead(p)
		p = p.Step(g.dir)
	}

	if !g.trophies.Spawn(b, clock.Now()) {
		return nil, fmt.Errorf("%w: no room for a trophy on %dx%d", ErrBoardTooSmall, rows, cols)
	}
	return g, nil
}

// SetDirection changes the heading
// Reversing onto the body ends the game
// Returns false if the request ended the game or the game is already over
func (g *GameState) SetDirection(d core.Direction) bool {
	if g.status.Terminal() {
		return false
	}
	if d == g.dir.Opposite() {
		g.end(StatusLost, ReasonReversal)
		return false
	}
	g.dir = d
	return true
}

// Quit ends a running game without a result
func (g *GameState) Quit() {
	g.end(StatusQuit, ReasonInterrupted)
}

// Tick advances the game by one step
func (g *GameState) Tick() TickResult {
	if g.status.Terminal() {
		return TickResult{Status: g.status}
	}

	var res TickResult
	g.ticks++
	now := g.clock.Now()
	next := g.body.PeekHead().Step(g.dir)
	cell := g.board.Get(next)

	switch {
	case cell == board.CellEmpty:
		if g.growth > 0 {
			g.applyGrowth()
		} else {
			g.dropTail()
		}

	case cell.IsTrophy():
		g.trophies.Eat()
		res.Ate = cell.TrophyValue()
		g.size += res.Ate
		g.growth += res.Ate
		g.applyGrowth()

	default:
		g.dropTail()
		g.crashAt, g.crashed = next, true
		g.end(StatusLost, ReasonCollision)
		res.Status = g.status
		return res
	}

	g.board.Set(next, board.CellSegment)
	g.body.PushHead(next)

	res.Expired = g.trophies.CheckExpiry(g.board, now)

	spawnFailed := false
	if !g.trophies.Present() {
		res.Spawned = g.trophies.Spawn(g.board, now)
		spawnFailed = !res.Spawned
	}

	if g.size >= g.WinLength() {
		g.end(StatusWon, ReasonPerimeter)
	} else if spawnFailed {
		g.end(StatusWon, ReasonBoardFull)
	}

	res.Status = g.status
	return res
}

// applyGrowth keeps the tail in place for this tick and speeds the game up
func (g *GameState) applyGrowth() {
	g.growth--
	g.delay = speedUp(g.delay)
}

func (g *GameState) dropTail() {
	tail := g.body.PopTail()
	g.board.Set(tail, board.CellEmpty)
}

func (g *GameState) end(s Status, r EndReason) {
	if g.status.Terminal() {
		return
	}
	g.status = s
	g.reason = r
}

// WinLength is the snake size that wins: half the board perimeter
func (g *GameState) WinLength() int {
	return g.board.Rows() + g.board.Cols() - parameter.PerimeterOffset
}

func (g *GameState) Board() *board.Board { return g.board }
func (g *GameState) Direction() core.Direction { return g.dir }
func (g *GameState) Size() int { return g.size }
func (g *GameState) PendingGrowth() int { return g.growth }
func (g *GameState) Delay() time.Duration { return g.delay }
func (g *GameState) Ticks() int { return g.ticks }
func (g *GameState) Status() Status { return g.status }
func (g *GameState) Reason() EndReason { return g.reason }
func (g *GameState) Trophy() (Trophy, bool) { return g.trophies.Current() }
func (g *GameState) Head() core.Point { return g.body.PeekHead() }
func (g *GameState) Snake() []core.Point { return g.body.Points() }
func (g *GameState) Length() int { return g.body.Len() }
func (g *GameState) CrashAt() (core.Point, bool) { return g.crashAt, g.crashed }
