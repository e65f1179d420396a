package engine

import (
	"math/rand/v2"
	"time"

	"github.com/lixenwraith/trophy-snake/board"
	"github.com/lixenwraith/trophy-snake/core"
	"github.com/lixenwraith/trophy-snake/parameter"
)

// Trophy is a timed collectible; Value is both the reward and the digit shown
type Trophy struct {
	Pos       core.Point
	Value     int
	CreatedAt time.Time
	Lifespan  time.Duration
}

// Expired reports whether the trophy lifespan has elapsed at now
func (t Trophy) Expired(now time.Time) bool {
	return now.Sub(t.CreatedAt) >= t.Lifespan
}

// TrophyManager owns the single active trophy
type TrophyManager struct {
	rng     *rand.Rand
	current Trophy
	present bool
}

// NewTrophyManager creates a manager with no active trophy
func NewTrophyManager(rng *rand.Rand) *TrophyManager {
	return &TrophyManager{rng: rng}
}

// Present reports whether a trophy is on the board
func (m *TrophyManager) Present() bool { return m.present }

// Current returns the active trophy
func (m *TrophyManager) Current() (Trophy, bool) {
	return m.current, m.present
}

// Spawn places a new trophy on a random empty interior cell and draws it
// Random sampling is bounded; on exhaustion a scan picks among the remaining
// empty cells
// Returns false only when the board has no empty cell left
func (m *TrophyManager) Spawn(b *board.Board, now time.Time) bool {
	pos, ok := m.pickEmpty(b)
	if !ok {
		return false
	}

	value := parameter.TrophyMinValue + m.rng.IntN(parameter.TrophyMaxValue-parameter.TrophyMinValue+1)
	minSec := int(parameter.TrophyMinLifespan / time.Second)
	maxSec := int(parameter.TrophyMaxLifespan / time.Second)
	lifespan := time.Duration(minSec+m.rng.IntN(maxSec-minSec+1)) * time.Second

	m.current = Trophy{
		Pos:       pos,
		Value:     value,
		CreatedAt: now,
		Lifespan:  lifespan,
	}
	m.present = true
	b.Set(pos, board.TrophyCell(value))
	return true
}

// CheckExpiry removes the trophy once its lifespan has elapsed
// The cell is cleared only while it still shows this trophy, so a snake
// segment is never erased
func (m *TrophyManager) CheckExpiry(b *board.Board, now time.Time) bool {
	if !m.present || !m.current.Expired(now) {
		return false
	}
	if b.Get(m.current.Pos) == board.TrophyCell(m.current.Value) {
		b.Set(m.current.Pos, board.CellEmpty)
	}
	m.present = false
	return true
}

// Eat marks the trophy consumed and returns its value
// The cell is left for the caller to overwrite with the new head
func (m *TrophyManager) Eat() int {
	if !m.present {
		return 0
	}
	m.present = false
	return m.current.Value
}

func (m *TrophyManager) pickEmpty(b *board.Board) (core.Point, bool) {
	rows, cols := b.InteriorRows(), b.InteriorCols()
	if rows == 0 || cols == 0 {
		return core.Point{}, false
	}

	for range parameter.TrophySpawnAttempts {
		p := core.Point{Row: 1 + m.rng.IntN(rows), Col: 1 + m.rng.IntN(cols)}
		if b.Get(p) == board.CellEmpty {
			return p, true
		}
	}

	var empty []core.Point
	b.EachInterior(func(p core.Point, c board.Cell) {
		if c == board.CellEmpty {
			empty = append(empty, p)
		}
	})
	if len(empty) == 0 {
		return core.Point{}, false
	}
	return empty[m.rng.IntN(len(empty))], true
}
