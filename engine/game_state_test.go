package engine

import (
	"errors"
	"math/rand/v2"
	"testing"
	"time"

	"github.com/lixenwraith/trophy-snake/board"
	"github.com/lixenwraith/trophy-snake/core"
	"github.com/lixenwraith/trophy-snake/parameter"
)

var testEpoch = time.Date(2024, 1, 1, 0, 0, 0, 0, time.UTC)

// newTestState builds a running game with a hand-placed snake (tail first) and no trophy
func newTestState(t *testing.T, rows, cols int, dir core.Direction, body ...core.Point) (*GameState, *MockTimeProvider) {
	t.Helper()
	clock := NewMockTimeProvider(testEpoch)
	rng := rand.New(rand.NewPCG(7, 11))
	g := &GameState{
		board:    board.New(rows, cols),
		body:     NewBody(len(body)),
		trophies: NewTrophyManager(rng),
		clock:    clock,
		dir:      dir,
		size:     len(body),
		delay:    StartDelay(cols),
	}
	for _, p := range body {
		if !g.board.Set(p, board.CellSegment) {
			t.Fatalf("Test body point %v is not interior", p)
		}
		g.body.PushHead(p)
	}
	return g, clock
}

// placeTrophy replaces any active trophy with one at p
func placeTrophy(g *GameState, p core.Point, value int, lifespan time.Duration) {
	if cur, ok := g.trophies.Current(); ok && g.board.Get(cur.Pos) == board.TrophyCell(cur.Value) {
		g.board.Set(cur.Pos, board.CellEmpty)
	}
	g.trophies.current = Trophy{Pos: p, Value: value, CreatedAt: g.clock.Now(), Lifespan: lifespan}
	g.trophies.present = true
	g.board.Set(p, board.TrophyCell(value))
}

func row(r, fromCol, toCol int) []core.Point {
	var pts []core.Point
	for c := fromCol; c <= toCol; c++ {
		pts = append(pts, core.Point{Row: r, Col: c})
	}
	return pts
}

// assertLockstep checks the body and the board agree on every segment
func assertLockstep(t *testing.T, g *GameState) {
	t.Helper()
	pts := g.Snake()
	for _, p := range pts {
		if g.board.Get(p) != board.CellSegment {
			t.Errorf("Expected segment at body point %v, got %q", p, g.board.Get(p))
		}
	}
	if got := g.board.Count(board.CellSegment); got != len(pts) {
		t.Errorf("Expected %d segment cells, got %d", len(pts), got)
	}
}

func TestTickIntoEmptyTranslatesBody(t *testing.T) {
	g, _ := newTestState(t, 12, 20, core.DirRight, row(5, 2, 6)...)
	placeTrophy(g, core.Point{Row: 1, Col: 1}, 4, 9*time.Second)

	res := g.Tick()

	if res.Status != StatusRunning {
		t.Fatalf("Expected running, got %s", res.Status)
	}
	if res.Ate != 0 || res.Spawned || res.Expired {
		t.Errorf("Expected plain move, got %+v", res)
	}
	if g.Length() != 5 {
		t.Errorf("Expected length 5, got %d", g.Length())
	}
	if got := g.board.Count(board.CellSegment); got != 5 {
		t.Errorf("Expected exactly 5 segment cells, got %d", got)
	}
	if got := g.board.Get(core.Point{Row: 5, Col: 2}); got != board.CellEmpty {
		t.Errorf("Expected vacated tail cell to be empty, got %q", got)
	}
	if g.Head() != (core.Point{Row: 5, Col: 7}) {
		t.Errorf("Expected head (5,7), got %v", g.Head())
	}
	if g.Size() != 5 {
		t.Errorf("Expected size 5, got %d", g.Size())
	}
	assertLockstep(t, g)
}

func TestTrophyGrowthSpreadOverValueTicks(t *testing.T) {
	for _, value := range []int{1, 3, 9} {
		g, _ := newTestState(t, 12, 30, core.DirRight, row(5, 2, 6)...)
		placeTrophy(g, core.Point{Row: 5, Col: 7}, value, 9*time.Second)
		startDelay := g.Delay()
		tail := g.Snake()[0]

		res := g.Tick()
		if res.Ate != value {
			t.Fatalf("value %d: expected Ate %d, got %d", value, value, res.Ate)
		}
		if !res.Spawned {
			t.Errorf("value %d: expected a replacement trophy in the same tick", value)
		}
		if g.Size() != 5+value {
			t.Errorf("value %d: expected size %d, got %d", value, 5+value, g.Size())
		}
		// Keep the replacement out of the path
		placeTrophy(g, core.Point{Row: 1, Col: 1}, 2, 9*time.Second)

		for k := 1; k <= value; k++ {
			if k > 1 {
				g.Tick()
			}
			if g.Length() != 5+k {
				t.Errorf("value %d tick %d: expected length %d, got %d", value, k, 5+k, g.Length())
			}
			if g.Snake()[0] != tail {
				t.Errorf("value %d tick %d: expected tail to stay at %v, got %v", value, k, tail, g.Snake()[0])
			}
		}
		if g.PendingGrowth() != 0 {
			t.Errorf("value %d: expected growth drained, got %d", value, g.PendingGrowth())
		}

		g.Tick()
		if g.Length() != 5+value {
			t.Errorf("value %d: expected length to settle at %d, got %d", value, 5+value, g.Length())
		}
		if g.Snake()[0] == tail {
			t.Errorf("value %d: expected tail to move once growth drained", value)
		}

		wantDelay := max(startDelay-time.Duration(value)*parameter.DelayStep, parameter.MinDelay)
		if g.Delay() != wantDelay {
			t.Errorf("value %d: expected delay %v, got %v", value, wantDelay, g.Delay())
		}
		assertLockstep(t, g)
	}
}

func TestReversalEndsGameBeforeMove(t *testing.T) {
	body := []core.Point{{Row: 8, Col: 4}, {Row: 7, Col: 4}, {Row: 6, Col: 4}, {Row: 5, Col: 4}, {Row: 4, Col: 4}}
	g, _ := newTestState(t, 12, 12, core.DirUp, body...)
	before := g.Snake()

	if g.SetDirection(core.DirDown) {
		t.Fatal("Expected reversal to be rejected")
	}
	if g.Status() != StatusLost {
		t.Errorf("Expected lost, got %s", g.Status())
	}
	if g.Reason() != ReasonReversal {
		t.Errorf("Expected reversal reason, got %s", g.Reason())
	}
	if g.Reason().Message() != parameter.MessageReversal {
		t.Errorf("Expected reversal message, got %q", g.Reason().Message())
	}

	g.Tick()
	after := g.Snake()
	for i := range before {
		if before[i] != after[i] {
			t.Errorf("Expected no position update, index %d moved from %v to %v", i, before[i], after[i])
		}
	}
	if g.Ticks() != 0 {
		t.Errorf("Expected no ticks after game end, got %d", g.Ticks())
	}
}

func TestPerpendicularAndSameTurnsAccepted(t *testing.T) {
	g, _ := newTestState(t, 12, 20, core.DirRight, row(5, 2, 6)...)

	if !g.SetDirection(core.DirRight) {
		t.Error("Expected same direction to be accepted")
	}
	if !g.SetDirection(core.DirUp) {
		t.Error("Expected perpendicular turn to be accepted")
	}
	if g.Direction() != core.DirUp || g.Status() != StatusRunning {
		t.Errorf("Expected running heading up, got %s heading %s", g.Status(), g.Direction())
	}
}

func TestSelfCollisionLoses(t *testing.T) {
	body := []core.Point{{Row: 3, Col: 3}, {Row: 3, Col: 4}, {Row: 3, Col: 5}, {Row: 4, Col: 5}, {Row: 4, Col: 4}}
	g, _ := newTestState(t, 10, 10, core.DirUp, body...)
	placeTrophy(g, core.Point{Row: 8, Col: 8}, 5, 9*time.Second)

	res := g.Tick()

	if res.Status != StatusLost || g.Reason() != ReasonCollision {
		t.Fatalf("Expected collision loss, got %s/%s", res.Status, g.Reason())
	}
	crash, ok := g.CrashAt()
	if !ok || crash != (core.Point{Row: 3, Col: 4}) {
		t.Errorf("Expected crash at (3,4), got %v (%v)", crash, ok)
	}
	if g.board.Get(core.Point{Row: 3, Col: 3}) != board.CellEmpty {
		t.Error("Expected tail erased on the losing frame")
	}
	if g.Length() != 4 {
		t.Errorf("Expected length 4 after tail pop, got %d", g.Length())
	}
	assertLockstep(t, g)
}

func TestBorderCollisionKeepsBorder(t *testing.T) {
	body := []core.Point{{Row: 5, Col: 3}, {Row: 4, Col: 3}, {Row: 3, Col: 3}, {Row: 2, Col: 3}, {Row: 1, Col: 3}}
	g, _ := newTestState(t, 10, 10, core.DirUp, body...)
	placeTrophy(g, core.Point{Row: 8, Col: 8}, 5, 9*time.Second)

	g.Tick()

	if g.Status() != StatusLost || g.Reason() != ReasonCollision {
		t.Fatalf("Expected collision loss, got %s/%s", g.Status(), g.Reason())
	}
	if g.board.Get(core.Point{Row: 0, Col: 3}) != board.CellBorder {
		t.Error("Expected border cell to survive the crash")
	}
}

func TestTrophyExpiresAndIsReplaced(t *testing.T) {
	g, clock := newTestState(t, 12, 40, core.DirRight, row(5, 2, 6)...)
	old := core.Point{Row: 10, Col: 38}
	placeTrophy(g, old, 7, 2*time.Second)

	clock.Advance(1999 * time.Millisecond)
	res := g.Tick()
	if res.Expired {
		t.Fatal("Expected trophy to survive before its lifespan")
	}
	if g.board.Get(old) != board.TrophyCell(7) {
		t.Errorf("Expected trophy digit at %v, got %q", old, g.board.Get(old))
	}

	clock.Advance(time.Millisecond)
	res = g.Tick()
	if !res.Expired || !res.Spawned {
		t.Fatalf("Expected expiry and respawn, got %+v", res)
	}
	cur, ok := g.Trophy()
	if !ok {
		t.Fatal("Expected a replacement trophy")
	}
	if !cur.CreatedAt.Equal(clock.Now()) {
		t.Errorf("Expected replacement created at %v, got %v", clock.Now(), cur.CreatedAt)
	}
	if cur.Pos != old && g.board.Get(old) != board.CellEmpty {
		t.Errorf("Expected expired cell cleared, got %q", g.board.Get(old))
	}
}

func TestWinOnGrowthReachingHalfPerimeter(t *testing.T) {
	// 4x5 board: threshold 6, interior 2x3
	body := []core.Point{{Row: 2, Col: 1}, {Row: 2, Col: 2}, {Row: 2, Col: 3}, {Row: 1, Col: 3}, {Row: 1, Col: 2}}
	g, _ := newTestState(t, 4, 5, core.DirLeft, body...)
	placeTrophy(g, core.Point{Row: 1, Col: 1}, 1, 9*time.Second)

	if g.WinLength() != 6 {
		t.Fatalf("Expected threshold 6, got %d", g.WinLength())
	}

	res := g.Tick()

	if res.Status != StatusWon {
		t.Fatalf("Expected won, got %s", res.Status)
	}
	if g.Reason() != ReasonPerimeter {
		t.Errorf("Expected perimeter reason, got %s", g.Reason())
	}
	if g.Size() != 6 {
		t.Errorf("Expected size 6, got %d", g.Size())
	}
	assertLockstep(t, g)
}

func TestFullBoardEndsAsWin(t *testing.T) {
	// 4x4 board: interior 2x2, threshold 5
	body := []core.Point{{Row: 2, Col: 1}, {Row: 2, Col: 2}, {Row: 1, Col: 2}}
	g, _ := newTestState(t, 4, 4, core.DirLeft, body...)
	placeTrophy(g, core.Point{Row: 1, Col: 1}, 1, 9*time.Second)

	res := g.Tick()

	if res.Status != StatusWon || g.Reason() != ReasonBoardFull {
		t.Fatalf("Expected board-full win, got %s/%s", res.Status, g.Reason())
	}
	if res.Spawned {
		t.Error("Expected no spawn on a full board")
	}
}

func TestStatusTransitionsOnce(t *testing.T) {
	g, _ := newTestState(t, 12, 20, core.DirRight, row(5, 2, 6)...)

	g.SetDirection(core.DirLeft)
	if g.Status() != StatusLost {
		t.Fatalf("Expected lost, got %s", g.Status())
	}

	g.Quit()
	g.SetDirection(core.DirUp)
	g.Tick()

	if g.Status() != StatusLost || g.Reason() != ReasonReversal {
		t.Errorf("Expected status to stay lost/reversal, got %s/%s", g.Status(), g.Reason())
	}
}

func TestQuitStopsRunningGame(t *testing.T) {
	g, _ := newTestState(t, 12, 20, core.DirRight, row(5, 2, 6)...)
	g.Quit()
	if g.Status() != StatusQuit || g.Reason() != ReasonInterrupted {
		t.Errorf("Expected quit/interrupted, got %s/%s", g.Status(), g.Reason())
	}
}

func TestNewGameStateLaysInitialSnake(t *testing.T) {
	clock := NewMockTimeProvider(testEpoch)
	for seed := uint64(0); seed < 8; seed++ {
		g, err := NewGameState(24, 80, rand.New(rand.NewPCG(seed, 1)), clock)
		if err != nil {
			t.Fatalf("seed %d: unexpected error: %v", seed, err)
		}

		pts := g.Snake()
		if len(pts) != parameter.InitialSnakeLength || g.Size() != parameter.InitialSnakeLength {
			t.Fatalf("seed %d: expected %d segments, got %d (size %d)", seed, parameter.InitialSnakeLength, len(pts), g.Size())
		}
		if pts[0] != (core.Point{Row: 11, Col: 37}) {
			t.Errorf("seed %d: expected tail at (11,37), got %v", seed, pts[0])
		}
		for i := 1; i < len(pts); i++ {
			if pts[i-1].Step(g.Direction()) != pts[i] {
				t.Errorf("seed %d: segment %d not one step %s from previous", seed, i, g.Direction())
			}
		}
		if _, ok := g.Trophy(); !ok {
			t.Errorf("seed %d: expected an initial trophy", seed)
		}
		if g.Delay() != StartDelay(80) {
			t.Errorf("seed %d: expected start delay %v, got %v", seed, StartDelay(80), g.Delay())
		}
		assertLockstep(t, g)
	}
}

func TestNewGameStateRejectsTinyBoard(t *testing.T) {
	clock := NewMockTimeProvider(testEpoch)
	_, err := NewGameState(5, 6, rand.New(rand.NewPCG(1, 1)), clock)
	if !errors.Is(err, ErrBoardTooSmall) {
		t.Errorf("Expected ErrBoardTooSmall, got %v", err)
	}
}

// TestRandomPlayInvariants drives seeded games with random legal turns and checks
// the trophy and body invariants after every tick
func TestRandomPlayInvariants(t *testing.T) {
	for seed := uint64(1); seed <= 20; seed++ {
		clock := NewMockTimeProvider(testEpoch)
		rng := rand.New(rand.NewPCG(seed, 99))
		g, err := NewGameState(16, 30, rand.New(rand.NewPCG(seed, 3)), clock)
		if err != nil {
			t.Fatalf("seed %d: %v", seed, err)
		}

		for i := 0; i < 500 && !g.Status().Terminal(); i++ {
			if rng.IntN(4) == 0 {
				d := core.Direction(rng.IntN(core.DirectionCount))
				if d != g.Direction().Opposite() {
					g.SetDirection(d)
				}
			}
			clock.Advance(time.Duration(rng.IntN(800)) * time.Millisecond)
			prevSize := g.Size()
			res := g.Tick()

			if g.Size() != prevSize+res.Ate {
				t.Fatalf("seed %d tick %d: size %d -> %d with Ate %d", seed, i, prevSize, g.Size(), res.Ate)
			}

			trophyCells := 0
			g.board.EachInterior(func(_ core.Point, c board.Cell) {
				if c.IsTrophy() {
					trophyCells++
				}
			})
			cur, present := g.Trophy()
			if trophyCells > 1 {
				t.Fatalf("seed %d tick %d: %d trophies on board", seed, i, trophyCells)
			}
			if present && g.board.Get(cur.Pos) != board.TrophyCell(cur.Value) {
				t.Fatalf("seed %d tick %d: trophy cell %q does not match value %d", seed, i, g.board.Get(cur.Pos), cur.Value)
			}
			if g.Status() == StatusRunning && !present {
				t.Fatalf("seed %d tick %d: running game without a trophy", seed, i)
			}
			if g.Delay() < parameter.MinDelay {
				t.Fatalf("seed %d tick %d: delay %v below floor", seed, i, g.Delay())
			}
			assertLockstep(t, g)
		}
	}
}
