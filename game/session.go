// Package game runs one interactive session: the tick, draw and input loop
// followed by the end-of-game sequence
package game

import (
	"context"
	"errors"
	"fmt"
	"log"
	"math/rand/v2"
	"time"

	"github.com/gdamore/tcell/v2"

	"github.com/lixenwraith/trophy-snake/audio"
	"github.com/lixenwraith/trophy-snake/core"
	"github.com/lixenwraith/trophy-snake/engine"
	"github.com/lixenwraith/trophy-snake/input"
	"github.com/lixenwraith/trophy-snake/parameter"
	"github.com/lixenwraith/trophy-snake/render"
	"github.com/lixenwraith/trophy-snake/status"
	"github.com/lixenwraith/trophy-snake/terminal"
)

// seedMix decorrelates the two PCG words derived from one seed
const seedMix = 0x9e3779b97f4a7c15

// Display is the terminal surface a session needs
type Display interface {
	Size() (rows, cols int)
	Screen() tcell.Screen
	ReadKey(ctx context.Context, timeout time.Duration) (*tcell.EventKey, error)
	Drain()
}

// Options configures a session; zero fields get working defaults
type Options struct {
	Seed    uint64
	Clock   engine.Clock
	Sleeper Sleeper
	Player  audio.Player
	Metrics *status.Registry
	Keys    *input.KeyTable
	Styles  *render.Styles
}

// Result summarizes a finished session
type Result struct {
	Status  engine.Status
	Reason  engine.EndReason
	Score   int
	Eaten   int
	Expired int
	Ticks   int
	Seed    uint64
}

// Session owns the game state for one run; not safe for concurrent use
type Session struct {
	display  Display
	renderer *render.Renderer
	opts     Options
	state    *engine.GameState
	eaten    int
	expired  int
}

func NewSession(display Display, opts Options) *Session {
	if opts.Clock == nil {
		opts.Clock = engine.NewTimeProvider()
	}
	if opts.Sleeper == nil {
		opts.Sleeper = TimerSleeper{}
	}
	if opts.Metrics == nil {
		opts.Metrics = status.NewRegistry()
	}
	if opts.Keys == nil {
		opts.Keys = input.DefaultKeyTable()
	}
	styles := render.DefaultStyles()
	if opts.Styles != nil {
		styles = *opts.Styles
	}
	return &Session{
		display:  display,
		renderer: render.New(display.Screen(), styles),
		opts:     opts,
	}
}

// State exposes the running game, nil before Run
func (s *Session) State() *engine.GameState { return s.state }

// Run plays until the game ends or ctx is cancelled, then shows the end sequence
func (s *Session) Run(ctx context.Context) (Result, error) {
	rows, cols := s.display.Size()
	rng := rand.New(rand.NewPCG(s.opts.Seed, s.opts.Seed^seedMix))
	state, err := engine.NewGameState(rows, cols, rng, s.opts.Clock)
	if err != nil {
		return Result{Seed: s.opts.Seed}, fmt.Errorf("game: start: %w", err)
	}
	s.state = state
	log.Printf("session start: %dx%d seed=%d delay=%v heading=%s win=%d",
		rows, cols, s.opts.Seed, state.Delay(), state.Direction(), state.WinLength())
	if tr, ok := state.Trophy(); ok {
		log.Printf("trophy spawn: %d at %s for %v", tr.Value, tr.Pos, tr.Lifespan)
	}

	if err := s.loop(ctx); err != nil {
		return s.result(), err
	}
	s.publishEnd()
	log.Printf("session end: %s (%s) score=%d ticks=%d", state.Status(), state.Reason(), state.Size(), state.Ticks())

	s.endSequence(ctx)
	return s.result(), nil
}

func (s *Session) loop(ctx context.Context) error {
	g := s.state
	for {
		res := g.Tick()
		s.record(res)
		s.draw()
		if g.Status().Terminal() {
			return nil
		}

		ev, err := s.display.ReadKey(ctx, g.Delay())
		if err != nil {
			if ctx.Err() != nil || errors.Is(err, terminal.ErrClosed) {
				log.Printf("session interrupted: %v", err)
				g.Quit()
				return nil
			}
			return fmt.Errorf("game: read key: %w", err)
		}

		intent := s.opts.Keys.Map(ev)
		switch intent.Type {
		case input.IntentTurn:
			g.SetDirection(intent.Direction)
		case input.IntentQuit:
			g.Quit()
		case input.IntentMute:
			if s.opts.Player != nil {
				log.Printf("sound muted: %v", s.opts.Player.ToggleMute())
			}
		}
		if g.Status().Terminal() {
			s.draw()
			return nil
		}
	}
}

// record logs tick events and updates metrics and sounds
func (s *Session) record(res engine.TickResult) {
	g := s.state
	m := s.opts.Metrics

	if res.Ate > 0 {
		s.eaten++
		m.Ints.Get(status.KeyTrophiesEaten).Add(1)
		log.Printf("trophy eaten: %d, size %d", res.Ate, g.Size())
		s.play(core.SoundTrophy)
	}
	if res.Expired {
		s.expired++
		m.Ints.Get(status.KeyTrophiesExpired).Add(1)
		log.Printf("trophy expired")
		s.play(core.SoundExpire)
	}
	if res.Spawned {
		if tr, ok := g.Trophy(); ok {
			log.Printf("trophy spawn: %d at %s for %v", tr.Value, tr.Pos, tr.Lifespan)
		}
	}

	m.Ints.Get(status.KeyTicks).Store(int64(g.Ticks()))
	m.Ints.Get(status.KeyScore).Store(int64(g.Size()))
	m.Ints.Get(status.KeySnakeLength).Store(int64(g.Length()))
	m.Floats.Get(status.KeyDelayMs).Set(float64(g.Delay()) / float64(time.Millisecond))
}

func (s *Session) publishEnd() {
	g := s.state
	s.opts.Metrics.Strings.Get(status.KeyResult).Store(g.Status().String())
	s.opts.Metrics.Strings.Get(status.KeyReason).Store(g.Reason().String())
	switch g.Status() {
	case engine.StatusLost:
		s.play(core.SoundCrash)
	case engine.StatusWon:
		s.play(core.SoundWin)
	}
}

func (s *Session) play(st core.SoundType) {
	if s.opts.Player != nil {
		s.opts.Player.Play(st)
	}
}

func (s *Session) draw() {
	s.renderer.DrawGame(s.state)
	s.renderer.Show()
}

// endSequence shows the result screens, then "Exiting"
// Cancellation skips the remaining result screens but not the farewell,
// which always stays up for ExitingPause before the terminal is restored
func (s *Session) endSequence(ctx context.Context) {
	if s.state.Status() != engine.StatusQuit {
		s.resultScreens(ctx)
	}
	s.renderer.Exiting()
	s.renderer.Show()
	_ = s.opts.Sleeper.Sleep(context.WithoutCancel(ctx), parameter.ExitingPause)
}

// resultScreens walks the reversal notice, final frame, banner and score;
// returns early when ctx is cancelled
func (s *Session) resultScreens(ctx context.Context) {
	g := s.state
	r := s.renderer
	pause := func(d time.Duration) bool {
		return s.opts.Sleeper.Sleep(ctx, d) == nil
	}

	if msg := g.Reason().Message(); msg != "" {
		r.Notice(msg)
		r.Show()
		ok := pause(parameter.ReversalPause)
		s.display.Drain()
		if !ok {
			return
		}
	}

	steps := []struct {
		show  func()
		pause time.Duration
	}{
		{func() {}, parameter.EndFramePause},
		{func() { r.Result(g.Status() == engine.StatusWon) }, parameter.ResultPause},
		{func() { r.Score(g.Size()) }, parameter.ScorePause},
	}
	for _, step := range steps {
		step.show()
		r.Show()
		if !pause(step.pause) {
			return
		}
	}
}

func (s *Session) result() Result {
	g := s.state
	return Result{
		Status:  g.Status(),
		Reason:  g.Reason(),
		Score:   g.Size(),
		Eaten:   s.eaten,
		Expired: s.expired,
		Ticks:   g.Ticks(),
		Seed:    s.opts.Seed,
	}
}
