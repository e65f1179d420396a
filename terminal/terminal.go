// Package terminal owns the tcell screen and turns its event stream into
// timed key reads for the game loop
package terminal

import (
	"context"
	"errors"
	"fmt"
	"sync"
	"time"

	"github.com/gdamore/tcell/v2"

	"github.com/lixenwraith/trophy-snake/core"
	"github.com/lixenwraith/trophy-snake/parameter"
)

// ErrClosed is returned by ReadKey once the event stream has ended
var ErrClosed = errors.New("terminal: event stream closed")

// Terminal wraps a tcell screen as a service
type Terminal struct {
	screen tcell.Screen
	events chan tcell.Event
	quit   chan struct{}

	mu      sync.Mutex
	inited  bool
	running bool
	stopped bool
}

// New wraps screen; nil selects the real terminal at Init
func New(screen tcell.Screen) *Terminal {
	return &Terminal{
		screen: screen,
		events: make(chan tcell.Event, parameter.EventQueueSize),
		quit:   make(chan struct{}),
	}
}

func (t *Terminal) Name() string { return "terminal" }

func (t *Terminal) Dependencies() []string { return nil }

// Init opens the screen in raw mode with the cursor hidden
func (t *Terminal) Init(args ...any) error {
	t.mu.Lock()
	defer t.mu.Unlock()

	if t.inited {
		return nil
	}
	if t.screen == nil {
		s, err := tcell.NewScreen()
		if err != nil {
			return fmt.Errorf("terminal: create screen: %w", err)
		}
		t.screen = s
	}
	if err := t.screen.Init(); err != nil {
		return fmt.Errorf("terminal: init screen: %w", err)
	}
	t.screen.HideCursor()
	t.screen.Clear()
	t.inited = true
	return nil
}

// Start pumps screen events into the internal queue
func (t *Terminal) Start() error {
	t.mu.Lock()
	defer t.mu.Unlock()

	if !t.inited {
		return errors.New("terminal: start before init")
	}
	if t.running {
		return nil
	}
	t.running = true
	core.Go(func() {
		t.screen.ChannelEvents(t.events, t.quit)
	})
	return nil
}

// Stop ends event delivery and restores the terminal
func (t *Terminal) Stop() error {
	t.mu.Lock()
	defer t.mu.Unlock()

	if t.stopped || !t.inited {
		return nil
	}
	t.stopped = true
	close(t.quit)
	t.screen.Fini()
	return nil
}

// Restore puts the terminal back into cooked mode; safe from a crash path
func (t *Terminal) Restore() {
	_ = t.Stop()
}

// Size reports the screen as rows by columns
func (t *Terminal) Size() (rows, cols int) {
	w, h := t.screen.Size()
	return h, w
}

// Screen exposes the underlying screen for drawing
func (t *Terminal) Screen() tcell.Screen { return t.screen }

// Show flushes pending draws
func (t *Terminal) Show() { t.screen.Show() }

// ReadKey waits up to timeout for a key press
// Returns nil with no error on timeout; resize events are absorbed
func (t *Terminal) ReadKey(ctx context.Context, timeout time.Duration) (*tcell.EventKey, error) {
	timer := time.NewTimer(timeout)
	defer timer.Stop()

	for {
		select {
		case <-ctx.Done():
			return nil, ctx.Err()
		case <-timer.C:
			return nil, nil
		case ev, ok := <-t.events:
			if !ok {
				return nil, ErrClosed
			}
			switch ev := ev.(type) {
			case *tcell.EventKey:
				return ev, nil
			case *tcell.EventResize:
				t.screen.Sync()
			}
		}
	}
}

// Drain discards queued events without blocking
func (t *Terminal) Drain() {
	for {
		select {
		case _, ok := <-t.events:
			if !ok {
				return
			}
		default:
			return
		}
	}
}
