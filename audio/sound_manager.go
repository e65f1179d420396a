// Package audio synthesizes the game's sound effects through beep
package audio

import (
	"log"
	"sync"
	"sync/atomic"

	"github.com/gopxl/beep"
	"github.com/gopxl/beep/speaker"

	"github.com/lixenwraith/trophy-snake/core"
	"github.com/lixenwraith/trophy-snake/parameter"
)

// Player is the audio surface the game session uses
type Player interface {
	Play(core.SoundType) bool
	ToggleMute() bool
}

// speakerInit is swapped in tests so no audio device is opened
var speakerInit = func(sr beep.SampleRate) error {
	return speaker.Init(sr, sr.N(parameter.AudioBufferLatency))
}

// SoundManager mixes effects into the speaker
// Without an audio device it stays silent and Play reports false
type SoundManager struct {
	mu       sync.Mutex
	cfg      Config
	mixer    *beep.Mixer
	disabled atomic.Bool
	running  atomic.Bool
	muted    atomic.Bool
}

func NewSoundManager() *SoundManager {
	return &SoundManager{
		cfg:   DefaultConfig(),
		mixer: &beep.Mixer{},
	}
}

func (sm *SoundManager) Name() string { return "audio" }

func (sm *SoundManager) Dependencies() []string { return nil }

// Init opens the speaker
// args[0]: Config (optional); device failure disables audio without an error
func (sm *SoundManager) Init(args ...any) error {
	sm.mu.Lock()
	defer sm.mu.Unlock()

	if len(args) > 0 {
		if cfg, ok := args[0].(Config); ok {
			sm.cfg = cfg
		}
	}
	sm.cfg = sm.cfg.clamp()

	if !sm.cfg.Enabled {
		sm.disabled.Store(true)
		return nil
	}
	if err := speakerInit(beep.SampleRate(sm.cfg.SampleRate)); err != nil {
		log.Printf("audio disabled: %v", err)
		sm.disabled.Store(true)
	}
	return nil
}

// Start attaches the mixer to the speaker
func (sm *SoundManager) Start() error {
	sm.mu.Lock()
	defer sm.mu.Unlock()

	if sm.disabled.Load() || sm.running.Load() {
		return nil
	}
	speaker.Play(sm.mixer)
	sm.running.Store(true)
	return nil
}

// Stop drops queued sounds; the speaker itself stays open for the process
func (sm *SoundManager) Stop() error {
	sm.mu.Lock()
	defer sm.mu.Unlock()

	if !sm.running.Swap(false) {
		return nil
	}
	speaker.Lock()
	sm.mixer.Clear()
	speaker.Unlock()
	return nil
}

// Play queues st; returns false when audio is off, muted, or st is unknown
func (sm *SoundManager) Play(st core.SoundType) bool {
	if !sm.running.Load() || sm.muted.Load() {
		return false
	}
	s := GetSoundEffect(st, sm.cfg)
	if s == nil {
		return false
	}
	speaker.Lock()
	sm.mixer.Add(s)
	speaker.Unlock()
	return true
}

// ToggleMute flips the mute flag and returns the new state
func (sm *SoundManager) ToggleMute() bool {
	for {
		old := sm.muted.Load()
		if sm.muted.CompareAndSwap(old, !old) {
			return !old
		}
	}
}
