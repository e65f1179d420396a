package audio

import (
	"math"
	"math/rand/v2"
	"time"

	"github.com/gopxl/beep"
	"github.com/gopxl/beep/effects"
	"github.com/gopxl/beep/generators"

	"github.com/lixenwraith/trophy-snake/core"
	"github.com/lixenwraith/trophy-snake/parameter"
)

// WaveType selects the oscillator shape
type WaveType int

const (
	WaveSine WaveType = iota
	WaveSquare
	WaveSaw
	WaveNoise
)

type oscillator struct {
	freq     float64
	phase    float64
	duration int
	position int
	wave     WaveType
	rate     beep.SampleRate
}

// NewOscillator returns a finite streamer producing one wave shape
func NewOscillator(freq float64, duration time.Duration, wave WaveType, rate beep.SampleRate) beep.Streamer {
	return &oscillator{
		freq:     freq,
		duration: rate.N(duration),
		wave:     wave,
		rate:     rate,
	}
}

func (o *oscillator) Stream(samples [][2]float64) (n int, ok bool) {
	for i := range samples {
		if o.position >= o.duration {
			return i, i > 0
		}

		var val float64
		switch o.wave {
		case WaveSine:
			val = math.Sin(2 * math.Pi * o.phase)
		case WaveSquare:
			if o.phase < 0.5 {
				val = 1.0
			} else {
				val = -1.0
			}
		case WaveSaw:
			val = 2.0 * (o.phase - 0.5)
		case WaveNoise:
			val = rand.Float64()*2 - 1
		}

		samples[i][0] = val
		samples[i][1] = val

		o.phase += o.freq / float64(o.rate)
		o.phase -= math.Floor(o.phase)
		o.position++
	}
	return len(samples), true
}

func (o *oscillator) Err() error { return nil }

// envelope applies linear attack and release to a stream
type envelope struct {
	streamer       beep.Streamer
	position       int
	attackSamples  int
	releaseSamples int
	totalSamples   int
}

// NewEnvelope shapes s with a linear attack and release over duration
func NewEnvelope(s beep.Streamer, duration, attack, release time.Duration, rate beep.SampleRate) beep.Streamer {
	return &envelope{
		streamer:       s,
		attackSamples:  rate.N(attack),
		releaseSamples: rate.N(release),
		totalSamples:   rate.N(duration),
	}
}

func (e *envelope) Stream(samples [][2]float64) (n int, ok bool) {
	n, ok = e.streamer.Stream(samples)

	releaseStart := e.totalSamples - e.releaseSamples
	for i := 0; i < n; i++ {
		if e.position >= e.totalSamples {
			return i, i > 0
		}

		vol := 1.0
		if e.position < e.attackSamples {
			vol = float64(e.position) / float64(e.attackSamples)
		}
		if e.position >= releaseStart && e.releaseSamples > 0 {
			vol = math.Max(0, float64(e.totalSamples-e.position)/float64(e.releaseSamples))
		}

		samples[i][0] *= vol
		samples[i][1] *= vol
		e.position++
	}
	return n, ok
}

func (e *envelope) Err() error { return e.streamer.Err() }

// newVolume scales linearly; math.Log2(0) is -Inf so zero becomes silent
func newVolume(s beep.Streamer, vol float64) beep.Streamer {
	if vol <= 0 {
		return &effects.Volume{Streamer: s, Base: 2, Silent: true}
	}
	return &effects.Volume{Streamer: s, Base: 2, Volume: math.Log2(vol)}
}

func tone(freq float64, d, attack, release time.Duration, wave WaveType, rate beep.SampleRate) beep.Streamer {
	return NewEnvelope(NewOscillator(freq, d, wave, rate), d, attack, release, rate)
}

// CreateTrophySound is a rising two-note chime (E6 then A6)
func CreateTrophySound(cfg Config) beep.Streamer {
	rate := beep.SampleRate(cfg.SampleRate)
	seq := beep.Seq(
		tone(1318.51, parameter.TrophyNote1Duration, parameter.TrophyAttack, parameter.TrophyRelease, WaveSine, rate),
		tone(1760.0, parameter.TrophyNote2Duration, parameter.TrophyAttack, parameter.TrophyRelease, WaveSine, rate),
	)
	return newVolume(seq, cfg.Volume)
}

// CreateExpireSound is a short low square blip
func CreateExpireSound(cfg Config) beep.Streamer {
	rate := beep.SampleRate(cfg.SampleRate)
	s := tone(220.0, parameter.ExpireDuration, parameter.ExpireAttack, parameter.ExpireRelease, WaveSquare, rate)
	return newVolume(s, cfg.Volume*0.5)
}

// CreateCrashSound mixes a saw buzz with noise
func CreateCrashSound(cfg Config) beep.Streamer {
	rate := beep.SampleRate(cfg.SampleRate)
	mixed := beep.Mix(
		newVolume(tone(90.0, parameter.CrashDuration, parameter.CrashAttack, parameter.CrashRelease, WaveSaw, rate), 0.7),
		newVolume(tone(0, parameter.CrashDuration, parameter.CrashAttack, parameter.CrashRelease, WaveNoise, rate), 0.3),
	)
	return newVolume(mixed, cfg.Volume)
}

// CreateWinSound is a C major arpeggio with short rests between notes
func CreateWinSound(cfg Config) beep.Streamer {
	rate := beep.SampleRate(cfg.SampleRate)
	var notes []beep.Streamer
	for i, f := range []float64{523.25, 659.25, 783.99, 1046.50} {
		if i > 0 {
			notes = append(notes, generators.Silence(rate.N(parameter.WinNoteGap)))
		}
		notes = append(notes, tone(f, parameter.WinNoteDuration, parameter.WinAttack, parameter.WinRelease, WaveSquare, rate))
	}
	return newVolume(beep.Seq(notes...), cfg.Volume*0.6)
}

// GetSoundEffect builds a fresh streamer for st, nil for unknown types
func GetSoundEffect(st core.SoundType, cfg Config) beep.Streamer {
	switch st {
	case core.SoundTrophy:
		return CreateTrophySound(cfg)
	case core.SoundExpire:
		return CreateExpireSound(cfg)
	case core.SoundCrash:
		return CreateCrashSound(cfg)
	case core.SoundWin:
		return CreateWinSound(cfg)
	}
	return nil
}
