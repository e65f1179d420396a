package parameter

import "time"

// Audio output
const (
	AudioSampleRate    = 44100
	AudioBufferLatency = 100 * time.Millisecond
	DefaultVolume      = 0.3
)

// Trophy chime: two rising sine notes
const (
	TrophyNote1Duration = 60 * time.Millisecond
	TrophyNote2Duration = 120 * time.Millisecond
	TrophyAttack        = 5 * time.Millisecond
	TrophyRelease       = 50 * time.Millisecond
)

// Expiry blip
const (
	ExpireDuration = 90 * time.Millisecond
	ExpireAttack   = 5 * time.Millisecond
	ExpireRelease  = 70 * time.Millisecond
)

// Crash buzz
const (
	CrashDuration = 350 * time.Millisecond
	CrashAttack   = 5 * time.Millisecond
	CrashRelease  = 250 * time.Millisecond
)

// Win arpeggio, per note
const (
	WinNoteDuration = 110 * time.Millisecond
	WinAttack       = 5 * time.Millisecond
	WinRelease      = 60 * time.Millisecond
	WinNoteGap      = 30 * time.Millisecond
)
