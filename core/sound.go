package core

// SoundType identifies a game sound effect
type SoundType uint8

const (
	SoundTrophy SoundType = iota // trophy eaten
	SoundExpire                  // trophy timed out
	SoundCrash                   // game lost
	SoundWin                     // game won
	SoundCount
)

func (s SoundType) String() string {
	switch s {
	case SoundTrophy:
		return "trophy"
	case SoundExpire:
		return "expire"
	case SoundCrash:
		return "crash"
	case SoundWin:
		return "win"
	}
	return "unknown"
}
