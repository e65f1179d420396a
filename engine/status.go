package engine

import "github.com/lixenwraith/trophy-snake/parameter"

// Status is the game lifecycle state; anything but StatusRunning is terminal
type Status uint8

const (
	StatusRunning Status = iota
	StatusLost
	StatusWon
	StatusQuit
)

func (s Status) String() string {
	switch s {
	case StatusRunning:
		return "running"
	case StatusLost:
		return "lost"
	case StatusWon:
		return "won"
	case StatusQuit:
		return "quit"
	}
	return "unknown"
}

// Terminal reports whether no further updates may occur
func (s Status) Terminal() bool {
	return s != StatusRunning
}

// EndReason records why the game stopped
type EndReason uint8

const (
	ReasonNone EndReason = iota
	ReasonCollision
	ReasonReversal
	ReasonPerimeter
	ReasonBoardFull
	ReasonInterrupted
)

func (r EndReason) String() string {
	switch r {
	case ReasonNone:
		return "none"
	case ReasonCollision:
		return "collision"
	case ReasonReversal:
		return "reversal"
	case ReasonPerimeter:
		return "perimeter"
	case ReasonBoardFull:
		return "board full"
	case ReasonInterrupted:
		return "interrupted"
	}
	return "unknown"
}

// Message returns the in-game notice shown before the end screen, if any
func (r EndReason) Message() string {
	if r == ReasonReversal {
		return parameter.MessageReversal
	}
	return ""
}
