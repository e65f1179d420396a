package parameter

import "time"

// Glyphs drawn for board cells
const (
	GlyphEmpty   = ' '
	GlyphSegment = '0'
)

// Messages
const (
	MessageReversal = "Wrong Direction! You ran into yourself."
	MessageGameOver = "Game Over"
	MessageWon      = "You Won!"
	MessageExiting  = "Exiting"
	MessageScoreFmt = "Score: %d"
)

// MessageMargin is the left column where a message line starts being cleared
const MessageMargin = 5

// End sequence pauses
const (
	ReversalPause  = 2 * time.Second
	EndFramePause  = 700 * time.Millisecond
	ResultPause    = 1 * time.Second
	ScorePause     = 1500 * time.Millisecond
	ExitingPause   = 1300 * time.Millisecond
	EventQueueSize = 64
)
