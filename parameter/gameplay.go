package parameter

import "time"

// Snake
const (
	// InitialSnakeLength is the segment count laid down at game start
	InitialSnakeLength = 5

	// SeedColumnOffset shifts the first segment left of the board centre
	SeedColumnOffset = 2
)

// Speed curve
const (
	// BaseDelay is the input timeout before the width adjustment
	BaseDelay = 250 * time.Millisecond

	// WideTerminalColumns is the width at which the start delay stops scaling
	WideTerminalColumns = 250

	// WideTerminalReduction is subtracted from BaseDelay on wide terminals
	WideTerminalReduction = 150 * time.Millisecond

	// NarrowWidthDivisor scales the width-based reduction (cols / divisor, in ms)
	NarrowWidthDivisor = 1.3

	// DelayStep is removed from the delay for every growth unit applied
	DelayStep = 6 * time.Millisecond

	// MinDelay is the floor of the speed curve
	MinDelay = 60 * time.Millisecond
)

// Trophy
const (
	TrophyMinValue = 1
	TrophyMaxValue = 9

	TrophyMinLifespan = 1 * time.Second
	TrophyMaxLifespan = 9 * time.Second

	// TrophySpawnAttempts is the number of random placement attempts before falling back to a scan
	TrophySpawnAttempts = 256
)

// PerimeterOffset is subtracted from rows+cols to get the winning length
const PerimeterOffset = 3
