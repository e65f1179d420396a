package engine

import (
	"time"

	"github.com/lixenwraith/trophy-snake/parameter"
)

// StartDelay derives the initial input timeout from the terminal width
// Narrow terminals start slower; the result never drops below MinDelay
func StartDelay(cols int) time.Duration {
	var delay time.Duration
	if cols < parameter.WideTerminalColumns {
		base := float64(parameter.BaseDelay / time.Millisecond)
		ms := int(base - float64(cols)/parameter.NarrowWidthDivisor)
		delay = time.Duration(ms) * time.Millisecond
	} else {
		delay = parameter.BaseDelay - parameter.WideTerminalReduction
	}
	return max(delay, parameter.MinDelay)
}

// speedUp shortens the delay by one step, floored at MinDelay
func speedUp(delay time.Duration) time.Duration {
	return max(delay-parameter.DelayStep, parameter.MinDelay)
}
