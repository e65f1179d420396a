package main

import (
	"fmt"
	"io"

	"github.com/fatih/color"

	"github.com/lixenwraith/trophy-snake/engine"
	"github.com/lixenwraith/trophy-snake/game"
)

// printSummary writes the one-line result shown after the terminal is restored
func printSummary(w io.Writer, res game.Result) {
	var headline *color.Color
	var text string
	switch res.Status {
	case engine.StatusWon:
		headline, text = color.New(color.FgGreen, color.Bold), "You won"
	case engine.StatusLost:
		headline, text = color.New(color.FgRed, color.Bold), "Game over"
	default:
		headline, text = color.New(color.FgYellow), "Quit"
	}

	fmt.Fprintf(w, "%s (%s)  score %s  trophies %d eaten, %d expired  ticks %d  seed %d\n",
		headline.Sprint(text),
		res.Reason,
		color.CyanString("%d", res.Score),
		res.Eaten, res.Expired, res.Ticks, res.Seed)
}
