package main

import (
	"bytes"
	"strings"
	"testing"

	"github.com/fatih/color"

	"github.com/lixenwraith/trophy-snake/engine"
	"github.com/lixenwraith/trophy-snake/game"
)

func TestPrintSummary(t *testing.T) {
	prev := color.NoColor
	color.NoColor = true
	defer func() { color.NoColor = prev }()

	cases := []struct {
		res  game.Result
		want string
	}{
		{
			game.Result{Status: engine.StatusWon, Reason: engine.ReasonPerimeter, Score: 97, Eaten: 20, Expired: 3, Ticks: 812, Seed: 4},
			"You won (perimeter)  score 97  trophies 20 eaten, 3 expired  ticks 812  seed 4\n",
		},
		{
			game.Result{Status: engine.StatusLost, Reason: engine.ReasonReversal, Score: 5, Ticks: 1, Seed: 9},
			"Game over (reversal)  score 5  trophies 0 eaten, 0 expired  ticks 1  seed 9\n",
		},
		{
			game.Result{Status: engine.StatusQuit, Reason: engine.ReasonInterrupted, Score: 12, Eaten: 2, Ticks: 40, Seed: 1},
			"Quit (interrupted)  score 12",
		},
	}
	for _, tc := range cases {
		var buf bytes.Buffer
		printSummary(&buf, tc.res)
		if !strings.HasPrefix(buf.String(), tc.want) {
			t.Errorf("Expected %q, got %q", tc.want, buf.String())
		}
	}
}
