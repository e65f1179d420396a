package render

import "github.com/gdamore/tcell/v2"

// Styles holds the palette used to project the board
type Styles struct {
	Empty   tcell.Style
	Border  tcell.Style
	Segment tcell.Style
	Head    tcell.Style
	Trophy  tcell.Style
	Crash   tcell.Style
	Title   tcell.Style
	Notice  tcell.Style
	Won     tcell.Style
	Lost    tcell.Style
	Plain   tcell.Style
}

// DefaultStyles returns the standard palette
func DefaultStyles() Styles {
	base := tcell.StyleDefault
	return Styles{
		Empty:   base,
		Border:  base.Foreground(tcell.ColorBlue),
		Segment: base.Foreground(tcell.ColorGreen),
		Head:    base.Foreground(tcell.ColorLime).Bold(true),
		Trophy:  base.Foreground(tcell.ColorYellow).Bold(true),
		Crash:   base.Foreground(tcell.ColorRed).Reverse(true),
		Title:   base.Foreground(tcell.ColorWhite),
		Notice:  base.Foreground(tcell.ColorYellow),
		Won:     base.Foreground(tcell.ColorGreen).Bold(true),
		Lost:    base.Foreground(tcell.ColorRed).Bold(true),
		Plain:   base,
	}
}
