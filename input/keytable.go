// Package input maps terminal key events to game intents
package input

import (
	"github.com/gdamore/tcell/v2"

	"github.com/lixenwraith/trophy-snake/core"
)

// IntentType classifies what a key press asks for
type IntentType uint8

const (
	IntentNone IntentType = iota
	IntentTurn
	IntentQuit
	IntentMute
)

// Intent is the result of mapping one key press
type Intent struct {
	Type      IntentType
	Direction core.Direction // valid for IntentTurn
}

// KeyTable maps keys to intents
type KeyTable struct {
	SpecialKeys map[tcell.Key]Intent
	Runes       map[rune]Intent
}

func turn(d core.Direction) Intent {
	return Intent{Type: IntentTurn, Direction: d}
}

// DefaultKeyTable returns arrow keys and w/a/s/d for movement, m to toggle sound,
// Esc and Ctrl+C to quit
func DefaultKeyTable() *KeyTable {
	return &KeyTable{
		SpecialKeys: map[tcell.Key]Intent{
			tcell.KeyUp:    turn(core.DirUp),
			tcell.KeyDown:  turn(core.DirDown),
			tcell.KeyLeft:  turn(core.DirLeft),
			tcell.KeyRight: turn(core.DirRight),
			tcell.KeyEsc:   {Type: IntentQuit},
			tcell.KeyCtrlC: {Type: IntentQuit},
		},
		Runes: map[rune]Intent{
			'w': turn(core.DirUp),
			'W': turn(core.DirUp),
			's': turn(core.DirDown),
			'S': turn(core.DirDown),
			'a': turn(core.DirLeft),
			'A': turn(core.DirLeft),
			'd': turn(core.DirRight),
			'D': turn(core.DirRight),
			'm': {Type: IntentMute},
			'M': {Type: IntentMute},
		},
	}
}

// Map translates a key event; unbound keys yield IntentNone
func (kt *KeyTable) Map(ev *tcell.EventKey) Intent {
	if ev == nil {
		return Intent{}
	}
	if ev.Key() == tcell.KeyRune {
		if ev.Modifiers()&(tcell.ModCtrl|tcell.ModAlt) != 0 {
			return Intent{}
		}
		return kt.Runes[ev.Rune()]
	}
	return kt.SpecialKeys[ev.Key()]
}
