// Package render projects game state onto a tcell screen
package render

import (
	"fmt"

	"github.com/gdamore/tcell/v2"
	"github.com/mattn/go-runewidth"

	"github.com/lixenwraith/trophy-snake/board"
	"github.com/lixenwraith/trophy-snake/core"
	"github.com/lixenwraith/trophy-snake/engine"
	"github.com/lixenwraith/trophy-snake/parameter"
)

// Renderer draws boards and messages; the board maps 1:1 onto screen cells
type Renderer struct {
	screen tcell.Screen
	styles Styles
}

func New(screen tcell.Screen, styles Styles) *Renderer {
	return &Renderer{screen: screen, styles: styles}
}

// DrawGame renders the full board, highlights the head and any crash cell,
// and writes the score into the top border
func (r *Renderer) DrawGame(g *engine.GameState) {
	b := g.Board()
	b.Each(func(p core.Point, c board.Cell) {
		r.screen.SetContent(p.Col, p.Row, r.glyph(b, p, c), nil, r.style(c))
	})

	if g.Length() > 0 {
		head := g.Head()
		r.screen.SetContent(head.Col, head.Row, parameter.GlyphSegment, nil, r.styles.Head)
	}
	if at, ok := g.CrashAt(); ok {
		mainc, _, _, _ := r.screen.GetContent(at.Col, at.Row)
		r.screen.SetContent(at.Col, at.Row, mainc, nil, r.styles.Crash)
	}

	r.drawTitle(b, fmt.Sprintf(" "+parameter.MessageScoreFmt+" ", g.Size()))
}

func (r *Renderer) drawTitle(b *board.Board, title string) {
	if runewidth.StringWidth(title)+4 > b.Cols() {
		return
	}
	x := 2
	for _, ch := range title {
		r.screen.SetContent(x, 0, ch, nil, r.styles.Title)
		x += runewidth.RuneWidth(ch)
	}
}

func (r *Renderer) glyph(b *board.Board, p core.Point, c board.Cell) rune {
	if c != board.CellBorder {
		return rune(c)
	}
	top, bottom := p.Row == 0, p.Row == b.Rows()-1
	left, right := p.Col == 0, p.Col == b.Cols()-1
	switch {
	case top && left:
		return tcell.RuneULCorner
	case top && right:
		return tcell.RuneURCorner
	case bottom && left:
		return tcell.RuneLLCorner
	case bottom && right:
		return tcell.RuneLRCorner
	case top || bottom:
		return tcell.RuneHLine
	default:
		return tcell.RuneVLine
	}
}

func (r *Renderer) style(c board.Cell) tcell.Style {
	switch {
	case c == board.CellBorder:
		return r.styles.Border
	case c == board.CellSegment:
		return r.styles.Segment
	case c.IsTrophy():
		return r.styles.Trophy
	}
	return r.styles.Empty
}

// Message clears the middle row from the left margin and centres text on it
func (r *Renderer) Message(text string, style tcell.Style) {
	w, h := r.screen.Size()
	y := h / 2
	for x := parameter.MessageMargin; x < w; x++ {
		r.screen.SetContent(x, y, ' ', nil, r.styles.Plain)
	}
	x := (w - runewidth.StringWidth(text)) / 2
	if x < 0 {
		x = 0
	}
	for _, ch := range text {
		if x >= w {
			break
		}
		r.screen.SetContent(x, y, ch, nil, style)
		x += runewidth.RuneWidth(ch)
	}
}

// Notice shows an in-game message such as the reversal warning
func (r *Renderer) Notice(text string) {
	r.Message(text, r.styles.Notice)
}

// Result clears the screen and shows the win or loss banner
func (r *Renderer) Result(won bool) {
	r.screen.Clear()
	if won {
		r.Message(parameter.MessageWon, r.styles.Won)
		return
	}
	r.Message(parameter.MessageGameOver, r.styles.Lost)
}

// Score replaces the middle row with the final score
func (r *Renderer) Score(score int) {
	r.Message(fmt.Sprintf(parameter.MessageScoreFmt, score), r.styles.Plain)
}

// Exiting shows the farewell line
func (r *Renderer) Exiting() {
	r.Message(parameter.MessageExiting, r.styles.Plain)
}

func (r *Renderer) Show() { r.screen.Show() }
