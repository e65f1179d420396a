package engine

import "github.com/lixenwraith/trophy-snake/core"

// Body is the snake as a double-ended queue of positions
// Front is the tail (oldest segment), back is the head (newest)
// Backed by a growable ring buffer; all operations are O(1) amortized
type Body struct {
	buf   []core.Point
	front int // index of tail
	n     int
}

// NewBody creates an empty body with room for capacity segments
func NewBody(capacity int) *Body {
	if capacity < 1 {
		capacity = 1
	}
	return &Body{buf: make([]core.Point, capacity)}
}

// Len returns the segment count
func (b *Body) Len() int { return b.n }

// PushHead appends a new head position
func (b *Body) PushHead(p core.Point) {
	if b.n == len(b.buf) {
		b.grow()
	}
	b.buf[(b.front+b.n)%len(b.buf)] = p
	b.n++
}

// PopTail removes and returns the tail position
func (b *Body) PopTail() core.Point {
	if b.n == 0 {
		panic("engine: PopTail on empty snake body")
	}
	p := b.buf[b.front]
	b.front = (b.front + 1) % len(b.buf)
	b.n--
	return p
}

// PeekHead returns the head position
func (b *Body) PeekHead() core.Point {
	if b.n == 0 {
		panic("engine: PeekHead on empty snake body")
	}
	return b.buf[(b.front+b.n-1)%len(b.buf)]
}

// PeekTail returns the tail position
func (b *Body) PeekTail() core.Point {
	if b.n == 0 {
		panic("engine: PeekTail on empty snake body")
	}
	return b.buf[b.front]
}

// Points returns a tail-to-head copy of the body
func (b *Body) Points() []core.Point {
	out := make([]core.Point, b.n)
	for i := 0; i < b.n; i++ {
		out[i] = b.buf[(b.front+i)%len(b.buf)]
	}
	return out
}

func (b *Body) grow() {
	next := make([]core.Point, len(b.buf)*2)
	for i := 0; i < b.n; i++ {
		next[i] = b.buf[(b.front+i)%len(b.buf)]
	}
	b.buf = next
	b.front = 0
}
