package preview

import "strings"

// Canvas is a fixed-size grid of runes. (0, 0) is the top-left cell.
type Canvas struct {
	w, h  int
	cells []rune
}

// NewCanvas returns a blank w x h canvas.
func NewCanvas(w, h int) *Canvas {
	if w < 0 {
		w = 0
	}
	if h < 0 {
		h = 0
	}
	c := &Canvas{w: w, h: h, cells: make([]rune, w*h)}
	for i := range c.cells {
		c.cells[i] = ' '
	}
	return c
}

func (c *Canvas) Width() int  { return c.w }
func (c *Canvas) Height() int { return c.h }

// Plot sets one cell. Cells outside the canvas are ignored.
func (c *Canvas) Plot(x, y int, r rune) {
	if x < 0 || y < 0 || x >= c.w || y >= c.h {
		return
	}
	c.cells[y*c.w+x] = r
}

// At returns the rune at (x, y), or 0 outside the canvas.
func (c *Canvas) At(x, y int) rune {
	if x < 0 || y < 0 || x >= c.w || y >= c.h {
		return 0
	}
	return c.cells[y*c.w+x]
}

// Text writes s starting at (x, y), clipping at the edges.
func (c *Canvas) Text(x, y int, s string) {
	for _, r := range s {
		c.Plot(x, y, r)
		x++
	}
}

// HLine draws r from x0 to x1 inclusive on row y.
func (c *Canvas) HLine(x0, x1, y int, r rune) {
	if x0 > x1 {
		x0, x1 = x1, x0
	}
	for x := x0; x <= x1; x++ {
		c.Plot(x, y, r)
	}
}

// String renders the canvas row by row with trailing blanks trimmed.
func (c *Canvas) String() string {
	var b strings.Builder
	for y := 0; y < c.h; y++ {
		row := string(c.cells[y*c.w : (y+1)*c.w])
		b.WriteString(strings.TrimRight(row, " "))
		b.WriteByte('\n')
	}
	return b.String()
}
