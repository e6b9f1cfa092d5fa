package canvas

import (
	"math"
	"strings"
)

// Blank is the rune every cell holds after Clear.
const Blank = ' '

type Canvas struct {
	width, height int
	grid          [][]rune
}

func New(w, h int) *Canvas {
	c := &Canvas{}
	c.Resize(w, h)
	return c
}

// Resize reallocates the grid. Cells are zero until Clear is called.
func (c *Canvas) Resize(w, h int) {
	if w < 0 {
		w = 0
	}
	if h < 0 {
		h = 0
	}
	c.width, c.height = w, h
	c.grid = make([][]rune, h)
	for i := range c.grid {
		c.grid[i] = make([]rune, w)
	}
}

// Clear resets every cell to Blank.
func (c *Canvas) Clear() {
	for i := range c.grid {
		for j := range c.grid[i] {
			c.grid[i][j] = Blank
		}
	}
}

func (c *Canvas) Width() int  { return c.width }
func (c *Canvas) Height() int { return c.height }

// Bounds returns the width and height together, for raster.Plotter.
func (c *Canvas) Bounds() (int, int) { return c.width, c.height }

// SetPixel rounds (x, y) to the nearest cell and stores r there.
// Writes outside the grid are dropped.
func (c *Canvas) SetPixel(x, y float64, r rune) {
	x = math.Round(x)
	y = math.Round(y)
	// NaN fails every comparison below
	if !(x >= 0 && x < float64(c.width) && y >= 0 && y < float64(c.height)) {
		return
	}
	c.grid[int(y)][int(x)] = r
}

// At returns the rune at cell (x, y) and whether the cell exists.
func (c *Canvas) At(x, y int) (rune, bool) {
	if x < 0 || y < 0 || x >= c.width || y >= c.height {
		return 0, false
	}
	return c.grid[y][x], true
}

// Serialize joins all rows top to bottom with no separators; the terminal
// wraps at its own width. The final row is left out unless includeLastRow
// is set, which keeps a full-height write from scrolling the window.
func (c *Canvas) Serialize(includeLastRow bool) string {
	rows := c.height
	if !includeLastRow && rows > 0 {
		rows--
	}
	var b strings.Builder
	b.Grow(c.width * rows)
	for _, row := range c.grid[:rows] {
		b.WriteString(string(row))
	}
	return b.String()
}
