package core

import (
	"math"
	"strings"
)

// Surface is the fixed-size 2D drawing area a simulator renders into.
// Coordinates are logical surface units; nothing persists between frames
// beyond what the last Clear left behind.
type Surface interface {
	// Size returns the logical width and height.
	Size() (w, h float64)

	// Clear erases the whole surface.
	Clear()

	// FillRect paints an axis-aligned box.
	FillRect(x, y, w, h float64, c Color)

	// FillCircle paints a disc.
	FillCircle(cx, cy, r float64, c Color)

	// DrawImage blits a named sprite into the given box.
	DrawImage(name string, x, y, w, h float64)
}

// Cell is one character of a Canvas.
type Cell struct {
	Rune  rune
	Color Color
}

// Sprite glyphs used by DrawImage on a Canvas.
var spriteGlyphs = map[string]rune{
	"bird": '▶',
	"coin": '●',
	"food": '*',
}

// Canvas rasterises Surface draw calls into a character grid.
// A logical surface of lw×lh units is scaled onto cols×rows cells.
type Canvas struct {
	lw, lh float64
	cols   int
	rows   int
	cells  [][]Cell
}

// NewCanvas creates a canvas for a logical surface mapped onto cols×rows cells.
func NewCanvas(logicalW, logicalH float64, cols, rows int) *Canvas {
	c := &Canvas{
		lw:   logicalW,
		lh:   logicalH,
		cols: max(cols, 1),
		rows: max(rows, 1),
	}
	c.allocate()
	c.Clear()
	return c
}

// allocate creates the underlying cell storage.
func (c *Canvas) allocate() {
	c.cells = make([][]Cell, c.rows)
	for y := range c.cells {
		c.cells[y] = make([]Cell, c.cols)
	}
}

// Size returns the logical surface dimensions.
func (c *Canvas) Size() (float64, float64) {
	return c.lw, c.lh
}

// Cols returns the canvas width in characters.
func (c *Canvas) Cols() int {
	return c.cols
}

// Rows returns the canvas height in characters.
func (c *Canvas) Rows() int {
	return c.rows
}

// Resize changes the cell grid. The logical size is unchanged and the content is cleared.
func (c *Canvas) Resize(cols, rows int) {
	cols, rows = max(cols, 1), max(rows, 1)
	if cols == c.cols && rows == c.rows {
		return
	}
	c.cols = cols
	c.rows = rows
	c.allocate()
	c.Clear()
}

// Clear fills the entire canvas with spaces.
func (c *Canvas) Clear() {
	for y := range c.cells {
		for x := range c.cells[y] {
			c.cells[y][x] = Cell{Rune: ' '}
		}
	}
}

// toCell converts a logical coordinate to a cell coordinate.
func (c *Canvas) toCell(x, y float64) (int, int) {
	cx := int(math.Floor(x / c.lw * float64(c.cols)))
	cy := int(math.Floor(y / c.lh * float64(c.rows)))
	return cx, cy
}

// toLogical returns the logical coordinate of a cell centre.
func (c *Canvas) toLogical(cx, cy int) (float64, float64) {
	x := (float64(cx) + 0.5) * c.lw / float64(c.cols)
	y := (float64(cy) + 0.5) * c.lh / float64(c.rows)
	return x, y
}

// Set places a rune at the given cell.
// Out-of-bounds coordinates are silently ignored.
func (c *Canvas) Set(x, y int, r rune, col Color) {
	if x < 0 || x >= c.cols || y < 0 || y >= c.rows {
		return
	}
	c.cells[y][x] = Cell{Rune: r, Color: col}
}

// GetCell returns the cell at the given position.
// Returns a blank cell for out-of-bounds coordinates.
func (c *Canvas) GetCell(x, y int) Cell {
	if x < 0 || x >= c.cols || y < 0 || y >= c.rows {
		return Cell{Rune: ' '}
	}
	return c.cells[y][x]
}

// FillRect paints every cell whose centre lies inside the box.
func (c *Canvas) FillRect(x, y, w, h float64, col Color) {
	if w <= 0 || h <= 0 {
		return
	}
	box := NewRect(x, y, w, h)
	x0, y0 := c.toCell(x, y)
	x1, y1 := c.toCell(x+w, y+h)
	for cy := max(y0, 0); cy <= min(y1, c.rows-1); cy++ {
		for cx := max(x0, 0); cx <= min(x1, c.cols-1); cx++ {
			lx, ly := c.toLogical(cx, cy)
			if box.Contains(lx, ly) {
				c.Set(cx, cy, '█', col)
			}
		}
	}
}

// FillCircle paints every cell whose centre lies inside the disc.
// A disc smaller than a cell still marks the cell under its centre.
func (c *Canvas) FillCircle(cx, cy, r float64, col Color) {
	if r <= 0 {
		return
	}
	disc := Circle{X: cx, Y: cy, Radius: r}
	x0, y0 := c.toCell(cx-r, cy-r)
	x1, y1 := c.toCell(cx+r, cy+r)
	painted := false
	for y := max(y0, 0); y <= min(y1, c.rows-1); y++ {
		for x := max(x0, 0); x <= min(x1, c.cols-1); x++ {
			lx, ly := c.toLogical(x, y)
			if disc.Contains(lx, ly) {
				c.Set(x, y, '●', col)
				painted = true
			}
		}
	}
	if !painted {
		px, py := c.toCell(cx, cy)
		c.Set(px, py, '•', col)
	}
}

// DrawImage draws the sprite glyph at the centre of the box.
// Unknown sprite names render as '?'.
func (c *Canvas) DrawImage(name string, x, y, w, h float64) {
	glyph, ok := spriteGlyphs[name]
	if !ok {
		glyph = '?'
	}
	px, py := c.toCell(x+w/2, y+h/2)
	c.Set(px, py, glyph, ColorDefault)
}

// DrawText writes a string horizontally starting at cell (x, y).
// Characters that extend beyond canvas bounds are clipped.
func (c *Canvas) DrawText(x, y int, text string) {
	i := 0
	for _, r := range text {
		c.Set(x+i, y, r, ColorText)
		i++
	}
}

// String converts the canvas to plain text, one line per row.
func (c *Canvas) String() string {
	var sb strings.Builder
	sb.Grow(c.cols*c.rows + c.rows)

	for y := 0; y < c.rows; y++ {
		if y > 0 {
			sb.WriteRune('\n')
		}
		for x := 0; x < c.cols; x++ {
			sb.WriteRune(c.cells[y][x].Rune)
		}
	}
	return sb.String()
}

// Row returns the specified row as a string.
func (c *Canvas) Row(y int) string {
	if y < 0 || y >= c.rows {
		return strings.Repeat(" ", c.cols)
	}
	var sb strings.Builder
	for _, cell := range c.cells[y] {
		sb.WriteRune(cell.Rune)
	}
	return sb.String()
}
