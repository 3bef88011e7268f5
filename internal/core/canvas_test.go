package core

import (
	"strings"
	"testing"
)

func TestNewCanvas(t *testing.T) {
	c := NewCanvas(640, 360, 64, 18)

	if c.Cols() != 64 || c.Rows() != 18 {
		t.Errorf("Expected 64x18 cells, got %dx%d", c.Cols(), c.Rows())
	}
	w, h := c.Size()
	if w != 640 || h != 360 {
		t.Errorf("Expected logical size 640x360, got %vx%v", w, h)
	}

	for y := 0; y < c.Rows(); y++ {
		if strings.TrimSpace(c.Row(y)) != "" {
			t.Fatalf("Row %d should be blank after creation", y)
		}
	}
}

func TestCanvasSetOutOfBounds(t *testing.T) {
	c := NewCanvas(100, 100, 10, 10)

	// Should not panic
	c.Set(-1, 0, 'X', ColorDefault)
	c.Set(0, -1, 'X', ColorDefault)
	c.Set(10, 0, 'X', ColorDefault)
	c.Set(0, 10, 'X', ColorDefault)

	if got := c.GetCell(-1, -1).Rune; got != ' ' {
		t.Errorf("Out-of-bounds GetCell should return space, got %q", got)
	}
}

func TestCanvasFillRect(t *testing.T) {
	c := NewCanvas(100, 100, 10, 10)

	// Covers cells 2..4 horizontally and 0..1 vertically
	c.FillRect(20, 0, 30, 20, ColorPipe)

	for x := 0; x < 10; x++ {
		cell := c.GetCell(x, 0)
		filled := cell.Rune == '█'
		want := x >= 2 && x <= 4
		if filled != want {
			t.Errorf("cell (%d,0) filled=%v, expected %v", x, filled, want)
		}
		if want && cell.Color != ColorPipe {
			t.Errorf("cell (%d,0) color=%v, expected ColorPipe", x, cell.Color)
		}
	}
	if c.GetCell(3, 2).Rune != ' ' {
		t.Error("row 2 should not be filled")
	}
}

func TestCanvasFillCircle(t *testing.T) {
	c := NewCanvas(100, 100, 10, 10)

	c.FillCircle(55, 55, 12, ColorTarget)

	if c.GetCell(5, 5).Rune != '●' {
		t.Error("circle center cell should be painted")
	}
	if c.GetCell(0, 0).Rune != ' ' {
		t.Error("far corner should stay blank")
	}
}

func TestCanvasTinyCircleStillVisible(t *testing.T) {
	c := NewCanvas(100, 100, 10, 10)

	// Radius smaller than a cell and centre away from cell centres
	c.FillCircle(51, 51, 1, ColorFood)

	if c.GetCell(5, 5).Rune == ' ' {
		t.Error("tiny circle should still mark its cell")
	}
}

func TestCanvasDrawImage(t *testing.T) {
	c := NewCanvas(100, 100, 10, 10)

	c.DrawImage("coin", 40, 40, 20, 20)
	if c.GetCell(5, 5).Rune != '●' {
		t.Errorf("coin sprite expected at (5,5), got %q", c.GetCell(5, 5).Rune)
	}

	c.DrawImage("unknown", 0, 0, 10, 10)
	if c.GetCell(0, 0).Rune != '?' {
		t.Errorf("unknown sprite should render as '?', got %q", c.GetCell(0, 0).Rune)
	}
}

func TestCanvasClearAndResize(t *testing.T) {
	c := NewCanvas(100, 100, 10, 10)
	c.FillRect(0, 0, 100, 100, ColorBackdrop)

	c.Clear()
	if strings.TrimSpace(c.String()) != "" {
		t.Error("Clear should blank every cell")
	}

	c.Resize(20, 5)
	if c.Cols() != 20 || c.Rows() != 5 {
		t.Errorf("Resize to 20x5 gave %dx%d", c.Cols(), c.Rows())
	}
	w, h := c.Size()
	if w != 100 || h != 100 {
		t.Error("Resize must keep the logical size")
	}
}

func TestCanvasDrawText(t *testing.T) {
	c := NewCanvas(100, 100, 10, 2)
	c.DrawText(8, 0, "Hello")

	if got := c.Row(0); got != "        He" {
		t.Errorf("Row(0) = %q, expected clipped text", got)
	}
}
