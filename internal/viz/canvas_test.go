package viz

import (
	"strings"
	"testing"
)

func TestCanvas_SetUnset(t *testing.T) {
	c := NewCanvas(2, 1)

	c.Set(0, 0)
	c.Set(3, 3)
	if c.Grid[0][0] != 0x2801 {
		t.Errorf("cell 0 = %U, want U+2801", c.Grid[0][0])
	}
	if c.Grid[0][1] != 0x2880 {
		t.Errorf("cell 1 = %U, want U+2880", c.Grid[0][1])
	}
	if !c.IsSet(3, 3) || c.IsSet(2, 3) {
		t.Error("IsSet disagrees with Set")
	}

	c.Unset(0, 0)
	if c.Grid[0][0] != brailleBlank {
		t.Errorf("Unset left %U", c.Grid[0][0])
	}
}

func TestCanvas_OutOfRange(t *testing.T) {
	c := NewCanvas(2, 2)
	c.Set(-1, 0)
	c.Set(0, -1)
	c.Set(4, 0)
	c.Set(0, 8)
	if strings.Trim(c.String(), "⠀\n") != "" {
		t.Error("out of range dots were drawn")
	}
	if w, h := c.Dots(); w != 4 || h != 8 {
		t.Errorf("Dots() = %d, %d", w, h)
	}
}

func TestCanvas_DrawLine(t *testing.T) {
	c := NewCanvas(4, 1)
	c.DrawLine(0, 1, 7, 1)
	for x := 0; x < 8; x++ {
		if !c.IsSet(x, 1) {
			t.Errorf("dot (%d,1) not set", x)
		}
	}

	c.Clear()
	c.Cross(3, 2, 1)
	for _, d := range [][2]int{{2, 2}, {3, 2}, {4, 2}, {3, 1}, {3, 3}} {
		if !c.IsSet(d[0], d[1]) {
			t.Errorf("cross dot %v not set", d)
		}
	}
	if c.IsSet(2, 1) {
		t.Error("cross set a diagonal dot")
	}
}
