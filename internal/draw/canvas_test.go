package draw

import (
	"bytes"
	"image/color"
	"regexp"
	"strings"
	"testing"
)

var cursorMove = regexp.MustCompile(`\x1b\[\d+;\d+H`)

func cellWrites(s string) int {
	return len(cursorMove.FindAllString(s, -1))
}

func TestInkRGB(t *testing.T) {
	tests := []struct {
		c    color.RGBA
		want Ink
	}{
		{color.RGBA{R: 0xff, G: 0xff, B: 0xff, A: 0xff}, 231},
		{color.RGBA{R: 0xff, A: 0xff}, 196},
		{color.RGBA{A: 0xff}, 16},
		{color.RGBA{R: 0xff}, InkNone},
	}
	for _, tt := range tests {
		if got := InkRGB(tt.c); got != tt.want {
			t.Fatalf("InkRGB(%v) = %d, want %d", tt.c, got, tt.want)
		}
	}
}

func TestRenderWritesOnlyChanges(t *testing.T) {
	c := NewCanvas(4, 2)

	var first bytes.Buffer
	c.SetFloat(0, 0, InkWhite)
	c.Render(&first)
	if got := cellWrites(first.String()); got != 8 {
		t.Fatalf("first render wrote %d cells, want 8: %q", got, first.String())
	}
	if !strings.Contains(first.String(), "\033[0;38;5;231m▀") {
		t.Fatalf("lit pixel not drawn in white: %q", first.String())
	}
	if !strings.HasSuffix(first.String(), " ") {
		t.Fatalf("render should end on a default-style cell: %q", first.String())
	}

	var second bytes.Buffer
	c.Render(&second)
	if second.Len() != 0 {
		t.Fatalf("unchanged frame wrote %q", second.String())
	}

	var third bytes.Buffer
	c.Clear()
	c.Render(&third)
	if third.String() != "\033[1;1H " {
		t.Fatalf("cleared pixel render = %q, want a single space", third.String())
	}
}

func TestRenderColorPairs(t *testing.T) {
	c := NewCanvas(3, 1)
	c.SetFloat(0, 0, InkRed)
	c.SetFloat(0, 1, InkRed)
	c.SetFloat(1, 1, InkCyan)
	c.SetFloat(2, 0, InkYellow)
	c.SetFloat(2, 1, InkCyan)

	var buf bytes.Buffer
	c.Render(&buf)
	out := buf.String()
	for _, want := range []string{"█", "▄", "▀"} {
		if !strings.Contains(out, want) {
			t.Fatalf("missing %q in %q", want, out)
		}
	}
	if !strings.Contains(out, ";48;5;") {
		t.Fatalf("two-color cell should set a background: %q", out)
	}
	if !strings.HasSuffix(out, styleReset) {
		t.Fatalf("render must restore the default style: %q", out)
	}
}

func TestForceRedrawAndDirtyText(t *testing.T) {
	c := NewCanvas(4, 2)
	c.Render(&bytes.Buffer{})

	var buf bytes.Buffer
	c.MarkTextDirty(2, 1, 2)
	c.Render(&buf)
	if got := cellWrites(buf.String()); got != 2 {
		t.Fatalf("dirty render wrote %d cells, want 2", got)
	}

	buf.Reset()
	c.ForceRedraw()
	c.Render(&buf)
	if got := cellWrites(buf.String()); got != 8 {
		t.Fatalf("forced render wrote %d cells, want 8", got)
	}
}

func TestScaledCanvasHalfBlocks(t *testing.T) {
	// 480x320 logical onto 4 columns x 2 rows (4 sub-pixel rows).
	c := NewScaledCanvas(4, 2, 480, 320)
	c.SetFloat(0, 0, InkWhite)
	c.SetFloat(0, 80, InkWhite)
	var buf bytes.Buffer
	c.Render(&buf)
	if !strings.Contains(buf.String(), "\033[1;1H\033[0;38;5;231m█") {
		t.Fatalf("expected full block at 1;1, got %q", buf.String())
	}
}

func TestDrawPolygonFill(t *testing.T) {
	c := NewCanvas(10, 5)
	c.DrawPolygon(RectPoints(c.BorrowPoints(4), 5, 5, 2, 2), InkCyan, true)
	var buf bytes.Buffer
	c.Render(&buf)
	if !strings.Contains(buf.String(), "█") {
		t.Fatalf("filled rect rendered no full blocks: %q", buf.String())
	}
}

func TestRenderBorder(t *testing.T) {
	c := NewCanvas(4, 2)

	var none bytes.Buffer
	c.RenderBorder(&none)
	if none.Len() != 0 {
		t.Fatalf("border drawn without offset: %q", none.String())
	}

	c.SetOffset(2, 1)
	var buf bytes.Buffer
	c.RenderBorder(&buf)
	out := buf.String()
	for _, want := range []string{"\033[1;2H┌────┐", "\033[4;2H└────┘", "\033[2;7H│"} {
		if !strings.Contains(out, want) {
			t.Fatalf("missing %q in %q", want, out)
		}
	}
}
