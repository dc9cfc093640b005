// Package draw renders to ANSI terminals: a half-block pixel canvas and a
// chunked text writer suited to SSH sessions.
package draw

import (
	"image/color"
	"strconv"
	"strings"
)

// Point represents a 2D coordinate.
type Point struct {
	X, Y float64
}

// Block characters for drawing.
const (
	BlockFull      = '█'
	BlockEmpty     = ' '
	BlockUpperHalf = '▀'
	BlockLowerHalf = '▄'
)

// Ink is an xterm 256-color palette index. InkNone leaves a pixel unset.
type Ink uint8

// InkNone is the unset pixel. Palette entry 0 is black, which is
// indistinguishable from the background anyway.
const InkNone Ink = 0

// Inks used by the game.
var (
	InkWhite  = InkRGB(color.RGBA{R: 0xff, G: 0xff, B: 0xff, A: 0xff})
	InkGray   = Ink(244)
	InkCyan   = InkRGB(color.RGBA{R: 0x4f, G: 0xc3, B: 0xf7, A: 0xff})
	InkRed    = InkRGB(color.RGBA{R: 0xef, G: 0x53, B: 0x50, A: 0xff})
	InkYellow = InkRGB(color.RGBA{R: 0xff, G: 0xee, B: 0x58, A: 0xff})
)

// InkRGB returns the nearest color in the xterm 6x6x6 color cube.
// Fully transparent colors map to InkNone.
func InkRGB(c color.RGBA) Ink {
	if c.A == 0 {
		return InkNone
	}
	level := func(v uint8) int { return (int(v)*5 + 127) / 255 }
	return Ink(16 + 36*level(c.R) + 6*level(c.G) + level(c.B))
}

// RectPoints fills dst with the four corners of the box centered at (cx, cy).
// dst must have length 4.
func RectPoints(dst []Point, cx, cy, hw, hh float64) []Point {
	dst[0] = Point{X: cx - hw, Y: cy - hh}
	dst[1] = Point{X: cx + hw, Y: cy - hh}
	dst[2] = Point{X: cx + hw, Y: cy + hh}
	dst[3] = Point{X: cx - hw, Y: cy + hh}
	return dst
}

// appendCursor writes an ANSI cursor position sequence for the 1-based
// terminal position (col, row). scratch avoids allocating while formatting.
func appendCursor(b *strings.Builder, scratch []byte, col, row int) {
	b.WriteString("\033[")
	b.Write(strconv.AppendInt(scratch[:0], int64(row), 10))
	b.WriteByte(';')
	b.Write(strconv.AppendInt(scratch[:0], int64(col), 10))
	b.WriteByte('H')
}

func abs(x int) int {
	if x < 0 {
		return -x
	}
	return x
}
