package draw

import (
	"io"
	"math"
	"sort"
	"strconv"
	"strings"
)

// maxChunkSize is the maximum bytes to write at once, about one MTU, so frames
// stream smoothly over SSH.
const maxChunkSize = 1400

const styleReset = "\033[0m"

// Canvas is a drawing buffer with 2x vertical resolution using half-block
// characters. Every sub-pixel carries an Ink; a terminal cell shows its top and
// bottom sub-pixels as the foreground and background of one glyph.
// Supports scaling from logical coordinates to actual terminal pixels.
type Canvas struct {
	termWidth      int   // Actual terminal columns
	termHeight     int   // Actual terminal rows
	subPixelHeight int   // termHeight * 2
	pixels         []Ink // Flat slice: [y * termWidth + x]
	// shown holds 1 + the top/bottom ink pair last written per cell. 0 means
	// unknown and forces a rewrite.
	shown []uint32

	// Scaling from logical to pixel coordinates
	logicalWidth  float64
	logicalHeight float64 // In sub-pixels
	scaleX        float64 // termWidth / logicalWidth
	scaleY        float64 // (termHeight*2) / logicalHeight

	// 0-based terminal offsets of the render area when the terminal is larger
	// than the max resolution.
	offsetCol int
	offsetRow int

	// Reusable buffers to reduce allocations
	renderBuf       strings.Builder
	numBuf          [20]byte
	scaledBuf       []Point   // fillPolygon scaled points
	intersectionBuf []float64 // scanline intersections
	polygonBuf      []Point   // BorrowPoints
}

// NewCanvas creates an unscaled canvas for the given terminal dimensions.
func NewCanvas(width, height int) *Canvas {
	return NewScaledCanvas(width, height, float64(width), float64(height*2))
}

// NewScaledCanvas creates a canvas that scales from logical coordinates to terminal pixels.
// logicalWidth/Height define the coordinate space used by the game.
func NewScaledCanvas(termWidth, termHeight int, logicalWidth, logicalHeight float64) *Canvas {
	c := &Canvas{logicalWidth: logicalWidth, logicalHeight: logicalHeight}
	c.Resize(termWidth, termHeight)
	return c
}

// Resize updates the canvas for new terminal dimensions while keeping logical size.
func (c *Canvas) Resize(termWidth, termHeight int) {
	if c.pixels == nil || termWidth != c.termWidth || termHeight != c.termHeight {
		c.termWidth = termWidth
		c.termHeight = termHeight
		c.subPixelHeight = termHeight * 2
		c.pixels = make([]Ink, c.subPixelHeight*termWidth)
		c.shown = make([]uint32, termHeight*termWidth)
	}
	c.scaleX = float64(termWidth) / c.logicalWidth
	c.scaleY = float64(c.subPixelHeight) / c.logicalHeight
}

// SetOffset sets the 0-based column and row offset for centering the canvas.
func (c *Canvas) SetOffset(col, row int) {
	c.offsetCol = col
	c.offsetRow = row
}

// OffsetCol returns the column offset used for centering.
func (c *Canvas) OffsetCol() int {
	return c.offsetCol
}

// OffsetRow returns the row offset used for centering.
func (c *Canvas) OffsetRow() int {
	return c.offsetRow
}

// TerminalWidth returns the terminal column count covered by the canvas.
func (c *Canvas) TerminalWidth() int {
	return c.termWidth
}

// TerminalHeight returns the terminal row count covered by the canvas.
func (c *Canvas) TerminalHeight() int {
	return c.termHeight
}

// Clear resets all pixels in the canvas.
func (c *Canvas) Clear() {
	clear(c.pixels)
}

func (c *Canvas) setPixel(x, y int, ink Ink) {
	if x >= 0 && x < c.termWidth && y >= 0 && y < c.subPixelHeight {
		c.pixels[y*c.termWidth+x] = ink
	}
}

// SetFloat sets a pixel using logical coordinates.
func (c *Canvas) SetFloat(x, y float64, ink Ink) {
	c.setPixel(int(math.Round(x*c.scaleX)), int(math.Round(y*c.scaleY)), ink)
}

// DrawLine draws a line in logical coordinates using Bresenham's algorithm.
func (c *Canvas) DrawLine(p1, p2 Point, ink Ink) {
	x1 := int(math.Round(p1.X * c.scaleX))
	y1 := int(math.Round(p1.Y * c.scaleY))
	x2 := int(math.Round(p2.X * c.scaleX))
	y2 := int(math.Round(p2.Y * c.scaleY))

	dx := abs(x2 - x1)
	dy := abs(y2 - y1)
	sx, sy := 1, 1
	if x1 > x2 {
		sx = -1
	}
	if y1 > y2 {
		sy = -1
	}

	err := dx - dy
	for {
		c.setPixel(x1, y1, ink)
		if x1 == x2 && y1 == y2 {
			return
		}
		e2 := 2 * err
		if e2 > -dy {
			err -= dy
			x1 += sx
		}
		if e2 < dx {
			err += dx
			y1 += sy
		}
	}
}

// DrawPolygon outlines a polygon, filling the interior when filled is set.
func (c *Canvas) DrawPolygon(points []Point, ink Ink, filled bool) {
	if len(points) < 3 {
		return
	}
	if filled {
		c.fillPolygon(points, ink)
	}
	n := len(points)
	for i := 0; i < n; i++ {
		c.DrawLine(points[i], points[(i+1)%n], ink)
	}
}

// fillPolygon fills a polygon with a scanline pass in pixel space.
func (c *Canvas) fillPolygon(points []Point, ink Ink) {
	if cap(c.scaledBuf) < len(points) {
		c.scaledBuf = make([]Point, len(points))
	}
	scaled := c.scaledBuf[:len(points)]
	minY, maxY := math.Inf(1), math.Inf(-1)
	for i, p := range points {
		scaled[i] = Point{X: p.X * c.scaleX, Y: p.Y * c.scaleY}
		minY = math.Min(minY, scaled[i].Y)
		maxY = math.Max(maxY, scaled[i].Y)
	}

	n := len(scaled)
	for y := int(math.Floor(minY)); y <= int(math.Ceil(maxY)); y++ {
		scanY := float64(y) + 0.5
		xs := c.intersectionBuf[:0]
		for i := 0; i < n; i++ {
			p1, p2 := scaled[i], scaled[(i+1)%n]
			if (p1.Y <= scanY && p2.Y > scanY) || (p2.Y <= scanY && p1.Y > scanY) {
				t := (scanY - p1.Y) / (p2.Y - p1.Y)
				xs = append(xs, p1.X+t*(p2.X-p1.X))
			}
		}
		c.intersectionBuf = xs

		sort.Float64s(xs)
		for i := 0; i+1 < len(xs); i += 2 {
			for x := int(math.Ceil(xs[i])); x <= int(math.Floor(xs[i+1])); x++ {
				c.setPixel(x, y, ink)
			}
		}
	}
}

// glyph picks the character and colors showing a top and bottom sub-pixel.
// A color of -1 is the terminal default.
func glyph(top, bottom Ink) (ch rune, fg, bg int) {
	switch {
	case top == InkNone && bottom == InkNone:
		return BlockEmpty, -1, -1
	case bottom == InkNone:
		return BlockUpperHalf, int(top), -1
	case top == InkNone:
		return BlockLowerHalf, int(bottom), -1
	case top == bottom:
		return BlockFull, int(top), -1
	default:
		return BlockUpperHalf, int(top), int(bottom)
	}
}

func (c *Canvas) appendStyle(fg, bg int) {
	if fg < 0 && bg < 0 {
		c.renderBuf.WriteString(styleReset)
		return
	}
	c.renderBuf.WriteString("\033[0;38;5;")
	c.renderBuf.Write(strconv.AppendInt(c.numBuf[:0], int64(fg), 10))
	if bg >= 0 {
		c.renderBuf.WriteString(";48;5;")
		c.renderBuf.Write(strconv.AppendInt(c.numBuf[:0], int64(bg), 10))
	}
	c.renderBuf.WriteByte('m')
}

// Render writes the cells that changed since the previous Render. Cells that
// went dark are overwritten with spaces. The terminal is left in its default
// style so text overlays drawn afterwards are unaffected.
func (c *Canvas) Render(w io.Writer) {
	c.renderBuf.Reset()
	fg, bg := -1, -1

	for row := 0; row < c.termHeight; row++ {
		topOffset := row * 2 * c.termWidth
		bottomOffset := topOffset + c.termWidth
		for col := 0; col < c.termWidth; col++ {
			top := c.pixels[topOffset+col]
			bottom := c.pixels[bottomOffset+col]

			cell := row*c.termWidth + col
			key := (uint32(top)<<8 | uint32(bottom)) + 1
			if c.shown[cell] == key {
				continue
			}
			c.shown[cell] = key

			ch, wantFg, wantBg := glyph(top, bottom)
			appendCursor(&c.renderBuf, c.numBuf[:], col+1+c.offsetCol, row+1+c.offsetRow)
			if wantFg != fg || wantBg != bg {
				c.appendStyle(wantFg, wantBg)
				fg, bg = wantFg, wantBg
			}
			c.renderBuf.WriteRune(ch)
		}
	}
	if fg >= 0 || bg >= 0 {
		c.renderBuf.WriteString(styleReset)
	}

	writeChunked(w, c.renderBuf.String())
}

// writeChunked writes data in pieces of at most maxChunkSize bytes.
func writeChunked(w io.Writer, data string) {
	for len(data) > 0 {
		chunk := data[:min(len(data), maxChunkSize)]
		io.WriteString(w, chunk)
		data = data[len(chunk):]
	}
}

// ForceRedraw makes the next Render write every cell, e.g. after the
// terminal was cleared.
func (c *Canvas) ForceRedraw() {
	clear(c.shown)
}

// MarkTextDirty marks n cells starting at the 1-based canvas position
// (col, row) for rewrite, so text drawn over the canvas is cleaned up on
// the next Render.
func (c *Canvas) MarkTextDirty(col, row, n int) {
	if row < 1 || row > c.termHeight {
		return
	}
	start := (row-1)*c.termWidth + max(col-1, 0)
	end := min((row-1)*c.termWidth+col-1+n, row*c.termWidth)
	for i := start; i < end; i++ {
		c.shown[i] = 0
	}
}

// RenderBorder frames the canvas in gray when the terminal exceeds the max
// render resolution. Horizontal bars need a vertical offset, vertical bars a
// horizontal one; corners appear only when both fit.
func (c *Canvas) RenderBorder(w io.Writer) {
	hasSides := c.offsetCol >= 1
	hasBars := c.offsetRow >= 1
	if !hasSides && !hasBars {
		return
	}

	left := c.offsetCol
	right := c.offsetCol + c.termWidth + 1
	top := c.offsetRow
	bottom := c.offsetRow + c.termHeight + 1

	var b strings.Builder
	b.WriteString("\033[0;38;5;")
	b.Write(strconv.AppendInt(c.numBuf[:0], int64(InkGray), 10))
	b.WriteByte('m')

	if hasBars {
		bar := strings.Repeat("─", c.termWidth)
		for _, row := range []int{top, bottom} {
			if hasSides {
				appendCursor(&b, c.numBuf[:], left, row)
				if row == top {
					b.WriteString("┌" + bar + "┐")
				} else {
					b.WriteString("└" + bar + "┘")
				}
			} else {
				appendCursor(&b, c.numBuf[:], left+1, row)
				b.WriteString(bar)
			}
		}
	}
	if hasSides {
		for row := c.offsetRow + 1; row <= c.offsetRow+c.termHeight; row++ {
			appendCursor(&b, c.numBuf[:], left, row)
			b.WriteString("│")
			appendCursor(&b, c.numBuf[:], right, row)
			b.WriteString("│")
		}
	}
	b.WriteString(styleReset)

	writeChunked(w, b.String())
}

// BorrowPoints returns a reusable slice of Points with the given length.
// The returned slice is only valid until the next call to BorrowPoints.
func (c *Canvas) BorrowPoints(n int) []Point {
	if cap(c.polygonBuf) < n {
		c.polygonBuf = make([]Point, n)
	}
	return c.polygonBuf[:n]
}
