package physics

import "math"

// SpatialGrid is a uniform grid over a bounded world for broad-phase contact
// detection. Each body is filed under every cell its box covers, so bodies of
// any size are found by querying the cells covered by another box. Boxes that
// stick out of the world are clamped into the border cells.
type SpatialGrid struct {
	cellSize    float64
	invCellSize float64 // 1 / cellSize (precomputed to avoid division)
	cols        int
	rows        int
	cells       [][]int // Item indices per cell, reused between frames

	// seen[i] == epoch marks item i as already reported by the running query.
	seen  []uint32
	epoch uint32
}

// NewSpatialGrid creates a spatial grid covering the given world dimensions.
func NewSpatialGrid(worldW, worldH, cellSize float64) *SpatialGrid {
	cols := max(int(math.Ceil(worldW/cellSize)), 1)
	rows := max(int(math.Ceil(worldH/cellSize)), 1)
	return &SpatialGrid{
		cellSize:    cellSize,
		invCellSize: 1.0 / cellSize,
		cols:        cols,
		rows:        rows,
		cells:       make([][]int, cols*rows),
	}
}

// Clear removes all items from the grid without deallocating cell memory.
func (g *SpatialGrid) Clear() {
	for i := range g.cells {
		g.cells[i] = g.cells[i][:0]
	}
}

// Insert files item index under every cell covered by r.
func (g *SpatialGrid) Insert(r Rect, index int) {
	if index >= len(g.seen) {
		g.seen = append(g.seen, make([]uint32, index+1-len(g.seen))...)
	}
	c0, r0, c1, r1 := g.cellRange(r)
	for row := r0; row <= r1; row++ {
		for col := c0; col <= c1; col++ {
			i := row*g.cols + col
			g.cells[i] = append(g.cells[i], index)
		}
	}
}

// Query calls fn once for each item sharing at least one cell with r.
// If fn returns true, iteration stops early.
func (g *SpatialGrid) Query(r Rect, fn func(index int) bool) {
	g.epoch++
	if g.epoch == 0 {
		clear(g.seen)
		g.epoch = 1
	}

	c0, r0, c1, r1 := g.cellRange(r)
	for row := r0; row <= r1; row++ {
		for col := c0; col <= c1; col++ {
			for _, item := range g.cells[row*g.cols+col] {
				if g.seen[item] == g.epoch {
					continue
				}
				g.seen[item] = g.epoch
				if fn(item) {
					return
				}
			}
		}
	}
}

// cellRange returns the inclusive cell span covered by r.
func (g *SpatialGrid) cellRange(r Rect) (col0, row0, col1, row1 int) {
	col0, row0 = g.posToCell(r.X-r.HW, r.Y-r.HH)
	col1, row1 = g.posToCell(r.X+r.HW, r.Y+r.HH)
	return col0, row0, col1, row1
}

// posToCell converts world coordinates to a grid cell, clamped to the grid.
func (g *SpatialGrid) posToCell(x, y float64) (col, row int) {
	col = min(max(int(math.Floor(x*g.invCellSize)), 0), g.cols-1)
	row = min(max(int(math.Floor(y*g.invCellSize)), 0), g.rows-1)
	return col, row
}
