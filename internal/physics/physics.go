// Package physics provides contact categories, bounds tests and begin-contact detection.
package physics

// Rect is an axis-aligned box given by its center and half extents.
type Rect struct {
	X, Y   float64 // Center
	HW, HH float64 // Half width, half height
}

// Overlaps reports whether two boxes intersect. Touching edges do not count.
func (r Rect) Overlaps(o Rect) bool {
	return abs(r.X-o.X) < r.HW+o.HW && abs(r.Y-o.Y) < r.HH+o.HH
}

// Sweep returns the smallest box covering r at both its current center and a
// previous center (px, py). Used for fast bodies so they cannot tunnel through
// thin targets between frames.
func (r Rect) Sweep(px, py float64) Rect {
	minX := min(r.X, px) - r.HW
	maxX := max(r.X, px) + r.HW
	minY := min(r.Y, py) - r.HH
	maxY := max(r.Y, py) + r.HH
	return Rect{
		X:  (minX + maxX) / 2,
		Y:  (minY + maxY) / 2,
		HW: (maxX - minX) / 2,
		HH: (maxY - minY) / 2,
	}
}

// Contains reports whether the point lies inside the box.
func (r Rect) Contains(x, y float64) bool {
	return abs(x-r.X) <= r.HW && abs(y-r.Y) <= r.HH
}

func abs(v float64) float64 {
	if v < 0 {
		return -v
	}
	return v
}
