package physics

// Collider is one body's state for a contact pass.
type Collider struct {
	ID     uint64
	Bounds Rect
	PrevX  float64 // Center before this step; used when Body.Precise is set
	PrevY  float64
	Body   Body
}

// Contact is a pair of bodies that started touching during the last pass.
type Contact struct {
	A, B Collider
}

type pairKey struct {
	lo, hi uint64
}

func keyOf(a, b uint64) pairKey {
	if a > b {
		a, b = b, a
	}
	return pairKey{lo: a, hi: b}
}

// ContactDetector reports contact-begin events. A pair produces one event when
// it starts overlapping and none while it stays in contact; it can begin again
// after separating.
type ContactDetector struct {
	grid     *SpatialGrid
	touching map[pairKey]struct{}
	next     map[pairKey]struct{}
	bounds   []Rect
}

// NewContactDetector creates a detector for a world of the given size.
// cellSize trades memory for fewer candidate pairs; any size is correct.
func NewContactDetector(worldW, worldH, cellSize float64) *ContactDetector {
	return &ContactDetector{
		grid:     NewSpatialGrid(worldW, worldH, cellSize),
		touching: make(map[pairKey]struct{}),
		next:     make(map[pairKey]struct{}),
	}
}

// Detect runs one pass over colliders and appends contact-begin events to dst.
func (d *ContactDetector) Detect(colliders []Collider, dst []Contact) []Contact {
	d.grid.Clear()
	d.bounds = d.bounds[:0]
	clear(d.next)

	for i, c := range colliders {
		b := c.Bounds
		if c.Body.Precise {
			b = b.Sweep(c.PrevX, c.PrevY)
		}
		d.bounds = append(d.bounds, b)
		d.grid.Insert(b, i)
	}

	check := func(i, j int) {
		a, b := colliders[i], colliders[j]
		if a.ID == b.ID || !ShouldContact(a.Body, b.Body) {
			return
		}
		if !d.bounds[i].Overlaps(d.bounds[j]) {
			return
		}
		key := keyOf(a.ID, b.ID)
		if _, seen := d.next[key]; seen {
			return
		}
		d.next[key] = struct{}{}
		if _, was := d.touching[key]; !was {
			dst = append(dst, Contact{A: a, B: b})
		}
	}

	for i := range colliders {
		d.grid.Query(d.bounds[i], func(j int) bool {
			if j > i {
				check(i, j)
			}
			return false
		})
	}

	d.touching, d.next = d.next, d.touching
	return dst
}

// Reset forgets all tracked pairs.
func (d *ContactDetector) Reset() {
	clear(d.touching)
}
