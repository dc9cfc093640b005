package physics

// Category is a bitmask classifying bodies for contact and collision filtering.
type Category uint32

const (
	CategoryNone   Category = 0
	CategoryEnemy  Category = 1 << 0
	CategoryBullet Category = 1 << 1
	CategoryWall   Category = 1 << 2
	CategoryPlayer Category = 1 << 3
	CategoryAll    Category = 0xFFFFFFFF
)

// String returns a readable name for single-bit categories.
func (c Category) String() string {
	switch c {
	case CategoryNone:
		return "none"
	case CategoryEnemy:
		return "enemy"
	case CategoryBullet:
		return "bullet"
	case CategoryWall:
		return "wall"
	case CategoryPlayer:
		return "player"
	case CategoryAll:
		return "all"
	}
	return "mixed"
}

// Body describes how an entity takes part in the simulation.
type Body struct {
	Category    Category // What this body is
	ContactTest Category // Which categories produce contact events with it
	Collision   Category // Which categories it is physically stopped by
	Mass        float64
	Dynamic     bool // Moved by forces
	Precise     bool // Swept bounds for contact tests
}

// ShouldContact reports whether two bodies generate a contact event when they
// overlap. Either side's contact-test mask is enough.
func ShouldContact(a, b Body) bool {
	return a.ContactTest&b.Category != 0 || b.ContactTest&a.Category != 0
}

// Collides reports whether a is physically stopped by b.
func Collides(a, b Body) bool {
	return a.Collision&b.Category != 0
}
