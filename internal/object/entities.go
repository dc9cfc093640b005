package object

import (
	"math/rand"

	"github.com/tomz197/shoot/internal/config"
	"github.com/tomz197/shoot/internal/physics"
	"github.com/tsujio/game-util/mathutil"
)

// NewPlayer creates the player ship at its start position.
func NewPlayer(id uint64, screen Screen) *Entity {
	return &Entity{
		ID:   id,
		Kind: KindPlayer,
		Pos: mathutil.NewVector2D(
			float64(screen.Width)*config.PlayerStartX,
			float64(screen.Height)*config.PlayerStartY,
		),
		Vel: mathutil.NewVector2D(0, 0),
		HW:  config.PlayerWidth / 2,
		HH:  config.PlayerHeight / 2,
		Body: physics.Body{
			Category:    physics.CategoryPlayer,
			ContactTest: physics.CategoryEnemy,
			Collision:   physics.CategoryWall,
			Mass:        config.PlayerMass,
			Dynamic:     true,
		},
		Damping: config.PlayerLinearDamping,
	}
}

// NewWall creates the edge loop around the screen.
func NewWall(id uint64, screen Screen) *Entity {
	b := screen.Bounds()
	return &Entity{
		ID:   id,
		Kind: KindWall,
		Pos:  mathutil.NewVector2D(b.X, b.Y),
		Vel:  mathutil.NewVector2D(0, 0),
		HW:   b.HW,
		HH:   b.HH,
		Body: physics.Body{Category: physics.CategoryWall},
	}
}

// NewEnemy creates an enemy just past the right edge at a random height,
// moving left across the screen over a random transit time.
func NewEnemy(id uint64, screen Screen, rng *rand.Rand) *Entity {
	hh := config.EnemyHeight / 2
	y := uniform(rng, hh, float64(screen.Height)-hh)
	transit := uniform(rng, config.EnemyMinTransit, config.EnemyMaxTransit)
	return NewEnemyAt(id, screen, y, transit)
}

// NewEnemyAt creates an enemy at height y crossing the screen in transit seconds.
func NewEnemyAt(id uint64, screen Screen, y, transit float64) *Entity {
	hw, hh := config.EnemyWidth/2, config.EnemyHeight/2
	from := mathutil.NewVector2D(float64(screen.Width)+hw, y)
	to := mathutil.NewVector2D(-hw, y)
	return &Entity{
		ID:   id,
		Kind: KindEnemy,
		Pos:  from.Clone(),
		Vel:  mathutil.NewVector2D(0, 0),
		HW:   hw,
		HH:   hh,
		Body: physics.Body{
			Category:    physics.CategoryEnemy,
			ContactTest: physics.CategoryBullet | physics.CategoryPlayer,
			Collision:   physics.CategoryNone,
		},
		Move: NewMove(from, to, transit),
	}
}

// NewBullet creates a bullet at the leading edge of origin, flying to just
// past the right edge of the screen.
func NewBullet(id uint64, origin *Entity, screen Screen) *Entity {
	hw, hh := config.BulletWidth/2, config.BulletHeight/2
	from := mathutil.NewVector2D(origin.Pos.X+origin.HW+hw, origin.Pos.Y)
	to := mathutil.NewVector2D(float64(screen.Width)+hw, origin.Pos.Y)
	return &Entity{
		ID:   id,
		Kind: KindBullet,
		Pos:  from.Clone(),
		Vel:  mathutil.NewVector2D(0, 0),
		HW:   hw,
		HH:   hh,
		Body: physics.Body{
			Category:    physics.CategoryBullet,
			ContactTest: physics.CategoryEnemy,
			Collision:   physics.CategoryNone,
			Precise:     true,
		},
		Move: NewMove(from, to, config.BulletTransit),
	}
}

// uniform returns a random value in [lo, hi]. Degenerate ranges return lo.
func uniform(rng *rand.Rand, lo, hi float64) float64 {
	if hi <= lo {
		return lo
	}
	return lo + rng.Float64()*(hi-lo)
}
