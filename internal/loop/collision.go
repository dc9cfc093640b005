package loop

import "github.com/tomz197/shoot/internal/object"

// Outcome is the result of resolving a contact.
type Outcome int

const (
	OutcomeNone     Outcome = iota // Pair ignored
	OutcomeKill                    // Bullet destroyed an enemy
	OutcomeGameOver                // Enemy reached the player
)

// ContactHandler applies the effects of a resolved contact.
type ContactHandler interface {
	EnemyShot(enemy, bullet *object.Entity)
	EnemyRammed(enemy, player *object.Entity)
}

// Resolve orders a contact pair by body category, lowest first, and applies
// the matching rule through h.
func Resolve(a, b *object.Entity, h ContactHandler) Outcome {
	first, second := a, b
	if first.Body.Category > second.Body.Category {
		first, second = second, first
	}

	switch first.Kind {
	case object.KindEnemy:
		switch second.Kind {
		case object.KindBullet:
			h.EnemyShot(first, second)
			return OutcomeKill
		case object.KindPlayer:
			h.EnemyRammed(first, second)
			return OutcomeGameOver
		case object.KindEnemy, object.KindWall:
			return OutcomeNone
		}
	case object.KindBullet, object.KindWall, object.KindPlayer:
		return OutcomeNone
	}
	return OutcomeNone
}
