package loop

import (
	"io"
	"math/rand"
	"time"

	"github.com/charmbracelet/log"
	"github.com/samber/lo"
	"github.com/tomz197/shoot/internal/config"
	"github.com/tomz197/shoot/internal/event"
	"github.com/tomz197/shoot/internal/object"
	"github.com/tomz197/shoot/internal/physics"
	"github.com/tomz197/shoot/internal/starfield"
)

// Options configures a session. Zero values get defaults.
type Options struct {
	Screen    object.Screen
	Rand      *rand.Rand
	Motion    MotionSource
	HUD       HUD
	Presenter Presenter
	Logger    *log.Logger
	Stars     []starfield.LayerSpec
}

func (o Options) withDefaults() Options {
	if o.Screen.Width <= 0 || o.Screen.Height <= 0 {
		o.Screen = object.NewScreen(config.ViewWidth, config.ViewHeight)
	}
	if o.Rand == nil {
		o.Rand = rand.New(rand.NewSource(time.Now().UnixNano()))
	}
	if o.Logger == nil {
		o.Logger = log.New(io.Discard)
	}
	if o.Stars == nil {
		o.Stars = starfield.DefaultLayers()
	}
	return o
}

// Session is one run of the game from start to game over.
type Session struct {
	opts       Options
	logger     *log.Logger
	state      GameState
	world      *World
	player     *object.Entity
	wall       *object.Entity
	stars      *starfield.Field
	spawner    *object.EnemySpawner
	controller *PlayerController
	score      *ScoreTracker
	queue      *event.Queue
	contacts   *physics.ContactDetector

	lastUpdate float64 // Seconds; zero until the first frame
	delta      float64

	events     []event.Event
	contactBuf []physics.Contact
}

// NewSession creates an active session with the player, the world edge, a
// fresh starfield and the enemy schedule armed to fire on the first frame.
func NewSession(opts Options) *Session {
	opts = opts.withDefaults()
	s := &Session{
		opts:       opts,
		logger:     opts.Logger,
		state:      GameStateActive,
		world:      NewWorld(),
		stars:      starfield.New(opts.Screen, opts.Rand, opts.Stars),
		spawner:    object.NewEnemySpawner(config.EnemySpawnInterval),
		controller: NewPlayerController(),
		score:      NewScoreTracker(opts.HUD),
		queue:      event.NewQueue(),
		contacts: physics.NewContactDetector(
			float64(opts.Screen.Width), float64(opts.Screen.Height), config.ContactCellSize,
		),
	}
	s.wall = object.NewWall(s.world.NextID(), opts.Screen)
	s.world.Spawn(s.wall)
	s.player = object.NewPlayer(s.world.NextID(), opts.Screen)
	s.world.Spawn(s.player)
	return s
}

// Update runs one frame at wall-clock time now. Game-over frames do nothing.
func (s *Session) Update(now time.Duration) {
	if s.state == GameStateGameOver {
		return
	}
	dt := s.frameDelta(now)

	s.controller.Apply(s.opts.Motion, s.player)
	s.stars.Advance(dt)

	for n := s.spawner.Update(dt); n > 0; n-- {
		s.queue.Push(event.Event{Type: event.SpawnEnemy})
	}
	s.dispatchEvents()
	if s.state == GameStateGameOver {
		return
	}

	s.step(dt)
}

// frameDelta returns the seconds since the previous frame. Gaps longer than
// config.MaxFrameDelta, and clocks running backwards, use the fallback delta.
func (s *Session) frameDelta(now time.Duration) float64 {
	t := now.Seconds()
	dt := t - s.lastUpdate
	s.lastUpdate = t
	if dt > config.MaxFrameDelta || dt < 0 {
		dt = config.FallbackFrameDelta
	}
	s.delta = dt
	return dt
}

// dispatchEvents drains the queue and applies each event in order. Once the
// game is over the rest are dropped.
func (s *Session) dispatchEvents() {
	s.events = s.queue.Drain(s.events[:0])
	for _, ev := range s.events {
		if s.state == GameStateGameOver {
			break
		}
		switch ev.Type {
		case event.Tap:
			s.SpawnBullet(s.player)
		case event.SpawnEnemy:
			s.SpawnEnemy()
		case event.Contact:
			a, b := s.world.Get(ev.A), s.world.Get(ev.B)
			if a == nil || b == nil {
				continue
			}
			Resolve(a, b, s)
		case event.MoveArrived:
			s.arrived(s.world.Get(ev.A))
		}
	}
	s.world.Compact()
}

// step moves every entity, then posts arrivals and new contacts for the next frame.
func (s *Session) step(dt float64) {
	for _, e := range s.world.Entities() {
		if e.IsDestroyed() {
			continue
		}
		if e.Step(dt, s.wall) {
			s.queue.Push(event.Event{Type: event.MoveArrived, A: e.ID})
		}
	}

	colliders := lo.FilterMap(s.world.Entities(), func(e *object.Entity, _ int) (physics.Collider, bool) {
		return e.Collider(), !e.IsDestroyed()
	})
	s.contactBuf = s.contacts.Detect(colliders, s.contactBuf[:0])
	for _, c := range s.contactBuf {
		s.queue.Push(event.Event{Type: event.Contact, A: c.A.ID, B: c.B.ID})
	}
}

// arrived handles a finished move: bullets expire, enemies escaping end the game.
func (s *Session) arrived(e *object.Entity) {
	if e == nil {
		return
	}
	switch e.Kind {
	case object.KindBullet:
		s.world.Remove(e)
	case object.KindEnemy:
		s.world.Remove(e)
		s.logger.Info("enemy escaped", "id", e.ID)
		s.endGame()
	case object.KindPlayer, object.KindWall:
	}
}

// EnemyShot implements ContactHandler.
func (s *Session) EnemyShot(enemy, bullet *object.Entity) {
	s.logger.Debug("hit", "enemy", enemy.ID, "bullet", bullet.ID)
	s.world.Remove(enemy)
	s.world.Remove(bullet)
	s.score.Add(1)
}

// EnemyRammed implements ContactHandler.
func (s *Session) EnemyRammed(enemy, player *object.Entity) {
	s.logger.Debug("collision", "enemy", enemy.ID, "player", player.ID)
	s.world.Remove(enemy)
	s.world.Remove(player)
	s.endGame()
}

func (s *Session) endGame() {
	if s.state == GameStateGameOver {
		return
	}
	s.state = GameStateGameOver
	s.logger.Info("game over", "score", s.score.Score())
	if s.opts.Presenter != nil {
		s.opts.Presenter.Present(SceneGameOver, FlipHorizontal)
	}
}

// SpawnEnemy adds an enemy at a random height on the right edge.
// Returns nil once the game is over.
func (s *Session) SpawnEnemy() *object.Entity {
	if s.state == GameStateGameOver {
		return nil
	}
	e := object.NewEnemy(s.world.NextID(), s.opts.Screen, s.opts.Rand)
	s.world.Spawn(e)
	return e
}

// SpawnBullet fires a bullet from origin. Returns nil once the game is over
// or when origin is gone.
func (s *Session) SpawnBullet(origin *object.Entity) *object.Entity {
	if s.state == GameStateGameOver || origin == nil || origin.IsDestroyed() {
		return nil
	}
	b := object.NewBullet(s.world.NextID(), origin, s.opts.Screen)
	s.world.Spawn(b)
	return b
}

// Tap queues a tap for the next frame. Safe for concurrent use.
func (s *Session) Tap(x, y float64) {
	s.queue.Push(event.Event{Type: event.Tap, X: x, Y: y})
}

// State returns the session phase.
func (s *Session) State() GameState { return s.state }

// Score returns the current score.
func (s *Session) Score() int { return s.score.Score() }

// ScoreText returns the HUD string.
func (s *Session) ScoreText() string { return s.score.Text() }

// Player returns the player entity; it is marked destroyed after a collision.
func (s *Session) Player() *object.Entity { return s.player }

// Entities returns the live entities.
func (s *Session) Entities() []*object.Entity { return s.world.Entities() }

// Count returns the number of live entities of a kind.
func (s *Session) Count(kind object.Kind) int { return s.world.Count(kind) }

// Stars returns the starfield.
func (s *Session) Stars() *starfield.Field { return s.stars }

// Delta returns the last frame's delta in seconds.
func (s *Session) Delta() float64 { return s.delta }

// Controller returns the player controller.
func (s *Session) Controller() *PlayerController { return s.controller }

// Screen returns the playfield size.
func (s *Session) Screen() object.Screen { return s.opts.Screen }
