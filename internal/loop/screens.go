package loop

import (
	"math/rand"
	"time"

	"github.com/samber/lo"
	"github.com/tomz197/shoot/internal/event"
)

// Game runs sessions back to back: taps fire while a session is active and
// start a fresh session once it is over.
type Game struct {
	opts    Options
	session *Session
	inbox   *event.Queue
	buf     []event.Event
	games   int
}

// NewGame creates a game with its first session active.
func NewGame(opts Options) *Game {
	opts = opts.withDefaults()
	g := &Game{opts: opts, inbox: event.NewQueue()}
	g.session = NewSession(g.sessionOptions())
	g.games = 1
	if opts.Presenter != nil {
		opts.Presenter.Present(SceneGame, Transition{})
	}
	return g
}

// sessionOptions gives each session its own random stream derived from the
// game's so restarts do not replay the same enemies.
func (g *Game) sessionOptions() Options {
	o := g.opts
	o.Rand = rand.New(rand.NewSource(g.opts.Rand.Int63()))
	return o
}

// Tap reports a tap at screen position (x, y). Safe for concurrent use.
func (g *Game) Tap(x, y float64) {
	g.inbox.Push(event.Event{Type: event.Tap, X: x, Y: y})
}

// Update runs one frame.
func (g *Game) Update(now time.Duration) {
	g.buf = g.inbox.Drain(g.buf[:0])

	if g.session.State() == GameStateGameOver {
		if lo.ContainsBy(g.buf, func(e event.Event) bool { return e.Type == event.Tap }) {
			g.restart()
		}
		return
	}

	for _, e := range g.buf {
		if e.Type == event.Tap {
			g.session.Tap(e.X, e.Y)
		}
	}
	g.session.Update(now)
}

// restart replaces the finished session with a brand-new one.
func (g *Game) restart() {
	g.session = NewSession(g.sessionOptions())
	g.games++
	g.opts.Logger.Info("new game", "games", g.games)
	if g.opts.Presenter != nil {
		g.opts.Presenter.Present(SceneGame, FlipHorizontal)
	}
}

// Session returns the current session.
func (g *Game) Session() *Session { return g.session }

// State returns the current session phase.
func (g *Game) State() GameState { return g.session.State() }

// Games returns how many sessions have been started.
func (g *Game) Games() int { return g.games }
