// Package ebitenhost runs the game in an Ebitengine window or a gomobile view.
package ebitenhost

import (
	"io"
	"math/rand"
	"time"

	"github.com/charmbracelet/log"
	"github.com/hajimehoshi/ebiten/v2"
	"github.com/hajimehoshi/ebiten/v2/inpututil"
	"github.com/tomz197/shoot/internal/config"
	"github.com/tomz197/shoot/internal/input"
	"github.com/tomz197/shoot/internal/loop"
	"github.com/tomz197/shoot/internal/object"
	"github.com/tsujio/game-util/mathutil"
)

// keyTiltAmount is the emulated reading while a tilt key is held.
const keyTiltAmount = 0.5

// Options configures a Game.
type Options struct {
	Motion *input.MotionSlot // External tilt source; nil emulates tilt with keys and gamepads
	Logger *log.Logger
	Seed   int64
	// Quittable lets Escape and Q end the game. Desktop only.
	Quittable bool
}

// Game implements ebiten.Game on top of loop.Game.
type Game struct {
	game    *loop.Game
	tilt    *emulatedTilt
	taps    tapReader
	tapBuf  []*mathutil.Vector2D
	logger  *log.Logger
	start   time.Time
	now     func() time.Time
	canQuit bool

	scene      loop.Scene
	prevScene  loop.Scene
	transition loop.Transition
	transStart time.Time
	scoreText  string
	finalText  string

	renderer *renderer
}

// NewGame creates a Game with its first session running.
func NewGame(opts Options) (*Game, error) {
	logger := opts.Logger
	if logger == nil {
		logger = log.New(io.Discard)
	}
	seed := opts.Seed
	if seed == 0 {
		seed = time.Now().UnixNano()
	}
	r, err := newRenderer()
	if err != nil {
		return nil, err
	}

	g := &Game{
		logger:   logger,
		now:      time.Now,
		canQuit:  opts.Quittable,
		renderer: r,
	}
	g.start = g.now()

	motion := opts.Motion
	if motion == nil {
		motion = &input.MotionSlot{}
		g.tilt = newEmulatedTilt(motion, keyTiltAmount)
	}

	g.game = loop.NewGame(loop.Options{
		Screen:    object.NewScreen(config.ViewWidth, config.ViewHeight),
		Rand:      rand.New(rand.NewSource(seed)),
		Motion:    motion,
		HUD:       g,
		Presenter: g,
		Logger:    logger,
	})
	return g, nil
}

// SetText implements loop.HUD.
func (g *Game) SetText(text string) {
	g.scoreText = text
}

// Present implements loop.Presenter.
func (g *Game) Present(scene loop.Scene, t loop.Transition) {
	if scene == loop.SceneGameOver {
		g.finalText = g.scoreText
	}
	g.prevScene = g.scene
	g.scene = scene
	g.transition = t
	g.transStart = g.now()
}

// Update implements ebiten.Game.
func (g *Game) Update() error {
	if g.canQuit && (inpututil.IsKeyJustPressed(ebiten.KeyEscape) || inpututil.IsKeyJustPressed(ebiten.KeyQ)) {
		g.logger.Info("quit", "games", g.game.Games(), "score", g.game.Session().Score())
		return ebiten.Termination
	}

	g.tapBuf = g.taps.appendTaps(g.tapBuf[:0])
	for _, p := range g.tapBuf {
		x, y := toWorld(p.X, p.Y)
		g.game.Tap(x, y)
	}
	if g.taps.buttonTapped() {
		p := g.game.Session().Player()
		g.game.Tap(p.Pos.X, p.Pos.Y)
	}

	if g.tilt != nil {
		g.tilt.update()
	}

	g.game.Update(g.now().Sub(g.start))
	return nil
}

// Draw implements ebiten.Game.
func (g *Game) Draw(screen *ebiten.Image) {
	elapsed := g.now().Sub(g.transStart)
	scene := g.scene
	// The outgoing scene is shown until the flip reaches its midpoint.
	if g.transition.Progress(elapsed) < 0.5 && g.prevScene != "" {
		scene = g.prevScene
	}
	g.renderer.draw(screen, frame{
		scene:     scene,
		session:   g.game.Session(),
		scoreText: g.scoreText,
		finalText: g.finalText,
		scaleX:    g.transition.FlipScale(elapsed),
	})
}

// Layout implements ebiten.Game.
func (g *Game) Layout(outsideWidth, outsideHeight int) (int, int) {
	return config.ViewWidth, config.ViewHeight
}

// toWorld converts layout coordinates (y down) to game coordinates (y up).
func toWorld(x, y float64) (float64, float64) {
	return x, float64(config.ViewHeight) - y
}

// toScreen converts game coordinates to layout coordinates.
func toScreen(x, y float64) (float64, float64) {
	return x, float64(config.ViewHeight) - y
}
