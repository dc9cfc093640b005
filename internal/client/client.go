// Package client runs one game on an ANSI terminal: local stdin/stdout or an
// SSH session.
package client

import (
	"bufio"
	"context"
	"io"
	"math/rand"
	"time"

	"github.com/charmbracelet/log"
	"github.com/tomz197/shoot/internal/config"
	"github.com/tomz197/shoot/internal/draw"
	"github.com/tomz197/shoot/internal/input"
	"github.com/tomz197/shoot/internal/loop"
	"github.com/tomz197/shoot/internal/object"
)

// keyTiltAmount is the emulated tilt reading while up or down is held.
const keyTiltAmount = 0.5

// Client handles rendering and input for a single terminal.
type Client struct {
	game         *loop.Game
	state        *ClientState
	canvas       *draw.Canvas
	chunkWriter  *draw.ChunkWriter // Accumulates UI text for chunked output
	writer       io.Writer
	inputStream  *input.Stream
	tilt         *input.KeyTilt // nil when an external motion source is used
	termSizeFunc draw.TermSizeFunc
	logger       *log.Logger
	start        time.Time
}

// ClientOptions configures the client.
type ClientOptions struct {
	TermSizeFunc draw.TermSizeFunc
	Motion       *input.MotionSlot // External tilt source; nil emulates tilt with keys
	Logger       *log.Logger
	Seed         int64
}

// NewClient creates a client running a fresh game.
func NewClient(r *bufio.Reader, w io.Writer, opts ClientOptions) *Client {
	termSizeFunc := opts.TermSizeFunc
	if termSizeFunc == nil {
		termSizeFunc = draw.DefaultTermSizeFunc
	}
	logger := opts.Logger
	if logger == nil {
		logger = log.New(io.Discard)
	}
	seed := opts.Seed
	if seed == 0 {
		seed = time.Now().UnixNano()
	}

	termWidth, termHeight, _ := termSizeFunc()
	renderWidth, renderHeight, offsetCol, offsetRow := clampTermSize(termWidth, termHeight)
	canvas := draw.NewScaledCanvas(renderWidth, renderHeight, config.ViewWidth, config.ViewHeight)
	canvas.SetOffset(offsetCol, offsetRow)

	c := &Client{
		state:        NewClientState(),
		canvas:       canvas,
		chunkWriter:  draw.NewChunkWriter(w, offsetCol, offsetRow),
		writer:       w,
		inputStream:  input.StartStream(r),
		termSizeFunc: termSizeFunc,
		logger:       logger,
	}

	motion := opts.Motion
	if motion == nil {
		motion = &input.MotionSlot{}
		c.tilt = input.NewKeyTilt(motion, keyTiltAmount)
	}

	c.game = loop.NewGame(loop.Options{
		Screen:    object.NewScreen(config.ViewWidth, config.ViewHeight),
		Rand:      rand.New(rand.NewSource(seed)),
		Motion:    motion,
		HUD:       c,
		Presenter: c,
		Logger:    logger,
	})
	return c
}

// SetText implements loop.HUD.
func (c *Client) SetText(text string) {
	c.state.ScoreText = text
}

// Present implements loop.Presenter.
func (c *Client) Present(scene loop.Scene, t loop.Transition) {
	c.state.Scene = scene
	c.state.transition = t
	c.state.elapsed = 0
}

// Run starts the client loop. Blocks until the player quits, input closes
// or ctx is cancelled.
func (c *Client) Run(ctx context.Context) error {
	draw.HideCursor(c.writer)
	defer draw.ShowCursor(c.writer)
	draw.ClearScreen(c.writer)

	c.start = time.Now()
	lastTime := c.start

	for c.state.Running {
		if ctx.Err() != nil {
			break
		}
		frameStart := time.Now()
		c.state.delta = frameStart.Sub(lastTime)
		lastTime = frameStart

		c.processInput()
		c.updateScreen()

		c.game.Update(frameStart.Sub(c.start))
		c.state.advance(c.state.delta)

		if err := c.drawFrame(); err != nil {
			return err
		}

		// Frame timing
		elapsed := time.Since(frameStart)
		if elapsed < config.ClientTargetFrameTime {
			time.Sleep(config.ClientTargetFrameTime - elapsed)
		}
	}

	c.logger.Info("client stopped", "games", c.game.Games(), "score", c.game.Session().Score())
	draw.ClearScreen(c.writer)
	return nil
}

// processInput reads keys and forwards taps and tilt to the game.
func (c *Client) processInput() {
	c.state.Input = input.ReadInput(c.inputStream)

	if c.state.Input.Quit {
		c.state.Running = false
		return
	}
	if c.state.Input.Tap() {
		p := c.game.Session().Player()
		c.game.Tap(p.Pos.X, p.Pos.Y)
	}
	if c.tilt != nil {
		c.tilt.Update(c.state.Input.Up, c.state.Input.Down)
	}
}

// updateScreen handles terminal resize, clamping to max render resolution.
// On actual size changes, clears the terminal to remove residual pixels
// outside the new canvas area.
func (c *Client) updateScreen() {
	termWidth, termHeight, err := c.termSizeFunc()
	if err != nil {
		return
	}
	renderWidth, renderHeight, offsetCol, offsetRow := clampTermSize(termWidth, termHeight)

	if renderWidth != c.canvas.TerminalWidth() || renderHeight != c.canvas.TerminalHeight() ||
		offsetCol != c.canvas.OffsetCol() || offsetRow != c.canvas.OffsetRow() {
		draw.ClearScreen(c.writer)
		c.canvas.ForceRedraw()
	}

	c.canvas.Resize(renderWidth, renderHeight)
	c.canvas.SetOffset(offsetCol, offsetRow)
	c.chunkWriter.SetOffset(offsetCol, offsetRow)
}

// clampTermSize clamps terminal dimensions to the max render resolution and computes
// the centering offset for the render area.
func clampTermSize(termWidth, termHeight int) (renderWidth, renderHeight, offsetCol, offsetRow int) {
	renderWidth = min(max(termWidth, 1), config.MaxTermWidth)
	renderHeight = min(max(termHeight, 1), config.MaxTermHeight)
	offsetCol = max(termWidth-renderWidth, 0) / 2
	offsetRow = max(termHeight-renderHeight, 0) / 2
	return
}
