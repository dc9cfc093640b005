package client

import (
	"fmt"
	"strings"
	"time"

	"github.com/tomz197/shoot/internal/config"
	"github.com/tomz197/shoot/internal/draw"
	"github.com/tomz197/shoot/internal/loop"
	"github.com/tomz197/shoot/internal/object"
)

// drawFrame draws the current frame.
func (c *Client) drawFrame() error {
	// On scene changes, do a full terminal clear so text from the previous
	// scene does not persist on screen.
	if c.state.Scene != c.state.prevScene {
		c.chunkWriter.ClearScreen()
		c.canvas.ForceRedraw()
		c.state.prevScene = c.state.Scene
	}

	c.canvas.Clear()
	scale := c.state.flipScale()
	session := c.game.Session()

	if c.state.Scene == loop.SceneGame {
		c.drawStars(session, scale)
		c.drawEntities(session, scale)
	}

	c.canvas.Render(c.chunkWriter)
	c.canvas.RenderBorder(c.chunkWriter)

	// Text is hidden while the flip is near its midpoint.
	if scale > 0.3 {
		c.drawUI(session)
	}

	return c.chunkWriter.Flush()
}

// toCanvas converts y-up game coordinates to the canvas, squeezing x
// toward the center by scale for the flip transition.
func toCanvas(x, y, scale float64) (float64, float64) {
	cx := float64(config.ViewWidth) / 2
	return cx + (x-cx)*scale, float64(config.ViewHeight) - y
}

func (c *Client) drawStars(session *loop.Session, scale float64) {
	for _, layer := range session.Stars().Layers {
		ink := draw.InkRGB(layer.Color)
		for _, s := range layer.Stars {
			x, y := toCanvas(s.X, s.Y, scale)
			c.canvas.SetFloat(x, y, ink)
		}
	}
}

func (c *Client) drawEntities(session *loop.Session, scale float64) {
	for _, e := range session.Entities() {
		if e.IsDestroyed() {
			continue
		}
		x, y := toCanvas(e.Pos.X, e.Pos.Y, scale)
		hw := e.HW * scale
		switch e.Kind {
		case object.KindPlayer:
			c.canvas.DrawPolygon(c.shipPoints(x, y, hw, e.HH), draw.InkCyan, true)
		case object.KindEnemy:
			c.canvas.DrawPolygon(draw.RectPoints(c.canvas.BorrowPoints(4), x, y, hw, e.HH), draw.InkRed, false)
		case object.KindBullet:
			c.canvas.DrawLine(draw.Point{X: x - hw, Y: y}, draw.Point{X: x + hw, Y: y}, draw.InkYellow)
		case object.KindWall:
		}
	}
}

// shipPoints returns a right-facing triangle inside the player's bounds.
func (c *Client) shipPoints(x, y, hw, hh float64) []draw.Point {
	pts := c.canvas.BorrowPoints(3)
	pts[0] = draw.Point{X: x + hw, Y: y}
	pts[1] = draw.Point{X: x - hw, Y: y - hh}
	pts[2] = draw.Point{X: x - hw, Y: y + hh}
	return pts
}

// drawUI draws the text overlay for the current scene.
func (c *Client) drawUI(session *loop.Session) {
	termWidth := c.canvas.TerminalWidth()
	termHeight := c.canvas.TerminalHeight()
	centerX := termWidth / 2
	centerY := termHeight / 2

	switch c.state.Scene {
	case loop.SceneGame:
		c.drawPlayingHUD(centerX)
	case loop.SceneGameOver:
		c.drawGameOverScreen(centerX, centerY, session.Score())
	}
}

// drawPlayingHUD draws the score at the top center. The text is padded so a
// shorter value does not leave residual characters.
func (c *Client) drawPlayingHUD(centerX int) {
	text := fmt.Sprintf("%-12s", c.state.ScoreText)
	col := centerX - len(c.state.ScoreText)/2
	c.chunkWriter.WriteAt(col, 1, text)
	c.canvas.MarkTextDirty(col, 1, len(text))
}

var gameOverArt = []string{
	`   ___   _   __  __ ___    _____   _____ ___  `,
	`  / __| /_\ |  \/  | __|  / _ \ \ / / __| _ \ `,
	` | (_ |/ _ \| |\/| | _|  | (_) \ V /| _||   / `,
	`  \___/_/ \_\_|  |_|___|  \___/ \_/ |___|_|_\ `,
}

// drawGameOverScreen draws the game over title and restart prompt.
func (c *Client) drawGameOverScreen(centerX, centerY, score int) {
	cw := c.chunkWriter
	top := centerY - 4
	if c.canvas.TerminalWidth() > len(gameOverArt[0]) {
		for i, line := range gameOverArt {
			cw.WriteCentered(centerX, top+i, line)
		}
	} else {
		cw.WriteCentered(centerX, top+1, "Game Over")
	}

	cw.WriteCentered(centerX, top+len(gameOverArt)+1, fmt.Sprintf("Score: %d", score))

	prompt := ">>  Press SPACE to play again  <<"
	promptRow := top + len(gameOverArt) + 3
	if time.Now().UnixMilli()/600%2 == 0 {
		cw.WriteCentered(centerX, promptRow, prompt)
	} else {
		cw.WriteCentered(centerX, promptRow, strings.Repeat(" ", len(prompt)))
	}
	cw.WriteCentered(centerX, promptRow+2, "Q to quit")
}
