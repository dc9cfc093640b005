package ebitenhost

import (
	"fmt"
	"image/color"

	"github.com/hajimehoshi/ebiten/v2"
	"github.com/hajimehoshi/ebiten/v2/text/v2"
	"github.com/hajimehoshi/ebiten/v2/vector"
	"github.com/tomz197/shoot/internal/config"
	"github.com/tomz197/shoot/internal/loop"
	"github.com/tomz197/shoot/internal/object"
	"golang.org/x/image/font"
	"golang.org/x/image/font/gofont/goregular"
	"golang.org/x/image/font/opentype"
)

const (
	hudFontSize      = 25
	titleFontSize    = 40
	hintFontSize     = 14
	hudCenterY       = 40 + hudFontSize/2
	restartHint      = "Tap to play again"
	starPixelSize    = 2
	playerCockpitPad = 4
)

var (
	backgroundColor = color.Black
	playerColor     = color.RGBA{0x4f, 0xc3, 0xf7, 0xff}
	cockpitColor    = color.RGBA{0xe1, 0xf5, 0xfe, 0xff}
	enemyColor      = color.RGBA{0xef, 0x53, 0x50, 0xff}
	bulletColor     = color.RGBA{0xff, 0xee, 0x58, 0xff}
	textColor       = color.White
)

// frame is everything the renderer needs for one Draw call.
type frame struct {
	scene     loop.Scene
	session   *loop.Session
	scoreText string
	finalText string
	scaleX    float64
}

type renderer struct {
	hudFace   text.Face
	titleFace text.Face
	hintFace  text.Face
	offscreen *ebiten.Image
}

func newRenderer() (*renderer, error) {
	ft, err := opentype.Parse(goregular.TTF)
	if err != nil {
		return nil, fmt.Errorf("parse font: %w", err)
	}
	newFace := func(size float64) (text.Face, error) {
		f, err := opentype.NewFace(ft, &opentype.FaceOptions{
			Size:    size,
			DPI:     72,
			Hinting: font.HintingFull,
		})
		if err != nil {
			return nil, fmt.Errorf("font face %v: %w", size, err)
		}
		return text.NewGoXFace(f), nil
	}

	r := &renderer{}
	if r.hudFace, err = newFace(hudFontSize); err != nil {
		return nil, err
	}
	if r.titleFace, err = newFace(titleFontSize); err != nil {
		return nil, err
	}
	if r.hintFace, err = newFace(hintFontSize); err != nil {
		return nil, err
	}
	return r, nil
}

func (r *renderer) draw(screen *ebiten.Image, f frame) {
	screen.Fill(backgroundColor)
	if f.scaleX >= 1 {
		r.drawScene(screen, f)
		return
	}
	if f.scaleX <= 0 {
		return
	}

	if r.offscreen == nil {
		r.offscreen = ebiten.NewImage(config.ViewWidth, config.ViewHeight)
	}
	r.offscreen.Fill(backgroundColor)
	r.drawScene(r.offscreen, f)

	cx := float64(config.ViewWidth) / 2
	op := &ebiten.DrawImageOptions{}
	op.GeoM.Translate(-cx, 0)
	op.GeoM.Scale(f.scaleX, 1)
	op.GeoM.Translate(cx, 0)
	screen.DrawImage(r.offscreen, op)
}

func (r *renderer) drawScene(dst *ebiten.Image, f frame) {
	switch f.scene {
	case loop.SceneGame:
		r.drawStars(dst, f.session)
		r.drawEntities(dst, f.session)
		r.drawText(dst, f.scoreText, r.hudFace, float64(config.ViewWidth)/2, hudCenterY)
	case loop.SceneGameOver:
		cx, cy := float64(config.ViewWidth)/2, float64(config.ViewHeight)/2
		r.drawText(dst, "Game Over", r.titleFace, cx, cy)
		r.drawText(dst, f.finalText, r.hudFace, cx, cy+titleFontSize)
		r.drawText(dst, restartHint, r.hintFace, cx, cy+titleFontSize+hudFontSize+10)
	}
}

func (r *renderer) drawStars(dst *ebiten.Image, session *loop.Session) {
	for _, layer := range session.Stars().Layers {
		for _, s := range layer.Stars {
			x, y := toScreen(s.X, s.Y)
			vector.DrawFilledRect(dst, float32(x), float32(y), starPixelSize, starPixelSize, layer.Color, false)
		}
	}
}

func (r *renderer) drawEntities(dst *ebiten.Image, session *loop.Session) {
	for _, e := range session.Entities() {
		if e.IsDestroyed() {
			continue
		}
		x, y := toScreen(e.Pos.X, e.Pos.Y)
		left, top := float32(x-e.HW), float32(y-e.HH)
		w, h := float32(e.HW*2), float32(e.HH*2)

		switch e.Kind {
		case object.KindPlayer:
			vector.DrawFilledRect(dst, left, top, w, h, playerColor, true)
			vector.DrawFilledCircle(dst, float32(x+e.HW/2), float32(y), float32(e.HH)-playerCockpitPad, cockpitColor, true)
		case object.KindEnemy:
			vector.DrawFilledCircle(dst, float32(x), float32(y), float32(e.HH), enemyColor, true)
			vector.StrokeRect(dst, left, float32(y)-1, w, 2, 1, enemyColor, true)
		case object.KindBullet:
			vector.DrawFilledRect(dst, left, top, w, h, bulletColor, true)
		case object.KindWall:
		}
	}
}

// drawText draws s centered on (x, y).
func (r *renderer) drawText(dst *ebiten.Image, s string, face text.Face, x, y float64) {
	op := &text.DrawOptions{}
	op.GeoM.Translate(x, y)
	op.ColorScale.ScaleWithColor(textColor)
	op.PrimaryAlign = text.AlignCenter
	op.SecondaryAlign = text.AlignCenter
	text.Draw(dst, s, face, op)
}
