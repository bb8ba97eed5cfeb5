package main

import (
	"bytes"
	"fmt"
	"image/color"
	"math"
	"time"

	"github.com/hajimehoshi/ebiten/v2"
	"github.com/hajimehoshi/ebiten/v2/inpututil"
	"github.com/hajimehoshi/ebiten/v2/text/v2"
	"golang.org/x/image/font/gofont/gobold"

	"github.com/olivierh59500/contributors-showcase/internal/showcase"
	"github.com/olivierh59500/contributors-showcase/internal/sprite"
)

// Rendering constants
const (
	LabelFontSize = 60.0
	LabelMargin   = 16.0
)

var background = color.RGBA{R: 40, G: 40, B: 48, A: 255}

// Game adapts a showcase to Ebitengine
type Game struct {
	show   *showcase.Showcase
	sprite *ebiten.Image
	face   *text.GoTextFace

	Width, Height int // Window size from the last Layout call
	Paused        bool
	last          time.Time // Wall clock of the previous Update
}

// NewGame builds the sprite texture and label font for show
func NewGame(show *showcase.Showcase, width, height int, seed int64) (*Game, error) {
	src, err := text.NewGoTextFaceSource(bytes.NewReader(gobold.TTF))
	if err != nil {
		return nil, fmt.Errorf("failed to load label font: %w", err)
	}

	size := int(math.Ceil(show.Tuning().SpriteSize))
	return &Game{
		show:   show,
		sprite: ebiten.NewImageFromImage(sprite.New(size, seed)),
		face:   &text.GoTextFace{Source: src, Size: LabelFontSize},
		Width:  width,
		Height: height,
	}, nil
}

// Update is called each tick by Ebitengine
func (g *Game) Update() error {
	if inpututil.IsKeyJustPressed(ebiten.KeyEscape) {
		return ebiten.Termination
	}
	g.handleInput()

	// dt follows the wall clock, the first frame is empty
	now := time.Now()
	dt := 0.0
	if !g.last.IsZero() {
		dt = now.Sub(g.last).Seconds()
	}
	g.last = now

	if g.Paused {
		return nil
	}
	g.show.Tick(dt, g.bounds())
	return nil
}

// handleInput processes keyboard input
func (g *Game) handleInput() {
	if inpututil.IsKeyJustPressed(ebiten.KeySpace) {
		g.Paused = !g.Paused
	}
	if inpututil.IsKeyJustPressed(ebiten.KeyN) {
		g.show.Skip()
	}
}

func (g *Game) bounds() showcase.Bounds {
	return showcase.Bounds{Width: float64(g.Width), Height: float64(g.Height)}
}

// Draw is called each frame by Ebitengine
func (g *Game) Draw(screen *ebiten.Image) {
	screen.Fill(background)

	size := g.show.Tuning().SpriteSize
	scale := size / float64(g.sprite.Bounds().Dx())
	half := float64(g.sprite.Bounds().Dx()) / 2

	for _, id := range g.show.Store.DrawOrder() {
		b, ok := g.show.Store.Get(id)
		if !ok {
			continue
		}
		sx, sy := g.worldToScreen(b.Position.X, b.Position.Y)

		op := &ebiten.DrawImageOptions{}
		op.GeoM.Translate(-half, -half)
		if b.FlipX {
			op.GeoM.Scale(-scale, scale)
		} else {
			op.GeoM.Scale(scale, scale)
		}
		// world rotation is counter-clockwise with y up
		op.GeoM.Rotate(-b.Rotation)
		op.GeoM.Translate(sx, sy)
		op.ColorScale.ScaleWithColor(b.Color)
		op.Filter = ebiten.FilterLinear
		screen.DrawImage(g.sprite, op)
	}

	g.drawLabel(screen)
}

// drawLabel draws the prefix in white followed by the name in its body colour
func (g *Game) drawLabel(screen *ebiten.Image) {
	label := g.show.Label()

	op := &text.DrawOptions{}
	op.GeoM.Translate(LabelMargin, LabelMargin)
	op.ColorScale.ScaleWithColor(color.White)
	text.Draw(screen, label.Prefix, g.face, op)

	if label.Name == "" {
		return
	}
	op = &text.DrawOptions{}
	op.GeoM.Translate(LabelMargin+text.Advance(label.Prefix, g.face), LabelMargin)
	op.ColorScale.ScaleWithColor(label.Color)
	text.Draw(screen, label.Name, g.face, op)
}

// Layout tracks the window size so the walls follow resizes
func (g *Game) Layout(outsideWidth, outsideHeight int) (int, int) {
	g.Width, g.Height = outsideWidth, outsideHeight
	return outsideWidth, outsideHeight
}

// worldToScreen maps centred y-up world coordinates to pixels
func (g *Game) worldToScreen(wx, wy float64) (float64, float64) {
	return wx + float64(g.Width)/2, float64(g.Height)/2 - wy
}
