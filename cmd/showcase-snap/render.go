package main

import (
	"fmt"
	"image"
	"image/color"

	"github.com/fogleman/gg"
	"github.com/golang/freetype/truetype"
	"golang.org/x/image/font"
	"golang.org/x/image/font/gofont/gobold"

	"github.com/olivierh59500/contributors-showcase/internal/showcase"
	"github.com/olivierh59500/contributors-showcase/internal/sprite"
)

const (
	labelFontSize = 32
	labelMargin   = 12
)

var background = color.RGBA{R: 40, G: 40, B: 48, A: 255}

// renderer draws showcase frames into an offscreen gg context.
type renderer struct {
	dc     *gg.Context
	base   *image.NRGBA
	tinted map[color.NRGBA]*image.NRGBA
	face   font.Face
}

func newRenderer(width, height, spriteSize int, seed int64) (*renderer, error) {
	f, err := truetype.Parse(gobold.TTF)
	if err != nil {
		return nil, fmt.Errorf("failed to parse label font: %w", err)
	}
	return &renderer{
		dc:     gg.NewContext(width, height),
		base:   sprite.New(spriteSize, seed),
		tinted: make(map[color.NRGBA]*image.NRGBA),
		face:   truetype.NewFace(f, &truetype.Options{Size: labelFontSize}),
	}, nil
}

// spriteFor caches one tinted texture per colour. There are at most two
// colours per body.
func (r *renderer) spriteFor(c showcase.HSLA) *image.NRGBA {
	key := c.NRGBA()
	img, ok := r.tinted[key]
	if !ok {
		img = sprite.Tint(r.base, key)
		r.tinted[key] = img
	}
	return img
}

func (r *renderer) render(show *showcase.Showcase) *gg.Context {
	dc := r.dc
	w, h := float64(dc.Width()), float64(dc.Height())
	dc.SetColor(background)
	dc.Clear()

	scale := show.Tuning().SpriteSize / float64(r.base.Bounds().Dx())
	for _, id := range show.Store.DrawOrder() {
		b, ok := show.Store.Get(id)
		if !ok {
			continue
		}
		sx, sy := b.Position.X+w/2, h/2-b.Position.Y

		dc.Push()
		dc.Translate(sx, sy)
		dc.Rotate(-b.Rotation)
		if b.FlipX {
			dc.Scale(-scale, scale)
		} else {
			dc.Scale(scale, scale)
		}
		dc.DrawImageAnchored(r.spriteFor(b.Color), 0, 0, 0.5, 0.5)
		dc.Pop()
	}

	label := show.Label()
	dc.SetFontFace(r.face)
	dc.SetColor(color.White)
	dc.DrawStringAnchored(label.Prefix, labelMargin, labelMargin, 0, 1)
	if label.Name != "" {
		pw, _ := dc.MeasureString(label.Prefix)
		dc.SetColor(label.Color)
		dc.DrawStringAnchored(label.Name, labelMargin+pw, labelMargin, 0, 1)
	}
	return dc
}
