package main

import (
	"math"

	"github.com/gdamore/tcell/v2"

	"github.com/olivierh59500/contributors-showcase/internal/showcase"
)

// World units covered by one terminal cell. Cells are about twice as tall
// as they are wide.
const (
	cellWidth  = 10.0
	cellHeight = 20.0
)

// viewport returns the world bounds of a cols x rows terminal, keeping the
// last row for the label.
func viewport(cols, rows int) showcase.Bounds {
	if rows > 1 {
		rows--
	}
	return showcase.Bounds{Width: float64(cols) * cellWidth, Height: float64(rows) * cellHeight}
}

// cellRect returns the inclusive cell span covered by a body's box.
func cellRect(b *showcase.Body, size float64, bounds showcase.Bounds) (x0, y0, x1, y1 int) {
	half := bounds.Half()
	ext := size / 2
	left := b.Position.X - ext + half.X
	right := b.Position.X + ext + half.X
	top := half.Y - (b.Position.Y + ext)
	bottom := half.Y - (b.Position.Y - ext)

	x0 = int(math.Floor(left / cellWidth))
	x1 = int(math.Ceil(right/cellWidth)) - 1
	y0 = int(math.Floor(top / cellHeight))
	y1 = int(math.Ceil(bottom/cellHeight)) - 1
	return x0, y0, x1, y1
}

func toTcell(c showcase.HSLA) tcell.Color {
	n := c.NRGBA()
	return tcell.NewRGBColor(int32(n.R), int32(n.G), int32(n.B))
}

// draw renders bodies in depth order and the label on the bottom row.
func draw(screen tcell.Screen, show *showcase.Showcase) {
	screen.Clear()
	cols, rows := screen.Size()
	bounds := viewport(cols, rows)
	size := show.Tuning().SpriteSize
	fieldRows := int(bounds.Height / cellHeight)

	for _, id := range show.Store.DrawOrder() {
		b, ok := show.Store.Get(id)
		if !ok {
			continue
		}
		style := tcell.StyleDefault.Foreground(toTcell(b.Color))
		x0, y0, x1, y1 := cellRect(b, size, bounds)
		for y := max(y0, 0); y <= min(y1, fieldRows-1); y++ {
			for x := max(x0, 0); x <= min(x1, cols-1); x++ {
				screen.SetContent(x, y, '█', nil, style)
			}
		}
	}

	label := show.Label()
	x := drawString(screen, 0, rows-1, label.Prefix, tcell.StyleDefault.Foreground(tcell.ColorWhite))
	drawString(screen, x, rows-1, label.Name, tcell.StyleDefault.Foreground(toTcell(label.Color)).Bold(true))

	screen.Show()
}

// drawString writes s from column x and returns the column after it.
func drawString(screen tcell.Screen, x, y int, s string, style tcell.Style) int {
	for _, r := range s {
		screen.SetContent(x, y, r, nil, style)
		x++
	}
	return x
}
