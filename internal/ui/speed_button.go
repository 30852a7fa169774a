// internal/ui/speed_button.go
package ui

import (
	"image/color"
	"math"
	"time"

	"github.com/hajimehoshi/ebiten/v2"
	"github.com/hajimehoshi/ebiten/v2/vector"

	"path-tower-defense/internal/config"
)

// SpeedButton — двойной треугольник «перемотки», цвет зависит от множителя.
type SpeedButton struct {
	X, Y           float32
	Size           float32
	LastClickTime  time.Time
	LastToggleTime time.Time
	StateColors    []color.RGBA
	CurrentState   int
}

func NewSpeedButton(x, y, size float32, stateColors []color.RGBA) *SpeedButton {
	return &SpeedButton{
		X:           x,
		Y:           y,
		Size:        size,
		StateColors: stateColors,
	}
}

func (b *SpeedButton) Draw(screen *ebiten.Image) {
	elapsed := time.Since(b.LastClickTime).Seconds()
	scale := 1.0 + 0.3*math.Exp(-elapsed*8)
	triangleSize := b.Size * float32(scale)

	fill := b.StateColors[b.CurrentState%len(b.StateColors)]

	height := triangleSize * 1.2
	width := triangleSize
	offset := width * 0.8

	drawTriangle(screen, b.X-width, b.Y-height/2, b.X, b.Y, b.X-width, b.Y+height/2, fill)
	drawTriangle(screen, b.X-width+offset, b.Y-height/2, b.X+offset, b.Y, b.X-width+offset, b.Y+height/2, fill)
}

// IsClicked — форма сложная, попадание проверяем по кругу.
func (b *SpeedButton) IsClicked(x, y float32) bool {
	return insideCircle(x, y, b.X, b.Y, b.Size*1.5)
}

// SetState синхронизирует кнопку с множителем скорости игры.
func (b *SpeedButton) SetState(state int) {
	b.CurrentState = state
	b.LastClickTime = time.Now()
	b.LastToggleTime = time.Now()
}

// Ready reports whether the click cooldown has passed.
func (b *SpeedButton) Ready() bool {
	return time.Since(b.LastToggleTime) >= time.Duration(config.ClickCooldown)*time.Millisecond
}

func drawTriangle(screen *ebiten.Image, x1, y1, x2, y2, x3, y3 float32, fill color.Color) {
	var path vector.Path
	path.MoveTo(x1, y1)
	path.LineTo(x2, y2)
	path.LineTo(x3, y3)
	path.Close()

	vs, is := path.AppendVerticesAndIndicesForFilling(nil, nil)
	r, g, bl, a := fill.RGBA()
	for i := range vs {
		vs[i].SrcX, vs[i].SrcY = 1, 1
		vs[i].ColorR = float32(r) / 0xffff
		vs[i].ColorG = float32(g) / 0xffff
		vs[i].ColorB = float32(bl) / 0xffff
		vs[i].ColorA = float32(a) / 0xffff
	}
	screen.DrawTriangles(vs, is, whitePixel, &ebiten.DrawTrianglesOptions{AntiAlias: true})

	border := float32(config.UIBorderWidth)
	vector.StrokeLine(screen, x1, y1, x2, y2, border, config.UIBorderColor, true)
	vector.StrokeLine(screen, x2, y2, x3, y3, border, config.UIBorderColor, true)
	vector.StrokeLine(screen, x3, y3, x1, y1, border, config.UIBorderColor, true)
}

func insideCircle(x, y, cx, cy, r float32) bool {
	dx, dy := x-cx, y-cy
	return dx*dx+dy*dy <= r*r
}
