// internal/ui/pause_button.go
package ui

import (
	"image"
	"image/color"
	"math"
	"time"

	"github.com/hajimehoshi/ebiten/v2"
	"github.com/hajimehoshi/ebiten/v2/vector"

	"path-tower-defense/internal/config"
)

// whitePixel — источник текстуры для DrawTriangles. Берём центр 3x3, чтобы
// сглаживание не цепляло край.
var whitePixel = func() *ebiten.Image {
	img := ebiten.NewImage(3, 3)
	img.Fill(color.White)
	return img.SubImage(image.Rect(1, 1, 2, 2)).(*ebiten.Image)
}()

type PauseButton struct {
	X, Y           float32
	Size           float32
	LastClickTime  time.Time
	LastToggleTime time.Time
	IsPaused       bool
	PauseColor     color.Color
	PlayColor      color.Color
}

func NewPauseButton(x, y, size float32, pauseColor, playColor color.Color) *PauseButton {
	return &PauseButton{
		X:          x,
		Y:          y,
		Size:       size,
		PauseColor: pauseColor,
		PlayColor:  playColor,
	}
}

func (b *PauseButton) Draw(screen *ebiten.Image) {
	elapsed := time.Since(b.LastClickTime).Seconds()
	scale := 1.0 + 0.3*math.Exp(-elapsed*8)
	rectSize := b.Size * float32(scale)

	if b.IsPaused {
		// Треугольник (play)
		drawTriangle(screen,
			b.X-rectSize, b.Y-rectSize*1.2,
			b.X+rectSize, b.Y,
			b.X-rectSize, b.Y+rectSize*1.2,
			b.PlayColor)
		return
	}

	// Два прямоугольника (pause)
	width := rectSize * 0.6
	height := rectSize * 2.0
	spacing := rectSize * 0.4
	border := float32(config.UIBorderWidth)
	for _, x := range []float32{b.X - width - spacing/2, b.X + spacing/2} {
		vector.DrawFilledRect(screen, x, b.Y-height/2, width, height, b.PauseColor, true)
		vector.StrokeRect(screen, x, b.Y-height/2, width, height, border, config.UIBorderColor, true)
	}
}

func (b *PauseButton) IsClicked(x, y float32) bool {
	return insideCircle(x, y, b.X, b.Y, b.Size*1.5)
}

func (b *PauseButton) SetPaused(paused bool) {
	if b.IsPaused != paused {
		b.LastClickTime = time.Now()
		b.LastToggleTime = time.Now()
	}
	b.IsPaused = paused
}

// Ready reports whether the click cooldown has passed.
func (b *PauseButton) Ready() bool {
	return time.Since(b.LastToggleTime) >= time.Duration(config.ClickCooldown)*time.Millisecond
}
