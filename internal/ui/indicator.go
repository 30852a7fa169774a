// internal/ui/indicator.go
package ui

import (
	"image/color"
	"strconv"

	"github.com/hajimehoshi/ebiten/v2"
	"github.com/hajimehoshi/ebiten/v2/text"
	"golang.org/x/image/font"
	"golang.org/x/image/font/basicfont"
)

// ResourceIndicator рисует счётчик ресурсов по центру сверху.
type ResourceIndicator struct {
	CenterX, Y int
	Color      color.Color
	face       font.Face
	last       int
	label      string
}

func NewResourceIndicator(centerX, y int, clr color.Color) *ResourceIndicator {
	return &ResourceIndicator{
		CenterX: centerX,
		Y:       y,
		Color:   clr,
		face:    basicfont.Face7x13,
		last:    -1,
	}
}

// Draw draws value; the label string is rebuilt only when the value changes.
func (i *ResourceIndicator) Draw(screen *ebiten.Image, value int) {
	if value != i.last || i.label == "" {
		i.label = strconv.Itoa(value)
		i.last = value
	}
	bounds := text.BoundString(i.face, i.label)
	x := i.CenterX - bounds.Dx()/2
	text.Draw(screen, i.label, i.face, x, i.Y, i.Color)
}

// DrawLines draws a block of text lines starting at (x, y).
func (i *ResourceIndicator) DrawLines(screen *ebiten.Image, x, y int, lines ...string) {
	lineHeight := i.face.Metrics().Height.Ceil()
	for n, line := range lines {
		text.Draw(screen, line, i.face, x, y+n*lineHeight, i.Color)
	}
}
