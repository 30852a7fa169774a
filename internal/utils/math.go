// internal/utils/math.go
package utils

import "math"

// Viewport переводит мировые координаты (центр поля в 0,0, ось Y вверх) в
// экранные (0,0 в левом верхнем углу, Y вниз) и обратно.
type Viewport struct {
	Width, Height float64
	// Scale — пикселей на единицу мира. 0 означает 1.
	Scale float64
}

func (v Viewport) scale() float64 {
	if v.Scale == 0 {
		return 1
	}
	return v.Scale
}

// WorldToScreen returns the screen position of a world point.
func (v Viewport) WorldToScreen(x, y float64) (float64, float64) {
	s := v.scale()
	return v.Width/2 + x*s, v.Height/2 - y*s
}

// ScreenToWorld is the inverse of WorldToScreen.
func (v Viewport) ScreenToWorld(sx, sy float64) (float64, float64) {
	s := v.scale()
	return (sx - v.Width/2) / s, (v.Height/2 - sy) / s
}

// ScreenHeading возвращает единичный вектор взгляда в экранных координатах
// для угла поворота, отсчитанного от +Y мира против часовой стрелки.
func ScreenHeading(angle float64) (float64, float64) {
	return -math.Sin(angle), -math.Cos(angle)
}

// NormalizeAngle нормализует угол в диапазон [-π, π]
func NormalizeAngle(angle float64) float64 {
	if math.IsNaN(angle) || math.IsInf(angle, 0) {
		return 0
	}
	angle = math.Mod(angle, 2*math.Pi)
	if angle > math.Pi {
		angle -= 2 * math.Pi
	} else if angle < -math.Pi {
		angle += 2 * math.Pi
	}
	return angle
}

// HeadingGlyph picks one of eight arrows for a rotation, for text frontends.
func HeadingGlyph(angle float64) rune {
	arrows := []rune{'↑', '↖', '←', '↙', '↓', '↘', '→', '↗'}
	a := NormalizeAngle(angle)
	if a < 0 {
		a += 2 * math.Pi
	}
	sector := int(math.Round(a/(math.Pi/4))) % len(arrows)
	return arrows[sector]
}
