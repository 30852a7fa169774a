// component/render.go
package component

import "image/color"

// Renderable — компонент для отрисовки. Радиус умножается на Scale, если он есть.
type Renderable struct {
	Color     color.RGBA
	Radius    float32
	HasStroke bool
}
