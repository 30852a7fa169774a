package render

import (
	"image/color"

	"github.com/hajimehoshi/ebiten/v2"
	"github.com/hajimehoshi/ebiten/v2/vector"

	"path-tower-defense/internal/component"
	"path-tower-defense/internal/config"
	"path-tower-defense/internal/interfaces"
	"path-tower-defense/internal/utils"
	"path-tower-defense/pkg/waypath"
)

// SceneRenderer рисует путь, башни, врагов и отладочные линии целей.
// Путь статичен, поэтому он рендерится один раз в pathImage.
type SceneRenderer struct {
	viewport  utils.Viewport
	colors    SceneColors
	pathImage *ebiten.Image

	// DebugLines включает радиусы башен и линии целей.
	DebugLines bool
}

func NewSceneRenderer(viewport utils.Viewport, colors SceneColors) *SceneRenderer {
	return &SceneRenderer{
		viewport:   viewport,
		colors:     colors,
		DebugLines: true,
	}
}

// RenderPathImage перерисовывает статичный слой. Вызывать при смене сессии.
func (r *SceneRenderer) RenderPathImage(path waypath.Path) {
	if r.pathImage == nil {
		r.pathImage = ebiten.NewImage(int(r.viewport.Width), int(r.viewport.Height))
	}
	r.pathImage.Clear()

	points := path.Points()
	for i := 1; i < len(points); i++ {
		x0, y0 := r.viewport.WorldToScreen(points[i-1].X, points[i-1].Y)
		x1, y1 := r.viewport.WorldToScreen(points[i].X, points[i].Y)
		vector.StrokeLine(r.pathImage, float32(x0), float32(y0), float32(x1), float32(y1), r.colors.StrokeWidth, r.colors.Path, true)
	}
	for _, p := range points {
		x, y := r.viewport.WorldToScreen(p.X, p.Y)
		vector.DrawFilledCircle(r.pathImage, float32(x), float32(y), 2, DarkenColor(r.colors.Path), true)
	}
	if len(points) > 0 {
		x, y := r.viewport.WorldToScreen(points[0].X, points[0].Y)
		vector.StrokeCircle(r.pathImage, float32(x), float32(y), 6, r.colors.StrokeWidth, r.colors.Spawner, true)
	}
}

// Draw draws one frame of g.
func (r *SceneRenderer) Draw(screen *ebiten.Image, g interfaces.Scene) {
	screen.Fill(r.colors.Background)
	if r.pathImage != nil {
		screen.DrawImage(r.pathImage, nil)
	}

	for _, t := range g.Towers() {
		x, y := r.viewport.WorldToScreen(t.X, t.Y)
		if r.DebugLines {
			vector.StrokeCircle(screen, float32(x), float32(y), float32(t.Range*r.scale()), 1, r.colors.TowerRange, true)
		}
		look := lookOr(t.Look, config.TowerRadius, r.colors.Tower)
		vector.DrawFilledCircle(screen, float32(x), float32(y), look.Radius, look.Color, true)
	}

	for _, e := range g.Enemies() {
		x, y := r.viewport.WorldToScreen(e.X, e.Y)
		look := lookOr(e.Look, config.EnemyRadius, r.colors.Enemy)
		radius := look.Radius * float32(e.Scale)
		if radius <= 0 {
			continue
		}
		vector.DrawFilledCircle(screen, float32(x), float32(y), radius, look.Color, true)
		if look.HasStroke {
			vector.StrokeCircle(screen, float32(x), float32(y), radius, r.colors.StrokeWidth, DarkenColor(look.Color), true)
		}

		dx, dy := utils.ScreenHeading(e.Rotation)
		tipX, tipY := float32(x+dx*float64(radius)*1.5), float32(y+dy*float64(radius)*1.5)
		vector.StrokeLine(screen, float32(x), float32(y), tipX, tipY, r.colors.StrokeWidth, DarkenColor(look.Color), true)
	}

	if r.DebugLines {
		for _, t := range g.Targets() {
			x0, y0 := r.viewport.WorldToScreen(t.FromX, t.FromY)
			x1, y1 := r.viewport.WorldToScreen(t.ToX, t.ToY)
			vector.StrokeLine(screen, float32(x0), float32(y0), float32(x1), float32(y1), 1, r.colors.TargetLine, true)
		}
	}
}

// lookOr fills in a missing Renderable with the scene defaults.
func lookOr(look component.Renderable, radius float32, clr color.RGBA) component.Renderable {
	if look.Radius <= 0 {
		look.Radius = radius
		look.Color = clr
	}
	return look
}

func (r *SceneRenderer) scale() float64 {
	if r.viewport.Scale == 0 {
		return 1
	}
	return r.viewport.Scale
}
