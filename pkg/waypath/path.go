// Package waypath builds the fixed waypoint path enemies walk along.
//
// The shape comes from two independent fractal noise fields, one per axis,
// sampled at evenly spaced parameters and then stretched so the path fills the
// configured half-extents. Seeding both fields with the same values reproduces
// the same path.
package waypath

import (
	"math"

	"github.com/aquilax/go-perlin"

	"path-tower-defense/internal/config"
	"path-tower-defense/pkg/utils"
)

// NoiseField is a continuous 2D noise function.
type NoiseField interface {
	Noise2D(x, y float64) float64
}

// Path is an ordered, read-only sequence of waypoints.
type Path struct {
	points []utils.Vec2
}

// New copies points into a Path.
func New(points []utils.Vec2) Path {
	return Path{points: append([]utils.Vec2(nil), points...)}
}

func (p Path) Len() int { return len(p.points) }

// At returns waypoint i. Callers check i < Len() first.
func (p Path) At(i int) utils.Vec2 { return p.points[i] }

// First returns the first waypoint, or the origin for an empty path.
func (p Path) First() utils.Vec2 {
	if len(p.points) == 0 {
		return utils.Vec2{}
	}
	return p.points[0]
}

// Points returns a copy of the waypoints.
func (p Path) Points() []utils.Vec2 {
	return append([]utils.Vec2(nil), p.points...)
}

// NewFields returns the X and Y fBm fields for cfg.
func NewFields(cfg config.PathConfig, seedX, seedY int64) (NoiseField, NoiseField) {
	fx := perlin.NewPerlin(cfg.Alpha, cfg.Beta, cfg.Octaves, seedX)
	fy := perlin.NewPerlin(cfg.Alpha, cfg.Beta, cfg.Octaves, seedY)
	return fx, fy
}

// Generate samples fieldX and fieldY at cfg.Length parameters and rescales the
// result into [-HalfWidth, HalfWidth] x [-HalfHeight, HalfHeight].
func Generate(cfg config.PathConfig, fieldX, fieldY NoiseField) Path {
	if cfg.Length <= 0 {
		return Path{}
	}

	points := make([]utils.Vec2, cfg.Length)
	var maxX, maxY float64
	for i := range points {
		t := cfg.SampleOffset + float64(i)*cfg.Step
		x := fieldX.Noise2D(t, cfg.SampleRow)
		y := fieldY.Noise2D(t, cfg.SampleRow)
		points[i] = utils.Vec2{X: x, Y: y}
		maxX = math.Max(maxX, math.Abs(x))
		maxY = math.Max(maxY, math.Abs(y))
	}

	// Ось с нулевой амплитудой уже помещается в границы.
	sx, sy := 1.0, 1.0
	if maxX > 0 {
		sx = cfg.HalfWidth / maxX
	}
	if maxY > 0 {
		sy = cfg.HalfHeight / maxY
	}
	for i := range points {
		points[i].X *= sx
		points[i].Y *= sy
	}

	return Path{points: points}
}
