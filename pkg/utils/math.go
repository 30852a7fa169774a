// pkg/utils/math.go
package utils

import "math"

// Vec2 is a point or direction on the playfield. +Y points up.
type Vec2 struct {
	X, Y float64
}

func (v Vec2) Add(o Vec2) Vec2 { return Vec2{v.X + o.X, v.Y + o.Y} }

func (v Vec2) Sub(o Vec2) Vec2 { return Vec2{v.X - o.X, v.Y - o.Y} }

func (v Vec2) Scale(s float64) Vec2 { return Vec2{v.X * s, v.Y * s} }

func (v Vec2) Length() float64 { return math.Hypot(v.X, v.Y) }

// Distance returns the Euclidean distance between v and o.
func (v Vec2) Distance(o Vec2) float64 { return v.Sub(o).Length() }

// NormalizeOrZero returns the unit vector along v, or the zero vector when v
// has no usable length (zero, NaN or infinite).
func (v Vec2) NormalizeOrZero() Vec2 {
	l := v.Length()
	if l == 0 || math.IsNaN(l) || math.IsInf(l, 0) {
		return Vec2{}
	}
	return Vec2{v.X / l, v.Y / l}
}

// AngleFromUp returns the counter-clockwise angle in radians that rotates the
// +Y axis onto v. The zero vector yields 0.
func (v Vec2) AngleFromUp() float64 {
	return math.Atan2(-v.X, v.Y)
}

// FromAngle returns the unit vector at angle radians from +X.
func FromAngle(angle float64) Vec2 {
	return Vec2{math.Cos(angle), math.Sin(angle)}
}

// IsFinite reports whether both components are real numbers.
func (v Vec2) IsFinite() bool {
	return !math.IsNaN(v.X) && !math.IsNaN(v.Y) && !math.IsInf(v.X, 0) && !math.IsInf(v.Y, 0)
}
