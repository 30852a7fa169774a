// component/movement.go
package component

// Position — позиция в мировых координатах (начало в центре поля, Y вверх).
type Position struct {
	X, Y float64
}

// Velocity — скорость движения по пути, единиц в секунду.
type Velocity struct {
	Speed float64
}

// Rotation is the facing angle in radians, counter-clockwise from +Y.
type Rotation struct {
	Angle float64
}

// PathMover — индекс путевой точки, к которой сейчас идёт враг.
// Только растёт; значение, равное длине пути, означает «дошёл до цели».
type PathMover struct {
	Index int
}
