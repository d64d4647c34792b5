package geom

import "golang.org/x/exp/constraints"

// Number is the set of element types a Vec can hold.
type Number interface {
	constraints.Integer | constraints.Float
}

// Vec is a 2D vector used both for grid coordinates (Vec[int]) and for
// pixel-space anchors (Vec[float64]).
type Vec[T Number] struct {
	X, Y T
}

// V is shorthand for Vec[T]{X: x, Y: y}.
func V[T Number](x, y T) Vec[T] { return Vec[T]{X: x, Y: y} }

// Add returns v + o.
func (v Vec[T]) Add(o Vec[T]) Vec[T] { return Vec[T]{X: v.X + o.X, Y: v.Y + o.Y} }

// Sub returns v - o.
func (v Vec[T]) Sub(o Vec[T]) Vec[T] { return Vec[T]{X: v.X - o.X, Y: v.Y - o.Y} }

// Scale multiplies both components by c.
func (v Vec[T]) Scale(c T) Vec[T] { return Vec[T]{X: v.X * c, Y: v.Y * c} }

// ToFloat converts the vector to float64 components.
func ToFloat[T Number](v Vec[T]) Vec[float64] {
	return Vec[float64]{X: float64(v.X), Y: float64(v.Y)}
}
