package quickmath

import "fmt"

type Point struct {
	X, Y int32
}

var PointZero = Point{}

func NewPoint(x, y int32) Point {
	return Point{X: x, Y: y}
}

// PointFromVector2 truncates both components toward zero.
func PointFromVector2(v Vector2) Point {
	return Point{X: int32(v.X), Y: int32(v.Y)}
}

func (p Point) Add(other Point) Point {
	return Point{X: p.X + other.X, Y: p.Y + other.Y}
}

func (p Point) Sub(other Point) Point {
	return Point{X: p.X - other.X, Y: p.Y - other.Y}
}

func (p Point) Mul(other Point) Point {
	return Point{X: p.X * other.X, Y: p.Y * other.Y}
}

func (p Point) Scale(v int32) Point {
	return Point{X: p.X * v, Y: p.Y * v}
}

// Div is integer division per component, a zero divisor gives 0.
func (p Point) Div(other Point) Point {
	var out Point
	if other.X != 0 {
		out.X = p.X / other.X
	}
	if other.Y != 0 {
		out.Y = p.Y / other.Y
	}
	return out
}

func (p Point) DivScalar(v int32) Point {
	if v == 0 {
		return Point{}
	}
	return Point{X: p.X / v, Y: p.Y / v}
}

func (p Point) Negate() Point {
	return Point{X: -p.X, Y: -p.Y}
}

func (p Point) ToVector2() Vector2 {
	return Vector2{X: float64(p.X), Y: float64(p.Y)}
}

func (p Point) Deconstruct() (int32, int32) {
	return p.X, p.Y
}

func (p Point) Equals(other Point) bool {
	return p.X == other.X && p.Y == other.Y
}

func (p Point) String() string {
	return fmt.Sprintf("{X:%d Y:%d}", p.X, p.Y)
}
