package quickmath

import "fmt"

// Rectangle is an integer rectangle, X/Y is the top-left corner.
// Right and Bottom are exclusive.
type Rectangle struct {
	X, Y          int32
	Width, Height int32
}

var RectangleEmpty = Rectangle{}

func NewRectangle(x, y, width, height int32) Rectangle {
	return Rectangle{X: x, Y: y, Width: width, Height: height}
}

func RectangleFromPoints(location, size Point) Rectangle {
	return Rectangle{X: location.X, Y: location.Y, Width: size.X, Height: size.Y}
}

// RectangleFromVectors truncates location and size toward zero.
func RectangleFromVectors(location, size Vector2) Rectangle {
	return Rectangle{
		X:      int32(location.X),
		Y:      int32(location.Y),
		Width:  int32(size.X),
		Height: int32(size.Y),
	}
}

func (r Rectangle) Left() int32   { return r.X }
func (r Rectangle) Right() int32  { return r.X + r.Width }
func (r Rectangle) Top() int32    { return r.Y }
func (r Rectangle) Bottom() int32 { return r.Y + r.Height }

func (r Rectangle) Location() Point {
	return Point{X: r.X, Y: r.Y}
}

func (r Rectangle) Size() Point {
	return Point{X: r.Width, Y: r.Height}
}

func (r Rectangle) Center() Point {
	return Point{X: r.X + r.Width/2, Y: r.Y + r.Height/2}
}

// IsEmpty reports whether every field is zero.
func (r Rectangle) IsEmpty() bool {
	return r == RectangleEmpty
}

func (r Rectangle) Contains(x, y int32) bool {
	return r.X <= x && x < r.X+r.Width &&
		r.Y <= y && y < r.Y+r.Height
}

func (r Rectangle) ContainsPoint(p Point) bool {
	return r.Contains(p.X, p.Y)
}

// ContainsVector2 truncates v toward zero before testing.
func (r Rectangle) ContainsVector2(v Vector2) bool {
	return r.ContainsPoint(PointFromVector2(v))
}

func (r Rectangle) ContainsRectangle(other Rectangle) bool {
	return r.X <= other.X && other.X+other.Width <= r.X+r.Width &&
		r.Y <= other.Y && other.Y+other.Height <= r.Y+r.Height
}

// Intersects is strict, rectangles sharing only an edge do not intersect.
func (r Rectangle) Intersects(other Rectangle) bool {
	return other.Left() < r.Right() && r.Left() < other.Right() &&
		other.Top() < r.Bottom() && r.Top() < other.Bottom()
}

// Intersect returns the overlapping area, or an all-zero rectangle.
func (r Rectangle) Intersect(other Rectangle) Rectangle {
	if !r.Intersects(other) {
		return Rectangle{}
	}

	right := MinInt(r.Right(), other.Right())
	left := MaxInt(r.X, other.X)
	top := MaxInt(r.Y, other.Y)
	bottom := MinInt(r.Bottom(), other.Bottom())

	return Rectangle{X: left, Y: top, Width: right - left, Height: bottom - top}
}

func (r Rectangle) Union(other Rectangle) Rectangle {
	x := MinInt(r.X, other.X)
	y := MinInt(r.Y, other.Y)
	return Rectangle{
		X:      x,
		Y:      y,
		Width:  MaxInt(r.Right(), other.Right()) - x,
		Height: MaxInt(r.Bottom(), other.Bottom()) - y,
	}
}

// Inflate grows r by horizontal on the left and right and by vertical on
// the top and bottom.
func (r *Rectangle) Inflate(horizontal, vertical int32) {
	r.X -= horizontal
	r.Y -= vertical
	r.Width += horizontal * 2
	r.Height += vertical * 2
}

func (r *Rectangle) Offset(x, y int32) {
	r.X += x
	r.Y += y
}

func (r *Rectangle) OffsetPoint(p Point) {
	r.Offset(p.X, p.Y)
}

// OffsetVector2 truncates v toward zero.
func (r *Rectangle) OffsetVector2(v Vector2) {
	r.OffsetPoint(PointFromVector2(v))
}

func (r Rectangle) Deconstruct() (int32, int32, int32, int32) {
	return r.X, r.Y, r.Width, r.Height
}

func (r Rectangle) Equals(other Rectangle) bool {
	return r == other
}

func (r Rectangle) String() string {
	return fmt.Sprintf("{X:%d Y:%d Width:%d Height:%d}", r.X, r.Y, r.Width, r.Height)
}
