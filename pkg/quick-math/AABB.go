package quickmath

// AABB is a float axis aligned box. Max is exclusive for Intersect.
type AABB struct {
	Min, Max Vector2
}

func AABBFromRectangle(r Rectangle) AABB {
	return AABB{
		Min: Vector2{X: float64(r.Left()), Y: float64(r.Top())},
		Max: Vector2{X: float64(r.Right()), Y: float64(r.Bottom())},
	}
}

func (a AABB) Intersect(b AABB) bool {
	return a.Min.X < b.Max.X && a.Max.X > b.Min.X &&
		a.Min.Y < b.Max.Y && a.Max.Y > b.Min.Y
}

func (a AABB) Contains(v Vector2) bool {
	return a.Min.X <= v.X && v.X < a.Max.X &&
		a.Min.Y <= v.Y && v.Y < a.Max.Y
}

func (a AABB) Corners() [4]Vector2 {
	return [4]Vector2{
		a.Min,
		{X: a.Max.X, Y: a.Min.Y},
		a.Max,
		{X: a.Min.X, Y: a.Max.Y},
	}
}

// Transform moves the four corners through m and returns the box bounding
// them.
func (a AABB) Transform(m Matrix) AABB {
	corners := a.Corners()
	// corners and the destination are the same array, the batch layer reads
	// each element before writing it
	_ = TransformVector2Slice(corners[:], m, corners[:])

	out := AABB{Min: corners[0], Max: corners[0]}
	for _, c := range corners[1:] {
		out.Min = out.Min.Min(c)
		out.Max = out.Max.Max(c)
	}
	return out
}

// ToRectangle truncates the bounds toward zero.
func (a AABB) ToRectangle() Rectangle {
	return RectangleFromVectors(a.Min, a.Max.Sub(a.Min))
}
