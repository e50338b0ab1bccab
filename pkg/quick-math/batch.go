package quickmath

import (
	"errors"
	"fmt"
)

// ErrRangeOutOfBounds is returned by the batch transforms when the requested
// range does not fit in the source or destination slice.
var ErrRangeOutOfBounds = errors.New("range out of bounds")

// transformRange applies fn to src[srcIndex:srcIndex+length] and stores the
// results at dst[dstIndex:]. Both ranges are validated before anything is
// written. src and dst may be the same slice: every element is read before
// its slot is written and no element depends on another.
func transformRange[T any](src []T, srcIndex int, dst []T, dstIndex, length int, fn func(T) T) error {
	if srcIndex < 0 || dstIndex < 0 || length < 0 {
		return fmt.Errorf("srcIndex=%d dstIndex=%d length=%d: %w", srcIndex, dstIndex, length, ErrRangeOutOfBounds)
	}
	if len(src)-srcIndex < length {
		return fmt.Errorf("source has %d elements, need %d from index %d: %w", len(src), length, srcIndex, ErrRangeOutOfBounds)
	}
	if len(dst)-dstIndex < length {
		return fmt.Errorf("destination has %d elements, need %d from index %d: %w", len(dst), length, dstIndex, ErrRangeOutOfBounds)
	}

	for i := 0; i < length; i++ {
		dst[dstIndex+i] = fn(src[srcIndex+i])
	}

	return nil
}

func TransformVector2Range(src []Vector2, srcIndex int, m Matrix, dst []Vector2, dstIndex, length int) error {
	return transformRange(src, srcIndex, dst, dstIndex, length, func(v Vector2) Vector2 {
		return v.Transform(m)
	})
}

func TransformVector2Slice(src []Vector2, m Matrix, dst []Vector2) error {
	return TransformVector2Range(src, 0, m, dst, 0, len(src))
}

func TransformVector2RangeQuaternion(src []Vector2, srcIndex int, q Quaternion, dst []Vector2, dstIndex, length int) error {
	return transformRange(src, srcIndex, dst, dstIndex, length, func(v Vector2) Vector2 {
		return v.TransformQuaternion(q)
	})
}

func TransformVector2SliceQuaternion(src []Vector2, q Quaternion, dst []Vector2) error {
	return TransformVector2RangeQuaternion(src, 0, q, dst, 0, len(src))
}

func TransformNormalVector2Range(src []Vector2, srcIndex int, m Matrix, dst []Vector2, dstIndex, length int) error {
	return transformRange(src, srcIndex, dst, dstIndex, length, func(v Vector2) Vector2 {
		return v.TransformNormal(m)
	})
}

func TransformNormalVector2Slice(src []Vector2, m Matrix, dst []Vector2) error {
	return TransformNormalVector2Range(src, 0, m, dst, 0, len(src))
}

func TransformVector3Range(src []Vector3, srcIndex int, m Matrix, dst []Vector3, dstIndex, length int) error {
	return transformRange(src, srcIndex, dst, dstIndex, length, func(v Vector3) Vector3 {
		return v.Transform(m)
	})
}

func TransformVector3Slice(src []Vector3, m Matrix, dst []Vector3) error {
	return TransformVector3Range(src, 0, m, dst, 0, len(src))
}

func TransformVector3RangeQuaternion(src []Vector3, srcIndex int, q Quaternion, dst []Vector3, dstIndex, length int) error {
	return transformRange(src, srcIndex, dst, dstIndex, length, func(v Vector3) Vector3 {
		return v.TransformQuaternion(q)
	})
}

func TransformVector3SliceQuaternion(src []Vector3, q Quaternion, dst []Vector3) error {
	return TransformVector3RangeQuaternion(src, 0, q, dst, 0, len(src))
}

func TransformNormalVector3Range(src []Vector3, srcIndex int, m Matrix, dst []Vector3, dstIndex, length int) error {
	return transformRange(src, srcIndex, dst, dstIndex, length, func(v Vector3) Vector3 {
		return v.TransformNormal(m)
	})
}

func TransformNormalVector3Slice(src []Vector3, m Matrix, dst []Vector3) error {
	return TransformNormalVector3Range(src, 0, m, dst, 0, len(src))
}

func TransformVector4Range(src []Vector4, srcIndex int, m Matrix, dst []Vector4, dstIndex, length int) error {
	return transformRange(src, srcIndex, dst, dstIndex, length, func(v Vector4) Vector4 {
		return v.Transform(m)
	})
}

func TransformVector4Slice(src []Vector4, m Matrix, dst []Vector4) error {
	return TransformVector4Range(src, 0, m, dst, 0, len(src))
}

func TransformVector4RangeQuaternion(src []Vector4, srcIndex int, q Quaternion, dst []Vector4, dstIndex, length int) error {
	return transformRange(src, srcIndex, dst, dstIndex, length, func(v Vector4) Vector4 {
		return v.TransformQuaternion(q)
	})
}

func TransformVector4SliceQuaternion(src []Vector4, q Quaternion, dst []Vector4) error {
	return TransformVector4RangeQuaternion(src, 0, q, dst, 0, len(src))
}
