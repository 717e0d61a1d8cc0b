package mathutil

import "golang.org/x/exp/constraints"

// Interpolable is satisfied by the vector types.
type Interpolable[T any] interface {
	Add(T) T
	Sub(T) T
	Mul(Float) T
}

// Lerp interpolates between start and end. alpha is not clamped, so values
// outside [0, 1] extrapolate.
func Lerp[T constraints.Float](start, alpha, end T) T {
	return start + (end-start)*alpha
}

// LerpVector is Lerp for vector values.
func LerpVector[T Interpolable[T]](start T, alpha Float, end T) T {
	return start.Add(end.Sub(start).Mul(alpha))
}

// Clamp restricts value to [lo, hi]. The caller guarantees lo <= hi.
func Clamp[T constraints.Ordered](lo, value, hi T) T {
	if value < lo {
		return lo
	}
	if value > hi {
		return hi
	}
	return value
}

// Unlerp finds the relative position of pos between start and end.
// A degenerate interval (start == end) yields 1.
func Unlerp(start, pos, end Float) Float {
	if start == end {
		return 1
	}
	return (pos - start) / (end - start)
}

// UnlerpClamped is Unlerp restricted to [0, 1].
func UnlerpClamped(start, pos, end Float) Float {
	return Clamp(0, Unlerp(start, pos, end), 1)
}
