package mathutil

// WrapAround reduces value into [0, high).
func WrapAround(value, high Float) Float {
	r := value - high*floor(value/high)
	// floor of a rounded quotient can land one step off
	if r < 0 {
		r += high
	}
	if r >= high {
		r = 0
	}
	return r
}

// RadiansToDegrees converts radians to degrees normalized into [0, 360).
func RadiansToDegrees(radians Float) Float {
	return WrapAround(radians*DegsPerRad, 360)
}

// DegreesToRadians converts degrees to radians normalized into [0, 2π).
func DegreesToRadians(degrees Float) Float {
	return WrapAround(degrees*RadsPerDeg, DoublePi)
}

func RadiansToDegrees3(r Vector3) Vector3 {
	return Vector3{RadiansToDegrees(r.X), RadiansToDegrees(r.Y), RadiansToDegrees(r.Z)}
}

func DegreesToRadians3(d Vector3) Vector3 {
	return Vector3{DegreesToRadians(d.X), DegreesToRadians(d.Y), DegreesToRadians(d.Z)}
}

// Deg2Rad converts degrees to radians without wrapping.
func Deg2Rad(d Float) Float {
	return d * RadsPerDeg
}

// Rad2Deg converts radians to degrees without wrapping.
func Rad2Deg(r Float) Float {
	return r * DegsPerRad
}

// OffsetDegrees returns the signed shortest turn from a to b, in (-180, 180].
func OffsetDegrees(a, b Float) Float {
	return offset(a, b, 360)
}

// OffsetRadians returns the signed shortest turn from a to b, in (-π, π].
func OffsetRadians(a, b Float) Float {
	return offset(a, b, DoublePi)
}

func OffsetDegrees3(a, b Vector3) Vector3 {
	return Vector3{OffsetDegrees(a.X, b.X), OffsetDegrees(a.Y, b.Y), OffsetDegrees(a.Z, b.Z)}
}

func OffsetRadians3(a, b Vector3) Vector3 {
	return Vector3{OffsetRadians(a.X, b.X), OffsetRadians(a.Y, b.Y), OffsetRadians(a.Z, b.Z)}
}

func offset(a, b, full Float) Float {
	c := WrapAround(b-a, full)
	if c > full/2 {
		c -= full
	}
	return c
}
