package mathutil

import "math"

const (
	Pi         Float = math.Pi
	DoublePi   Float = math.Pi * 2
	HalfPi     Float = math.Pi / 2
	RadsPerDeg Float = math.Pi / 180
	DegsPerRad Float = 180 / math.Pi
	Euler      Float = math.E
)

// Named vectors, set once at init and never written afterwards.
var (
	Vector2Unit  = Vector2{1, 1}
	Vector2Zero  = Vector2{0, 0}
	Vector2Up    = Vector2{0, 1}
	Vector2Down  = Vector2{0, -1}
	Vector2Left  = Vector2{-1, 0}
	Vector2Right = Vector2{1, 0}

	Vector3Unit = Vector3{1, 1, 1}
	Vector3Zero = Vector3{0, 0, 0}

	Vector4Unit = Vector4{1, 1, 1, 1}
	Vector4Zero = Vector4{0, 0, 0, 0}
)

// IsFloatZero reports whether f lies within Epsilon of zero.
func IsFloatZero(f Float) bool {
	return f <= Epsilon && f >= -Epsilon
}

func sqrt(v Float) Float     { return Float(math.Sqrt(float64(v))) }
func floor(v Float) Float    { return Float(math.Floor(float64(v))) }
func sin(v Float) Float      { return Float(math.Sin(float64(v))) }
func cos(v Float) Float      { return Float(math.Cos(float64(v))) }
func atan2(y, x Float) Float { return Float(math.Atan2(float64(y), float64(x))) }
