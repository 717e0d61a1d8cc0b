package mathutil

// Vector3 is a 3-component vector (value type, copied on assignment).
type Vector3 struct {
	X Float `json:"x" yaml:"x"`
	Y Float `json:"y" yaml:"y"`
	Z Float `json:"z" yaml:"z"`
}

func NewVector3(x, y, z Float) Vector3 {
	return Vector3{x, y, z}
}

func (v Vector3) Add(o Vector3) Vector3 {
	return Vector3{v.X + o.X, v.Y + o.Y, v.Z + o.Z}
}

func (v Vector3) Sub(o Vector3) Vector3 {
	return Vector3{v.X - o.X, v.Y - o.Y, v.Z - o.Z}
}

func (v Vector3) Mul(s Float) Vector3 {
	return Vector3{v.X * s, v.Y * s, v.Z * s}
}

// Div returns v / s. A divisor within Epsilon of zero fails with ErrDivisionByZero.
func (v Vector3) Div(s Float) (Vector3, error) {
	if IsFloatZero(s) {
		return v, ErrDivisionByZero
	}
	return Vector3{v.X / s, v.Y / s, v.Z / s}, nil
}

func (v Vector3) Dot(o Vector3) Float {
	return v.X*o.X + v.Y*o.Y + v.Z*o.Z
}

func (v Vector3) Cross(o Vector3) Vector3 {
	return Vector3{
		v.Y*o.Z - v.Z*o.Y,
		v.Z*o.X - v.X*o.Z,
		v.X*o.Y - v.Y*o.X,
	}
}

func (v *Vector3) AddAssign(o Vector3) *Vector3 {
	v.X += o.X
	v.Y += o.Y
	v.Z += o.Z
	return v
}

func (v *Vector3) SubAssign(o Vector3) *Vector3 {
	v.X -= o.X
	v.Y -= o.Y
	v.Z -= o.Z
	return v
}

func (v *Vector3) MulAssign(s Float) *Vector3 {
	v.X *= s
	v.Y *= s
	v.Z *= s
	return v
}

func (v *Vector3) DivAssign(s Float) (*Vector3, error) {
	d, err := v.Div(s)
	if err != nil {
		return v, err
	}
	*v = d
	return v, nil
}

func (v Vector3) IsNull() bool {
	return IsFloatZero(v.X) && IsFloatZero(v.Y) && IsFloatZero(v.Z)
}

func (v Vector3) MagnitudeSquared() Float {
	return v.X*v.X + v.Y*v.Y + v.Z*v.Z
}

func (v Vector3) Magnitude() Float {
	return sqrt(v.MagnitudeSquared())
}

// SetMagnitude rescales v to length m keeping its direction.
func (v *Vector3) SetMagnitude(m Float) error {
	if v.IsNull() {
		return ErrNullVector
	}
	mag := v.Magnitude()
	v.X = v.X * m / mag
	v.Y = v.Y * m / mag
	v.Z = v.Z * m / mag
	return nil
}

func (v Vector3) Normalized() (Vector3, error) {
	err := v.SetMagnitude(1)
	return v, err
}

// IsInRange reports whether p lies within r of v.
func (v Vector3) IsInRange(p Vector3, r Float) bool {
	return p.Sub(v).MagnitudeSquared() <= r*r
}

func (v Vector3) DistanceTo(p Vector3) Float {
	return p.Sub(v).Magnitude()
}

// XY drops the Z component.
func (v Vector3) XY() Vector2 {
	return Vector2{v.X, v.Y}
}
