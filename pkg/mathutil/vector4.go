package mathutil

// Vector4 is a 4-component vector (value type, copied on assignment).
type Vector4 struct {
	X Float `json:"x" yaml:"x"`
	Y Float `json:"y" yaml:"y"`
	Z Float `json:"z" yaml:"z"`
	W Float `json:"w" yaml:"w"`
}

func NewVector4(x, y, z, w Float) Vector4 {
	return Vector4{x, y, z, w}
}

func (v Vector4) Add(o Vector4) Vector4 {
	return Vector4{v.X + o.X, v.Y + o.Y, v.Z + o.Z, v.W + o.W}
}

func (v Vector4) Sub(o Vector4) Vector4 {
	return Vector4{v.X - o.X, v.Y - o.Y, v.Z - o.Z, v.W - o.W}
}

func (v Vector4) Mul(s Float) Vector4 {
	return Vector4{v.X * s, v.Y * s, v.Z * s, v.W * s}
}

func (v Vector4) Div(s Float) (Vector4, error) {
	if IsFloatZero(s) {
		return v, ErrDivisionByZero
	}
	return Vector4{v.X / s, v.Y / s, v.Z / s, v.W / s}, nil
}

func (v *Vector4) AddAssign(o Vector4) *Vector4 {
	*v = v.Add(o)
	return v
}

func (v *Vector4) SubAssign(o Vector4) *Vector4 {
	*v = v.Sub(o)
	return v
}

func (v *Vector4) MulAssign(s Float) *Vector4 {
	*v = v.Mul(s)
	return v
}

func (v *Vector4) DivAssign(s Float) (*Vector4, error) {
	d, err := v.Div(s)
	if err != nil {
		return v, err
	}
	*v = d
	return v, nil
}

func (v Vector4) IsNull() bool {
	return IsFloatZero(v.X) && IsFloatZero(v.Y) && IsFloatZero(v.Z) && IsFloatZero(v.W)
}

func (v Vector4) MagnitudeSquared() Float {
	return v.X*v.X + v.Y*v.Y + v.Z*v.Z + v.W*v.W
}

func (v Vector4) Magnitude() Float {
	return sqrt(v.MagnitudeSquared())
}

func (v *Vector4) SetMagnitude(m Float) error {
	if v.IsNull() {
		return ErrNullVector
	}
	*v = v.Mul(m / v.Magnitude())
	return nil
}

func (v Vector4) Normalized() (Vector4, error) {
	err := v.SetMagnitude(1)
	return v, err
}

func (v Vector4) IsInRange(p Vector4, r Float) bool {
	return p.Sub(v).MagnitudeSquared() <= r*r
}
