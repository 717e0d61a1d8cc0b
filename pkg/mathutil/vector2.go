package mathutil

// Vector2 is a 2-component vector (value type, copied on assignment).
type Vector2 struct {
	X Float `json:"x" yaml:"x"`
	Y Float `json:"y" yaml:"y"`
}

func NewVector2(x, y Float) Vector2 {
	return Vector2{x, y}
}

func (v Vector2) Add(o Vector2) Vector2 {
	return Vector2{v.X + o.X, v.Y + o.Y}
}

func (v Vector2) Sub(o Vector2) Vector2 {
	return Vector2{v.X - o.X, v.Y - o.Y}
}

func (v Vector2) Mul(s Float) Vector2 {
	return Vector2{v.X * s, v.Y * s}
}

// Div returns v / s. A divisor within Epsilon of zero fails with ErrDivisionByZero.
func (v Vector2) Div(s Float) (Vector2, error) {
	if IsFloatZero(s) {
		return v, ErrDivisionByZero
	}
	return Vector2{v.X / s, v.Y / s}, nil
}

func (v Vector2) Dot(o Vector2) Float {
	return v.X*o.X + v.Y*o.Y
}

// AddAssign adds o to v in place and returns v for chaining.
func (v *Vector2) AddAssign(o Vector2) *Vector2 {
	v.X += o.X
	v.Y += o.Y
	return v
}

func (v *Vector2) SubAssign(o Vector2) *Vector2 {
	v.X -= o.X
	v.Y -= o.Y
	return v
}

func (v *Vector2) MulAssign(s Float) *Vector2 {
	v.X *= s
	v.Y *= s
	return v
}

// DivAssign divides v by s in place. v is left untouched on error.
func (v *Vector2) DivAssign(s Float) (*Vector2, error) {
	d, err := v.Div(s)
	if err != nil {
		return v, err
	}
	*v = d
	return v, nil
}

// IsNull reports whether both components are within Epsilon of zero.
func (v Vector2) IsNull() bool {
	return IsFloatZero(v.X) && IsFloatZero(v.Y)
}

func (v Vector2) MagnitudeSquared() Float {
	return v.X*v.X + v.Y*v.Y
}

func (v Vector2) Magnitude() Float {
	return sqrt(v.MagnitudeSquared())
}

// SetMagnitude rescales v to length m keeping its direction.
func (v *Vector2) SetMagnitude(m Float) error {
	if v.IsNull() {
		return ErrNullVector
	}
	mag := v.Magnitude()
	v.X = v.X * m / mag
	v.Y = v.Y * m / mag
	return nil
}

// Normalized returns a unit-length copy of v.
func (v Vector2) Normalized() (Vector2, error) {
	err := v.SetMagnitude(1)
	return v, err
}

// IsInRange reports whether p lies within r of v.
func (v Vector2) IsInRange(p Vector2, r Float) bool {
	return p.Sub(v).MagnitudeSquared() <= r*r
}

func (v Vector2) DistanceTo(p Vector2) Float {
	return p.Sub(v).Magnitude()
}

// SquareAngle returns v rotated by 90° counter-clockwise.
func (v Vector2) SquareAngle() Vector2 {
	return Vector2{-v.Y, v.X}
}

// Angle returns the signed angle in radians from v to o.
func (v Vector2) Angle(o Vector2) Float {
	return atan2(o.Y, o.X) - atan2(v.Y, v.X)
}

func (v Vector2) AngleDegrees(o Vector2) Float {
	return Rad2Deg(v.Angle(o))
}

// Rotate rotates v around the origin by the given angle in radians.
func (v *Vector2) Rotate(radians Float) {
	c, s := cos(radians), sin(radians)
	*v = Vector2{v.X*c - v.Y*s, v.X*s + v.Y*c}
}

func (v *Vector2) RotateDegrees(degrees Float) {
	v.Rotate(Deg2Rad(degrees))
}

func (v *Vector2) Negate() {
	v.X = -v.X
	v.Y = -v.Y
}
