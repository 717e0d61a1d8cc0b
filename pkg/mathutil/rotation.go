package mathutil

// RotX returns a 3×3 rotation matrix around the X axis. Angle in radians.
func RotX(a Float) Mat3 {
	c, s := cos(a), sin(a)
	return Mat3{
		1, 0, 0,
		0, c, -s,
		0, s, c,
	}
}

// RotY returns a 3×3 rotation matrix around the Y axis.
func RotY(a Float) Mat3 {
	c, s := cos(a), sin(a)
	return Mat3{
		c, 0, s,
		0, 1, 0,
		-s, 0, c,
	}
}

// RotZ returns a 3×3 rotation matrix around the Z axis.
func RotZ(a Float) Mat3 {
	c, s := cos(a), sin(a)
	return Mat3{
		c, -s, 0,
		s, c, 0,
		0, 0, 1,
	}
}

// RotationMatrix builds the rotation for a host Euler rotation given in
// degrees (pitch, roll, yaw around X, Y, Z).
func RotationMatrix(rotation Vector3) Mat3 {
	return EulerToQuat(Deg2Rad(rotation.X), Deg2Rad(rotation.Y), Deg2Rad(rotation.Z)).Mat3()
}
