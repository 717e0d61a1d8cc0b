package mathutil

// Distance2D returns the Euclidean distance between (x, y) and (xx, yy).
func Distance2D(x, y, xx, yy Float) Float {
	return Vector2{xx - x, yy - y}.Magnitude()
}

// Distance3D returns the Euclidean distance between (x, y, z) and (xx, yy, zz).
func Distance3D(x, y, z, xx, yy, zz Float) Float {
	return Vector3{xx - x, yy - y, zz - z}.Magnitude()
}

// IsPointInCircle reports whether the point lies strictly inside the circle.
func IsPointInCircle(circleX, circleY, radius, pointX, pointY Float) bool {
	return Distance2D(circleX, circleY, pointX, pointY) < radius
}

// IsPointInTube reports whether the point lies in the vertical cylinder with
// base centre (tubeX, tubeY, tubeZ). Both height bounds are inclusive.
func IsPointInTube(tubeX, tubeY, tubeZ, height, radius, pointX, pointY, pointZ Float) bool {
	return IsPointInCircle(tubeX, tubeY, radius, pointX, pointY) &&
		pointZ >= tubeZ && pointZ <= tubeZ+height
}

// IsPointInBall reports whether the point lies strictly inside the sphere.
func IsPointInBall(ballX, ballY, ballZ, radius, pointX, pointY, pointZ Float) bool {
	return Distance3D(ballX, ballY, ballZ, pointX, pointY, pointZ) < radius
}

// IsPointInArea is an inclusive 2D bounding box test.
func IsPointInArea(areaX, areaY, areaX2, areaY2, pointX, pointY Float) bool {
	return pointX >= areaX && pointX <= areaX2 &&
		pointY >= areaY && pointY <= areaY2
}

// IsPointInCuboid is an inclusive 3D bounding box test.
func IsPointInCuboid(areaX, areaY, areaZ, areaX2, areaY2, areaZ2, pointX, pointY, pointZ Float) bool {
	return pointX >= areaX && pointX <= areaX2 &&
		pointY >= areaY && pointY <= areaY2 &&
		pointZ >= areaZ && pointZ <= areaZ2
}
