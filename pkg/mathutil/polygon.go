package mathutil

// NewPolygon zips parallel coordinate slices into a vertex list.
func NewPolygon(xs, ys []Float) ([]Vector2, error) {
	if len(xs) != len(ys) {
		return nil, ErrPolygonMismatch
	}
	poly := make([]Vector2, len(xs))
	for i := range xs {
		poly[i] = Vector2{xs[i], ys[i]}
	}
	return poly, nil
}

// IsPointInPolygon runs a crossing-number test against the closed polygon
// (the last vertex connects back to the first). Points exactly on an edge
// may go either way.
func IsPointInPolygon(polygon []Vector2, pointX, pointY Float) (bool, error) {
	n := len(polygon)
	if n < 3 {
		return false, ErrPolygonTooSmall
	}

	inside := false
	for i, j := 0, n-1; i < n; j, i = i, i+1 {
		pi, pj := polygon[i], polygon[j]
		if (pi.Y > pointY) != (pj.Y > pointY) &&
			pointX < (pj.X-pi.X)*(pointY-pi.Y)/(pj.Y-pi.Y)+pi.X {
			inside = !inside
		}
	}
	return inside, nil
}
