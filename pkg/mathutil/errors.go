package mathutil

import (
	"errors"
	"fmt"
)

var (
	ErrDivisionByZero = errors.New("mathutil: division by zero")

	// ErrNullVector is returned when a direction is required from a null vector.
	ErrNullVector = fmt.Errorf("%w: vector is null", ErrDivisionByZero)

	ErrPolygonTooSmall = errors.New("mathutil: polygon needs at least 3 points")
	ErrPolygonMismatch = errors.New("mathutil: polygon coordinate slices differ in length")
)
