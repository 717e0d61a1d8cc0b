//go:build !fivemp_double

package mathutil

// Float is the scalar type used by every function in this package.
// Build with -tags fivemp_double to switch to float64.
type Float = float32

// Epsilon is the machine epsilon of Float.
const Epsilon Float = 0x1p-23

const DoublePrecision = false
