//go:build fivemp_double

package mathutil

// Float is the scalar type used by every function in this package.
type Float = float64

// Epsilon is the machine epsilon of Float.
const Epsilon Float = 0x1p-52

const DoublePrecision = true
