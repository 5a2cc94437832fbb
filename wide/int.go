// Package wide provides the 128-bit comparison space used for integer
// conversions.
//
// Every value of every Go integer type, and every bound of every integer domain,
// is exactly representable as an Int, so comparisons between values of
// mismatched widths and signedness never overflow.
package wide

import (
	"strconv"

	num "github.com/shabbyrobe/go-num"
)

// Int is a 128-bit two's-complement signed integer.
// The zero value is 0.
type Int = num.I128

// Pow2 returns 2^n. It panics if n does not leave room for the sign bit.
func Pow2(n uint) Int {
	switch {
	default:
		panic("wide: power of two out of range: " + strconv.FormatUint(uint64(n), 10))
	case n < 64:
		return num.I128FromRaw(0, 1<<n)
	case n < 127:
		return num.I128FromRaw(1<<(n-64), 0)
	}
}

// InRange reports whether min <= v <= max.
func InRange(min, v, max Int) bool {
	return min.Cmp(v) <= 0 && v.Cmp(max) <= 0
}
