package wide_test

import (
	"math"
	"testing"

	num "github.com/shabbyrobe/go-num"
	"github.com/stretchr/testify/assert"
	"pgregory.net/rapid"

	"intcast/wide"
)

func TestPow2(t *testing.T) {
	t.Parallel()

	assert.Equal(t, "1", wide.Pow2(0).String())
	assert.Equal(t, "256", wide.Pow2(8).String())
	assert.Equal(t, "9223372036854775808", wide.Pow2(63).String())
	assert.Equal(t, "18446744073709551616", wide.Pow2(64).String())
	assert.Equal(t, "85070591730234615865843651857942052864", wide.Pow2(126).String())

	assert.Panics(t, func() { wide.Pow2(127) })
}

func TestPow2Bounds(t *testing.T) {
	t.Parallel()

	one := num.I128From64(1)

	assert.Equal(t, num.I128FromU64(math.MaxUint64), wide.Pow2(64).Sub(one))
	assert.Equal(t, num.I128From64(math.MinInt64), wide.Pow2(63).Neg())
	assert.Equal(t, num.I128From64(math.MaxInt64), wide.Pow2(63).Sub(one))
	assert.Equal(t, "-18446744073709551616", wide.Pow2(64).Neg().String())
}

func TestInRange(t *testing.T) {
	t.Parallel()

	lo, hi := num.I128From64(-128), num.I128From64(127)

	assert.True(t, wide.InRange(lo, lo, hi))
	assert.True(t, wide.InRange(lo, hi, hi))
	assert.True(t, wide.InRange(lo, wide.Int{}, hi))
	assert.False(t, wide.InRange(lo, num.I128From64(-129), hi))
	assert.False(t, wide.InRange(lo, num.I128From64(128), hi))

	maxUint64 := num.I128FromU64(math.MaxUint64)
	assert.True(t, wide.InRange(wide.Int{}, maxUint64, maxUint64))
	assert.False(t, wide.InRange(wide.Int{}, num.I128From64(-1), maxUint64))
}

func TestInRangeMatchesNative(t *testing.T) {
	t.Parallel()

	rapid.Check(t, func(t *rapid.T) {
		a := rapid.Int64().Draw(t, "a")
		b := rapid.Uint64().Draw(t, "b")

		// a negative int64 is below every uint64
		want := a < 0 || uint64(a) <= b

		if got := wide.InRange(num.I128From64(math.MinInt64), num.I128From64(a), num.I128FromU64(b)); got != want {
			t.Fatalf("InRange(MinInt64, %d, %d) = %v, want %v", a, b, got, want)
		}
	})
}
