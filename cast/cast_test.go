package cast_test

import (
	"errors"
	"math"
	"strconv"
	"testing"

	num "github.com/shabbyrobe/go-num"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"intcast/cast"
	"intcast/option"
	"intcast/primitive"
)

func TestNarrowingBoundary(t *testing.T) {
	t.Parallel()

	assert.True(t, cast.To[uint32](uint64(1)<<33).IsNone(), "2^33 exceeds uint32")
	assert.Equal(t, option.Some(int8(127)), cast.To[int8](uint8(127)))
	assert.True(t, cast.To[int8](uint8(255)).IsNone(), "255 exceeds int8")
	assert.True(t, cast.To[uint32](int8(-1)).IsNone(), "-1 is below uint32 minimum")
}

func TestBasic(t *testing.T) {
	t.Parallel()

	assert.Equal(t, option.Some(int8(0)), cast.ToInt8(uint64(0)))
	assert.Equal(t, option.Some(int8(-40)), cast.ToInt8(int64(-40)))
	assert.True(t, cast.ToInt8(int64(-321)).IsNone())
	assert.True(t, cast.ToUint16(uint64(40000000)).IsNone())
	assert.Equal(t, option.Some(int32(40000000)), cast.ToInt32(uint64(40000000)))
}

func TestNegativeToUnsigned(t *testing.T) {
	t.Parallel()

	assert.True(t, cast.ToUint64(int8(-4)).IsNone())
	assert.True(t, cast.ToUint(int32(-1)).IsNone())
	assert.True(t, cast.ToUint(int32(math.MinInt32)).IsNone())
	assert.True(t, cast.ToUint32(int64(-3053)).IsNone())
	assert.True(t, cast.ToUintptr(-1).IsNone())
}

func TestUnsignedToUnsigned(t *testing.T) {
	t.Parallel()

	assert.True(t, cast.ToUint8(uint32(256)).IsNone())
	assert.Equal(t, option.Some(uint8(255)), cast.ToUint8(uint32(255)))
	assert.Equal(t, option.Some(uint16(256)), cast.ToUint16(uint32(256)))
}

func TestPointerSizedTarget(t *testing.T) {
	t.Parallel()

	big := uint64(2) << 33

	got := cast.ToUint(big)
	if strconv.IntSize <= 32 {
		assert.True(t, got.IsNone())
	} else {
		assert.Equal(t, option.Some(uint(big)), got)
	}

	_, ok := cast.Checked[int](uint64(math.MaxUint64))
	assert.False(t, ok)

	n, ok := cast.Checked[int](uint64(math.MaxInt32))
	assert.True(t, ok)
	assert.Equal(t, math.MaxInt32, n)
}

func TestIdentity(t *testing.T) {
	t.Parallel()

	assert.Equal(t, option.Some(int64(math.MinInt64)), cast.To[int64](int64(math.MinInt64)))
	assert.Equal(t, option.Some(uint64(math.MaxUint64)), cast.To[uint64](uint64(math.MaxUint64)))
	assert.Equal(t, option.Some(int8(-128)), cast.To[int8](int8(-128)))
	assert.Equal(t, option.Some(uintptr(0)), cast.To[uintptr](uintptr(0)))
}

func TestSameWidthDifferentSign(t *testing.T) {
	t.Parallel()

	assert.True(t, cast.Fits[uint64](int64(math.MaxInt64)))
	assert.False(t, cast.Fits[int64](uint64(math.MaxInt64)+1))
	assert.False(t, cast.Fits[uint16](int16(-1)))
	assert.True(t, cast.Fits[int16](uint16(math.MaxInt16)))
	assert.False(t, cast.Fits[int16](uint16(math.MaxInt16+1)))
}

func TestBoundsInclusive(t *testing.T) {
	t.Parallel()

	t.Run("int", checkBounds[int])
	t.Run("int8", checkBounds[int8])
	t.Run("int16", checkBounds[int16])
	t.Run("int32", checkBounds[int32])
	t.Run("int64", checkBounds[int64])
	t.Run("uint", checkBounds[uint])
	t.Run("uint8", checkBounds[uint8])
	t.Run("uint16", checkBounds[uint16])
	t.Run("uint32", checkBounds[uint32])
	t.Run("uint64", checkBounds[uint64])
	t.Run("uintptr", checkBounds[uintptr])
}

// checkBounds feeds T's extremes, and their neighbours outside the range, from
// the widest signed and unsigned source types.
func checkBounds[T cast.Integer](t *testing.T) {
	t.Parallel()

	min, max := primitive.DomainOf[T]().Bounds()

	minV := min.AsInt64()
	require.Equal(t, min, num.I128From64(minV))
	assert.True(t, cast.Fits[T](minV), "min %d must fit", minV)
	if minV > math.MinInt64 {
		assert.False(t, cast.Fits[T](minV-1), "min-1 %d must not fit", minV-1)
	}

	maxV := max.AsUint64()
	require.Equal(t, max, num.I128FromU64(maxV))
	assert.True(t, cast.Fits[T](maxV), "max %d must fit", maxV)
	if maxV < math.MaxUint64 {
		assert.False(t, cast.Fits[T](maxV+1), "max+1 %d must not fit", maxV+1)
	}

	got, ok := cast.Checked[T](maxV)
	require.True(t, ok)
	assert.Equal(t, maxV, uint64(got))
}

func TestNamedTypes(t *testing.T) {
	t.Parallel()

	type Port uint16
	type Offset int32

	assert.Equal(t, option.Some(Port(8080)), cast.To[Port](8080))
	assert.True(t, cast.To[Port](70000).IsNone())
	assert.True(t, cast.To[Port](Offset(-1)).IsNone())
	assert.Equal(t, option.Some(Offset(443)), cast.To[Offset](Port(443)))
}

func TestConvert(t *testing.T) {
	t.Parallel()

	n, err := cast.Convert[int16](uint64(1234))
	require.NoError(t, err)
	assert.Equal(t, int16(1234), n)

	_, err = cast.Convert[int8](uint8(255))
	require.Error(t, err)
	assert.ErrorIs(t, err, cast.ErrUnrepresentable)
	assert.Equal(t, "uint8 255 does not fit int8 [-128, 127]", err.Error())

	var uerr *cast.UnrepresentableError
	require.True(t, errors.As(err, &uerr))
	assert.Equal(t, primitive.KindUint8, uerr.From)
	assert.Equal(t, primitive.KindInt8, uerr.To)
	assert.Equal(t, "255", uerr.Value.String())

	_, err = cast.Convert[uint64](int64(math.MinInt64))
	assert.ErrorIs(t, err, cast.ErrUnrepresentable)
}

func TestMust(t *testing.T) {
	t.Parallel()

	assert.Equal(t, uint8(200), cast.Must[uint8](int64(200)))
	assert.PanicsWithError(t, "int 300 does not fit uint8 [0, 255]", func() {
		cast.Must[uint8](300)
	})
}

func TestWidenIsExact(t *testing.T) {
	t.Parallel()

	assert.Equal(t, "-9223372036854775808", cast.Widen(int64(math.MinInt64)).String())
	assert.Equal(t, "18446744073709551615", cast.Widen(uint64(math.MaxUint64)).String())
	assert.Equal(t, "-1", cast.Widen(int8(-1)).String())
	assert.Equal(t, "255", cast.Widen(uint8(255)).String())
}

// The full matrix over every int8 and uint8 value, compared against native
// conversion round-tripping.
func TestExhaustiveByteSources(t *testing.T) {
	t.Parallel()

	for i := math.MinInt8; i <= math.MaxInt8; i++ {
		assertAllTargets(t, int8(i))
	}

	for i := 0; i <= math.MaxUint8; i++ {
		assertAllTargets(t, uint8(i))
	}
}

type failer interface {
	Helper()
	Fatalf(format string, args ...any)
}

func assertAllTargets[From cast.Integer](t failer, v From) {
	t.Helper()

	agree[int](t, v)
	agree[int8](t, v)
	agree[int16](t, v)
	agree[int32](t, v)
	agree[int64](t, v)
	agree[uint](t, v)
	agree[uint8](t, v)
	agree[uint16](t, v)
	agree[uint32](t, v)
	agree[uint64](t, v)
	agree[uintptr](t, v)
}

// agree checks cast.To against the native conversion: the value survives iff
// the sign is unchanged and converting back gives the original.
func agree[To, From cast.Integer](t failer, v From) {
	t.Helper()

	r := To(v)
	want := (v < 0) == (r < 0) && From(r) == v

	got := cast.To[To](v)
	if got.IsSome() != want {
		t.Fatalf("%T(%v) -> %T: got %s, representable=%v", v, v, r, got, want)
	}

	if want && got.Unwrap() != r {
		t.Fatalf("%T(%v) -> %T: got %s, want %v", v, v, r, got, r)
	}
}
