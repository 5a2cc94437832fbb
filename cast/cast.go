// Package cast converts values between integer types without truncation,
// wrap-around or sign reinterpretation.
//
// A conversion either yields a value numerically equal to its input or reports
// that the input is not representable in the target type. Overflow and
// underflow are the same outcome.
//
// Decision procedure:
//  1. Widen the source value into a 128-bit comparison space (exact for every type)
//  2. Resolve the target type's inclusive bounds in the same space
//  3. Convert only if min <= v <= max
//
// Identity conversions and conversions against unsigned targets go through the
// same comparison; a negative value fails against an unsigned target because
// its minimum is zero.
//
// Every function here is pure and safe for concurrent use.
package cast

//go:generate go run intcast/cmd/intcast gen --output .

import (
	num "github.com/shabbyrobe/go-num"

	"intcast/option"
	"intcast/primitive"
	"intcast/wide"
)

// Integer is the set of types the package converts between.
type Integer = primitive.Integer

// Widen returns v in the comparison space. It never loses information.
func Widen[T Integer](v T) wide.Int {
	if v < 0 {
		return num.I128From64(int64(v))
	}

	return num.I128FromU64(uint64(v))
}

// Fits reports whether v is representable in To.
func Fits[To, From Integer](v From) bool {
	return primitive.DomainOf[To]().Contains(Widen(v))
}

// Checked converts v to T. The boolean is false, and the result zero, if v is
// outside T's range.
func Checked[T, From Integer](v From) (T, bool) {
	if !Fits[T](v) {
		return 0, false
	}

	return T(v), true
}

// To converts v to T, returning None if v is outside T's range.
func To[T, From Integer](v From) option.Option[T] {
	if !Fits[T](v) {
		return option.None[T]()
	}

	return option.Some(T(v))
}

// Convert converts v to T, returning an *UnrepresentableError matching
// ErrUnrepresentable if v is outside T's range.
func Convert[T, From Integer](v From) (T, error) {
	res, ok := Checked[T](v)
	if !ok {
		return 0, &UnrepresentableError{
			Value: Widen(v),
			From:  primitive.Of[From](),
			To:    primitive.Of[T](),
		}
	}

	return res, nil
}

// Must is like Convert but panics if v is outside T's range.
func Must[T, From Integer](v From) T {
	res, err := Convert[T](v)
	if err != nil {
		panic(err)
	}

	return res
}
