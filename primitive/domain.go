package primitive

import (
	"strconv"
	"unsafe"

	num "github.com/shabbyrobe/go-num"

	"intcast/wide"
)

// Integer is the set of integer types with a fixed (or pointer-sized) width,
// including named types derived from them.
type Integer interface {
	~int | ~int8 | ~int16 | ~int32 | ~int64 |
		~uint | ~uint8 | ~uint16 | ~uint32 | ~uint64 | ~uintptr
}

// Domain describes the set of values an integer type can represent.
type Domain struct {
	Signed bool
	Bits   int
}

// DomainOf resolves the domain of the type parameter on the running platform.
// Pointer-sized types report their actual width here, never an assumed one.
func DomainOf[T Integer]() Domain {
	var zero T
	return Domain{
		Signed: ^zero < 0,
		Bits:   int(unsafe.Sizeof(zero)) * 8,
	}
}

// Valid reports whether the domain has one of the supported widths.
func (d Domain) Valid() bool {
	switch d.Bits {
	default:
		return false
	case 8, 16, 32, 64:
		return true
	}
}

// Bounds returns the inclusive minimum and maximum of the domain.
// Unsigned domains span [0, 2^w-1], signed ones [-2^(w-1), 2^(w-1)-1].
func (d Domain) Bounds() (min, max wide.Int) {
	if !d.Valid() {
		panic("unsupported integer width: " + strconv.Itoa(d.Bits))
	}

	one := num.I128From64(1)
	if !d.Signed {
		return wide.Int{}, wide.Pow2(uint(d.Bits)).Sub(one)
	}

	half := wide.Pow2(uint(d.Bits - 1))
	return half.Neg(), half.Sub(one)
}

// Contains reports whether v is representable in the domain.
func (d Domain) Contains(v wide.Int) bool {
	min, max := d.Bounds()
	return wide.InRange(min, v, max)
}

func (d Domain) String() string {
	prefix := "uint"
	if d.Signed {
		prefix = "int"
	}

	return prefix + strconv.Itoa(d.Bits)
}

// Bounds returns the inclusive minimum and maximum of the kind on the running platform.
func (k KindEnum) Bounds() (min, max wide.Int) {
	return k.Domain().Bounds()
}
