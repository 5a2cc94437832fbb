package primitive

import (
	"fmt"
	"math"
	"reflect"
	"strings"
)

//go:generate go tool stringer -type=KindEnum -output=kind_string.go

type KindEnum int

const (
	_ KindEnum = iota // skip zero value, use it as a default (invalid) value for KindEnum

	KindInt
	KindInt8
	KindInt16
	KindInt32
	KindInt64
	KindUint
	KindUint8
	KindUint16
	KindUint32
	KindUint64
	KindUintptr

	// KindTotal is a constant that represents the total number of kinds defined
	KindTotal = int(iota)
)

var typeNames = [KindTotal]string{
	KindInt:     "int",
	KindInt8:    "int8",
	KindInt16:   "int16",
	KindInt32:   "int32",
	KindInt64:   "int64",
	KindUint:    "uint",
	KindUint8:   "uint8",
	KindUint16:  "uint16",
	KindUint32:  "uint32",
	KindUint64:  "uint64",
	KindUintptr: "uintptr",
}

// Kinds returns every valid kind in declaration order.
func Kinds() []KindEnum {
	res := make([]KindEnum, 0, KindTotal-1)
	for k := KindEnum(1); int(k) < KindTotal; k++ {
		res = append(res, k)
	}

	return res
}

// ParseKind returns the kind named by a Go type name such as "int8" or "uintptr".
func ParseKind(name string) (KindEnum, error) {
	name = strings.TrimSpace(name)
	for k := KindEnum(1); int(k) < KindTotal; k++ {
		if typeNames[k] == name {
			return k, nil
		}
	}

	return 0, fmt.Errorf("unknown integer kind %q", name)
}

// TypeName returns the Go type name of the kind, e.g. "uint16".
func (k KindEnum) TypeName() string {
	if !k.IsInteger() {
		return ""
	}

	return typeNames[k]
}

func (k KindEnum) IsInteger() bool {
	return k > 0 && int(k) < KindTotal
}

func (k KindEnum) IsSigned() bool {
	switch k {
	default:
		return false
	case KindInt, KindInt8, KindInt16, KindInt32, KindInt64:
		return true
	}
}

func (k KindEnum) IsUnsigned() bool {
	switch k {
	default:
		return false
	case KindUint, KindUint8, KindUint16, KindUint32, KindUint64, KindUintptr:
		return true
	}
}

// IsPointerSized reports whether the width of the kind depends on the platform.
func (k KindEnum) IsPointerSized() bool {
	return k == KindInt || k == KindUint || k == KindUintptr
}

// Bits returns the width of the kind on the running platform.
func (k KindEnum) Bits() int {
	switch k {
	default:
		panic("only integer kinds has meaningful bits amount, but requested for: " + k.String())
	case KindInt, KindUint:
		power := 0
		for n := uint(math.MaxUint); n > 0; n >>= 1 {
			power++
		}
		return power
	case KindUintptr:
		power := 0
		for n := ^uintptr(0); n > 0; n >>= 1 {
			power++
		}
		return power
	case KindInt8, KindUint8:
		return 8
	case KindInt16, KindUint16:
		return 16
	case KindInt32, KindUint32:
		return 32
	case KindInt64, KindUint64:
		return 64
	}
}

// Domain resolves the kind into its (signedness, width) pair.
func (k KindEnum) Domain() Domain {
	return Domain{Signed: k.IsSigned(), Bits: k.Bits()}
}

func FromReflectType(rtype reflect.Type) KindEnum {
	if rtype == nil {
		return 0
	}

	// named types (type Port uint16) resolve through their underlying kind
	switch rtype.Kind() {
	default:
		return 0
	case reflect.Int:
		return KindInt
	case reflect.Int8:
		return KindInt8
	case reflect.Int16:
		return KindInt16
	case reflect.Int32:
		return KindInt32
	case reflect.Int64:
		return KindInt64
	case reflect.Uint:
		return KindUint
	case reflect.Uint8:
		return KindUint8
	case reflect.Uint16:
		return KindUint16
	case reflect.Uint32:
		return KindUint32
	case reflect.Uint64:
		return KindUint64
	case reflect.Uintptr:
		return KindUintptr
	}
}

// Of returns the kind of the type parameter.
func Of[T Integer]() KindEnum {
	return FromReflectType(reflect.TypeFor[T]())
}
