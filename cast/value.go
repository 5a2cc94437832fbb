package cast

import (
	"fmt"
	"reflect"
	"strconv"

	num "github.com/shabbyrobe/go-num"

	"intcast/option"
	"intcast/primitive"
	"intcast/wide"
)

// Value is an integer tagged with the kind it was read as. It is used where the
// source and target types are only known at run time.
type Value struct {
	Kind primitive.KindEnum
	Wide wide.Int
}

// ValueOf tags v with its kind.
func ValueOf[T Integer](v T) Value {
	return Value{Kind: primitive.Of[T](), Wide: Widen(v)}
}

// ParseValue reads s as a value of the given kind. Base prefixes (0x, 0o, 0b)
// and underscores are accepted. Text that does not fit the kind itself is a
// parse error, not an unrepresentable conversion.
func ParseValue(s string, kind primitive.KindEnum) (Value, error) {
	if !kind.IsInteger() {
		return Value{}, fmt.Errorf("parsing %q: %s is not an integer kind", s, kind)
	}

	if kind.IsSigned() {
		n, err := strconv.ParseInt(s, 0, kind.Bits())
		if err != nil {
			return Value{}, fmt.Errorf("parsing %q as %s: %w", s, kind.TypeName(), err)
		}

		return Value{Kind: kind, Wide: num.I128From64(n)}, nil
	}

	n, err := strconv.ParseUint(s, 0, kind.Bits())
	if err != nil {
		return Value{}, fmt.Errorf("parsing %q as %s: %w", s, kind.TypeName(), err)
	}

	return Value{Kind: kind, Wide: num.I128FromU64(n)}, nil
}

// As converts v to the given kind, returning None if it does not fit.
func (v Value) As(kind primitive.KindEnum) option.Option[Value] {
	if !kind.Domain().Contains(v.Wide) {
		return option.None[Value]()
	}

	return option.Some(Value{Kind: kind, Wide: v.Wide})
}

// Convert is like As but reports failure as an *UnrepresentableError.
func (v Value) Convert(kind primitive.KindEnum) (Value, error) {
	res, ok := v.As(kind).Get()
	if !ok {
		return Value{}, &UnrepresentableError{Value: v.Wide, From: v.Kind, To: kind}
	}

	return res, nil
}

func (v Value) String() string {
	return v.Wide.String()
}

// Reflect converts the integer held by rv to type to. It panics if either side
// is not an integer type.
func Reflect(rv reflect.Value, to reflect.Type) option.Option[reflect.Value] {
	fromKind := primitive.FromReflectType(rv.Type())
	toKind := primitive.FromReflectType(to)
	if fromKind == 0 || toKind == 0 {
		panic("cast.Reflect: integer types required, got " + rv.Type().String() + " -> " + to.String())
	}

	var w wide.Int
	if fromKind.IsSigned() {
		w = num.I128From64(rv.Int())
	} else {
		w = num.I128FromU64(rv.Uint())
	}

	if !toKind.Domain().Contains(w) {
		return option.None[reflect.Value]()
	}

	out := reflect.New(to).Elem()
	if toKind.IsSigned() {
		out.SetInt(w.AsInt64())
	} else {
		out.SetUint(w.AsUint64())
	}

	return option.Some(out)
}
