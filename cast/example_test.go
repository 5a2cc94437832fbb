package cast_test

import (
	"errors"
	"fmt"

	"intcast/cast"
	"intcast/primitive"
)

func Example() {
	// successful cast
	fmt.Println(cast.ToInt8(uint8(127)))

	// overflow
	fmt.Println(cast.ToInt8(uint8(255)))

	// underflow
	fmt.Println(cast.ToUint32(int8(-1)))

	// Output:
	// Some(127)
	// None
	// None
}

func ExampleChecked() {
	if n, ok := cast.Checked[uint16](70000); !ok {
		fmt.Println("does not fit")
	} else {
		fmt.Println(n)
	}
	// Output:
	// does not fit
}

func ExampleConvert() {
	_, err := cast.Convert[uint32](int64(-3053))
	fmt.Println(errors.Is(err, cast.ErrUnrepresentable))
	fmt.Println(err)
	// Output:
	// true
	// int64 -3053 does not fit uint32 [0, 4294967295]
}

func ExampleValue_As() {
	v, err := cast.ParseValue("0x8000", primitive.KindUint32)
	if err != nil {
		panic(err)
	}

	fmt.Println(v.As(primitive.KindInt16))
	fmt.Println(v.As(primitive.KindInt32))
	// Output:
	// None
	// Some(32768)
}
