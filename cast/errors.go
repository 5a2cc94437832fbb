package cast

import (
	"errors"
	"fmt"

	"intcast/primitive"
	"intcast/wide"
)

// ErrUnrepresentable is reported when a value lies outside the target type's
// range, in either direction.
var ErrUnrepresentable = errors.New("value is not representable in target type")

// UnrepresentableError describes a failed conversion.
type UnrepresentableError struct {
	Value    wide.Int
	From, To primitive.KindEnum
}

func (e *UnrepresentableError) Error() string {
	min, max := e.To.Bounds()
	return fmt.Sprintf("%s %s does not fit %s [%s, %s]",
		e.From.TypeName(), e.Value.String(), e.To.TypeName(), min.String(), max.String())
}

// Is makes errors.Is(err, ErrUnrepresentable) hold.
func (e *UnrepresentableError) Is(target error) bool {
	return target == ErrUnrepresentable
}
