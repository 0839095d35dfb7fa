package core

import (
	"fmt"
	"math"

	"github.com/spf13/cast"
)

func CastTo[T any](src any) (target T, ok bool) {
	target, ok = src.(T)
	return
}

func ToString(val any) string {
	switch v := val.(type) {
	case string:
		return v
	case fmt.Stringer:
		return v.String()
	case error:
		return fmt.Sprintf("%+v", v)
	default:
		return cast.ToString(val)
	}
}

// ToNumber narrows an unsigned value to int64 when it fits, so expressions can
// compare it against plain integer literals.
func ToNumber(v uint64) any {
	if v <= math.MaxInt64 {
		return cast.ToInt64(v)
	}
	return v
}
