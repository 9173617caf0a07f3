package errorbag

import (
	"reflect"
	"strconv"
)

// Code identifies a category of failure. Integer codes are stored in their
// decimal string form, so CodeOf(42) and Code("42") are the same code.
type Code string

// CodeValue is the set of types accepted as an error code.
type CodeValue interface {
	~string | ~int | ~int8 | ~int16 | ~int32 | ~int64 |
		~uint | ~uint8 | ~uint16 | ~uint32 | ~uint64
}

// CodeOf canonicalizes v into a Code. Strings pass through unchanged, the
// empty string included; integers become their decimal representation.
func CodeOf[T CodeValue](v T) Code {
	rv := reflect.ValueOf(v)
	switch rv.Kind() {
	case reflect.Int, reflect.Int8, reflect.Int16, reflect.Int32, reflect.Int64:
		return Code(strconv.FormatInt(rv.Int(), 10))
	case reflect.Uint, reflect.Uint8, reflect.Uint16, reflect.Uint32, reflect.Uint64:
		return Code(strconv.FormatUint(rv.Uint(), 10))
	default:
		return Code(rv.String())
	}
}

// String implements fmt.Stringer.
func (c Code) String() string {
	return string(c)
}
