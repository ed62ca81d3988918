package pfmt

import (
	"fmt"
	"reflect"
	"strconv"
)

// kind is the capability tag computed once per argument.
type kind int

const (
	kindUnsupported kind = iota
	kindBool
	kindSigned
	kindUnsigned
	kindPointer
	kindString
)

// value is one type-erased argument. The payload field selected by kind is
// the only meaningful one. size records the integer's own bit width so that
// non-decimal bases reinterpret the value at that width rather than at 64
// bits. src keeps the original argument for error reporting.
type value struct {
	kind kind
	b    bool
	i    int64
	u    uint64
	s    string
	size int
	src  any
}

// classifyAll builds the argument sequence for one render. Arguments are
// inspected exactly once; rendering only reads the resulting values.
func classifyAll(args []any) []value {
	vals := make([]value, len(args))
	for i, arg := range args {
		vals[i] = classify(arg)
	}
	return vals
}

func classify(arg any) value {
	switch v := arg.(type) {
	case bool:
		return value{kind: kindBool, b: v, src: arg}
	case int:
		return value{kind: kindSigned, i: int64(v), size: strconv.IntSize, src: arg}
	case int8:
		return value{kind: kindSigned, i: int64(v), size: 8, src: arg}
	case int16:
		return value{kind: kindSigned, i: int64(v), size: 16, src: arg}
	case int32:
		return value{kind: kindSigned, i: int64(v), size: 32, src: arg}
	case int64:
		return value{kind: kindSigned, i: v, size: 64, src: arg}
	case uint:
		return value{kind: kindUnsigned, u: uint64(v), size: strconv.IntSize, src: arg}
	case uint8:
		return value{kind: kindUnsigned, u: uint64(v), size: 8, src: arg}
	case uint16:
		return value{kind: kindUnsigned, u: uint64(v), size: 16, src: arg}
	case uint32:
		return value{kind: kindUnsigned, u: uint64(v), size: 32, src: arg}
	case uint64:
		return value{kind: kindUnsigned, u: v, size: 64, src: arg}
	case uintptr:
		return value{kind: kindUnsigned, u: uint64(v), size: strconv.IntSize, src: arg}
	case string:
		return value{kind: kindString, s: v, src: arg}
	case []byte:
		return value{kind: kindString, s: string(v), src: arg}
	case error:
		return value{kind: kindString, s: v.Error(), src: arg}
	case fmt.Stringer:
		return value{kind: kindString, s: v.String(), src: arg}
	case nil:
		return value{kind: kindPointer, src: arg}
	}

	rv := reflect.ValueOf(arg)
	switch rv.Kind() {
	case reflect.Pointer, reflect.UnsafePointer:
		return value{kind: kindPointer, u: uint64(rv.Pointer()), src: arg}
	}
	return value{kind: kindUnsupported, src: arg}
}
