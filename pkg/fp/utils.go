package fp

import (
	"reflect"
	"runtime"
)

// IsNil reports whether i is nil or an interface holding a nil
// pointer, map, slice, channel or func.
func IsNil(i interface{}) bool {
	if i == nil {
		return true
	}

	v := reflect.ValueOf(i)
	switch v.Kind() {
	case reflect.Ptr, reflect.Map, reflect.Slice, reflect.Chan, reflect.Func, reflect.UnsafePointer:
		return v.IsNil()
	default:
		return false
	}
}

// Equal is a == b, except that interface values whose dynamic type is
// not comparable compare unequal instead of panicking.
func Equal[T comparable](a, b T) (eq bool) {
	defer func() {
		if r := recover(); r != nil {
			if _, ok := r.(runtime.Error); !ok {
				panic(r)
			}
			eq = false
		}
	}()

	return a == b
}
