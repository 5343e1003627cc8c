package trop

import (
	"reflect"
)

// IsNil reports whether i is nil directly or a typed nil pointer boxed in
// an interface.
func IsNil(i interface{}) bool {
	if i == nil || (reflect.ValueOf(i).Kind() == reflect.Ptr && reflect.ValueOf(i).IsNil()) {
		return true
	}
	return false
}

// Causes flattens an error into its immediate causes, unwrapping joined
// errors one level.
func Causes(err error) []error {
	if IsNil(err) {
		return []error{}
	}

	e, ok := err.(interface{ Unwrap() []error })
	if ok {
		return e.Unwrap()
	}

	return []error{err}
}
