package util

import (
	"fmt"
	"reflect"
)

// IsStructInitialized reports an error naming the first nil pointer, interface or map
// field of the struct v points to. Fields tagged `wire:"-"` are skipped.
func IsStructInitialized(v any) error {
	rv := reflect.ValueOf(v)
	if rv.Kind() == reflect.Ptr {
		rv = rv.Elem()
	}

	if rv.Kind() != reflect.Struct {
		return fmt.Errorf("expected struct, got %s", rv.Kind())
	}

	rt := rv.Type()
	for i := 0; i < rv.NumField(); i++ {
		field := rt.Field(i)
		if field.Tag.Get("wire") == "-" || !field.IsExported() {
			continue
		}

		switch rv.Field(i).Kind() {
		case reflect.Ptr, reflect.Interface, reflect.Map, reflect.Func, reflect.Chan, reflect.Slice:
			if rv.Field(i).IsNil() {
				return fmt.Errorf("struct field %q is not initialized", field.Name)
			}
		default:
		}
	}

	return nil
}
