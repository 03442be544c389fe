package binder

import (
	"reflect"
	"strings"
	"unicode"
)

func sanitizeString(s string) string {
	return strings.Map(func(r rune) rune {
		if r == '\t' || r == '\n' {
			return r
		}
		if unicode.IsControl(r) {
			return -1
		}
		return r
	}, s)
}

func sanitizeValues(values map[string][]string) map[string][]string {
	for _, vals := range values {
		for i, s := range vals {
			vals[i] = sanitizeString(s)
		}
	}
	return values
}

// sanitizeStruct walks v and cleans every settable string it reaches.
func sanitizeStruct(v any) {
	rv := reflect.ValueOf(v)
	if rv.Kind() != reflect.Pointer || rv.IsNil() {
		return
	}
	sanitizeValue(rv.Elem())
}

func sanitizeValue(rv reflect.Value) {
	switch rv.Kind() {
	case reflect.String:
		if rv.CanSet() {
			rv.SetString(sanitizeString(rv.String()))
		}
	case reflect.Struct:
		for i := range rv.NumField() {
			if f := rv.Field(i); f.CanSet() {
				sanitizeValue(f)
			}
		}
	case reflect.Slice, reflect.Array:
		for i := range rv.Len() {
			sanitizeValue(rv.Index(i))
		}
	case reflect.Pointer, reflect.Interface:
		if !rv.IsNil() && rv.Elem().CanSet() {
			sanitizeValue(rv.Elem())
		}
	}
}
