// Package fieldmap translates externally-named request structs into sparse,
// storage-column-named maps. Both repositories run every write through it, so
// a full create payload and a two-field PATCH body take the same path.
package fieldmap

import (
	"reflect"
)

const tagName = "col"

// ToColumns maps the exported fields of the struct pointed to by o into a
// map keyed by each field's `col` tag.
//
// Pointer fields are the "optional key" mechanism: a nil pointer means the
// client never sent the key, and it must not appear in the output at all.
// A non-nil pointer is dereferenced and passed through untouched, so an
// explicit zero value ("", 0, false) still reaches storage. Non-pointer
// fields are always included. Fields without a `col` tag (or tagged "-")
// are ignored.
func ToColumns(o any) map[string]any {
	v := reflect.ValueOf(o)
	if v.Kind() != reflect.Ptr || v.IsNil() {
		panic("fieldmap: expected pointer to struct")
	}

	v = v.Elem()
	if v.Kind() != reflect.Struct {
		panic("fieldmap: expected struct")
	}

	t := v.Type()
	out := make(map[string]any, t.NumField())
	for i := 0; i < t.NumField(); i++ {
		column := t.Field(i).Tag.Get(tagName)
		if column == "" || column == "-" {
			continue
		}

		field := v.Field(i)
		if field.Kind() == reflect.Ptr {
			if field.IsNil() {
				continue
			}
			field = field.Elem()
		}
		out[column] = field.Interface()
	}
	return out
}
