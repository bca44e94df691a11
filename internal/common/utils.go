package common

import (
	"reflect"
)

// TagName is the struct tag naming the dest a field receives.
const TagName = "ocli"

// TaggedField is a settable struct field carrying an `ocli` tag.
type TaggedField struct {
	Name  string
	Dest  string
	Value reflect.Value
}

// IsStructPtr checks if the provided value is a pointer to a struct.
func IsStructPtr(v any) bool {
	t := reflect.TypeOf(v)
	return t != nil && t.Kind() == reflect.Pointer && t.Elem().Kind() == reflect.Struct
}

// TaggedFields collects the exported fields of the struct behind target that
// carry an `ocli` tag, descending into untagged embedded structs.
// A tag of "-" skips the field.
func TaggedFields(target any) []TaggedField {
	if !IsStructPtr(target) {
		return nil
	}
	return collectTagged(reflect.ValueOf(target).Elem(), nil)
}

func collectTagged(v reflect.Value, out []TaggedField) []TaggedField {
	t := v.Type()
	for i := range t.NumField() {
		field := t.Field(i)
		tag, tagged := field.Tag.Lookup(TagName)
		if tag == "-" {
			continue
		}
		if !tagged {
			if field.Anonymous && field.Type.Kind() == reflect.Struct && field.IsExported() {
				out = collectTagged(v.Field(i), out)
			}
			continue
		}
		if !field.IsExported() {
			continue
		}
		out = append(out, TaggedField{Name: field.Name, Dest: tag, Value: v.Field(i)})
	}
	return out
}
