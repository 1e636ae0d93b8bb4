package rpy

import (
	"reflect"
	"strings"

	"github.com/a96tudor/python-abp/filterlist"
)

// Mapping is a plain key to value container describing one parsed line.
// The "type" key always holds the line kind name; the remaining keys
// mirror the fields of the line variant.
type Mapping map[string]any

// ToMapping flattens a parsed line into a Mapping. Every exported field
// of the variant is copied under its field name, by reference and without
// validation, plus a synthetic "type" entry holding the kind name.
func ToMapping(line filterlist.Line) Mapping {
	out := Mapping{"type": line.Kind().String()}

	v := reflect.ValueOf(line)
	for v.Kind() == reflect.Ptr {
		v = v.Elem()
	}

	t := v.Type()
	for i := 0; i < t.NumField(); i++ {
		f := t.Field(i)
		if f.PkgPath != "" {
			continue
		}

		out[fieldName(f)] = v.Field(i).Interface()
	}

	return out
}

// fieldName resolves the mapping key for a struct field: the json tag
// name when present, the lowercased field name otherwise.
func fieldName(f reflect.StructField) string {
	tag := f.Tag.Get("json")
	if tag == "" || tag == "-" {
		return strings.ToLower(f.Name)
	}

	// trim options
	if idx := strings.IndexByte(tag, ','); idx >= 0 {
		tag = tag[:idx]
	}

	return tag
}
