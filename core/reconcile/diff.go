package reconcile

import (
	"fmt"
	"reflect"
	"strings"

	"match-canon/feature/canon"
)

// maxMismatches caps the differences listed for one match.
const maxMismatches = 20

// CompareMatches lists the fields in which two matches differ, named by their JSON
// path. Nil and empty slices compare equal. At most maxMismatches entries are listed,
// followed by a count of the rest.
func CompareMatches(left, right *canon.Match) []string {
	d := &differ{}
	d.walk("", reflect.ValueOf(left).Elem(), reflect.ValueOf(right).Elem())
	if d.extra > 0 {
		d.out = append(d.out, fmt.Sprintf("... and %d more", d.extra))
	}
	if d.out == nil {
		return []string{}
	}
	return d.out
}

type differ struct {
	out   []string
	extra int
}

func (d *differ) report(path string, left, right any) {
	if len(d.out) >= maxMismatches {
		d.extra++
		return
	}
	d.out = append(d.out, fmt.Sprintf("%s: left=%v right=%v", path, left, right))
}

func (d *differ) walk(path string, a, b reflect.Value) {
	switch a.Kind() {
	case reflect.Struct:
		t := a.Type()
		for i := 0; i < t.NumField(); i++ {
			f := t.Field(i)
			if !f.IsExported() {
				continue
			}
			d.walk(join(path, fieldName(f)), a.Field(i), b.Field(i))
		}
	case reflect.Slice, reflect.Array:
		if a.Len() != b.Len() {
			d.report(path+".length", a.Len(), b.Len())
		}
		n := min(a.Len(), b.Len())
		for i := 0; i < n; i++ {
			d.walk(fmt.Sprintf("%s[%d]", path, i), a.Index(i), b.Index(i))
		}
	case reflect.Pointer:
		switch {
		case a.IsNil() && b.IsNil():
		case a.IsNil() || b.IsNil():
			d.report(path, deref(a), deref(b))
		default:
			d.walk(path, a.Elem(), b.Elem())
		}
	default:
		if !a.Equal(b) {
			d.report(path, a.Interface(), b.Interface())
		}
	}
}

func deref(v reflect.Value) any {
	if v.IsNil() {
		return "<nil>"
	}
	return v.Elem().Interface()
}

func fieldName(f reflect.StructField) string {
	if tag := f.Tag.Get("json"); tag != "" && tag != "-" {
		if name, _, _ := strings.Cut(tag, ","); name != "" {
			return name
		}
	}
	return strings.ToLower(f.Name[:1]) + f.Name[1:]
}

func join(path, name string) string {
	if path == "" {
		return name
	}
	return path + "." + name
}
