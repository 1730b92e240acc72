// Package content holds the weakly-typed content objects returned by the
// backend and the repository that fetches them.
package content

import (
	"encoding/json"
	"strconv"
	"strings"
)

// Object is an arbitrary tree of fields as decoded from a GraphQL response.
// Every field is optional. All accessors are safe on a nil Object.
type Object map[string]any

// Get walks a dot-separated path and returns the value found, if any.
func (o Object) Get(path string) (any, bool) {
	if o == nil {
		return nil, false
	}
	var cur any = map[string]any(o)
	for _, key := range strings.Split(path, ".") {
		m, ok := asMap(cur)
		if !ok {
			return nil, false
		}
		cur, ok = m[key]
		if !ok || cur == nil {
			return nil, false
		}
	}
	return cur, true
}

// String returns the string at path, or "" when absent or not a scalar.
func (o Object) String(path string) string {
	v, ok := o.Get(path)
	if !ok {
		return ""
	}
	switch t := v.(type) {
	case string:
		return t
	case float64:
		return strconv.FormatFloat(t, 'f', -1, 64)
	case json.Number:
		return t.String()
	case bool:
		return strconv.FormatBool(t)
	default:
		return ""
	}
}

// StringOr returns the trimmed string at path or fallback when it is blank.
func (o Object) StringOr(path, fallback string) string {
	return Or(o.String(path), fallback)
}

// Int returns the integer at path. Strings holding integers are accepted.
func (o Object) Int(path string) (int, bool) {
	v, ok := o.Get(path)
	if !ok {
		return 0, false
	}
	switch t := v.(type) {
	case float64:
		return int(t), true
	case int:
		return t, true
	case json.Number:
		n, err := t.Int64()
		return int(n), err == nil
	case string:
		n, err := strconv.Atoi(strings.TrimSpace(t))
		return n, err == nil
	default:
		return 0, false
	}
}

// Bool returns the boolean at path. WordPress plugins sometimes serialize
// flags as "1"/"0" or "yes"/"no", which are accepted too.
func (o Object) Bool(path string) bool {
	v, ok := o.Get(path)
	if !ok {
		return false
	}
	switch t := v.(type) {
	case bool:
		return t
	case float64:
		return t != 0
	case string:
		switch strings.ToLower(strings.TrimSpace(t)) {
		case "1", "true", "yes", "on":
			return true
		}
	}
	return false
}

// Object returns the nested object at path, or nil.
func (o Object) Object(path string) Object {
	v, ok := o.Get(path)
	if !ok {
		return nil
	}
	m, ok := asMap(v)
	if !ok {
		return nil
	}
	return Object(m)
}

// List returns the objects of the array at path. Non-object entries are skipped.
func (o Object) List(path string) []Object {
	v, ok := o.Get(path)
	if !ok {
		return nil
	}
	items, ok := v.([]any)
	if !ok {
		return nil
	}
	out := make([]Object, 0, len(items))
	for _, item := range items {
		if m, ok := asMap(item); ok {
			out = append(out, Object(m))
		}
	}
	return out
}

// Empty reports whether the object carries no fields.
func (o Object) Empty() bool {
	return len(o) == 0
}

// Or returns value unless it is blank, in which case fallback is returned.
// It is the one place placeholder resolution happens.
func Or(value, fallback string) string {
	if strings.TrimSpace(value) == "" {
		return fallback
	}
	return value
}

func asMap(v any) (map[string]any, bool) {
	switch t := v.(type) {
	case map[string]any:
		return t, true
	case Object:
		return t, true
	default:
		return nil, false
	}
}
