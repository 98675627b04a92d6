// Package statemap holds the loosely-typed state bag a command layer hands
// across its boundary. A Map owns its entries; conversions borrow it
// read-only and never retain it.
package statemap

import (
	"sort"

	"statecast/fieldmap"
	"statecast/options"
)

type Map map[string]any

// New returns an empty state map.
func New() Map { return Map{} }

// Get returns the value stored under key, or nil.
func (m Map) Get(key string) any { return m[key] }

// Lookup returns the value stored under key and whether it is present.
func (m Map) Lookup(key string) (any, bool) {
	v, ok := m[key]
	return v, ok
}

func (m Map) Set(key string, v any) { m[key] = v }

func (m Map) Delete(key string) { delete(m, key) }

// Keys returns the keys in sorted order.
func (m Map) Keys() []string {
	keys := make([]string, 0, len(m))
	for key := range m {
		keys = append(keys, key)
	}

	sort.Strings(keys)

	return keys
}

// Clone returns a copy of the map with nested string-keyed maps and slices
// copied as well, so mutating the clone never shows through the original.
func (m Map) Clone() Map {
	if m == nil {
		return nil
	}

	out := make(Map, len(m))
	for key, v := range m {
		out[key] = cloneValue(v)
	}

	return out
}

// Merge copies all entries of other into m, overwriting existing keys.
func (m Map) Merge(other Map) {
	for key, v := range other {
		m[key] = cloneValue(v)
	}
}

func cloneValue(v any) any {
	switch val := v.(type) {
	default:
		return v
	case Map:
		return val.Clone()
	case map[string]any:
		return map[string]any(Map(val).Clone())
	case []any:
		out := make([]any, len(val))
		for i, elem := range val {
			out[i] = cloneValue(elem)
		}

		return out
	}
}

// To converts the map into a record of type T under the default coercion
// allowance. The map is read, never written.
func To[T any](m Map) (T, error) {
	return fieldmap.Convert[T](m)
}

// ToWith is To with an explicit coercion category allowance.
func ToWith[T any](m Map, allowed options.CategoryEnum) (T, error) {
	return fieldmap.ConvertWith[T](m, allowed)
}
