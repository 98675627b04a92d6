package fieldmap

import (
	"reflect"

	"statecast/options"
	"statecast/primitive"
)

// Extract pulls one typed field out of a source map under the default
// coercion allowance. Generated conversion functions are assembled from
// per-field Extract calls, but it is equally usable by hand.
func Extract[T any](source map[string]any, key string) (T, error) {
	return ExtractWith[T](source, key, options.CategoryDefault)
}

// ExtractWith is Extract with an explicit coercion category allowance.
func ExtractWith[T any](source map[string]any, key string, allowed options.CategoryEnum) (T, error) {
	var zero T

	raw, present := source[key]
	if !present {
		return zero, &MissingFieldError{Name: key}
	}

	rtype := reflect.TypeFor[T]()
	if kind := primitive.FromReflectType(rtype); kind != 0 {
		coerced, ok := primitive.Coerce(raw, kind, allowed)
		if !ok {
			return zero, &InvalidFieldTypeError{Name: key, Expected: kind.Label()}
		}

		return coerced.(T), nil
	}

	if raw == nil && !nullable(rtype) {
		return zero, &InvalidFieldTypeError{Name: key, Expected: typeLabel(rtype)}
	}

	var out T
	if err := decodeComposite(raw, reflect.ValueOf(&out), allowed); err != nil {
		return zero, &InvalidFieldTypeError{Name: key, Expected: typeLabel(rtype)}
	}

	return out, nil
}

// ExtractRecord pulls a nested record field by delegating to that record's
// own conversion function. The dynamic value must itself be a string-keyed
// map.
func ExtractRecord[T any](source map[string]any, key string, from func(map[string]any) (T, error)) (T, error) {
	var zero T

	raw, present := source[key]
	if !present {
		return zero, &MissingFieldError{Name: key}
	}

	nested, ok := raw.(map[string]any)
	if !ok {
		return zero, &InvalidFieldTypeError{Name: key, Expected: typeLabel(reflect.TypeFor[T]())}
	}

	return from(nested)
}
