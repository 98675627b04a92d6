package fieldmap

import (
	"reflect"

	"statecast/options"
	"statecast/primitive"
)

// Convert transforms a loosely-typed source map into a record of type T
// under the default coercion allowance. The conversion is all-or-nothing:
// fields are processed in declaration order and the first missing or
// incompatible field aborts with a MissingFieldError or
// InvalidFieldTypeError. Keys the spec does not reference are ignored, the
// source is never mutated and calling twice with equal inputs yields equal
// outcomes.
func Convert[T any](source map[string]any) (T, error) {
	return ConvertWith[T](source, options.CategoryDefault)
}

// ConvertWith is Convert with an explicit coercion category allowance.
func ConvertWith[T any](source map[string]any, allowed options.CategoryEnum) (T, error) {
	var zero T

	spec, err := SpecOf[T]()
	if err != nil {
		return zero, err
	}

	rec, err := convertSpec(spec, source, allowed)
	if err != nil {
		return zero, err
	}

	return rec.Interface().(T), nil
}

// Converter performs repeated conversions into one record shape with a
// fixed category allowance. The zero value is not usable; build one with
// NewConverter. A Converter is safe for concurrent use.
type Converter[T any] struct {
	spec    Spec
	allowed options.CategoryEnum
}

// NewConverter derives the field specification of T once and binds the
// given coercion allowance to it.
func NewConverter[T any](allowed options.CategoryEnum) (*Converter[T], error) {
	spec, err := SpecOf[T]()
	if err != nil {
		return nil, err
	}

	return &Converter[T]{spec: spec, allowed: allowed}, nil
}

// Spec returns the field specification the converter was built from.
func (c *Converter[T]) Spec() Spec { return c.spec }

// Convert transforms the source map into a record, or reports the first
// problem encountered in field declaration order.
func (c *Converter[T]) Convert(source map[string]any) (T, error) {
	var zero T

	rec, err := convertSpec(c.spec, source, c.allowed)
	if err != nil {
		return zero, err
	}

	return rec.Interface().(T), nil
}

func convertSpec(spec Spec, source map[string]any, allowed options.CategoryEnum) (reflect.Value, error) {
	rec := reflect.New(spec.rtype).Elem()

	for _, field := range spec.fields {
		raw, present := source[field.Name]
		if !present {
			return reflect.Value{}, &MissingFieldError{Name: field.Name}
		}

		if field.Kind != 0 {
			coerced, ok := primitive.Coerce(raw, field.Kind, allowed)
			if !ok {
				return reflect.Value{}, &InvalidFieldTypeError{Name: field.Name, Expected: field.Kind.Label()}
			}

			rec.Field(field.index).Set(reflect.ValueOf(coerced))

			continue
		}

		if raw == nil && !nullable(field.Type) {
			return reflect.Value{}, &InvalidFieldTypeError{Name: field.Name, Expected: typeLabel(field.Type)}
		}

		if err := decodeComposite(raw, rec.Field(field.index).Addr(), allowed); err != nil {
			return reflect.Value{}, &InvalidFieldTypeError{Name: field.Name, Expected: typeLabel(field.Type)}
		}
	}

	return rec, nil
}
