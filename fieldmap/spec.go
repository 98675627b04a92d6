// Package fieldmap converts loosely-typed state maps into strongly-typed
// records. A record's field specification is derived once from its struct
// type; conversion walks the fields in declaration order, looks each one up
// in the source map, coerces the dynamic value to the declared type and
// reports the first missing or incompatible field. No partial record is
// ever produced and the source map is never mutated.
package fieldmap

import (
	"fmt"
	"reflect"
	"slices"
	"strings"
	"sync"
	"unicode"

	"statecast/primitive"
)

// TagName is the struct tag consulted for source map keys.
const TagName = "state"

// Field is one entry of a record's field specification.
type Field struct {
	// Name is the key looked up in the source map.
	Name string
	// Kind is the declared primitive kind, or the zero kind for composite
	// fields that go through the decode contract.
	Kind primitive.KindEnum
	// Type is the Go type of the record attribute.
	Type reflect.Type

	index int
}

// Spec is the fixed, ordered field specification of one record shape.
type Spec struct {
	rtype  reflect.Type
	fields []Field
}

// Fields returns the field list in declaration order.
func (s Spec) Fields() []Field { return slices.Clone(s.fields) }

// Type returns the record type the spec was derived from.
func (s Spec) Type() reflect.Type { return s.rtype }

var specCache sync.Map // reflect.Type -> Spec

// SpecOf derives the field specification of a record type. Field order
// follows struct declaration order; the `state` tag overrides the source
// key, which otherwise defaults to the lower_snake_case of the Go field
// name. Specs are cached per type.
func SpecOf[T any]() (Spec, error) {
	return specOfType(reflect.TypeFor[T]())
}

func specOfType(rtype reflect.Type) (Spec, error) {
	if cached, ok := specCache.Load(rtype); ok {
		return cached.(Spec), nil
	}

	if rtype.Kind() != reflect.Struct {
		return Spec{}, fmt.Errorf("record type must be a struct, got %s", rtype)
	}

	spec := Spec{rtype: rtype}
	seen := make(map[string]struct{}, rtype.NumField())

	for i := 0; i < rtype.NumField(); i++ {
		sf := rtype.Field(i)
		if !sf.IsExported() {
			return Spec{}, fmt.Errorf("record type %s has unexported field %s", rtype, sf.Name)
		}

		name := sf.Tag.Get(TagName)
		if name == "" {
			name = SnakeCase(sf.Name)
		}

		if _, dup := seen[name]; dup {
			return Spec{}, fmt.Errorf("record type %s maps key %q twice", rtype, name)
		}
		seen[name] = struct{}{}

		spec.fields = append(spec.fields, Field{
			Name:  name,
			Kind:  primitive.FromReflectType(sf.Type),
			Type:  sf.Type,
			index: i,
		})
	}

	specCache.Store(rtype, spec)

	return spec, nil
}

// SnakeCase converts a Go field name to its default source map key:
// FurLengthCm -> fur_length_cm, HTTPPort -> http_port.
func SnakeCase(name string) string {
	var b strings.Builder
	runes := []rune(name)

	for i, r := range runes {
		if !unicode.IsUpper(r) {
			b.WriteRune(r)
			continue
		}

		boundary := i > 0 && (!unicode.IsUpper(runes[i-1]) ||
			(i+1 < len(runes) && unicode.IsLower(runes[i+1])))
		if boundary {
			b.WriteByte('_')
		}

		b.WriteRune(unicode.ToLower(r))
	}

	return b.String()
}
