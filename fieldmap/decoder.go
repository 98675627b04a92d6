package fieldmap

import (
	"fmt"
	"reflect"

	"github.com/go-viper/mapstructure/v2"

	"statecast/options"
	"statecast/primitive"
)

// Decoder is the uniform decode-from-dynamic-value contract for composite
// and user-defined field types. A record attribute whose pointer type
// implements Decoder is populated by handing it the raw dynamic value;
// everything else falls back to a mapstructure decode with the `state` tag,
// which covers nested structs, slices, maps and named types transparently.
type Decoder interface {
	DecodeState(v any) error
}

// decodeComposite fills the value behind ptr from the raw dynamic value.
// Named numeric types go through the exact coercer rather than mapstructure,
// whose numeric conversions truncate and wrap.
func decodeComposite(raw any, ptr reflect.Value, allowed options.CategoryEnum) error {
	if dec, ok := ptr.Interface().(Decoder); ok {
		return dec.DecodeState(raw)
	}

	elem := ptr.Elem()
	if kind := primitive.FromReflectKind(elem.Kind()); kind != 0 {
		coerced, ok := primitive.Coerce(raw, kind, allowed)
		if !ok {
			return fmt.Errorf("%v does not fit %s exactly", raw, elem.Type())
		}

		elem.Set(reflect.ValueOf(coerced).Convert(elem.Type()))

		return nil
	}

	msd, err := mapstructure.NewDecoder(&mapstructure.DecoderConfig{
		Result:  ptr.Interface(),
		TagName: TagName,
	})
	if err != nil {
		return err
	}

	return msd.Decode(raw)
}

// nullable reports whether a composite field type tolerates a null dynamic
// value. Everything else treats null as a type mismatch: records have no
// optional fields and no defaults.
func nullable(rtype reflect.Type) bool {
	switch rtype.Kind() {
	default:
		return false
	case reflect.Pointer, reflect.Interface, reflect.Map, reflect.Slice:
		return true
	}
}

func typeLabel(rtype reflect.Type) string {
	if kind := primitive.FromReflectType(rtype); kind != 0 {
		return kind.Label()
	}

	return rtype.String()
}
