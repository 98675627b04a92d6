package primitive

import (
	"encoding/json"
	"math"
	"reflect"
	"strconv"
	"strings"
	"time"

	"statecast/options"
)

// Coerce interprets a dynamic value as the given kind and returns the value
// converted to the kind's exact Go type. The bool result reports whether the
// dynamic value is compatible with the kind under the allowed categories of
// coercion; there is no truncation, rounding or wraparound on any path.
//
// A value whose concrete type already equals the kind's Go type always
// passes. Cross-width numeric coercion is judged by value, not by
// representation, so a float64 holding 12 satisfies an i32 field while 12.5
// or an out-of-range 999-into-u8 do not.
func Coerce(v any, kind KindEnum, allowed options.CategoryEnum) (any, bool) {
	if v == nil || kind <= 0 || int(kind) >= KindTotal {
		return nil, false
	}

	if reflect.TypeOf(v) == kind.GoType() {
		return v, true
	}

	switch src := v.(type) {
	case time.Time, time.Duration:
		// identity was handled above; time values never coerce to other kinds
		return nil, false
	case json.Number:
		// produced by decoders, not user text: always treated as a number
		return coerceNumeric(string(src), kind, allowed)
	}

	rv := reflect.ValueOf(v)
	switch rv.Kind() {
	default:
		return nil, false
	case reflect.Int, reflect.Int8, reflect.Int16, reflect.Int32, reflect.Int64:
		return coerceFromInt(rv.Int(), kind, allowed)
	case reflect.Uint, reflect.Uint8, reflect.Uint16, reflect.Uint32, reflect.Uint64:
		return coerceFromUint(rv.Uint(), kind, allowed)
	case reflect.Float32, reflect.Float64:
		return coerceFromFloat(rv.Float(), kind, allowed)
	case reflect.Bool:
		return coerceFromBool(rv.Bool(), kind, allowed)
	case reflect.String:
		return coerceFromString(rv.String(), kind, allowed)
	}
}

func coerceFromInt(i int64, kind KindEnum, allowed options.CategoryEnum) (any, bool) {
	switch {
	case kind.IsInteger():
		if !allowed.Has(options.CategorySafeNumber) || !fitsInteger(i, kind) {
			return nil, false
		}

		return makeInteger(i, kind), true

	case kind.IsFloat():
		if !allowed.Has(options.CategorySafeNumber) {
			return nil, false
		}

		return floatExact(float64(i), kind, func(f float64) bool { return int64(f) == i })

	case kind == KindBool && allowed.Has(options.CategoryNumericBool):
		// 0, 1 - valid, other numbers are a mismatch
		switch i {
		default:
			return nil, false
		case 0:
			return false, true
		case 1:
			return true, true
		}

	case kind == KindTime && allowed.Has(options.CategoryTimestamp):
		return time.Unix(i, 0).UTC(), true

	case kind == KindDuration && allowed.Has(options.CategoryNanoseconds):
		return time.Duration(i), true
	}

	return nil, false
}

func coerceFromUint(u uint64, kind KindEnum, allowed options.CategoryEnum) (any, bool) {
	if u <= math.MaxInt64 {
		return coerceFromInt(int64(u), kind, allowed)
	}

	// past MaxInt64 only the wide unsigned kinds and exactly-representable
	// floats remain candidates
	switch {
	case kind.IsInteger():
		if !allowed.Has(options.CategorySafeNumber) || !fitsUnsigned(u, kind) {
			return nil, false
		}

		return makeUnsigned(u, kind), true

	case kind.IsFloat():
		if !allowed.Has(options.CategorySafeNumber) {
			return nil, false
		}

		return floatExact(float64(u), kind, func(f float64) bool {
			return f < 18446744073709551616 && uint64(f) == u // 2^64
		})
	}

	return nil, false
}

func coerceFromFloat(f float64, kind KindEnum, allowed options.CategoryEnum) (any, bool) {
	switch {
	case kind.IsInteger():
		if !allowed.Has(options.CategorySafeNumber) {
			return nil, false
		}

		if f != math.Trunc(f) || math.IsNaN(f) || math.IsInf(f, 0) {
			return nil, false
		}

		if kind.IsUnsigned() {
			if f < 0 || f >= 18446744073709551616 { // 2^64
				return nil, false
			}

			u := uint64(f)
			if !fitsUnsigned(u, kind) {
				return nil, false
			}

			return makeUnsigned(u, kind), true
		}

		if f < -9223372036854775808 || f >= 9223372036854775808 { // ±2^63
			return nil, false
		}

		i := int64(f)
		if !fitsInteger(i, kind) {
			return nil, false
		}

		return makeInteger(i, kind), true

	case kind.IsFloat():
		if !allowed.Has(options.CategorySafeNumber) {
			return nil, false
		}

		return floatExact(f, kind, nil)

	case kind == KindDuration && allowed.Has(options.CategorySeconds):
		return time.Duration(math.Round(f * float64(time.Second))), true
	}

	return nil, false
}

func coerceFromBool(b bool, kind KindEnum, allowed options.CategoryEnum) (any, bool) {
	if kind.IsInteger() && allowed.Has(options.CategoryNumericBool) {
		var i int64
		if b {
			i = 1
		}

		return makeInteger(i, kind), true
	}

	return nil, false
}

func coerceFromString(s string, kind KindEnum, allowed options.CategoryEnum) (any, bool) {
	switch {
	case kind.IsNumber() && allowed.Has(options.CategoryTextNumber):
		return coerceNumeric(s, kind, allowed)

	case kind == KindBool && allowed.Has(options.CategoryTextualBool):
		switch strings.ToLower(s) {
		default:
			return nil, false
		case "true", "yes", "on":
			return true, true
		case "false", "no", "off":
			return false, true
		}

	case kind == KindTime && allowed.Has(options.CategoryDatetime):
		t, err := time.Parse(time.RFC3339Nano, s)
		if err != nil {
			return nil, false
		}

		return t, true

	case kind == KindDuration && allowed.Has(options.CategoryDuration):
		d, err := time.ParseDuration(s)
		if err != nil {
			return nil, false
		}

		return d, true
	}

	return nil, false
}

// coerceNumeric routes a textual number literal through the value-exact
// numeric paths.
func coerceNumeric(lit string, kind KindEnum, allowed options.CategoryEnum) (any, bool) {
	if i, err := strconv.ParseInt(lit, 10, 64); err == nil {
		return coerceFromInt(i, kind, allowed)
	}

	if u, err := strconv.ParseUint(lit, 10, 64); err == nil {
		return coerceFromUint(u, kind, allowed)
	}

	if f, err := strconv.ParseFloat(lit, 64); err == nil {
		return coerceFromFloat(f, kind, allowed)
	}

	return nil, false
}

// floatExact converts f to the requested float kind, rejecting any
// representation loss. The optional check verifies the round trip back to
// the origin domain.
func floatExact(f float64, kind KindEnum, check func(float64) bool) (any, bool) {
	if math.IsNaN(f) || math.IsInf(f, 0) {
		return nil, false
	}

	switch kind {
	default:
		return nil, false
	case KindFloat64:
		if check != nil && !check(f) {
			return nil, false
		}

		return f, true
	case KindFloat32:
		narrowed := float64(float32(f))
		if narrowed != f || (check != nil && !check(narrowed)) {
			return nil, false
		}

		return float32(f), true
	}
}

func fitsInteger(i int64, kind KindEnum) bool {
	if kind.IsUnsigned() {
		return i >= 0 && fitsUnsigned(uint64(i), kind)
	}

	if bits := kind.Bits(); bits < 64 {
		return i >= int64(-1)<<(bits-1) && i <= int64(1)<<(bits-1)-1
	}

	return true
}

func fitsUnsigned(u uint64, kind KindEnum) bool {
	if kind.IsSigned() {
		return u <= math.MaxInt64 && fitsInteger(int64(u), kind)
	}

	return u <= ^uint64(0)>>(64-kind.Bits())
}

func makeInteger(i int64, kind KindEnum) any {
	switch kind {
	default:
		panic("not an integer kind: " + kind.String())
	case KindInt:
		return int(i)
	case KindInt8:
		return int8(i)
	case KindInt16:
		return int16(i)
	case KindInt32:
		return int32(i)
	case KindInt64:
		return i
	case KindUint, KindUint8, KindUint16, KindUint32, KindUint64:
		return makeUnsigned(uint64(i), kind)
	}
}

func makeUnsigned(u uint64, kind KindEnum) any {
	switch kind {
	default:
		panic("not an unsigned kind: " + kind.String())
	case KindUint:
		return uint(u)
	case KindUint8:
		return uint8(u)
	case KindUint16:
		return uint16(u)
	case KindUint32:
		return uint32(u)
	case KindUint64:
		return u
	}
}
