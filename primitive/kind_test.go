package primitive_test

import (
	"fmt"
	"reflect"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"

	"statecast/primitive"
)

func Example() {
	type Score uint8
	type Empty struct{}

	fmt.Println(primitive.FromReflectType(reflect.TypeOf(int(0))))
	fmt.Println(primitive.FromReflectType(reflect.TypeOf("")))
	fmt.Println(primitive.FromReflectType(reflect.TypeOf(uint8(0))))
	fmt.Println(primitive.FromReflectType(reflect.TypeOf(Score(0))))
	fmt.Println(primitive.FromReflectType(reflect.TypeOf(time.Duration(0))))
	fmt.Println(primitive.FromReflectType(reflect.TypeOf(time.Time{})))
	fmt.Println(primitive.FromReflectType(reflect.TypeOf(Empty{})))
	// Output:
	// KindInt
	// KindString
	// KindUint8
	// KindEnum(0)
	// KindDuration
	// KindTime
	// KindEnum(0)
}

func TestLabels(t *testing.T) {
	t.Parallel()

	for kind := primitive.KindEnum(1); int(kind) < primitive.KindTotal; kind++ {
		label := kind.Label()
		assert.NotEmpty(t, label, "kind %s has no label", kind)

		parsed, ok := primitive.ParseLabel(label)
		assert.True(t, ok, "label %q does not parse", label)
		assert.Equal(t, kind, parsed)
	}

	u8, ok := primitive.ParseLabel("u8")
	assert.True(t, ok)
	assert.Equal(t, primitive.KindUint8, u8)

	text, ok := primitive.ParseLabel("text")
	assert.True(t, ok)
	assert.Equal(t, primitive.KindString, text)

	_, ok = primitive.ParseLabel("quaternion")
	assert.False(t, ok)
}

func TestGoTypeMatchesClassification(t *testing.T) {
	t.Parallel()

	for kind := primitive.KindEnum(1); int(kind) < primitive.KindTotal; kind++ {
		rtype := kind.GoType()
		assert.NotNil(t, rtype, "kind %s has no Go type", kind)
		assert.Equal(t, kind, primitive.FromReflectType(rtype))
	}
}

func TestFromReflectKind(t *testing.T) {
	t.Parallel()

	// numeric kinds map to the kind sharing their representation, even for
	// named types
	type rating int8

	assert.Equal(t, primitive.KindInt8, primitive.FromReflectKind(reflect.TypeOf(rating(0)).Kind()))
	assert.Equal(t, primitive.KindUint, primitive.FromReflectKind(reflect.Uint))
	assert.Equal(t, primitive.KindFloat64, primitive.FromReflectKind(reflect.Float64))

	assert.Equal(t, primitive.KindEnum(0), primitive.FromReflectKind(reflect.String))
	assert.Equal(t, primitive.KindEnum(0), primitive.FromReflectKind(reflect.Bool))
	assert.Equal(t, primitive.KindEnum(0), primitive.FromReflectKind(reflect.Struct))
}
