package fieldmap_test

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"statecast/fieldmap"
	"statecast/options"
)

func TestExtract(t *testing.T) {
	t.Parallel()

	source := groomingSource()

	score, err := fieldmap.Extract[uint8](source, "shedding_score")
	require.NoError(t, err)
	assert.Equal(t, uint8(4), score)

	spot, err := fieldmap.Extract[string](source, "favorite_spot")
	require.NoError(t, err)
	assert.Equal(t, "sunbeam", spot)

	_, err = fieldmap.Extract[string](source, "groomer")
	assert.EqualError(t, err, "Missing groomer")

	_, err = fieldmap.Extract[uint8](source, "favorite_spot")
	assert.EqualError(t, err, "Invalid favorite_spot: expected u8")
}

func TestExtractComposite(t *testing.T) {
	t.Parallel()

	source := map[string]any{"tags": []any{"indoor", "longhair"}}

	tags, err := fieldmap.Extract[[]string](source, "tags")
	require.NoError(t, err)
	assert.Equal(t, []string{"indoor", "longhair"}, tags)

	_, err = fieldmap.Extract[[]string](map[string]any{"tags": 7}, "tags")
	require.ErrorIs(t, err, fieldmap.ErrInvalidFieldType)
}

func TestExtractNamedNumeric(t *testing.T) {
	t.Parallel()

	type grade uint8

	g, err := fieldmap.Extract[grade](map[string]any{"grade": float64(4)}, "grade")
	require.NoError(t, err)
	assert.Equal(t, grade(4), g)

	// exactness holds for named numerics: no truncation, no wraparound
	_, err = fieldmap.Extract[grade](map[string]any{"grade": 1.9}, "grade")
	require.ErrorIs(t, err, fieldmap.ErrInvalidFieldType)

	_, err = fieldmap.Extract[grade](map[string]any{"grade": 999}, "grade")
	require.ErrorIs(t, err, fieldmap.ErrInvalidFieldType)
}

func TestExtractWith(t *testing.T) {
	t.Parallel()

	source := map[string]any{"count": "12"}

	_, err := fieldmap.Extract[int](source, "count")
	require.Error(t, err)

	count, err := fieldmap.ExtractWith[int](source, "count",
		options.CategoryDefault|options.CategoryTextNumber)
	require.NoError(t, err)
	assert.Equal(t, 12, count)
}

func TestExtractRecord(t *testing.T) {
	t.Parallel()

	fromState := func(src map[string]any) (groomingRecord, error) {
		return fieldmap.Convert[groomingRecord](src)
	}

	source := map[string]any{"record": groomingSource()}

	rec, err := fieldmap.ExtractRecord(source, "record", fromState)
	require.NoError(t, err)
	assert.Equal(t, "slicker", rec.BrushType)

	_, err = fieldmap.ExtractRecord(map[string]any{}, "record", fromState)
	assert.EqualError(t, err, "Missing record")

	_, err = fieldmap.ExtractRecord(map[string]any{"record": "flat"}, "record", fromState)
	require.ErrorIs(t, err, fieldmap.ErrInvalidFieldType)

	// a failure inside the nested record surfaces unchanged
	nested := groomingSource()
	delete(nested, "brush_type")

	_, err = fieldmap.ExtractRecord(map[string]any{"record": nested}, "record", fromState)
	assert.EqualError(t, err, "Missing brush_type")
}