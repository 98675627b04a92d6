package grooming_test

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"statecast/fieldmap"
	"statecast/grooming"
	"statecast/statemap"
)

func sessionState() map[string]any {
	return map[string]any{
		"groomer":    "jamie",
		"started_at": "2026-08-26T09:30:00Z",
		"duration":   "45m",
		"record": map[string]any{
			"fur_length_cm":  12,
			"brush_type":     "slicker",
			"shedding_score": 4,
			"nail_trimmed":   true,
			"favorite_spot":  "sunbeam",
		},
	}
}

func TestGroomingRecordFromState(t *testing.T) {
	t.Parallel()

	rec, err := grooming.GroomingRecordFromState(sessionState()["record"].(map[string]any))
	require.NoError(t, err)

	assert.Equal(t, grooming.GroomingRecord{
		FurLengthCm:   12,
		BrushType:     "slicker",
		SheddingScore: 4,
		NailTrimmed:   true,
		FavoriteSpot:  "sunbeam",
	}, rec)
}

func TestGroomingRecordFromStateFailures(t *testing.T) {
	t.Parallel()

	src := sessionState()["record"].(map[string]any)
	delete(src, "brush_type")

	_, err := grooming.GroomingRecordFromState(src)
	require.ErrorIs(t, err, fieldmap.ErrMissingField)
	assert.EqualError(t, err, "Missing brush_type")

	src = sessionState()["record"].(map[string]any)
	src["shedding_score"] = "high"

	_, err = grooming.GroomingRecordFromState(src)
	require.ErrorIs(t, err, fieldmap.ErrInvalidFieldType)
	assert.EqualError(t, err, "Invalid shedding_score: expected u8")

	src = sessionState()["record"].(map[string]any)
	src["shedding_score"] = 999

	_, err = grooming.GroomingRecordFromState(src)
	assert.EqualError(t, err, "Invalid shedding_score: expected u8")
}

func TestGroomingSessionFromState(t *testing.T) {
	t.Parallel()

	session, err := grooming.GroomingSessionFromState(sessionState())
	require.NoError(t, err)

	assert.Equal(t, "jamie", session.Groomer)
	assert.Equal(t, time.Date(2026, 8, 26, 9, 30, 0, 0, time.UTC), session.StartedAt)
	assert.Equal(t, 45*time.Minute, session.Duration)
	assert.Equal(t, uint8(4), session.Record.SheddingScore)
}

func TestNewStateMapConverts(t *testing.T) {
	t.Parallel()

	m := grooming.NewStateMap()

	rec, err := statemap.To[grooming.GroomingRecord](m)
	require.NoError(t, err)

	assert.Equal(t, grooming.GroomingRecord{
		FurLengthCm:   2,
		BrushType:     "slicker",
		SheddingScore: 3,
		NailTrimmed:   false,
		FavoriteSpot:  "windowsill",
	}, rec)

	// generated and runtime conversions agree
	gen, err := grooming.GroomingRecordFromState(m)
	require.NoError(t, err)
	assert.Equal(t, rec, gen)
}
