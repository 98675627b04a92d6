// Package grooming is the worked example domain: a cat grooming session
// whose state lives in a loosely-typed map on the command layer and is
// converted into typed records on demand. The conversion functions in
// records_gen.go are produced by statecast-gen from grooming.yaml.
package grooming

import (
	"time"

	"statecast/statemap"
)

//go:generate go run statecast/cmd/statecast-gen gen grooming.yaml

// GroomingRecord is the typed shape of a grooming state map.
type GroomingRecord struct {
	FurLengthCm   int32  `state:"fur_length_cm"`
	BrushType     string `state:"brush_type"`
	SheddingScore uint8  `state:"shedding_score"`
	NailTrimmed   bool   `state:"nail_trimmed"`
	FavoriteSpot  string `state:"favorite_spot"`
}

// GroomingSession wraps a finished record with its bookkeeping fields.
type GroomingSession struct {
	Groomer   string         `state:"groomer"`
	StartedAt time.Time      `state:"started_at"`
	Duration  time.Duration  `state:"duration"`
	Record    GroomingRecord `state:"record"`
}

// NewStateMap returns the grooming defaults a fresh session starts from.
func NewStateMap() statemap.Map {
	return statemap.Map{
		"fur_length_cm":  2, // centimeters
		"brush_type":     "slicker",
		"shedding_score": 3,
		"nail_trimmed":   false,
		"favorite_spot":  "windowsill",
	}
}
