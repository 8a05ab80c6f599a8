package analytics

import (
	"strconv"
	"strings"

	"github.com/rs/zerolog/log"
)

// propertyTable maps lowercased property spellings to their canonical IDs.
// The set of recognized properties is closed and small.
var propertyTable = map[string]string{
	"p001":           string(PropertyP001),
	"p002":           string(PropertyP002),
	"all properties": string(PropertyAll),
	"all":            string(PropertyAll),
}

// ParseNumber parses raw as a float. Empty or unparsable input yields 0;
// it never fails.
func ParseNumber(raw string) float64 {
	v, err := strconv.ParseFloat(strings.TrimSpace(raw), 64)
	if err != nil {
		return 0
	}
	return v
}

// ParsePercentOrFraction parses a cancellation-rate cell that may be written
// either as a fraction ("0.16") or a percentage ("16") with no unit marker.
// Values > 1 are treated as percentages and divided by 100; the result is
// clamped to [0, 1]. Unparsable input yields 0.
func ParsePercentOrFraction(raw string) float64 {
	v, err := strconv.ParseFloat(strings.TrimSpace(raw), 64)
	if err != nil {
		return 0
	}
	if v > 1 {
		v = v / 100
	}
	if v < 0 {
		return 0
	}
	if v > 1 {
		return 1
	}
	return v
}

// NormalizeProperty resolves a property cell to one of the canonical property
// IDs via case-insensitive lookup. Unrecognized values pass through
// lowercased and trimmed.
func NormalizeProperty(raw string) string {
	key := strings.ToLower(strings.TrimSpace(raw))
	if canonical, ok := propertyTable[key]; ok {
		return canonical
	}
	log.Debug().Str("property", key).Msg("Unrecognized property value, passing through")
	return key
}
