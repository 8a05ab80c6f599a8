package analytics

import (
	"math"
	"testing"
)

func almostEqual(a, b float64) bool {
	return math.Abs(a-b) < 1e-9
}

func TestParseNumber(t *testing.T) {
	tests := []struct {
		name     string
		raw      string
		expected float64
	}{
		{"Integer", "12621", 12621},
		{"Float", "57495.5", 57495.5},
		{"Padded", "  42  ", 42},
		{"Negative", "-3.5", -3.5},
		{"Empty", "", 0},
		{"Garbage", "n/a", 0},
		{"TrailingJunk", "12abc", 0},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if got := ParseNumber(tt.raw); got != tt.expected {
				t.Errorf("ParseNumber(%q) = %v, want %v", tt.raw, got, tt.expected)
			}
		})
	}
}

func TestParsePercentOrFraction(t *testing.T) {
	tests := []struct {
		name     string
		raw      string
		expected float64
	}{
		{"Fraction", "0.16", 0.16},
		{"Percent", "16", 0.16},
		{"ExactlyOne", "1", 1},
		{"ClampHigh", "150", 1},
		{"ClampNegative", "-5", 0},
		{"Empty", "", 0},
		{"Garbage", "??", 0},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if got := ParsePercentOrFraction(tt.raw); !almostEqual(got, tt.expected) {
				t.Errorf("ParsePercentOrFraction(%q) = %v, want %v", tt.raw, got, tt.expected)
			}
		})
	}
}

func TestNormalizeProperty(t *testing.T) {
	tests := []struct {
		name     string
		raw      string
		expected string
	}{
		{"Canonical", "P001", "P001"},
		{"Lowercase", "p002", "P002"},
		{"Padded", "  P001 ", "P001"},
		{"AllProperties", "ALL PROPERTIES", "All Properties"},
		{"AllShorthand", "all", "All Properties"},
		{"UnknownPassesThroughLowered", "  Beach Villa ", "beach villa"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if got := NormalizeProperty(tt.raw); got != tt.expected {
				t.Errorf("NormalizeProperty(%q) = %q, want %q", tt.raw, got, tt.expected)
			}
		})
	}
}
