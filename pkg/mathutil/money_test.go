package mathutil

import (
	"testing"
)

func TestRoundRupee(t *testing.T) {
	tests := []struct {
		name     string
		input    float64
		expected float64
	}{
		{
			name:     "Rounds down below half",
			input:    37.4,
			expected: 37,
		},
		{
			name:     "Rounds half away from zero",
			input:    37.5,
			expected: 38,
		},
		{
			name:     "Mandi fee on 2500 gross",
			input:    2500 * 0.015,
			expected: 38,
		},
		{
			name:     "Commission on 2500 gross",
			input:    2500 * 0.025,
			expected: 63,
		},
		{
			name:     "Zero stays zero",
			input:    0,
			expected: 0,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if got := RoundRupee(tt.input); got != tt.expected {
				t.Errorf("RoundRupee(%v) = %v, expected %v", tt.input, got, tt.expected)
			}
		})
	}
}

func TestCalculatePercentage(t *testing.T) {
	tests := []struct {
		name     string
		value    float64
		total    float64
		expected float64
	}{
		{
			name:     "Half",
			value:    50,
			total:    100,
			expected: 50,
		},
		{
			name:     "Zero total yields zero instead of Inf",
			value:    50,
			total:    0,
			expected: 0,
		},
		{
			name:     "Negative value",
			value:    -250,
			total:    1000,
			expected: -25,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if got := CalculatePercentage(tt.value, tt.total); got != tt.expected {
				t.Errorf("CalculatePercentage(%v, %v) = %v, expected %v", tt.value, tt.total, got, tt.expected)
			}
		})
	}
}

func TestCeilDiv(t *testing.T) {
	tests := []struct {
		name        string
		numerator   float64
		denominator float64
		expected    int
	}{
		{
			name:        "Exact fit",
			numerator:   40,
			denominator: 40,
			expected:    1,
		},
		{
			name:        "Fifty tons over forty ton capacity",
			numerator:   50,
			denominator: 40,
			expected:    2,
		},
		{
			name:        "Tiny load never yields zero",
			numerator:   0.1,
			denominator: 40,
			expected:    1,
		},
		{
			name:        "Zero denominator guarded",
			numerator:   10,
			denominator: 0,
			expected:    1,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if got := CeilDiv(tt.numerator, tt.denominator); got != tt.expected {
				t.Errorf("CeilDiv(%v, %v) = %d, expected %d", tt.numerator, tt.denominator, got, tt.expected)
			}
		})
	}
}

func TestWithinTolerance(t *testing.T) {
	if !WithinTolerance(100.0, 100.4, 0.5) {
		t.Error("expected 100.0 and 100.4 to be within 0.5")
	}
	if WithinTolerance(100.0, 101.0, 0.5) {
		t.Error("expected 100.0 and 101.0 to be outside 0.5")
	}
}
