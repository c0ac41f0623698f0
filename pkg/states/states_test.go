package states

import (
	"testing"

	"github.com/agriprofit/transport-compare/pkg/constants"
)

func TestAllCoversStatesAndUnionTerritories(t *testing.T) {
	all := All()
	// 28 states plus 8 union territories
	if len(all) != 36 {
		t.Errorf("expected 36 states and union territories, got %d", len(all))
	}

	for i := 1; i < len(all); i++ {
		if all[i-1] >= all[i] {
			t.Errorf("states not sorted: %q before %q", all[i-1], all[i])
		}
	}

	for _, name := range all {
		districts, ok := Districts(name)
		if !ok {
			t.Errorf("state %q missing district list", name)
			continue
		}
		if len(districts) == 0 {
			t.Errorf("state %q has empty district list", name)
		}
	}
}

func TestDistrictsLookup(t *testing.T) {
	tests := []struct {
		name     string
		state    string
		found    bool
		contains string
	}{
		{
			name:     "Exact match",
			state:    "Maharashtra",
			found:    true,
			contains: "Nashik",
		},
		{
			name:     "Case-insensitive match",
			state:    "punjab",
			found:    true,
			contains: "Ludhiana",
		},
		{
			name:  "Unknown state",
			state: "Atlantis",
			found: false,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			districts, ok := Districts(tt.state)
			if ok != tt.found {
				t.Fatalf("Districts(%q) found = %v, expected %v", tt.state, ok, tt.found)
			}
			if !tt.found {
				return
			}
			for _, d := range districts {
				if d == tt.contains {
					return
				}
			}
			t.Errorf("Districts(%q) missing %q", tt.state, tt.contains)
		})
	}
}

func TestDistrictsCopyIsIndependent(t *testing.T) {
	first, _ := Districts("Goa")
	first[0] = "mutated"
	second, _ := Districts("Goa")
	if second[0] == "mutated" {
		t.Error("Districts must return a copy of the underlying data")
	}
}

func TestTollDensityFactor(t *testing.T) {
	tests := []struct {
		name     string
		state    string
		expected float64
	}{
		{
			name:     "Dense highway state",
			state:    "Gujarat",
			expected: 0.9,
		},
		{
			name:     "Case-insensitive",
			state:    "maharashtra",
			expected: 0.85,
		},
		{
			name:     "Unknown state falls back to default",
			state:    "Sikkim",
			expected: constants.DefaultTollDensityFactor,
		},
		{
			name:     "Empty state falls back to default",
			state:    "",
			expected: constants.DefaultTollDensityFactor,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if got := TollDensityFactor(tt.state); got != tt.expected {
				t.Errorf("TollDensityFactor(%q) = %v, expected %v", tt.state, got, tt.expected)
			}
		})
	}
}
