package compare

import (
	"testing"

	"github.com/agriprofit/transport-compare/internal/config"
)

func TestComputeCostsReferenceScenario(t *testing.T) {
	// 100 kg of produce, 50 km, ₹25/kg, default settings.
	settings := config.DefaultSettings()
	sel := SelectVehicle(0.1, settings.Capacities)

	if sel.Class != VehicleTataAce {
		t.Fatalf("expected tataAce for 100 kg, got %v", sel.Class)
	}
	if sel.Trips != 1 {
		t.Fatalf("expected 1 trip, got %d", sel.Trips)
	}

	gross := 2500.0
	costs := computeCosts(50, 100, gross, "", sel, &settings)

	if costs.Freight != 1250 {
		t.Errorf("freight = %v, expected 1250 (50 km at tataAce rate)", costs.Freight)
	}
	// floor(50/60 * 0.5) = 0 plazas for an unknown state
	if costs.Toll != 0 {
		t.Errorf("toll = %v, expected 0", costs.Toll)
	}
	if costs.MandiFee != 38 {
		t.Errorf("mandi fee = %v, expected 38", costs.MandiFee)
	}
	if costs.Commission != 63 {
		t.Errorf("commission = %v, expected 63", costs.Commission)
	}
	if costs.Loading != 315 {
		t.Errorf("loading = %v, expected 315 (1 quintal + 1 trip)", costs.Loading)
	}
	if costs.Unloading != 265 {
		t.Errorf("unloading = %v, expected 265", costs.Unloading)
	}
	if costs.Additional != 550 {
		t.Errorf("additional = %v, expected 550 (weighbridge both ways + parking + misc)", costs.Additional)
	}
}

func TestComputeCostsTotalIsExactSum(t *testing.T) {
	settings := config.DefaultSettings()

	tests := []struct {
		name       string
		distanceKm float64
		quantityKg float64
		gross      float64
		state      string
	}{
		{"Short local haul", 15, 250, 6250, "Punjab"},
		{"Long interstate haul", 420, 12000, 264000, "Gujarat"},
		{"Zero distance", 0, 500, 12500, "Kerala"},
		{"Multi trip load", 300, 50000, 1250000, "Maharashtra"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			sel := SelectVehicle(tt.quantityKg/1000, settings.Capacities)
			costs := computeCosts(tt.distanceKm, tt.quantityKg, tt.gross, tt.state, sel, &settings)

			sum := costs.Freight + costs.Toll + costs.Loading + costs.Unloading +
				costs.MandiFee + costs.Commission + costs.Additional
			if costs.Total != sum {
				t.Errorf("total = %v, sum of fields = %v", costs.Total, sum)
			}
		})
	}
}

func TestComputeCostsTollDensity(t *testing.T) {
	settings := config.DefaultSettings()
	sel := SelectVehicle(10, settings.Capacities) // truck, medium toll class

	// Gujarat factor 0.9: floor(300/60 * 0.9) = 4 plazas at ₹120 each.
	costs := computeCosts(300, 10000, 250000, "Gujarat", sel, &settings)
	if costs.Toll != 480 {
		t.Errorf("Gujarat toll = %v, expected 480", costs.Toll)
	}

	// Unknown state factor 0.5: floor(300/60 * 0.5) = 2 plazas.
	costs = computeCosts(300, 10000, 250000, "Narnia", sel, &settings)
	if costs.Toll != 240 {
		t.Errorf("unknown state toll = %v, expected 240", costs.Toll)
	}
}

func TestComputeCostsTollDensityOverride(t *testing.T) {
	settings := config.DefaultSettings()
	settings.TollDensityOverrides = map[string]float64{"gujarat": 0.2}
	sel := SelectVehicle(10, settings.Capacities)

	// Override 0.2: floor(300/60 * 0.2) = 1 plaza.
	costs := computeCosts(300, 10000, 250000, "Gujarat", sel, &settings)
	if costs.Toll != 120 {
		t.Errorf("overridden toll = %v, expected 120", costs.Toll)
	}
}

func TestComputeCostsScalesByTrips(t *testing.T) {
	settings := config.DefaultSettings()
	sel := SelectVehicle(50, settings.Capacities)

	if sel.Trips != 2 {
		t.Fatalf("expected 2 trips for 50 tons, got %d", sel.Trips)
	}

	costs := computeCosts(100, 50000, 1250000, "", sel, &settings)

	// freight = 100 km * 85 ₹/km * 2 trips
	if costs.Freight != 17000 {
		t.Errorf("freight = %v, expected 17000", costs.Freight)
	}
	// additional = (100*2 + 150 + 200) * 2 trips
	if costs.Additional != 1100 {
		t.Errorf("additional = %v, expected 1100", costs.Additional)
	}
	// loading = 500 quintals * 15 + 300 * 2 trips
	if costs.Loading != 8100 {
		t.Errorf("loading = %v, expected 8100", costs.Loading)
	}
}

func TestEstimateArrival(t *testing.T) {
	tests := []struct {
		name       string
		distanceKm float64
		expected   string
	}{
		{
			name:       "Zero distance has no arrival time",
			distanceKm: 0,
			expected:   "N/A",
		},
		{
			name:       "Short hop collapses to a single hour",
			distanceKm: 30,
			expected:   "1 hour",
		},
		{
			name:       "Mid range distance is a range",
			distanceKm: 50,
			expected:   "1-2 hours",
		},
		{
			name:       "Long haul range",
			distanceKm: 400,
			expected:   "8-12 hours",
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if got := estimateArrival(tt.distanceKm); got != tt.expected {
				t.Errorf("estimateArrival(%v) = %q, expected %q", tt.distanceKm, got, tt.expected)
			}
		})
	}
}
