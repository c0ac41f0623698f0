package compare

import (
	"testing"

	"github.com/agriprofit/transport-compare/internal/config"
)

func TestSelectVehicle(t *testing.T) {
	capacities := config.DefaultSettings().Capacities

	tests := []struct {
		name          string
		quantityTons  float64
		expectedClass VehicleClass
		expectedTrips int
	}{
		{
			name:          "100 kg fits the smallest class",
			quantityTons:  0.1,
			expectedClass: VehicleTataAce,
			expectedTrips: 1,
		},
		{
			name:          "Exactly at tataAce capacity",
			quantityTons:  0.75,
			expectedClass: VehicleTataAce,
			expectedTrips: 1,
		},
		{
			name:          "Just above tataAce capacity",
			quantityTons:  0.76,
			expectedClass: VehicleMiniTruck,
			expectedTrips: 1,
		},
		{
			name:          "Five tons needs an LCV",
			quantityTons:  5,
			expectedClass: VehicleLCV,
			expectedTrips: 1,
		},
		{
			name:          "Ten tons needs a truck",
			quantityTons:  10,
			expectedClass: VehicleTruck,
			expectedTrips: 1,
		},
		{
			name:          "Fifteen tons needs a ten wheeler",
			quantityTons:  15,
			expectedClass: VehicleTenWheeler,
			expectedTrips: 1,
		},
		{
			name:          "Forty tons fills one multi axle",
			quantityTons:  40,
			expectedClass: VehicleMultiAxle,
			expectedTrips: 1,
		},
		{
			name:          "Fifty tons takes two multi axle trips",
			quantityTons:  50,
			expectedClass: VehicleMultiAxle,
			expectedTrips: 2,
		},
		{
			name:          "Hundred tons takes three trips",
			quantityTons:  100,
			expectedClass: VehicleMultiAxle,
			expectedTrips: 3,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			sel := SelectVehicle(tt.quantityTons, capacities)
			if sel.Class != tt.expectedClass {
				t.Errorf("SelectVehicle(%v) class = %v, expected %v", tt.quantityTons, sel.Class, tt.expectedClass)
			}
			if sel.Trips != tt.expectedTrips {
				t.Errorf("SelectVehicle(%v) trips = %d, expected %d", tt.quantityTons, sel.Trips, tt.expectedTrips)
			}
			if sel.Trips < 1 {
				t.Errorf("trips must never be below 1, got %d", sel.Trips)
			}
		})
	}
}

func TestSelectVehicleCustomLadder(t *testing.T) {
	capacities := config.Capacities{
		TataAce:    1,
		MiniTruck:  3,
		LCV:        8,
		Truck:      14,
		TenWheeler: 22,
		MultiAxle:  45,
	}

	sel := SelectVehicle(1, capacities)
	if sel.Class != VehicleTataAce {
		t.Errorf("1 ton on custom ladder = %v, expected tataAce", sel.Class)
	}

	sel = SelectVehicle(90, capacities)
	if sel.Class != VehicleMultiAxle || sel.Trips != 2 {
		t.Errorf("90 tons on custom ladder = %v x%d, expected multiAxle x2", sel.Class, sel.Trips)
	}
}

func TestTollWeightClass(t *testing.T) {
	tests := []struct {
		class    VehicleClass
		expected WeightClass
	}{
		{VehicleTataAce, WeightLight},
		{VehicleMiniTruck, WeightLight},
		{VehicleLCV, WeightMedium},
		{VehicleTruck, WeightMedium},
		{VehicleTenWheeler, WeightHeavy},
		{VehicleMultiAxle, WeightHeavy},
	}

	for _, tt := range tests {
		if got := TollWeightClass(tt.class); got != tt.expected {
			t.Errorf("TollWeightClass(%v) = %v, expected %v", tt.class, got, tt.expected)
		}
	}
}

func TestFreightRateLookup(t *testing.T) {
	rates := config.DefaultSettings().FreightRates
	if FreightRate(VehicleTataAce, rates) != rates.TataAce {
		t.Error("tataAce rate lookup mismatch")
	}
	if FreightRate(VehicleMultiAxle, rates) != rates.MultiAxle {
		t.Error("multiAxle rate lookup mismatch")
	}
}

func TestTollRateLookup(t *testing.T) {
	rates := config.DefaultSettings().TollPerPlaza
	if TollRate(WeightLight, rates) != rates.Light {
		t.Error("light toll rate lookup mismatch")
	}
	if TollRate(WeightHeavy, rates) != rates.Heavy {
		t.Error("heavy toll rate lookup mismatch")
	}
}
