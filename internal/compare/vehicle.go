package compare

import (
	"github.com/agriprofit/transport-compare/internal/config"
	"github.com/agriprofit/transport-compare/pkg/mathutil"
)

// VehicleClass identifies a freight vehicle class.
type VehicleClass string

const (
	VehicleTataAce    VehicleClass = "tataAce"
	VehicleMiniTruck  VehicleClass = "miniTruck"
	VehicleLCV        VehicleClass = "lcv"
	VehicleTruck      VehicleClass = "truck"
	VehicleTenWheeler VehicleClass = "tenWheeler"
	VehicleMultiAxle  VehicleClass = "multiAxle"
)

// WeightClass is the toll category of a vehicle.
type WeightClass string

const (
	WeightLight  WeightClass = "light"
	WeightMedium WeightClass = "medium"
	WeightHeavy  WeightClass = "heavy"
)

// VehicleSelection is the outcome of matching a load to the capacity ladder.
type VehicleSelection struct {
	Class        VehicleClass
	CapacityTons float64
	Trips        int
}

// SelectVehicle picks the smallest vehicle class whose capacity covers the
// load. A load above the largest class uses the largest class across
// multiple trips. Trips is always at least 1.
func SelectVehicle(quantityTons float64, capacities config.Capacities) VehicleSelection {
	ladder := []struct {
		class    VehicleClass
		capacity float64
	}{
		{VehicleTataAce, capacities.TataAce},
		{VehicleMiniTruck, capacities.MiniTruck},
		{VehicleLCV, capacities.LCV},
		{VehicleTruck, capacities.Truck},
		{VehicleTenWheeler, capacities.TenWheeler},
		{VehicleMultiAxle, capacities.MultiAxle},
	}

	for _, rung := range ladder {
		if rung.capacity > 0 && quantityTons <= rung.capacity {
			return VehicleSelection{Class: rung.class, CapacityTons: rung.capacity, Trips: 1}
		}
	}

	largest := ladder[len(ladder)-1]
	return VehicleSelection{
		Class:        largest.class,
		CapacityTons: largest.capacity,
		Trips:        mathutil.CeilDiv(quantityTons, largest.capacity),
	}
}

// TollWeightClass maps a vehicle class to its toll category. The mapping is
// fixed by class and independent of trip count.
func TollWeightClass(class VehicleClass) WeightClass {
	switch class {
	case VehicleTataAce, VehicleMiniTruck:
		return WeightLight
	case VehicleLCV, VehicleTruck:
		return WeightMedium
	default:
		return WeightHeavy
	}
}

// FreightRate returns the per-km freight rate for a vehicle class.
func FreightRate(class VehicleClass, rates config.FreightRates) float64 {
	switch class {
	case VehicleTataAce:
		return rates.TataAce
	case VehicleMiniTruck:
		return rates.MiniTruck
	case VehicleLCV:
		return rates.LCV
	case VehicleTruck:
		return rates.Truck
	case VehicleTenWheeler:
		return rates.TenWheeler
	default:
		return rates.MultiAxle
	}
}

// TollRate returns the per-plaza toll for a weight class.
func TollRate(class WeightClass, rates config.TollRates) float64 {
	switch class {
	case WeightLight:
		return rates.Light
	case WeightMedium:
		return rates.Medium
	default:
		return rates.Heavy
	}
}
