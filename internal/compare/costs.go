package compare

import (
	"math"

	"github.com/agriprofit/transport-compare/internal/config"
	"github.com/agriprofit/transport-compare/pkg/constants"
	"github.com/agriprofit/transport-compare/pkg/mathutil"
	"github.com/agriprofit/transport-compare/pkg/states"
	"github.com/agriprofit/transport-compare/pkg/units"
)

// CostBreakdown itemizes the transport and market costs for one candidate
// mandi. Every field is a whole-rupee amount and Total is the exact sum of
// the others.
type CostBreakdown struct {
	Freight    float64 `json:"freight"`
	Toll       float64 `json:"toll"`
	Loading    float64 `json:"loading"`
	Unloading  float64 `json:"unloading"`
	MandiFee   float64 `json:"mandi_fee"`
	Commission float64 `json:"commission"`
	Additional float64 `json:"additional"`
	Total      float64 `json:"total"`
}

// tollDensityFactor resolves the regional toll density for a state,
// preferring a configured override.
func tollDensityFactor(state string, settings *config.Settings) float64 {
	if factor, ok := settings.TollDensityOverride(state); ok {
		return factor
	}
	return states.TollDensityFactor(state)
}

// computeCosts builds the cost breakdown for one candidate at the given
// distance. grossRevenue must already be rounded to whole rupees.
func computeCosts(distanceKm, quantityKg, grossRevenue float64, destinationState string, sel VehicleSelection, settings *config.Settings) CostBreakdown {
	trips := float64(sel.Trips)
	quintals := units.KgToQuintals(quantityKg)

	freight := mathutil.RoundRupee(distanceKm * FreightRate(sel.Class, settings.FreightRates) * trips)

	spacing := settings.TollPlazaSpacingKm
	if spacing <= 0 {
		spacing = constants.DefaultTollPlazaSpacingKm
	}
	plazas := math.Floor(distanceKm / spacing * tollDensityFactor(destinationState, settings))
	toll := mathutil.RoundRupee(plazas * TollRate(TollWeightClass(sel.Class), settings.TollPerPlaza) * trips)

	loading := mathutil.RoundRupee(quintals*settings.LoadingPerQuintal + settings.LoadingPerTrip*trips)
	unloading := mathutil.RoundRupee(quintals*settings.UnloadingPerQuintal + settings.UnloadingPerTrip*trips)

	mandiFee := mathutil.RoundRupee(grossRevenue * constants.MandiFeeRate)
	commission := mathutil.RoundRupee(grossRevenue * constants.CommissionRate)

	// Weighbridge is charged both ways.
	additional := (settings.Weighbridge*2 + settings.Parking + settings.Misc) * trips

	breakdown := CostBreakdown{
		Freight:    freight,
		Toll:       toll,
		Loading:    loading,
		Unloading:  unloading,
		MandiFee:   mandiFee,
		Commission: commission,
		Additional: additional,
	}
	breakdown.Total = freight + toll + loading + unloading + mandiFee + commission + additional
	return breakdown
}

// estimateArrival renders the road travel time for a distance as a single
// value or an hour range. Zero distance has no meaningful arrival time.
func estimateArrival(distanceKm float64) string {
	if distanceKm <= 0 {
		return "N/A"
	}
	minHours := int(math.Ceil(distanceKm / constants.MaxRoadSpeedKmph))
	maxHours := int(math.Ceil(distanceKm / constants.MinRoadSpeedKmph))
	if minHours == maxHours {
		return formatHours(minHours)
	}
	return formatHoursRange(minHours, maxHours)
}
