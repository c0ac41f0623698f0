// Package compare implements the transport cost comparison engine: given a
// commodity, quantity, and source location it produces a ranked list of
// candidate destination mandis with full cost breakdowns.
package compare

import (
	"fmt"
	"sort"
	"strings"

	"github.com/agriprofit/transport-compare/internal/config"
	"github.com/agriprofit/transport-compare/pkg/mathutil"
	"github.com/agriprofit/transport-compare/pkg/units"
	"go.uber.org/zap"
)

// Request is a validated comparison request. QuantityKg has already been
// normalized to kilograms.
type Request struct {
	Commodity      string  `json:"commodity"`
	QuantityKg     float64 `json:"quantity_kg"`
	SourceState    string  `json:"source_state"`
	SourceDistrict string  `json:"source_district"`
}

// Candidate is one destination mandi under consideration.
type Candidate struct {
	MandiName  string  `json:"mandi_name"`
	DistanceKm float64 `json:"distance_km"`
	PricePerKg float64 `json:"price_per_kg"`
	State      string  `json:"state"`
	District   string  `json:"district"`
}

// Validate checks the boundary rules every candidate must satisfy before
// costing: a name, a non-negative distance, and a positive price. Callers
// sourcing candidates from outside the process drop entries that fail.
func (c Candidate) Validate() error {
	if strings.TrimSpace(c.MandiName) == "" {
		return fmt.Errorf("candidate missing mandi name")
	}
	if c.DistanceKm < 0 {
		return fmt.Errorf("candidate %q has negative distance %v", c.MandiName, c.DistanceKm)
	}
	if c.PricePerKg <= 0 {
		return fmt.Errorf("candidate %q has no usable price", c.MandiName)
	}
	return nil
}

// Result is the cost evaluation of one candidate mandi.
type Result struct {
	MandiName    string        `json:"mandi_name"`
	State        string        `json:"state"`
	District     string        `json:"district"`
	DistanceKm   float64       `json:"distance_km"`
	PricePerKg   float64       `json:"price_per_kg"`
	GrossRevenue float64       `json:"gross_revenue"`
	Costs        CostBreakdown `json:"costs"`
	NetProfit    float64       `json:"net_profit"`
	ROIPercent   float64       `json:"roi_percentage"`
	VehicleType  VehicleClass  `json:"vehicle_type"`
	Trips        int           `json:"trips"`
	ArrivalTime  string        `json:"arrival_time"`
}

// Recommendation summarizes the ranked results for display.
type Recommendation struct {
	BestMandi           string  `json:"best_mandi,omitempty"`
	AllLoss             bool    `json:"all_loss"`
	ProfitDeltaVsNext   float64 `json:"profit_delta_vs_next,omitempty"`
	ProfitMarginPercent float64 `json:"profit_margin_percent"`
}

// CompareTransportOptions evaluates every candidate mandi for the request
// and returns results sorted by net profit descending. Ties preserve the
// candidate input order. An empty candidate list yields an empty slice.
func CompareTransportOptions(logger *zap.Logger, req Request, settings config.Settings, candidates []Candidate) []Result {
	if logger == nil {
		logger = zap.NewNop()
	}

	sel := SelectVehicle(units.KgToTons(req.QuantityKg), settings.Capacities)
	logger.Debug("vehicle selected",
		zap.String("op", "compare.CompareTransportOptions"),
		zap.String("vehicle", string(sel.Class)),
		zap.Int("trips", sel.Trips),
	)

	results := make([]Result, 0, len(candidates))
	for _, candidate := range candidates {
		gross := mathutil.RoundRupee(req.QuantityKg * candidate.PricePerKg)
		costs := computeCosts(candidate.DistanceKm, req.QuantityKg, gross, candidate.State, sel, &settings)
		net := gross - costs.Total

		results = append(results, Result{
			MandiName:    candidate.MandiName,
			State:        candidate.State,
			District:     candidate.District,
			DistanceKm:   candidate.DistanceKm,
			PricePerKg:   candidate.PricePerKg,
			GrossRevenue: gross,
			Costs:        costs,
			NetProfit:    net,
			ROIPercent:   mathutil.Round(mathutil.CalculatePercentage(net, costs.Total)),
			VehicleType:  sel.Class,
			Trips:        sel.Trips,
			ArrivalTime:  estimateArrival(candidate.DistanceKm),
		})
	}

	sort.SliceStable(results, func(i, j int) bool {
		return results[i].NetProfit > results[j].NetProfit
	})

	return results
}

// Summarize derives the recommendation narrative from ranked results. A nil
// return means there is nothing to recommend (no results).
func Summarize(results []Result) *Recommendation {
	if len(results) == 0 {
		return nil
	}

	top := results[0]
	rec := &Recommendation{
		ProfitMarginPercent: mathutil.Round(mathutil.CalculatePercentage(top.NetProfit, top.GrossRevenue)),
	}

	if top.NetProfit <= 0 {
		// Every option loses money; the top entry is only the least loss.
		rec.AllLoss = true
		return rec
	}

	rec.BestMandi = top.MandiName
	if len(results) > 1 {
		rec.ProfitDeltaVsNext = top.NetProfit - results[1].NetProfit
	}
	return rec
}

func formatHours(hours int) string {
	if hours == 1 {
		return "1 hour"
	}
	return fmt.Sprintf("%d hours", hours)
}

func formatHoursRange(minHours, maxHours int) string {
	return fmt.Sprintf("%d-%d hours", minHours, maxHours)
}
