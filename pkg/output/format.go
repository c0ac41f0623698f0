// Package output provides utilities for formatting and displaying comparison results.
package output

import (
	"fmt"
	"strings"

	"github.com/agriprofit/transport-compare/internal/compare"
	"golang.org/x/text/language"
	"golang.org/x/text/message"
)

// PrettyFormat outputs a human-readable rather than machine-readable table.
func PrettyFormat(results []compare.Result, rec *compare.Recommendation) {
	fmt.Print(PrettyString(results, rec))
}

// PrettyString renders the human-readable table as a string.
func PrettyString(results []compare.Result, rec *compare.Recommendation) string {
	if len(results) == 0 {
		return "No mandis found with recent price data.\n"
	}

	p := message.NewPrinter(language.English)
	var b strings.Builder

	b.WriteString("Mandi                          | Distance | Net Profit     | ROI      | Vehicle      | Arrival\n")
	b.WriteString("_____                          | ________ | __________     | ___      | _______      | _______\n")
	for i, result := range results {
		label := result.MandiName
		if i == 0 && rec != nil && !rec.AllLoss {
			label += " (Best Option)"
		}
		vehicle := string(result.VehicleType)
		if result.Trips > 1 {
			vehicle = p.Sprintf("%s x%d", vehicle, result.Trips)
		}
		b.WriteString(p.Sprintf("%-30s | %6.0f km | ₹%-13.0f | %7.2f%% | %-12s | %s\n",
			label, result.DistanceKm, result.NetProfit, result.ROIPercent, vehicle, result.ArrivalTime))
	}

	if rec != nil {
		b.WriteString("\n")
		if rec.AllLoss {
			b.WriteString("All options are loss-making; the top entry is the least loss.\n")
		} else {
			b.WriteString(p.Sprintf("Recommended: %s (margin %.2f%%", rec.BestMandi, rec.ProfitMarginPercent))
			if rec.ProfitDeltaVsNext > 0 {
				b.WriteString(p.Sprintf(", ₹%.0f ahead of the next option", rec.ProfitDeltaVsNext))
			}
			b.WriteString(")\n")
		}
	}

	return b.String()
}

// CsvFormat outputs in comma-separated value format.
func CsvFormat(results []compare.Result) {
	fmt.Print(CsvString(results))
}

// CsvString renders the results as CSV.
func CsvString(results []compare.Result) string {
	var b strings.Builder

	b.WriteString(`"mandi","state","district","distance_km","price_per_kg","gross_revenue",` +
		`"freight","toll","loading","unloading","mandi_fee","commission","additional","total_cost",` +
		`"net_profit","roi_percent","vehicle","trips","arrival_time"` + "\n")

	for _, r := range results {
		b.WriteString(fmt.Sprintf(`"%s","%s","%s","%.1f","%.2f","%.0f","%.0f","%.0f","%.0f","%.0f","%.0f","%.0f","%.0f","%.0f","%.0f","%.2f","%s","%d","%s"`,
			r.MandiName, r.State, r.District, r.DistanceKm, r.PricePerKg, r.GrossRevenue,
			r.Costs.Freight, r.Costs.Toll, r.Costs.Loading, r.Costs.Unloading,
			r.Costs.MandiFee, r.Costs.Commission, r.Costs.Additional, r.Costs.Total,
			r.NetProfit, r.ROIPercent, r.VehicleType, r.Trips, r.ArrivalTime))
		b.WriteString("\n")
	}

	return b.String()
}
