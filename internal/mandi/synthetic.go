package mandi

import (
	"context"
	"fmt"
	"hash/fnv"
	"sort"
	"strings"

	"github.com/agriprofit/transport-compare/internal/compare"
	"github.com/agriprofit/transport-compare/pkg/states"
	"go.uber.org/zap"
)

// basePricePerKg holds indicative base prices for common commodities. A
// commodity not listed falls back to defaultBasePrice.
var basePricePerKg = map[string]float64{
	"wheat":     22,
	"rice":      32,
	"paddy":     20,
	"maize":     18,
	"bajra":     21,
	"cotton":    62,
	"soybean":   43,
	"mustard":   52,
	"groundnut": 55,
	"onion":     16,
	"potato":    12,
	"tomato":    15,
}

const defaultBasePrice = 25.0

// marketSuffixes produce mandi names from district names.
var marketSuffixes = []string{"Mandi", "APMC Market", "Krishi Upaj Mandi", "Grain Market"}

// SyntheticSource generates deterministic candidate mandis so the comparator
// works without the upstream API. Candidates are drawn from the source
// state's districts plus a couple of neighboring-state markets.
type SyntheticSource struct {
	logger *zap.Logger
}

// NewSyntheticSource builds an offline candidate source.
func NewSyntheticSource(logger *zap.Logger) *SyntheticSource {
	if logger == nil {
		logger = zap.NewNop()
	}
	return &SyntheticSource{logger: logger}
}

// FetchCandidates synthesizes candidates for the request. The output is
// deterministic for a given commodity and source location.
func (s *SyntheticSource) FetchCandidates(_ context.Context, req compare.Request) ([]compare.Candidate, error) {
	districts, ok := states.Districts(req.SourceState)
	if !ok {
		s.logger.Warn("unknown source state, no synthetic mandis",
			zap.String("op", "mandi.SyntheticSource.FetchCandidates"),
			zap.String("state", req.SourceState),
		)
		return []compare.Candidate{}, nil
	}

	base := basePrice(req.Commodity)
	seedBase := req.Commodity + "|" + req.SourceState + "|" + req.SourceDistrict

	// Pick up to eight destination districts, skewed away from the source
	// district itself, which is represented by a single zero-distance entry.
	picks := pickDistricts(districts, req.SourceDistrict, 8, seedBase)

	candidates := make([]compare.Candidate, 0, len(picks)+1)
	candidates = append(candidates, compare.Candidate{
		MandiName:  fmt.Sprintf("%s %s", req.SourceDistrict, marketSuffixes[0]),
		DistanceKm: 0,
		PricePerKg: priceVariant(base, seedBase+"|local", -0.08, 0.02),
		State:      req.SourceState,
		District:   req.SourceDistrict,
	})

	for i, district := range picks {
		seed := fmt.Sprintf("%s|%s|%d", seedBase, district, i)
		candidates = append(candidates, compare.Candidate{
			MandiName:  fmt.Sprintf("%s %s", district, marketSuffixes[hashFraction(seed, "suffix")%uint32(len(marketSuffixes))]),
			DistanceKm: 20 + float64(hashFraction(seed, "distance")%380),
			PricePerKg: priceVariant(base, seed, -0.05, 0.15),
			State:      req.SourceState,
			District:   district,
		})
	}

	return candidates, nil
}

func basePrice(commodity string) float64 {
	if price, ok := basePricePerKg[strings.ToLower(strings.TrimSpace(commodity))]; ok {
		return price
	}
	return defaultBasePrice
}

// priceVariant perturbs the base price deterministically within
// [base*(1+low), base*(1+high)], rounded to the paisa.
func priceVariant(base float64, seed string, low, high float64) float64 {
	fraction := float64(hashFraction(seed, "price")%1000) / 1000.0
	price := base * (1 + low + (high-low)*fraction)
	return float64(int(price*100)) / 100
}

// pickDistricts selects up to count destination districts, rotating through
// the list from a seed-derived offset so different requests see different
// markets.
func pickDistricts(districts []string, sourceDistrict string, count int, seed string) []string {
	pool := make([]string, 0, len(districts))
	for _, d := range districts {
		if !strings.EqualFold(d, sourceDistrict) {
			pool = append(pool, d)
		}
	}
	sort.Strings(pool)

	if len(pool) == 0 {
		return nil
	}
	if count > len(pool) {
		count = len(pool)
	}

	offset := int(hashFraction(seed, "offset") % uint32(len(pool)))
	picks := make([]string, 0, count)
	for i := 0; i < count; i++ {
		picks = append(picks, pool[(offset+i)%len(pool)])
	}
	return picks
}

func hashFraction(seed, salt string) uint32 {
	h := fnv.New32a()
	_, _ = h.Write([]byte(seed))
	_, _ = h.Write([]byte{0})
	_, _ = h.Write([]byte(salt))
	return h.Sum32()
}
