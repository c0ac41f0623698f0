// Package mandi sources candidate destination mandis for a comparison,
// either from the upstream AgriProfit API or from a synthetic offline
// generator.
package mandi

import (
	"context"
	"encoding/json"
	"fmt"
	"net/http"
	"net/url"
	"strconv"
	"strings"
	"time"

	"github.com/agriprofit/transport-compare/internal/compare"
	"github.com/agriprofit/transport-compare/pkg/units"
	gocache "github.com/patrickmn/go-cache"
	"go.uber.org/zap"
)

const (
	candidateCacheDuration = 5 * time.Minute
	locationCacheDuration  = 24 * time.Hour
	cacheCleanupInterval   = 30 * time.Minute
)

// Client fetches candidate mandis and location reference data from the
// upstream comparison API. Responses are cached briefly since modal prices
// update at most daily.
type Client struct {
	baseURL    string
	httpClient *http.Client
	cache      *gocache.Cache
	logger     *zap.Logger
}

// NewClient builds a client for the upstream mandi API.
func NewClient(baseURL string, timeout time.Duration, logger *zap.Logger) *Client {
	if logger == nil {
		logger = zap.NewNop()
	}
	return &Client{
		baseURL:    strings.TrimRight(baseURL, "/"),
		httpClient: &http.Client{Timeout: timeout},
		cache:      gocache.New(candidateCacheDuration, cacheCleanupInterval),
		logger:     logger,
	}
}

// candidateDTO is the upstream wire shape. The upstream quotes either a
// per-kg price or a modal price per quintal.
type candidateDTO struct {
	MandiName            string  `json:"mandi_name"`
	DistanceKm           float64 `json:"distance_km"`
	PricePerKg           float64 `json:"price_per_kg"`
	ModalPricePerQuintal float64 `json:"modal_price"`
	State                string  `json:"state"`
	District             string  `json:"district"`
}

// toCandidate converts a wire record to a domain candidate and validates it.
func (dto candidateDTO) toCandidate() (compare.Candidate, error) {
	pricePerKg := dto.PricePerKg
	if pricePerKg <= 0 && dto.ModalPricePerQuintal > 0 {
		pricePerKg = units.QuintalPriceToKg(dto.ModalPricePerQuintal)
	}

	candidate := compare.Candidate{
		MandiName:  dto.MandiName,
		DistanceKm: dto.DistanceKm,
		PricePerKg: pricePerKg,
		State:      dto.State,
		District:   dto.District,
	}
	if err := candidate.Validate(); err != nil {
		return compare.Candidate{}, err
	}
	return candidate, nil
}

// FetchCandidates queries the upstream comparison endpoint. Malformed
// entries are dropped with a warning; upstream failure is returned as a
// retryable error.
func (c *Client) FetchCandidates(ctx context.Context, req compare.Request) ([]compare.Candidate, error) {
	cacheKey := cacheKey("candidates", req.Commodity, req.SourceState, req.SourceDistrict,
		strconv.FormatFloat(req.QuantityKg, 'f', -1, 64))
	if cached, found := c.cache.Get(cacheKey); found {
		return cached.([]compare.Candidate), nil
	}

	query := url.Values{}
	query.Set("commodity", req.Commodity)
	query.Set("quantity_kg", strconv.FormatFloat(req.QuantityKg, 'f', -1, 64))
	query.Set("source_state", req.SourceState)
	query.Set("source_district", req.SourceDistrict)

	var dtos []candidateDTO
	if err := c.getJSON(ctx, "/api/transport/compare?"+query.Encode(), &dtos); err != nil {
		return nil, fmt.Errorf("failed to fetch candidate mandis: %w", err)
	}

	candidates := make([]compare.Candidate, 0, len(dtos))
	for _, dto := range dtos {
		candidate, err := dto.toCandidate()
		if err != nil {
			c.logger.Warn("dropping malformed candidate from upstream",
				zap.String("op", "mandi.Client.FetchCandidates"),
				zap.Error(err),
			)
			continue
		}
		candidates = append(candidates, candidate)
	}

	c.cache.Set(cacheKey, candidates, candidateCacheDuration)
	return candidates, nil
}

// FetchStates retrieves the state list from upstream.
func (c *Client) FetchStates(ctx context.Context) ([]string, error) {
	if cached, found := c.cache.Get("states"); found {
		return cached.([]string), nil
	}

	var result []string
	if err := c.getJSON(ctx, "/api/locations/states", &result); err != nil {
		return nil, fmt.Errorf("failed to fetch states: %w", err)
	}

	c.cache.Set("states", result, locationCacheDuration)
	return result, nil
}

// FetchDistricts retrieves the district list for a state from upstream.
func (c *Client) FetchDistricts(ctx context.Context, state string) ([]string, error) {
	key := cacheKey("districts", state)
	if cached, found := c.cache.Get(key); found {
		return cached.([]string), nil
	}

	query := url.Values{}
	query.Set("state", state)

	var result []string
	if err := c.getJSON(ctx, "/api/locations/districts?"+query.Encode(), &result); err != nil {
		return nil, fmt.Errorf("failed to fetch districts for %s: %w", state, err)
	}

	c.cache.Set(key, result, locationCacheDuration)
	return result, nil
}

func (c *Client) getJSON(ctx context.Context, path string, out interface{}) error {
	req, err := http.NewRequestWithContext(ctx, http.MethodGet, c.baseURL+path, nil)
	if err != nil {
		return err
	}
	req.Header.Set("Accept", "application/json")

	resp, err := c.httpClient.Do(req)
	if err != nil {
		return err
	}
	defer func() {
		if closeErr := resp.Body.Close(); closeErr != nil {
			c.logger.Warn("failed to close upstream response body",
				zap.String("op", "mandi.Client.getJSON"),
				zap.Error(closeErr),
			)
		}
	}()

	if resp.StatusCode != http.StatusOK {
		return fmt.Errorf("upstream returned status %d", resp.StatusCode)
	}

	return json.NewDecoder(resp.Body).Decode(out)
}

func cacheKey(prefix string, params ...string) string {
	return prefix + ":" + strings.Join(params, ":")
}
