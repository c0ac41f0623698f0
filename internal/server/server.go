// Package server exposes the transport comparison engine over a JSON HTTP
// API.
package server

import (
	"context"
	"encoding/json"
	"fmt"
	"net/http"
	"strings"
	"time"

	"github.com/agriprofit/transport-compare/internal/compare"
	"github.com/agriprofit/transport-compare/internal/config"
	"github.com/agriprofit/transport-compare/pkg/states"
	"github.com/agriprofit/transport-compare/pkg/units"
	"github.com/agriprofit/transport-compare/pkg/validation"
	"github.com/gorilla/mux"
	"go.uber.org/zap"
	"gopkg.in/yaml.v3"
)

// CandidateSource produces candidate mandis for a comparison request.
type CandidateSource interface {
	FetchCandidates(ctx context.Context, req compare.Request) ([]compare.Candidate, error)
}

// LocationSource serves state and district reference data, typically the
// upstream API.
type LocationSource interface {
	FetchStates(ctx context.Context) ([]string, error)
	FetchDistricts(ctx context.Context, state string) ([]string, error)
}

// Options configures the HTTP handler.
type Options struct {
	Logger    *zap.Logger
	Settings  config.Settings
	Source    CandidateSource
	Locations LocationSource // optional; static fallback data is used when nil or failing
	Version   string
}

type handler struct {
	logger    *zap.Logger
	settings  config.Settings
	source    CandidateSource
	locations LocationSource
	version   string
}

// NewHandler constructs the HTTP handler serving the comparison API.
func NewHandler(opts Options) http.Handler {
	logger := opts.Logger
	if logger == nil {
		logger = zap.NewNop()
	}

	version := strings.TrimSpace(opts.Version)
	if version == "" {
		version = "dev"
	}

	h := &handler{
		logger:    logger,
		settings:  opts.Settings,
		source:    opts.Source,
		locations: opts.Locations,
		version:   version,
	}

	router := mux.NewRouter()
	router.HandleFunc("/api/compare", h.handleCompare).Methods(http.MethodPost)
	router.HandleFunc("/api/states", h.handleStates).Methods(http.MethodGet)
	router.HandleFunc("/api/districts", h.handleDistricts).Methods(http.MethodGet)
	router.HandleFunc("/api/settings/defaults", h.handleSettingsDefaults).Methods(http.MethodGet)
	router.HandleFunc("/api/settings/export", h.handleSettingsExport).Methods(http.MethodGet)
	router.HandleFunc("/api/version", h.handleVersion).Methods(http.MethodGet)

	return router
}

type compareRequest struct {
	Commodity      string              `json:"commodity"`
	Quantity       float64             `json:"quantity"`
	Unit           string              `json:"unit,omitempty"`
	SourceState    string              `json:"source_state"`
	SourceDistrict string              `json:"source_district"`
	Settings       *config.Settings    `json:"settings,omitempty"`
	Candidates     []compare.Candidate `json:"candidates,omitempty"`
}

type compareResponse struct {
	Results        []compare.Result        `json:"results"`
	Recommendation *compare.Recommendation `json:"recommendation,omitempty"`
	Warnings       []string                `json:"warnings,omitempty"`
	Message        string                  `json:"message,omitempty"`
	Duration       string                  `json:"duration"`
}

func (h *handler) handleCompare(w http.ResponseWriter, r *http.Request) {
	start := time.Now()

	// Seeding the settings pointer with a copy of the handler defaults makes
	// the JSON decode a merge: fields present in the request body override,
	// fields absent keep their defaults.
	settings := h.settings.Clone()
	payload := compareRequest{Settings: &settings}
	if err := json.NewDecoder(r.Body).Decode(&payload); err != nil {
		h.respondError(w, http.StatusBadRequest, fmt.Sprintf("failed to decode request: %v", err), "server.handleCompare")
		return
	}
	if payload.Settings == nil {
		settings = h.settings.Clone()
	} else {
		settings = *payload.Settings
	}
	warnings := settings.Validate()

	if err := validation.ValidateComparisonRequest(validation.ComparisonRequest{
		Commodity:      payload.Commodity,
		Quantity:       payload.Quantity,
		SourceState:    payload.SourceState,
		SourceDistrict: payload.SourceDistrict,
	}); err != nil {
		h.respondError(w, http.StatusBadRequest, err.Error(), "server.handleCompare")
		return
	}

	unit, err := units.Parse(payload.Unit)
	if err != nil {
		h.respondError(w, http.StatusBadRequest, err.Error(), "server.handleCompare")
		return
	}
	quantityKg, err := units.ToKg(payload.Quantity, unit)
	if err != nil {
		h.respondError(w, http.StatusBadRequest, err.Error(), "server.handleCompare")
		return
	}

	req := compare.Request{
		Commodity:      payload.Commodity,
		QuantityKg:     quantityKg,
		SourceState:    payload.SourceState,
		SourceDistrict: payload.SourceDistrict,
	}

	var candidates []compare.Candidate
	if len(payload.Candidates) > 0 {
		// Request-body candidates get the same boundary checks as upstream
		// responses; malformed entries are dropped, not costed.
		candidates = make([]compare.Candidate, 0, len(payload.Candidates))
		for _, candidate := range payload.Candidates {
			if err := candidate.Validate(); err != nil {
				warnings = append(warnings, err.Error())
				h.logger.Warn("dropping malformed candidate from request body",
					zap.String("op", "server.handleCompare"),
					zap.Error(err),
				)
				continue
			}
			candidates = append(candidates, candidate)
		}
	} else {
		if h.source == nil {
			h.respondError(w, http.StatusBadRequest, "no candidates supplied and no candidate source configured", "server.handleCompare")
			return
		}
		candidates, err = h.source.FetchCandidates(r.Context(), req)
		if err != nil {
			h.respondError(w, http.StatusBadGateway, fmt.Sprintf("failed to fetch candidate mandis: %v", err), "server.handleCompare")
			return
		}
	}

	results := compare.CompareTransportOptions(h.logger, req, settings, candidates)
	elapsed := time.Since(start)

	response := compareResponse{
		Results:        results,
		Recommendation: compare.Summarize(results),
		Warnings:       warnings,
		Duration:       elapsed.String(),
	}
	if len(results) == 0 {
		response.Message = "no mandis found with recent price data for this commodity"
	}

	h.logger.Info("comparison computed",
		zap.String("op", "server.handleCompare"),
		zap.String("commodity", req.Commodity),
		zap.Float64("quantity_kg", req.QuantityKg),
		zap.Int("candidates", len(candidates)),
		zap.Int("results", len(results)),
		zap.Duration("duration", elapsed),
	)

	h.writeJSON(w, http.StatusOK, response)
}

func (h *handler) handleStates(w http.ResponseWriter, r *http.Request) {
	if h.locations != nil {
		if upstream, err := h.locations.FetchStates(r.Context()); err == nil && len(upstream) > 0 {
			h.writeJSON(w, http.StatusOK, map[string]interface{}{"states": upstream})
			return
		} else if err != nil {
			h.logger.Warn("upstream states fetch failed, using static fallback",
				zap.String("op", "server.handleStates"),
				zap.Error(err),
			)
		}
	}
	h.writeJSON(w, http.StatusOK, map[string]interface{}{"states": states.All()})
}

func (h *handler) handleDistricts(w http.ResponseWriter, r *http.Request) {
	state := r.URL.Query().Get("state")
	if strings.TrimSpace(state) == "" {
		h.respondError(w, http.StatusBadRequest, "query parameter 'state' is required", "server.handleDistricts")
		return
	}

	if h.locations != nil {
		if upstream, err := h.locations.FetchDistricts(r.Context(), state); err == nil && len(upstream) > 0 {
			h.writeJSON(w, http.StatusOK, map[string]interface{}{"state": state, "districts": upstream})
			return
		} else if err != nil {
			h.logger.Warn("upstream districts fetch failed, using static fallback",
				zap.String("op", "server.handleDistricts"),
				zap.Error(err),
			)
		}
	}

	districts, ok := states.Districts(state)
	if !ok {
		h.respondError(w, http.StatusNotFound, fmt.Sprintf("unknown state %q", state), "server.handleDistricts")
		return
	}
	h.writeJSON(w, http.StatusOK, map[string]interface{}{"state": state, "districts": districts})
}

func (h *handler) handleSettingsDefaults(w http.ResponseWriter, _ *http.Request) {
	h.writeJSON(w, http.StatusOK, config.DefaultSettings())
}

// handleSettingsExport serializes the active settings as YAML so they can be
// saved and edited as a config file.
func (h *handler) handleSettingsExport(w http.ResponseWriter, _ *http.Request) {
	data, err := yaml.Marshal(map[string]interface{}{"settings": h.settings})
	if err != nil {
		h.respondError(w, http.StatusInternalServerError, fmt.Sprintf("failed to encode settings: %v", err), "server.handleSettingsExport")
		return
	}
	h.writeJSON(w, http.StatusOK, map[string]string{"settingsYaml": string(data)})
}

func (h *handler) handleVersion(w http.ResponseWriter, _ *http.Request) {
	h.writeJSON(w, http.StatusOK, map[string]string{"version": h.version})
}

func (h *handler) respondError(w http.ResponseWriter, status int, msg string, op string) {
	h.logger.Error("request failed",
		zap.String("op", op),
		zap.Int("status", status),
		zap.String("error", msg),
	)

	h.writeJSON(w, status, map[string]string{"error": msg})
}

func (h *handler) writeJSON(w http.ResponseWriter, status int, payload interface{}) {
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(status)
	if err := json.NewEncoder(w).Encode(payload); err != nil {
		h.logger.Error("failed to write JSON response", zap.Error(err))
	}
}
