package compare

import (
	"context"
	"errors"
	"sync"

	"github.com/agriprofit/transport-compare/internal/config"
	"go.uber.org/zap"
)

// ErrSuperseded reports that a newer comparison started before this one
// finished, so its result was discarded.
var ErrSuperseded = errors.New("comparison superseded by a newer request")

// CandidateFetcher produces the candidate mandis for a request.
type CandidateFetcher func(ctx context.Context) ([]Candidate, error)

// Session serializes overlapping comparison requests. Rapid repeated
// requests can resolve out of order; each run takes a sequence token and a
// completion whose token is no longer current is dropped rather than
// returned.
type Session struct {
	logger *zap.Logger

	mu  sync.Mutex
	seq uint64
}

// NewSession creates a comparison session.
func NewSession(logger *zap.Logger) *Session {
	if logger == nil {
		logger = zap.NewNop()
	}
	return &Session{logger: logger}
}

// Run fetches candidates and computes the comparison. Settings are copied
// up front so concurrent edits never affect an in-flight calculation. If a
// newer Run starts before this one completes, ErrSuperseded is returned.
func (s *Session) Run(ctx context.Context, req Request, settings config.Settings, fetch CandidateFetcher) ([]Result, error) {
	s.mu.Lock()
	s.seq++
	token := s.seq
	s.mu.Unlock()

	snapshot := settings.Clone()

	candidates, err := fetch(ctx)
	if err != nil {
		return nil, err
	}

	results := CompareTransportOptions(s.logger, req, snapshot, candidates)

	s.mu.Lock()
	current := s.seq
	s.mu.Unlock()
	if token != current {
		s.logger.Debug("discarding stale comparison result",
			zap.String("op", "compare.Session.Run"),
			zap.Uint64("token", token),
			zap.Uint64("current", current),
		)
		return nil, ErrSuperseded
	}

	return results, nil
}
