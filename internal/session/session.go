// Package session ties the pipeline together for one dataset: normalize
// once, then serve aggregations and tests over the canonical records.
package session

import (
	"time"

	"github.com/google/uuid"

	"rasff-insights-go/internal/aggregator"
	"rasff-insights-go/internal/dataset"
	"rasff-insights-go/internal/logger"
	"rasff-insights-go/internal/normalizer"
	"rasff-insights-go/internal/refdata"
	"rasff-insights-go/internal/stats"
	"rasff-insights-go/internal/types"
)

// Session holds one dataset's canonical records. The fuzzy-match cache
// lives inside the session's normalizer, so switching datasets means
// building a new Session; nothing leaks across.
type Session struct {
	ID      string
	Records []types.CanonicalRecord

	norm *normalizer.Normalizer
	log  *logger.Logger
}

// New normalizes raws into a fresh session.
func New(cfg refdata.Config, raws []types.RawRecord, log *logger.Logger) *Session {
	if log == nil {
		log = logger.New()
	}
	s := &Session{
		ID:   uuid.New().String(),
		norm: normalizer.New(cfg, log),
		log:  log.WithComponent("session"),
	}
	start := time.Now()
	s.Records = s.norm.Normalize(raws)
	s.log.WithField("session_id", s.ID).
		WithField("records", len(s.Records)).
		WithField("duration_ms", time.Since(start).Milliseconds()).
		Info("dataset normalized")
	return s
}

// AppendRaw normalizes an incremental batch (weekly update) with this
// session's normalizer and merges it in, keeping substance corrections
// consistent with what the session has already seen.
func (s *Session) AppendRaw(raws []types.RawRecord) int {
	recs := s.norm.Normalize(raws)
	s.Records = append(s.Records, recs...)
	s.log.WithField("session_id", s.ID).
		WithField("appended", len(recs)).
		WithField("total", len(s.Records)).
		Info("incremental batch merged")
	return len(recs)
}

// Summary computes the dashboard's headline statistics.
func (s *Session) Summary() dataset.Summary {
	return dataset.Summarize(s.Records)
}

// Count is a one-dimensional frequency table over the session's records.
func (s *Session) Count(dim types.Field) []aggregator.Bucket {
	return aggregator.Count(s.Records, dim)
}

// Crosstab cross-tabulates the session's records on two dimensions.
func (s *Session) Crosstab(rowDim, colDim types.Field) *aggregator.ContingencyTable {
	return aggregator.Crosstab(s.Records, rowDim, colDim)
}

// ChiSquare crosstabs and tests two dimensions for association.
func (s *Session) ChiSquare(rowDim, colDim types.Field) (stats.ChiSquareResult, error) {
	return stats.ChiSquare(s.Crosstab(rowDim, colDim))
}

// UnmappedCounts exposes the normalizer's tally of category values that had
// no lookup entry.
func (s *Session) UnmappedCounts() normalizer.UnmappedCounts {
	return s.norm.UnmappedCounts()
}
