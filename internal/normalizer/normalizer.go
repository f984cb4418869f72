// Package normalizer turns raw feed rows into canonical records: header and
// country standardization, category/hazard mapping, fuzzy substance
// correction and date parsing. Normalization is total; a bad row degrades to
// sentinel values instead of failing the batch.
package normalizer

import (
	"strings"
	"time"

	"rasff-insights-go/internal/fuzzy"
	"rasff-insights-go/internal/logger"
	"rasff-insights-go/internal/refdata"
	"rasff-insights-go/internal/types"
)

// dateLayouts are tried in order. The main extract uses ISO dates; weekly
// files have come through with EU day-first forms.
var dateLayouts = []string{
	"2006-01-02",
	"2006-01-02 15:04:05",
	"02-01-2006",
	"02/01/2006",
	"2/1/2006",
	"02 Jan 2006",
	time.RFC3339,
}

// UnmappedCounts tallies raw categorical values that missed their lookup
// table during one normalizer's lifetime.
type UnmappedCounts struct {
	ProductCategory map[string]int `json:"product_category"`
	HazardCategory  map[string]int `json:"hazard_category"`
}

// Normalizer applies the normalization pipeline. One Normalizer serves one
// dataset: its substance corrector accumulates batch-local vocabulary and
// must not be shared across unrelated datasets.
type Normalizer struct {
	cfg       refdata.Config
	log       *logger.Logger
	corrector *fuzzy.Corrector

	// selfDedup: no fixed substance vocabulary was configured, so distinct
	// substances observed in the batch become the vocabulary as we go.
	selfDedup bool
	seen      map[string]struct{}

	unmapped UnmappedCounts
}

// New builds a Normalizer around explicit reference data. Tests pass small
// fixture tables through cfg.
func New(cfg refdata.Config, log *logger.Logger) *Normalizer {
	if log == nil {
		log = logger.New()
	}
	return &Normalizer{
		cfg:       cfg,
		log:       log.WithComponent("normalizer"),
		corrector: fuzzy.NewCorrector(cfg.HazardSubstances, cfg.MaxDistance),
		selfDedup: len(cfg.HazardSubstances) == 0,
		seen:      map[string]struct{}{},
		unmapped: UnmappedCounts{
			ProductCategory: map[string]int{},
			HazardCategory:  map[string]int{},
		},
	}
}

// Normalize converts a batch of raw rows into canonical records. It never
// fails: every row produces exactly one record and an empty batch produces
// an empty (non-nil) slice.
func (n *Normalizer) Normalize(raws []types.RawRecord) []types.CanonicalRecord {
	out := make([]types.CanonicalRecord, 0, len(raws))
	for _, raw := range raws {
		out = append(out, n.normalizeOne(raw))
	}
	n.logUnmapped()
	return out
}

func (n *Normalizer) normalizeOne(raw types.RawRecord) types.CanonicalRecord {
	rec := types.CanonicalRecord{
		Reference:        strings.TrimSpace(raw.Reference),
		Product:          strings.TrimSpace(raw.Product),
		NotifyingCountry: n.cfg.Countries.Standardize(raw.NotifyingCountry),
		OriginCountry:    n.cfg.Countries.Standardize(raw.OriginCountry),
	}
	if rec.Reference == "" {
		rec.Reference = types.NotAvailable
	}

	prod, ok := n.cfg.ProductCategories.Lookup(raw.ProductCategory)
	if !ok && strings.TrimSpace(raw.ProductCategory) != "" {
		n.unmapped.ProductCategory[strings.TrimSpace(raw.ProductCategory)]++
	}
	rec.ProductCategory = prod.Category
	rec.ProductGroup = prod.Group

	haz, ok := n.cfg.HazardCategories.Lookup(raw.HazardCategory)
	if !ok && strings.TrimSpace(raw.HazardCategory) != "" {
		n.unmapped.HazardCategory[strings.TrimSpace(raw.HazardCategory)]++
	}
	rec.HazardCategory = haz.Category
	rec.HazardGroup = haz.Group

	rec.HazardSubstance = n.correctSubstance(raw.HazardSubstance)

	if t, ok := parseDate(raw.DateOfCase); ok {
		rec.Date = t
	} else {
		rec.DateMissing = true
		if strings.TrimSpace(raw.DateOfCase) != "" {
			n.log.WithField("date_of_case", raw.DateOfCase).
				WithField("reference", rec.Reference).
				Debug("unparsable date, keeping record with missing date")
		}
	}
	return rec
}

// correctSubstance runs the fuzzy corrector. In self-dedup mode a substance
// that did not collapse onto an earlier spelling becomes vocabulary itself,
// so later near-misses within the batch fold onto the first-seen form.
func (n *Normalizer) correctSubstance(raw string) string {
	corrected := n.corrector.Correct(raw)
	if n.selfDedup && corrected == strings.TrimSpace(raw) && corrected != fuzzy.Unknown {
		if _, dup := n.seen[corrected]; !dup {
			n.seen[corrected] = struct{}{}
			n.corrector.Extend(corrected)
		}
	}
	return corrected
}

func parseDate(s string) (time.Time, bool) {
	s = strings.TrimSpace(s)
	if s == "" {
		return time.Time{}, false
	}
	for _, layout := range dateLayouts {
		if t, err := time.Parse(layout, s); err == nil {
			return t, true
		}
	}
	return time.Time{}, false
}

// UnmappedCounts reports the raw category values seen so far that had no
// lookup entry, with occurrence counts.
func (n *Normalizer) UnmappedCounts() UnmappedCounts {
	return n.unmapped
}

// ResetCache clears the substance corrector's memo. Use when reusing a
// Normalizer across batches of the same dataset after reference data
// changes; a new dataset should get a new Normalizer instead.
func (n *Normalizer) ResetCache() {
	n.corrector.Reset()
}

func (n *Normalizer) logUnmapped() {
	if len(n.unmapped.ProductCategory) == 0 && len(n.unmapped.HazardCategory) == 0 {
		return
	}
	n.log.WithField("unmapped_product_categories", len(n.unmapped.ProductCategory)).
		WithField("unmapped_hazard_categories", len(n.unmapped.HazardCategory)).
		Info("categorical values without a lookup entry defaulted to Unknown")
}
