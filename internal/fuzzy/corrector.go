// Package fuzzy corrects near-miss spellings against a vocabulary using
// Levenshtein distance.
package fuzzy

import (
	"strings"

	"github.com/agnivade/levenshtein"
)

// Unknown is returned for blank input instead of running the distance
// function against nothing.
const Unknown = "Unknown"

// Corrector maps raw strings onto the closest vocabulary entry within a
// maximum edit distance. Distances are computed case-insensitively; the
// returned string is always a vocabulary entry verbatim or the input
// unchanged, never a fabricated spelling.
//
// A Corrector memoizes per raw string and is meant to live for exactly one
// dataset: the vocabulary can change between datasets, so create a new
// Corrector (or call Reset) per session. Not safe for concurrent use.
type Corrector struct {
	vocab   []string // original spellings, in insertion order
	folded  []string // lower-cased, same indexes
	maxDist int
	memo    map[string]string
}

// NewCorrector builds a Corrector over vocab. Ties between equally distant
// entries go to the earliest one in vocab order.
func NewCorrector(vocab []string, maxDistance int) *Corrector {
	c := &Corrector{
		maxDist: maxDistance,
		memo:    make(map[string]string),
	}
	for _, v := range vocab {
		c.Extend(v)
	}
	return c
}

// Extend appends one vocabulary entry. Used by self-deduplicating callers
// that grow the vocabulary as a batch is scanned.
func (c *Corrector) Extend(term string) {
	c.vocab = append(c.vocab, term)
	c.folded = append(c.folded, strings.ToLower(term))
}

// Vocabulary returns the current vocabulary in insertion order.
func (c *Corrector) Vocabulary() []string {
	out := make([]string, len(c.vocab))
	copy(out, c.vocab)
	return out
}

// Reset drops the memo cache. Call between datasets; stale corrections must
// not leak across unrelated batches.
func (c *Corrector) Reset() {
	c.memo = make(map[string]string)
}

// Correct returns the closest vocabulary entry when its distance to raw is
// within the maximum, and raw unchanged otherwise. Blank input returns
// Unknown.
func (c *Corrector) Correct(raw string) string {
	trimmed := strings.TrimSpace(raw)
	if trimmed == "" {
		return Unknown
	}
	if hit, ok := c.memo[trimmed]; ok {
		return hit
	}
	out := c.match(trimmed)
	c.memo[trimmed] = out
	return out
}

func (c *Corrector) match(raw string) string {
	lowered := strings.ToLower(raw)
	best := -1
	bestDist := 0
	for i, f := range c.folded {
		if f == lowered {
			return c.vocab[i]
		}
		d := levenshtein.ComputeDistance(lowered, f)
		if best == -1 || d < bestDist {
			best = i
			bestDist = d
		}
	}
	if best >= 0 && bestDist <= c.maxDist {
		return c.vocab[best]
	}
	return raw
}
