// Package stats runs the Pearson chi-square test of independence over a
// contingency table.
package stats

import (
	"errors"
	"fmt"

	"gonum.org/v1/gonum/stat/distuv"

	"rasff-insights-go/internal/aggregator"
)

// SignificanceLevel is the fixed threshold for reporting an association.
const SignificanceLevel = 0.05

// lowExpected is the classical rule-of-thumb floor for expected cell
// frequencies below which the test's validity is questionable.
const lowExpected = 5.0

var (
	ErrTableTooSmall = errors.New("contingency table needs at least 2 rows and 2 columns")
	ErrZeroMarginal  = errors.New("contingency table has an empty row or column")
)

// ChiSquareResult holds the test outcome plus the sparse-table caveat.
type ChiSquareResult struct {
	Statistic        float64     `json:"statistic"`
	PValue           float64     `json:"p_value"`
	DegreesOfFreedom int         `json:"degrees_of_freedom"`
	Expected         [][]float64 `json:"expected"`

	// LowExpectedCells counts expected frequencies below 5. When non-zero
	// the p-value should be presented with a caveat, not suppressed.
	LowExpectedCells int `json:"low_expected_cells"`
}

// Significant reports whether the association clears the fixed threshold.
func (r ChiSquareResult) Significant() bool {
	return r.PValue < SignificanceLevel
}

// LowExpectedWarning reports whether any expected cell falls below the
// rule-of-thumb floor.
func (r ChiSquareResult) LowExpectedWarning() bool {
	return r.LowExpectedCells > 0
}

// Interpretation renders the fixed-threshold verdict the way the dashboard
// words it.
func (r ChiSquareResult) Interpretation() string {
	if r.Significant() {
		return fmt.Sprintf("statistically significant (p-value %.4f < %.2f): strong association between the two dimensions", r.PValue, SignificanceLevel)
	}
	return fmt.Sprintf("not statistically significant (p-value %.4f >= %.2f): no strong association between the two dimensions", r.PValue, SignificanceLevel)
}

// ChiSquare runs the Pearson test of independence. It errors only on
// degenerate tables: fewer than two rows or columns, or a zero marginal.
func ChiSquare(t *aggregator.ContingencyTable) (ChiSquareResult, error) {
	rows := len(t.RowNames)
	cols := len(t.ColNames)
	if rows < 2 || cols < 2 {
		return ChiSquareResult{}, ErrTableTooSmall
	}
	rowTotals := t.RowTotals()
	colTotals := t.ColTotals()
	total := t.Total()
	for _, rt := range rowTotals {
		if rt == 0 {
			return ChiSquareResult{}, ErrZeroMarginal
		}
	}
	for _, ct := range colTotals {
		if ct == 0 {
			return ChiSquareResult{}, ErrZeroMarginal
		}
	}

	res := ChiSquareResult{
		DegreesOfFreedom: (rows - 1) * (cols - 1),
		Expected:         make([][]float64, rows),
	}
	for i := 0; i < rows; i++ {
		res.Expected[i] = make([]float64, cols)
		for j := 0; j < cols; j++ {
			exp := float64(rowTotals[i]) * float64(colTotals[j]) / float64(total)
			res.Expected[i][j] = exp
			if exp < lowExpected {
				res.LowExpectedCells++
			}
			diff := float64(t.Cell(i, j)) - exp
			res.Statistic += diff * diff / exp
		}
	}

	dist := distuv.ChiSquared{K: float64(res.DegreesOfFreedom)}
	res.PValue = dist.Survival(res.Statistic)
	return res, nil
}
