package stats

import (
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"rasff-insights-go/internal/aggregator"
	"rasff-insights-go/internal/types"
)

// tableOf builds a contingency table from explicit cell counts by
// synthesizing records, so the test goes through the same crosstab path as
// production code.
func tableOf(rows, cols []string, counts [][]int) *aggregator.ContingencyTable {
	var records []types.CanonicalRecord
	for i, r := range rows {
		for j, c := range cols {
			for k := 0; k < counts[i][j]; k++ {
				records = append(records, types.CanonicalRecord{ProductGroup: r, HazardGroup: c})
			}
		}
	}
	return aggregator.Crosstab(records, types.FieldProductGroup, types.FieldHazardGroup)
}

func TestChiSquareNoAssociation(t *testing.T) {
	// 100 records split 50/50 on both dimensions, perfectly independent
	tbl := tableOf([]string{"A", "B"}, []string{"X", "Y"}, [][]int{{25, 25}, {25, 25}})
	res, err := ChiSquare(tbl)
	require.NoError(t, err)
	assert.InDelta(t, 0.0, res.Statistic, 1e-12)
	assert.Greater(t, res.PValue, SignificanceLevel)
	assert.Equal(t, 1, res.DegreesOfFreedom)
	assert.False(t, res.Significant())
	assert.Contains(t, res.Interpretation(), "not statistically significant")
}

func TestChiSquarePerfectAssociation(t *testing.T) {
	tbl := tableOf([]string{"A", "B"}, []string{"X", "Y"}, [][]int{{30, 0}, {0, 30}})
	res, err := ChiSquare(tbl)
	require.NoError(t, err)
	// expected cells are all 15; statistic = 4 * 15 = 60
	assert.InDelta(t, 60.0, res.Statistic, 1e-9)
	assert.Less(t, res.PValue, 1e-6)
	assert.True(t, res.Significant())
	assert.Contains(t, res.Interpretation(), "statistically significant")
	for i := range res.Expected {
		for j := range res.Expected[i] {
			assert.InDelta(t, 15.0, res.Expected[i][j], 1e-9)
		}
	}
}

func TestChiSquareExpectedFromMarginals(t *testing.T) {
	tbl := tableOf([]string{"A", "B"}, []string{"X", "Y"}, [][]int{{10, 20}, {30, 40}})
	res, err := ChiSquare(tbl)
	require.NoError(t, err)
	// row totals 30/70, col totals 40/60, n=100
	assert.InDelta(t, 12.0, res.Expected[0][0], 1e-9)
	assert.InDelta(t, 18.0, res.Expected[0][1], 1e-9)
	assert.InDelta(t, 28.0, res.Expected[1][0], 1e-9)
	assert.InDelta(t, 42.0, res.Expected[1][1], 1e-9)
	assert.Equal(t, 1, res.DegreesOfFreedom)
}

func TestChiSquareLowExpectedCellsWarning(t *testing.T) {
	tbl := tableOf([]string{"A", "B"}, []string{"X", "Y"}, [][]int{{2, 3}, {3, 2}})
	res, err := ChiSquare(tbl)
	require.NoError(t, err)
	assert.Equal(t, 4, res.LowExpectedCells)
	assert.True(t, res.LowExpectedWarning())
}

func TestChiSquareDegenerateTables(t *testing.T) {
	_, err := ChiSquare(tableOf([]string{"A"}, []string{"X", "Y"}, [][]int{{5, 5}}))
	assert.ErrorIs(t, err, ErrTableTooSmall)

	empty := aggregator.Crosstab(nil, types.FieldProductGroup, types.FieldHazardGroup)
	_, err = ChiSquare(empty)
	assert.ErrorIs(t, err, ErrTableTooSmall)
}

func TestChiSquareDegreesOfFreedom(t *testing.T) {
	tbl := tableOf(
		[]string{"A", "B", "C"},
		[]string{"X", "Y", "Z", "W"},
		[][]int{{9, 9, 9, 9}, {9, 9, 9, 9}, {9, 9, 9, 9}},
	)
	res, err := ChiSquare(tbl)
	require.NoError(t, err)
	assert.Equal(t, 6, res.DegreesOfFreedom)
}

func TestInterpretationMentionsPValue(t *testing.T) {
	tbl := tableOf([]string{"A", "B"}, []string{"X", "Y"}, [][]int{{25, 25}, {25, 25}})
	res, err := ChiSquare(tbl)
	require.NoError(t, err)
	assert.True(t, strings.Contains(res.Interpretation(), "p-value"))
}
