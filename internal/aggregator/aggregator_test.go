package aggregator

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"rasff-insights-go/internal/types"
)

func rec(prodGroup, hazGroup, country string) types.CanonicalRecord {
	return types.CanonicalRecord{
		ProductGroup:     prodGroup,
		HazardGroup:      hazGroup,
		NotifyingCountry: country,
	}
}

func TestCountSortsDescendingTiesAlphabetical(t *testing.T) {
	records := []types.CanonicalRecord{
		rec("Seafood", "", ""),
		rec("Seafood", "", ""),
		rec("Beverages", "", ""),
		rec("Dairy", "", ""),
		rec("Beverages", "", ""),
		rec("Animal Feed", "", ""),
	}
	got := Count(records, types.FieldProductGroup)
	want := []Bucket{
		{"Beverages", 2},
		{"Seafood", 2},
		{"Animal Feed", 1},
		{"Dairy", 1},
	}
	assert.Equal(t, want, got)
}

func TestCountSkipsEmptyValues(t *testing.T) {
	records := []types.CanonicalRecord{
		rec("Seafood", "", ""),
		rec("", "", ""),
	}
	got := Count(records, types.FieldProductGroup)
	assert.Equal(t, []Bucket{{"Seafood", 1}}, got)
}

func TestCountEmptyInput(t *testing.T) {
	got := Count(nil, types.FieldProductGroup)
	require.NotNil(t, got)
	assert.Empty(t, got)
}

func TestTopN(t *testing.T) {
	records := []types.CanonicalRecord{
		rec("A", "", ""), rec("A", "", ""), rec("A", "", ""),
		rec("B", "", ""), rec("B", "", ""),
		rec("C", "", ""),
	}
	got := TopN(records, types.FieldProductGroup, 2)
	assert.Equal(t, []Bucket{{"A", 3}, {"B", 2}}, got)
	assert.Len(t, TopN(records, types.FieldProductGroup, 10), 3)
}

func TestCrosstabCellSumEqualsCountedRecords(t *testing.T) {
	records := []types.CanonicalRecord{
		rec("Seafood", "Biological Hazard", ""),
		rec("Seafood", "Chemical Hazard", ""),
		rec("Beverages", "Biological Hazard", ""),
		rec("Beverages", "Biological Hazard", ""),
		rec("", "Biological Hazard", ""),  // missing row value: excluded
		rec("Seafood", "", ""),            // missing col value: excluded
	}
	tbl := Crosstab(records, types.FieldProductGroup, types.FieldHazardGroup)
	assert.Equal(t, 4, tbl.Total())
	assert.Equal(t, []string{"Seafood", "Beverages"}, tbl.RowNames)
	assert.Equal(t, []string{"Biological Hazard", "Chemical Hazard"}, tbl.ColNames)
	assert.Equal(t, 1, tbl.Cell(0, 0))
	assert.Equal(t, 1, tbl.Cell(0, 1))
	assert.Equal(t, 2, tbl.Cell(1, 0))
	assert.Equal(t, 0, tbl.Cell(1, 1))
	assert.Equal(t, []int{2, 2}, tbl.RowTotals())
	assert.Equal(t, []int{3, 1}, tbl.ColTotals())
}

func TestCrosstabEmptyInput(t *testing.T) {
	tbl := Crosstab(nil, types.FieldProductGroup, types.FieldHazardGroup)
	assert.Zero(t, tbl.Total())
	assert.Empty(t, tbl.RowNames)
	assert.Empty(t, tbl.ColNames)
}

func TestTopAssociations(t *testing.T) {
	records := []types.CanonicalRecord{
		rec("Seafood", "Biological Hazard", ""),
		rec("Seafood", "Biological Hazard", ""),
		rec("Seafood", "Biological Hazard", ""),
		rec("Beverages", "Chemical Hazard", ""),
		rec("Beverages", "Chemical Hazard", ""),
		rec("Dairy", "Biological Hazard", ""),
	}
	tbl := Crosstab(records, types.FieldProductGroup, types.FieldHazardGroup)
	got := tbl.TopAssociations(2)
	assert.Equal(t, []Association{
		{"Seafood", "Biological Hazard", 3},
		{"Beverages", "Chemical Hazard", 2},
	}, got)
}

func TestFilter(t *testing.T) {
	records := []types.CanonicalRecord{
		rec("", "", "France"),
		rec("", "", "Germany"),
		rec("", "", "Spain"),
	}
	got := Filter(records, types.FieldNotifyingCountry, "France", "Spain")
	require.Len(t, got, 2)
	assert.Equal(t, "France", got[0].NotifyingCountry)
	assert.Equal(t, "Spain", got[1].NotifyingCountry)

	// empty filter keeps everything
	assert.Len(t, Filter(records, types.FieldNotifyingCountry), 3)
}

func TestFilterByDateRangeDropsMissingDates(t *testing.T) {
	day := func(d int) time.Time { return time.Date(2024, 6, d, 0, 0, 0, 0, time.UTC) }
	records := []types.CanonicalRecord{
		{Reference: "in", Date: day(10)},
		{Reference: "early", Date: day(1)},
		{Reference: "late", Date: day(30)},
		{Reference: "missing", DateMissing: true},
	}
	got := FilterByDateRange(records, day(5), day(15))
	require.Len(t, got, 1)
	assert.Equal(t, "in", got[0].Reference)
}
