// Package aggregator builds frequency and contingency tables over canonical
// records.
package aggregator

import (
	"sort"
	"time"

	"rasff-insights-go/internal/types"
)

// Bucket is one row of a frequency table.
type Bucket struct {
	Value string `json:"value"`
	Count int    `json:"count"`
}

// Count tabulates record frequencies on one dimension, sorted descending by
// count with ties broken alphabetically. Records with an empty value on the
// dimension are skipped.
func Count(records []types.CanonicalRecord, dim types.Field) []Bucket {
	counts := map[string]int{}
	for _, r := range records {
		if v := r.Value(dim); v != "" {
			counts[v]++
		}
	}
	out := make([]Bucket, 0, len(counts))
	for v, c := range counts {
		out = append(out, Bucket{Value: v, Count: c})
	}
	sort.Slice(out, func(i, j int) bool {
		if out[i].Count != out[j].Count {
			return out[i].Count > out[j].Count
		}
		return out[i].Value < out[j].Value
	})
	return out
}

// TopN returns the first n buckets of Count.
func TopN(records []types.CanonicalRecord, dim types.Field, n int) []Bucket {
	buckets := Count(records, dim)
	if len(buckets) > n {
		buckets = buckets[:n]
	}
	return buckets
}

// ContingencyTable is a cross-tabulation of counts over two categorical
// dimensions. Row and column labels keep first-seen order.
type ContingencyTable struct {
	RowDim   types.Field `json:"row_dim"`
	ColDim   types.Field `json:"col_dim"`
	RowNames []string    `json:"rows"`
	ColNames []string    `json:"cols"`
	Counts   [][]int     `json:"counts"`

	rowIdx map[string]int
	colIdx map[string]int
}

// Crosstab counts records over (rowDim, colDim). Records with an empty value
// on either dimension are excluded, so the cell sum equals the number of
// records with both values present.
func Crosstab(records []types.CanonicalRecord, rowDim, colDim types.Field) *ContingencyTable {
	t := &ContingencyTable{
		RowDim: rowDim,
		ColDim: colDim,
		rowIdx: map[string]int{},
		colIdx: map[string]int{},
	}
	for _, r := range records {
		row := r.Value(rowDim)
		col := r.Value(colDim)
		if row == "" || col == "" {
			continue
		}
		ri, ok := t.rowIdx[row]
		if !ok {
			ri = len(t.RowNames)
			t.rowIdx[row] = ri
			t.RowNames = append(t.RowNames, row)
			t.Counts = append(t.Counts, make([]int, len(t.ColNames)))
		}
		ci, ok := t.colIdx[col]
		if !ok {
			ci = len(t.ColNames)
			t.colIdx[col] = ci
			t.ColNames = append(t.ColNames, col)
			for i := range t.Counts {
				t.Counts[i] = append(t.Counts[i], 0)
			}
		}
		t.Counts[ri][ci]++
	}
	return t
}

// Cell returns the count at (row i, col j).
func (t *ContingencyTable) Cell(i, j int) int { return t.Counts[i][j] }

// Total is the sum of all cells.
func (t *ContingencyTable) Total() int {
	sum := 0
	for _, row := range t.Counts {
		for _, c := range row {
			sum += c
		}
	}
	return sum
}

// RowTotals returns the marginal sum of each row.
func (t *ContingencyTable) RowTotals() []int {
	out := make([]int, len(t.RowNames))
	for i, row := range t.Counts {
		for _, c := range row {
			out[i] += c
		}
	}
	return out
}

// ColTotals returns the marginal sum of each column.
func (t *ContingencyTable) ColTotals() []int {
	out := make([]int, len(t.ColNames))
	for _, row := range t.Counts {
		for j, c := range row {
			out[j] += c
		}
	}
	return out
}

// Association is one (row, col) cell flattened for top-association views.
type Association struct {
	Row   string `json:"row"`
	Col   string `json:"col"`
	Count int    `json:"count"`
}

// TopAssociations flattens the table and returns the n largest cells,
// descending by count with ties broken by row then col label.
func (t *ContingencyTable) TopAssociations(n int) []Association {
	var all []Association
	for i, row := range t.Counts {
		for j, c := range row {
			if c > 0 {
				all = append(all, Association{Row: t.RowNames[i], Col: t.ColNames[j], Count: c})
			}
		}
	}
	sort.Slice(all, func(i, j int) bool {
		if all[i].Count != all[j].Count {
			return all[i].Count > all[j].Count
		}
		if all[i].Row != all[j].Row {
			return all[i].Row < all[j].Row
		}
		return all[i].Col < all[j].Col
	})
	if len(all) > n {
		all = all[:n]
	}
	return all
}

// Filter keeps records whose value on dim is one of allowed. An empty
// allowed list keeps everything, matching the dashboard's multiselects.
func Filter(records []types.CanonicalRecord, dim types.Field, allowed ...string) []types.CanonicalRecord {
	if len(allowed) == 0 {
		return records
	}
	set := make(map[string]struct{}, len(allowed))
	for _, a := range allowed {
		set[a] = struct{}{}
	}
	out := make([]types.CanonicalRecord, 0, len(records))
	for _, r := range records {
		if _, ok := set[r.Value(dim)]; ok {
			out = append(out, r)
		}
	}
	return out
}

// FilterByDateRange keeps records with from <= date <= to. Records with a
// missing date are dropped here and only here; normalization keeps them.
func FilterByDateRange(records []types.CanonicalRecord, from, to time.Time) []types.CanonicalRecord {
	out := make([]types.CanonicalRecord, 0, len(records))
	for _, r := range records {
		if r.DateMissing {
			continue
		}
		if r.Date.Before(from) || r.Date.After(to) {
			continue
		}
		out = append(out, r)
	}
	return out
}
