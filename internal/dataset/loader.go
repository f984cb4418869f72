// Package dataset reads raw feed rows out of CSV and spreadsheet extracts.
// It owns file-format mechanics only; all cleaning happens in normalizer.
package dataset

import (
	"encoding/csv"
	"fmt"
	"io"
	"strings"

	"github.com/xuri/excelize/v2"

	"rasff-insights-go/internal/normalizer"
	"rasff-insights-go/internal/types"
)

// columnMap holds the index of each canonical field in one file's header
// row, -1 when the file does not carry the field.
type columnMap map[string]int

func mapHeader(header []string) columnMap {
	m := columnMap{
		"date_of_case":      -1,
		"reference":         -1,
		"notification_from": -1,
		"country_origin":    -1,
		"product":           -1,
		"product_category":  -1,
		"hazard_substance":  -1,
		"hazard_category":   -1,
	}
	for i, h := range header {
		if canon, ok := normalizer.CanonicalField(h); ok && m[canon] == -1 {
			m[canon] = i
		}
	}
	return m
}

func (m columnMap) pick(row []string, field string) string {
	idx := m[field]
	if idx < 0 || idx >= len(row) {
		return ""
	}
	return strings.TrimSpace(row[idx])
}

func (m columnMap) toRaw(row []string) types.RawRecord {
	return types.RawRecord{
		DateOfCase:       m.pick(row, "date_of_case"),
		Reference:        m.pick(row, "reference"),
		NotifyingCountry: m.pick(row, "notification_from"),
		OriginCountry:    m.pick(row, "country_origin"),
		Product:          m.pick(row, "product"),
		ProductCategory:  m.pick(row, "product_category"),
		HazardSubstance:  m.pick(row, "hazard_substance"),
		HazardCategory:   m.pick(row, "hazard_category"),
	}
}

// blank rows and separator junk carry neither a reference nor any category
// text; skip them quietly the way invalid rows always have been.
func usable(r types.RawRecord) bool {
	return r.Reference != "" || r.ProductCategory != "" || r.HazardCategory != "" || r.Product != ""
}

// LoadCSV reads RawRecords from a CSV extract. The first row must be a
// header; unrecognized columns are ignored and missing ones read as empty.
func LoadCSV(r io.Reader) ([]types.RawRecord, error) {
	cr := csv.NewReader(r)
	cr.FieldsPerRecord = -1
	rows, err := cr.ReadAll()
	if err != nil {
		return nil, fmt.Errorf("read csv: %w", err)
	}
	if len(rows) == 0 {
		return []types.RawRecord{}, nil
	}
	cols := mapHeader(rows[0])
	out := make([]types.RawRecord, 0, len(rows)-1)
	for _, row := range rows[1:] {
		if raw := cols.toRaw(row); usable(raw) {
			out = append(out, raw)
		}
	}
	return out, nil
}

// LoadXLSX reads RawRecords from the first sheet of a spreadsheet file.
func LoadXLSX(path string) ([]types.RawRecord, error) {
	f, err := excelize.OpenFile(path)
	if err != nil {
		return nil, fmt.Errorf("open file: %w", err)
	}
	defer f.Close()
	return fromWorkbook(f)
}

// ParseXLSX reads RawRecords from spreadsheet bytes, for downloaded weekly
// files that never touch disk.
func ParseXLSX(r io.Reader) ([]types.RawRecord, error) {
	f, err := excelize.OpenReader(r)
	if err != nil {
		return nil, fmt.Errorf("open workbook: %w", err)
	}
	defer f.Close()
	return fromWorkbook(f)
}

func fromWorkbook(f *excelize.File) ([]types.RawRecord, error) {
	sheets := f.GetSheetList()
	if len(sheets) == 0 {
		return nil, fmt.Errorf("no sheets")
	}
	rows, err := f.GetRows(sheets[0])
	if err != nil {
		return nil, fmt.Errorf("read rows: %w", err)
	}
	if len(rows) == 0 {
		return []types.RawRecord{}, nil
	}
	cols := mapHeader(rows[0])
	out := make([]types.RawRecord, 0, len(rows)-1)
	for _, row := range rows[1:] {
		if raw := cols.toRaw(row); usable(raw) {
			out = append(out, raw)
		}
	}
	return out, nil
}
