// Package export writes canonical records back out as CSV.
package export

import (
	"encoding/csv"
	"fmt"
	"io"

	"rasff-insights-go/internal/types"
)

// Header is the canonical field order of an export. References stay text so
// leading zeros and mixed formats survive a spreadsheet round trip.
var Header = []string{
	"date_of_case", "reference", "notification_from", "country_origin",
	"product", "prodcat", "groupprod", "hazcat", "grouphaz",
	"hazard_substance",
}

const dateLayout = "2006-01-02"

// WriteCSV dumps records verbatim with a header row. Missing dates write as
// an empty field.
func WriteCSV(w io.Writer, records []types.CanonicalRecord) error {
	cw := csv.NewWriter(w)
	if err := cw.Write(Header); err != nil {
		return fmt.Errorf("write header: %w", err)
	}
	for _, r := range records {
		date := ""
		if !r.DateMissing {
			date = r.Date.Format(dateLayout)
		}
		row := []string{
			date, r.Reference, r.NotifyingCountry, r.OriginCountry,
			r.Product, r.ProductCategory, r.ProductGroup,
			r.HazardCategory, r.HazardGroup, r.HazardSubstance,
		}
		if err := cw.Write(row); err != nil {
			return fmt.Errorf("write record %s: %w", r.Reference, err)
		}
	}
	cw.Flush()
	return cw.Error()
}
