package normalizer

import "strings"

// headerAliases maps folded header spellings seen across the main extract
// and the weekly files onto canonical field names.
var headerAliases = map[string]string{
	"date of case":       "date_of_case",
	"date":               "date_of_case",
	"reference":          "reference",
	"notification from":  "notification_from",
	"notifying country":  "notification_from",
	"country origin":     "country_origin",
	"country of origin":  "country_origin",
	"origin":             "country_origin",
	"product":            "product",
	"product category":   "product_category",
	"hazard substance":   "hazard_substance",
	"hazard":             "hazard_substance",
	"hazard category":    "hazard_category",
}

// CanonicalField maps a raw column header onto its canonical field name,
// tolerating case, surrounding whitespace, and underscore/space variation.
// Unrecognized headers return "", false.
func CanonicalField(header string) (string, bool) {
	folded := strings.ToLower(strings.TrimSpace(header))
	folded = strings.ReplaceAll(folded, "_", " ")
	folded = strings.Join(strings.Fields(folded), " ")
	canon, ok := headerAliases[folded]
	return canon, ok
}
