package types

import "time"

// Sentinels used throughout normalization.
const (
	Unknown      = "Unknown"
	OtherCountry = "Other"
	NotAvailable = "N/A"
)

// RawRecord is one notification exactly as read from the feed.
// All fields are free text; nothing is trusted.
type RawRecord struct {
	DateOfCase       string `json:"date_of_case"`
	Reference        string `json:"reference"`
	NotifyingCountry string `json:"notification_from"`
	OriginCountry    string `json:"country_origin"`
	Product          string `json:"product"`
	ProductCategory  string `json:"product_category"`
	HazardSubstance  string `json:"hazard_substance"`
	HazardCategory   string `json:"hazard_category"`
}

// CanonicalRecord is a RawRecord after normalization. Category pairs are
// always both populated or both Unknown.
type CanonicalRecord struct {
	Date             time.Time `json:"date_of_case"`
	DateMissing      bool      `json:"date_missing,omitempty"`
	Reference        string    `json:"reference"`
	NotifyingCountry string    `json:"notification_from"`
	OriginCountry    string    `json:"country_origin"`
	Product          string    `json:"product"`
	ProductCategory  string    `json:"prodcat"`
	ProductGroup     string    `json:"groupprod"`
	HazardCategory   string    `json:"hazcat"`
	HazardGroup      string    `json:"grouphaz"`
	HazardSubstance  string    `json:"hazard_substance"`
}

// Field names a caller may aggregate or filter on.
type Field string

const (
	FieldNotifyingCountry Field = "notification_from"
	FieldOriginCountry    Field = "country_origin"
	FieldProductCategory  Field = "prodcat"
	FieldProductGroup     Field = "groupprod"
	FieldHazardCategory   Field = "hazcat"
	FieldHazardGroup      Field = "grouphaz"
	FieldHazardSubstance  Field = "hazard_substance"
)

// Value returns the record's value on one categorical dimension. Unknown
// dimensions return the empty string so aggregation can skip them.
func (r CanonicalRecord) Value(f Field) string {
	switch f {
	case FieldNotifyingCountry:
		return r.NotifyingCountry
	case FieldOriginCountry:
		return r.OriginCountry
	case FieldProductCategory:
		return r.ProductCategory
	case FieldProductGroup:
		return r.ProductGroup
	case FieldHazardCategory:
		return r.HazardCategory
	case FieldHazardGroup:
		return r.HazardGroup
	case FieldHazardSubstance:
		return r.HazardSubstance
	default:
		return ""
	}
}

// ParseField maps user-facing dimension names (query params, CLI flags) to a
// Field. Accepts both canonical names and a few common aliases.
func ParseField(s string) (Field, bool) {
	switch s {
	case "notification_from", "notifying_country":
		return FieldNotifyingCountry, true
	case "country_origin", "origin_country":
		return FieldOriginCountry, true
	case "prodcat", "product_category":
		return FieldProductCategory, true
	case "groupprod", "product_group":
		return FieldProductGroup, true
	case "hazcat", "hazard_category":
		return FieldHazardCategory, true
	case "grouphaz", "hazard_group":
		return FieldHazardGroup, true
	case "hazard_substance":
		return FieldHazardSubstance, true
	}
	return "", false
}
