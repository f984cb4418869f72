package dataset

import (
	"rasff-insights-go/internal/aggregator"
	"rasff-insights-go/internal/types"
)

// Summary is the dashboard's key-statistics block over one canonical batch.
type Summary struct {
	TotalNotifications      int                  `json:"total_notifications"`
	UniqueProductCategories int                  `json:"unique_product_categories"`
	UniqueHazardCategories  int                  `json:"unique_hazard_categories"`
	TopProductCategories    []aggregator.Bucket  `json:"top_product_categories"`
	TopHazardCategories     []aggregator.Bucket  `json:"top_hazard_categories"`
	ByNotifyingCountry      []aggregator.Bucket  `json:"by_notifying_country"`
	ByOriginCountry         []aggregator.Bucket  `json:"by_origin_country"`
}

const topN = 10

// Summarize computes the headline counts and top-10 frequency tables the
// presentation layer renders as metrics, bar and pie charts.
func Summarize(records []types.CanonicalRecord) Summary {
	return Summary{
		TotalNotifications:      len(records),
		UniqueProductCategories: len(aggregator.Count(records, types.FieldProductCategory)),
		UniqueHazardCategories:  len(aggregator.Count(records, types.FieldHazardCategory)),
		TopProductCategories:    aggregator.TopN(records, types.FieldProductCategory, topN),
		TopHazardCategories:     aggregator.TopN(records, types.FieldHazardCategory, topN),
		ByNotifyingCountry:      aggregator.Count(records, types.FieldNotifyingCountry),
		ByOriginCountry:         aggregator.Count(records, types.FieldOriginCountry),
	}
}
