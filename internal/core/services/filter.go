package services

import (
	"strings"

	"github.com/kamal-hamza/content-hub/internal/core/domain"
)

// Filter returns the assets that pass both the category gate and the text gate,
// in catalog order. An empty category or query disables its gate.
//
// The text gate is a plain case-insensitive substring test against the asset
// haystack. The query is not trimmed, so "  " only matches assets whose
// haystack contains two consecutive spaces.
func Filter(catalog []domain.Asset, query string, category domain.Category) []domain.Asset {
	q := strings.ToLower(query)

	results := make([]domain.Asset, 0, len(catalog))
	for _, a := range catalog {
		if category != "" && a.Category != category {
			continue
		}
		if q != "" && !strings.Contains(a.Haystack(), q) {
			continue
		}
		results = append(results, a)
	}
	return results
}
