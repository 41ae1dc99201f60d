package services

import (
	"context"
	"fmt"
	"strings"

	"github.com/kamal-hamza/content-hub/internal/core/domain"
	"github.com/kamal-hamza/content-hub/internal/core/ports"
)

// StatsService aggregates catalog statistics
type StatsService struct {
	catalogRepo ports.CatalogRepository
}

// NewStatsService creates a new stats service
func NewStatsService(catalogRepo ports.CatalogRepository) *StatsService {
	return &StatsService{
		catalogRepo: catalogRepo,
	}
}

// CategoryCount is the number of assets in one category
type CategoryCount struct {
	Category domain.Category
	Count    int
}

// CatalogStats summarises the catalog
type CatalogStats struct {
	Total       int
	ByCategory  []CategoryCount // Every category, in display order, zero counts included
	Previewable int
	Linked      int
	Inert       int
	Tags        int // Distinct tags, case-insensitive
}

// Execute computes statistics over the whole catalog
func (s *StatsService) Execute(ctx context.Context) (*CatalogStats, error) {
	catalog, err := s.catalogRepo.All(ctx)
	if err != nil {
		return nil, fmt.Errorf("failed to load catalog: %w", err)
	}

	counts := make(map[domain.Category]int)
	tags := make(map[string]bool)
	stats := &CatalogStats{Total: len(catalog)}

	for _, a := range catalog {
		counts[a.Category]++

		switch a.Action().Kind {
		case domain.ActionPreview:
			stats.Previewable++
		case domain.ActionLink:
			stats.Linked++
		default:
			stats.Inert++
		}

		for _, t := range a.Tags {
			tags[normalizeTag(t)] = true
		}
	}

	for _, c := range domain.Categories() {
		stats.ByCategory = append(stats.ByCategory, CategoryCount{Category: c, Count: counts[c]})
	}
	stats.Tags = len(tags)

	return stats, nil
}

// Count returns the number of assets in c
func (st *CatalogStats) Count(c domain.Category) int {
	for _, cc := range st.ByCategory {
		if cc.Category == c {
			return cc.Count
		}
	}
	return 0
}

func normalizeTag(tag string) string {
	return strings.ToLower(strings.TrimSpace(tag))
}
