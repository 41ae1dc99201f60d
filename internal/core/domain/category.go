package domain

import (
	"errors"
	"fmt"
	"strings"
)

// ErrUnknownCategory is returned when a string names none of the catalog categories
var ErrUnknownCategory = errors.New("unknown category")

// Category is one of the fixed top-level groupings of the catalog
type Category string

const (
	CategoryMarketingCollaterals   Category = "Marketing Collaterals"
	CategoryPlaybooks              Category = "Playbooks"
	CategoryCaseStudies            Category = "Case Studies"
	CategoryCompetitivePositioning Category = "Competitive Positioning Materials"
	CategoryContractTemplates      Category = "Contract Templates"
)

type categoryInfo struct {
	category Category
	slug     string
	icon     string
}

// categoryTable is the display order of the chooser
var categoryTable = []categoryInfo{
	{CategoryMarketingCollaterals, "marketing-collaterals", "📄"},
	{CategoryPlaybooks, "playbooks", "📘"},
	{CategoryCaseStudies, "case-studies", "📊"},
	{CategoryCompetitivePositioning, "competitive-positioning", "🎯"},
	{CategoryContractTemplates, "contract-templates", "🧾"},
}

// Categories returns all categories in display order
func Categories() []Category {
	out := make([]Category, len(categoryTable))
	for i, info := range categoryTable {
		out[i] = info.category
	}
	return out
}

// ParseCategory resolves a label (case-insensitive) or a slug to a Category
func ParseCategory(s string) (Category, error) {
	needle := strings.TrimSpace(s)
	for _, info := range categoryTable {
		if strings.EqualFold(needle, string(info.category)) || strings.EqualFold(needle, info.slug) {
			return info.category, nil
		}
	}
	return "", fmt.Errorf("%w: %q", ErrUnknownCategory, s)
}

func (c Category) info() (categoryInfo, bool) {
	for _, info := range categoryTable {
		if info.category == c {
			return info, true
		}
	}
	return categoryInfo{}, false
}

// Valid reports whether c is one of the five catalog categories
func (c Category) Valid() bool {
	_, ok := c.info()
	return ok
}

// Slug returns the URL/flag friendly name, e.g. "case-studies"
func (c Category) Slug() string {
	if info, ok := c.info(); ok {
		return info.slug
	}
	return GenerateSlug(string(c))
}

// Icon returns the chooser icon for the category
func (c Category) Icon() string {
	if info, ok := c.info(); ok {
		return info.icon
	}
	return "•"
}

func (c Category) String() string {
	return string(c)
}
