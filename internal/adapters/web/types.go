package web

import (
	"github.com/kamal-hamza/content-hub/internal/core/domain"
	"github.com/kamal-hamza/content-hub/internal/core/services"
)

// AssetResponse is the wire form of an asset.
// Action is what activating the asset does in the list layout;
// Activation is the same for the layout of the request.
type AssetResponse struct {
	ID           string   `json:"id" yaml:"id"`
	Title        string   `json:"title" yaml:"title"`
	Category     string   `json:"category" yaml:"category"`
	CategorySlug string   `json:"categorySlug" yaml:"categorySlug"`
	Type         string   `json:"type" yaml:"type"`
	Tags         []string `json:"tags" yaml:"tags"`
	Description  string   `json:"description" yaml:"description"`
	ImageURL     string   `json:"imageUrl,omitempty" yaml:"imageUrl,omitempty"`
	Link         string   `json:"link,omitempty" yaml:"link,omitempty"`
	Action       string   `json:"action" yaml:"action"`
	Activation   string   `json:"activation,omitempty" yaml:"activation,omitempty"`
}

// AssetCollection is the response of GET /api/assets
type AssetCollection struct {
	Query       string          `json:"query" yaml:"query"`
	Category    string          `json:"category,omitempty" yaml:"category,omitempty"`
	View        string          `json:"view" yaml:"view"`
	Heading     string          `json:"heading" yaml:"heading"`
	EmptyNotice string          `json:"emptyNotice,omitempty" yaml:"emptyNotice,omitempty"`
	Assets      []AssetResponse `json:"assets" yaml:"assets"`
	Total       int             `json:"total" yaml:"total"`
}

// CategoryResponse is one entry of GET /api/categories
type CategoryResponse struct {
	Label string `json:"label" yaml:"label"`
	Slug  string `json:"slug" yaml:"slug"`
	Icon  string `json:"icon" yaml:"icon"`
	Count int    `json:"count" yaml:"count"`
}

// HealthResponse is the response of GET /healthz
type HealthResponse struct {
	Status string `json:"status"`
	Assets int    `json:"assets"`
	Uptime string `json:"uptime"`
}

// NewAssetResponse converts an asset for a layout; ViewHome omits the activation
func NewAssetResponse(a domain.Asset, view services.View) AssetResponse {
	resp := AssetResponse{
		ID:           a.ID,
		Title:        a.Title,
		Category:     string(a.Category),
		CategorySlug: a.Category.Slug(),
		Type:         a.Type,
		Tags:         a.Tags,
		Description:  a.Description,
		ImageURL:     a.ImageURL,
		Link:         a.Link,
		Action:       services.Activate(services.ViewList, a).Kind.String(),
	}
	if resp.Tags == nil {
		resp.Tags = []string{}
	}
	if view != services.ViewHome {
		resp.Activation = services.Activate(view, a).Kind.String()
	}
	return resp
}

// NewAssetCollection converts a list result
func NewAssetCollection(req services.ListRequest, resp *services.ListResponse) AssetCollection {
	out := AssetCollection{
		Query:       req.Query,
		View:        resp.View.String(),
		Heading:     resp.Heading,
		EmptyNotice: resp.EmptyNotice,
		Assets:      make([]AssetResponse, 0, len(resp.Assets)),
		Total:       resp.Total,
	}
	if req.Category != "" {
		out.Category = string(req.Category)
	}
	for _, a := range resp.Assets {
		out.Assets = append(out.Assets, NewAssetResponse(a, resp.View))
	}
	return out
}

// NewCategoryResponses lists every category in display order with its count
func NewCategoryResponses(stats *services.CatalogStats) []CategoryResponse {
	out := make([]CategoryResponse, 0, len(stats.ByCategory))
	for _, cc := range stats.ByCategory {
		out = append(out, CategoryResponse{
			Label: string(cc.Category),
			Slug:  cc.Category.Slug(),
			Icon:  cc.Category.Icon(),
			Count: cc.Count,
		})
	}
	return out
}
