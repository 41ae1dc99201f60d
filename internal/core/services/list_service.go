package services

import (
	"context"
	"fmt"

	"github.com/kamal-hamza/content-hub/internal/core/domain"
	"github.com/kamal-hamza/content-hub/internal/core/ports"
)

// ListService handles listing and filtering catalog assets
type ListService struct {
	catalogRepo ports.CatalogRepository
}

// NewListService creates a new list service
func NewListService(catalogRepo ports.CatalogRepository) *ListService {
	return &ListService{
		catalogRepo: catalogRepo,
	}
}

// ListRequest represents a request to list assets
type ListRequest struct {
	Query    string          // Free-text query (optional, matched literally)
	Category domain.Category // Active category (optional)
}

// ListResponse represents the response from listing assets
type ListResponse struct {
	Assets      []domain.Asset
	Total       int
	View        View
	Heading     string
	EmptyNotice string // Set only when the layout renders the notice
}

// Execute filters the catalog and picks the layout for the request.
// In home mode Assets is empty; callers show the category chooser instead.
func (s *ListService) Execute(ctx context.Context, req ListRequest) (*ListResponse, error) {
	catalog, err := s.catalogRepo.All(ctx)
	if err != nil {
		return nil, fmt.Errorf("failed to load catalog: %w", err)
	}

	view := SelectView(req.Query, req.Category)

	assets := []domain.Asset{}
	if view != ViewHome {
		assets = Filter(catalog, req.Query, req.Category)
	}

	resp := &ListResponse{
		Assets:  assets,
		Total:   len(assets),
		View:    view,
		Heading: view.Heading(),
	}
	if view.ShowsEmptyNotice(len(assets)) {
		resp.EmptyNotice = EmptyNotice
	}

	return resp, nil
}

// Get retrieves a single asset by id
func (s *ListService) Get(ctx context.Context, id string) (*domain.Asset, error) {
	asset, err := s.catalogRepo.Get(ctx, id)
	if err != nil {
		return nil, fmt.Errorf("failed to get asset: %w", err)
	}
	return asset, nil
}

// Catalog returns the whole catalog in insertion order
func (s *ListService) Catalog(ctx context.Context) ([]domain.Asset, error) {
	catalog, err := s.catalogRepo.All(ctx)
	if err != nil {
		return nil, fmt.Errorf("failed to load catalog: %w", err)
	}
	return catalog, nil
}
