package ports

import (
	"context"

	"github.com/kamal-hamza/content-hub/internal/core/domain"
)

// CatalogRepository defines the port for reading the asset catalog.
// The catalog is immutable; implementations return copies.
type CatalogRepository interface {
	// All returns every asset in insertion order
	All(ctx context.Context) ([]domain.Asset, error)

	// Get retrieves an asset by id
	Get(ctx context.Context, id string) (*domain.Asset, error)
}

// LinkOpener defines the port for opening a URL in a new browsing context
type LinkOpener interface {
	// Open hands the URL to the system browser without modifying it
	Open(ctx context.Context, url string) error
}

// Clipboard defines the port for copying text to the system clipboard
type Clipboard interface {
	WriteAll(text string) error
}
