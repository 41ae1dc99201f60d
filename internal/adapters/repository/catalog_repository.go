package repository

import (
	"bytes"
	"context"
	_ "embed"
	"errors"
	"fmt"
	"io"

	"github.com/rs/zerolog/log"
	"gopkg.in/yaml.v3"

	"github.com/kamal-hamza/content-hub/internal/core/domain"
)

//go:embed catalog.yaml
var embeddedCatalog []byte

var (
	// ErrAssetNotFound is returned by Get for an unknown id
	ErrAssetNotFound = errors.New("asset not found")
	// ErrDuplicateID is returned when two catalog records share an id
	ErrDuplicateID = errors.New("duplicate asset id")
)

// catalogDocument is the structure of the catalog YAML file
type catalogDocument struct {
	Assets []domain.Asset `yaml:"assets"`
}

// CatalogRepository serves the compiled-in asset catalog.
// It is built once and never mutated afterwards.
type CatalogRepository struct {
	assets []domain.Asset
	byID   map[string]int
}

// NewCatalogRepository loads the catalog embedded in the binary
func NewCatalogRepository() (*CatalogRepository, error) {
	return NewCatalogRepositoryFromYAML(embeddedCatalog)
}

// NewCatalogRepositoryFromYAML builds a repository from a catalog document
func NewCatalogRepositoryFromYAML(data []byte) (*CatalogRepository, error) {
	assets, err := ParseCatalog(data)
	if err != nil {
		return nil, err
	}

	byID := make(map[string]int, len(assets))
	for i, a := range assets {
		byID[a.ID] = i
	}

	log.Debug().Int("assets", len(assets)).Msg("catalog loaded")

	return &CatalogRepository{
		assets: assets,
		byID:   byID,
	}, nil
}

// ParseCatalog decodes and validates a catalog document, keeping document order
func ParseCatalog(data []byte) ([]domain.Asset, error) {
	var doc catalogDocument

	dec := yaml.NewDecoder(bytes.NewReader(data))
	dec.KnownFields(true)
	if err := dec.Decode(&doc); err != nil {
		// An empty document is an empty catalog
		if errors.Is(err, io.EOF) {
			return []domain.Asset{}, nil
		}
		return nil, fmt.Errorf("failed to parse catalog: %w", err)
	}

	assets := make([]domain.Asset, 0, len(doc.Assets))
	seen := make(map[string]bool, len(doc.Assets))
	for i, raw := range doc.Assets {
		asset, err := domain.NewAsset(raw)
		if err != nil {
			return nil, fmt.Errorf("catalog record %d: %w", i+1, err)
		}
		if seen[asset.ID] {
			return nil, fmt.Errorf("%w: %s", ErrDuplicateID, asset.ID)
		}
		seen[asset.ID] = true
		assets = append(assets, asset)
	}

	return assets, nil
}

// All returns a copy of every asset in insertion order
func (r *CatalogRepository) All(ctx context.Context) ([]domain.Asset, error) {
	out := make([]domain.Asset, len(r.assets))
	for i, a := range r.assets {
		out[i] = a.Clone()
	}
	return out, nil
}

// Get retrieves an asset by id
func (r *CatalogRepository) Get(ctx context.Context, id string) (*domain.Asset, error) {
	i, ok := r.byID[id]
	if !ok {
		return nil, fmt.Errorf("%w: %s", ErrAssetNotFound, id)
	}
	asset := r.assets[i].Clone()
	return &asset, nil
}

// Len returns the number of assets in the catalog
func (r *CatalogRepository) Len() int {
	return len(r.assets)
}
