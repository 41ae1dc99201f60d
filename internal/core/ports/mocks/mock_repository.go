package mocks

import (
	"context"
	"fmt"
	"sync"

	"github.com/kamal-hamza/content-hub/internal/core/domain"
)

// MockCatalogRepository is a mock implementation of the CatalogRepository interface for testing
type MockCatalogRepository struct {
	mu      sync.RWMutex
	assets  []domain.Asset
	listErr error
}

// NewMockCatalogRepository creates a new mock catalog holding the given assets in order.
// It panics on a record that NewAsset rejects.
func NewMockCatalogRepository(assets ...domain.Asset) *MockCatalogRepository {
	m := &MockCatalogRepository{}
	for _, a := range assets {
		if err := m.Add(a); err != nil {
			panic(err)
		}
	}
	return m
}

// Add appends an asset, resolving its action the same way the real catalog does
func (m *MockCatalogRepository) Add(asset domain.Asset) error {
	resolved, err := domain.NewAsset(asset)
	if err != nil {
		return err
	}

	m.mu.Lock()
	defer m.mu.Unlock()
	m.assets = append(m.assets, resolved)
	return nil
}

// SetListError makes All fail with err
func (m *MockCatalogRepository) SetListError(err error) {
	m.mu.Lock()
	defer m.mu.Unlock()
	m.listErr = err
}

// All returns every asset in insertion order
func (m *MockCatalogRepository) All(ctx context.Context) ([]domain.Asset, error) {
	m.mu.RLock()
	defer m.mu.RUnlock()

	if m.listErr != nil {
		return nil, m.listErr
	}

	out := make([]domain.Asset, len(m.assets))
	for i, a := range m.assets {
		out[i] = a.Clone()
	}
	return out, nil
}

// Get retrieves an asset by id
func (m *MockCatalogRepository) Get(ctx context.Context, id string) (*domain.Asset, error) {
	m.mu.RLock()
	defer m.mu.RUnlock()

	for i := range m.assets {
		if m.assets[i].ID == id {
			asset := m.assets[i].Clone()
			return &asset, nil
		}
	}
	return nil, fmt.Errorf("asset not found: %s", id)
}

// --- MockLinkOpener ---

// MockLinkOpener records every URL it is asked to open
type MockLinkOpener struct {
	mu         sync.Mutex
	opened     []string
	shouldFail bool
	failError  error
}

func NewMockLinkOpener() *MockLinkOpener {
	return &MockLinkOpener{}
}

func (m *MockLinkOpener) Open(ctx context.Context, url string) error {
	m.mu.Lock()
	defer m.mu.Unlock()
	m.opened = append(m.opened, url)
	if m.shouldFail {
		if m.failError != nil {
			return m.failError
		}
		return fmt.Errorf("mock open failed")
	}
	return nil
}

func (m *MockLinkOpener) SetShouldFail(fail bool, err error) {
	m.mu.Lock()
	defer m.mu.Unlock()
	m.shouldFail = fail
	m.failError = err
}

// Opened returns the URLs passed to Open, in call order
func (m *MockLinkOpener) Opened() []string {
	m.mu.Lock()
	defer m.mu.Unlock()
	return append([]string(nil), m.opened...)
}

// --- MockClipboard ---

type MockClipboard struct {
	mu       sync.Mutex
	contents string
	writes   int
}

func NewMockClipboard() *MockClipboard {
	return &MockClipboard{}
}

func (m *MockClipboard) WriteAll(text string) error {
	m.mu.Lock()
	defer m.mu.Unlock()
	m.contents = text
	m.writes++
	return nil
}

func (m *MockClipboard) Contents() string {
	m.mu.Lock()
	defer m.mu.Unlock()
	return m.contents
}

func (m *MockClipboard) Writes() int {
	m.mu.Lock()
	defer m.mu.Unlock()
	return m.writes
}
