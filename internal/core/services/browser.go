package services

import (
	"context"
	"fmt"

	"github.com/kamal-hamza/content-hub/internal/core/domain"
	"github.com/kamal-hamza/content-hub/internal/core/ports"
)

// Browser owns the UI state of one browsing session: the query, the active
// category and the previewed asset. It is not safe for concurrent use; the
// rendering loop that owns it applies every event in turn.
type Browser struct {
	catalog  []domain.Asset
	opener   ports.LinkOpener
	query    string
	category domain.Category
	selected *domain.Asset
}

// NewBrowser creates a browser over a catalog snapshot in home mode
func NewBrowser(catalog []domain.Asset, opener ports.LinkOpener) *Browser {
	return &Browser{
		catalog: catalog,
		opener:  opener,
	}
}

// Query returns the current search text
func (b *Browser) Query() string {
	return b.query
}

// Category returns the active category, or "" when none is selected
func (b *Browser) Category() domain.Category {
	return b.category
}

// SetQuery replaces the search text
func (b *Browser) SetQuery(q string) {
	b.query = q
}

// SelectCategory makes c the active category
func (b *Browser) SelectCategory(c domain.Category) {
	b.category = c
}

// ClearCategory removes the category gate
func (b *Browser) ClearCategory() {
	b.category = ""
}

// Home clears the query and the category
func (b *Browser) Home() {
	b.query = ""
	b.category = ""
}

// IsHome reports whether only the category chooser is shown
func (b *Browser) IsHome() bool {
	return b.View() == ViewHome
}

// View returns the layout for the current state
func (b *Browser) View() View {
	return SelectView(b.query, b.category)
}

// Results returns the filtered catalog for the current state
func (b *Browser) Results() []domain.Asset {
	return Filter(b.catalog, b.query, b.category)
}

// Selected returns the previewed asset, or nil
func (b *Browser) Selected() *domain.Asset {
	return b.selected
}

// Activate performs the current layout's action for asset.
// A preview replaces any open preview. A link is handed to the opener
// unchanged and leaves the state alone; its error is only informational.
func (b *Browser) Activate(ctx context.Context, asset domain.Asset) (Activation, error) {
	activation := Activate(b.View(), asset)

	switch activation.Kind {
	case ActivationPreview:
		selected := asset
		b.selected = &selected

	case ActivationOpenLink:
		if b.opener == nil {
			return activation, fmt.Errorf("no link opener configured")
		}
		if err := b.opener.Open(ctx, activation.URL); err != nil {
			return activation, fmt.Errorf("failed to open link: %w", err)
		}
	}

	return activation, nil
}

// Preview opens the preview for asset directly, regardless of layout.
// Assets without an image cannot be previewed.
func (b *Browser) Preview(asset domain.Asset) bool {
	if !asset.Previewable() {
		return false
	}
	selected := asset
	b.selected = &selected
	return true
}

// Dismiss closes the preview
func (b *Browser) Dismiss() {
	b.selected = nil
}
