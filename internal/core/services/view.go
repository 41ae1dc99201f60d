package services

import (
	"github.com/kamal-hamza/content-hub/internal/core/domain"
)

// EmptyNotice is rendered in list mode when nothing matches
const EmptyNotice = "No matching assets. Try broader terms or switch category."

// PlaybookMeta is the caption under every playbook card
const PlaybookMeta = "PDF · Playbook"

// View is the presentation layout for the current state
type View int

const (
	// ViewHome shows only the category chooser
	ViewHome View = iota
	// ViewCollateralGrid shows thumbnails; only tiles with an image are active
	ViewCollateralGrid
	// ViewPlaybookGrid shows cards; only cards with a link are active
	ViewPlaybookGrid
	// ViewList shows rows with category and type chips
	ViewList
)

func (v View) String() string {
	switch v {
	case ViewHome:
		return "home"
	case ViewCollateralGrid:
		return "collateral-grid"
	case ViewPlaybookGrid:
		return "playbook-grid"
	default:
		return "list"
	}
}

// SelectView picks the layout for a query and an optional category.
// Unrecognised categories fall back to the list layout.
func SelectView(query string, category domain.Category) View {
	switch {
	case category == "" && query == "":
		return ViewHome
	case category == domain.CategoryMarketingCollaterals:
		return ViewCollateralGrid
	case category == domain.CategoryPlaybooks:
		return ViewPlaybookGrid
	default:
		return ViewList
	}
}

// Heading is the title above the results
func (v View) Heading() string {
	if v == ViewCollateralGrid {
		return string(domain.CategoryMarketingCollaterals)
	}
	return "Matched Assets"
}

// ShowsEmptyNotice reports whether the layout renders EmptyNotice for n results.
// Only the list layout does.
func (v View) ShowsEmptyNotice(n int) bool {
	return v == ViewList && n == 0
}

// ActivationKind is what happens when an item is activated in a layout
type ActivationKind int

const (
	ActivationNone ActivationKind = iota
	ActivationPreview
	ActivationOpenLink
)

func (k ActivationKind) String() string {
	switch k {
	case ActivationPreview:
		return "preview"
	case ActivationOpenLink:
		return "open-link"
	default:
		return "none"
	}
}

// Activation is the outcome of activating an item.
// URL is the exact stored image or link.
type Activation struct {
	Kind ActivationKind
	URL  string
}

// Activate resolves what activating asset does in view.
// The grids have their own rule; every other layout uses the asset's action.
func Activate(view View, asset domain.Asset) Activation {
	switch view {
	case ViewCollateralGrid:
		if asset.Previewable() {
			return Activation{Kind: ActivationPreview, URL: asset.ImageURL}
		}
		return Activation{Kind: ActivationNone}

	case ViewPlaybookGrid:
		if asset.Linked() {
			return Activation{Kind: ActivationOpenLink, URL: asset.Link}
		}
		return Activation{Kind: ActivationNone}
	}

	action := asset.Action()
	switch action.Kind {
	case domain.ActionPreview:
		return Activation{Kind: ActivationPreview, URL: action.URL}
	case domain.ActionLink:
		return Activation{Kind: ActivationOpenLink, URL: action.URL}
	default:
		return Activation{Kind: ActivationNone}
	}
}

// Clickable reports whether activating asset in view does anything
func Clickable(view View, asset domain.Asset) bool {
	return Activate(view, asset).Kind != ActivationNone
}
