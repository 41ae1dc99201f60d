package domain

import (
	"errors"
	"fmt"
	"slices"
	"strings"
)

// ErrInvalidAsset is returned by NewAsset when a record fails validation
var ErrInvalidAsset = errors.New("invalid asset")

// ActionKind says what activating an asset does outside of a bespoke layout
type ActionKind int

const (
	// ActionInert assets have neither an image nor a link
	ActionInert ActionKind = iota
	// ActionPreview assets open the in-app preview of their image
	ActionPreview
	// ActionLink assets open their link in a new browsing context
	ActionLink
)

func (k ActionKind) String() string {
	switch k {
	case ActionPreview:
		return "preview"
	case ActionLink:
		return "link"
	default:
		return "inert"
	}
}

// Action is the resolved click behaviour of an asset.
// URL is the image for ActionPreview and the link for ActionLink.
type Action struct {
	Kind ActionKind
	URL  string
}

// Asset is one catalog entry
type Asset struct {
	ID          string   `yaml:"id" json:"id"`
	Title       string   `yaml:"title" json:"title"`
	Category    Category `yaml:"category" json:"category"`
	Type        string   `yaml:"type" json:"type"`
	Tags        []string `yaml:"tags" json:"tags"`
	Description string   `yaml:"description" json:"description"`
	ImageURL    string   `yaml:"imageUrl,omitempty" json:"imageUrl,omitempty"`
	Link        string   `yaml:"link,omitempty" json:"link,omitempty"`
}

// NewAsset validates a record and normalises its tags.
func NewAsset(a Asset) (Asset, error) {
	if strings.TrimSpace(a.ID) == "" {
		return Asset{}, fmt.Errorf("%w: id cannot be empty", ErrInvalidAsset)
	}
	if strings.TrimSpace(a.Title) == "" {
		return Asset{}, fmt.Errorf("%w: %s: title cannot be empty", ErrInvalidAsset, a.ID)
	}
	if !a.Category.Valid() {
		return Asset{}, fmt.Errorf("%w: %s: %w", ErrInvalidAsset, a.ID, ErrUnknownCategory)
	}

	if a.Tags == nil {
		a.Tags = []string{}
	} else {
		a.Tags = slices.Clone(a.Tags)
	}

	return a, nil
}

// Action returns the click behaviour of the asset.
// An image always takes precedence over a link.
func (a Asset) Action() Action {
	switch {
	case a.ImageURL != "":
		return Action{Kind: ActionPreview, URL: a.ImageURL}
	case a.Link != "":
		return Action{Kind: ActionLink, URL: a.Link}
	default:
		return Action{Kind: ActionInert}
	}
}

// Clone returns a copy that shares no slices with a
func (a Asset) Clone() Asset {
	a.Tags = slices.Clone(a.Tags)
	return a
}

// Previewable reports whether activating the asset opens the image preview
func (a Asset) Previewable() bool {
	return a.Action().Kind == ActionPreview
}

// Linked reports whether the asset carries an external link, whether or not
// its image takes precedence outside the playbook grid
func (a Asset) Linked() bool {
	return a.Link != ""
}

// Haystack is the lowercased text searched by the filter:
// title, description and every tag joined by single spaces.
func (a Asset) Haystack() string {
	parts := make([]string, 0, len(a.Tags)+2)
	parts = append(parts, a.Title, a.Description)
	parts = append(parts, a.Tags...)
	return strings.ToLower(strings.Join(parts, " "))
}

// HasTag checks if the asset has a specific tag
func (a Asset) HasTag(tag string) bool {
	for _, t := range a.Tags {
		if strings.EqualFold(t, tag) {
			return true
		}
	}
	return false
}

// TagsString returns tags as a comma-separated string
func (a Asset) TagsString() string {
	if len(a.Tags) == 0 {
		return "-"
	}
	return strings.Join(a.Tags, ", ")
}
