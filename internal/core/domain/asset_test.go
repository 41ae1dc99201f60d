package domain

import (
	"errors"
	"testing"
)

func TestNewAsset_ResolvesAction(t *testing.T) {
	tests := []struct {
		name     string
		image    string
		link     string
		wantKind ActionKind
		wantURL  string
	}{
		{"image only", "https://img/a.png", "", ActionPreview, "https://img/a.png"},
		{"link only", "", "https://drive/x", ActionLink, "https://drive/x"},
		{"image wins over link", "https://img/b.png", "https://drive/y", ActionPreview, "https://img/b.png"},
		{"neither", "", "", ActionInert, ""},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			a, err := NewAsset(Asset{
				ID:       "a",
				Title:    "A",
				Category: CategoryPlaybooks,
				ImageURL: tt.image,
				Link:     tt.link,
			})
			if err != nil {
				t.Fatalf("unexpected error: %v", err)
			}

			action := a.Action()
			if action.Kind != tt.wantKind {
				t.Errorf("expected kind %v, got %v", tt.wantKind, action.Kind)
			}
			if action.URL != tt.wantURL {
				t.Errorf("expected URL %q, got %q", tt.wantURL, action.URL)
			}
		})
	}
}

func TestNewAsset_Validation(t *testing.T) {
	tests := []struct {
		name  string
		asset Asset
	}{
		{"empty id", Asset{Title: "T", Category: CategoryPlaybooks}},
		{"blank title", Asset{ID: "x", Title: "   ", Category: CategoryPlaybooks}},
		{"unknown category", Asset{ID: "x", Title: "T", Category: "Brochures"}},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			_, err := NewAsset(tt.asset)
			if err == nil {
				t.Fatal("expected error but got none")
			}
			if !errors.Is(err, ErrInvalidAsset) {
				t.Errorf("expected ErrInvalidAsset, got %v", err)
			}
		})
	}
}

func TestNewAsset_CopiesTags(t *testing.T) {
	tags := []string{"Cargo", "Pharma"}
	a, err := NewAsset(Asset{ID: "x", Title: "T", Category: CategoryCaseStudies, Tags: tags})
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}

	tags[0] = "changed"
	if a.Tags[0] != "Cargo" {
		t.Errorf("asset tags should not alias the input slice, got %q", a.Tags[0])
	}

	b, _ := NewAsset(Asset{ID: "y", Title: "T", Category: CategoryCaseStudies})
	if b.Tags == nil {
		t.Error("expected nil tags to become an empty slice")
	}
}

func TestAsset_Haystack(t *testing.T) {
	a := Asset{
		Title:       "Etihad Cargo × SATS",
		Description: "Joint Cargo Excellence",
		Tags:        []string{"Etihad", "Pharma"},
	}

	want := "etihad cargo × sats joint cargo excellence etihad pharma"
	if got := a.Haystack(); got != want {
		t.Errorf("expected %q, got %q", want, got)
	}
}

func TestAsset_HasTag(t *testing.T) {
	a := Asset{Tags: []string{"Cold Chain", "Pharma"}}

	if !a.HasTag("pharma") {
		t.Error("expected case-insensitive tag match")
	}
	if a.HasTag("Cargo") {
		t.Error("unexpected tag match")
	}
}

func TestAsset_TagsString(t *testing.T) {
	if got := (Asset{}).TagsString(); got != "-" {
		t.Errorf("expected '-', got %q", got)
	}
	if got := (Asset{Tags: []string{"a", "b"}}).TagsString(); got != "a, b" {
		t.Errorf("expected 'a, b', got %q", got)
	}
}

func TestActionKind_String(t *testing.T) {
	cases := map[ActionKind]string{
		ActionPreview: "preview",
		ActionLink:    "link",
		ActionInert:   "inert",
	}
	for kind, want := range cases {
		if got := kind.String(); got != want {
			t.Errorf("expected %q, got %q", want, got)
		}
	}
}

func TestAsset_ActionWithoutConstructor(t *testing.T) {
	tests := []struct {
		name            string
		asset           Asset
		wantKind        ActionKind
		wantPreviewable bool
		wantLinked      bool
	}{
		{"image only", Asset{ImageURL: "https://img/a.png"}, ActionPreview, true, false},
		{"image and link", Asset{ImageURL: "https://img/a.png", Link: "https://drive/x"}, ActionPreview, true, true},
		{"link only", Asset{Link: "https://drive/x"}, ActionLink, false, true},
		{"neither", Asset{}, ActionInert, false, false},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if got := tt.asset.Action().Kind; got != tt.wantKind {
				t.Errorf("expected kind %v, got %v", tt.wantKind, got)
			}
			if got := tt.asset.Previewable(); got != tt.wantPreviewable {
				t.Errorf("expected Previewable() %v, got %v", tt.wantPreviewable, got)
			}
			if got := tt.asset.Linked(); got != tt.wantLinked {
				t.Errorf("expected Linked() %v, got %v", tt.wantLinked, got)
			}
		})
	}
}
