package ui

import (
	"strings"
	"testing"

	"github.com/charmbracelet/lipgloss"
)

func TestTable_Render(t *testing.T) {
	table := NewTable([]TableColumn{
		{Header: "ID"},
		{Header: "TITLE"},
	})
	table.AddRow([]string{"etihad-poster", "Etihad Cargo × SATS"})
	table.AddRow([]string{"case-coldchain", "Cold Chain Cargo Case Study"})

	out := table.Render()

	for _, want := range []string{"ID", "TITLE", "etihad-poster", "Etihad Cargo × SATS", "Cold Chain Cargo Case Study"} {
		if !strings.Contains(out, want) {
			t.Errorf("rendered table missing %q:\n%s", want, out)
		}
	}

	lines := strings.Split(strings.TrimRight(out, "\n"), "\n")
	if len(lines) != 4 {
		t.Fatalf("expected header, separator and 2 rows, got %d lines", len(lines))
	}
}

func TestTable_RenderNoColumns(t *testing.T) {
	if out := NewTable(nil).Render(); out != "" {
		t.Errorf("expected empty output, got %q", out)
	}
}

func TestTable_MaxWidthShrinksFlexColumns(t *testing.T) {
	table := NewTable([]TableColumn{
		{Header: "ID"},
		{Header: "DESCRIPTION", Flex: true},
	})
	table.AddRow([]string{"a", strings.Repeat("x", 60)})
	table.MaxWidth = 30

	out := table.Render()
	for _, line := range strings.Split(strings.TrimRight(out, "\n"), "\n") {
		if w := lipgloss.Width(line); w > 30 {
			t.Errorf("line width %d exceeds max: %q", w, line)
		}
	}
	if !strings.Contains(out, "…") {
		t.Error("expected truncated cell to end with an ellipsis")
	}
}

func TestTruncate(t *testing.T) {
	tests := []struct {
		in    string
		width int
		want  string
	}{
		{"short", 10, "short"},
		{"exactly", 7, "exactly"},
		{"truncated", 5, "trun…"},
		{"Cargo × SATS", 9, "Cargo × …"},
		{"ab", 1, "…"},
		{"ab", 0, ""},
	}

	for _, tt := range tests {
		if got := Truncate(tt.in, tt.width); got != tt.want {
			t.Errorf("Truncate(%q, %d) = %q, want %q", tt.in, tt.width, got, tt.want)
		}
	}
}

func TestPadString(t *testing.T) {
	tests := []struct {
		in    string
		width int
		align string
		want  string
	}{
		{"ab", 4, "left", "ab  "},
		{"ab", 4, "right", "  ab"},
		{"ab", 5, "center", " ab  "},
		{"×", 3, "left", "×  "},
		{"long", 2, "left", "long"},
	}

	for _, tt := range tests {
		if got := padString(tt.in, tt.width, tt.align); got != tt.want {
			t.Errorf("padString(%q, %d, %q) = %q, want %q", tt.in, tt.width, tt.align, got, tt.want)
		}
	}
}
