package opener

import (
	"context"
	"errors"
	"testing"

	"github.com/google/go-cmp/cmp"
)

func TestBrowserOpener_Command(t *testing.T) {
	const link = "https://drive.example/file/d/abc/view?usp=sharing&x=1"

	tests := []struct {
		name     string
		browser  string
		goos     string
		wantName string
		wantArgs []string
	}{
		{"linux default", "", "linux", "xdg-open", []string{link}},
		{"mac default", "", "darwin", "open", []string{link}},
		{"windows default", "", "windows", "rundll32", []string{"url.dll,FileProtocolHandler", link}},
		{"custom browser", "firefox", "linux", "firefox", []string{link}},
		{"custom browser with args", "  chromium --new-window ", "darwin", "chromium", []string{"--new-window", link}},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			o := NewBrowserOpener(tt.browser)
			o.goos = tt.goos

			name, args := o.command(link)
			if name != tt.wantName {
				t.Errorf("command name = %q, want %q", name, tt.wantName)
			}
			if diff := cmp.Diff(tt.wantArgs, args); diff != "" {
				t.Errorf("command args mismatch (-want +got):\n%s", diff)
			}
		})
	}
}

func TestBrowserOpener_Open(t *testing.T) {
	var gotName string
	var gotArgs []string

	o := NewBrowserOpener("")
	o.goos = "linux"
	o.start = func(name string, args ...string) error {
		gotName, gotArgs = name, args
		return nil
	}

	const link = "https://drive.example/view?a=1&b=2"
	if err := o.Open(context.Background(), link); err != nil {
		t.Fatalf("Open failed: %v", err)
	}
	if gotName != "xdg-open" || len(gotArgs) != 1 || gotArgs[0] != link {
		t.Errorf("started %q %v, want xdg-open [%s]", gotName, gotArgs, link)
	}
}

func TestBrowserOpener_OpenErrors(t *testing.T) {
	started := false
	o := NewBrowserOpener("nope")
	o.start = func(string, ...string) error {
		started = true
		return errors.New("executable file not found")
	}

	if err := o.Open(context.Background(), ""); !errors.Is(err, ErrEmptyURL) {
		t.Errorf("empty url error = %v, want ErrEmptyURL", err)
	}
	if started {
		t.Error("empty url should not start a process")
	}

	ctx, cancel := context.WithCancel(context.Background())
	cancel()
	if err := o.Open(ctx, "https://example.com"); !errors.Is(err, context.Canceled) {
		t.Errorf("cancelled context error = %v", err)
	}

	if err := o.Open(context.Background(), "https://example.com"); err == nil {
		t.Error("expected start failure to surface")
	}
}
