package opener

import (
	"context"
	"errors"
	"fmt"
	"os/exec"
	"runtime"
	"strings"

	"github.com/atotto/clipboard"
)

// ErrEmptyURL is returned when there is nothing to open
var ErrEmptyURL = errors.New("empty url")

// starter launches a detached process
type starter func(name string, args ...string) error

func startDetached(name string, args ...string) error {
	// Start() so hub can exit while the browser stays open
	return exec.Command(name, args...).Start()
}

// BrowserOpener opens URLs in a custom browser command or the OS default handler
type BrowserOpener struct {
	browser string
	goos    string
	start   starter
}

// NewBrowserOpener creates an opener. An empty browser uses the OS default.
// The browser command may carry arguments, e.g. "firefox --new-window".
func NewBrowserOpener(browser string) *BrowserOpener {
	return &BrowserOpener{
		browser: strings.TrimSpace(browser),
		goos:    runtime.GOOS,
		start:   startDetached,
	}
}

// Open hands url to the browser exactly as stored
func (o *BrowserOpener) Open(ctx context.Context, url string) error {
	if url == "" {
		return ErrEmptyURL
	}
	if err := ctx.Err(); err != nil {
		return err
	}

	name, args := o.command(url)
	if err := o.start(name, args...); err != nil {
		if o.browser != "" {
			return fmt.Errorf("failed to open '%s' with '%s': %w", url, o.browser, err)
		}
		return fmt.Errorf("failed to open '%s': %w", url, err)
	}
	return nil
}

// command builds the launcher invocation for url
func (o *BrowserOpener) command(url string) (string, []string) {
	if o.browser != "" {
		fields := strings.Fields(o.browser)
		return fields[0], append(fields[1:], url)
	}

	switch o.goos {
	case "darwin":
		return "open", []string{url}
	case "windows":
		// cmd /c start splits on '&', which query strings contain
		return "rundll32", []string{"url.dll,FileProtocolHandler", url}
	default:
		return "xdg-open", []string{url}
	}
}

// SystemClipboard writes to the OS clipboard
type SystemClipboard struct{}

// NewSystemClipboard creates a clipboard adapter
func NewSystemClipboard() SystemClipboard {
	return SystemClipboard{}
}

func (SystemClipboard) WriteAll(text string) error {
	if clipboard.Unsupported {
		return errors.New("clipboard is not supported on this system")
	}
	if err := clipboard.WriteAll(text); err != nil {
		return fmt.Errorf("failed to copy to clipboard: %w", err)
	}
	return nil
}
