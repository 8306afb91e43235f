package gateway

import (
	"log/slog"

	"github.com/pkg/browser"
)

// BrowserOpener opens URLs in the host's default browser.
type BrowserOpener struct{}

func (BrowserOpener) Open(url string) {
	if err := browser.OpenURL(url); err != nil {
		slog.Error("Failed to open URL", "url", url, "err", err)
	}
}
