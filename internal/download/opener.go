package download

import (
	"context"
	"fmt"

	"github.com/go-rod/rod/lib/launcher"
	"github.com/handiism/showcase/internal/config"
	"github.com/handiism/showcase/internal/model"
	"go.uber.org/zap"
)

// Supported opener names, as used in configuration.
const (
	OpenerBrowser = "browser"
	OpenerFetch   = "fetch"
	OpenerLog     = "log"
)

// BrowserOpener opens URLs in the system's default browser.
type BrowserOpener struct {
	// open is swapped in tests.
	open func(url string)
}

// NewBrowserOpener creates a BrowserOpener backed by rod's launcher.
func NewBrowserOpener() *BrowserOpener {
	return &BrowserOpener{open: launcher.Open}
}

// Open implements Opener.
func (b *BrowserOpener) Open(url string) {
	b.open(url)
}

// LogOpener only logs the URL. It backs dry runs.
type LogOpener struct {
	Logger *zap.Logger

	// Opened receives every URL, if set.
	Opened func(url string)
}

// Open implements Opener.
func (l *LogOpener) Open(url string) {
	if l.Logger != nil {
		l.Logger.Info("download url", zap.String("url", url))
	}
	if l.Opened != nil {
		l.Opened(url)
	}
}

// NewOpener builds the opener named by kind. An empty kind means the
// browser. Fetch progress goes to onProgress.
func NewOpener(ctx context.Context, kind string, settings *config.Settings, logger *zap.Logger, onProgress func(ProgressEvent)) (Opener, error) {
	switch kind {
	case OpenerBrowser, "":
		return NewBrowserOpener(), nil
	case OpenerFetch:
		return NewFetcher(ctx, settings, onProgress), nil
	case OpenerLog:
		return &LogOpener{Logger: logger}, nil
	default:
		return nil, fmt.Errorf("%w: unknown opener %q", model.ErrInvalidArgument, kind)
	}
}
