package app

import (
	"fmt"
	"strings"

	"github.com/handiism/showcase/internal/carousel"
	"github.com/handiism/showcase/internal/config"
	"github.com/handiism/showcase/internal/counter"
	"github.com/handiism/showcase/internal/download"
	"github.com/handiism/showcase/internal/drive"
	"github.com/handiism/showcase/internal/model"
	"go.uber.org/zap"
)

// Deps are the collaborators a host injects into the showcase.
type Deps struct {
	// Container holds the carousel slides. Required.
	Container carousel.Container

	// Store persists the download count. Required.
	Store counter.Store

	// Opener performs downloads. Required.
	Opener download.Opener

	// Clock drives auto-play. Defaults to carousel.RealClock.
	Clock carousel.Clock

	// Logger defaults to a no-op logger.
	Logger *zap.Logger

	// Settings defaults to config.DefaultSettings().
	Settings *config.Settings
}

// App is the assembled showcase.
type App struct {
	*Downloader
	Carousel *carousel.Carousel
}

// Downloader counts and opens downloads of the configured book. It is the
// part of App that needs no carousel.
type Downloader struct {
	Counter *counter.Counter
	Trigger *download.Trigger

	book   *model.Book
	logger *zap.Logger
}

// NewDownloader builds the counter and the trigger.
//
// Returns an error wrapping model.ErrInvalidArgument if store or opener is
// nil.
func NewDownloader(store counter.Store, opener download.Opener, settings *config.Settings, logger *zap.Logger) (*Downloader, error) {
	if logger == nil {
		logger = zap.NewNop()
	}
	if settings == nil {
		settings = config.DefaultSettings()
	}

	cnt, err := counter.New(store, logger.Named("counter"))
	if err != nil {
		return nil, err
	}

	trigger, err := download.NewTrigger(opener, logger.Named("download"))
	if err != nil {
		return nil, err
	}

	return &Downloader{
		Counter: cnt,
		Trigger: trigger,
		book:    settings.ToBook(),
		logger:  logger,
	}, nil
}

// New builds every component from deps and starts auto-play when the
// carousel has slides.
//
// Returns an error wrapping model.ErrInvalidArgument if a required
// collaborator is missing.
func New(deps Deps) (*App, error) {
	logger := deps.Logger
	if logger == nil {
		logger = zap.NewNop()
	}
	settings := deps.Settings
	if settings == nil {
		settings = config.DefaultSettings()
	}

	d, err := NewDownloader(deps.Store, deps.Opener, settings, logger)
	if err != nil {
		return nil, err
	}

	opts := []carousel.Option{
		carousel.WithAutoPlayInterval(settings.AutoPlayInterval),
		carousel.WithLogger(logger.Named("carousel")),
	}
	if deps.Clock != nil {
		opts = append(opts, carousel.WithClock(deps.Clock))
	}

	car, err := carousel.New(deps.Container, opts...)
	if err != nil {
		return nil, err
	}

	if car.SlideCount() > 0 {
		car.StartAutoPlay()
	}

	return &App{Downloader: d, Carousel: car}, nil
}

// Book returns the configured book.
func (d *Downloader) Book() *model.Book {
	return d.book
}

// Download resolves target, counts the download and fires the trigger.
// An empty target means the configured book.
//
// Nothing is counted or opened when resolution fails. A counter persistence
// error is logged and the download still fires. Returns the URL handed to
// the opener.
func (d *Downloader) Download(target string, onStarted func()) (string, error) {
	if strings.TrimSpace(target) == "" {
		target = d.book.Target()
	}

	url, err := ResolveTarget(target)
	if err != nil {
		d.logger.Warn("download target not resolved", zap.String("target", target), zap.Error(err))
		return "", err
	}

	if err := d.Counter.Increment(); err != nil {
		d.logger.Warn("download count not saved", zap.Error(err))
	}

	if err := d.Trigger.Fire(url, onStarted); err != nil {
		return "", err
	}

	d.logger.Info("download started", zap.String("url", url), zap.Int("count", d.Counter.Count()))
	return url, nil
}

// Close stops every timer owned by the app.
func (a *App) Close() {
	a.Carousel.Destroy()
}

// ResolveTarget turns a download target into the URL to open.
//
// Drive share links and bare identifiers are resolved to the
// direct-download URL; any other URL is returned unchanged. A drive link
// without a file identifier, such as a folder view, is rejected.
func ResolveTarget(target string) (string, error) {
	target = strings.TrimSpace(target)
	if target == "" {
		return "", fmt.Errorf("%w: download target is empty", model.ErrInvalidArgument)
	}

	switch {
	case !drive.LooksLikeURL(target), drive.IsShareLink(target):
		return drive.ResolveDownloadURL(target)
	case drive.IsDriveHost(target):
		return "", fmt.Errorf("%w: drive link %s has no file identifier", model.ErrInvalidArgument, target)
	default:
		return target, nil
	}
}
