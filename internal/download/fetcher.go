package download

import (
	"context"
	"fmt"
	"math"
	"os"
	"path/filepath"
	"sync/atomic"
	"time"

	"github.com/handiism/showcase/internal/config"
	"github.com/handiism/showcase/internal/http"
	ioutils "github.com/handiism/showcase/internal/io"
	"github.com/handiism/showcase/internal/model"
	"golang.org/x/sync/errgroup"
)

// ProgressLevel indicates the severity/type of a progress message.
type ProgressLevel int

const (
	LevelInfo ProgressLevel = iota
	LevelVerbose
	LevelWarning
	LevelError
	LevelSuccess
)

// ProgressEvent represents a download progress update.
type ProgressEvent struct {
	Message string
	Level   ProgressLevel
}

// Fetcher is an Opener that downloads URLs to disk in the background.
//
// Open returns immediately; the transfer runs on a goroutine with the
// configured retry policy. At most settings.MaxConcurrentDownloads transfers
// run at once, extra requests are dropped with a warning.
type Fetcher struct {
	ctx        context.Context
	settings   *config.Settings
	book       *model.Book
	httpClient *http.Client
	group      *errgroup.Group

	totalBytes      int64
	receivedBytes   int64
	totalFiles      int32
	downloadedFiles int32

	onProgress func(ProgressEvent)
}

// NewFetcher creates a Fetcher saving files under settings.DownloadsPath.
// Transfers stop when ctx is cancelled.
func NewFetcher(ctx context.Context, settings *config.Settings, onProgress func(ProgressEvent)) *Fetcher {
	g := &errgroup.Group{}
	limit := settings.MaxConcurrentDownloads
	if limit < 1 {
		limit = 1
	}
	g.SetLimit(limit)

	return &Fetcher{
		ctx:        ctx,
		settings:   settings,
		book:       settings.ToBook(),
		httpClient: http.NewClient(),
		group:      g,
		onProgress: onProgress,
	}
}

// Open implements Opener.
func (f *Fetcher) Open(url string) {
	started := f.group.TryGo(func() error {
		return f.fetch(f.ctx, url)
	})
	if !started {
		f.progress(ProgressEvent{Message: "A download is already in progress", Level: LevelWarning})
	}
}

// Wait blocks until every started transfer has finished and returns the
// first transfer error.
func (f *Fetcher) Wait() error {
	return f.group.Wait()
}

// GetProgress returns current download progress.
func (f *Fetcher) GetProgress() (received, total int64, filesReceived, filesTotal int32) {
	return atomic.LoadInt64(&f.receivedBytes), atomic.LoadInt64(&f.totalBytes),
		atomic.LoadInt32(&f.downloadedFiles), atomic.LoadInt32(&f.totalFiles)
}

func (f *Fetcher) fetch(ctx context.Context, url string) error {
	if err := ioutils.EnsureDir(f.settings.DownloadsPath); err != nil {
		f.progress(ProgressEvent{Message: fmt.Sprintf("Error creating directory: %v", err), Level: LevelError})
		return err
	}

	destPath := filepath.Join(f.settings.DownloadsPath, f.book.FileName(url))
	atomic.AddInt32(&f.totalFiles, 1)

	if size, err := f.httpClient.GetFileSize(ctx, url); err == nil {
		atomic.AddInt64(&f.totalBytes, size)
	}

	f.progress(ProgressEvent{Message: fmt.Sprintf("Downloading %s", filepath.Base(destPath)), Level: LevelInfo})

	var err error
	for tries := 0; tries < f.maxTries(); tries++ {
		var written int64
		err = f.httpClient.DownloadFile(ctx, url, destPath, func(w, _ int64) {
			atomic.AddInt64(&f.receivedBytes, w-written)
			written = w
		})
		if err == nil {
			break
		}
		atomic.AddInt64(&f.receivedBytes, -written)
		if ctx.Err() != nil || tries+1 == f.maxTries() {
			break
		}
		f.progress(ProgressEvent{Message: fmt.Sprintf("Retry %d/%d for %s", tries+1, f.maxTries(), filepath.Base(destPath)), Level: LevelWarning})
		f.waitForRetry(ctx, tries)
	}

	if err != nil {
		os.Remove(destPath)
		f.progress(ProgressEvent{Message: fmt.Sprintf("Error downloading %s: %v", url, err), Level: LevelError})
		return err
	}

	atomic.AddInt32(&f.downloadedFiles, 1)
	f.progress(ProgressEvent{Message: fmt.Sprintf("Saved %s", destPath), Level: LevelSuccess})
	return nil
}

func (f *Fetcher) maxTries() int {
	if f.settings.DownloadMaxRetries < 1 {
		return 1
	}
	return f.settings.DownloadMaxRetries
}

func (f *Fetcher) waitForRetry(ctx context.Context, tries int) {
	cooldown := f.settings.DownloadRetryCooldown * math.Pow(f.settings.DownloadRetryExponent, float64(tries))
	select {
	case <-ctx.Done():
	case <-time.After(time.Duration(cooldown * float64(time.Second))):
	}
}

func (f *Fetcher) progress(event ProgressEvent) {
	if f.onProgress != nil {
		f.onProgress(event)
	}
}
