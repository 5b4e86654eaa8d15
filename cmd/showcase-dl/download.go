package main

import (
	"context"
	"fmt"
	"os"
	"os/signal"
	"syscall"

	"github.com/dustin/go-humanize"
	"github.com/handiism/showcase/internal/app"
	"github.com/handiism/showcase/internal/download"
	"github.com/handiism/showcase/internal/store"
	"github.com/spf13/cobra"
)

var dryRun bool

var downloadCmd = &cobra.Command{
	Use:   "download [url|id]",
	Short: "Count a download and open the book (or the given target)",
	Long: `Resolves the target, increments the download count and hands the URL
to the configured opener: the default browser, a background fetch into the
downloads path, or a log line.

Without a target the configured drive link or book URL is used.`,
	Args: cobra.MaximumNArgs(1),
	RunE: runDownload,
}

func init() {
	downloadCmd.Flags().BoolVar(&dryRun, "dry-run", false, "Log the URL instead of opening it")
}

func runDownload(cmd *cobra.Command, args []string) error {
	// Handle interrupts
	ctx, cancel := context.WithCancel(context.Background())
	defer cancel()

	sigCh := make(chan os.Signal, 1)
	signal.Notify(sigCh, os.Interrupt, syscall.SIGTERM)
	defer signal.Stop(sigCh)
	go func() {
		select {
		case <-sigCh:
			fmt.Fprintln(cmd.ErrOrStderr(), "\nInterrupted, cancelling...")
			cancel()
		case <-ctx.Done():
		}
	}()

	kind := settings.Opener
	if dryRun {
		kind = download.OpenerLog
	}

	out := cmd.OutOrStdout()
	opener, err := download.NewOpener(ctx, kind, settings, logger, func(event download.ProgressEvent) {
		if event.Level == download.LevelVerbose && !verbose {
			return
		}

		prefix := ""
		switch event.Level {
		case download.LevelError:
			prefix = "❌ "
		case download.LevelWarning:
			prefix = "⚠️  "
		case download.LevelSuccess:
			prefix = "✅ "
		case download.LevelInfo:
			prefix = "ℹ️  "
		default:
			prefix = "   "
		}

		fmt.Fprintln(out, prefix+event.Message)
	})
	if err != nil {
		return err
	}

	kv, err := store.Open(settings.StoreBackend, settings.StorePath, logger)
	if err != nil {
		return err
	}
	defer kv.Close()

	d, err := app.NewDownloader(kv, opener, settings, logger)
	if err != nil {
		return err
	}

	var target string
	if len(args) == 1 {
		target = args[0]
	}

	url, err := d.Download(target, func() {
		fmt.Fprintf(out, "Download #%s started\n", humanize.Comma(int64(d.Counter.Count())))
	})
	if err != nil {
		return err
	}
	if dryRun {
		fmt.Fprintln(out, url)
	}

	fetcher, ok := opener.(*download.Fetcher)
	if !ok {
		return nil
	}

	err = fetcher.Wait()
	received, _, files, _ := fetcher.GetProgress()
	fmt.Fprintf(out, "\nSaved %d file(s), %s\n", files, humanize.Bytes(uint64(received)))
	return err
}
