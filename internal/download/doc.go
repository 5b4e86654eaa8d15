// Package download starts book downloads.
//
// # Trigger
//
// A Trigger hands a URL to an injected Opener and then notifies the caller.
// It never checks whether the download actually happened:
//
//	trigger, _ := download.NewTrigger(download.NewBrowserOpener(), logger)
//	err := trigger.Fire(url, func() {
//	    fmt.Println("download started")
//	})
//
// # Openers
//
//   - BrowserOpener opens the URL in the default browser
//   - Fetcher saves the file under the downloads path in the background
//   - LogOpener only logs the URL, for dry runs
//
// The Fetcher retries failed transfers with an exponential cooldown and
// reports through ProgressEvent callbacks:
//
//	fetcher := download.NewFetcher(ctx, settings, func(event download.ProgressEvent) {
//	    fmt.Println(event.Message)
//	})
//	fetcher.Open(url)
//	err := fetcher.Wait()
package download
