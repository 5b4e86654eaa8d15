// Package http provides the HTTP client used by the background fetcher.
//
// The Client in this package handles:
//   - User-Agent headers
//   - File downloads with progress tracking
//   - File size retrieval via HEAD requests
//   - Timeout handling
//
// # Basic Usage
//
//	client := http.NewClient()
//
//	size, _ := client.GetFileSize(ctx, bookURL)
//	err := client.DownloadFile(ctx, bookURL, "/tmp/libro.pdf", func(written, total int64) {
//	    fmt.Printf("%d / %d\n", written, size)
//	})
//
// # Progress Tracking
//
// The ProgressWriter type can be used to wrap any io.Writer for progress tracking:
//
//	pw := &http.ProgressWriter{
//	    Writer:   file,
//	    Total:    contentLength,
//	    OnUpdate: func(written, total int64) { /* update UI */ },
//	}
package http
