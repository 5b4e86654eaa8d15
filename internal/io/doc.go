// Package ioutils provides file and image helpers for showcase.
//
// This package includes:
//   - Atomic file writes for persisted state
//   - Directory creation
//   - Slide discovery from a directory or a slides.yaml manifest
//   - Rendering slide images as terminal half-block art
//
// # Loading Slides
//
//	slides, err := ioutils.LoadSlides(ctx, "slides", 48, 24, 4, logger)
//	for _, s := range slides {
//	    fmt.Println(s.Title)
//	    fmt.Println(s.Art)
//	}
package ioutils
