package model

import (
	"errors"
	"net/url"
	"path"
	"strings"
)

// ErrInvalidArgument is returned when a constructor or call receives a missing
// or malformed input: a nil container, store or opener, a blank URL, or a
// share link without a resolvable identifier.
//
// Callers match it with errors.Is; packages wrap it with context.
var ErrInvalidArgument = errors.New("invalid argument")

// Book describes the downloadable publication promoted by the showcase.
//
// A Book is either served from a direct URL (an S3 website, a CDN) or from a
// cloud-drive share link that has to be resolved to a direct download first.
// When both are set the share link wins.
type Book struct {
	// Title is a human readable name, used for saved file names.
	Title string

	// URL is a direct download URL.
	URL string

	// DriveLink is a share link or raw drive file identifier.
	DriveLink string
}

// Target returns the value that should be handed to the link resolver or
// straight to the download trigger.
func (b *Book) Target() string {
	if strings.TrimSpace(b.DriveLink) != "" {
		return strings.TrimSpace(b.DriveLink)
	}
	return strings.TrimSpace(b.URL)
}

// UsesDrive returns true if the book is served through a drive share link.
func (b *Book) UsesDrive() bool {
	return strings.TrimSpace(b.DriveLink) != ""
}

// FileName returns a safe local file name for a resolved download URL.
//
// The last path segment of the URL is used when it looks like a file name,
// otherwise the book title with a ".pdf" extension.
//
// Example:
//
//	b := &Book{Title: "Taller de Lectura"}
//	b.FileName("https://host/assets/libro-v2.0.pdf") // "libro-v2.0.pdf"
//	b.FileName("https://drive.google.com/uc?id=X")   // "Taller de Lectura.pdf"
func (b *Book) FileName(downloadURL string) string {
	if u, err := url.Parse(downloadURL); err == nil {
		base := path.Base(u.Path)
		if path.Ext(base) != "" {
			if name := sanitizeFileName(base); name != "" {
				return name
			}
		}
	}

	title := sanitizeFileName(b.Title)
	if title == "" {
		title = "download"
	}
	return title + ".pdf"
}
