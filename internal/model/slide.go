package model

import (
	"path/filepath"
	"regexp"
	"strings"
)

// Slide represents one carousel item shown by the showcase.
//
// Slide carries the data a front end needs to draw an item:
//   - Title for the caption under the artwork
//   - ImagePath pointing at the source drawing on disk
//   - Art holding the pre-rendered terminal representation
//
// Example:
//
//	slide := NewSlide("/slides/03_sofia-dragon.png", "")
//	// slide.Title = "03 sofia dragon"
type Slide struct {
	// Title is the caption displayed with the slide.
	Title string

	// ImagePath is the local path of the source image.
	ImagePath string

	// Art is the rendered thumbnail. Empty until the image has been loaded.
	Art string
}

// NewSlide creates a Slide for an image file.
//
// When title is empty it is derived from the file name: the extension is
// dropped and underscores and hyphens become spaces.
func NewSlide(imagePath, title string) *Slide {
	if strings.TrimSpace(title) == "" {
		title = titleFromPath(imagePath)
	}
	return &Slide{
		Title:     sanitizeFileName(title),
		ImagePath: imagePath,
	}
}

// HasArt returns true if the slide thumbnail has been rendered.
func (s *Slide) HasArt() bool {
	return s.Art != ""
}

func titleFromPath(path string) string {
	base := filepath.Base(path)
	base = strings.TrimSuffix(base, filepath.Ext(base))
	return strings.NewReplacer("_", " ", "-", " ").Replace(base)
}

var (
	invalidFileChars = regexp.MustCompile(`[<>:"/\\|?*\x00-\x1f]`)
	trailingDots     = regexp.MustCompile(`\.+$`)
	repeatedSpace    = regexp.MustCompile(`\s+`)
)

// sanitizeFileName removes or replaces characters that are invalid in file names.
//
// The following transformations are applied:
//   - Invalid characters (<>:"/\|?* and control chars) are replaced with underscore
//   - Trailing dots are removed (Windows limitation)
//   - Multiple whitespace is collapsed to single space
//   - Leading and trailing whitespace is removed
//
// Example:
//
//	sanitizeFileName("Libro: v2/final") // Returns "Libro_ v2_final"
func sanitizeFileName(name string) string {
	name = invalidFileChars.ReplaceAllString(name, "_")
	name = trailingDots.ReplaceAllString(name, "")
	name = repeatedSpace.ReplaceAllString(name, " ")
	return strings.TrimSpace(name)
}
