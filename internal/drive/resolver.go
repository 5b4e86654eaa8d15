package drive

import (
	"fmt"
	"net/url"
	"regexp"
	"strings"

	"github.com/handiism/showcase/internal/model"
)

// DirectURLTemplate is the canonical direct-download URL for a drive file.
const DirectURLTemplate = "https://drive.google.com/uc?export=download&id=%s"

var (
	// /file/d/{FILE_ID}/view
	filePathPattern = regexp.MustCompile(`/file/d/([a-zA-Z0-9_-]+)`)

	// ?id={FILE_ID} or &id={FILE_ID}
	idParamPattern = regexp.MustCompile(`[?&]id=([a-zA-Z0-9_-]+)`)

	// A whole identifier, as the two patterns above capture it.
	identifierPattern = regexp.MustCompile(`^[a-zA-Z0-9_-]+$`)

	schemePattern = regexp.MustCompile(`(?i)[a-z][a-z0-9+.-]*://`)
)

// ExtractIdentifier extracts the file identifier from a drive share URL.
//
// Two URL shapes are recognised, in priority order:
//
//	https://drive.google.com/file/d/{ID}/view?usp=sharing
//	https://drive.google.com/open?id={ID}
//
// Identifiers consist of letters, digits, hyphens and underscores; matching
// stops at the first other character.
//
// Returns an empty string if no identifier can be found. This is not an error:
// callers decide whether a missing identifier matters.
//
// Example:
//
//	ExtractIdentifier("https://drive.google.com/file/d/ABC123/view") // "ABC123"
//	ExtractIdentifier("https://example.com/not-a-drive-url")        // ""
func ExtractIdentifier(rawURL string) string {
	if rawURL == "" {
		return ""
	}

	if m := filePathPattern.FindStringSubmatch(rawURL); m != nil {
		return m[1]
	}

	if m := idParamPattern.FindStringSubmatch(rawURL); m != nil {
		return m[1]
	}

	return ""
}

// BuildDirectURL returns the direct-download URL for a file identifier.
//
// The identifier is inserted unchanged. Returns an error wrapping
// model.ErrInvalidArgument if id is empty or holds anything other than
// letters, digits, hyphens and underscores.
//
// Example:
//
//	u, _ := BuildDirectURL("ABC123")
//	// u = "https://drive.google.com/uc?export=download&id=ABC123"
func BuildDirectURL(id string) (string, error) {
	if id == "" {
		return "", fmt.Errorf("%w: could not extract a file identifier", model.ErrInvalidArgument)
	}
	if !identifierPattern.MatchString(id) {
		return "", fmt.Errorf("%w: invalid file identifier %q", model.ErrInvalidArgument, id)
	}
	return fmt.Sprintf(DirectURLTemplate, id), nil
}

// ResolveDownloadURL turns a share link or a raw identifier into a
// direct-download URL.
//
// Input that contains a URL scheme ("https://...") is treated as a share link
// and must contain an identifier. Anything else is used as the identifier
// itself.
//
// Example:
//
//	ResolveDownloadURL("https://drive.google.com/open?id=ABC123") // direct URL for ABC123
//	ResolveDownloadURL("ABC123")                                  // same URL
func ResolveDownloadURL(input string) (string, error) {
	input = strings.TrimSpace(input)

	if LooksLikeURL(input) {
		return BuildDirectURL(ExtractIdentifier(input))
	}

	return BuildDirectURL(input)
}

// LooksLikeURL reports whether s contains a URL scheme.
func LooksLikeURL(s string) bool {
	return schemePattern.MatchString(s)
}

// IsShareLink reports whether rawURL points at a drive host and carries an
// identifier.
func IsShareLink(rawURL string) bool {
	return IsDriveHost(rawURL) && ExtractIdentifier(rawURL) != ""
}

// IsDriveHost reports whether rawURL is served by a drive host, with or
// without an identifier.
func IsDriveHost(rawURL string) bool {
	u, err := url.Parse(strings.TrimSpace(rawURL))
	if err != nil {
		return false
	}

	host := strings.ToLower(u.Hostname())
	return host == "drive.google.com" || host == "docs.google.com"
}
