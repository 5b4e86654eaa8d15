// Package drive resolves cloud-drive share links into direct-download URLs.
//
// The package handles two inputs:
//
//  1. Share links such as https://drive.google.com/file/d/{ID}/view
//  2. Raw file identifiers such as "1a2B3c"
//
// # Resolving
//
//	u, err := drive.ResolveDownloadURL("https://drive.google.com/file/d/ABC123/view?usp=sharing")
//	if err != nil {
//	    // err wraps model.ErrInvalidArgument
//	}
//	// u = "https://drive.google.com/uc?export=download&id=ABC123"
//
// # Lower Level Helpers
//
// ExtractIdentifier returns "" when no identifier is present, and
// BuildDirectURL applies DirectURLTemplate. All functions are pure and issue
// no network requests.
package drive
