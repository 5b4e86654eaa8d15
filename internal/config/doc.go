// Package config provides configuration management for showcase.
//
// This package handles:
//   - Loading settings from YAML files and SHOWCASE_* environment variables
//   - Saving settings back to YAML
//   - Default configuration values
//   - Conversion to the downloadable model.Book
//
// # Default Settings
//
//	settings := config.DefaultSettings()
//	// Slides advance every 1.5s
//	// The book opens in the default browser
//	// The download count lives in ~/.local/share/showcase/counter.json
//
// # Loading from File
//
//	settings, err := config.Load("/path/to/config.yml")
//	if err != nil {
//	    // Only malformed files fail, a missing file yields defaults
//	}
//
// Environment variables override the file, with dashes replaced by
// underscores:
//
//	SHOWCASE_DRIVE_LINK=https://drive.google.com/file/d/abc/view showcase-dl download
//
// # Saving Settings
//
//	settings.DriveLink = "https://drive.google.com/file/d/abc/view"
//	err := settings.Save("/path/to/config.yml")
package config
