// Package app assembles the showcase from injected collaborators.
//
// Hosts supply a slide container, a key/value store and an opener; New
// returns the carousel, the download counter and the download trigger wired
// together:
//
//	a, err := app.New(app.Deps{
//	    Container: strip,
//	    Store:     kv,
//	    Opener:    download.NewBrowserOpener(),
//	    Logger:    logger,
//	    Settings:  settings,
//	})
//	defer a.Close()
//
//	url, err := a.Download("", nil) // the configured book
package app
