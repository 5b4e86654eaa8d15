// Package store provides key/value backends for the download counter.
//
// Three backends implement the counter.Store interface:
//
//   - Memory: process-local map, for tests and throwaway sessions
//   - File: a flat JSON object rewritten atomically on every write
//   - SQLite: a kv table in a modernc.org/sqlite database
//
// # Opening a Backend
//
//	kv, err := store.Open(store.BackendSQLite, "/var/lib/showcase/showcase.db", logger)
//	if err != nil {
//	    return err
//	}
//	defer kv.Close()
//
//	c, err := counter.New(kv, logger)
package store
