package store

import (
	"fmt"
	"strings"

	"go.uber.org/zap"
)

// Supported backend names.
const (
	BackendMemory = "memory"
	BackendFile   = "file"
	BackendSQLite = "sqlite"
)

// KV is the interface shared by every backend.
type KV interface {
	GetItem(key string) (string, bool, error)
	SetItem(key, value string) error
	Close() error
}

// Open returns the backend named by backend, persisted at path. Anomalies
// the backend recovers from are reported to logger, which may be nil.
//
// Example:
//
//	kv, err := store.Open(settings.StoreBackend, settings.StorePath, logger)
//	if err != nil {
//	    return err
//	}
//	defer kv.Close()
func Open(backend, path string, logger *zap.Logger) (KV, error) {
	switch strings.ToLower(strings.TrimSpace(backend)) {
	case BackendMemory:
		return NewMemory(), nil
	case BackendFile, "":
		if path == "" {
			return nil, fmt.Errorf("store backend %q requires a path", BackendFile)
		}
		return OpenFile(path, logger)
	case BackendSQLite:
		if path == "" {
			return nil, fmt.Errorf("store backend %q requires a path", BackendSQLite)
		}
		return OpenSQLite(path)
	default:
		return nil, fmt.Errorf("unknown store backend %q", backend)
	}
}
