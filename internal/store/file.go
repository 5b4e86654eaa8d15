package store

import (
	"bytes"
	"encoding/json"
	"os"
	"sync"

	ioutils "github.com/handiism/showcase/internal/io"
	"go.uber.org/zap"
)

// File is a key/value store persisted as a flat JSON object:
//
//	{"downloadCount": "3"}
//
// Every SetItem rewrites the file atomically.
type File struct {
	path string
	mu   sync.Mutex
	data map[string]string
}

// OpenFile loads the store at path. A missing file yields an empty store;
// the file is created on the first write.
//
// Non-string values are kept as their JSON text, so {"downloadCount": 42}
// reads back as "42". A file that is not a JSON object is logged and
// ignored; the next SetItem replaces it.
func OpenFile(path string, logger *zap.Logger) (*File, error) {
	if logger == nil {
		logger = zap.NewNop()
	}

	f := &File{
		path: path,
		data: make(map[string]string),
	}

	raw, err := os.ReadFile(path)
	if err != nil {
		if os.IsNotExist(err) {
			return f, nil
		}
		return nil, err
	}

	if len(bytes.TrimSpace(raw)) == 0 {
		return f, nil
	}

	var fields map[string]json.RawMessage
	if err := json.Unmarshal(raw, &fields); err != nil {
		logger.Warn("ignoring malformed store file",
			zap.String("path", path),
			zap.Error(err))
		return f, nil
	}

	for key, value := range fields {
		var s string
		if err := json.Unmarshal(value, &s); err == nil {
			f.data[key] = s
			continue
		}
		text := string(bytes.TrimSpace(value))
		if text == "null" {
			continue
		}
		f.data[key] = text
	}

	return f, nil
}

// Path returns the backing file path.
func (f *File) Path() string {
	return f.path
}

// GetItem returns the value stored under key.
func (f *File) GetItem(key string) (string, bool, error) {
	f.mu.Lock()
	defer f.mu.Unlock()
	v, ok := f.data[key]
	return v, ok, nil
}

// SetItem stores value under key and writes the file.
func (f *File) SetItem(key, value string) error {
	f.mu.Lock()
	defer f.mu.Unlock()

	f.data[key] = value

	data, err := json.MarshalIndent(f.data, "", "  ")
	if err != nil {
		return err
	}
	return ioutils.WriteFileAtomic(f.path, data)
}

// Close is a no-op; writes are flushed by SetItem.
func (f *File) Close() error { return nil }
