package counter

import (
	"fmt"
	"math"
	"strconv"
	"strings"
	"sync"

	"github.com/handiism/showcase/internal/model"
	"go.uber.org/zap"
)

// StorageKey is the key under which the count is persisted.
const StorageKey = "downloadCount"

// Store is the key/value persistence used by Counter.
//
// GetItem returns ok=false when the key is absent. Implementations live in
// the store package; any type with these two methods works.
type Store interface {
	GetItem(key string) (value string, ok bool, err error)
	SetItem(key, value string) error
}

// Counter is a persisted, non-negative download counter.
//
// Every mutation writes the new value to the store before returning, so the
// in-memory and persisted values agree after each call.
//
// Example:
//
//	c, err := counter.New(store.NewMemory(), logger)
//	if err != nil {
//	    return err
//	}
//	_ = c.Increment()
//	fmt.Println(c.Count()) // 1
type Counter struct {
	mu     sync.Mutex
	store  Store
	logger *zap.Logger
	count  int
}

// New creates a Counter and loads its initial value from store.
//
// A missing, unreadable or non-numeric stored value yields 0. Negative or
// out-of-range values are clamped to 0. In both cases a warning is logged
// and the value is corrected on the next write.
//
// Returns an error wrapping model.ErrInvalidArgument if store is nil.
func New(store Store, logger *zap.Logger) (*Counter, error) {
	if store == nil {
		return nil, fmt.Errorf("%w: counter store must implement GetItem and SetItem", model.ErrInvalidArgument)
	}
	if logger == nil {
		logger = zap.NewNop()
	}

	c := &Counter{
		store:  store,
		logger: logger,
	}
	c.count = c.load()

	return c, nil
}

func (c *Counter) load() int {
	stored, ok, err := c.store.GetItem(StorageKey)
	if err != nil {
		c.logger.Warn("could not read download count, starting at 0", zap.Error(err))
		return 0
	}
	if !ok || stored == "" {
		return 0
	}

	value, ok := parseCount(stored)
	if !ok {
		c.logger.Warn("ignoring invalid stored download count",
			zap.String("key", StorageKey),
			zap.String("value", stored))
		return 0
	}
	return value
}

// parseCount reads the leading base-10 integer of s, ignoring surrounding
// whitespace and anything after the digits ("12abc" and "12.9" give 12).
// Negative and out-of-range values are rejected.
func parseCount(s string) (int, bool) {
	s = strings.TrimSpace(s)

	end := 0
	if end < len(s) && (s[end] == '+' || s[end] == '-') {
		end++
	}
	digitsStart := end
	for end < len(s) && s[end] >= '0' && s[end] <= '9' {
		end++
	}
	if end == digitsStart {
		return 0, false
	}

	n, err := strconv.ParseInt(s[:end], 10, 64)
	if err != nil || n < 0 || n > math.MaxInt32 {
		return 0, false
	}
	return int(n), true
}

// Count returns the current value.
func (c *Counter) Count() int {
	c.mu.Lock()
	defer c.mu.Unlock()
	return c.count
}

// Increment adds one and persists the result.
//
// The in-memory value is updated even if the store write fails; the error is
// returned so the caller can report it.
func (c *Counter) Increment() error {
	c.mu.Lock()
	defer c.mu.Unlock()
	c.count++
	return c.persist()
}

// Reset sets the value to 0 and persists it.
func (c *Counter) Reset() error {
	c.mu.Lock()
	defer c.mu.Unlock()
	c.count = 0
	return c.persist()
}

func (c *Counter) persist() error {
	if err := c.store.SetItem(StorageKey, strconv.Itoa(c.count)); err != nil {
		return fmt.Errorf("persisting download count: %w", err)
	}
	return nil
}
