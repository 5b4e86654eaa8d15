package download

import (
	"fmt"
	"strings"

	"github.com/handiism/showcase/internal/model"
	"go.uber.org/zap"
)

// Opener opens a URL: a browser tab, a background fetch, a log line.
// It is fire-and-forget; the trigger never learns whether it succeeded.
type Opener interface {
	Open(url string)
}

// OpenerFunc adapts a function to the Opener interface.
type OpenerFunc func(url string)

// Open calls f(url).
func (f OpenerFunc) Open(url string) { f(url) }

// Trigger starts downloads through an injected Opener.
type Trigger struct {
	opener Opener
	logger *zap.Logger
}

// NewTrigger creates a Trigger.
//
// Returns an error wrapping model.ErrInvalidArgument if opener is nil.
func NewTrigger(opener Opener, logger *zap.Logger) (*Trigger, error) {
	if opener == nil {
		return nil, fmt.Errorf("%w: download opener is required", model.ErrInvalidArgument)
	}
	if logger == nil {
		logger = zap.NewNop()
	}
	return &Trigger{opener: opener, logger: logger}, nil
}

// Fire opens url and then calls onStarted, if given.
//
// Returns an error wrapping model.ErrInvalidArgument if url is blank; the
// opener is not called in that case. There is no retry and no check that the
// download actually started.
//
// Example:
//
//	err := trigger.Fire(bookURL, func() {
//	    logger.Info("download started")
//	})
func (t *Trigger) Fire(url string, onStarted func()) error {
	if strings.TrimSpace(url) == "" {
		return fmt.Errorf("%w: download URL is empty", model.ErrInvalidArgument)
	}

	t.logger.Debug("opening download", zap.String("url", url))
	t.opener.Open(url)

	if onStarted != nil {
		onStarted()
	}
	return nil
}
