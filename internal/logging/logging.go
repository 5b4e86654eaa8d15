// Package logging builds the zap loggers used by the showcase commands.
package logging

import (
	"fmt"
	"path/filepath"

	ioutils "github.com/handiism/showcase/internal/io"
	"go.uber.org/zap"
	"go.uber.org/zap/zapcore"
)

// Options selects the logger output.
type Options struct {
	// Verbose enables debug level.
	Verbose bool

	// File redirects output to a file instead of stderr.
	File string

	// Discard drops everything unless File is set. Used by the TUI, which
	// owns the terminal.
	Discard bool
}

// New builds a JSON production logger.
func New(opts Options) (*zap.Logger, error) {
	if opts.File == "" && opts.Discard {
		return zap.NewNop(), nil
	}

	config := zap.NewProductionConfig()
	if opts.Verbose {
		config.Level = zap.NewAtomicLevelAt(zapcore.DebugLevel)
	}
	if opts.File != "" {
		if err := ioutils.EnsureDir(filepath.Dir(opts.File)); err != nil {
			return nil, fmt.Errorf("failed to create log directory: %w", err)
		}
		config.OutputPaths = []string{opts.File}
		config.ErrorOutputPaths = []string{opts.File}
	}

	logger, err := config.Build()
	if err != nil {
		return nil, fmt.Errorf("failed to initialize logger: %w", err)
	}
	return logger, nil
}
