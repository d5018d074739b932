// SPDX-License-Identifier: MIT

package ingest

import (
	"errors"
	"fmt"
	"log/slog"
	"unicode/utf8"
)

// ErrInvalidDelimiter indicates a delimiter csv cannot use.
var ErrInvalidDelimiter = errors.New("ingest: invalid delimiter")

// Options configures Read, File, LoadFile and NewWriter.
type Options struct {
	// Delimiter separates fields; default ','.
	Delimiter rune
	// Logger receives load summaries; default discards.
	Logger *slog.Logger

	err error
}

// Option mutates Options.
type Option func(*Options)

// DefaultOptions returns comma-separated input and a discarding logger.
func DefaultOptions() Options {
	return Options{
		Delimiter: ',',
		Logger:    slog.New(slog.DiscardHandler),
	}
}

// WithDelimiter sets the field delimiter. Quotes, line breaks, the Unicode
// replacement character and invalid runes are rejected.
func WithDelimiter(r rune) Option {
	return func(o *Options) {
		if r == 0 || r == '"' || r == '\r' || r == '\n' || !utf8.ValidRune(r) || r == utf8.RuneError {
			o.err = fmt.Errorf("%w: %q", ErrInvalidDelimiter, r)
			return
		}
		o.Delimiter = r
	}
}

// WithLogger sets the logger. nil is ignored.
func WithLogger(l *slog.Logger) Option {
	return func(o *Options) {
		if l != nil {
			o.Logger = l
		}
	}
}

func resolve(opts []Option) Options {
	o := DefaultOptions()
	for _, opt := range opts {
		opt(&o)
	}

	return o
}
