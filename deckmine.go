// Package deckmine provides a fluent API for extracting a normalized
// feature tree from PowerPoint (.pptx) presentations.
//
// Basic usage:
//
//	pres, warnings, err := deckmine.Open("deck.pptx").Extract()
//	if err != nil {
//	    // handle error
//	}
//	if warnings > 0 {
//	    log.Printf("%d recoverable problems", warnings)
//	}
//
// With options:
//
//	pres, _, err := deckmine.Open("deck.pptx").
//	    Workers(4).
//	    Thresholds(cfg).
//	    Extract()
//
// For advanced use cases, the lower-level pptx package is also
// available.
package deckmine

import (
	"github.com/tsawler/deckmine/model"
	"github.com/tsawler/deckmine/pptx"
)

// Open prepares an Extractor for the presentation at filename. The
// file is not touched until a terminal operation runs.
//
// Example:
//
//	pres, warnings, err := deckmine.Open("deck.pptx").Extract()
func Open(filename string) *Extractor {
	return &Extractor{
		filename: filename,
		options:  defaultOptions(),
	}
}

// Must is a helper that wraps a call to a function returning (T, error)
// and panics if the error is non-nil. It is intended for scripts and
// tests where error handling would be cumbersome.
func Must[T any](val T, err error) T {
	if err != nil {
		panic(err)
	}
	return val
}

// MustExtract wraps an Extract() call, discarding the warning count and
// panicking on error.
//
// Example:
//
//	pres := deckmine.MustExtract(deckmine.Open("deck.pptx").Extract())
func MustExtract(p *model.Presentation, _ int, err error) *model.Presentation {
	if err != nil {
		panic(err)
	}
	return p
}

// Extractor is the fluent configuration handle returned by Open.
type Extractor struct {
	filename string
	options  extractOptions
}

// Workers sets the number of slides extracted concurrently.
func (e *Extractor) Workers(n int) *Extractor {
	e.options.workers = n
	return e
}

// Thresholds overrides the statistic and categorization constants.
func (e *Extractor) Thresholds(cfg Config) *Extractor {
	e.options.cfg = cfg
	e.options.cfgSet = true
	return e
}

// Logger routes recoverable-problem warnings to the given logger.
func (e *Extractor) Logger(l Logger) *Extractor {
	e.options.logger = l
	return e
}

// Extract runs the full pipeline and returns the feature tree along
// with the number of recoverable problems encountered.
func (e *Extractor) Extract() (*model.Presentation, int, error) {
	r, err := pptx.Open(e.filename, e.options.readerOptions()...)
	if err != nil {
		return nil, 0, err
	}
	defer r.Close()
	return r.Extract()
}
