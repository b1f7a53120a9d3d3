package deckmine

import (
	"go.uber.org/zap"

	"github.com/tsawler/deckmine/pptx"
	"github.com/tsawler/deckmine/stats"
)

// Config aliases the statistics configuration so callers of the fluent
// API don't need to import the stats package directly.
type Config = stats.Config

// Logger aliases the logger type accepted by the pipeline.
type Logger = *zap.SugaredLogger

// DefaultConfig returns the standard thresholds.
func DefaultConfig() Config {
	return stats.DefaultConfig()
}

// extractOptions holds configuration accumulated by the fluent chain.
type extractOptions struct {
	workers int
	cfg     Config
	cfgSet  bool
	logger  Logger
}

func defaultOptions() extractOptions {
	return extractOptions{
		workers: 1,
	}
}

// readerOptions lowers the fluent configuration onto the pptx reader.
func (o extractOptions) readerOptions() []pptx.Option {
	opts := []pptx.Option{pptx.WithWorkers(o.workers)}
	if o.cfgSet {
		opts = append(opts, pptx.WithThresholds(o.cfg))
	}
	if o.logger != nil {
		opts = append(opts, pptx.WithLogger(o.logger))
	}
	return opts
}
