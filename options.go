package blockify

import (
	"github.com/tsawler/blockify/cluster"
	"github.com/tsawler/blockify/model"
	"github.com/tsawler/blockify/normalize"
)

// Options holds configuration for one clustering pipeline.
type Options struct {
	// Clustering thresholds
	config cluster.Config

	// Watermark filtering
	filterWatermarks  bool
	watermarkKeywords []string
	watermarkPatterns []string

	// Optional drawn rules for underscore injection
	rules []model.Rule
}

// defaultOptions returns the default pipeline options.
func defaultOptions() Options {
	return Options{
		config:           cluster.DefaultConfig(),
		filterWatermarks: false,
	}
}

// clone creates a deep copy of Options.
func (o Options) clone() Options {
	newOpts := Options{
		config:           o.config,
		filterWatermarks: o.filterWatermarks,
	}

	if o.watermarkKeywords != nil {
		newOpts.watermarkKeywords = make([]string, len(o.watermarkKeywords))
		copy(newOpts.watermarkKeywords, o.watermarkKeywords)
	}
	if o.watermarkPatterns != nil {
		newOpts.watermarkPatterns = make([]string, len(o.watermarkPatterns))
		copy(newOpts.watermarkPatterns, o.watermarkPatterns)
	}
	if o.rules != nil {
		newOpts.rules = make([]model.Rule, len(o.rules))
		copy(newOpts.rules, o.rules)
	}

	return newOpts
}

// normalizeOptions maps pipeline options onto the normalization stage.
func (o Options) normalizeOptions() normalize.Options {
	opts := normalize.DefaultOptions()
	opts.FilterWatermarks = o.filterWatermarks
	opts.Keywords = o.watermarkKeywords
	opts.Patterns = o.watermarkPatterns
	return opts
}
