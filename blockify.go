// Package blockify provides a fluent API for grouping fragment-level text
// spans from a document page into block-level units: paragraphs, form
// fields, and signature lines.
//
// Basic usage:
//
//	blocks, stats, err := blockify.New().Cluster(rawSpans)
//	if err != nil {
//	    // handle error
//	}
//	if stats.SkippedSpans > 0 {
//	    log.Println("skipped malformed spans:", stats.SkippedSpans)
//	}
//
// With options:
//
//	blocks, _, err := blockify.New().
//	    DistanceThreshold(50).
//	    LineGapMultiplier(2.5).
//	    FilterWatermarks().
//	    Cluster(rawSpans)
//
// For advanced use cases, the lower-level cluster and normalize packages
// are also available.
package blockify

import (
	"fmt"

	"github.com/tsawler/blockify/cluster"
	"github.com/tsawler/blockify/model"
	"github.com/tsawler/blockify/normalize"
)

// Pipeline configures and runs span clustering for one page at a time.
// A Pipeline holds no per-page state: the same configured Pipeline may be
// reused across pages, and distinct Pipelines never interfere, so callers
// may parallelize at page granularity.
type Pipeline struct {
	options Options
}

// New creates a Pipeline with default options for fluent configuration.
//
// Example:
//
//	blocks, stats, err := blockify.New().Cluster(rawSpans)
func New() *Pipeline {
	return &Pipeline{options: defaultOptions()}
}

// DistanceThreshold sets the maximum center-to-center distance (in bbox
// units) for two spans to be grouped by proximity.
func (p *Pipeline) DistanceThreshold(v float64) *Pipeline {
	p.options.config.DistanceThreshold = v
	return p
}

// VerticalTolerance sets the banding tolerance used when ordering a
// block's spans top-to-bottom.
func (p *Pipeline) VerticalTolerance(v float64) *Pipeline {
	p.options.config.VerticalTolerance = v
	return p
}

// OverlapThreshold sets the minimum vertical overlap, as a fraction of the
// smaller span's height, for two spans to count as the same line.
func (p *Pipeline) OverlapThreshold(v float64) *Pipeline {
	p.options.config.OverlapThreshold = v
	return p
}

// LineGapMultiplier caps the horizontal gap on a shared line at this
// multiple of the larger font size.
func (p *Pipeline) LineGapMultiplier(v float64) *Pipeline {
	p.options.config.LineGapMultiplier = v
	return p
}

// ShortSpanLimit sets the text-length/area limit below which a block is
// merged into its nearest neighbor.
func (p *Pipeline) ShortSpanLimit(n int) *Pipeline {
	p.options.config.ShortSpanLimit = n
	return p
}

// MergeFallbackDistance sets the generous maximum distance within which a
// short block may be merged.
func (p *Pipeline) MergeFallbackDistance(v float64) *Pipeline {
	p.options.config.MergeFallbackDistance = v
	return p
}

// NearestByEdge switches the short-block merge to edge distance instead of
// the default center distance.
func (p *Pipeline) NearestByEdge() *Pipeline {
	p.options.config.NearestBy = cluster.NearestByEdge
	return p
}

// FilterWatermarks enables removal of watermark-like spans (URLs, emails,
// stamp keywords, near-white ink) before graph construction.
func (p *Pipeline) FilterWatermarks() *Pipeline {
	p.options.filterWatermarks = true
	return p
}

// WatermarkKeywords supplements the built-in watermark keyword list.
// Implies FilterWatermarks.
func (p *Pipeline) WatermarkKeywords(keywords ...string) *Pipeline {
	p.options.filterWatermarks = true
	p.options.watermarkKeywords = append(p.options.watermarkKeywords, keywords...)
	return p
}

// WatermarkPatterns supplements the built-in URL and email patterns with
// custom regular expressions. Implies FilterWatermarks.
func (p *Pipeline) WatermarkPatterns(patterns ...string) *Pipeline {
	p.options.filterWatermarks = true
	p.options.watermarkPatterns = append(p.options.watermarkPatterns, patterns...)
	return p
}

// Rules supplies the page's horizontal drawn line segments so missing
// underscore fill can be synthesized next to signature captions.
func (p *Pipeline) Rules(rules ...model.Rule) *Pipeline {
	p.options.rules = append(p.options.rules, rules...)
	return p
}

// Config replaces the clustering thresholds wholesale. Useful when a
// caller manages a cluster.Config value object directly.
func (p *Pipeline) Config(cfg cluster.Config) *Pipeline {
	p.options.config = cfg
	return p
}

// Stats summarizes what one Cluster run dropped, merged, and synthesized.
type Stats struct {
	// SkippedSpans counts malformed raw records that were skipped.
	SkippedSpans int

	// WatermarksRemoved counts spans the watermark filter discarded.
	WatermarksRemoved int

	// MergedBlocks counts short blocks folded into a neighbor.
	MergedBlocks int

	// InjectedUnderscores counts synthesized underscore spans.
	InjectedUnderscores int
}

// Cluster runs the pipeline over one page's raw spans: normalization and
// watermark filtering, proximity-graph clustering, and block repair.
// Configuration is validated before any processing; an empty input yields
// an empty result and no error.
func (p *Pipeline) Cluster(raw []model.RawSpan) ([]model.Block, Stats, error) {
	opts := p.options.clone()

	if err := opts.config.Validate(); err != nil {
		return nil, Stats{}, fmt.Errorf("blockify: %w", err)
	}

	spans, nstats := normalize.Spans(raw, opts.normalizeOptions())

	blocks, cstats, err := cluster.Cluster(spans, opts.rules, opts.config)
	if err != nil {
		return nil, Stats{}, fmt.Errorf("blockify: %w", err)
	}

	return blocks, Stats{
		SkippedSpans:        nstats.Skipped,
		WatermarksRemoved:   nstats.Watermarks,
		MergedBlocks:        cstats.MergedBlocks,
		InjectedUnderscores: cstats.InjectedUnderscores,
	}, nil
}

// Cluster is a convenience wrapper running a default pipeline.
//
// Example:
//
//	blocks, stats, err := blockify.Cluster(rawSpans)
func Cluster(raw []model.RawSpan) ([]model.Block, Stats, error) {
	return New().Cluster(raw)
}

// Must is a helper that wraps a call returning (T, Stats, error) and
// panics if the error is non-nil. It discards stats and is intended for
// scripts or tests where error handling would be cumbersome.
//
// Example:
//
//	blocks := blockify.Must(blockify.Cluster(rawSpans))
func Must[T any](val T, _ Stats, err error) T {
	if err != nil {
		panic(err)
	}
	return val
}
