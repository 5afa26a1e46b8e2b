package normalize

import (
	"strings"

	"golang.org/x/text/unicode/norm"

	"github.com/tsawler/blockify/model"
)

// Options controls normalization and watermark filtering.
type Options struct {
	// FilterWatermarks enables removal of watermark-like spans before
	// graph construction.
	FilterWatermarks bool

	// NearWhiteThreshold is the minimum luminance (0-255) at which a
	// span's fill color counts as near-white ink.
	NearWhiteThreshold int

	// Keywords supplements the built-in watermark keyword list.
	// Matching is case-insensitive against the trimmed span text.
	Keywords []string

	// Patterns supplements the built-in URL and email patterns with
	// additional regular expressions, matched against the span text.
	Patterns []string
}

// DefaultOptions returns default normalization options.
// Watermark filtering is off by default.
func DefaultOptions() Options {
	return Options{
		FilterWatermarks:   false,
		NearWhiteThreshold: NearWhiteDefault,
	}
}

// Stats reports what normalization dropped.
type Stats struct {
	// Skipped counts malformed raw records (missing or inverted
	// geometry, empty text, non-positive font size).
	Skipped int

	// Watermarks counts spans removed by the watermark filter.
	Watermarks int
}

// Spans converts raw extraction records into spans, skipping malformed
// records and optionally discarding watermark-like spans. It is a pure
// function: it never fails, and an empty input yields an empty result.
func Spans(raw []model.RawSpan, opts Options) ([]model.Span, Stats) {
	var stats Stats
	matcher := newWatermarkMatcher(opts)

	spans := make([]model.Span, 0, len(raw))
	for _, r := range raw {
		span, ok := toSpan(r)
		if !ok {
			stats.Skipped++
			continue
		}
		if opts.FilterWatermarks && matcher.match(r) {
			stats.Watermarks++
			continue
		}
		spans = append(spans, span)
	}

	return spans, stats
}

// toSpan validates one raw record and converts it to a span.
// Text is NFC-normalized so downstream comparisons see one code-point
// sequence per visual character regardless of the extraction library.
func toSpan(r model.RawSpan) (model.Span, bool) {
	if len(r.BBox) < 4 {
		return model.Span{}, false
	}

	bbox := model.NewBBox(r.BBox[0], r.BBox[1], r.BBox[2], r.BBox[3])
	if !bbox.IsValid() {
		return model.Span{}, false
	}

	text := strings.TrimSpace(r.Text)
	if text == "" {
		return model.Span{}, false
	}

	if r.Size <= 0 {
		return model.Span{}, false
	}

	return model.Span{
		Text: norm.NFC.String(text),
		BBox: bbox,
		Style: model.FontStyle{
			Font:   r.Font,
			Size:   r.Size,
			Bold:   strings.Contains(r.Font, "Bold"),
			Italic: strings.Contains(r.Font, "Italic"),
		},
	}, true
}
