package model

// RawSpan is the fragment-level record shape produced by document-extraction
// libraries. It is accepted only at the normalization boundary; downstream
// components operate on [Span] values and never inspect raw records.
type RawSpan struct {
	// Text is the run text exactly as extracted.
	Text string `json:"text"`

	// BBox holds the bounding box as (x0, y0, x1, y1) with Y increasing
	// downward. Records with fewer than four values, or with inverted
	// edges, are treated as malformed and skipped.
	BBox []float64 `json:"bbox"`

	// Font is the extraction library's font name for the run, if known.
	Font string `json:"font,omitempty"`

	// Size is the font size in the same unit as the bounding box.
	Size float64 `json:"size"`

	// Color is the fill color as a packed RGB integer (0xRRGGBB).
	// Near-white fill is one of the watermark signals.
	Color int `json:"color,omitempty"`
}

// FontStyle describes the typography of a span or block
type FontStyle struct {
	Font   string
	Size   float64
	Bold   bool
	Italic bool
}

// Span is a single contiguous run of text with a bounding box and font
// metrics, the smallest unit the clustering engine operates on.
type Span struct {
	Text  string
	BBox  BBox
	Style FontStyle
}

// Center returns the center point of the span's bounding box
func (s Span) Center() Point {
	return s.BBox.Center()
}

// Block is a cluster of spans presented as one logical text unit
// (paragraph, form field, signature line). A block is created once per
// connected component, mutated only during repair, and immutable after.
type Block struct {
	// BBox is the union rectangle of the member spans.
	BBox BBox

	// Text is the member span texts joined in reading order with
	// layout-aware whitespace.
	Text string

	// Style aggregates the member styles: first span's font, smallest
	// size, bold if any member is bold.
	Style FontStyle

	// Spans holds the member spans in reading order
	// (top-to-bottom, then left-to-right).
	Spans []Span
}

// Rule is a horizontal drawn line segment from the page's vector graphics,
// used to detect signature lines the extraction library does not emit as
// selectable text.
type Rule struct {
	X0 float64 `json:"x0"`
	Y0 float64 `json:"y0"`
	X1 float64 `json:"x1"`
	Y1 float64 `json:"y1"`
}

// Length returns the horizontal extent of the rule
func (r Rule) Length() float64 {
	if r.X1 < r.X0 {
		return r.X0 - r.X1
	}
	return r.X1 - r.X0
}

// MidY returns the vertical midpoint of the rule
func (r Rule) MidY() float64 {
	return (r.Y0 + r.Y1) / 2
}
