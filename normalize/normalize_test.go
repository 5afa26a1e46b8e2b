package normalize

import (
	"testing"

	"github.com/tsawler/blockify/model"
)

func raw(text string, bbox ...float64) model.RawSpan {
	return model.RawSpan{Text: text, BBox: bbox, Size: 12}
}

func TestSpansSkipsMalformedRecords(t *testing.T) {
	tests := []struct {
		name        string
		raw         model.RawSpan
		wantSkipped bool
	}{
		{
			name:        "Valid record",
			raw:         raw("Hello", 0, 0, 30, 12),
			wantSkipped: false,
		},
		{
			name:        "Missing bbox",
			raw:         model.RawSpan{Text: "Hello", Size: 12},
			wantSkipped: true,
		},
		{
			name:        "Too few bbox values",
			raw:         raw("Hello", 0, 0, 30),
			wantSkipped: true,
		},
		{
			name:        "Inverted bbox",
			raw:         raw("Hello", 30, 0, 0, 12),
			wantSkipped: true,
		},
		{
			name:        "Whitespace-only text",
			raw:         raw("   ", 0, 0, 30, 12),
			wantSkipped: true,
		},
		{
			name:        "Non-positive font size",
			raw:         model.RawSpan{Text: "Hello", BBox: []float64{0, 0, 30, 12}, Size: 0},
			wantSkipped: true,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			spans, stats := Spans([]model.RawSpan{tt.raw}, DefaultOptions())

			if tt.wantSkipped {
				if len(spans) != 0 || stats.Skipped != 1 {
					t.Errorf("got %d spans, %d skipped; want record skipped", len(spans), stats.Skipped)
				}
			} else {
				if len(spans) != 1 || stats.Skipped != 0 {
					t.Errorf("got %d spans, %d skipped; want record kept", len(spans), stats.Skipped)
				}
			}
		})
	}
}

func TestSpansMalformedRecordsAreNotFatal(t *testing.T) {
	input := []model.RawSpan{
		raw("First", 0, 0, 30, 12),
		{Text: "broken"}, // no geometry
		raw("Second", 0, 20, 30, 32),
	}

	spans, stats := Spans(input, DefaultOptions())

	if len(spans) != 2 {
		t.Fatalf("got %d spans, want 2", len(spans))
	}
	if stats.Skipped != 1 {
		t.Errorf("Skipped = %d, want 1", stats.Skipped)
	}
	if spans[0].Text != "First" || spans[1].Text != "Second" {
		t.Errorf("surviving spans = %q, %q", spans[0].Text, spans[1].Text)
	}
}

func TestSpansEmptyInput(t *testing.T) {
	spans, stats := Spans(nil, DefaultOptions())
	if len(spans) != 0 || stats.Skipped != 0 {
		t.Errorf("got %d spans, %d skipped; want empty result", len(spans), stats.Skipped)
	}
}

func TestSpansNormalizesToNFC(t *testing.T) {
	// "e" + combining acute accent should become a single code point.
	decomposed := "Cafe\u0301"
	composed := "Caf\u00e9"

	spans, _ := Spans([]model.RawSpan{raw(decomposed, 0, 0, 30, 12)}, DefaultOptions())

	if len(spans) != 1 {
		t.Fatalf("got %d spans, want 1", len(spans))
	}
	if spans[0].Text != composed {
		t.Errorf("Text = %q, want %q", spans[0].Text, composed)
	}
}

func TestSpansStyleFromFontName(t *testing.T) {
	input := []model.RawSpan{{
		Text: "Heading",
		BBox: []float64{0, 0, 60, 14},
		Font: "Times-BoldItalic",
		Size: 14,
	}}

	spans, _ := Spans(input, DefaultOptions())
	if len(spans) != 1 {
		t.Fatalf("got %d spans, want 1", len(spans))
	}
	style := spans[0].Style
	if !style.Bold || !style.Italic || style.Size != 14 {
		t.Errorf("Style = %+v, want bold italic size 14", style)
	}
}

func TestWatermarkFilter(t *testing.T) {
	opts := DefaultOptions()
	opts.FilterWatermarks = true

	tests := []struct {
		name        string
		raw         model.RawSpan
		wantRemoved bool
	}{
		{
			name:        "Email address",
			raw:         raw("CONFIDENTIAL@example.com", 0, 0, 100, 12),
			wantRemoved: true,
		},
		{
			name:        "Bare domain",
			raw:         raw("visit www.example.com today", 0, 0, 100, 12),
			wantRemoved: true,
		},
		{
			name:        "Stamp keyword",
			raw:         raw("DRAFT", 0, 0, 40, 12),
			wantRemoved: true,
		},
		{
			name:        "Keyword inside a sentence is kept",
			raw:         raw("The draft agreement follows.", 0, 0, 150, 12),
			wantRemoved: false,
		},
		{
			name: "Near-white ink",
			raw: model.RawSpan{
				Text:  "Property of ACME",
				BBox:  []float64{0, 0, 100, 12},
				Size:  12,
				Color: 0xF5F5F5,
			},
			wantRemoved: true,
		},
		{
			name: "Dark ink is kept",
			raw: model.RawSpan{
				Text:  "Property of ACME",
				BBox:  []float64{0, 0, 100, 12},
				Size:  12,
				Color: 0x202020,
			},
			wantRemoved: false,
		},
		{
			name:        "Plain content",
			raw:         raw("Quarterly report", 0, 0, 100, 12),
			wantRemoved: false,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			spans, stats := Spans([]model.RawSpan{tt.raw}, opts)

			removed := len(spans) == 0 && stats.Watermarks == 1
			if removed != tt.wantRemoved {
				t.Errorf("removed = %v, want %v (spans=%d watermarks=%d)",
					removed, tt.wantRemoved, len(spans), stats.Watermarks)
			}
		})
	}
}

func TestWatermarkFilterDisabledKeepsEverything(t *testing.T) {
	input := []model.RawSpan{
		raw("CONFIDENTIAL@example.com", 0, 0, 100, 12),
		raw("DRAFT", 0, 20, 40, 32),
	}

	spans, stats := Spans(input, DefaultOptions())
	if len(spans) != 2 || stats.Watermarks != 0 {
		t.Errorf("got %d spans, %d watermarks; filter should be off by default", len(spans), stats.Watermarks)
	}
}

func TestWatermarkCustomKeywordsAndPatterns(t *testing.T) {
	opts := DefaultOptions()
	opts.FilterWatermarks = true
	opts.Keywords = []string{"internal use only"}
	opts.Patterns = []string{`(?i)^page \d+ of \d+$`}

	input := []model.RawSpan{
		raw("INTERNAL USE ONLY", 0, 0, 120, 12),
		raw("Page 3 of 12", 0, 20, 80, 32),
		raw("Real paragraph text here", 0, 40, 160, 52),
	}

	spans, stats := Spans(input, opts)
	if len(spans) != 1 || stats.Watermarks != 2 {
		t.Fatalf("got %d spans, %d watermarks; want 1 span kept", len(spans), stats.Watermarks)
	}
	if spans[0].Text != "Real paragraph text here" {
		t.Errorf("kept span = %q", spans[0].Text)
	}
}

func TestLuminance(t *testing.T) {
	tests := []struct {
		name  string
		color int
		want  int
	}{
		{name: "Black", color: 0x000000, want: 0},
		{name: "White", color: 0xFFFFFF, want: 255},
		{name: "Near-white gray", color: 0xF0F0F0, want: 240},
		{name: "Pure red", color: 0xFF0000, want: 76},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if got := luminance(tt.color); got != tt.want {
				t.Errorf("luminance(%#x) = %d, want %d", tt.color, got, tt.want)
			}
		})
	}
}
