package cluster

import (
	"reflect"
	"testing"

	"github.com/tsawler/blockify/model"
)

func TestComponents(t *testing.T) {
	tests := []struct {
		name      string
		adjacency [][]int
		want      [][]int
	}{
		{
			name:      "No edges",
			adjacency: [][]int{{}, {}, {}},
			want:      [][]int{{0}, {1}, {2}},
		},
		{
			name:      "One chain",
			adjacency: [][]int{{1}, {0, 2}, {1}},
			want:      [][]int{{0, 1, 2}},
		},
		{
			name:      "Two components",
			adjacency: [][]int{{1}, {0}, {3}, {2}},
			want:      [][]int{{0, 1}, {2, 3}},
		},
		{
			name: "BFS order is breadth-first from lowest index",
			// 0 connects to 2 and 3; 3 connects to 1.
			adjacency: [][]int{{2, 3}, {3}, {0}, {0, 1}},
			want:      [][]int{{0, 2, 3, 1}},
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got := components(tt.adjacency)
			if !reflect.DeepEqual(got, tt.want) {
				t.Errorf("components() = %v, want %v", got, tt.want)
			}
		})
	}
}

func TestComponentsPartition(t *testing.T) {
	// Every node must land in exactly one component.
	adjacency := [][]int{{1, 4}, {0}, {}, {4}, {0, 3}, {6}, {5}}

	got := components(adjacency)

	seen := make(map[int]int)
	for _, comp := range got {
		for _, idx := range comp {
			seen[idx]++
		}
	}
	for idx := range adjacency {
		if seen[idx] != 1 {
			t.Errorf("node %d appears %d times, want exactly once", idx, seen[idx])
		}
	}
}

func TestReadingOrder(t *testing.T) {
	tests := []struct {
		name      string
		spans     []model.Span
		tolerance float64
		want      []string
	}{
		{
			name: "Top to bottom",
			spans: []model.Span{
				span("second", 0, 20, 30, 32, 12),
				span("first", 0, 0, 30, 12, 12),
			},
			tolerance: 5,
			want:      []string{"first", "second"},
		},
		{
			name: "Left to right within a band",
			spans: []model.Span{
				span("right", 60, 0, 90, 12, 12),
				span("left", 0, 2, 30, 14, 12),
			},
			tolerance: 5,
			want:      []string{"left", "right"},
		},
		{
			name: "Jitter within tolerance does not split a line",
			spans: []model.Span{
				span("c", 80, 3, 100, 15, 12),
				span("a", 0, 0, 20, 12, 12),
				span("b", 40, 4, 60, 16, 12),
			},
			tolerance: 5,
			want:      []string{"a", "b", "c"},
		},
		{
			name: "Beyond tolerance starts a new band",
			spans: []model.Span{
				span("lower-left", 0, 10, 20, 22, 12),
				span("upper-right", 80, 0, 100, 12, 12),
			},
			tolerance: 5,
			want:      []string{"upper-right", "lower-left"},
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got := readingOrder(tt.spans, tt.tolerance)
			texts := make([]string, len(got))
			for i, s := range got {
				texts[i] = s.Text
			}
			if !reflect.DeepEqual(texts, tt.want) {
				t.Errorf("readingOrder() = %v, want %v", texts, tt.want)
			}
		})
	}
}

func TestBuildBlockAggregates(t *testing.T) {
	cfg := DefaultConfig()

	spans := []model.Span{
		{
			Text:  "World",
			BBox:  model.NewBBox(40, 0, 75, 12),
			Style: model.FontStyle{Font: "Helvetica", Size: 12},
		},
		{
			Text:  "Hello",
			BBox:  model.NewBBox(0, 1, 35, 13),
			Style: model.FontStyle{Font: "Helvetica-Bold", Size: 10, Bold: true},
		},
	}

	block := buildBlock(spans, cfg)

	if block.Text != "Hello World" {
		t.Errorf("Text = %q, want %q", block.Text, "Hello World")
	}
	if block.BBox != model.NewBBox(0, 0, 75, 13) {
		t.Errorf("BBox = %+v", block.BBox)
	}
	if block.Style.Size != 10 {
		t.Errorf("Style.Size = %v, want the smallest member size 10", block.Style.Size)
	}
	if !block.Style.Bold {
		t.Error("Style.Bold = false, want true when any member is bold")
	}
	if block.Style.Font != "Helvetica-Bold" {
		t.Errorf("Style.Font = %q, want the first span's font in reading order", block.Style.Font)
	}
}
