package cluster

import (
	"math"

	"github.com/tsawler/blockify/model"
)

// buildGraph computes the undirected adjacency structure over spans. Two
// spans share an edge when either predicate holds: center proximity, or
// line adjacency (same visual baseline with a bounded horizontal gap).
//
// Pairwise comparison is O(n^2) in the span count; per-page counts are
// small (order hundreds) so no spatial index is used.
func buildGraph(spans []model.Span, cfg Config) [][]int {
	adjacency := make([][]int, len(spans))

	for i := range spans {
		for j := i + 1; j < len(spans); j++ {
			if sameBlock(spans[i], spans[j], cfg) {
				adjacency[i] = append(adjacency[i], j)
				adjacency[j] = append(adjacency[j], i)
			}
		}
	}

	return adjacency
}

// sameBlock is the union of the two edge predicates. Distance clustering
// alone under-groups long-spaced same-line content (a label and its
// far-right answer); line adjacency alone over-groups lines that merely
// overlap through ascenders and descenders. Each predicate is tunable
// independently.
func sameBlock(a, b model.Span, cfg Config) bool {
	if a.Center().Distance(b.Center()) <= cfg.DistanceThreshold {
		return true
	}
	return sameLine(a, b, cfg)
}

// sameLine reports whether two spans sit on the same text baseline: their
// vertical ranges overlap by at least OverlapThreshold of the smaller
// span's height, and the horizontal gap between them is within
// LineGapMultiplier times the larger font size.
func sameLine(a, b model.Span, cfg Config) bool {
	minHeight := math.Min(a.BBox.Height(), b.BBox.Height())
	if minHeight <= 0 {
		return false
	}

	if a.BBox.VerticalOverlap(b.BBox) < cfg.OverlapThreshold*minHeight {
		return false
	}

	maxSize := math.Max(a.Style.Size, b.Style.Size)
	return a.BBox.HorizontalGap(b.BBox) <= cfg.LineGapMultiplier*maxSize
}
