package cluster

import (
	"sort"

	"github.com/tsawler/blockify/model"
)

// components labels connected components with a breadth-first traversal.
// Traversal order is fixed so clustering output is reproducible: start
// nodes are scanned in ascending index order, the queue is FIFO, and each
// node's neighbors are visited in ascending index order (adjacency lists
// are built ascending). Every node lands in exactly one component.
func components(adjacency [][]int) [][]int {
	visited := make([]bool, len(adjacency))
	var comps [][]int

	for idx := range adjacency {
		if visited[idx] {
			continue
		}

		queue := []int{idx}
		visited[idx] = true
		comp := []int{idx}

		for len(queue) > 0 {
			cur := queue[0]
			queue = queue[1:]
			for _, neighbor := range adjacency[cur] {
				if !visited[neighbor] {
					visited[neighbor] = true
					queue = append(queue, neighbor)
					comp = append(comp, neighbor)
				}
			}
		}

		comps = append(comps, comp)
	}

	return comps
}

// readingOrder sorts spans top-to-bottom, then left-to-right. Spans whose
// top edges fall within tolerance of each other form one band and are
// ordered purely by their left edge, so ascender and descender jitter on a
// line does not perturb the order.
func readingOrder(spans []model.Span, tolerance float64) []model.Span {
	ordered := make([]model.Span, len(spans))
	copy(ordered, spans)

	sort.SliceStable(ordered, func(i, j int) bool {
		if ordered[i].BBox.Y0 != ordered[j].BBox.Y0 {
			return ordered[i].BBox.Y0 < ordered[j].BBox.Y0
		}
		return ordered[i].BBox.X0 < ordered[j].BBox.X0
	})

	// Band pass: re-sort each run of near-equal top edges by left edge.
	start := 0
	for start < len(ordered) {
		end := start + 1
		for end < len(ordered) && ordered[end].BBox.Y0-ordered[start].BBox.Y0 <= tolerance {
			end++
		}
		band := ordered[start:end]
		sort.SliceStable(band, func(i, j int) bool {
			return band[i].BBox.X0 < band[j].BBox.X0
		})
		start = end
	}

	return ordered
}

// buildBlock assembles a block from member spans: reading order, union
// bbox, joined text, and an aggregate style (first span's font, smallest
// size, bold when any member is bold).
func buildBlock(spans []model.Span, cfg Config) model.Block {
	ordered := readingOrder(spans, cfg.VerticalTolerance)

	bbox := ordered[0].BBox
	text := ""
	minSize := ordered[0].Style.Size
	bold := false

	for _, s := range ordered {
		bbox = bbox.Union(s.BBox)
		text = joinText(text, s.Text)
		if s.Style.Size < minSize {
			minSize = s.Style.Size
		}
		if s.Style.Bold {
			bold = true
		}
	}

	return model.Block{
		BBox: bbox,
		Text: text,
		Style: model.FontStyle{
			Font:   ordered[0].Style.Font,
			Size:   minSize,
			Bold:   bold,
			Italic: ordered[0].Style.Italic,
		},
		Spans: ordered,
	}
}
