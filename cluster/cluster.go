package cluster

import (
	"fmt"
	"sort"

	"github.com/tsawler/blockify/model"
)

// Cluster groups one page's spans into blocks. It builds the proximity
// graph, labels connected components with a deterministic BFS, assembles a
// block per component, and applies the repair passes. Drawn rules are
// optional and only feed underscore injection; pass nil when the page's
// vector graphics are unavailable.
//
// Cluster is pure with respect to its inputs: it never mutates spans or
// rules, shares no state across calls, and is safe to run concurrently on
// different pages.
func Cluster(spans []model.Span, rules []model.Rule, cfg Config) ([]model.Block, Stats, error) {
	if err := cfg.Validate(); err != nil {
		return nil, Stats{}, fmt.Errorf("cluster: %w", err)
	}

	if len(spans) == 0 {
		return nil, Stats{}, nil
	}

	adjacency := buildGraph(spans, cfg)
	comps := components(adjacency)

	blocks := make([]model.Block, 0, len(comps))
	for _, comp := range comps {
		members := make([]model.Span, len(comp))
		for k, idx := range comp {
			members[k] = spans[idx]
		}
		blocks = append(blocks, buildBlock(members, cfg))
	}

	blocks, stats := Repair(blocks, rules, cfg)

	sort.SliceStable(blocks, func(i, j int) bool {
		if blocks[i].BBox.Y0 != blocks[j].BBox.Y0 {
			return blocks[i].BBox.Y0 < blocks[j].BBox.Y0
		}
		return blocks[i].BBox.X0 < blocks[j].BBox.X0
	})

	return blocks, stats, nil
}
