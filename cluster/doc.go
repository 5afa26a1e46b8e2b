// Package cluster implements the clustering engine that groups text spans
// into blocks approximating human-perceived paragraphs, form fields, and
// signature lines.
//
// # Algorithm
//
// [Cluster] runs a four-stage pipeline over one page's spans:
//
//  1. Proximity graph: spans become nodes; an undirected edge joins two
//     spans when their centers are within DistanceThreshold, or when they
//     sit on the same text baseline (vertical overlap of at least
//     OverlapThreshold of the smaller height, horizontal gap within
//     LineGapMultiplier times the larger font size).
//  2. BFS component labeling with a fixed traversal order: ascending start
//     index, FIFO queue, ascending neighbor order. Output is deterministic
//     for a given input order and configuration.
//  3. Block assembly: members are sorted into reading order (top-to-bottom
//     with a vertical tolerance band, then left-to-right) and joined with
//     layout-aware whitespace.
//  4. Repair ([Repair]): short blocks merge into their nearest neighbor,
//     and missing underscore fill is synthesized for fillable fields and
//     drawn signature lines.
//
// The two edge predicates exist because neither suffices alone: pure
// distance clustering under-groups long-spaced same-line content (a form
// label and its far-right answer), while pure line adjacency over-groups
// unrelated lines that overlap through ascenders and descenders.
//
// # Configuration
//
// Behavior is controlled by [Config]:
//
//	cfg := cluster.DefaultConfig()
//	cfg.DistanceThreshold = 50
//	blocks, stats, err := cluster.Cluster(spans, nil, cfg)
//
// Validate rejects non-positive values before any processing. Increasing
// DistanceThreshold with other parameters fixed never increases the number
// of output blocks.
package cluster
