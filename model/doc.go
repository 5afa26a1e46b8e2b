// Package model provides the data types shared by the clustering pipeline.
//
// This package defines the value types that flow between pipeline stages,
// making them the primary API for consuming clustering results.
//
// # Spans and Blocks
//
// A [RawSpan] is the record shape produced by an external document-extraction
// library. The normalization stage converts raw records into [Span] values;
// no later stage inspects raw records. A [Block] is the output unit: a
// cluster of spans presented as one logical text unit with a union bounding
// box and reading-order text.
//
// # Geometry
//
// Geometric primitives support the proximity and adjacency predicates:
//
//   - [BBox] - bounding box with union, overlap, and gap calculations
//   - [Point] - 2D point with distance calculation
//   - [Rule] - horizontal drawn line segment used for signature detection
//
// All coordinates use a Y-down page coordinate system: Y0 is the top edge
// of a box and Y1 the bottom edge.
package model
