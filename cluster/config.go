package cluster

import "fmt"

// NearestMetric selects how "nearest neighboring block" is measured during
// short-block merging.
type NearestMetric int

const (
	// NearestByCenter measures center-to-center distance.
	NearestByCenter NearestMetric = iota

	// NearestByEdge measures the shortest distance between box edges.
	NearestByEdge
)

// Config holds clustering configuration
type Config struct {
	// DistanceThreshold is the maximum center-to-center distance (in bbox
	// units) for two spans to share a proximity edge.
	DistanceThreshold float64

	// VerticalTolerance is the banding tolerance (in bbox units) used when
	// ordering spans top-to-bottom within a block.
	VerticalTolerance float64

	// OverlapThreshold is the minimum vertical overlap, as a fraction of
	// the smaller span's height, for two spans to count as the same line.
	OverlapThreshold float64

	// LineGapMultiplier caps the horizontal gap on a shared line at
	// LineGapMultiplier x max(font size) of the two spans.
	LineGapMultiplier float64

	// ShortSpanLimit marks a block as short when its text has fewer runes,
	// or its bbox a smaller area, than this limit.
	ShortSpanLimit int

	// MergeFallbackDistance is the generous maximum distance within which a
	// short block may be merged into a neighbor. A short block with no
	// neighbor in range is kept as-is, never dropped.
	MergeFallbackDistance float64

	// NearestBy selects the distance metric for the short-block merge.
	NearestBy NearestMetric
}

// DefaultConfig returns default configuration
func DefaultConfig() Config {
	return Config{
		DistanceThreshold:     65.0,
		VerticalTolerance:     5.0,
		OverlapThreshold:      0.5,
		LineGapMultiplier:     3.0,
		ShortSpanLimit:        4,
		MergeFallbackDistance: 200.0,
		NearestBy:             NearestByCenter,
	}
}

// Validate rejects non-positive or out-of-range values before any
// processing begins.
func (c Config) Validate() error {
	if c.DistanceThreshold <= 0 {
		return fmt.Errorf("distance threshold must be positive, got %v", c.DistanceThreshold)
	}
	if c.VerticalTolerance <= 0 {
		return fmt.Errorf("vertical tolerance must be positive, got %v", c.VerticalTolerance)
	}
	if c.OverlapThreshold <= 0 || c.OverlapThreshold > 1 {
		return fmt.Errorf("overlap threshold must be in (0, 1], got %v", c.OverlapThreshold)
	}
	if c.LineGapMultiplier <= 0 {
		return fmt.Errorf("line gap multiplier must be positive, got %v", c.LineGapMultiplier)
	}
	if c.ShortSpanLimit <= 0 {
		return fmt.Errorf("short span limit must be positive, got %v", c.ShortSpanLimit)
	}
	if c.MergeFallbackDistance <= 0 {
		return fmt.Errorf("merge fallback distance must be positive, got %v", c.MergeFallbackDistance)
	}
	if c.NearestBy != NearestByCenter && c.NearestBy != NearestByEdge {
		return fmt.Errorf("unknown nearest metric %d", c.NearestBy)
	}
	return nil
}
