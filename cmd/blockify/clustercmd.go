package main

import (
	"encoding/json"
	"fmt"
	"image/png"
	"io"
	"math"
	"os"

	"github.com/BurntSushi/toml"
	"github.com/spf13/cobra"

	"github.com/tsawler/blockify"
	"github.com/tsawler/blockify/cluster"
	"github.com/tsawler/blockify/model"
	"github.com/tsawler/blockify/render"
)

// pageInput is the JSON shape the cluster command reads: one page's raw
// spans plus, optionally, its horizontal drawn rules.
type pageInput struct {
	Spans []model.RawSpan `json:"spans"`
	Rules []model.Rule    `json:"rules,omitempty"`
}

// blockOutput is the JSON shape written per block.
type blockOutput struct {
	BBox  [4]float64 `json:"bbox"`
	Text  string     `json:"text"`
	Spans int        `json:"spans"`
}

// tuning mirrors cluster.Config plus the watermark toggle for the optional
// TOML tuning file. Fields left out of the file keep their defaults.
type tuning struct {
	DistanceThreshold     float64  `toml:"distance_threshold"`
	VerticalTolerance     float64  `toml:"vertical_tolerance"`
	OverlapThreshold      float64  `toml:"overlap_threshold"`
	LineGapMultiplier     float64  `toml:"line_gap_multiplier"`
	ShortSpanLimit        int      `toml:"short_span_limit"`
	MergeFallbackDistance float64  `toml:"merge_fallback_distance"`
	FilterWatermarks      bool     `toml:"filter_watermarks"`
	WatermarkKeywords     []string `toml:"watermark_keywords"`
}

func defaultTuning() tuning {
	cfg := cluster.DefaultConfig()
	return tuning{
		DistanceThreshold:     cfg.DistanceThreshold,
		VerticalTolerance:     cfg.VerticalTolerance,
		OverlapThreshold:      cfg.OverlapThreshold,
		LineGapMultiplier:     cfg.LineGapMultiplier,
		ShortSpanLimit:        cfg.ShortSpanLimit,
		MergeFallbackDistance: cfg.MergeFallbackDistance,
	}
}

func newClusterCmd() *cobra.Command {
	var (
		inPath      string
		outPath     string
		tuningPath  string
		overlayPath string
	)

	cmd := &cobra.Command{
		Use:   "cluster",
		Short: "Cluster a page of spans into blocks",
		RunE: func(cmd *cobra.Command, args []string) error {
			logger := loggerFromContext(cmd.Context())

			page, err := readPage(inPath)
			if err != nil {
				return err
			}
			logger.Debug("loaded page", "spans", len(page.Spans), "rules", len(page.Rules))

			tune := defaultTuning()
			if tuningPath != "" {
				if _, err := toml.DecodeFile(tuningPath, &tune); err != nil {
					return fmt.Errorf("decode tuning file %s: %w", tuningPath, err)
				}
			}

			pipeline := blockify.New().
				DistanceThreshold(tune.DistanceThreshold).
				VerticalTolerance(tune.VerticalTolerance).
				OverlapThreshold(tune.OverlapThreshold).
				LineGapMultiplier(tune.LineGapMultiplier).
				ShortSpanLimit(tune.ShortSpanLimit).
				MergeFallbackDistance(tune.MergeFallbackDistance).
				Rules(page.Rules...)
			if tune.FilterWatermarks {
				pipeline.FilterWatermarks()
			}
			if len(tune.WatermarkKeywords) > 0 {
				pipeline.WatermarkKeywords(tune.WatermarkKeywords...)
			}

			blocks, stats, err := pipeline.Cluster(page.Spans)
			if err != nil {
				return err
			}
			logger.Info("clustered page",
				"blocks", len(blocks),
				"skipped", stats.SkippedSpans,
				"watermarks", stats.WatermarksRemoved,
				"merged", stats.MergedBlocks,
				"injected", stats.InjectedUnderscores)

			if err := writeBlocks(outPath, blocks); err != nil {
				return err
			}

			if overlayPath != "" {
				if err := writeOverlay(overlayPath, blocks); err != nil {
					return err
				}
				logger.Debug("wrote overlay", "path", overlayPath)
			}

			return nil
		},
	}

	cmd.Flags().StringVar(&inPath, "in", "", "input JSON file with spans (default stdin)")
	cmd.Flags().StringVar(&outPath, "out", "", "output JSON file for blocks (default stdout)")
	cmd.Flags().StringVar(&tuningPath, "config", "", "TOML tuning file overriding default thresholds")
	cmd.Flags().StringVar(&overlayPath, "overlay", "", "write a PNG overlay of block outlines")

	return cmd
}

func readPage(path string) (pageInput, error) {
	var page pageInput

	data, err := readAll(path)
	if err != nil {
		return page, fmt.Errorf("read spans: %w", err)
	}
	if err := json.Unmarshal(data, &page); err != nil {
		return page, fmt.Errorf("parse spans JSON: %w", err)
	}
	return page, nil
}

func readAll(path string) ([]byte, error) {
	if path == "" {
		return io.ReadAll(os.Stdin)
	}
	return os.ReadFile(path)
}

func writeBlocks(path string, blocks []model.Block) error {
	out := make([]blockOutput, 0, len(blocks))
	for _, b := range blocks {
		out = append(out, blockOutput{
			BBox:  [4]float64{b.BBox.X0, b.BBox.Y0, b.BBox.X1, b.BBox.Y1},
			Text:  b.Text,
			Spans: len(b.Spans),
		})
	}

	data, err := json.MarshalIndent(out, "", "  ")
	if err != nil {
		return fmt.Errorf("encode blocks: %w", err)
	}
	data = append(data, '\n')

	if path == "" {
		_, err = os.Stdout.Write(data)
		return err
	}
	return os.WriteFile(path, data, 0o644)
}

// writeOverlay renders block outlines on a white canvas sized to the
// blocks' extent plus a margin.
func writeOverlay(path string, blocks []model.Block) error {
	const margin = 20.0

	width, height := 600, 800
	if len(blocks) > 0 {
		extent := blocks[0].BBox
		for _, b := range blocks[1:] {
			extent = extent.Union(b.BBox)
		}
		width = int(math.Ceil(extent.X1 + margin))
		height = int(math.Ceil(extent.Y1 + margin))
	}

	canvas := render.NewCanvas(width, height)
	render.Overlay(canvas, blocks)

	f, err := os.Create(path)
	if err != nil {
		return fmt.Errorf("create overlay: %w", err)
	}
	defer f.Close()

	if err := png.Encode(f, canvas); err != nil {
		return fmt.Errorf("encode overlay: %w", err)
	}
	return nil
}
