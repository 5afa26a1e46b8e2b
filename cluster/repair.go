package cluster

import (
	"math"
	"regexp"
	"strings"
	"unicode/utf8"

	"github.com/tsawler/blockify/model"
)

const (
	// underlineMinChars is the fallback minimum underscore length when
	// synthesizing a line.
	underlineMinChars = 5

	// underlinePixelsPerChar is the rough scale converting line length
	// into an underscore count.
	underlinePixelsPerChar = 7.0

	// ruleMinLength is the minimum length for a drawn line to count as a
	// signature line.
	ruleMinLength = 30.0

	// ruleYTolerance is the maximum rise for a drawn line to count as
	// horizontal.
	ruleYTolerance = 4.0

	// fillableMaxHeight bounds the height of a block that can be treated
	// as a fillable line.
	fillableMaxHeight = 6.0

	// signLineYTolerance is the maximum vertical distance between a
	// caption block and its signature line.
	signLineYTolerance = 16.0

	// signLineRightMinGap is the minimum horizontal gap after a caption
	// before a signature line may start.
	signLineRightMinGap = 5.0

	// underlinePad is the vertical padding around a synthesized
	// underscore span.
	underlinePad = 1.0

	underlineFontName = "Times New Roman"
	underlineFontSize = 14.0
)

// underscoreRunRE matches text that already renders as an underline:
// either a solid run of underscores or several underscores separated by
// whitespace.
var underscoreRunRE = regexp.MustCompile(`_{4,}|_(?:\s*_){3,}`)

// signatureWords mark caption blocks that typically sit to the left of a
// signature line on forms and official letters.
var signatureWords = []string{
	"signature",
	"date",
	"name",
	"title",
	"director",
	"manager",
	"руководитель",
	"директор",
	"проректор",
	"заведующий",
	"начальник",
}

// Stats summarizes repair activity for one page.
type Stats struct {
	// MergedBlocks counts short blocks folded into a neighbor.
	MergedBlocks int

	// InjectedUnderscores counts synthesized underscore spans.
	InjectedUnderscores int
}

// Repair applies the two post-clustering passes in order: short-block
// merging, then underscore injection. Repair never fails; a block no
// heuristic matches is left unmodified, and running Repair on an
// already-repaired list produces no further change.
func Repair(blocks []model.Block, rules []model.Rule, cfg Config) ([]model.Block, Stats) {
	var stats Stats
	blocks = append([]model.Block(nil), blocks...)
	blocks, stats.MergedBlocks = mergeShortBlocks(blocks, cfg)
	blocks, stats.InjectedUnderscores = injectUnderscores(blocks, rules, cfg)
	return blocks, stats
}

// isShort reports whether a block is too small to stand alone: fewer text
// runes, or a smaller bbox area, than the configured limit. Catches stray
// single-glyph fragments such as an isolated bullet.
func isShort(b model.Block, cfg Config) bool {
	return utf8.RuneCountInString(b.Text) < cfg.ShortSpanLimit ||
		b.BBox.Area() < float64(cfg.ShortSpanLimit)
}

// mergeShortBlocks folds each short block into its nearest neighbor within
// the fallback distance. A short block with no neighbor in range is kept
// as-is: dropping it would lose content. Merging repeats until stable, so
// chains of short fragments collapse into one block and the pass is
// idempotent. Each merge removes a block, bounding the loop.
func mergeShortBlocks(blocks []model.Block, cfg Config) ([]model.Block, int) {
	merged := 0

	for len(blocks) > 1 {
		src, dst := -1, -1
		for i := range blocks {
			if !isShort(blocks[i], cfg) {
				continue
			}
			j, dist := nearestBlock(blocks, i, cfg)
			if j >= 0 && dist <= cfg.MergeFallbackDistance {
				src, dst = i, j
				break
			}
		}
		if src < 0 {
			break
		}

		combined := make([]model.Span, 0, len(blocks[dst].Spans)+len(blocks[src].Spans))
		combined = append(combined, blocks[dst].Spans...)
		combined = append(combined, blocks[src].Spans...)
		blocks[dst] = buildBlock(combined, cfg)

		blocks = append(blocks[:src], blocks[src+1:]...)
		merged++
	}

	return blocks, merged
}

// nearestBlock finds the closest other block by the configured metric.
// Ties break toward the lower index so results are deterministic.
func nearestBlock(blocks []model.Block, i int, cfg Config) (int, float64) {
	best := -1
	bestDist := math.Inf(1)

	for j := range blocks {
		if j == i {
			continue
		}
		var dist float64
		if cfg.NearestBy == NearestByEdge {
			dist = blocks[i].BBox.EdgeDistance(blocks[j].BBox)
		} else {
			dist = blocks[i].BBox.Center().Distance(blocks[j].BBox.Center())
		}
		if dist < bestDist {
			best = j
			bestDist = dist
		}
	}

	return best, bestDist
}

// injectUnderscores synthesizes underscore fill for form and signature
// fields the extraction library did not emit as selectable text. Two
// triggers: a block shaped like an empty fillable line, and a drawn rule
// to the right of a signature caption.
func injectUnderscores(blocks []model.Block, rules []model.Rule, cfg Config) ([]model.Block, int) {
	injected := 0

	for i := range blocks {
		if fillableLine(blocks[i]) {
			blocks[i] = appendUnderscores(blocks[i])
			injected++
		}
	}

	horizontal := horizontalRules(rules)
	if len(horizontal) == 0 {
		return blocks, injected
	}

	for _, caption := range blocks {
		if !signatureCaption(caption.Text) {
			continue
		}
		if underlineOnLine(blocks, caption.BBox) {
			continue
		}
		rule, ok := ruleRightOf(caption.BBox, horizontal)
		if !ok {
			continue
		}
		blocks = append(blocks, underscoreBlock(rule))
		injected++
	}

	return blocks, injected
}

// fillableLine reports whether a block looks like an empty fillable field:
// a wide, short bbox whose text is far too sparse to cover its extent and
// does not already contain an underscore run.
func fillableLine(b model.Block) bool {
	width := b.BBox.Width()
	if width < ruleMinLength || b.BBox.Height() > fillableMaxHeight {
		return false
	}
	if underscoreRunRE.MatchString(b.Text) {
		return false
	}
	covered := float64(utf8.RuneCountInString(b.Text)) * underlinePixelsPerChar
	return covered < width/2
}

// appendUnderscores adds a synthetic underscore span covering the block's
// horizontal extent and appends it to the block text.
func appendUnderscores(b model.Block) model.Block {
	span := model.Span{
		Text: strings.Repeat("_", underscoreCount(b.BBox.Width())),
		BBox: b.BBox,
		Style: model.FontStyle{
			Font: underlineFontName,
			Size: underlineFontSize,
		},
	}

	b.Spans = append(b.Spans, span)
	if b.Text == "" {
		b.Text = span.Text
	} else {
		b.Text = b.Text + " " + span.Text
	}
	return b
}

// horizontalRules filters drawn segments down to usable signature lines,
// normalizing each so X0 <= X1.
func horizontalRules(rules []model.Rule) []model.Rule {
	var out []model.Rule
	for _, r := range rules {
		if math.Abs(r.Y1-r.Y0) > ruleYTolerance || r.Length() < ruleMinLength {
			continue
		}
		if r.X1 < r.X0 {
			r.X0, r.X1 = r.X1, r.X0
		}
		out = append(out, r)
	}
	return out
}

// signatureCaption reports whether text reads like the label of a
// signature or date field.
func signatureCaption(text string) bool {
	lower := strings.ToLower(text)
	for _, w := range signatureWords {
		if strings.Contains(lower, w) {
			return true
		}
	}
	return false
}

// underlineOnLine reports whether some block on the caption's line already
// carries an underscore run, meaning no injection is needed.
func underlineOnLine(blocks []model.Block, caption model.BBox) bool {
	leaderY := caption.Center().Y
	for _, b := range blocks {
		if math.Abs(b.BBox.Center().Y-leaderY) <= signLineYTolerance &&
			underscoreRunRE.MatchString(b.Text) {
			return true
		}
	}
	return false
}

// ruleRightOf finds the first drawn rule vertically aligned with the
// caption and extending past its right edge.
func ruleRightOf(caption model.BBox, rules []model.Rule) (model.Rule, bool) {
	for _, r := range rules {
		overlaps := !(r.Y1 < caption.Y0-signLineYTolerance ||
			r.Y0 > caption.Y1+signLineYTolerance)
		if overlaps && r.X1 > caption.X1+signLineRightMinGap {
			return r, true
		}
	}
	return model.Rule{}, false
}

// underscoreBlock synthesizes a standalone underscore block over a drawn
// signature line.
func underscoreBlock(r model.Rule) model.Block {
	span := model.Span{
		Text: strings.Repeat("_", underscoreCount(r.Length())),
		BBox: model.NewBBox(r.X0, r.Y0-underlinePad, r.X1, r.Y1+underlinePad),
		Style: model.FontStyle{
			Font: underlineFontName,
			Size: underlineFontSize,
		},
	}

	return model.Block{
		BBox:  span.BBox,
		Text:  span.Text,
		Style: span.Style,
		Spans: []model.Span{span},
	}
}

func underscoreCount(width float64) int {
	n := int(width / underlinePixelsPerChar)
	if n < underlineMinChars {
		return underlineMinChars
	}
	return n
}
