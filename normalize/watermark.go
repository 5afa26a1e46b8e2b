package normalize

import (
	"regexp"
	"strings"

	"github.com/tsawler/blockify/model"
)

// NearWhiteDefault is the luminance (0-255) above which fill color is
// treated as near-white ink.
const NearWhiteDefault = 240

var (
	// urlRE matches bare domains and http(s) URLs.
	urlRE = regexp.MustCompile(`(?i)\b(?:https?://)?(?:[a-z0-9-]+\.)+[a-z]{2,}\b`)

	// emailRE matches email addresses.
	emailRE = regexp.MustCompile(`[A-Za-z0-9._%+-]+@[A-Za-z0-9.-]+\.[A-Za-z]{2,}`)
)

// defaultKeywords are stamp texts commonly rendered as page watermarks.
// Matching is against the whole trimmed span text, not a substring, so a
// sentence that merely mentions one of these words is kept.
var defaultKeywords = []string{
	"confidential",
	"draft",
	"sample",
	"copy",
	"watermark",
	"do not copy",
}

// watermarkMatcher decides whether a raw span looks like a watermark.
// The predicate is conservative: it requires a pattern match (URL, email,
// keyword, or near-white ink), never a proximity or score heuristic, so a
// kept watermark is preferred over dropped content.
type watermarkMatcher struct {
	nearWhite int
	keywords  []string
	patterns  []*regexp.Regexp
}

func newWatermarkMatcher(opts Options) *watermarkMatcher {
	m := &watermarkMatcher{
		nearWhite: opts.NearWhiteThreshold,
		keywords:  defaultKeywords,
	}
	if m.nearWhite <= 0 {
		m.nearWhite = NearWhiteDefault
	}
	for _, kw := range opts.Keywords {
		m.keywords = append(m.keywords, strings.ToLower(kw))
	}
	for _, p := range opts.Patterns {
		// An unparsable custom pattern is ignored rather than fatal:
		// filtering is best-effort and must never lose real content.
		if re, err := regexp.Compile(p); err == nil {
			m.patterns = append(m.patterns, re)
		}
	}
	return m
}

func (m *watermarkMatcher) match(r model.RawSpan) bool {
	text := strings.TrimSpace(r.Text)

	if urlRE.MatchString(text) || emailRE.MatchString(text) {
		return true
	}

	lower := strings.ToLower(text)
	for _, kw := range m.keywords {
		if lower == kw {
			return true
		}
	}

	for _, re := range m.patterns {
		if re.MatchString(text) {
			return true
		}
	}

	return luminance(r.Color) >= m.nearWhite
}

// luminance converts a packed 0xRRGGBB color to perceived brightness
// (0-255) using the Rec. 601 weights.
func luminance(color int) int {
	if color <= 0 {
		return 0
	}
	r := (color >> 16) & 0xFF
	g := (color >> 8) & 0xFF
	b := color & 0xFF
	return (299*r + 587*g + 114*b) / 1000
}
