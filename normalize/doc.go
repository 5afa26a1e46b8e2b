// Package normalize converts raw extraction-library records into spans and
// optionally filters watermark-like spans before clustering.
//
// # Normalization
//
// [Spans] is the single entry point. It validates each record, skipping and
// counting malformed ones (missing or inverted geometry, empty text,
// non-positive font size) instead of failing the page, and NFC-normalizes
// the run text:
//
//	spans, stats := normalize.Spans(raw, normalize.DefaultOptions())
//	if stats.Skipped > 0 {
//	    // some records carried unusable geometry
//	}
//
// # Watermark Filtering
//
// When enabled, spans whose text matches a URL pattern, an email pattern,
// a known watermark keyword, or whose fill color is near-white are removed
// before graph construction. The predicate requires a pattern match; it
// never scores or guesses, so a false negative (keeping a real watermark)
// is preferred over a false positive (dropping real content).
package normalize
