package cluster

import (
	"strings"
	"unicode"
	"unicode/utf8"
)

// vowels are treated as safe word endings: a following lowercase letter
// after a vowel starts a new word rather than continuing a wrapped one.
// Covers Latin and Cyrillic.
const vowels = "aeiouyAEIOUYаеёиоуыэюяАЕЁИОУЫЭЮЯ"

// joinText appends next to prev with layout-aware whitespace. Letter runs
// broken across spans (a word wrapped without a hyphen) are glued back
// together; everything else gets a single space unless prev already ends
// in a space or dash.
func joinText(prev, next string) string {
	if prev == "" {
		return next
	}

	next = strings.TrimLeft(next, " \t")
	if next == "" {
		return prev
	}

	last, _ := utf8.DecodeLastRuneInString(prev)
	first, _ := utf8.DecodeRuneInString(next)

	if unicode.IsLetter(last) && unicode.IsLetter(first) {
		if unicode.IsUpper(first) {
			return prev + " " + next
		}
		if strings.ContainsRune(vowels, last) {
			return prev + " " + next
		}
		// Consonant followed by a lowercase letter: treat as a word
		// wrapped mid-run and glue without a space.
		return prev + next
	}

	switch last {
	case ' ', '-', '—', '–':
		return prev + next
	}

	return prev + " " + next
}
