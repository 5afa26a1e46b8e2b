package cluster

import "testing"

func TestJoinText(t *testing.T) {
	tests := []struct {
		name string
		prev string
		next string
		want string
	}{
		{
			name: "Empty previous",
			prev: "",
			next: "Hello",
			want: "Hello",
		},
		{
			name: "Whitespace-only next",
			prev: "Hello",
			next: "   ",
			want: "Hello",
		},
		{
			name: "Capitalized word starts with a space",
			prev: "Hello",
			next: "World",
			want: "Hello World",
		},
		{
			name: "Vowel ending keeps words apart",
			prev: "hello",
			next: "world",
			want: "hello world",
		},
		{
			name: "Consonant ending glues a wrapped word",
			prev: "quar",
			next: "terly",
			want: "quarterly",
		},
		{
			name: "Cyrillic vowel ending keeps words apart",
			prev: "дело",
			next: "ведется",
			want: "дело ведется",
		},
		{
			name: "Punctuation ending gets a space",
			prev: "Name:",
			next: "John",
			want: "Name: John",
		},
		{
			name: "Hyphen ending glues directly",
			prev: "well-",
			next: "known",
			want: "well-known",
		},
		{
			name: "Trailing space glues directly",
			prev: "already ",
			next: "spaced",
			want: "already spaced",
		},
		{
			name: "Digit following a letter gets a space",
			prev: "Total",
			next: "42",
			want: "Total 42",
		},
		{
			name: "Leading whitespace on next is trimmed",
			prev: "Name:",
			next: "  John",
			want: "Name: John",
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if got := joinText(tt.prev, tt.next); got != tt.want {
				t.Errorf("joinText(%q, %q) = %q, want %q", tt.prev, tt.next, got, tt.want)
			}
		})
	}
}
