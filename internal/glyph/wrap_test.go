package glyph

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestWrap(t *testing.T) {
	tests := []struct {
		name  string
		text  string
		width int
		want  []string
	}{
		{"fits", "hello world", 20, []string{"hello world"}},
		{"exact", "hello world", 11, []string{"hello world"}},
		{"break between words", "hello world", 10, []string{"hello", "world"}},
		{"each line restarts its width", "aa bb cc dd ee", 5, []string{"aa bb", "cc dd", "ee"}},
		{"long word split", "abcdefgh", 3, []string{"abc", "def", "gh"}},
		{"long word after short", "a bcdef", 3, []string{"a", "bcd", "ef"}},
		{"newlines kept", "one\n\ntwo", 10, []string{"one", "", "two"}},
		{"collapses spaces", "  a   b  ", 10, []string{"a b"}},
		{"empty", "", 10, []string{""}},
		{"no limit", "a b c", 0, []string{"a b c"}},
	}

	for _, tc := range tests {
		t.Run(tc.name, func(t *testing.T) {
			assert.Equal(t, tc.want, Wrap(tc.text, tc.width))
		})
	}
}

func TestWrapLinesNeverExceedWidth(t *testing.T) {
	text := "Press space to play again or q to quit the game entirely"
	for width := 1; width < 30; width++ {
		for _, line := range Wrap(text, width) {
			assert.LessOrEqual(t, len([]rune(line)), width, "width %d line %q", width, line)
		}
	}
}
