package glyph

import "strings"

// Wrap splits text into lines of at most maxWidth runes.
func Wrap(text string, maxWidth int) []string {
	return WrapFunc(text, maxWidth, func(rune) int { return 1 })
}

// WrapFunc splits text into lines whose summed rune widths stay within
// maxWidth. Explicit newlines always break. Words are kept whole unless a
// single word is wider than maxWidth, in which case it is split.
// A non-positive maxWidth returns the paragraphs unwrapped.
func WrapFunc(text string, maxWidth int, width func(rune) int) []string {
	paragraphs := strings.Split(text, "\n")
	if maxWidth <= 0 {
		return paragraphs
	}

	measure := func(s string) int {
		w := 0
		for _, r := range s {
			w += width(r)
		}
		return w
	}
	spaceW := width(' ')

	var lines []string
	for _, para := range paragraphs {
		var line strings.Builder
		lineW := 0

		flush := func() {
			lines = append(lines, line.String())
			line.Reset()
			lineW = 0
		}

		words := strings.Fields(para)
		if len(words) == 0 {
			lines = append(lines, "")
			continue
		}

		for _, word := range words {
			wordW := measure(word)

			if lineW > 0 && lineW+spaceW+wordW > maxWidth {
				flush()
			}

			if wordW > maxWidth {
				// Hard-break an oversize word across lines.
				for _, r := range word {
					rw := width(r)
					if lineW > 0 && lineW+rw > maxWidth {
						flush()
					}
					line.WriteRune(r)
					lineW += rw
				}
				continue
			}

			if lineW > 0 {
				line.WriteRune(' ')
				lineW += spaceW
			}
			line.WriteString(word)
			lineW += wordW
		}
		flush()
	}
	return lines
}
