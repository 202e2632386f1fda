package tui

import (
	"strings"

	"github.com/charmbracelet/lipgloss"

	"github.com/vovakirdan/tui-blocks/internal/core"
)

// styleKey identifies a cell color combination.
type styleKey struct {
	fg, bg core.RGBA
}

// ScreenRenderer converts Screen buffers to styled strings, caching one
// lipgloss style per color combination.
type ScreenRenderer struct {
	renderer *lipgloss.Renderer
	styles   map[styleKey]lipgloss.Style
}

// NewScreenRenderer creates a renderer. A nil lipgloss renderer uses the
// default one bound to stdout.
func NewScreenRenderer(r *lipgloss.Renderer) *ScreenRenderer {
	if r == nil {
		r = lipgloss.DefaultRenderer()
	}
	return &ScreenRenderer{
		renderer: r,
		styles:   make(map[styleKey]lipgloss.Style),
	}
}

func (sr *ScreenRenderer) style(k styleKey) lipgloss.Style {
	if st, ok := sr.styles[k]; ok {
		return st
	}
	st := sr.renderer.NewStyle()
	if !k.fg.IsZero() {
		st = st.Foreground(lipgloss.Color(k.fg.Hex()))
	}
	if !k.bg.IsZero() {
		st = st.Background(lipgloss.Color(k.bg.Hex()))
	}
	sr.styles[k] = st
	return st
}

// Render converts a Screen buffer to a styled string for display.
// Groups adjacent cells with the same colors to minimize ANSI escape sequences.
func (sr *ScreenRenderer) Render(s *core.Screen) string {
	var sb strings.Builder
	// Pre-allocate with extra space for ANSI codes
	sb.Grow(s.Width()*s.Height()*2 + s.Height())

	var run strings.Builder
	for y := range s.Height() {
		if y > 0 {
			sb.WriteRune('\n')
		}

		x := 0
		for x < s.Width() {
			cell := s.GetCell(x, y)
			k := styleKey{fg: cell.FG, bg: cell.BG}

			run.Reset()
			for x < s.Width() {
				cell = s.GetCell(x, y)
				if cell.FG != k.fg || cell.BG != k.bg {
					break
				}
				run.WriteRune(cell.Rune)
				x++
			}

			sb.WriteString(sr.style(k).Render(run.String()))
		}
	}
	return sb.String()
}
