package tui

import (
	"strings"

	"github.com/charmbracelet/lipgloss"

	"github.com/vovakirdan/brickball/internal/core"
)

type cellColors struct {
	fg, bg core.Color
}

// ScreenRenderer converts a Screen buffer to styled terminal output.
// Styles are cached per foreground/background pair.
type ScreenRenderer struct {
	r      *lipgloss.Renderer
	styles map[cellColors]lipgloss.Style
}

// NewScreenRenderer creates a renderer. A nil r uses lipgloss's default
// renderer for standard output.
func NewScreenRenderer(r *lipgloss.Renderer) *ScreenRenderer {
	if r == nil {
		r = lipgloss.DefaultRenderer()
	}
	return &ScreenRenderer{r: r, styles: make(map[cellColors]lipgloss.Style)}
}

func (sr *ScreenRenderer) style(c cellColors) lipgloss.Style {
	if st, ok := sr.styles[c]; ok {
		return st
	}
	st := sr.r.NewStyle()
	if !c.fg.IsNone() {
		st = st.Foreground(lipgloss.Color(c.fg.Hex()))
	}
	if !c.bg.IsNone() {
		st = st.Background(lipgloss.Color(c.bg.Hex()))
	}
	sr.styles[c] = st
	return st
}

// Render converts s to a string for display.
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
			start := cellColors{cell.FG, cell.BG}

			run.Reset()
			for x < s.Width() {
				cell = s.GetCell(x, y)
				if (cellColors{cell.FG, cell.BG}) != start {
					break
				}
				run.WriteRune(cell.Rune)
				x++
			}
			sb.WriteString(sr.style(start).Render(run.String()))
		}
	}
	return sb.String()
}
