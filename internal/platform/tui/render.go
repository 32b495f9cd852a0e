package tui

import (
	"strings"

	"github.com/charmbracelet/lipgloss"

	"github.com/vovakirdan/pinyin-match/internal/core"
)

// ansiCodes holds the terminal color for each core.Color. An empty code
// leaves the terminal's default foreground.
var ansiCodes = [...]string{
	core.ColorDefault:       "",
	core.ColorRed:           "1",
	core.ColorGreen:         "2",
	core.ColorYellow:        "3",
	core.ColorBlue:          "4",
	core.ColorMagenta:       "5",
	core.ColorCyan:          "6",
	core.ColorWhite:         "7",
	core.ColorBrightRed:     "9",
	core.ColorBrightGreen:   "10",
	core.ColorBrightYellow:  "11",
	core.ColorBrightBlue:    "12",
	core.ColorBrightMagenta: "13",
	core.ColorBrightCyan:    "14",
	core.ColorBrightWhite:   "15",
	core.ColorOrange:        "208",
	core.ColorGray:          "245",
}

var tileStyles = buildStyles()

func buildStyles() []lipgloss.Style {
	out := make([]lipgloss.Style, len(ansiCodes))
	for i, code := range ansiCodes {
		out[i] = lipgloss.NewStyle()
		if code != "" {
			out[i] = out[i].Foreground(lipgloss.Color(code))
		}
	}
	return out
}

// styleFor returns the style for c, falling back to the default style for
// colors outside the table.
func styleFor(c core.Color) lipgloss.Style {
	if int(c) < 0 || int(c) >= len(tileStyles) {
		return tileStyles[core.ColorDefault]
	}
	return tileStyles[c]
}

// span is a stretch of one row drawn in a single color.
type span struct {
	color core.Color
	text  string
}

// rowSpans splits row y into same-color spans. The right half of a wide
// character is dropped since the terminal draws the character across both
// columns.
func rowSpans(s *core.Screen, y int) []span {
	var (
		spans []span
		buf   strings.Builder
		cur   core.Color
	)
	for x := range s.Width() {
		cell := s.GetCell(x, y)
		if x > 0 && cell.Color != cur {
			spans = append(spans, span{color: cur, text: buf.String()})
			buf.Reset()
		}
		cur = cell.Color
		if !s.IsContinuation(x, y) {
			buf.WriteRune(cell.Rune)
		}
	}
	if s.Width() > 0 {
		spans = append(spans, span{color: cur, text: buf.String()})
	}
	return spans
}

// RenderScreen converts a Screen buffer to a styled string, one escape
// sequence per color change.
func RenderScreen(s *core.Screen) string {
	var sb strings.Builder
	sb.Grow(s.Width()*s.Height()*2 + s.Height())

	for y := range s.Height() {
		if y > 0 {
			sb.WriteByte('\n')
		}
		for _, sp := range rowSpans(s, y) {
			sb.WriteString(styleFor(sp.color).Render(sp.text))
		}
	}
	return sb.String()
}
