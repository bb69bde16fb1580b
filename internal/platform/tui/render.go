package tui

import (
	"strings"

	"github.com/charmbracelet/lipgloss"

	"github.com/vovakirdan/tui-lines/internal/core"
)

// colorStyles maps core.Color to lipgloss styles.
var colorStyles = map[core.Color]lipgloss.Style{
	core.ColorDefault:       lipgloss.NewStyle(),
	core.ColorRed:           lipgloss.NewStyle().Foreground(lipgloss.Color("1")),
	core.ColorGreen:         lipgloss.NewStyle().Foreground(lipgloss.Color("2")),
	core.ColorYellow:        lipgloss.NewStyle().Foreground(lipgloss.Color("3")),
	core.ColorBlue:          lipgloss.NewStyle().Foreground(lipgloss.Color("4")),
	core.ColorMagenta:       lipgloss.NewStyle().Foreground(lipgloss.Color("5")),
	core.ColorWhite:         lipgloss.NewStyle().Foreground(lipgloss.Color("7")),
	core.ColorBrightRed:     lipgloss.NewStyle().Foreground(lipgloss.Color("9")).Bold(true),
	core.ColorBrightGreen:   lipgloss.NewStyle().Foreground(lipgloss.Color("10")).Bold(true),
	core.ColorBrightYellow:  lipgloss.NewStyle().Foreground(lipgloss.Color("11")).Bold(true),
	core.ColorBrightBlue:    lipgloss.NewStyle().Foreground(lipgloss.Color("12")).Bold(true),
	core.ColorBrightMagenta: lipgloss.NewStyle().Foreground(lipgloss.Color("13")).Bold(true),
	core.ColorBrightWhite:   lipgloss.NewStyle().Foreground(lipgloss.Color("15")).Bold(true),
	core.ColorGray:          lipgloss.NewStyle().Foreground(lipgloss.Color("245")),
}

// RenderScreen converts a Screen buffer to a styled string for display.
// Adjacent cells of one color share a single styled run.
func RenderScreen(s *core.Screen) string {
	var sb strings.Builder
	sb.Grow(s.Width()*s.Height()*2 + s.Height())

	var run strings.Builder
	for y := range s.Height() {
		if y > 0 {
			sb.WriteRune('\n')
		}
		x := 0
		for x < s.Width() {
			color := s.GetCell(x, y).Color
			run.Reset()
			for ; x < s.Width(); x++ {
				cell := s.GetCell(x, y)
				if cell.Color != color {
					break
				}
				run.WriteRune(cell.Rune)
			}

			style, ok := colorStyles[color]
			if !ok {
				style = colorStyles[core.ColorDefault]
			}
			sb.WriteString(style.Render(run.String()))
		}
	}
	return sb.String()
}
