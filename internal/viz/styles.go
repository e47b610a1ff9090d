package viz

import (
	"fmt"
	"strings"

	"github.com/charmbracelet/lipgloss"
	"github.com/san-kum/rigidlab/internal/render"
)

var (
	canvasStyle = lipgloss.NewStyle().Padding(1, 2)
	statsStyle  = lipgloss.NewStyle().Border(lipgloss.NormalBorder(), false, false, false, true).BorderForeground(lipgloss.Color("240")).Padding(1, 2).Width(40)
	labelStyle  = lipgloss.NewStyle().Foreground(lipgloss.Color("245")).Width(16)
	valueStyle  = lipgloss.NewStyle().Foreground(lipgloss.Color("252"))
	helpStyle   = lipgloss.NewStyle().MarginTop(2)
)

// separator is a muted rule with a marker in the middle.
func separator(width int, c lipgloss.Color) string {
	side := max(width/2-2, 1)
	return lipgloss.NewStyle().Foreground(c).Render(strings.Repeat("─", side) + " ▪ " + strings.Repeat("─", side))
}

// FillStyle colors text with an entity's fill.
func FillStyle(c render.Color) lipgloss.Style {
	return lipgloss.NewStyle().Foreground(lipgloss.Color(fmt.Sprintf("#%02x%02x%02x", c.R, c.G, c.B)))
}
