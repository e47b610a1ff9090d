package viz

import "github.com/charmbracelet/lipgloss"

// Theme colors the stats panel. Entities keep their own fill colors.
type Theme struct {
	Name    string
	Title   lipgloss.Color
	Graph   lipgloss.Color
	Running lipgloss.Color
	Paused  lipgloss.Color
	Muted   lipgloss.Color
}

var Themes = []Theme{
	{
		Name:    "arcade",
		Title:   lipgloss.Color("#ff3b3b"),
		Graph:   lipgloss.Color("#3bff6f"),
		Running: lipgloss.Color("#3bff6f"),
		Paused:  lipgloss.Color("#ffb000"),
		Muted:   lipgloss.Color("#5c5c5c"),
	},
	{
		Name:    "phosphor",
		Title:   lipgloss.Color("#33ff33"),
		Graph:   lipgloss.Color("#22bb22"),
		Running: lipgloss.Color("#99ff99"),
		Paused:  lipgloss.Color("#eeff55"),
		Muted:   lipgloss.Color("#115511"),
	},
	{
		Name:    "blueprint",
		Title:   lipgloss.Color("#e8f1ff"),
		Graph:   lipgloss.Color("#5aa9ff"),
		Running: lipgloss.Color("#7fdcff"),
		Paused:  lipgloss.Color("#ffd166"),
		Muted:   lipgloss.Color("#3c6e9f"),
	},
	{
		Name:    "mono",
		Title:   lipgloss.Color("#ffffff"),
		Graph:   lipgloss.Color("#bbbbbb"),
		Running: lipgloss.Color("#ffffff"),
		Paused:  lipgloss.Color("#999999"),
		Muted:   lipgloss.Color("#666666"),
	},
}

// ThemeIndex returns the position of the named theme, or 0 if unknown.
func ThemeIndex(name string) int {
	for i, t := range Themes {
		if t.Name == name {
			return i
		}
	}
	return 0
}

func ThemeNames() []string {
	names := make([]string, len(Themes))
	for i, t := range Themes {
		names[i] = t.Name
	}
	return names
}
