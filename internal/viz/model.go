package viz

import (
	"fmt"
	"strings"
	"time"

	tea "github.com/charmbracelet/bubbletea"
	"github.com/charmbracelet/lipgloss"
	"github.com/guptarohit/asciigraph"
	"github.com/san-kum/rigidlab/internal/loop"
	"github.com/san-kum/rigidlab/internal/metrics"
	"github.com/san-kum/rigidlab/internal/render"
	"github.com/san-kum/rigidlab/internal/scene"
	"github.com/san-kum/rigidlab/internal/view"
)

const (
	width           = 100
	height          = 30
	historyCapacity = 300
)

type TickMsg time.Time

// Options size the terminal canvas and the world rectangle it shows.
type Options struct {
	Cols, Rows int
	View       view.View
	FPS        int
	Title      string
	Theme      string
}

func DefaultOptions(title string) Options {
	return Options{Cols: width, Rows: height, View: view.Fixed(800, 600), FPS: 60, Title: title}
}

// history keeps the last frames' mean speed for the graph. It is shared by
// pointer so the value-receiver Model sees observer updates.
type history struct {
	speeds []float64
	time   float64
	frame  int
}

func (h *history) OnFrame(f loop.Frame) {
	var sum float64
	var n int
	for _, e := range f.Entities {
		if e.Body.Mass() > 0 {
			sum += e.Body.Speed()
			n++
		}
	}
	mean := 0.0
	if n > 0 {
		mean = sum / float64(n)
	}
	h.speeds = append(h.speeds, mean)
	if len(h.speeds) > historyCapacity {
		h.speeds = h.speeds[len(h.speeds)-historyCapacity:]
	}
	h.time = f.Time
	h.frame = f.Index
}

// angled is implemented by scenarios with an aimable barrel.
type angled interface {
	Angle() float64
}

// Model drives a loop.Driver from bubbletea ticks and shows it on a braille
// canvas next to a stats panel.
type Model struct {
	driver  *loop.Driver
	screen  *Screen
	opts    Options
	metrics metrics.Set
	hist    *history
	paused  bool
	theme   int
}

// New builds the screen and driver for sc. The caller must Close the model.
func New(sc loop.Scenario, cfg loop.Config, opts Options, set metrics.Set) (Model, error) {
	if opts.Cols <= 0 || opts.Rows <= 0 {
		opts.Cols, opts.Rows = width, height
	}
	if opts.View == (view.View{}) {
		opts.View = view.Fixed(800, 600)
	}
	if opts.FPS <= 0 {
		opts.FPS = 60
	}

	screen := NewScreen(opts.Cols, opts.Rows, opts.View)
	d, err := loop.New(screen, sc, cfg)
	if err != nil {
		return Model{}, err
	}

	hist := &history{}
	d.AddObserver(hist)
	if len(set) > 0 {
		d.AddObserver(set)
	}
	return Model{driver: d, screen: screen, opts: opts, metrics: set, hist: hist, theme: ThemeIndex(opts.Theme)}, nil
}

func (m Model) Driver() *loop.Driver { return m.driver }

func (m Model) Screen() *Screen { return m.screen }

func (m Model) Close() error { return m.driver.Close() }

func (m Model) tick() tea.Cmd {
	return tea.Tick(time.Second/time.Duration(m.opts.FPS), func(t time.Time) tea.Msg { return TickMsg(t) })
}

func (m Model) Init() tea.Cmd {
	return m.tick()
}

var keyMap = map[string]render.Key{
	"left":  render.KeyLeft,
	"right": render.KeyRight,
	"up":    render.KeyUp,
	"down":  render.KeyDown,
	" ":     render.KeySpace,
}

func (m Model) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	switch msg := msg.(type) {
	case tea.KeyMsg:
		switch msg.String() {
		case "q", "ctrl+c", "esc":
			m.screen.RequestClose()
			m.driver.Step()
			return m, tea.Quit
		case "p":
			m.paused = !m.paused
		case "t":
			m.theme = (m.theme + 1) % len(Themes)
		default:
			if k, ok := keyMap[msg.String()]; ok {
				m.screen.Press(k)
			}
		}
	case TickMsg:
		if !m.paused {
			if m.driver.Step() == loop.Closed {
				return m, tea.Quit
			}
		}
		return m, m.tick()
	}
	return m, nil
}

func (m Model) View() string {
	theme := Themes[m.theme]
	header := lipgloss.NewStyle().Foreground(theme.Title).Bold(true).MarginBottom(1)

	var s strings.Builder
	s.WriteString(header.Render(strings.ToUpper(m.opts.Title)) + "\n")

	status := lipgloss.NewStyle().Bold(true).Foreground(theme.Running).Render("RUNNING")
	if m.paused {
		status = lipgloss.NewStyle().Bold(true).Foreground(theme.Paused).Render("PAUSED")
	}
	s.WriteString(status + "\n\n")

	if len(m.hist.speeds) > 1 {
		chart := asciigraph.Plot(m.hist.speeds, asciigraph.Height(4), asciigraph.Width(30), asciigraph.Caption("mean speed (m/s)"))
		s.WriteString(lipgloss.NewStyle().Foreground(theme.Graph).Padding(1, 0).Render(chart) + "\n\n")
	}

	row := func(label, value string) {
		s.WriteString(labelStyle.Render(label) + valueStyle.Render(value) + "\n")
	}
	row("Frame", fmt.Sprintf("%d", m.hist.frame))
	row("Time", fmt.Sprintf("%.2fs", m.hist.time))
	row("Entities", fmt.Sprintf("%d", len(m.driver.Scenario().Entities())))
	if a, ok := m.driver.Scenario().(angled); ok {
		row("Angle", fmt.Sprintf("%.0f°", a.Angle()))
	}

	s.WriteString("\n" + legend(m.driver.Scenario().Entities()) + "\n")

	if len(m.metrics) > 0 {
		s.WriteString("\n" + separator(30, theme.Muted) + "\n")
		values := m.metrics.Values()
		for _, name := range m.metrics.Names() {
			row(name, fmt.Sprintf("%.3f", values[name]))
		}
	}

	s.WriteString(helpStyle.Foreground(theme.Muted).Render("\n←→↑↓ Space: scenario keys\nP:Pause T:Theme Q:Quit"))

	canvasView := canvasStyle.Render(m.screen.String())
	return lipgloss.JoinHorizontal(lipgloss.Top, canvasView, statsStyle.Render(s.String()))
}

// legend lists each entity label once, in its fill color.
func legend(entities []*scene.Entity) string {
	seen := make(map[string]bool)
	var parts []string
	for _, e := range entities {
		if seen[e.Label] {
			continue
		}
		seen[e.Label] = true
		parts = append(parts, FillStyle(e.Fill).Render("■ "+e.Label))
	}
	return strings.Join(parts, "  ")
}

// Run shows sc in the terminal until the user quits or the scenario closes.
func Run(sc loop.Scenario, cfg loop.Config, opts Options, set metrics.Set) error {
	m, err := New(sc, cfg, opts, set)
	if err != nil {
		return err
	}
	defer m.Close()

	_, err = tea.NewProgram(m, tea.WithAltScreen()).Run()
	return err
}
