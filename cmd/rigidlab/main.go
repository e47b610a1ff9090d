package main

import (
	"context"
	"errors"
	"fmt"
	"os"
	"os/signal"

	"github.com/san-kum/rigidlab/internal/config"
	"github.com/san-kum/rigidlab/internal/gui"
	"github.com/san-kum/rigidlab/internal/metrics"
	"github.com/san-kum/rigidlab/internal/scenarios"
	"github.com/san-kum/rigidlab/internal/sweep"
	"github.com/san-kum/rigidlab/internal/viz"
	"github.com/spf13/cobra"
)

var (
	dataDir    string
	configFile string
	preset     string
	angle      float64
	frameRate  int
	showFPS    bool
	frames     int
	every      int
	holds      []string
	presses    []string
	dbPath     string
	entity     string
	axis       string
	statsAxis  string
	svgFrames  int
	scriptFile string
	outPath    string
	theme      string
	param      string
	from       float64
	to         float64
	steps      int
	metric     string
	maximize   bool
	workers    int
)

// main registers the commands and runs the bouncing ball in a window when no
// subcommand is given. It exits with status 1 if the command fails.
func main() {
	rootCmd := &cobra.Command{
		Use:           "rigidlab",
		Short:         "2D rigid-body physics exercises",
		SilenceUsage:  true,
		SilenceErrors: true,
		RunE: func(cmd *cobra.Command, args []string) error {
			return runWindow(cmd, nil)
		},
	}

	rootCmd.PersistentFlags().StringVar(&dataDir, "data", "", "data directory (default from config)")
	rootCmd.PersistentFlags().StringVar(&configFile, "config", "", "config file path (yaml)")
	rootCmd.PersistentFlags().StringVar(&preset, "preset", "", "use preset configuration")
	rootCmd.PersistentFlags().Float64Var(&angle, "angle", 0, "incline or cannon angle in degrees")

	runCmd := &cobra.Command{
		Use:   "run [scenario]",
		Short: "run a scenario in a window",
		Args:  cobra.MaximumNArgs(1),
		RunE:  runWindow,
	}
	runCmd.Flags().IntVar(&frameRate, "fps", config.DefaultFPS, "target frame rate")
	runCmd.Flags().BoolVar(&showFPS, "show-fps", false, "draw the frame rate")

	simCmd := &cobra.Command{
		Use:   "sim [scenario]",
		Short: "run a scenario headless and store its trace",
		Args:  cobra.MaximumNArgs(1),
		RunE:  runHeadless,
	}
	simCmd.Flags().IntVar(&frames, "frames", 0, "frames to simulate (default from config)")
	simCmd.Flags().IntVar(&every, "every", 1, "record every n-th frame")
	simCmd.Flags().StringArrayVar(&holds, "hold", nil, "hold a key, key:from:to")
	simCmd.Flags().StringArrayVar(&presses, "press", nil, "press a key, key:frame")
	simCmd.Flags().StringVar(&scriptFile, "script", "", "yaml input script")
	simCmd.Flags().StringVar(&dbPath, "db", "", "also write the trace to a sqlite database")

	tuiCmd := &cobra.Command{
		Use:   "tui [scenario]",
		Short: "run a scenario in the terminal",
		Args:  cobra.MaximumNArgs(1),
		RunE:  runTerminal,
	}
	tuiCmd.Flags().StringVar(&theme, "theme", "arcade", fmt.Sprintf("color theme %v", viz.ThemeNames()))
	tuiCmd.Flags().IntVar(&frameRate, "fps", 30, "frame rate")

	listCmd := &cobra.Command{
		Use:   "list",
		Short: "list runs",
		RunE:  listRuns,
	}

	scenariosCmd := &cobra.Command{
		Use:   "scenarios",
		Short: "list scenarios",
		Run: func(cmd *cobra.Command, args []string) {
			for _, name := range scenarios.Names() {
				fmt.Printf("  %-10s %s\n", name, scenarios.Title(name))
			}
		},
	}

	presetsCmd := &cobra.Command{
		Use:   "presets [scenario]",
		Short: "list available presets for a scenario",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			presets := config.ListPresets(args[0])
			if len(presets) == 0 {
				fmt.Printf("no presets for scenario: %s\n", args[0])
				return nil
			}
			fmt.Printf("presets for %s:\n", args[0])
			for _, p := range presets {
				fmt.Printf("  %s\n", p)
			}
			return nil
		},
	}

	plotCmd := &cobra.Command{
		Use:   "plot [run_id]",
		Short: "plot an entity's trace",
		Args:  cobra.ExactArgs(1),
		RunE:  plotRun,
	}
	plotCmd.Flags().StringVar(&entity, "entity", "", "entity label (default: first dynamic entity)")
	plotCmd.Flags().StringVar(&axis, "axis", "speed", "x, y, angle, vx, vy or speed")

	analyzeCmd := &cobra.Command{
		Use:   "analyze [run_id]",
		Short: "summary statistics and frequency analysis",
		Args:  cobra.ExactArgs(1),
		RunE:  analyzeRun,
	}
	analyzeCmd.Flags().StringVar(&entity, "entity", "", "entity label (default: first dynamic entity)")
	analyzeCmd.Flags().StringVar(&statsAxis, "axis", "y", "x, y, angle, vx, vy or speed")

	exportJSONCmd := &cobra.Command{
		Use:   "export-json [run_id]",
		Short: "export run data to JSON",
		Args:  cobra.ExactArgs(1),
		RunE:  exportJSON,
	}
	exportJSONCmd.Flags().StringVar(&outPath, "out", "", "output file (default stdout)")

	exportSVGCmd := &cobra.Command{
		Use:   "export-svg [scenario]",
		Short: "render a scenario's frame to SVG",
		Args:  cobra.MaximumNArgs(1),
		RunE:  exportSVG,
	}
	exportSVGCmd.Flags().IntVar(&svgFrames, "frames", 60, "frames to simulate before the snapshot")
	exportSVGCmd.Flags().StringArrayVar(&presses, "press", nil, "press a key, key:frame")
	exportSVGCmd.Flags().StringVar(&scriptFile, "script", "", "yaml input script")
	exportSVGCmd.Flags().StringVar(&outPath, "out", "", "output file (default <scenario>.svg)")

	sweepCmd := &cobra.Command{
		Use:   "sweep [scenario]",
		Short: "run a scenario headless across a parameter range",
		Args:  cobra.MaximumNArgs(1),
		RunE:  runSweep,
	}
	sweepCmd.Flags().StringVar(&param, "param", "", fmt.Sprintf("parameter to vary %v", sweep.Params))
	sweepCmd.Flags().Float64Var(&from, "from", 0, "first value")
	sweepCmd.Flags().Float64Var(&to, "to", 0, "last value")
	sweepCmd.Flags().IntVar(&steps, "steps", 5, "number of values")
	sweepCmd.Flags().StringVar(&metric, "metric", "mean_speed", "metric to rank by")
	sweepCmd.Flags().BoolVar(&maximize, "max", false, "rank by the highest metric")
	sweepCmd.Flags().IntVar(&workers, "workers", 0, "parallel runs (default: cpu count)")
	sweepCmd.Flags().IntVar(&frames, "frames", 0, "frames per run (default from config)")
	sweepCmd.Flags().StringArrayVar(&holds, "hold", nil, "hold a key, key:from:to")
	sweepCmd.Flags().StringArrayVar(&presses, "press", nil, "press a key, key:frame")
	sweepCmd.Flags().StringVar(&scriptFile, "script", "", "yaml input script")
	_ = sweepCmd.MarkFlagRequired("param")

	rootCmd.AddCommand(runCmd, simCmd, tuiCmd, listCmd, scenariosCmd, presetsCmd, plotCmd, analyzeCmd, exportJSONCmd, exportSVGCmd, sweepCmd)

	if err := rootCmd.Execute(); err != nil {
		fmt.Fprintln(os.Stderr, "error:", err)
		os.Exit(1)
	}
}

// resolveConfig layers defaults, a preset, a config file and finally flags.
// A scenario named on the command line wins over the file.
func resolveConfig(cmd *cobra.Command, args []string) (*config.Config, error) {
	cfg := config.DefaultConfig()
	name := cfg.Scenario
	if len(args) > 0 {
		name = args[0]
	}

	if preset != "" {
		p := config.GetPreset(name, preset)
		if p == nil {
			return nil, fmt.Errorf("unknown preset: %s (available: %v)", preset, config.ListPresets(name))
		}
		cfg = p
	}

	if configFile != "" {
		loaded, err := config.Load(configFile)
		if err != nil {
			return nil, fmt.Errorf("failed to load config: %w", err)
		}
		cfg = loaded
	}
	if len(args) > 0 {
		cfg.Scenario = args[0]
	}

	flags := cmd.Flags()
	if flags.Changed("angle") {
		switch cfg.Scenario {
		case "cannon":
			cfg.Params.CannonAngle = angle
		default:
			cfg.Params.InclineAngle = angle
		}
	}
	if f := flags.Lookup("fps"); f != nil && f.Changed {
		cfg.Window.FPS = frameRate
	}
	if flags.Changed("show-fps") {
		cfg.Window.ShowFPS = showFPS
	}
	if flags.Changed("data") {
		cfg.Record.DataDir = dataDir
	}
	if f := flags.Lookup("frames"); f != nil && f.Changed {
		cfg.Record.Frames, _ = flags.GetInt("frames")
	}
	if flags.Changed("db") {
		cfg.Record.DB = dbPath
	}

	if err := cfg.Validate(); err != nil {
		return nil, err
	}
	return cfg, nil
}

func defaultMetrics(cfg *config.Config) metrics.Set {
	target := cfg.Params.TargetSpeed
	if target == 0 {
		target = scenarios.DefaultTargetSpeed
	}
	return metrics.Default(cfg.Scenario, target)
}

func runWindow(cmd *cobra.Command, args []string) error {
	cfg, err := resolveConfig(cmd, args)
	if err != nil {
		return err
	}
	sc, err := scenarios.New(cfg.Scenario, cfg.Params)
	if err != nil {
		return err
	}

	opts := gui.DefaultOptions(cfg.WindowTitle())
	opts.Width, opts.Height = cfg.Window.Width, cfg.Window.Height
	opts.FPS = cfg.Window.FPS
	opts.ShowFPS = cfg.Window.ShowFPS

	ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt)
	defer stop()

	err = gui.Run(ctx, sc, opts, cfg.LoopConfig())
	if errors.Is(err, context.Canceled) {
		return nil
	}
	return err
}

func runTerminal(cmd *cobra.Command, args []string) error {
	cfg, err := resolveConfig(cmd, args)
	if err != nil {
		return err
	}
	sc, err := scenarios.New(cfg.Scenario, cfg.Params)
	if err != nil {
		return err
	}

	opts := viz.DefaultOptions(cfg.WindowTitle())
	opts.FPS = frameRate
	opts.Theme = theme
	return viz.Run(sc, cfg.LoopConfig(), opts, defaultMetrics(cfg))
}
