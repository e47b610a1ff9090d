package main

import (
	"context"
	"fmt"
	"os"
	"text/tabwriter"
	"time"

	"github.com/san-kum/rigidlab/internal/config"
	"github.com/san-kum/rigidlab/internal/export"
	"github.com/san-kum/rigidlab/internal/headless"
	"github.com/san-kum/rigidlab/internal/scenarios"
	"github.com/san-kum/rigidlab/internal/storage"
	"github.com/san-kum/rigidlab/internal/sweep"
	"github.com/spf13/cobra"
)

// buildScript combines --script with --press and --hold. The file's frame
// count replaces maxFrames unless --frames was given.
func buildScript(cmd *cobra.Command, maxFrames int) (headless.Script, []string, error) {
	script := headless.Script{MaxFrames: maxFrames}
	var raw []string
	if scriptFile != "" {
		f, err := headless.LoadScript(scriptFile)
		if err != nil {
			return script, nil, err
		}
		script, err = f.Script()
		if err != nil {
			return script, nil, err
		}
		if script.MaxFrames <= 0 || cmd.Flags().Changed("frames") {
			script.MaxFrames = maxFrames
		}
		raw = append(raw, "file "+scriptFile)
	}
	for _, p := range presses {
		k, frame, err := headless.ParsePress(p)
		if err != nil {
			return script, nil, err
		}
		script.Press(frame, k)
		raw = append(raw, "press "+p)
	}
	for _, h := range holds {
		hold, err := headless.ParseHold(h)
		if err != nil {
			return script, nil, err
		}
		script.Hold(hold.Key, hold.From, hold.To)
		raw = append(raw, "hold "+h)
	}
	return script, raw, nil
}

func runHeadless(cmd *cobra.Command, args []string) error {
	cfg, err := resolveConfig(cmd, args)
	if err != nil {
		return err
	}
	if cfg.Record.Frames <= 0 {
		return fmt.Errorf("%w: frames %d", config.ErrInvalidConfig, cfg.Record.Frames)
	}

	sc, err := scenarios.New(cfg.Scenario, cfg.Params)
	if err != nil {
		return err
	}
	script, raw, err := buildScript(cmd, cfg.Record.Frames)
	if err != nil {
		return err
	}

	st := storage.New(cfg.Record.DataDir)
	if err := st.Init(); err != nil {
		return err
	}

	var sinks []storage.Sink
	if cfg.Record.DB != "" {
		db, err := storage.CreateTraceDB(cfg.Record.DB)
		if err != nil {
			return err
		}
		defer db.Close()
		sinks = append(sinks, db)
	}

	rec := storage.NewRecorder(every, sinks...)
	set := defaultMetrics(cfg)

	fmt.Printf("running %s for %d frames...\n", cfg.Scenario, script.MaxFrames)
	start := time.Now()

	win, err := headless.Run(context.Background(), sc, script, cfg.LoopConfig(), rec, set)
	if err != nil {
		return err
	}
	if err := rec.Err(); err != nil {
		return fmt.Errorf("trace database: %w", err)
	}
	elapsed := time.Since(start)

	runID, err := st.Save(storage.RunMetadata{
		Scenario: cfg.Scenario,
		Frames:   win.Presented(),
		Timestep: cfg.Physics.Timestep,
		Params:   cfg.Params,
		Script:   raw,
		Metrics:  set.Values(),
	}, rec.Samples())
	if err != nil {
		return err
	}

	fmt.Printf("completed in %v\n", elapsed)
	fmt.Printf("run id: %s\n", runID)
	fmt.Printf("frames: %d\n", win.Presented())
	if cfg.Record.DB != "" {
		fmt.Printf("trace db: %s\n", cfg.Record.DB)
	}
	fmt.Println("\nmetrics:")
	values := set.Values()
	for _, name := range set.Names() {
		fmt.Printf("  %s: %.6f\n", name, values[name])
	}
	return nil
}

func exportSVG(cmd *cobra.Command, args []string) error {
	cfg, err := resolveConfig(cmd, args)
	if err != nil {
		return err
	}
	if svgFrames <= 0 {
		return fmt.Errorf("%w: frames %d", config.ErrInvalidConfig, svgFrames)
	}

	sc, err := scenarios.New(cfg.Scenario, cfg.Params)
	if err != nil {
		return err
	}
	script, _, err := buildScript(cmd, svgFrames)
	if err != nil {
		return err
	}

	win, err := headless.Run(context.Background(), sc, script, cfg.LoopConfig())
	if err != nil {
		return err
	}

	path := outPath
	if path == "" {
		path = cfg.Scenario + ".svg"
	}
	svg := export.FrameToSVG(win.LastFrame(), float64(cfg.Window.Width), float64(cfg.Window.Height), win.Background())
	if err := os.WriteFile(path, []byte(svg), 0644); err != nil {
		return err
	}

	fmt.Printf("exported frame %d to %s\n", win.Presented(), path)
	return nil
}

func runSweep(cmd *cobra.Command, args []string) error {
	cfg, err := resolveConfig(cmd, args)
	if err != nil {
		return err
	}
	script, _, err := buildScript(cmd, cfg.Record.Frames)
	if err != nil {
		return err
	}

	s := &sweep.Sweep{
		Scenario: cfg.Scenario,
		Param:    param,
		Values:   sweep.Linspace(from, to, steps),
		Base:     cfg.Params,
		Script:   script,
		Config:   cfg.LoopConfig(),
		Workers:  workers,
	}

	fmt.Printf("sweeping %s %s over %d values...\n", cfg.Scenario, param, len(s.Values))
	start := time.Now()
	points, err := s.Run(context.Background())
	if err != nil {
		return err
	}
	fmt.Printf("completed in %v\n\n", time.Since(start))

	w := tabwriter.NewWriter(os.Stdout, 0, 0, 2, ' ', 0)
	fmt.Fprintf(w, "%s\t%s\n", param, metric)
	for _, pt := range points {
		if pt.Err != nil {
			fmt.Fprintf(w, "%.3f\terror: %v\n", pt.Value, pt.Err)
			continue
		}
		fmt.Fprintf(w, "%.3f\t%.6f\n", pt.Value, pt.Metrics[metric])
	}
	if err := w.Flush(); err != nil {
		return err
	}

	best, ok := sweep.Best(points, metric, maximize)
	if !ok {
		return fmt.Errorf("no run reported %s", metric)
	}
	fmt.Printf("\nbest: %s=%.3f (%s %.6f)\n", param, best.Value, metric, best.Metrics[metric])
	return nil
}
