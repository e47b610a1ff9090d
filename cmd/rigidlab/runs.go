package main

import (
	"fmt"
	"os"
	"text/tabwriter"

	"github.com/guptarohit/asciigraph"
	"github.com/san-kum/rigidlab/internal/analysis"
	"github.com/san-kum/rigidlab/internal/config"
	"github.com/san-kum/rigidlab/internal/storage"
	"github.com/spf13/cobra"
)

// openStore uses --data, then the config file's data dir, then the default.
func openStore() (*storage.Store, error) {
	dir := config.DefaultConfig().Record.DataDir
	if configFile != "" {
		cfg, err := config.Load(configFile)
		if err != nil {
			return nil, fmt.Errorf("failed to load config: %w", err)
		}
		dir = cfg.Record.DataDir
	}
	if dataDir != "" {
		dir = dataDir
	}
	return storage.New(dir), nil
}

// selectEntity picks the labelled entity, or the first dynamic one.
func selectEntity(samples []storage.Sample) (int, error) {
	if entity != "" {
		idx := analysis.FindEntity(samples, entity)
		if idx < 0 {
			return 0, fmt.Errorf("no entity labelled %q", entity)
		}
		return idx, nil
	}
	for _, s := range samples {
		if s.Kind == "dynamic" {
			return s.Entity, nil
		}
	}
	return 0, fmt.Errorf("no dynamic entity in trace")
}

func loadRun(runID string) (*storage.RunMetadata, []storage.Sample, error) {
	st, err := openStore()
	if err != nil {
		return nil, nil, err
	}
	meta, err := st.Load(runID)
	if err != nil {
		return nil, nil, err
	}
	samples, err := st.LoadTrace(runID)
	if err != nil {
		return nil, nil, err
	}
	if len(samples) == 0 {
		return nil, nil, fmt.Errorf("no data in run %s", runID)
	}
	return meta, samples, nil
}

func listRuns(cmd *cobra.Command, args []string) error {
	st, err := openStore()
	if err != nil {
		return err
	}
	runs, err := st.List()
	if err != nil {
		return err
	}

	if len(runs) == 0 {
		fmt.Println("no runs found")
		return nil
	}

	w := tabwriter.NewWriter(os.Stdout, 0, 0, 2, ' ', 0)
	fmt.Fprintln(w, "ID\tSCENARIO\tTIME\tFRAMES\tDT\tSCRIPT")

	for _, run := range runs {
		fmt.Fprintf(w, "%s\t%s\t%s\t%d\t%.4fs\t%d\n",
			run.ID,
			run.Scenario,
			run.Timestamp.Format("2006-01-02 15:04:05"),
			run.Frames,
			run.Timestep,
			len(run.Script),
		)
	}

	return w.Flush()
}

func plotRun(cmd *cobra.Command, args []string) error {
	meta, samples, err := loadRun(args[0])
	if err != nil {
		return err
	}
	ax, err := analysis.ParseAxis(axis)
	if err != nil {
		return err
	}
	idx, err := selectEntity(samples)
	if err != nil {
		return err
	}
	data, _, err := analysis.Extract(samples, idx, ax)
	if err != nil {
		return err
	}

	fmt.Printf("run: %s\n", meta.ID)
	fmt.Printf("scenario: %s\n", meta.Scenario)
	fmt.Printf("samples: %d\n\n", len(data))

	graph := asciigraph.Plot(data,
		asciigraph.Height(15),
		asciigraph.Width(80),
		asciigraph.Caption(fmt.Sprintf("entity %d %s vs frame", idx, ax)),
	)
	fmt.Println(graph)
	return nil
}

func analyzeRun(cmd *cobra.Command, args []string) error {
	meta, samples, err := loadRun(args[0])
	if err != nil {
		return err
	}
	ax, err := analysis.ParseAxis(statsAxis)
	if err != nil {
		return err
	}
	idx, err := selectEntity(samples)
	if err != nil {
		return err
	}
	data, times, err := analysis.Extract(samples, idx, ax)
	if err != nil {
		return err
	}

	fmt.Printf("analysis: %s\n", meta.ID)
	fmt.Printf("scenario: %s, entity %d, axis %s\n\n", meta.Scenario, idx, ax)

	s := analysis.Summarize(data)
	fmt.Printf("samples: %d\n", s.Count)
	fmt.Printf("min: %.4f  max: %.4f\n", s.Min, s.Max)
	fmt.Printf("mean: %.4f  stddev: %.4f\n", s.Mean, s.StdDev)
	fmt.Printf("final: %.4f\n", s.Final)
	fmt.Printf("mean crossings: %d\n", analysis.Crossings(centered(data, s.Mean)))

	if len(times) > 1 {
		dt := times[1] - times[0]
		freq, power := analysis.DominantFrequency(data, dt)
		fmt.Printf("dominant frequency: %.3f hz (power %.3f)\n", freq, power)
		if freq > 0 {
			fmt.Printf("period: %.3f s\n", 1.0/freq)
		}
	}

	fmt.Println()
	fmt.Println(analysis.PathToASCII(analysis.Path(samples, idx), 60, 20))
	return nil
}

func centered(data []float64, mean float64) []float64 {
	out := make([]float64, len(data))
	for i, v := range data {
		out[i] = v - mean
	}
	return out
}

func exportJSON(cmd *cobra.Command, args []string) error {
	meta, samples, err := loadRun(args[0])
	if err != nil {
		return err
	}

	if outPath == "" {
		return storage.WriteJSON(os.Stdout, *meta, samples)
	}
	if err := storage.ExportJSON(outPath, *meta, samples); err != nil {
		return err
	}
	fmt.Printf("exported %d samples to %s\n", len(samples), outPath)
	return nil
}
