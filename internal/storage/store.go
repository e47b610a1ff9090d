// Package storage persists recorded runs: a directory per run holding JSON
// metadata and a CSV trace, plus an optional SQLite trace database.
package storage

import (
	"encoding/csv"
	"encoding/json"
	"errors"
	"fmt"
	"os"
	"path/filepath"
	"sort"
	"strconv"
	"time"

	"github.com/san-kum/rigidlab/internal/scenarios"
)

var ErrRunNotFound = errors.New("run not found")

var traceHeader = []string{"frame", "time", "entity", "label", "kind", "x", "y", "angle", "vx", "vy"}

type Store struct {
	baseDir string
}

func New(baseDir string) *Store {
	return &Store{baseDir: baseDir}
}

func (s *Store) Init() error {
	return os.MkdirAll(s.baseDir, 0755)
}

type RunMetadata struct {
	ID        string             `json:"id"`
	Scenario  string             `json:"scenario"`
	Timestamp time.Time          `json:"timestamp"`
	Frames    int                `json:"frames"`
	Timestep  float64            `json:"timestep"`
	Params    scenarios.Params   `json:"params"`
	Script    []string           `json:"script,omitempty"`
	Metrics   map[string]float64 `json:"metrics"`
}

// Save writes meta and the trace to a new run directory and returns its ID.
// meta.ID and meta.Timestamp are filled in.
func (s *Store) Save(meta RunMetadata, samples []Sample) (string, error) {
	now := time.Now()
	runID := fmt.Sprintf("%s_%d", meta.Scenario, now.UnixMilli())
	runDir := filepath.Join(s.baseDir, runID)

	if err := os.MkdirAll(runDir, 0755); err != nil {
		return "", err
	}

	meta.ID = runID
	meta.Timestamp = now

	metaFile, err := os.Create(filepath.Join(runDir, "metadata.json"))
	if err != nil {
		return "", err
	}
	defer metaFile.Close()

	enc := json.NewEncoder(metaFile)
	enc.SetIndent("", "  ")
	if err := enc.Encode(meta); err != nil {
		return "", err
	}

	csvFile, err := os.Create(filepath.Join(runDir, "trace.csv"))
	if err != nil {
		return "", err
	}
	defer csvFile.Close()

	w := csv.NewWriter(csvFile)
	if err := w.Write(traceHeader); err != nil {
		return "", err
	}
	for _, smp := range samples {
		if err := w.Write(sampleRow(smp)); err != nil {
			return "", err
		}
	}
	w.Flush()
	if err := w.Error(); err != nil {
		return "", err
	}

	return runID, nil
}

func sampleRow(s Sample) []string {
	f := func(v float64) string { return strconv.FormatFloat(v, 'f', 6, 64) }
	return []string{
		strconv.Itoa(s.Frame),
		f(s.Time),
		strconv.Itoa(s.Entity),
		s.Label,
		s.Kind,
		f(s.X), f(s.Y), f(s.Angle), f(s.VX), f(s.VY),
	}
}

// List returns stored runs, oldest first.
func (s *Store) List() ([]RunMetadata, error) {
	entries, err := os.ReadDir(s.baseDir)
	if err != nil {
		if os.IsNotExist(err) {
			return []RunMetadata{}, nil
		}
		return nil, err
	}

	runs := make([]RunMetadata, 0)
	for _, entry := range entries {
		if !entry.IsDir() {
			continue
		}
		meta, err := s.Load(entry.Name())
		if err != nil {
			continue
		}
		runs = append(runs, *meta)
	}

	sort.Slice(runs, func(i, j int) bool {
		return runs[i].Timestamp.Before(runs[j].Timestamp)
	})
	return runs, nil
}

func (s *Store) Load(runID string) (*RunMetadata, error) {
	data, err := os.ReadFile(filepath.Join(s.baseDir, runID, "metadata.json"))
	if err != nil {
		if os.IsNotExist(err) {
			return nil, fmt.Errorf("%w: %s", ErrRunNotFound, runID)
		}
		return nil, err
	}

	var meta RunMetadata
	if err := json.Unmarshal(data, &meta); err != nil {
		return nil, err
	}
	return &meta, nil
}

// LoadTrace reads the CSV trace of a run. Malformed rows are skipped.
func (s *Store) LoadTrace(runID string) ([]Sample, error) {
	file, err := os.Open(filepath.Join(s.baseDir, runID, "trace.csv"))
	if err != nil {
		if os.IsNotExist(err) {
			return nil, fmt.Errorf("%w: %s", ErrRunNotFound, runID)
		}
		return nil, err
	}
	defer file.Close()

	r := csv.NewReader(file)
	r.FieldsPerRecord = -1

	records, err := r.ReadAll()
	if err != nil {
		return nil, err
	}
	if len(records) < 2 {
		return []Sample{}, nil
	}

	samples := make([]Sample, 0, len(records)-1)
	for _, record := range records[1:] {
		smp, ok := parseRow(record)
		if !ok {
			continue
		}
		samples = append(samples, smp)
	}
	return samples, nil
}

func parseRow(record []string) (Sample, bool) {
	if len(record) != len(traceHeader) {
		return Sample{}, false
	}
	frame, err1 := strconv.Atoi(record[0])
	entity, err2 := strconv.Atoi(record[2])
	if err1 != nil || err2 != nil {
		return Sample{}, false
	}

	var vals [6]float64
	for i, idx := range []int{1, 5, 6, 7, 8, 9} {
		v, err := strconv.ParseFloat(record[idx], 64)
		if err != nil {
			return Sample{}, false
		}
		vals[i] = v
	}
	return Sample{
		Frame:  frame,
		Time:   vals[0],
		Entity: entity,
		Label:  record[3],
		Kind:   record[4],
		X:      vals[1],
		Y:      vals[2],
		Angle:  vals[3],
		VX:     vals[4],
		VY:     vals[5],
	}, true
}
