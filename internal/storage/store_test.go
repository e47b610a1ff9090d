package storage

import (
	"bytes"
	"context"
	"encoding/json"
	"errors"
	"math"
	"path/filepath"
	"testing"

	"github.com/san-kum/rigidlab/internal/headless"
	"github.com/san-kum/rigidlab/internal/loop"
	"github.com/san-kum/rigidlab/internal/scenarios"
)

func recordBounce(t *testing.T, frames, every int, sinks ...Sink) *Recorder {
	t.Helper()
	rec := NewRecorder(every, sinks...)
	_, err := headless.Run(context.Background(), scenarios.NewBounce(scenarios.DefaultParams()),
		headless.Script{MaxFrames: frames}, loop.DefaultConfig(), rec)
	if err != nil {
		t.Fatalf("run failed: %v", err)
	}
	return rec
}

func TestRecorder(t *testing.T) {
	rec := recordBounce(t, 10, 1)

	if rec.Frames() != 10 {
		t.Errorf("expected 10 frames, got %d", rec.Frames())
	}
	if len(rec.Samples()) != 50 {
		t.Errorf("expected 50 samples, got %d", len(rec.Samples()))
	}

	last := rec.Samples()[len(rec.Samples())-1]
	if last.Label != "ball" || last.Kind != "dynamic" || last.Frame != 10 {
		t.Errorf("unexpected last sample %+v", last)
	}
	if math.Abs(math.Hypot(last.VX, last.VY)-10) > 1e-6 {
		t.Errorf("expected ball speed 10 before any contact, got %f", math.Hypot(last.VX, last.VY))
	}
}

func TestRecorderEvery(t *testing.T) {
	rec := recordBounce(t, 10, 5)
	if rec.Frames() != 2 {
		t.Errorf("expected 2 frames, got %d", rec.Frames())
	}
}

type failingSink struct{ calls int }

func (f *failingSink) WriteFrame([]Sample) error {
	f.calls++
	return errors.New("disk full")
}

func TestRecorderSinkError(t *testing.T) {
	sink := &failingSink{}
	rec := recordBounce(t, 5, 1, sink)

	if rec.Err() == nil {
		t.Error("expected sink error")
	}
	if sink.calls != 1 {
		t.Errorf("expected forwarding to stop after the first error, got %d calls", sink.calls)
	}
	if rec.Frames() != 5 {
		t.Errorf("expected samples kept in memory, got %d frames", rec.Frames())
	}
}

func TestStoreSaveLoad(t *testing.T) {
	st := New(t.TempDir())
	if err := st.Init(); err != nil {
		t.Fatalf("init failed: %v", err)
	}

	rec := recordBounce(t, 20, 1)
	runID, err := st.Save(RunMetadata{
		Scenario: "bounce",
		Frames:   20,
		Timestep: 1.0 / 60.0,
		Params:   scenarios.DefaultParams(),
		Metrics:  map[string]float64{"mean_speed": 10},
	}, rec.Samples())
	if err != nil {
		t.Fatalf("save failed: %v", err)
	}
	if runID == "" {
		t.Error("expected non-empty run id")
	}

	meta, err := st.Load(runID)
	if err != nil {
		t.Fatalf("load failed: %v", err)
	}
	if meta.Scenario != "bounce" || meta.Frames != 20 {
		t.Errorf("unexpected metadata %+v", meta)
	}
	if meta.Metrics["mean_speed"] != 10 {
		t.Errorf("expected mean_speed 10, got %f", meta.Metrics["mean_speed"])
	}

	samples, err := st.LoadTrace(runID)
	if err != nil {
		t.Fatalf("load trace failed: %v", err)
	}
	if len(samples) != len(rec.Samples()) {
		t.Fatalf("expected %d samples, got %d", len(rec.Samples()), len(samples))
	}
	if math.Abs(samples[4].X-rec.Samples()[4].X) > 1e-6 {
		t.Errorf("expected x %f, got %f", rec.Samples()[4].X, samples[4].X)
	}

	runs, err := st.List()
	if err != nil {
		t.Fatalf("list failed: %v", err)
	}
	if len(runs) != 1 || runs[0].ID != runID {
		t.Errorf("expected one run %s, got %+v", runID, runs)
	}
}

func TestStoreMissingRun(t *testing.T) {
	st := New(t.TempDir())

	if _, err := st.Load("nope"); !errors.Is(err, ErrRunNotFound) {
		t.Errorf("expected ErrRunNotFound, got %v", err)
	}
	if _, err := st.LoadTrace("nope"); !errors.Is(err, ErrRunNotFound) {
		t.Errorf("expected ErrRunNotFound, got %v", err)
	}

	runs, err := New(filepath.Join(t.TempDir(), "missing")).List()
	if err != nil || len(runs) != 0 {
		t.Errorf("expected empty list, got %v, %v", runs, err)
	}
}

func TestWriteJSON(t *testing.T) {
	rec := recordBounce(t, 2, 1)

	var buf bytes.Buffer
	if err := WriteJSON(&buf, RunMetadata{ID: "x", Scenario: "bounce"}, rec.Samples()); err != nil {
		t.Fatalf("write failed: %v", err)
	}

	var data ExportData
	if err := json.Unmarshal(buf.Bytes(), &data); err != nil {
		t.Fatalf("decode failed: %v", err)
	}
	if data.Run.Scenario != "bounce" || len(data.Samples) != 10 {
		t.Errorf("unexpected export %+v", data.Run)
	}
}

func TestTraceDB(t *testing.T) {
	path := filepath.Join(t.TempDir(), "trace.db")
	db, err := CreateTraceDB(path)
	if err != nil {
		t.Fatalf("create failed: %v", err)
	}
	defer db.Close()

	rec := recordBounce(t, 12, 1, db)
	if rec.Err() != nil {
		t.Fatalf("recording failed: %v", rec.Err())
	}

	n, err := db.Frames()
	if err != nil {
		t.Fatalf("count failed: %v", err)
	}
	if n != 12 {
		t.Errorf("expected 12 frames, got %d", n)
	}

	frame, err := db.Frame(3)
	if err != nil {
		t.Fatalf("frame query failed: %v", err)
	}
	if len(frame) != 5 {
		t.Fatalf("expected 5 entities, got %d", len(frame))
	}
	for i, s := range frame {
		if s.Entity != i {
			t.Errorf("expected entity order, got %d at %d", s.Entity, i)
		}
	}

	ball, err := db.Entity(4)
	if err != nil {
		t.Fatalf("entity query failed: %v", err)
	}
	if len(ball) != 12 || ball[0].Label != "ball" {
		t.Errorf("expected 12 ball samples, got %d", len(ball))
	}

	if _, err := CreateTraceDB(path); !errors.Is(err, ErrDBExists) {
		t.Errorf("expected ErrDBExists, got %v", err)
	}
}
