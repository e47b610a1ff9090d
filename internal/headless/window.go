// Package headless provides a window-less render.Window that follows a
// scripted input sequence and records every draw command.
package headless

import (
	"github.com/san-kum/rigidlab/internal/render"
)

type CommandKind int

const (
	DrawRect CommandKind = iota + 1
	DrawCircle
)

// Command is one recorded draw call.
type Command struct {
	Kind   CommandKind
	Rect   render.Rect
	Circle render.Circle
}

// Window replays a Script. The last presented frame is kept for export.
type Window struct {
	script    Script
	frame     int
	presented int
	clear     render.Color
	current   []Command
	last      []Command
	closed    bool
	closes    int
}

func New(script Script) *Window {
	return &Window{script: script}
}

func (w *Window) PollEvents() []render.Event {
	if w.closed {
		return []render.Event{render.CloseEvent()}
	}
	w.frame++
	var events []render.Event
	if w.script.MaxFrames > 0 && w.presented >= w.script.MaxFrames {
		events = append(events, render.CloseEvent())
	}
	for _, k := range w.script.Presses[w.frame] {
		events = append(events, render.KeyPressed(k))
	}
	return events
}

func (w *Window) IsKeyDown(k render.Key) bool {
	return !w.closed && w.script.held(k, w.frame)
}

func (w *Window) Clear(c render.Color) {
	w.clear = c
	w.current = w.current[:0]
}

func (w *Window) DrawRect(r render.Rect) {
	w.current = append(w.current, Command{Kind: DrawRect, Rect: r})
}

func (w *Window) DrawCircle(c render.Circle) {
	w.current = append(w.current, Command{Kind: DrawCircle, Circle: c})
}

func (w *Window) Present() {
	w.last = append(w.last[:0], w.current...)
	w.presented++
}

func (w *Window) Close() error {
	w.closed = true
	w.closes++
	return nil
}

// Frame is the number of polled iterations.
func (w *Window) Frame() int { return w.frame }

func (w *Window) Presented() int { return w.presented }

// LastFrame returns a copy of the commands of the last presented frame.
func (w *Window) LastFrame() []Command {
	out := make([]Command, len(w.last))
	copy(out, w.last)
	return out
}

// Background is the color of the most recent clear.
func (w *Window) Background() render.Color { return w.clear }

func (w *Window) Closed() bool { return w.closed }
