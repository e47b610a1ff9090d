package main

import (
	"context"
	"fmt"
	"os"

	"github.com/san-kum/rigidlab/internal/gui"
	"github.com/san-kum/rigidlab/internal/loop"
	"github.com/san-kum/rigidlab/internal/scenarios"
)

func main() {
	sc := scenarios.NewIncline(scenarios.DefaultParams())
	opts := gui.DefaultOptions(scenarios.Title("incline"))

	if err := gui.Run(context.Background(), sc, opts, loop.DefaultConfig()); err != nil {
		fmt.Fprintln(os.Stderr, "error:", err)
		os.Exit(1)
	}
}
