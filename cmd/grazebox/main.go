package main

import (
	"context"
	"fmt"
	"os"

	tea "github.com/charmbracelet/bubbletea"

	"grazebox/internal/lead"
	"grazebox/internal/monitor"
	"grazebox/internal/telemetry"
	"grazebox/internal/ui"
)

func main() {
	ctx := context.Background()

	tracer, err := telemetry.New(ctx)
	if err != nil {
		fmt.Fprintf(os.Stderr, "telemetry disabled: %v\n", err)
	}

	store, err := lead.NewStore()
	if err != nil {
		fmt.Fprintf(os.Stderr, "Error: %v\n", err)
		os.Exit(1)
	}
	store.OnError = tracer.Error

	app := ui.NewApp(ui.TracedSubmitter(store, tracer), tracer)
	p := tea.NewProgram(app.AsTeaModel(), tea.WithAltScreen(), tea.WithMouseCellMotion())

	// The monitor's throttled snapshots re-enter the loop through Send.
	if err := app.AttachMonitor(monitor.Config{}, p.Send); err != nil {
		fmt.Fprintf(os.Stderr, "Error: %v\n", err)
		os.Exit(1)
	}

	_, runErr := p.Run()

	app.Monitor().Close()
	if err := tracer.Shutdown(ctx); err != nil {
		fmt.Fprintf(os.Stderr, "telemetry shutdown: %v\n", err)
	}
	if runErr != nil {
		fmt.Printf("Error: %v\n", runErr)
		os.Exit(1)
	}
}
