package main

import (
	"fmt"
	"log"
	"os"

	tea "github.com/charmbracelet/bubbletea"
	"github.com/spf13/pflag"

	"binsearchviz/internal/arraygen"
	"binsearchviz/internal/commands"
	"binsearchviz/internal/config"
	"binsearchviz/internal/eventbus"
	"binsearchviz/internal/history"
	"binsearchviz/internal/search"
	"binsearchviz/internal/ui"
)

// historyLimit bounds the entries kept for the history pager
const historyLimit = 500

func main() {
	fs := pflag.NewFlagSet("binsearchviz", pflag.ExitOnError)
	flags := config.BindFlags(fs)
	_ = fs.Parse(os.Args[1:])

	// Create event bus
	bus := eventbus.New()
	defer bus.Close()

	// Load configuration, falling back to defaults plus flags
	cfg, loadErr := flags.Load(bus)
	if loadErr != nil {
		var err error
		cfg, err = flags.Overlay(config.DefaultConfig())
		if err != nil {
			fmt.Fprintf(os.Stderr, "Error: %v\n", err)
			os.Exit(1)
		}
	}

	// Set up logging; the terminal belongs to the UI
	logFile, err := tea.LogToFile(cfg.UISettings.LogFile, "binsearchviz")
	if err != nil {
		fmt.Fprintf(os.Stderr, "Could not open log file: %v\n", err)
	} else {
		defer logFile.Close()
	}
	if loadErr != nil {
		log.Printf("Error loading config: %v", loadErr)
	}
	log.Printf("Array size %d, max value %d, inclusive bounds %t", cfg.Array.Size, cfg.Array.MaxValue, cfg.Search.InclusiveBounds)

	recorder := history.NewRecorder(bus, historyLimit)
	defer recorder.Close()

	ctrl := search.NewController(
		arraygen.New(cfg.Array.Size, cfg.Array.MaxValue, cfg.Array.Seed),
		search.WithInclusiveBounds(cfg.Search.InclusiveBounds),
	)
	executor := commands.NewExecutor(ctrl, bus)
	executor.AnnounceArray()

	// Create UI model and program
	uiModel := ui.NewModel(cfg, executor, recorder)
	p := tea.NewProgram(uiModel, tea.WithAltScreen())
	uiModel.SetProgram(p)

	// Forward errors to the status line
	bus.Subscribe(eventbus.EventError, func(e eventbus.DomainEvent) {
		p.Send(ui.EventMsg{Event: e})
	})
	if loadErr != nil {
		bus.Publish(eventbus.ErrorEvent{Message: "config not loaded, using defaults", Err: loadErr})
	}

	log.Printf("Starting UI...")
	if _, err := p.Run(); err != nil {
		log.Printf("Error running program: %v", err)
		fmt.Printf("Error running program: %v\n", err)
		os.Exit(1)
	}
	log.Printf("UI exited normally")
}
