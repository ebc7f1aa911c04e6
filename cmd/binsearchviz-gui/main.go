package main

import (
	"errors"
	"fmt"
	"log"
	"os"

	"github.com/hajimehoshi/ebiten/v2"
	"github.com/ncruces/zenity"
	"github.com/spf13/pflag"

	"binsearchviz/internal/arraygen"
	"binsearchviz/internal/commands"
	"binsearchviz/internal/config"
	"binsearchviz/internal/eventbus"
	"binsearchviz/internal/gui"
	"binsearchviz/internal/history"
	"binsearchviz/internal/search"
)

const historyLimit = 500

func main() {
	fs := pflag.NewFlagSet("binsearchviz-gui", pflag.ExitOnError)
	flags := config.BindFlags(fs)
	_ = fs.Parse(os.Args[1:])

	bus := eventbus.New()
	defer bus.Close()

	cfg, err := flags.Load(bus)
	if err != nil {
		log.Printf("Error loading config: %v", err)
		_ = zenity.Error(fmt.Sprintf("Could not load config: %v\n\nUsing defaults.", err),
			zenity.Title("Binary Search Visualizer"),
			zenity.WarningIcon)

		cfg, err = flags.Overlay(config.DefaultConfig())
		if err != nil {
			_ = zenity.Error(err.Error(), zenity.Title("Binary Search Visualizer"), zenity.ErrorIcon)
			os.Exit(1)
		}
	}

	recorder := history.NewRecorder(bus, historyLimit)
	defer recorder.Close()

	ctrl := search.NewController(
		arraygen.New(cfg.Array.Size, cfg.Array.MaxValue, cfg.Array.Seed),
		search.WithInclusiveBounds(cfg.Search.InclusiveBounds),
	)

	executor := commands.NewExecutor(ctrl, bus)
	executor.AnnounceArray()

	game := gui.New(cfg, executor, recorder)
	if err := game.Run(); err != nil && !errors.Is(err, ebiten.Termination) {
		log.Printf("Error running window: %v", err)
		_ = zenity.Error(err.Error(), zenity.Title("Binary Search Visualizer"), zenity.ErrorIcon)
		os.Exit(1)
	}
}
