// Package gui is the desktop window presenter. It drives the same
// controller and key bindings as the terminal UI through ebiten.
package gui

import (
	"time"

	"github.com/hajimehoshi/ebiten/v2"

	"binsearchviz/internal/commands"
	"binsearchviz/internal/config"
	"binsearchviz/internal/gui/scene"
	"binsearchviz/internal/history"
)

const (
	windowWidth  = 900
	windowHeight = 650
)

// Game implements ebiten.Game
type Game struct {
	scene *scene.Scene
}

// New creates the window presenter. recorder may be nil.
func New(cfg *config.Config, executor *commands.Executor, recorder *history.Recorder) *Game {
	return &Game{scene: scene.New(cfg, executor, recorder, time.Now())}
}

// Run opens the window and blocks until it is closed or the user quits
func (g *Game) Run() error {
	ebiten.SetWindowSize(windowWidth, windowHeight)
	ebiten.SetWindowTitle("BINARY SEARCH VISUALIZER")
	return ebiten.RunGame(g)
}

// Update handles input and advances the running search
func (g *Game) Update() error {
	for _, name := range pressedKeyNames() {
		if g.scene.HandleKey(name) {
			return ebiten.Termination
		}
	}
	g.scene.Advance(time.Now())
	return nil
}

// Layout implements ebiten.Game
func (g *Game) Layout(outsideWidth, outsideHeight int) (int, int) {
	return windowWidth, windowHeight
}
