package gui

import (
	"fmt"
	"image/color"
	"time"

	"github.com/hajimehoshi/ebiten/v2"
	"github.com/hajimehoshi/ebiten/v2/ebitenutil"
	"github.com/hajimehoshi/ebiten/v2/vector"

	"binsearchviz/internal/domain"
	"binsearchviz/internal/gui/scene"
	"binsearchviz/internal/search"
)

const (
	separatorY     = 95
	separatorWidth = 6
	barsTop        = 100
	barsBottom     = windowHeight - 24 // help line below the bars
)

var (
	backgroundColor = color.RGBA{R: 24, G: 26, B: 33, A: 255}
	separatorColor  = color.RGBA{R: 220, G: 220, B: 220, A: 255}
	overlayColor    = color.RGBA{R: 0, G: 0, B: 0, A: 220}

	barColors = map[domain.Highlight]color.RGBA{
		domain.HighlightDefault:   {R: 0, G: 204, B: 102, A: 255},
		domain.HighlightSearching: {R: 255, G: 0, B: 0, A: 255},
		domain.HighlightFound:     {R: 0, G: 0, B: 153, A: 255},
	}
)

// Draw implements ebiten.Game
func (g *Game) Draw(screen *ebiten.Image) {
	screen.Fill(backgroundColor)

	view := g.scene.View()
	g.drawInterface(screen, view)
	g.drawBars(screen, view)

	if help := g.scene.HelpLine(); help != "" {
		ebitenutil.DebugPrintAt(screen, help, 20, barsBottom+4)
	}
	if text, ok := g.scene.History(); ok {
		vector.DrawFilledRect(screen, 40, 40, windowWidth-80, windowHeight-80, overlayColor, false)
		ebitenutil.DebugPrintAt(screen, text, 56, 56)
	}
}

func (g *Game) drawInterface(screen *ebiten.Image, view search.View) {
	ebitenutil.DebugPrintAt(screen, "SEARCH: PRESS 'ENTER'", 20, 20)
	ebitenutil.DebugPrintAt(screen, "NEW ARRAY: PRESS 'R'", 20, 40)
	ebitenutil.DebugPrintAt(screen, "RESET: PRESS 'N'", 20, 60)
	ebitenutil.DebugPrintAt(screen, fmt.Sprintf("Running Time(sec): %d", g.scene.Elapsed(time.Now())), 600, 20)
	ebitenutil.DebugPrintAt(screen, g.scene.Status(view), 600, 40)
	ebitenutil.DebugPrintAt(screen, fmt.Sprintf("ENTER NUMBER TO SEARCH: %d", view.Key), 600, 60)

	vector.DrawFilledRect(screen, 0, separatorY-separatorWidth/2, windowWidth, separatorWidth, separatorColor, false)
}

func (g *Game) drawBars(screen *ebiten.Image, view search.View) {
	highlights := g.scene.Highlights(view)
	n := len(view.Sequence)
	for i, v := range view.Sequence {
		r := scene.BarRect(i, n, v, g.scene.MaxValue(), windowWidth, barsTop, barsBottom)
		c := barColors[domain.HighlightDefault]
		if i < len(highlights) {
			c = barColors[highlights[i]]
		}
		vector.DrawFilledRect(screen, r.X, r.Y, r.W, r.H, c, false)
	}
}
