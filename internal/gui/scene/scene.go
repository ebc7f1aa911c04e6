// Package scene holds the window presenter's state and layout without
// touching the graphics library, so it can be driven from tests.
package scene

import (
	"fmt"
	"strings"
	"time"

	"binsearchviz/internal/commands"
	"binsearchviz/internal/config"
	"binsearchviz/internal/domain"
	"binsearchviz/internal/history"
	"binsearchviz/internal/search"
	"binsearchviz/internal/ui/input"
	"binsearchviz/internal/ui/input/keys"
)

// Scene is the presenter state for one window
type Scene struct {
	config   *config.Config
	executor *commands.Executor
	history  *history.Recorder
	input    *input.Handler

	start       time.Time
	lastStep    time.Time
	frame       *search.Frame // last animation frame of the current run
	showHelp    bool
	showHistory bool
}

// New creates a scene started at start. recorder may be nil.
func New(cfg *config.Config, executor *commands.Executor, recorder *history.Recorder, start time.Time) *Scene {
	return &Scene{
		config:   cfg,
		executor: executor,
		history:  recorder,
		input:    input.New(keys.Default()),
		start:    start,
		showHelp: cfg.UISettings.ShowHelp,
	}
}

// HandleKey routes one key name and reports whether the user asked to quit
func (s *Scene) HandleKey(name string) (quit bool) {
	switch s.executor.Execute(s.input.HandleKey(name, s.executor)) {
	case commands.EffectQuit:
		return true
	case commands.EffectAnimate:
		s.frame = nil
		s.lastStep = time.Time{}
	case commands.EffectRedraw:
		s.frame = nil
	case commands.EffectToggleHelp:
		s.showHelp = !s.showHelp
	case commands.EffectOpenHistory:
		s.showHistory = !s.showHistory && s.history != nil
	}
	return false
}

// Advance steps the running search once per frame delay. The first frame
// of a run is produced on the first call after it was confirmed.
func (s *Scene) Advance(now time.Time) {
	if !s.executor.Searching() {
		return
	}
	if !s.lastStep.IsZero() && now.Sub(s.lastStep) < s.config.FrameDelay() {
		return
	}
	s.lastStep = now
	if f, ok := s.executor.Step(); ok {
		s.frame = &f
	}
}

// View returns the controller state to draw
func (s *Scene) View() search.View {
	return s.executor.Controller().Snapshot()
}

// Highlights prefers the last frame's highlights over the controller's
func (s *Scene) Highlights(view search.View) []domain.Highlight {
	if s.frame != nil {
		return s.frame.Highlights
	}
	return view.Highlights
}

// Frame returns the last animation frame, nil outside a run
func (s *Scene) Frame() *search.Frame {
	return s.frame
}

// Elapsed returns the running time in whole seconds
func (s *Scene) Elapsed(now time.Time) int {
	return int(now.Sub(s.start).Seconds())
}

// MaxValue is the exclusive upper bound used to scale bars
func (s *Scene) MaxValue() int {
	return s.config.Array.MaxValue
}

// Status describes the current phase for the header
func (s *Scene) Status(view search.View) string {
	switch view.Phase {
	case domain.PhaseSearching:
		f := s.frame
		if f == nil {
			return fmt.Sprintf("SEARCHING %d", view.Key)
		}
		if f.Mid >= 0 {
			return fmt.Sprintf("SEARCHING %d: mid %d", view.Key, f.Mid)
		}
		return fmt.Sprintf("SEARCHING %d: [%d, %d]", view.Key, f.Left, f.Right)
	case domain.PhaseConcluded:
		if view.Outcome == domain.OutcomeFound {
			return fmt.Sprintf("FOUND %d AT INDEX %d", view.Key, view.FoundIndex)
		}
		return fmt.Sprintf("%d NOT FOUND", view.Key)
	}
	return ""
}

// HelpLine lists every binding, or returns "" while help is hidden
func (s *Scene) HelpLine() string {
	if !s.showHelp {
		return ""
	}
	var parts []string
	for _, column := range s.input.Keys().FullHelp() {
		for _, b := range column {
			h := b.Help()
			parts = append(parts, h.Key+" "+h.Desc)
		}
	}
	return strings.Join(parts, "   ")
}

// History returns the history text while the overlay is open
func (s *Scene) History() (string, bool) {
	if !s.showHistory || s.history == nil {
		return "", false
	}
	return s.history.Render(), true
}

// Rect is an axis-aligned rectangle in window pixels
type Rect struct {
	X, Y, W, H float32
}

// BarRect places element i of n as a column hanging down from top, scaled
// so maxValue would reach bottom.
func BarRect(i, n, v, maxValue int, width, top, bottom float32) Rect {
	if n <= 0 || maxValue <= 0 {
		return Rect{}
	}
	step := width / float32(n)
	return Rect{
		X: float32(i) * step,
		Y: top,
		W: max(step-1, 1),
		H: (bottom - top) * float32(max(0, min(v, maxValue))) / float32(maxValue),
	}
}
