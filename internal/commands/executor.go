// Package commands applies routed input actions to the search controller
// and announces the resulting state changes on the event bus.
package commands

import (
	"log"
	"slices"

	"binsearchviz/internal/eventbus"
	"binsearchviz/internal/search"
	"binsearchviz/internal/ui/input/types"
)

// Effect tells the presenter what to do after an action was executed
type Effect int

const (
	EffectNone        Effect = iota // nothing changed
	EffectRedraw                    // state changed, draw once
	EffectAnimate                   // a search run started, pull frames with Step
	EffectToggleHelp                // presenter-only
	EffectOpenHistory               // presenter-only
	EffectQuit                      // leave the main loop
)

// Executor owns the controller on behalf of a presenter loop
type Executor struct {
	ctrl *search.Controller
	bus  eventbus.EventBus
}

// NewExecutor creates an executor; bus may be nil
func NewExecutor(ctrl *search.Controller, bus eventbus.EventBus) *Executor {
	return &Executor{ctrl: ctrl, bus: bus}
}

// Controller exposes the controller for read access
func (e *Executor) Controller() *search.Controller {
	return e.ctrl
}

// SearchKey implements types.Context
func (e *Executor) SearchKey() int {
	return e.ctrl.Key()
}

// Searching implements types.Context
func (e *Executor) Searching() bool {
	return e.ctrl.Searching()
}

// Execute applies the actions in order and returns the strongest effect.
// Quit short-circuits the remaining actions.
func (e *Executor) Execute(actions []types.Action) Effect {
	effect := EffectNone
	for _, a := range actions {
		next := e.execute(a)
		if next == EffectQuit {
			return EffectQuit
		}
		if next > effect {
			effect = next
		}
	}
	return effect
}

func (e *Executor) execute(action types.Action) Effect {
	switch a := action.(type) {
	case types.DigitAction:
		if !e.ctrl.Digit(a.Digit) {
			return EffectNone
		}
		return EffectRedraw

	case types.ConfirmSearchAction:
		if !e.ctrl.ConfirmSearch() {
			return EffectNone
		}
		log.Printf("Search started for key %d", e.ctrl.Key())
		e.publish(eventbus.SearchStartedEvent{Key: e.ctrl.Key()})
		return EffectAnimate

	case types.ResetSearchAction:
		e.ctrl.ResetSearch()
		e.publish(eventbus.SearchResetEvent{})
		return EffectRedraw

	case types.NewArrayAction:
		e.ctrl.Regenerate()
		e.AnnounceArray()
		return EffectRedraw

	case types.ToggleHelpAction:
		return EffectToggleHelp

	case types.OpenHistoryAction:
		return EffectOpenHistory

	case types.QuitAction:
		return EffectQuit
	}

	return EffectNone
}

// AnnounceArray publishes the current sequence as regenerated. Presenters
// call it once at startup for the array the controller was built with.
func (e *Executor) AnnounceArray() {
	v := e.ctrl.Snapshot()
	ev := eventbus.ArrayRegeneratedEvent{Size: len(v.Sequence)}
	if len(v.Sequence) > 0 {
		ev.Min = slices.Min(v.Sequence)
		ev.Max = slices.Max(v.Sequence)
	}
	log.Printf("Array regenerated: %d values in [%d, %d]", ev.Size, ev.Min, ev.Max)
	e.publish(ev)
}

// Step advances the running search by one frame and publishes the
// conclusion when the terminal frame is produced.
func (e *Executor) Step() (search.Frame, bool) {
	f, ok := e.ctrl.Step()
	if ok && f.Kind.Terminal() {
		res := e.ctrl.LastResult()
		log.Printf("Search for %d concluded: %s (index %d, %d frames)", res.Key, res.Outcome, res.Index, res.Frames)
		e.publish(eventbus.SearchConcludedEvent{Result: res})
	}
	return f, ok
}

func (e *Executor) publish(ev eventbus.DomainEvent) {
	if e.bus != nil {
		e.bus.Publish(ev)
	}
}
