// Package search holds the visualizer's state machine: the sorted sequence,
// the key being typed, the per-element highlights and the binary search
// that animates over them.
package search

import (
	"iter"
	"slices"

	"binsearchviz/internal/domain"
	"binsearchviz/internal/heapsort"
)

// MaxKey bounds the key so digit entry never overflows
const MaxKey = 999_999_999

// Generator supplies unsorted sequences
type Generator interface {
	Generate() domain.Sequence
}

// Option configures a Controller
type Option func(*Controller)

// WithInclusiveBounds makes the search loop while left <= right
func WithInclusiveBounds(inclusive bool) Option {
	return func(c *Controller) {
		c.inclusive = inclusive
	}
}

// View is a read-only copy of the controller state for presenters
type View struct {
	Sequence   domain.Sequence
	Highlights []domain.Highlight
	Key        int
	Outcome    domain.Outcome
	Phase      domain.Phase
	FoundIndex int
}

// Controller owns the sequence and search state. It is not safe for
// concurrent use; the presenter loop is its only owner.
type Controller struct {
	gen        Generator
	inclusive  bool
	seq        domain.Sequence
	highlights []domain.Highlight
	key        int
	outcome    domain.Outcome
	phase      domain.Phase
	active     *run
	last       domain.SearchResult
}

// NewController builds the initial state: one generated, sorted sequence
// with a cleared search.
func NewController(gen Generator, opts ...Option) *Controller {
	c := &Controller{gen: gen}
	for _, opt := range opts {
		opt(c)
	}
	c.Regenerate()
	return c
}

// Digit appends d to the key. It is refused outside Idle/KeyEntry, for
// values outside 0..9, and when the key would exceed MaxKey.
func (c *Controller) Digit(d int) bool {
	if c.phase != domain.PhaseIdle && c.phase != domain.PhaseKeyEntry {
		return false
	}
	if d < 0 || d > 9 {
		return false
	}
	if c.key > (MaxKey-d)/10 {
		return false
	}
	c.key = c.key*10 + d
	c.phase = domain.PhaseKeyEntry
	return true
}

// CanConfirm reports whether ConfirmSearch would start a run
func (c *Controller) CanConfirm() bool {
	return c.key != 0 && (c.phase == domain.PhaseIdle || c.phase == domain.PhaseKeyEntry)
}

// ConfirmSearch starts a binary search for the current key. Frames are
// then pulled with Step or Frames.
func (c *Controller) ConfirmSearch() bool {
	if !c.CanConfirm() {
		return false
	}
	c.active = newRun(c.seq, c.highlights, c.key, c.inclusive)
	c.phase = domain.PhaseSearching
	return true
}

// Step advances the active run by one frame. The terminal frame records
// the outcome and moves the controller to Concluded.
func (c *Controller) Step() (Frame, bool) {
	if c.active == nil {
		return Frame{}, false
	}
	f, ok := c.active.next()
	if !ok {
		return Frame{}, false
	}
	if f.Kind.Terminal() {
		c.last = c.active.result
		c.outcome = c.last.Outcome
		c.phase = domain.PhaseConcluded
		c.active = nil
	}
	return f, true
}

// Frames yields the remaining frames of the active run
func (c *Controller) Frames() iter.Seq[Frame] {
	return func(yield func(Frame) bool) {
		for {
			f, ok := c.Step()
			if !ok || !yield(f) {
				return
			}
		}
	}
}

// Search runs a complete search synchronously and returns its outcome.
// Without a confirmable key the current outcome is returned unchanged.
func (c *Controller) Search() domain.Outcome {
	if !c.ConfirmSearch() {
		return c.outcome
	}
	for range c.Frames() {
	}
	return c.outcome
}

// ResetSearch clears the key, the outcome and every highlight
func (c *Controller) ResetSearch() {
	c.key = 0
	c.outcome = domain.OutcomeNotStarted
	c.phase = domain.PhaseIdle
	c.active = nil
	c.last = domain.SearchResult{Index: -1}
	c.highlights = make([]domain.Highlight, len(c.seq))
}

// Regenerate replaces the sequence with a freshly generated, sorted one
// and clears the search.
func (c *Controller) Regenerate() {
	seq := c.gen.Generate()
	heapsort.Sort(seq)
	c.seq = seq
	c.ResetSearch()
}

// Key returns the key typed so far; 0 means none
func (c *Controller) Key() int { return c.key }

// Phase returns the state machine phase
func (c *Controller) Phase() domain.Phase { return c.phase }

// Outcome returns the outcome of the last completed search
func (c *Controller) Outcome() domain.Outcome { return c.outcome }

// Searching reports whether a run is waiting for more Step calls
func (c *Controller) Searching() bool { return c.active != nil }

// LastResult describes the most recently concluded run
func (c *Controller) LastResult() domain.SearchResult { return c.last }

// Len returns the sequence length
func (c *Controller) Len() int { return len(c.seq) }

// Snapshot copies the state a presenter needs to draw
func (c *Controller) Snapshot() View {
	return View{
		Sequence:   c.seq.Clone(),
		Highlights: slices.Clone(c.highlights),
		Key:        c.key,
		Outcome:    c.outcome,
		Phase:      c.phase,
		FoundIndex: c.last.Index,
	}
}
