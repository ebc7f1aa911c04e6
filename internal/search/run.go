package search

import (
	"slices"

	"binsearchviz/internal/domain"
)

// FrameKind identifies which point of an iteration a frame was taken at
type FrameKind int

const (
	FrameProbe    FrameKind = iota // bounds marked, before mid is examined
	FrameNarrowed                  // after the range was narrowed
	FrameFound                     // terminal: mid matched the key
	FrameNotFound                  // terminal: range exhausted
)

func (k FrameKind) String() string {
	switch k {
	case FrameProbe:
		return "probe"
	case FrameNarrowed:
		return "narrowed"
	case FrameFound:
		return "found"
	default:
		return "not found"
	}
}

// Terminal reports whether no frame follows this one
func (k FrameKind) Terminal() bool {
	return k == FrameFound || k == FrameNotFound
}

// Frame is a snapshot of the search taken each time a redraw is due
type Frame struct {
	Kind       FrameKind
	Left       int
	Right      int
	Mid        int // -1 until the iteration has computed it
	Highlights []domain.Highlight
}

// run steps one binary search, two frames per iteration. It writes into
// the controller's highlight slice.
type run struct {
	seq        domain.Sequence
	highlights []domain.Highlight
	key        int
	inclusive  bool

	left, right, mid int
	probed           bool
	done             bool
	result           domain.SearchResult
}

func newRun(seq domain.Sequence, highlights []domain.Highlight, key int, inclusive bool) *run {
	return &run{
		seq:        seq,
		highlights: highlights,
		key:        key,
		inclusive:  inclusive,
		left:       0,
		right:      len(seq) - 1,
		mid:        -1,
		result:     domain.SearchResult{Key: key, Index: -1},
	}
}

func (r *run) inRange() bool {
	if r.inclusive {
		return r.left <= r.right
	}
	return r.left < r.right
}

// next produces the following frame, or false once the terminal frame was returned
func (r *run) next() (Frame, bool) {
	if r.done {
		return Frame{}, false
	}

	if !r.probed {
		if !r.inRange() {
			r.finish(domain.OutcomeNotFound, -1)
			return r.frame(FrameNotFound), true
		}
		r.highlights[r.left] = domain.HighlightSearching
		r.highlights[r.right] = domain.HighlightSearching
		r.mid = -1
		r.probed = true
		return r.frame(FrameProbe), true
	}

	r.probed = false
	r.mid = r.left + (r.right-r.left)/2

	if r.seq[r.mid] == r.key {
		r.highlights[r.mid] = domain.HighlightFound
		r.finish(domain.OutcomeFound, r.mid)
		return r.frame(FrameFound), true
	}

	if r.seq[r.mid] < r.key {
		r.highlights[r.left] = domain.HighlightDefault
		r.left = r.mid + 1
	} else {
		r.highlights[r.right] = domain.HighlightDefault
		r.right = r.mid - 1
	}
	return r.frame(FrameNarrowed), true
}

func (r *run) finish(outcome domain.Outcome, index int) {
	r.done = true
	r.result.Outcome = outcome
	r.result.Index = index
}

func (r *run) frame(kind FrameKind) Frame {
	r.result.Frames++
	return Frame{
		Kind:       kind,
		Left:       r.left,
		Right:      r.right,
		Mid:        r.mid,
		Highlights: slices.Clone(r.highlights),
	}
}
