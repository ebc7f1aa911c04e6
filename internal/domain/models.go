package domain

// Highlight is the display category of a single sequence element
type Highlight int

const (
	HighlightDefault Highlight = iota
	HighlightSearching
	HighlightFound
)

func (h Highlight) String() string {
	switch h {
	case HighlightSearching:
		return "searching"
	case HighlightFound:
		return "found"
	default:
		return "default"
	}
}

// Sequence is the array being searched, 0-indexed
type Sequence []int

// Clone returns an independent copy of the sequence
func (s Sequence) Clone() Sequence {
	if s == nil {
		return nil
	}
	out := make(Sequence, len(s))
	copy(out, s)
	return out
}

// Outcome is the result of the last completed search attempt
type Outcome int

const (
	OutcomeNotStarted Outcome = iota
	OutcomeFound
	OutcomeNotFound
)

func (o Outcome) String() string {
	switch o {
	case OutcomeFound:
		return "found"
	case OutcomeNotFound:
		return "not found"
	default:
		return "not started"
	}
}

// Phase is the state of the search state machine
type Phase int

const (
	PhaseIdle      Phase = iota // no key entered, no search run
	PhaseKeyEntry               // digits being accumulated
	PhaseSearching              // a run is producing frames
	PhaseConcluded              // outcome recorded, reset required
)

func (p Phase) String() string {
	switch p {
	case PhaseKeyEntry:
		return "key entry"
	case PhaseSearching:
		return "searching"
	case PhaseConcluded:
		return "concluded"
	default:
		return "idle"
	}
}

// SearchResult summarizes one completed search run
type SearchResult struct {
	Key     int
	Outcome Outcome
	Index   int // index marked Found, -1 otherwise
	Frames  int // frames produced by the run, terminal frame included
}
