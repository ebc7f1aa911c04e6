// Package history keeps an in-memory log of search runs and array
// regenerations fed from the event bus.
package history

import (
	"fmt"
	"strings"
	"sync"
	"time"

	"binsearchviz/internal/domain"
	"binsearchviz/internal/eventbus"
)

// Entry is one line of the history
type Entry struct {
	At     time.Time
	Array  int // generation counter the entry belongs to
	Event  domain.EventType
	Result domain.SearchResult
	Size   int
	MinMax [2]int
}

// Recorder subscribes to domain events and records them
type Recorder struct {
	mu      sync.RWMutex
	entries []Entry
	array   int
	limit   int
	now     func() time.Time
	unsubs  []func()
}

// NewRecorder subscribes a recorder to bus. Only the newest limit entries
// are kept; limit <= 0 keeps everything.
func NewRecorder(bus eventbus.EventBus, limit int) *Recorder {
	r := &Recorder{limit: limit, now: time.Now}

	r.unsubs = append(r.unsubs,
		bus.Subscribe(eventbus.EventArrayRegenerated, func(e eventbus.DomainEvent) {
			if event, ok := e.(eventbus.ArrayRegeneratedEvent); ok {
				r.recordArray(event)
			}
		}),
		bus.Subscribe(eventbus.EventSearchConcluded, func(e eventbus.DomainEvent) {
			if event, ok := e.(eventbus.SearchConcludedEvent); ok {
				r.recordSearch(event.Result)
			}
		}),
	)

	return r
}

// Close detaches the recorder from the bus
func (r *Recorder) Close() {
	for _, unsub := range r.unsubs {
		unsub()
	}
	r.unsubs = nil
}

func (r *Recorder) recordArray(e eventbus.ArrayRegeneratedEvent) {
	r.mu.Lock()
	defer r.mu.Unlock()
	r.array++
	r.append(Entry{
		At:     r.now(),
		Array:  r.array,
		Event:  eventbus.EventArrayRegenerated,
		Size:   e.Size,
		MinMax: [2]int{e.Min, e.Max},
	})
}

func (r *Recorder) recordSearch(res domain.SearchResult) {
	r.mu.Lock()
	defer r.mu.Unlock()
	r.append(Entry{
		At:     r.now(),
		Array:  r.array,
		Event:  eventbus.EventSearchConcluded,
		Result: res,
	})
}

// append assumes r.mu is held
func (r *Recorder) append(e Entry) {
	r.entries = append(r.entries, e)
	if r.limit > 0 && len(r.entries) > r.limit {
		r.entries = append(r.entries[:0:0], r.entries[len(r.entries)-r.limit:]...)
	}
}

// Entries returns a copy of the recorded entries, oldest first
func (r *Recorder) Entries() []Entry {
	r.mu.RLock()
	defer r.mu.RUnlock()
	out := make([]Entry, len(r.entries))
	copy(out, r.entries)
	return out
}

// Searches counts recorded search runs by outcome
func (r *Recorder) Searches() (found, notFound int) {
	r.mu.RLock()
	defer r.mu.RUnlock()
	for _, e := range r.entries {
		if e.Event != eventbus.EventSearchConcluded {
			continue
		}
		switch e.Result.Outcome {
		case domain.OutcomeFound:
			found++
		case domain.OutcomeNotFound:
			notFound++
		}
	}
	return found, notFound
}

// Render formats the history as plain text for a pager
func (r *Recorder) Render() string {
	entries := r.Entries()

	var b strings.Builder
	b.WriteString("Search history\n\n")
	if len(entries) == 0 {
		b.WriteString("No searches yet.\n")
		return b.String()
	}

	for _, e := range entries {
		ts := e.At.Format("15:04:05")
		switch e.Event {
		case eventbus.EventArrayRegenerated:
			fmt.Fprintf(&b, "%s  array #%d  %d values in [%d, %d]\n", ts, e.Array, e.Size, e.MinMax[0], e.MinMax[1])
		case eventbus.EventSearchConcluded:
			res := e.Result
			if res.Outcome == domain.OutcomeFound {
				fmt.Fprintf(&b, "%s  array #%d  key %-6d found at index %d (%d frames)\n", ts, e.Array, res.Key, res.Index, res.Frames)
			} else {
				fmt.Fprintf(&b, "%s  array #%d  key %-6d not found (%d frames)\n", ts, e.Array, res.Key, res.Frames)
			}
		}
	}

	found, notFound := r.Searches()
	fmt.Fprintf(&b, "\n%d found, %d not found\n", found, notFound)
	return b.String()
}
