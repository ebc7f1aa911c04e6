package ui

import (
	"binsearchviz/internal/eventbus"
)

// EventMsg wraps a domain event for the UI
type EventMsg struct {
	Event eventbus.DomainEvent
}

// frameMsg asks the model to advance the running search by one frame
type frameMsg struct {
	run int // run the tick was scheduled for; stale ticks are dropped
}

// historyPagerMsg contains the result of a history pager command
type historyPagerMsg struct {
	err error
}

// clearStatusMsg clears the transient status line
type clearStatusMsg struct{}

// pauseRenderingMsg signals to pause Bubble Tea rendering
type pauseRenderingMsg struct{}

// resumeRenderingMsg signals to resume Bubble Tea rendering
type resumeRenderingMsg struct{}
