package ui

import (
	"fmt"
	"strings"
	"time"

	tea "github.com/charmbracelet/bubbletea"
	"github.com/noborus/ov/oviewer"
)

// HistoryOps shows the search history in the ov pager
type HistoryOps struct {
	program *tea.Program // reference to Bubble Tea program for terminal management
}

// NewHistoryOps creates a new history pager
func NewHistoryOps(program *tea.Program) *HistoryOps {
	return &HistoryOps{
		program: program,
	}
}

// SetProgram sets the program whose terminal is released while paging
func (h *HistoryOps) SetProgram(p *tea.Program) {
	h.program = p
}

// ShowInPager shows content using ov pager
func (h *HistoryOps) ShowInPager(content string) error {
	if h.program == nil {
		return fmt.Errorf("program not set")
	}

	// Release terminal control to run ov
	if err := h.program.ReleaseTerminal(); err != nil {
		return fmt.Errorf("failed to release terminal: %w", err)
	}

	defer func() {
		// Small delay to ensure ov has fully exited before restoring terminal
		time.Sleep(100 * time.Millisecond)
		_ = h.program.RestoreTerminal()
	}()

	root, err := oviewer.NewRoot(strings.NewReader(content))
	if err != nil {
		return fmt.Errorf("failed to create pager: %w", err)
	}

	// Don't write the document back to our screen on exit
	config := oviewer.NewConfig()
	config.IsWriteOnExit = false
	config.IsWriteOriginal = false
	root.SetConfig(config)

	return root.Run()
}
