package views

import (
	"github.com/charmbracelet/lipgloss"

	"binsearchviz/internal/domain"
)

// Styles contains all the style definitions for the UI
type Styles struct {
	Title       lipgloss.Style
	Instruction lipgloss.Style
	KeyEntry    lipgloss.Style
	Timer       lipgloss.Style
	Status      lipgloss.Style
	Separator   lipgloss.Style
	Help        lipgloss.Style

	StatusFound     lipgloss.Style
	StatusNotFound  lipgloss.Style
	StatusSearching lipgloss.Style

	BarDefault   lipgloss.Style
	BarSearching lipgloss.Style
	BarFound     lipgloss.Style
}

// NewStyles creates a new Styles instance with default values
func NewStyles() *Styles {
	return &Styles{
		Title: lipgloss.NewStyle().
			Bold(true).
			Foreground(lipgloss.Color("99")),
		Instruction: lipgloss.NewStyle().Bold(true),
		KeyEntry:    lipgloss.NewStyle().Foreground(lipgloss.Color("220")),
		Timer:       lipgloss.NewStyle().Foreground(lipgloss.Color("241")),
		Status:      lipgloss.NewStyle().Foreground(lipgloss.Color("241")),
		Separator:   lipgloss.NewStyle().Foreground(lipgloss.Color("252")),
		Help:        lipgloss.NewStyle().Faint(true),

		StatusFound:     lipgloss.NewStyle().Foreground(lipgloss.Color("33")).Bold(true),
		StatusNotFound:  lipgloss.NewStyle().Foreground(lipgloss.Color("203")).Bold(true),
		StatusSearching: lipgloss.NewStyle().Foreground(lipgloss.Color("214")),

		BarDefault:   lipgloss.NewStyle().Foreground(lipgloss.Color("35")),  // green
		BarSearching: lipgloss.NewStyle().Foreground(lipgloss.Color("196")), // red
		BarFound:     lipgloss.NewStyle().Foreground(lipgloss.Color("19")),  // navy
	}
}

// Bar returns the style for a highlight category
func (s *Styles) Bar(h domain.Highlight) lipgloss.Style {
	switch h {
	case domain.HighlightSearching:
		return s.BarSearching
	case domain.HighlightFound:
		return s.BarFound
	default:
		return s.BarDefault
	}
}
