package views

import (
	"fmt"
	"strings"
	"time"

	"github.com/charmbracelet/lipgloss"

	"binsearchviz/internal/domain"
	"binsearchviz/internal/search"
)

const (
	barCell = "█"
	sepCell = "━"
)

// ViewState contains all the state needed for rendering
type ViewState struct {
	Width         int
	Height        int
	Search        search.View
	Frame         *search.Frame // last animation frame, nil outside a run
	MaxValue      int
	Inclusive     bool
	Elapsed       time.Duration
	Help          string
	StatusMessage string
}

// Renderer handles all view rendering
type Renderer struct {
	styles *Styles
}

// NewRenderer creates a new renderer
func NewRenderer() *Renderer {
	return &Renderer{styles: NewStyles()}
}

// Render produces the complete view
func (r *Renderer) Render(state ViewState) string {
	width := max(state.Width, 1)

	header := r.renderHeader(state, width)
	status := r.renderStatus(state)
	separator := r.styles.Separator.Render(strings.Repeat(sepCell, width))

	used := lipgloss.Height(header) + lipgloss.Height(status) + 1
	if state.Help != "" {
		used += lipgloss.Height(state.Help)
	}
	rows := max(state.Height-used, 1)

	parts := []string{header, status, separator, r.renderBars(state, width, rows)}
	if state.Help != "" {
		parts = append(parts, r.styles.Help.Render(state.Help))
	}
	return lipgloss.JoinVertical(lipgloss.Left, parts...)
}

func (r *Renderer) renderHeader(state ViewState, width int) string {
	title := r.styles.Title.Render("BINARY SEARCH VISUALIZER")
	timer := r.styles.Timer.Render(fmt.Sprintf("Running Time(sec): %d", int(state.Elapsed.Seconds())))

	instructions := r.styles.Instruction.Render("SEARCH: PRESS 'ENTER'   NEW ARRAY: PRESS 'R'   RESET: PRESS 'N'")
	key := r.styles.KeyEntry.Render(fmt.Sprintf("ENTER NUMBER TO SEARCH: %d", state.Search.Key))

	return lipgloss.JoinVertical(lipgloss.Left,
		spread(title, timer, width),
		spread(instructions, key, width),
	)
}

// spread places left and right on one line, right-aligned to width
func spread(left, right string, width int) string {
	gap := width - lipgloss.Width(left) - lipgloss.Width(right)
	if gap < 1 {
		gap = 1
	}
	return left + strings.Repeat(" ", gap) + right
}

func (r *Renderer) renderStatus(state ViewState) string {
	text, style := r.statusLine(state)
	return style.Render(text)
}

func (r *Renderer) statusLine(state ViewState) (string, lipgloss.Style) {
	if state.StatusMessage != "" {
		return state.StatusMessage, r.styles.Status
	}

	v := state.Search
	switch v.Phase {
	case domain.PhaseSearching:
		if f := state.Frame; f != nil {
			text := fmt.Sprintf("SEARCHING %d: left %d, right %d", v.Key, f.Left, f.Right)
			if f.Mid >= 0 {
				text += fmt.Sprintf(", mid %d", f.Mid)
			}
			return text, r.styles.StatusSearching
		}
		return fmt.Sprintf("SEARCHING %d", v.Key), r.styles.StatusSearching

	case domain.PhaseConcluded:
		if v.Outcome == domain.OutcomeFound {
			return fmt.Sprintf("FOUND %d AT INDEX %d", v.Key, v.FoundIndex), r.styles.StatusFound
		}
		return fmt.Sprintf("%d NOT FOUND", v.Key), r.styles.StatusNotFound

	case domain.PhaseKeyEntry:
		return fmt.Sprintf("PRESS ENTER TO SEARCH FOR %d", v.Key), r.styles.Status
	}

	text := "TYPE A NUMBER TO SEARCH"
	if state.Inclusive {
		text += " (inclusive bounds)"
	}
	return text, r.styles.Status
}

// renderBars draws one column per element, hanging from the separator
func (r *Renderer) renderBars(state ViewState, width, rows int) string {
	seq := state.Search.Sequence
	n := len(seq)
	if n == 0 {
		return strings.Repeat("\n", rows-1)
	}

	visible := min(n, width)
	offset := windowOffset(n, visible, focusIndex(state))

	maxValue := state.MaxValue
	if maxValue <= 0 {
		for _, v := range seq {
			maxValue = max(maxValue, v+1)
		}
	}

	heights := make([]int, visible)
	for i := range heights {
		heights[i] = barHeight(seq[offset+i], maxValue, rows)
	}

	lines := make([]string, rows)
	for row := 0; row < rows; row++ {
		var line strings.Builder
		runStart := 0
		for i := 1; i <= visible; i++ {
			if i < visible && sameCell(state, heights, offset, row, i-1, i) {
				continue
			}
			line.WriteString(r.renderRun(state, heights, offset, row, runStart, i))
			runStart = i
		}
		lines[row] = line.String()
	}
	return strings.Join(lines, "\n")
}

func (r *Renderer) renderRun(state ViewState, heights []int, offset, row, from, to int) string {
	if row >= heights[from] {
		return strings.Repeat(" ", to-from)
	}
	return r.styles.Bar(highlightAt(state, offset+from)).Render(strings.Repeat(barCell, to-from))
}

func sameCell(state ViewState, heights []int, offset, row, a, b int) bool {
	filledA, filledB := row < heights[a], row < heights[b]
	if filledA != filledB {
		return false
	}
	if !filledA {
		return true
	}
	return highlightAt(state, offset+a) == highlightAt(state, offset+b)
}

func highlightAt(state ViewState, i int) domain.Highlight {
	hs := state.Search.Highlights
	if state.Frame != nil {
		hs = state.Frame.Highlights
	}
	if i < len(hs) {
		return hs[i]
	}
	return domain.HighlightDefault
}

// barHeight scales v in [0, maxValue) to at most rows cells, rounding up
func barHeight(v, maxValue, rows int) int {
	if v <= 0 || maxValue <= 0 {
		return 0
	}
	h := (v*rows + maxValue - 1) / maxValue
	return min(h, rows)
}

// focusIndex picks the element the visible window should contain
func focusIndex(state ViewState) int {
	if f := state.Frame; f != nil {
		if f.Mid >= 0 {
			return f.Mid
		}
		return f.Left + (f.Right-f.Left)/2
	}
	if state.Search.FoundIndex >= 0 {
		return state.Search.FoundIndex
	}
	return 0
}

// windowOffset returns the first visible index so focus sits near the middle
func windowOffset(n, visible, focus int) int {
	if visible >= n {
		return 0
	}
	offset := focus - visible/2
	return max(0, min(offset, n-visible))
}
