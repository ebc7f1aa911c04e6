package ui

import (
	"testing"

	tea "github.com/charmbracelet/bubbletea"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"binsearchviz/internal/commands"
	"binsearchviz/internal/config"
	"binsearchviz/internal/domain"
	"binsearchviz/internal/eventbus"
	"binsearchviz/internal/search"
)

type fixedGenerator domain.Sequence

func (g fixedGenerator) Generate() domain.Sequence {
	return domain.Sequence(g).Clone()
}

func newTestModel(t *testing.T) *Model {
	t.Helper()
	ctrl := search.NewController(fixedGenerator{0, 5, 12, 12, 47, 88})
	m := NewModel(config.DefaultConfig(), commands.NewExecutor(ctrl, nil), nil)
	m.Update(tea.WindowSizeMsg{Width: 100, Height: 24})
	return m
}

func runes(s string) tea.KeyMsg {
	return tea.KeyMsg{Type: tea.KeyRunes, Runes: []rune(s)}
}

func typeKeys(m *Model, s string) {
	for _, r := range s {
		m.Update(runes(string(r)))
	}
}

// drainFrames feeds frame ticks until the run concludes
func drainFrames(t *testing.T, m *Model) int {
	t.Helper()
	frames := 0
	for m.executor.Searching() {
		m.Update(frameMsg{run: m.run})
		frames++
		require.Less(t, frames, 1000, "search never concluded")
	}
	return frames
}

func TestViewBeforeWindowSize(t *testing.T) {
	ctrl := search.NewController(fixedGenerator{1, 2, 3})
	m := NewModel(config.DefaultConfig(), commands.NewExecutor(ctrl, nil), nil)
	assert.Equal(t, "Loading...", m.View())
}

func TestTypingAndSearching(t *testing.T) {
	m := newTestModel(t)

	typeKeys(m, "47")
	assert.Contains(t, m.View(), "ENTER NUMBER TO SEARCH: 47")

	_, cmd := m.Update(tea.KeyMsg{Type: tea.KeyEnter})
	require.NotNil(t, cmd, "confirm schedules the first frame")
	assert.True(t, m.executor.Searching())
	assert.Contains(t, m.View(), "SEARCHING 47")

	assert.Equal(t, 4, drainFrames(t, m))
	assert.Equal(t, search.FrameFound, m.frame.Kind)
	assert.Contains(t, m.View(), "FOUND 47 AT INDEX 4")
}

func TestNotFoundIsReported(t *testing.T) {
	m := newTestModel(t)
	typeKeys(m, "99")
	m.Update(tea.KeyMsg{Type: tea.KeyEnter})
	drainFrames(t, m)
	assert.Contains(t, m.View(), "99 NOT FOUND")
}

func TestInputIsDroppedWhileAnimating(t *testing.T) {
	m := newTestModel(t)
	typeKeys(m, "12")
	m.Update(tea.KeyMsg{Type: tea.KeyEnter})

	typeKeys(m, "3rn")
	assert.Equal(t, 12, m.executor.SearchKey())
	assert.True(t, m.executor.Searching())

	_, cmd := m.Update(tea.KeyMsg{Type: tea.KeyCtrlC})
	require.NotNil(t, cmd)
	assert.IsType(t, tea.QuitMsg{}, cmd())
}

func TestStaleFrameTicksAreIgnored(t *testing.T) {
	m := newTestModel(t)
	typeKeys(m, "88")
	m.Update(tea.KeyMsg{Type: tea.KeyEnter})

	_, cmd := m.Update(frameMsg{run: m.run - 1})
	assert.Nil(t, cmd)
	assert.Nil(t, m.frame)
}

func TestEnterWithoutKeyDoesNothing(t *testing.T) {
	m := newTestModel(t)
	_, cmd := m.Update(tea.KeyMsg{Type: tea.KeyEnter})
	assert.Nil(t, cmd)
	assert.False(t, m.executor.Searching())
}

func TestResetAndNewArray(t *testing.T) {
	m := newTestModel(t)
	typeKeys(m, "5")
	m.Update(tea.KeyMsg{Type: tea.KeyEnter})
	drainFrames(t, m)

	m.Update(runes("n"))
	assert.Nil(t, m.frame)
	assert.Equal(t, 0, m.executor.SearchKey())
	assert.Contains(t, m.View(), "TYPE A NUMBER TO SEARCH")

	typeKeys(m, "7r")
	v := m.executor.Controller().Snapshot()
	assert.Equal(t, 0, v.Key)
	assert.Equal(t, domain.PhaseIdle, v.Phase)
}

func TestToggleHelp(t *testing.T) {
	m := newTestModel(t)
	assert.Contains(t, m.View(), "new array", "short help is on by default")
	assert.NotContains(t, m.View(), "history")

	m.Update(runes("?"))
	assert.Contains(t, m.View(), "history")

	m.Update(runes("?"))
	assert.NotContains(t, m.View(), "history")
}

func TestHelpHiddenByConfig(t *testing.T) {
	cfg := config.DefaultConfig()
	cfg.UISettings.ShowHelp = false
	ctrl := search.NewController(fixedGenerator{1, 2, 3})
	m := NewModel(cfg, commands.NewExecutor(ctrl, nil), nil)
	m.Update(tea.WindowSizeMsg{Width: 100, Height: 24})

	assert.NotContains(t, m.View(), "new array")
	m.Update(runes("?"))
	assert.Contains(t, m.View(), "new array")
}

func TestHistoryWithoutRecorderSetsStatus(t *testing.T) {
	m := newTestModel(t)
	_, cmd := m.Update(runes("L"))
	require.NotNil(t, cmd)
	assert.Contains(t, m.View(), "history unavailable")

	m.Update(clearStatusMsg{})
	assert.NotContains(t, m.View(), "history unavailable")
}

func TestErrorEventIsShown(t *testing.T) {
	m := newTestModel(t)
	m.Update(EventMsg{Event: eventbus.ErrorEvent{Message: "config unreadable"}})
	assert.Contains(t, m.View(), "error: config unreadable")
}

func TestKeysIgnoredWhilePaging(t *testing.T) {
	m := newTestModel(t)
	m.Update(pauseRenderingMsg{})
	typeKeys(m, "4")
	assert.Equal(t, 0, m.executor.SearchKey())

	m.Update(resumeRenderingMsg{})
	typeKeys(m, "4")
	assert.Equal(t, 4, m.executor.SearchKey())
}
