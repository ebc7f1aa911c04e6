package ui

import (
	"fmt"
	"log"
	"time"

	"github.com/charmbracelet/bubbles/help"
	"github.com/charmbracelet/bubbles/stopwatch"
	tea "github.com/charmbracelet/bubbletea"

	"binsearchviz/internal/commands"
	"binsearchviz/internal/config"
	"binsearchviz/internal/eventbus"
	"binsearchviz/internal/history"
	"binsearchviz/internal/search"
	"binsearchviz/internal/ui/input"
	"binsearchviz/internal/ui/input/keys"
	"binsearchviz/internal/ui/views"
)

const statusTimeout = 3 * time.Second

// Model represents the UI state
type Model struct {
	config   *config.Config
	executor *commands.Executor
	history  *history.Recorder

	// UI-specific state
	width         int
	height        int
	help          help.Model
	stopwatch     stopwatch.Model
	showHelp      bool          // short help line; ToggleHelp expands it
	frame         *search.Frame // last animation frame of the current run
	run           int           // bumped on every confirmed search
	statusMessage string
	inPagerMode   bool

	renderer     *views.Renderer
	inputHandler *input.Handler
	historyOps   *HistoryOps

	// Program reference for terminal management
	program *tea.Program
}

// NewModel creates a new UI model. recorder may be nil, in which case the
// history pager is unavailable.
func NewModel(cfg *config.Config, executor *commands.Executor, recorder *history.Recorder) *Model {
	return &Model{
		config:       cfg,
		executor:     executor,
		history:      recorder,
		help:         help.New(),
		stopwatch:    stopwatch.NewWithInterval(time.Second),
		showHelp:     cfg.UISettings.ShowHelp,
		renderer:     views.NewRenderer(),
		inputHandler: input.New(keys.Default()),
		historyOps:   NewHistoryOps(nil),
	}
}

// SetProgram sets the program reference for terminal management
func (m *Model) SetProgram(p *tea.Program) {
	m.program = p
	m.historyOps.SetProgram(p)
}

// Init starts the running-time stopwatch
func (m *Model) Init() tea.Cmd {
	return m.stopwatch.Init()
}

// Update handles messages
func (m *Model) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	switch msg := msg.(type) {
	case tea.WindowSizeMsg:
		m.width = msg.Width
		m.height = msg.Height
		m.help.Width = msg.Width
		return m, nil

	case tea.KeyMsg:
		if m.inPagerMode {
			return m, nil
		}
		actions := m.inputHandler.HandleKeyMsg(msg, m.executor)
		return m, m.applyEffect(m.executor.Execute(actions))

	case frameMsg:
		if msg.run != m.run {
			return m, nil
		}
		f, ok := m.executor.Step()
		if !ok {
			return m, nil
		}
		m.frame = &f
		if f.Kind.Terminal() {
			return m, nil
		}
		return m, m.nextFrame()

	case EventMsg:
		return m, m.handleEvent(msg.Event)

	case historyPagerMsg:
		if msg.err != nil {
			log.Printf("History pager failed: %v", msg.err)
			return m, m.setStatus("history unavailable")
		}
		return m, nil

	case pauseRenderingMsg:
		m.inPagerMode = true
		return m, nil

	case resumeRenderingMsg:
		m.inPagerMode = false
		return m, nil

	case clearStatusMsg:
		m.statusMessage = ""
		return m, nil
	}

	var cmd tea.Cmd
	m.stopwatch, cmd = m.stopwatch.Update(msg)
	return m, cmd
}

// applyEffect turns the executor's verdict into presenter work
func (m *Model) applyEffect(effect commands.Effect) tea.Cmd {
	switch effect {
	case commands.EffectQuit:
		return tea.Quit

	case commands.EffectAnimate:
		m.run++
		m.frame = nil
		return m.nextFrame()

	case commands.EffectRedraw:
		m.frame = nil

	case commands.EffectToggleHelp:
		m.help.ShowAll = !m.help.ShowAll

	case commands.EffectOpenHistory:
		if m.history == nil || m.program == nil {
			return m.setStatus("history unavailable")
		}
		return m.openHistoryPager(m.history.Render())
	}
	return nil
}

func (m *Model) nextFrame() tea.Cmd {
	run := m.run
	return tea.Tick(m.config.FrameDelay(), func(time.Time) tea.Msg {
		return frameMsg{run: run}
	})
}

func (m *Model) handleEvent(event eventbus.DomainEvent) tea.Cmd {
	switch e := event.(type) {
	case eventbus.ErrorEvent:
		return m.setStatus(fmt.Sprintf("error: %s", e.Message))
	case eventbus.ConfigSavedEvent:
		return m.setStatus(fmt.Sprintf("config saved to %s", e.Path))
	}
	return nil
}

func (m *Model) setStatus(text string) tea.Cmd {
	m.statusMessage = text
	return tea.Tick(statusTimeout, func(time.Time) tea.Msg { return clearStatusMsg{} })
}

// openHistoryPager returns a command that shows content using ov pager
func (m *Model) openHistoryPager(content string) tea.Cmd {
	return func() tea.Msg {
		m.program.Send(pauseRenderingMsg{})

		err := m.historyOps.ShowInPager(content)

		m.program.Send(resumeRenderingMsg{})

		return historyPagerMsg{err: err}
	}
}

// View renders the UI
func (m *Model) View() string {
	if m.width == 0 {
		return "Loading..."
	}

	state := views.ViewState{
		Width:         m.width,
		Height:        m.height,
		Search:        m.executor.Controller().Snapshot(),
		Frame:         m.frame,
		MaxValue:      m.config.Array.MaxValue,
		Inclusive:     m.config.Search.InclusiveBounds,
		Elapsed:       m.stopwatch.Elapsed(),
		StatusMessage: m.statusMessage,
	}
	if m.showHelp || m.help.ShowAll {
		state.Help = m.help.View(m.inputHandler.Keys())
	}
	return m.renderer.Render(state)
}
