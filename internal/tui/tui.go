// Package tui provides a Bubble Tea terminal user interface for browsing
// article bylines.
package tui

import (
	"context"
	"fmt"
	"strings"
	"time"

	"github.com/charmbracelet/bubbles/progress"
	"github.com/charmbracelet/bubbles/spinner"
	"github.com/charmbracelet/bubbles/textinput"
	tea "github.com/charmbracelet/bubbletea"
	"github.com/charmbracelet/lipgloss"
	"github.com/handiism/embedrs/internal/byline"
	"github.com/handiism/embedrs/internal/config"
)

// Styles for the TUI
var (
	titleStyle = lipgloss.NewStyle().
			Bold(true).
			Foreground(lipgloss.Color("#FF6B6B")).
			MarginBottom(1)

	subtitleStyle = lipgloss.NewStyle().
			Foreground(lipgloss.Color("#4ECDC4"))

	successStyle = lipgloss.NewStyle().
			Foreground(lipgloss.Color("#95E1A3"))

	errorStyle = lipgloss.NewStyle().
			Foreground(lipgloss.Color("#FF6B6B"))

	warningStyle = lipgloss.NewStyle().
			Foreground(lipgloss.Color("#FFE66D"))

	infoStyle = lipgloss.NewStyle().
			Foreground(lipgloss.Color("#A8DADC"))

	dimStyle = lipgloss.NewStyle().
			Foreground(lipgloss.Color("#6C757D"))

	boxStyle = lipgloss.NewStyle().
			Border(lipgloss.RoundedBorder()).
			BorderForeground(lipgloss.Color("#4ECDC4")).
			Padding(1, 2)

	selectedStyle = lipgloss.NewStyle().
			Foreground(lipgloss.Color("#F8B500"))
)

// State represents the current UI state.
type State int

const (
	StateInput State = iota
	StateLoading
	StateRendering
	StateBrowsing
	StateError
)

const maxLogs = 10

// LogEntry represents a log message in the UI.
type LogEntry struct {
	Message string
	Level   byline.ProgressLevel
}

// Model is the Bubble Tea model for the TUI.
type Model struct {
	state     State
	textInput textinput.Model
	spinner   spinner.Model
	progress  progress.Model
	settings  *config.Settings
	logs      []LogEntry
	results   []byline.Result
	selected  int
	err       error

	ctx    context.Context
	cancel context.CancelFunc

	builder *byline.Builder
	events  chan byline.ProgressEvent

	// Options
	drafts  bool
	noAnd   bool
	verbose bool

	width  int
	height int
}

// NewModel creates a new TUI model.
func NewModel(settings *config.Settings) Model {
	ti := textinput.New()
	ti.Placeholder = "content"
	ti.SetValue(settings.ContentPath)
	ti.Focus()
	ti.CharLimit = 500
	ti.Width = 60

	sp := spinner.New()
	sp.Spinner = spinner.Dot
	sp.Style = lipgloss.NewStyle().Foreground(lipgloss.Color("#FF6B6B"))

	prog := progress.New(progress.WithDefaultGradient())
	prog.Width = 50

	ctx, cancel := context.WithCancel(context.Background())

	return Model{
		state:     StateInput,
		textInput: ti,
		spinner:   sp,
		progress:  prog,
		settings:  settings,
		logs:      make([]LogEntry, 0),
		ctx:       ctx,
		cancel:    cancel,
		drafts:    settings.IncludeDrafts,
		noAnd:     !settings.UseAnd,
		events:    make(chan byline.ProgressEvent, 64),
	}
}

// Init initializes the model.
func (m Model) Init() tea.Cmd {
	return tea.Batch(textinput.Blink, m.spinner.Tick, m.waitForEvent())
}

// Message types
type (
	// ProgressMsg is sent when the builder reports progress.
	ProgressMsg struct {
		Event byline.ProgressEvent
	}

	// LoadDoneMsg is sent when the content directory has been loaded.
	LoadDoneMsg struct {
		Builder *byline.Builder
		Err     error
	}

	// RenderDoneMsg is sent when all bylines are rendered.
	RenderDoneMsg struct {
		Results []byline.Result
		Err     error
	}

	// TickMsg is for periodic progress updates.
	TickMsg struct{}
)

// Update handles messages and updates the model.
func (m Model) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	var cmds []tea.Cmd

	switch msg := msg.(type) {
	case tea.WindowSizeMsg:
		m.width = msg.Width
		m.height = msg.Height
		m.progress.Width = min(max(msg.Width-20, 20), 80)
		return m, nil

	case tea.KeyMsg:
		switch msg.String() {
		case "ctrl+c":
			m.cancel()
			return m, tea.Quit

		case "esc":
			if m.state == StateInput {
				return m, tea.Quit
			}
			if m.state == StateLoading || m.state == StateRendering {
				m.cancel()
				m.state = StateError
				m.err = fmt.Errorf("cancelled by user")
			}

		case "enter":
			if m.state == StateInput && m.textInput.Value() != "" {
				m.state = StateLoading
				return m, tea.Batch(m.load(), m.spinner.Tick)
			}

		case "up", "k":
			if m.state == StateBrowsing && m.selected > 0 {
				m.selected--
			}

		case "down", "j":
			if m.state == StateBrowsing && m.selected < len(m.results)-1 {
				m.selected++
			}

		case "ctrl+r":
			if m.state == StateInput {
				m.drafts = !m.drafts
			}

		case "ctrl+o":
			if m.state == StateInput {
				m.noAnd = !m.noAnd
			}

		case "ctrl+t":
			if m.state == StateInput {
				m.verbose = !m.verbose
			}

		case "q":
			if m.state == StateBrowsing || m.state == StateError {
				return m, tea.Quit
			}

		case "r":
			if m.state == StateBrowsing || m.state == StateError {
				m.state = StateInput
				m.logs = nil
				m.results = nil
				m.selected = 0
				m.err = nil
				m.builder = nil
				m.cancel()
				m.ctx, m.cancel = context.WithCancel(context.Background())
				m.textInput.Focus()
				return m, nil
			}
		}

	case spinner.TickMsg:
		var cmd tea.Cmd
		m.spinner, cmd = m.spinner.Update(msg)
		cmds = append(cmds, cmd)

	case ProgressMsg:
		cmds = append(cmds, m.waitForEvent())
		if msg.Event.Level == byline.LevelVerbose && !m.verbose {
			break
		}
		m.logs = append(m.logs, LogEntry{Message: msg.Event.Message, Level: msg.Event.Level})
		if len(m.logs) > maxLogs {
			m.logs = m.logs[len(m.logs)-maxLogs:]
		}

	case LoadDoneMsg:
		if msg.Err != nil {
			m.state = StateError
			m.err = msg.Err
		} else {
			m.builder = msg.Builder
			m.state = StateRendering
			cmds = append(cmds, m.render(), m.tickProgress())
		}

	case RenderDoneMsg:
		switch {
		case m.ctx.Err() != nil:
			m.state = StateError
			m.err = fmt.Errorf("cancelled by user")
		case msg.Err != nil:
			m.state = StateError
			m.err = msg.Err
		default:
			m.results = msg.Results
			m.selected = 0
			m.state = StateBrowsing
		}

	case TickMsg:
		if m.builder != nil && m.state == StateRendering {
			rendered, failed, total := m.builder.GetProgress()
			var percent float64
			if total > 0 {
				percent = float64(rendered+failed) / float64(total)
			}
			cmds = append(cmds, m.progress.SetPercent(percent), m.tickProgress())
		}

	case progress.FrameMsg:
		progressModel, cmd := m.progress.Update(msg)
		m.progress = progressModel.(progress.Model)
		cmds = append(cmds, cmd)
	}

	if m.state == StateInput {
		var cmd tea.Cmd
		m.textInput, cmd = m.textInput.Update(msg)
		cmds = append(cmds, cmd)
	}

	return m, tea.Batch(cmds...)
}

// tickProgress returns a command to tick progress updates.
func (m Model) tickProgress() tea.Cmd {
	return tea.Tick(200*time.Millisecond, func(_ time.Time) tea.Msg {
		return TickMsg{}
	})
}

// waitForEvent forwards the next builder event into the update loop.
func (m Model) waitForEvent() tea.Cmd {
	events := m.events
	return func() tea.Msg {
		return ProgressMsg{Event: <-events}
	}
}

// View renders the UI.
func (m Model) View() string {
	var b strings.Builder

	b.WriteString(titleStyle.Render("embedrs"))
	b.WriteString("\n")
	b.WriteString(dimStyle.Render("Browse article bylines"))
	b.WriteString("\n\n")

	switch m.state {
	case StateInput:
		b.WriteString(m.viewInput())
	case StateLoading:
		b.WriteString(m.viewLoading())
	case StateRendering:
		b.WriteString(m.viewRendering())
	case StateBrowsing:
		b.WriteString(m.viewBrowsing())
	case StateError:
		b.WriteString(m.viewError())
	}

	b.WriteString("\n")
	b.WriteString(dimStyle.Render(m.getHelpText()))

	return b.String()
}

func (m Model) viewInput() string {
	var b strings.Builder

	b.WriteString(subtitleStyle.Render("Content directory:"))
	b.WriteString("\n\n")
	b.WriteString(m.textInput.View())
	b.WriteString("\n\n")

	b.WriteString(infoStyle.Render("Options:"))
	b.WriteString("\n")
	b.WriteString(fmt.Sprintf("  %s Include drafts (ctrl+r)\n", checkbox(m.drafts)))
	b.WriteString(fmt.Sprintf("  %s Separator only, no \"and\" (ctrl+o)\n", checkbox(m.noAnd)))
	b.WriteString(fmt.Sprintf("  %s Verbose output (ctrl+t)\n", checkbox(m.verbose)))

	return b.String()
}

func (m Model) viewLoading() string {
	var b strings.Builder

	b.WriteString(m.spinner.View())
	b.WriteString(" ")
	b.WriteString(subtitleStyle.Render("Loading content..."))
	b.WriteString("\n\n")
	b.WriteString(m.renderLogs())

	return b.String()
}

func (m Model) viewRendering() string {
	var b strings.Builder

	b.WriteString(m.progress.View())
	b.WriteString("\n\n")
	b.WriteString(m.renderLogs())

	return b.String()
}

func (m Model) viewBrowsing() string {
	var b strings.Builder

	if len(m.results) == 0 {
		b.WriteString(warningStyle.Render("No articles found."))
		b.WriteString("\n")
		return b.String()
	}

	b.WriteString(successStyle.Render(fmt.Sprintf("%d article(s):", len(m.results))))
	b.WriteString("\n")
	for i, r := range m.results {
		line := fmt.Sprintf("  %s  %s", r.Article.Date.Format("2006-01-02"), r.Article.Title)
		if i == m.selected {
			b.WriteString(selectedStyle.Render("> " + strings.TrimPrefix(line, "  ")))
		} else {
			b.WriteString(line)
		}
		b.WriteString("\n")
	}
	b.WriteString("\n")

	selected := m.results[m.selected]
	detail := selected.Byline
	if selected.Err != nil {
		detail = errorStyle.Render(selected.Err.Error())
	}
	b.WriteString(boxStyle.Render(selected.Article.Slug + "\n\n" + detail))
	b.WriteString("\n")

	if len(m.logs) > 0 {
		b.WriteString("\n")
		b.WriteString(m.renderLogs())
	}

	return b.String()
}

func (m Model) viewError() string {
	var b strings.Builder

	b.WriteString(errorStyle.Render("Error occurred:"))
	b.WriteString("\n\n")
	if m.err != nil {
		b.WriteString(fmt.Sprintf("  %s", m.err.Error()))
	}

	return b.String()
}

func (m Model) renderLogs() string {
	var b strings.Builder

	for _, log := range m.logs {
		var style lipgloss.Style
		prefix := "•"
		switch log.Level {
		case byline.LevelError:
			style = errorStyle
			prefix = "✗"
		case byline.LevelWarning:
			style = warningStyle
			prefix = "!"
		case byline.LevelSuccess:
			style = successStyle
			prefix = "✓"
		case byline.LevelInfo:
			style = infoStyle
			prefix = "›"
		default:
			style = dimStyle
		}
		b.WriteString(style.Render(prefix + " " + log.Message))
		b.WriteString("\n")
	}

	return b.String()
}

func (m Model) getHelpText() string {
	switch m.state {
	case StateInput:
		return "enter: load • ctrl+r: drafts • ctrl+o: and • ctrl+t: verbose • esc: quit"
	case StateLoading, StateRendering:
		return "esc: cancel"
	case StateBrowsing:
		return "↑/↓: select • r: reload • q: quit"
	case StateError:
		return "r: start over • q: quit"
	}
	return ""
}

func checkbox(on bool) string {
	if on {
		return "[x]"
	}
	return "[ ]"
}

// options returns a copy of the settings with the toggles applied. The TUI
// always renders plain text.
func (m Model) options() *config.Settings {
	settings := *m.settings
	settings.ContentPath = m.textInput.Value()
	settings.IncludeDrafts = m.drafts
	settings.UseAnd = !m.noAnd
	settings.OutputFormat = "text"
	settings.OutputPath = ""
	return &settings
}

// load creates the builder and reads the content directory.
func (m Model) load() tea.Cmd {
	settings := m.options()
	ctx := m.ctx
	events := m.events

	return func() tea.Msg {
		builder, err := byline.NewBuilder(settings, func(event byline.ProgressEvent) {
			select {
			case events <- event:
			default:
				// drop events when the UI falls behind
			}
		})
		if err != nil {
			return LoadDoneMsg{Err: err}
		}
		if err := builder.Initialize(ctx); err != nil {
			return LoadDoneMsg{Err: err}
		}
		return LoadDoneMsg{Builder: builder}
	}
}

// render runs the builder in the background.
func (m Model) render() tea.Cmd {
	builder := m.builder
	ctx := m.ctx

	return func() tea.Msg {
		if builder == nil {
			return RenderDoneMsg{Err: fmt.Errorf("content not loaded")}
		}
		results, err := builder.Build(ctx)
		return RenderDoneMsg{Results: results, Err: err}
	}
}

// Run starts the TUI application.
func Run() error {
	settings := config.DefaultSettings()
	if err := settings.ApplyEnv(); err != nil {
		return err
	}

	p := tea.NewProgram(NewModel(settings), tea.WithAltScreen())
	_, err := p.Run()
	return err
}
