package ui

import (
	"context"
	"errors"
	"fmt"
	"strings"
	"time"

	"github.com/charmbracelet/bubbles/help"
	"github.com/charmbracelet/bubbles/key"
	tea "github.com/charmbracelet/bubbletea"
	"github.com/charmbracelet/lipgloss"
	"go.uber.org/zap"

	"github.com/five82/betterrest/internal/bedtime"
	"github.com/five82/betterrest/internal/prefs"
	"github.com/five82/betterrest/internal/state"
)

// Options configures the UI.
type Options struct {
	Context    context.Context
	Calculator *bedtime.Calculator
	Store      *state.Store
	Defaults   bedtime.Inputs
	ThemeName  string
	Clock      bedtime.ClockFormat
	PrefsPath  string
	Logger     *zap.Logger
}

// Model is the root application state for Bubble Tea.
type Model struct {
	// Configuration
	calc      *bedtime.Calculator
	store     *state.Store
	defaults  bedtime.Inputs
	prefsPath string
	logger    *zap.Logger
	keys      keyMap
	help      help.Model

	// UI state
	theme    Theme
	clock    bedtime.ClockFormat
	width    int
	height   int
	showHelp bool

	// Input state
	inputs  bedtime.Inputs
	focused field
	seq     int

	// Output state
	display  bedtime.Display
	snapshot state.Snapshot
}

// New creates a new Bubble Tea model.
func New(opts Options) Model {
	store := opts.Store
	if store == nil {
		store = &state.Store{}
	}

	logger := opts.Logger
	if logger == nil {
		logger = zap.NewNop()
	}

	defaults := opts.Defaults
	if defaults.Wake.IsZero() {
		defaults = bedtime.DefaultInputs(time.Now())
	}

	clock := opts.Clock
	if clock == "" {
		clock = bedtime.Clock12h
	}

	prefsPath := opts.PrefsPath
	if prefsPath == "" {
		prefsPath = prefs.DefaultPath()
	}

	return Model{
		calc:      opts.Calculator,
		store:     store,
		defaults:  defaults,
		prefsPath: prefsPath,
		logger:    logger,
		keys:      DefaultKeyMap(),
		help:      help.New(),
		theme:     GetTheme(opts.ThemeName),
		clock:     clock,
		inputs:    defaults,
		focused:   fieldWake,
	}
}

// Init implements tea.Model. The first bedtime is calculated immediately.
func (m Model) Init() tea.Cmd {
	return calculateCmd(m.calc, m.seq, m.inputs)
}

// Update implements tea.Model.
func (m Model) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	switch msg := msg.(type) {
	case tea.KeyMsg:
		return m.handleKey(msg)

	case tea.WindowSizeMsg:
		m.width = msg.Width
		m.height = msg.Height
		m.help.Width = msg.Width
		return m, nil

	case recalcMsg:
		if msg.seq != m.seq {
			return m, nil
		}
		return m, calculateCmd(m.calc, msg.seq, m.inputs)

	case resultMsg:
		if msg.seq != m.seq {
			return m, nil
		}
		m.applyResult(msg)
		return m, nil
	}

	return m, nil
}

// handleKey processes keyboard input.
func (m Model) handleKey(msg tea.KeyMsg) (tea.Model, tea.Cmd) {
	if m.showHelp {
		// Any key closes help
		m.showHelp = false
		return m, nil
	}

	switch {
	case key.Matches(msg, m.keys.Quit):
		return m, tea.Quit

	case key.Matches(msg, m.keys.Help):
		m.showHelp = true
		return m, nil

	case key.Matches(msg, m.keys.CycleTheme):
		m.theme = GetTheme(NextTheme(m.theme.Name))
		m.savePrefs()
		return m, nil

	case key.Matches(msg, m.keys.ToggleClock):
		m.clock = m.clock.Toggle()
		if !m.display.Failed && m.snapshot.HasResult {
			m.display = bedtime.Present(m.snapshot.Result, nil, m.clock)
		}
		m.savePrefs()
		return m, nil

	case key.Matches(msg, m.keys.NextField):
		m.focused = m.focused.next()
		return m, nil

	case key.Matches(msg, m.keys.PrevField):
		m.focused = m.focused.prev()
		return m, nil

	case key.Matches(msg, m.keys.Reset):
		return m.setInputs(m.defaults)

	case key.Matches(msg, m.keys.Increase):
		return m.setInputs(adjust(m.inputs, m.focused, 1, false))

	case key.Matches(msg, m.keys.Decrease):
		return m.setInputs(adjust(m.inputs, m.focused, -1, false))

	case key.Matches(msg, m.keys.IncreaseBig):
		return m.setInputs(adjust(m.inputs, m.focused, 1, true))

	case key.Matches(msg, m.keys.DecreaseBig):
		return m.setInputs(adjust(m.inputs, m.focused, -1, true))
	}

	return m, nil
}

// setInputs replaces the input tuple and schedules a debounced recalculation.
// Unchanged inputs (e.g. a clamped stepper) schedule nothing.
func (m Model) setInputs(in bedtime.Inputs) (tea.Model, tea.Cmd) {
	if in.Wake.Equal(m.inputs.Wake) && in.SleepGoal == m.inputs.SleepGoal && in.Coffee == m.inputs.Coffee {
		return m, nil
	}
	m.inputs = in
	m.seq++
	return m, debounceCmd(m.seq)
}

func (m *Model) applyResult(msg resultMsg) {
	if msg.err != nil {
		m.store.Update(nil, msg.err)
	} else {
		m.store.Update(&msg.result, nil)
	}
	m.snapshot = m.store.Snapshot()
	m.display = bedtime.Present(msg.result, msg.err, m.clock)
}

func (m Model) savePrefs() {
	p := prefs.Prefs{Theme: m.theme.Name, Clock: m.clock}
	if err := prefs.Save(m.prefsPath, p); err != nil {
		m.logger.Warn("save prefs failed", zap.String("path", m.prefsPath), zap.Error(err))
	}
}

// View implements tea.Model.
func (m Model) View() string {
	if m.showHelp {
		return m.renderHelp()
	}

	styles := m.theme.Styles()

	inputs := m.renderInputs(styles)
	result := m.renderResult(styles)

	var body string
	if m.width > 0 && m.width < layoutCompactWidth {
		body = lipgloss.JoinVertical(lipgloss.Left, inputs, result)
	} else {
		body = lipgloss.JoinHorizontal(lipgloss.Center, inputs, "  ", result)
	}

	return lipgloss.JoinVertical(lipgloss.Left,
		m.renderHeader(styles),
		"",
		body,
		"",
		m.renderFooter(styles),
	)
}

func (m Model) renderHeader(styles Styles) string {
	bg := NewBgStyle(m.theme.Surface)
	parts := []string{
		bg.Render("BetterRest", styles.Logo),
		bg.Render(fmt.Sprintf("%s clock", m.clock), styles.MutedText),
		bg.Render(m.theme.Name, styles.FaintText),
	}
	line := styles.Header.Render(bg.Join(parts, "  •  "))
	if m.width > 0 {
		return bg.FillLine(line, m.width)
	}
	return line
}

func (m Model) renderInputs(styles Styles) string {
	values := map[field]string{
		fieldWake:   bedtime.FormatClock(m.inputs.Wake, m.clock),
		fieldSleep:  formatSleepGoal(m.inputs.SleepGoal),
		fieldCoffee: formatCoffee(m.inputs.Coffee),
	}

	blocks := make([]string, 0, fieldCount)
	for f := fieldWake; f < fieldCount; f++ {
		box := styles.Field
		marker := "  "
		if f == m.focused {
			box = styles.FocusedField
			marker = "▸ "
		}
		content := styles.Text.Bold(true).Render(f.label()) + "\n" +
			styles.AccentText.Render(marker+values[f])
		blocks = append(blocks, box.Width(34).Render(content))
	}
	return lipgloss.JoinVertical(lipgloss.Left, blocks...)
}

func (m Model) renderResult(styles Styles) string {
	if m.display.Title == "" {
		return styles.Result.Render(styles.MutedText.Render("Calculating..."))
	}

	var b strings.Builder
	if m.display.Failed {
		b.WriteString(styles.DangerText.Render(m.display.Title))
		b.WriteString("\n\n")
		b.WriteString(styles.Text.Render(m.display.Message))
		if m.snapshot.HasResult {
			last := bedtime.FormatClock(m.snapshot.Result.Bedtime, m.clock)
			b.WriteString("\n\n")
			b.WriteString(styles.FaintText.Render("last bedtime " + last))
		}
		return styles.ResultFailed.Render(b.String())
	}

	b.WriteString(styles.MutedText.Render(m.display.Title))
	b.WriteString("\n\n")
	b.WriteString(styles.SuccessText.Render(m.display.Message))
	b.WriteString("\n\n")
	b.WriteString(styles.FaintText.Render(fmt.Sprintf("%.2f hours of sleep", m.snapshot.Result.ActualSleep)))
	return styles.Result.Render(b.String())
}

func (m Model) renderFooter(styles Styles) string {
	return styles.Footer.Render(m.help.View(m.keys))
}

// Messages

type recalcMsg struct{ seq int }

type resultMsg struct {
	seq    int
	result bedtime.Result
	err    error
}

// Commands

func debounceCmd(seq int) tea.Cmd {
	return tea.Tick(RecalcDebounce, func(time.Time) tea.Msg {
		return recalcMsg{seq: seq}
	})
}

func calculateCmd(calc *bedtime.Calculator, seq int, in bedtime.Inputs) tea.Cmd {
	return func() tea.Msg {
		res, err := calc.Calculate(in)
		return resultMsg{seq: seq, result: res, err: err}
	}
}

// Run starts the Bubble Tea program.
// It returns nil when the user quits or opts.Context is cancelled.
func Run(opts Options) error {
	ctx := opts.Context
	if ctx == nil {
		ctx = context.Background()
	}
	p := tea.NewProgram(New(opts), tea.WithAltScreen(), tea.WithContext(ctx))
	_, err := p.Run()
	if errors.Is(err, tea.ErrProgramKilled) && ctx.Err() != nil {
		return nil
	}
	return err
}
