// Package form is the interactive terminal rendition of the text generator
// widget: two concept fields, a generate button with a pending state, a
// read-only output area with copy, a clear-all button and toast
// notifications.
package form

import (
	"time"

	"textgen/cmd/textgen/ui"
	"textgen/internal/clipboard"
	"textgen/internal/generator"
	"textgen/internal/notify"
	"textgen/internal/widget"

	"github.com/charmbracelet/bubbles/help"
	"github.com/charmbracelet/bubbles/spinner"
	"github.com/charmbracelet/bubbles/textinput"
	"github.com/charmbracelet/bubbles/viewport"
	tea "github.com/charmbracelet/bubbletea"
	"github.com/charmbracelet/lipgloss"
	"go.uber.org/zap"
)

const (
	defaultToastTTL  = 4 * time.Second
	defaultMaxToasts = 3
)

// Config holds configuration for initializing the form.
type Config struct {
	Generator     *generator.Generator
	Clipboard     clipboard.Writer
	Logger        *zap.Logger
	Sink          notify.Sink // receives every notification in addition to the toast stack
	Styles        *ui.Styles
	ToastDuration time.Duration
	MaxToasts     int
	ShowExamples  bool
}

// focusTarget is the control that receives key input.
type focusTarget int

const (
	focusFirst focusTarget = iota
	focusSecond
	focusGenerate
	focusClear
	focusCopy
	focusCount
)

// generationDueMsg fires when the simulated delay elapses.
type generationDueMsg struct{}

// Model is the bubbletea model for the form.
type Model struct {
	// UI Components
	inputs  [2]textinput.Model
	output  viewport.Model
	spinner spinner.Model
	help    help.Model
	keys    keyMap

	// State
	widget *widget.Widget
	outbox *outbox
	toasts []toast
	focus  focusTarget

	// Layout
	width  int
	height int
	layout ui.LayoutConfig
	styles ui.Styles

	// Settings
	toastTTL     time.Duration
	maxToasts    int
	showExamples bool
	logger       *zap.Logger
	quitting     bool
}

// New builds a form model from cfg.
func New(cfg Config) Model {
	logger := cfg.Logger
	if logger == nil {
		logger = zap.NewNop()
	}
	styles := ui.DefaultStyles()
	if cfg.Styles != nil {
		styles = *cfg.Styles
	}
	ttl := cfg.ToastDuration
	if ttl <= 0 {
		ttl = defaultToastTTL
	}
	maxToasts := cfg.MaxToasts
	if maxToasts <= 0 {
		maxToasts = defaultMaxToasts
	}

	box := &outbox{}
	sinks := []notify.Sink{box}
	if cfg.Sink != nil {
		sinks = append(sinks, cfg.Sink)
	}
	w := widget.New(
		widget.WithGenerator(cfg.Generator),
		widget.WithClipboard(cfg.Clipboard),
		widget.WithSink(notify.Multi(sinks...)),
		widget.WithLogger(logger),
	)

	first := newConceptInput("e.g., artificial intelligence")
	first.Focus()
	second := newConceptInput("e.g., creative writing")

	sp := spinner.New()
	sp.Spinner = spinner.Dot
	sp.Style = styles.Spinner

	m := Model{
		inputs:       [2]textinput.Model{first, second},
		output:       viewport.New(ui.DefaultWidth, ui.OutputHeight),
		spinner:      sp,
		help:         help.New(),
		keys:         defaultKeyMap(),
		widget:       w,
		outbox:       box,
		styles:       styles,
		toastTTL:     ttl,
		maxToasts:    maxToasts,
		showExamples: cfg.ShowExamples,
		logger:       logger,
	}
	return m.resize(ui.DefaultWidth, 0)
}

func newConceptInput(placeholder string) textinput.Model {
	ti := textinput.New()
	ti.Placeholder = placeholder
	ti.CharLimit = 0
	ti.Prompt = "› "
	return ti
}

// Init starts the cursor blink.
func (m Model) Init() tea.Cmd {
	return textinput.Blink
}

// Widget exposes the underlying form state.
func (m Model) Widget() *widget.Widget {
	return m.widget
}

func (m Model) resize(width, height int) Model {
	m.width = width
	m.height = height
	m.layout = ui.NewLayoutConfig(width, height)
	fw := m.layout.FieldWidth()
	for i := range m.inputs {
		m.inputs[i].Width = fw
	}
	m.help.Width = m.layout.ContentWidth()
	return m.showOutput(m.widget.Output())
}

// showOutput wraps text to the card and sizes the output area to fit it,
// up to the layout's cap. Anything past the cap is reached with pgup/pgdown.
func (m Model) showOutput(text string) Model {
	width := m.layout.InnerWidth()
	wrapped := ""
	if text != "" {
		wrapped = lipgloss.NewStyle().Width(width).Render(text)
	}
	rows := max(lipgloss.Height(wrapped), ui.OutputHeight)
	if limit := m.layout.MaxOutputHeight(); limit > 0 && rows > limit {
		rows = limit
	}
	m.output.Width = width
	m.output.Height = rows
	m.output.SetContent(wrapped)
	m.output.GotoTop()
	return m
}

// setFocus moves key focus, skipping the copy button when there is no output.
func (m Model) setFocus(f focusTarget) Model {
	if f == focusCopy && m.widget.Output() == "" {
		f = focusFirst
	}
	m.focus = f
	for i := range m.inputs {
		if focusTarget(i) == f {
			m.inputs[i].Focus()
		} else {
			m.inputs[i].Blur()
		}
	}
	return m
}

func (m Model) cycleFocus(delta int) Model {
	n := int(focusCount)
	f := (int(m.focus) + delta + n) % n
	if focusTarget(f) == focusCopy && m.widget.Output() == "" {
		f = (f + delta + n) % n
	}
	return m.setFocus(focusTarget(f))
}

// Run starts the full-screen program and blocks until the user quits.
func Run(cfg Config) error {
	p := tea.NewProgram(New(cfg), tea.WithAltScreen())
	_, err := p.Run()
	return err
}
