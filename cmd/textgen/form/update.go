package form

import (
	"errors"
	"time"

	"textgen/internal/generator"

	"github.com/charmbracelet/bubbles/key"
	"github.com/charmbracelet/bubbles/spinner"
	tea "github.com/charmbracelet/bubbletea"
	"go.uber.org/zap"
)

// Update routes messages to the widget and the bubbles components.
func (m Model) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	switch msg := msg.(type) {
	case tea.WindowSizeMsg:
		return m.resize(msg.Width, msg.Height), nil

	case generationDueMsg:
		return m.resolve()

	case toastExpiredMsg:
		return m.expireToast(msg.id), nil

	case spinner.TickMsg:
		// Let the spinner stop once nothing is pending.
		if !m.widget.Pending() {
			return m, nil
		}
		var cmd tea.Cmd
		m.spinner, cmd = m.spinner.Update(msg)
		return m, cmd

	case tea.KeyMsg:
		return m.handleKeyMsg(msg)
	}

	return m.updateFocusedInput(msg)
}

// handleKeyMsg processes keyboard input. Global bindings win over the
// focused control.
func (m Model) handleKeyMsg(msg tea.KeyMsg) (tea.Model, tea.Cmd) {
	switch {
	case key.Matches(msg, m.keys.Quit):
		m.logger.Debug("quit", zap.Bool("pending", m.widget.Pending()))
		if m.widget.Pending() {
			m.widget.Abandon()
		}
		m.quitting = true
		return m, tea.Quit

	case key.Matches(msg, m.keys.Generate):
		return m.trigger()

	case key.Matches(msg, m.keys.Clear):
		return m.reset(), nil

	case key.Matches(msg, m.keys.Copy):
		return m.copyOutput()

	case key.Matches(msg, m.keys.ScrollUp, m.keys.ScrollDown):
		var cmd tea.Cmd
		m.output, cmd = m.output.Update(msg)
		return m, cmd

	case key.Matches(msg, m.keys.Example):
		return m.applyExample(msg), nil

	case key.Matches(msg, m.keys.Next):
		return m.cycleFocus(1), nil

	case key.Matches(msg, m.keys.Prev):
		return m.cycleFocus(-1), nil

	case key.Matches(msg, m.keys.Activate):
		switch m.focus {
		case focusClear:
			return m.reset(), nil
		case focusCopy:
			return m.copyOutput()
		default:
			return m.trigger()
		}
	}

	return m.updateFocusedInput(msg)
}

// updateFocusedInput forwards msg to the focused concept field and mirrors
// its value into the widget.
func (m Model) updateFocusedInput(msg tea.Msg) (tea.Model, tea.Cmd) {
	if m.focus != focusFirst && m.focus != focusSecond {
		return m, nil
	}
	i := int(m.focus)
	var cmd tea.Cmd
	m.inputs[i], cmd = m.inputs[i].Update(msg)
	m.syncWidget()
	return m, cmd
}

func (m Model) syncWidget() {
	m.widget.SetFirst(m.inputs[0].Value())
	m.widget.SetSecond(m.inputs[1].Value())
}

// trigger starts a generation cycle. While one is pending the trigger is
// disabled and the key press is ignored.
func (m Model) trigger() (tea.Model, tea.Cmd) {
	if m.widget.Pending() {
		return m, nil
	}
	m.syncWidget()
	err := m.widget.Trigger()
	m, toastCmd := m.flushToasts()
	if err != nil {
		if !errors.Is(err, generator.ErrMissingInput) {
			m.logger.Warn("trigger failed", zap.Error(err))
		}
		return m, toastCmd
	}

	delay := m.widget.Generator().Delay()
	due := tea.Tick(delay, func(time.Time) tea.Msg { return generationDueMsg{} })
	return m, tea.Batch(toastCmd, due, m.spinner.Tick)
}

// resolve finishes the pending generation when its delay elapses.
func (m Model) resolve() (tea.Model, tea.Cmd) {
	if _, ok := m.widget.Resolve(); !ok {
		return m, nil
	}
	m = m.showOutput(m.widget.Output())
	m.keys.Copy.SetEnabled(true)
	m.keys.ScrollUp.SetEnabled(true)
	m.keys.ScrollDown.SetEnabled(true)
	return m.flushToasts()
}

// reset clears both fields and the output. A pending generation is left
// running and will fill the output again when it resolves.
func (m Model) reset() Model {
	m.widget.Reset()
	for i := range m.inputs {
		m.inputs[i].Reset()
	}
	m = m.showOutput("")
	m.keys.Copy.SetEnabled(false)
	m.keys.ScrollUp.SetEnabled(false)
	m.keys.ScrollDown.SetEnabled(false)
	return m.setFocus(focusFirst)
}

func (m Model) copyOutput() (tea.Model, tea.Cmd) {
	if !m.widget.Copy() {
		return m, nil
	}
	return m.flushToasts()
}

// applyExample fills both fields with one of the suggested combinations.
func (m Model) applyExample(msg tea.KeyMsg) Model {
	if len(msg.Runes) != 1 {
		return m
	}
	idx := int(msg.Runes[0] - '1')
	examples := generator.Examples()
	if idx < 0 || idx >= len(examples) {
		return m
	}
	ex := examples[idx]
	m.inputs[0].SetValue(ex.First)
	m.inputs[1].SetValue(ex.Second)
	m.syncWidget()
	return m
}
