package form

import (
	"fmt"
	"strings"

	"textgen/cmd/textgen/ui"
	"textgen/internal/generator"
	"textgen/internal/notify"

	"github.com/charmbracelet/lipgloss"
)

const (
	labelFirst    = "First Concept"
	labelSecond   = "Second Concept"
	labelOutput   = "Generated Text"
	buttonGen     = "✦ Generate Text"
	buttonPending = "Generating..."
	buttonClear   = "Clear All"
	buttonCopy    = "⧉ Copy"
)

// View renders the whole form.
func (m Model) View() string {
	if m.quitting {
		return ""
	}

	sections := []string{
		m.renderHeader(),
		m.renderInputCard(),
	}
	if m.widget.Output() != "" {
		sections = append(sections, m.renderOutputCard())
	}
	if len(m.toasts) > 0 {
		sections = append(sections, m.renderToasts())
	}
	if m.showExamples {
		sections = append(sections, m.renderExamples())
	}
	sections = append(sections, m.styles.Footer.Render(m.help.View(m.keys)))

	return lipgloss.JoinVertical(lipgloss.Left, sections...)
}

func (m Model) renderHeader() string {
	return lipgloss.JoinVertical(lipgloss.Left,
		m.styles.Title(),
		m.styles.Subtitle.Render("Combine two concepts to create unique, creative text"),
	)
}

func (m Model) renderField(i int, label string) string {
	style := m.styles.Label
	if m.focus == focusTarget(i) {
		style = m.styles.FocusedLabel
	}
	return lipgloss.JoinVertical(lipgloss.Left,
		style.Render(label),
		m.inputs[i].View(),
	)
}

func (m Model) renderButton(label string, target focusTarget, disabled bool) string {
	switch {
	case disabled:
		return m.styles.DisabledButton.Render(label)
	case m.focus == target:
		return m.styles.FocusedButton.Render(label)
	default:
		return m.styles.Button.Render(label)
	}
}

func (m Model) renderInputCard() string {
	first := m.renderField(0, labelFirst)
	second := m.renderField(1, labelSecond)

	var fields string
	if m.layout.IsCompact {
		fields = lipgloss.JoinVertical(lipgloss.Left, first, "", second)
	} else {
		gap := strings.Repeat(" ", ui.FieldGap)
		fields = lipgloss.JoinHorizontal(lipgloss.Top, first, gap, second)
	}

	generate := m.renderButton(buttonGen, focusGenerate, false)
	if m.widget.Pending() {
		generate = m.renderButton(m.spinner.View()+" "+buttonPending, focusGenerate, true)
	}
	buttons := lipgloss.JoinHorizontal(lipgloss.Center,
		generate,
		m.renderButton(buttonClear, focusClear, false),
	)

	body := lipgloss.JoinVertical(lipgloss.Left, fields, "", buttons)
	return m.styles.Card.Width(m.layout.ContentWidth()).Render(body)
}

func (m Model) renderOutputCard() string {
	header := lipgloss.JoinHorizontal(lipgloss.Center,
		m.styles.Label.Render(labelOutput),
		"  ",
		m.renderButton(buttonCopy, focusCopy, false),
	)
	body := lipgloss.JoinVertical(lipgloss.Left,
		header,
		m.styles.RenderDivider(m.layout.InnerWidth()),
		m.output.View(),
	)
	return m.styles.Card.Width(m.layout.ContentWidth()).Render(body)
}

func (m Model) renderToasts() string {
	var rendered []string
	for _, t := range m.toasts {
		style := m.styles.Toast
		if t.Variant == notify.VariantDestructive {
			style = m.styles.ToastDestructive
		}
		text := m.styles.ToastTitle.Render(t.Title) + "\n" + t.Description
		rendered = append(rendered, style.Render(text))
	}
	return lipgloss.JoinVertical(lipgloss.Left, rendered...)
}

func (m Model) renderExamples() string {
	examples := generator.Examples()
	var left, right []string
	half := (len(examples) + 1) / 2
	for i, ex := range examples {
		line := fmt.Sprintf("%s %s %s",
			m.styles.Bullet.Render("•"),
			m.styles.Muted.Render(ex.String()),
			m.styles.Muted.Faint(true).Render(fmt.Sprintf("(alt+%d)", i+1)),
		)
		if i < half {
			left = append(left, line)
		} else {
			right = append(right, line)
		}
	}

	var grid string
	if m.layout.IsCompact {
		grid = lipgloss.JoinVertical(lipgloss.Left, append(left, right...)...)
	} else {
		grid = lipgloss.JoinHorizontal(lipgloss.Top,
			lipgloss.JoinVertical(lipgloss.Left, left...),
			"    ",
			lipgloss.JoinVertical(lipgloss.Left, right...),
		)
	}
	title := m.styles.Label.Render("Try these example combinations:")
	return m.styles.Card.Width(m.layout.ContentWidth()).Render(
		lipgloss.JoinVertical(lipgloss.Left, title, "", grid),
	)
}
