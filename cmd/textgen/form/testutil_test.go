package form

import (
	"testing"
	"time"

	"textgen/cmd/textgen/ui"
	"textgen/internal/clipboard"
	"textgen/internal/generator"
	"textgen/internal/notify"

	tea "github.com/charmbracelet/bubbletea"
)

// testHarness bundles a model with the fakes it was built from.
type testHarness struct {
	m    Model
	clip *clipboard.Memory
	rec  *notify.Recorder
}

func newHarness(t *testing.T) *testHarness {
	t.Helper()
	styles := ui.NewStyles(ui.LightTheme())
	h := &testHarness{
		clip: &clipboard.Memory{},
		rec:  &notify.Recorder{},
	}
	h.m = New(Config{
		Generator:     generator.New(generator.WithDelay(10*time.Millisecond), generator.WithSeed(3)),
		Clipboard:     h.clip,
		Sink:          h.rec,
		Styles:        &styles,
		ToastDuration: time.Second,
		MaxToasts:     2,
		ShowExamples:  true,
	})
	return h
}

func (h *testHarness) send(msg tea.Msg) tea.Cmd {
	next, cmd := h.m.Update(msg)
	h.m = next.(Model)
	return cmd
}

func (h *testHarness) typeText(s string) {
	h.send(tea.KeyMsg{Type: tea.KeyRunes, Runes: []rune(s)})
}

func (h *testHarness) press(k tea.KeyType) tea.Cmd {
	return h.send(tea.KeyMsg{Type: k})
}

// fill types into both concept fields, leaving focus on the second.
func (h *testHarness) fill(first, second string) {
	h.m = h.m.setFocus(focusFirst)
	h.typeText(first)
	h.press(tea.KeyTab)
	h.typeText(second)
}
