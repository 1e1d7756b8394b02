package form

import (
	"time"

	"textgen/internal/notify"

	tea "github.com/charmbracelet/bubbletea"
)

// toastExpiredMsg removes a toast once its lifetime is over.
type toastExpiredMsg struct {
	id string
}

type toast struct {
	notify.Notification
}

// outbox collects notifications emitted by the widget during one Update
// so the model can turn them into toasts afterwards.
type outbox struct {
	queued []notify.Notification
}

func (o *outbox) Notify(n notify.Notification) {
	o.queued = append(o.queued, n)
}

func (o *outbox) drain() []notify.Notification {
	out := o.queued
	o.queued = nil
	return out
}

// flushToasts moves queued notifications onto the toast stack and schedules
// their expiry. Only the newest maxToasts stay visible.
func (m Model) flushToasts() (Model, tea.Cmd) {
	queued := m.outbox.drain()
	if len(queued) == 0 {
		return m, nil
	}

	var cmds []tea.Cmd
	for _, n := range queued {
		m.toasts = append(m.toasts, toast{Notification: n})
		id := n.ID
		cmds = append(cmds, tea.Tick(m.toastTTL, func(time.Time) tea.Msg {
			return toastExpiredMsg{id: id}
		}))
	}
	if over := len(m.toasts) - m.maxToasts; over > 0 {
		m.toasts = append([]toast(nil), m.toasts[over:]...)
	}
	return m, tea.Batch(cmds...)
}

func (m Model) expireToast(id string) Model {
	kept := m.toasts[:0:0]
	for _, t := range m.toasts {
		if t.ID != id {
			kept = append(kept, t)
		}
	}
	m.toasts = kept
	return m
}
