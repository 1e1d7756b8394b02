// Package notify models transient toast notifications as events sent to a sink.
// The sink decides how a notification is shown and how long it lives.
package notify

import (
	"sync"
	"time"

	"github.com/google/uuid"
	"go.uber.org/zap"
)

// Variant selects the visual treatment of a notification.
type Variant int

const (
	VariantDefault Variant = iota
	VariantDestructive
)

func (v Variant) String() string {
	switch v {
	case VariantDestructive:
		return "destructive"
	default:
		return "default"
	}
}

// Notification is a single toast.
type Notification struct {
	ID          string
	Title       string
	Description string
	Variant     Variant
	At          time.Time
}

// New stamps a notification with an ID and the current time.
func New(title, description string, variant Variant) Notification {
	return Notification{
		ID:          uuid.NewString(),
		Title:       title,
		Description: description,
		Variant:     variant,
		At:          time.Now(),
	}
}

// Messages emitted by the widget.
func MissingInputs() Notification {
	return New("Missing inputs", "Please fill in both input fields to generate text.", VariantDestructive)
}

func Generated() Notification {
	return New("Text generated!", "Your creative text has been generated successfully.", VariantDefault)
}

func Copied() Notification {
	return New("Copied!", "Generated text copied to clipboard.", VariantDefault)
}

// Sink receives notifications.
type Sink interface {
	Notify(Notification)
}

// Func adapts a function to Sink.
type Func func(Notification)

func (f Func) Notify(n Notification) { f(n) }

// Discard drops every notification.
var Discard Sink = Func(func(Notification) {})

// Multi fans a notification out to every sink in order.
func Multi(sinks ...Sink) Sink {
	return Func(func(n Notification) {
		for _, s := range sinks {
			if s != nil {
				s.Notify(n)
			}
		}
	})
}

// LogSink writes notifications to a zap logger. Destructive notifications are
// logged at warn level.
type LogSink struct {
	Logger *zap.Logger
}

func (s LogSink) Notify(n Notification) {
	if s.Logger == nil {
		return
	}
	fields := []zap.Field{
		zap.String("notification_id", n.ID),
		zap.String("title", n.Title),
		zap.String("description", n.Description),
	}
	if n.Variant == VariantDestructive {
		s.Logger.Warn("notification", fields...)
		return
	}
	s.Logger.Info("notification", fields...)
}

// Recorder keeps every notification it receives. It is safe for concurrent use.
type Recorder struct {
	mu  sync.Mutex
	all []Notification
}

func (r *Recorder) Notify(n Notification) {
	r.mu.Lock()
	defer r.mu.Unlock()
	r.all = append(r.all, n)
}

// All returns a copy of the recorded notifications, oldest first.
func (r *Recorder) All() []Notification {
	r.mu.Lock()
	defer r.mu.Unlock()
	return append([]Notification(nil), r.all...)
}

// Last returns the most recent notification.
func (r *Recorder) Last() (Notification, bool) {
	r.mu.Lock()
	defer r.mu.Unlock()
	if len(r.all) == 0 {
		return Notification{}, false
	}
	return r.all[len(r.all)-1], true
}

// Titles lists recorded titles in order.
func (r *Recorder) Titles() []string {
	r.mu.Lock()
	defer r.mu.Unlock()
	out := make([]string, len(r.all))
	for i, n := range r.all {
		out[i] = n.Title
	}
	return out
}

// Reset forgets every recorded notification.
func (r *Recorder) Reset() {
	r.mu.Lock()
	defer r.mu.Unlock()
	r.all = nil
}
