// Package widget holds the state of one text-generator form: two concept
// inputs, the generated output and the pending flag, plus the transitions
// between them. Rendering is left to the caller.
//
// A generation cycle runs Idle -> Validating -> (Rejected -> Idle) or
// (Pending -> Complete -> Idle). Pending has exactly one exit: Resolve.
package widget

import (
	"context"
	"errors"

	"textgen/internal/clipboard"
	"textgen/internal/generator"
	"textgen/internal/notify"

	"go.uber.org/zap"
)

// ErrBusy is returned by Trigger while a generation is pending.
var ErrBusy = errors.New("generation already in progress")

// Phase is a step of the generation cycle.
type Phase int

const (
	PhaseIdle Phase = iota
	PhaseValidating
	PhaseRejected
	PhasePending
	PhaseComplete
)

func (p Phase) String() string {
	names := []string{"idle", "validating", "rejected", "pending", "complete"}
	if int(p) >= 0 && int(p) < len(names) {
		return names[p]
	}
	return "unknown"
}

// Widget is the form state. It is not safe for concurrent use; the owner
// (a bubbletea update loop or a single CLI goroutine) serializes access.
type Widget struct {
	first   string
	second  string
	output  string
	pending bool
	phase   Phase
	last    generator.Result

	gen    *generator.Generator
	sink   notify.Sink
	clip   clipboard.Writer
	logger *zap.Logger
}

// Option configures a Widget.
type Option func(*Widget)

func WithGenerator(g *generator.Generator) Option {
	return func(w *Widget) {
		if g != nil {
			w.gen = g
		}
	}
}

func WithSink(s notify.Sink) Option {
	return func(w *Widget) {
		if s != nil {
			w.sink = s
		}
	}
}

func WithClipboard(c clipboard.Writer) Option {
	return func(w *Widget) {
		if c != nil {
			w.clip = c
		}
	}
}

func WithLogger(l *zap.Logger) Option {
	return func(w *Widget) {
		if l != nil {
			w.logger = l
		}
	}
}

// New returns an idle widget with empty inputs.
func New(opts ...Option) *Widget {
	w := &Widget{
		sink:   notify.Discard,
		clip:   clipboard.System(),
		logger: zap.NewNop(),
	}
	for _, opt := range opts {
		opt(w)
	}
	if w.gen == nil {
		w.gen = generator.New(generator.WithLogger(w.logger))
	}
	return w
}

func (w *Widget) First() string  { return w.first }
func (w *Widget) Second() string { return w.second }

// Output is the generated text, or "" when nothing has been generated.
func (w *Widget) Output() string { return w.output }

// Pending reports whether a generation is waiting on its delay.
func (w *Widget) Pending() bool { return w.pending }

func (w *Widget) Phase() Phase { return w.phase }

// Last is the most recent completed result.
func (w *Widget) Last() generator.Result { return w.last }

// Generator exposes the template source, mainly for its Delay.
func (w *Widget) Generator() *generator.Generator { return w.gen }

func (w *Widget) SetFirst(s string)  { w.first = s }
func (w *Widget) SetSecond(s string) { w.second = s }

// Concepts is a snapshot of both inputs.
func (w *Widget) Concepts() generator.Concepts {
	return generator.Concepts{First: w.first, Second: w.second}
}

func (w *Widget) transition(to Phase) {
	w.logger.Debug("phase transition",
		zap.Stringer("from", w.phase),
		zap.Stringer("to", to),
	)
	w.phase = to
}

// Trigger starts a generation cycle. Blank input emits a warning
// notification, returns generator.ErrMissingInput and leaves every other
// field alone. Otherwise the widget becomes pending; the caller waits
// Generator().Delay() and then calls Resolve.
func (w *Widget) Trigger() error {
	if w.pending {
		return ErrBusy
	}
	w.transition(PhaseValidating)
	if err := generator.Validate(w.Concepts()); err != nil {
		w.transition(PhaseRejected)
		w.logger.Info("generation rejected", zap.Error(err))
		w.sink.Notify(notify.MissingInputs())
		w.transition(PhaseIdle)
		return err
	}
	w.pending = true
	w.transition(PhasePending)
	return nil
}

// Resolve completes a pending generation using the inputs as they are now,
// overwrites the output and emits a success notification. It reports false
// when nothing was pending.
func (w *Widget) Resolve() (generator.Result, bool) {
	if !w.pending {
		return generator.Result{}, false
	}
	res := w.gen.Compose(w.Concepts())
	w.output = res.Text
	w.last = res
	w.pending = false
	w.transition(PhaseComplete)
	w.logger.Info("generation complete",
		zap.String("result_id", res.ID),
		zap.Int("template", res.TemplateIndex),
	)
	w.sink.Notify(notify.Generated())
	w.transition(PhaseIdle)
	return res, true
}

// Abandon drops a pending generation without producing output. It is used
// when the owner is torn down before the delay elapses.
func (w *Widget) Abandon() {
	if !w.pending {
		return
	}
	w.pending = false
	w.logger.Info("generation abandoned")
	w.transition(PhaseIdle)
}

// Run performs a whole cycle: Trigger, wait the generator delay, Resolve.
// Cancelling ctx during the wait abandons the generation and returns ctx.Err().
func (w *Widget) Run(ctx context.Context) (generator.Result, error) {
	if err := w.Trigger(); err != nil {
		return generator.Result{}, err
	}
	if err := w.gen.Wait(ctx); err != nil {
		w.Abandon()
		return generator.Result{}, err
	}
	res, _ := w.Resolve()
	return res, nil
}

// Reset clears both inputs and the output. The pending flag is untouched, so
// a generation already waiting still resolves afterwards.
func (w *Widget) Reset() {
	w.first = ""
	w.second = ""
	w.output = ""
	w.logger.Debug("form reset", zap.Bool("pending", w.pending))
}

// Copy writes the output verbatim to the clipboard and emits a confirmation
// whether or not the write succeeded. It reports false, and does nothing,
// when there is no output to copy.
func (w *Widget) Copy() bool {
	if w.output == "" {
		return false
	}
	if err := w.clip.WriteAll(w.output); err != nil {
		w.logger.Debug("clipboard write failed", zap.Error(err))
	}
	w.sink.Notify(notify.Copied())
	return true
}
