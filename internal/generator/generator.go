// Package generator composes sentences from two user-supplied concepts.
//
// Generation is a fixed-delay uniform pick over a small set of templates
// followed by verbatim substitution of the concepts. There is no model and no
// network access; the delay exists so callers can present a pending state.
package generator

import (
	"context"
	"errors"
	"math/rand/v2"
	"strings"
	"sync"
	"time"

	"github.com/google/uuid"
	"go.uber.org/zap"
)

// DefaultDelay is the pause between a valid trigger and the composed result.
const DefaultDelay = 2 * time.Second

// ErrMissingInput is returned when either concept is empty or whitespace-only.
var ErrMissingInput = errors.New("please fill in both input fields to generate text")

// Concepts holds the two phrases combined into generated text.
type Concepts struct {
	First  string
	Second string
}

// Validate rejects concepts where either phrase is blank after trimming.
// No other constraint is applied.
func Validate(c Concepts) error {
	if strings.TrimSpace(c.First) == "" || strings.TrimSpace(c.Second) == "" {
		return ErrMissingInput
	}
	return nil
}

// Result is one completed generation.
type Result struct {
	ID            string
	Text          string
	TemplateIndex int
	Concepts      Concepts
}

// Generator picks templates and renders them.
// A Generator is safe for concurrent use.
type Generator struct {
	templates []Template
	delay     time.Duration
	logger    *zap.Logger

	mu  sync.Mutex
	rng *rand.Rand // nil uses the package-level source
}

// Option configures a Generator.
type Option func(*Generator)

// WithDelay overrides DefaultDelay. Negative values are treated as zero.
func WithDelay(d time.Duration) Option {
	return func(g *Generator) {
		if d < 0 {
			d = 0
		}
		g.delay = d
	}
}

// WithSeed makes template selection reproducible.
func WithSeed(seed uint64) Option {
	return func(g *Generator) {
		g.rng = rand.New(rand.NewPCG(seed, seed^0x9e3779b97f4a7c15))
	}
}

// WithLogger attaches a logger. The default is a no-op logger.
func WithLogger(l *zap.Logger) Option {
	return func(g *Generator) {
		if l != nil {
			g.logger = l
		}
	}
}

// WithTemplates replaces the built-in set. An empty slice is ignored.
func WithTemplates(ts []Template) Option {
	return func(g *Generator) {
		if len(ts) > 0 {
			g.templates = append([]Template(nil), ts...)
		}
	}
}

// New returns a Generator over the built-in templates.
func New(opts ...Option) *Generator {
	g := &Generator{
		templates: Templates(),
		delay:     DefaultDelay,
		logger:    zap.NewNop(),
	}
	for _, opt := range opts {
		opt(g)
	}
	return g
}

// Delay reports the configured pause before a result is produced.
func (g *Generator) Delay() time.Duration {
	return g.delay
}

// Templates returns a copy of the templates this generator draws from.
func (g *Generator) Templates() []Template {
	return append([]Template(nil), g.templates...)
}

// Pick returns a uniformly random template index.
func (g *Generator) Pick() int {
	n := len(g.templates)
	g.mu.Lock()
	defer g.mu.Unlock()
	if g.rng != nil {
		return g.rng.IntN(n)
	}
	return rand.IntN(n)
}

// Compose picks a template and renders c into it without waiting.
// Compose does not validate; callers that need validation use Generate.
func (g *Generator) Compose(c Concepts) Result {
	idx := g.Pick()
	res := Result{
		ID:            uuid.NewString(),
		Text:          g.templates[idx].Render(c),
		TemplateIndex: idx,
		Concepts:      c,
	}
	g.logger.Debug("composed text",
		zap.String("result_id", res.ID),
		zap.Int("template", idx),
	)
	return res
}

// Generate validates c, waits the configured delay, then composes a result.
// Invalid input returns ErrMissingInput without starting the timer.
// Cancelling ctx during the wait abandons the generation and returns ctx.Err().
func (g *Generator) Generate(ctx context.Context, c Concepts) (Result, error) {
	if err := Validate(c); err != nil {
		g.logger.Info("generation rejected", zap.Error(err))
		return Result{}, err
	}
	if err := g.Wait(ctx); err != nil {
		g.logger.Info("generation abandoned", zap.Error(err))
		return Result{}, err
	}

	res := g.Compose(c)
	g.logger.Info("generation complete",
		zap.String("result_id", res.ID),
		zap.Int("template", res.TemplateIndex),
	)
	return res, nil
}

// Wait blocks for the configured delay or until ctx is done.
func (g *Generator) Wait(ctx context.Context) error {
	if err := ctx.Err(); err != nil {
		return err
	}
	g.logger.Debug("generation pending", zap.Duration("delay", g.delay))
	timer := time.NewTimer(g.delay)
	defer timer.Stop()

	select {
	case <-ctx.Done():
		return ctx.Err()
	case <-timer.C:
		return nil
	}
}
