package generator

import "strings"

// Slot markers substituted by Template.Render.
const (
	FirstSlot  = "{{first}}"
	SecondSlot = "{{second}}"
)

// Template is a sentence pattern with one FirstSlot and one SecondSlot.
type Template string

// builtinTemplates is the fixed template set. Order is stable; Result.TemplateIndex
// refers to positions in this slice.
var builtinTemplates = [...]Template{
	"In a world where {{first}} meets {{second}}, extraordinary things happen. The convergence creates new possibilities that were never thought possible before.",
	"Picture this: {{first}} and {{second}} coming together in perfect harmony. This unique combination sparks innovation and creativity beyond imagination.",
	"What if {{first}} could transform {{second}}? The result would be a revolutionary breakthrough that changes everything we know.",
	"The magic happens when {{first}} embraces {{second}}. Together, they create a symphony of innovation that resonates through time.",
	"Imagine a future where {{first}} and {{second}} work in perfect synchronization, creating outcomes that surpass all expectations.",
}

// Templates returns a copy of the built-in template set.
func Templates() []Template {
	out := make([]Template, len(builtinTemplates))
	copy(out, builtinTemplates[:])
	return out
}

// Render substitutes the concepts into the template verbatim.
// Replacement is single-pass, so a concept containing a slot marker is
// inserted literally and never re-expanded.
func (t Template) Render(c Concepts) string {
	r := strings.NewReplacer(FirstSlot, c.First, SecondSlot, c.Second)
	return r.Replace(string(t))
}

// Example is a suggested pair of concepts shown next to the form.
type Example struct {
	First  string
	Second string
}

// Concepts converts the example into generator input.
func (e Example) Concepts() Concepts {
	return Concepts{First: e.First, Second: e.Second}
}

func (e Example) String() string {
	return e.First + " + " + e.Second
}

var examples = [...]Example{
	{"Space exploration", "Ocean mysteries"},
	{"Quantum physics", "Music composition"},
	{"Ancient wisdom", "Modern technology"},
	{"Digital art", "Environmental conservation"},
	{"Virtual reality", "Education"},
	{"Robotics", "Human emotions"},
}

// Examples returns the suggested concept combinations.
func Examples() []Example {
	out := make([]Example, len(examples))
	copy(out, examples[:])
	return out
}
