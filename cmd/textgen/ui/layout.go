package ui

// Layout constants for consistent spacing and dimensions
const (
	// Card borders and padding consume this many columns.
	CardChrome = 6
	// Horizontal padding inside a card.
	CardPadding = 4
	// Prompt and cursor cells a text input adds to its width.
	InputChrome = 3
	FieldGap    = 4

	// Below this width the two concept fields stack vertically.
	CompactModeWidth = 80

	MinContentWidth = 30
	MaxContentWidth = 100
	OutputHeight    = 5
	DefaultWidth    = 80
)

// LayoutConfig provides computed layout dimensions based on terminal size
type LayoutConfig struct {
	TerminalWidth  int
	TerminalHeight int
	IsCompact      bool
}

// NewLayoutConfig creates a layout configuration for the given terminal size
func NewLayoutConfig(width, height int) LayoutConfig {
	if width <= 0 {
		width = DefaultWidth
	}
	return LayoutConfig{
		TerminalWidth:  width,
		TerminalHeight: height,
		IsCompact:      width < CompactModeWidth,
	}
}

// ContentWidth is the width available inside a card, clamped to a readable range.
func (l LayoutConfig) ContentWidth() int {
	w := l.TerminalWidth - CardChrome
	if w > MaxContentWidth {
		w = MaxContentWidth
	}
	if w < MinContentWidth {
		w = MinContentWidth
	}
	return w
}

// InnerWidth is the width left for text inside a card.
func (l LayoutConfig) InnerWidth() int {
	return l.ContentWidth() - CardPadding
}

// FieldWidth is the text width of one concept input.
func (l LayoutConfig) FieldWidth() int {
	if l.IsCompact {
		return l.InnerWidth() - InputChrome
	}
	return (l.InnerWidth()-FieldGap)/2 - InputChrome
}

// MaxOutputHeight caps the output area at half the terminal so the rest of the
// form stays on screen. Zero means the terminal height is unknown and the
// output is shown in full.
func (l LayoutConfig) MaxOutputHeight() int {
	if l.TerminalHeight <= 0 {
		return 0
	}
	if h := l.TerminalHeight / 2; h > OutputHeight {
		return h
	}
	return OutputHeight
}
