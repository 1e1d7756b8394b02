// Package ui provides the visual styling for the textgen terminal form.
// Light and dark palettes, selected from config or terminal detection.
package ui

import (
	"os"
	"strconv"
	"strings"

	"github.com/charmbracelet/lipgloss"
)

var (
	// Light Mode Colors (Default)
	LightForeground = lipgloss.Color("#1b1530")
	LightPrimary    = lipgloss.Color("#7c3aed") // Violet
	LightAccent     = lipgloss.Color("#db2777") // Pink, gradient end
	LightMuted      = lipgloss.Color("#6b7280")
	LightBorder     = lipgloss.Color("#d9d6e8")

	// Dark Mode Colors
	DarkForeground = lipgloss.Color("#f2f0fa")
	DarkPrimary    = lipgloss.Color("#a78bfa")
	DarkAccent     = lipgloss.Color("#f472b6")
	DarkMuted      = lipgloss.Color("#9ca3af")
	DarkBorder     = lipgloss.Color("#3b3355")

	// Semantic Colors (same in both modes)
	Destructive = lipgloss.Color("#e53935")
	Success     = lipgloss.Color("#22c55e")
)

// Theme holds the current color scheme
type Theme struct {
	Foreground lipgloss.Color
	Primary    lipgloss.Color
	Accent     lipgloss.Color
	Muted      lipgloss.Color
	Border     lipgloss.Color
	IsDark     bool
}

// LightTheme returns the light mode theme
func LightTheme() Theme {
	return Theme{
		Foreground: LightForeground,
		Primary:    LightPrimary,
		Accent:     LightAccent,
		Muted:      LightMuted,
		Border:     LightBorder,
	}
}

// DarkTheme returns the dark mode theme
func DarkTheme() Theme {
	return Theme{
		Foreground: DarkForeground,
		Primary:    DarkPrimary,
		Accent:     DarkAccent,
		Muted:      DarkMuted,
		Border:     DarkBorder,
		IsDark:     true,
	}
}

// DetectTheme inspects COLORFGBG and TEXTGEN_DARK_MODE, defaulting to light.
func DetectTheme() Theme {
	if os.Getenv("TEXTGEN_DARK_MODE") == "1" {
		return DarkTheme()
	}

	// Format is usually "foreground;background"; 0-6 and 8 are dark backgrounds.
	if parts := strings.Split(os.Getenv("COLORFGBG"), ";"); len(parts) == 2 {
		if bgIdx, err := strconv.Atoi(parts[1]); err == nil {
			if (bgIdx >= 0 && bgIdx <= 6) || bgIdx == 8 {
				return DarkTheme()
			}
		}
	}

	return LightTheme()
}

// ThemeByName resolves "light", "dark" or anything else (auto) to a Theme.
func ThemeByName(name string) Theme {
	switch strings.ToLower(name) {
	case "light":
		return LightTheme()
	case "dark":
		return DarkTheme()
	default:
		return DetectTheme()
	}
}

// Styles holds all the styled components
type Styles struct {
	Theme Theme

	// Layout
	Header   lipgloss.Style
	Subtitle lipgloss.Style
	Card     lipgloss.Style
	Footer   lipgloss.Style

	// Text
	Label        lipgloss.Style
	FocusedLabel lipgloss.Style
	Muted        lipgloss.Style
	Bullet       lipgloss.Style

	// Controls
	Button         lipgloss.Style
	FocusedButton  lipgloss.Style
	DisabledButton lipgloss.Style
	Spinner        lipgloss.Style

	// Toasts
	Toast            lipgloss.Style
	ToastDestructive lipgloss.Style
	ToastTitle       lipgloss.Style
}

// NewStyles creates a new Styles instance with the given theme
func NewStyles(theme Theme) Styles {
	button := lipgloss.NewStyle().
		Padding(0, 2).
		MarginRight(1).
		Border(lipgloss.RoundedBorder()).
		BorderForeground(theme.Border).
		Foreground(theme.Foreground)

	toast := lipgloss.NewStyle().
		Padding(0, 1).
		Border(lipgloss.RoundedBorder()).
		BorderForeground(theme.Border).
		Foreground(theme.Foreground)

	return Styles{
		Theme: theme,

		Header: lipgloss.NewStyle().
			Foreground(theme.Primary).
			Bold(true),

		Subtitle: lipgloss.NewStyle().
			Foreground(theme.Muted),

		Card: lipgloss.NewStyle().
			Border(lipgloss.RoundedBorder()).
			BorderForeground(theme.Border).
			Padding(1, 2),

		Footer: lipgloss.NewStyle().
			Foreground(theme.Muted).
			Padding(0, 1),

		Label: lipgloss.NewStyle().
			Foreground(theme.Foreground).
			Bold(true),

		FocusedLabel: lipgloss.NewStyle().
			Foreground(theme.Primary).
			Bold(true),

		Muted: lipgloss.NewStyle().
			Foreground(theme.Muted),

		Bullet: lipgloss.NewStyle().
			Foreground(theme.Primary),

		Button: button,

		FocusedButton: button.
			BorderForeground(theme.Primary).
			Foreground(theme.Primary).
			Bold(true),

		DisabledButton: button.
			Foreground(theme.Muted).
			Faint(true),

		Spinner: lipgloss.NewStyle().
			Foreground(theme.Accent),

		Toast: toast.
			BorderForeground(Success),

		ToastDestructive: toast.
			BorderForeground(Destructive).
			Foreground(Destructive),

		ToastTitle: lipgloss.NewStyle().
			Bold(true),
	}
}

// DefaultStyles returns styles for the detected theme
func DefaultStyles() Styles {
	return NewStyles(DetectTheme())
}

// Title renders the sparkle header line.
func (s Styles) Title() string {
	return s.Header.Render("✦ AI Text Generator")
}

// RenderDivider returns a horizontal divider
func (s Styles) RenderDivider(width int) string {
	if width < 1 {
		width = 1
	}
	return s.Muted.Render(strings.Repeat("─", width))
}
