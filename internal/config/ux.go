package config

import "time"

// Theme names accepted in ui.theme.
const (
	ThemeAuto  = "auto"
	ThemeLight = "light"
	ThemeDark  = "dark"
)

// UIConfig holds terminal interface configuration.
type UIConfig struct {
	// Theme is auto, light or dark. Auto inspects the terminal.
	Theme string `yaml:"theme"`

	// ToastDuration is how long a notification stays on screen.
	ToastDuration string `yaml:"toast_duration"`

	// MaxToasts caps the number of notifications shown at once.
	MaxToasts int `yaml:"max_toasts"`

	// ShowExamples toggles the example combinations panel.
	ShowExamples bool `yaml:"show_examples"`
}

// DefaultUIConfig returns sensible UI defaults.
func DefaultUIConfig() *UIConfig {
	return &UIConfig{
		Theme:         ThemeAuto,
		ToastDuration: "4s",
		MaxToasts:     3,
		ShowExamples:  true,
	}
}

// GetToastDuration returns the toast lifetime as a duration.
func (u UIConfig) GetToastDuration() time.Duration {
	d, err := time.ParseDuration(u.ToastDuration)
	if err != nil || d <= 0 {
		return 4 * time.Second
	}
	return d
}
