package ui

import (
	"strings"
	"testing"
)

func TestDetectTheme(t *testing.T) {
	t.Setenv("COLORFGBG", "")
	t.Setenv("TEXTGEN_DARK_MODE", "1")
	dark := DetectTheme()
	if !dark.IsDark {
		t.Fatalf("expected dark theme when TEXTGEN_DARK_MODE=1")
	}

	t.Setenv("TEXTGEN_DARK_MODE", "")
	light := DetectTheme()
	if light.IsDark {
		t.Fatalf("expected light theme when TEXTGEN_DARK_MODE is unset")
	}

	t.Setenv("COLORFGBG", "15;0")
	if !DetectTheme().IsDark {
		t.Fatalf("expected dark theme for COLORFGBG=15;0")
	}
}

func TestThemeByName(t *testing.T) {
	if !ThemeByName("dark").IsDark {
		t.Error("dark should be dark")
	}
	if ThemeByName("LIGHT").IsDark {
		t.Error("light should be light")
	}
}

func TestRenderDivider(t *testing.T) {
	s := NewStyles(LightTheme())
	if !strings.Contains(s.RenderDivider(3), "───") {
		t.Errorf("unexpected divider %q", s.RenderDivider(3))
	}
	if s.RenderDivider(0) == "" {
		t.Error("divider should never be empty")
	}
}

func TestLayout(t *testing.T) {
	l := NewLayoutConfig(200, 50)
	if l.IsCompact {
		t.Error("200 columns is not compact")
	}
	if l.ContentWidth() != MaxContentWidth {
		t.Errorf("content width should clamp to %d, got %d", MaxContentWidth, l.ContentWidth())
	}

	small := NewLayoutConfig(10, 10)
	if !small.IsCompact || small.ContentWidth() != MinContentWidth {
		t.Errorf("unexpected small layout %+v width=%d", small, small.ContentWidth())
	}

	if NewLayoutConfig(0, 0).TerminalWidth != DefaultWidth {
		t.Error("zero width should fall back to default")
	}
}

func TestLayout_FieldsFitInsideCard(t *testing.T) {
	for _, w := range []int{40, 79, 80, 120, 300} {
		l := NewLayoutConfig(w, 30)
		total := l.FieldWidth() + InputChrome
		if !l.IsCompact {
			total = 2*total + FieldGap
		}
		if total > l.InnerWidth() {
			t.Errorf("width %d: fields need %d columns, card has %d", w, total, l.InnerWidth())
		}
	}
}

func TestLayout_MaxOutputHeight(t *testing.T) {
	cases := []struct {
		height, want int
	}{
		{0, 0},
		{6, OutputHeight},
		{20, 10},
		{50, 25},
	}
	for _, c := range cases {
		if got := NewLayoutConfig(80, c.height).MaxOutputHeight(); got != c.want {
			t.Errorf("height %d: expected %d, got %d", c.height, c.want, got)
		}
	}
}
