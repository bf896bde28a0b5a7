package renderer

import (
	"testing"

	"github.com/charmbracelet/lipgloss"
)

func TestClassifyRanges(t *testing.T) {
	tests := []struct {
		name  string
		lower int
		upper int
		glyph string
		color lipgloss.TerminalColor
	}{
		{"thunderstorm", 200, 300, "💥", lipgloss.ANSIColor(1)},
		{"drizzle", 300, 400, "🌧️", lipgloss.ANSIColor(6)},
		{"rain", 500, 600, "💧", lipgloss.ANSIColor(4)},
		{"snow", 600, 700, "⛄️", lipgloss.ANSIColor(7)},
		{"atmosphere", 700, 800, "🌀", lipgloss.ANSIColor(4)},
		{"clear", 800, 801, "🌞", lipgloss.ANSIColor(3)},
		{"cloudy", 801, 900, "🌥️", lipgloss.ANSIColor(7)},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			for code := tt.lower; code < tt.upper; code++ {
				got := Classify(code)
				if got.Glyph != tt.glyph {
					t.Fatalf("Classify(%d) glyph = %q, want %q", code, got.Glyph, tt.glyph)
				}
				if got.Color != tt.color {
					t.Fatalf("Classify(%d) color = %v, want %v", code, got.Color, tt.color)
				}
				if ConditionName(code) != tt.name {
					t.Fatalf("ConditionName(%d) = %s, want %s", code, ConditionName(code), tt.name)
				}
			}
		})
	}
}

func TestClassifyFallback(t *testing.T) {
	for _, code := range []int{-1, 0, 199, 400, 450, 499, 900, 950, 1000} {
		got := Classify(code)
		if got.Glyph != "" || got.Plain != "" {
			t.Errorf("Classify(%d) = %+v, want no glyph", code, got)
		}
		if _, ok := got.Color.(lipgloss.NoColor); !ok {
			t.Errorf("Classify(%d) color = %v, want NoColor", code, got.Color)
		}
		if ConditionName(code) != "unknown" {
			t.Errorf("ConditionName(%d) = %s, want unknown", code, ConditionName(code))
		}
	}
}

func TestClassifyPlainFallbacks(t *testing.T) {
	for _, c := range conditionTable {
		if c.params.Plain == "" {
			t.Errorf("%s has no plain fallback", c.name)
		}
	}
}
