package renderer

import "github.com/charmbracelet/lipgloss"

// Weather Condition Codes
// https://openweathermap.org/weather-conditions#Weather-Condition-Codes-2

// DisplayParams is how a condition is drawn in the terminal
type DisplayParams struct {
	Glyph string
	// Plain replaces Glyph when emoji are disabled
	Plain string
	Color lipgloss.TerminalColor
}

type conditionRange struct {
	lower, upper int
	name         string
	params       DisplayParams
}

// conditionTable is evaluated in order; ranges are half-open [lower, upper)
var conditionTable = []conditionRange{
	{200, 300, "thunderstorm", DisplayParams{"💥", "[STORM]", lipgloss.ANSIColor(1)}},
	{300, 400, "drizzle", DisplayParams{"🌧️", "[DRIZZLE]", lipgloss.ANSIColor(6)}},
	{500, 600, "rain", DisplayParams{"💧", "[RAIN]", lipgloss.ANSIColor(4)}},
	{600, 700, "snow", DisplayParams{"⛄️", "[SNOW]", lipgloss.ANSIColor(7)}},
	{700, 800, "atmosphere", DisplayParams{"🌀", "[MIST]", lipgloss.ANSIColor(4)}},
	{800, 801, "clear", DisplayParams{"🌞", "[CLEAR]", lipgloss.ANSIColor(3)}},
	{801, 900, "cloudy", DisplayParams{"🌥️", "[CLOUDS]", lipgloss.ANSIColor(7)}},
}

// fallbackParams: no glyph, terminal default color
var fallbackParams = DisplayParams{Color: lipgloss.NoColor{}}

// Classify maps a condition code to its display parameters
func Classify(code int) DisplayParams {
	if c, ok := lookup(code); ok {
		return c.params
	}
	return fallbackParams
}

// ConditionName returns the condition group for code, or "unknown"
func ConditionName(code int) string {
	if c, ok := lookup(code); ok {
		return c.name
	}
	return "unknown"
}

func lookup(code int) (conditionRange, bool) {
	for _, c := range conditionTable {
		if code >= c.lower && code < c.upper {
			return c, true
		}
	}
	return conditionRange{}, false
}
