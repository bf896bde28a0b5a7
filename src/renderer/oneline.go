package renderer

import (
	"fmt"
	"io"
	"os"
	"strconv"
	"strings"
	"unicode"

	"github.com/charmbracelet/lipgloss"
	"github.com/muesli/termenv"

	"github.com/apimgr/cityweather/src/owm"
)

// DefaultPadding is the column width city and description are centered in
const DefaultPadding = 20

// Options controls how the line is styled
type Options struct {
	Color   bool
	Emoji   bool
	Padding int
}

// OneLineRenderer handles the one-line weather display
type OneLineRenderer struct {
	opts     Options
	renderer *lipgloss.Renderer
}

// NewOneLineRenderer creates a renderer with an explicit color profile
// so output does not depend on where it is written
func NewOneLineRenderer(opts Options) *OneLineRenderer {
	if opts.Padding <= 0 {
		opts.Padding = DefaultPadding
	}

	r := lipgloss.NewRenderer(os.Stdout)
	if opts.Color {
		r.SetColorProfile(termenv.ANSI)
	} else {
		r.SetColorProfile(termenv.Ascii)
	}

	return &OneLineRenderer{opts: opts, renderer: r}
}

// Render writes the line for report to w
func (r *OneLineRenderer) Render(w io.Writer, report *owm.Report, imperial bool) error {
	_, err := io.WriteString(w, r.RenderString(report, imperial))
	return err
}

// RenderString renders: city (reversed), tab, glyph + description (colored), temperature
func (r *OneLineRenderer) RenderString(report *owm.Report, imperial bool) string {
	params := Classify(report.ConditionCode)

	cityStyle := r.renderer.NewStyle().Reverse(true)
	conditionStyle := r.renderer.NewStyle().Foreground(params.Color)

	glyph := params.Glyph
	if !r.opts.Emoji {
		glyph = params.Plain
	}

	condition := center(TitleCase(report.Description), r.opts.Padding)
	if glyph != "" {
		condition = glyph + " " + condition
	}

	return fmt.Sprintf("%s\t%s (%s%s)\n",
		cityStyle.Render(center(report.CityName, r.opts.Padding)),
		conditionStyle.Render(condition),
		FormatTemperature(report.Temperature),
		owm.UnitsFor(imperial).Symbol())
}

// center pads s to width display cells, extra cell on the right
func center(s string, width int) string {
	gap := width - lipgloss.Width(s)
	if gap <= 0 {
		return s
	}
	left := gap / 2
	return strings.Repeat(" ", left) + s + strings.Repeat(" ", gap-left)
}

// TitleCase capitalizes each word: "clear sky" -> "Clear Sky"
func TitleCase(s string) string {
	words := strings.Fields(s)
	for i, word := range words {
		runes := []rune(strings.ToLower(word))
		runes[0] = unicode.ToUpper(runes[0])
		words[i] = string(runes)
	}
	return strings.Join(words, " ")
}

// FormatTemperature prints the value as sent, with at least one decimal
func FormatTemperature(temp float64) string {
	s := strconv.FormatFloat(temp, 'f', -1, 64)
	if !strings.Contains(s, ".") {
		s += ".0"
	}
	return s
}
