package client

import (
	"fmt"
	"io"
	"os"
	"strings"

	tea "github.com/charmbracelet/bubbletea"
	"github.com/charmbracelet/lipgloss"

	"github.com/apimgr/cityweather/src/config"
	"github.com/apimgr/cityweather/src/utils"
)

// Dracula palette
var (
	colorForeground = lipgloss.Color("#f8f8f2")
	colorComment    = lipgloss.Color("#6272a4")
	colorCyan       = lipgloss.Color("#8be9fd")
	colorGreen      = lipgloss.Color("#50fa7b")
	colorPurple     = lipgloss.Color("#bd93f9")
	colorRed        = lipgloss.Color("#ff5555")
)

// setupModel is the bubbletea model for the API key prompt
type setupModel struct {
	secretsPath string
	apiKey      string
	reveal      bool
	message     string
	cancelled   bool
	done        bool
}

// newSetupModel creates a new setup model
func newSetupModel(secretsPath string) setupModel {
	return setupModel{secretsPath: secretsPath}
}

// Init initializes the setup model
func (m setupModel) Init() tea.Cmd {
	return nil
}

// Update handles key presses for the setup wizard
func (m setupModel) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	keyMsg, ok := msg.(tea.KeyMsg)
	if !ok {
		return m, nil
	}

	switch keyMsg.Type {
	case tea.KeyCtrlC, tea.KeyEsc:
		m.cancelled = true
		return m, tea.Quit

	case tea.KeyEnter:
		if strings.TrimSpace(m.apiKey) == "" {
			m.message = "API key cannot be empty"
			return m, nil
		}
		m.done = true
		return m, tea.Quit

	case tea.KeyTab:
		m.reveal = !m.reveal

	case tea.KeyBackspace:
		if runes := []rune(m.apiKey); len(runes) > 0 {
			m.apiKey = string(runes[:len(runes)-1])
		}
		m.message = ""

	case tea.KeyRunes:
		m.apiKey += string(keyMsg.Runes)
		m.message = ""
	}

	return m, nil
}

// View renders the setup wizard
func (m setupModel) View() string {
	titleStyle := lipgloss.NewStyle().
		Foreground(colorPurple).
		Bold(true)

	boxStyle := lipgloss.NewStyle().
		Border(lipgloss.DoubleBorder()).
		BorderForeground(colorPurple).
		Padding(1, 2)

	labelStyle := lipgloss.NewStyle().
		Foreground(colorForeground)

	inputStyle := lipgloss.NewStyle().
		Border(lipgloss.NormalBorder()).
		BorderForeground(colorCyan).
		Padding(0, 1).
		Width(40)

	helpStyle := lipgloss.NewStyle().
		Foreground(colorComment)

	errorStyle := lipgloss.NewStyle().
		Foreground(colorRed)

	var b strings.Builder

	b.WriteString(titleStyle.Render("CITYWEATHER SETUP"))
	b.WriteString("\n\n")
	b.WriteString(labelStyle.Render("OpenWeather API key:"))
	b.WriteString("\n")

	shown := strings.Repeat("•", len([]rune(m.apiKey)))
	if m.reveal {
		shown = m.apiKey
	}
	b.WriteString(inputStyle.Render(shown + "_"))
	b.WriteString("\n\n")

	b.WriteString(labelStyle.Render("Saving to " + m.secretsPath))
	b.WriteString("\n\n")

	if m.message != "" {
		b.WriteString(errorStyle.Render("✗ " + m.message))
		b.WriteString("\n\n")
	}

	b.WriteString(helpStyle.Render("Enter: save • Tab: show/hide • Esc: cancel"))

	return boxStyle.Render(b.String())
}

// runSetupWizard prompts for the API key and writes it to secretsPath
func runSetupWizard(secretsPath string, out io.Writer) error {
	if !utils.IsInteractive(os.Stdin) {
		return NewUsageError("--setup requires an interactive terminal")
	}

	p := tea.NewProgram(newSetupModel(secretsPath))
	finalModel, err := p.Run()
	if err != nil {
		return NewExitError(fmt.Sprintf("setup wizard error: %v", err), ExitGeneralError)
	}

	return finishSetup(finalModel.(setupModel), out)
}

// finishSetup persists the result of a completed wizard
func finishSetup(m setupModel, out io.Writer) error {
	if m.cancelled || !m.done {
		return NewUsageError("setup cancelled")
	}

	if err := config.SaveAPIKey(m.secretsPath, m.apiKey); err != nil {
		return NewConfigError(err.Error())
	}

	successStyle := lipgloss.NewStyle().Foreground(colorGreen)
	fmt.Fprintln(out, successStyle.Render("✓ API key saved to "+m.secretsPath))
	return nil
}
