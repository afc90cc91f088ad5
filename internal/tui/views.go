package tui

import (
	"strings"

	"github.com/charmbracelet/lipgloss"
)

// View renders the UI.
func (m Model) View() string {
	if m.quitting || m.stage == StageDone {
		return ""
	}

	var body string
	switch m.stage {
	case StageIntro:
		body = m.renderIntro()
	case StageUsername:
		body = m.renderUsername()
	}

	card := m.theme.RoundedBox.Width(min(60, max(m.width-4, 20))).Render(body)
	return lipgloss.Place(m.width, m.height, lipgloss.Center, lipgloss.Center, card)
}

func (m Model) renderIntro() string {
	step := Steps[m.step]
	button := "Next"
	if m.step == len(Steps)-1 {
		button = "✔ Get Started"
	}

	return lipgloss.JoinVertical(lipgloss.Center,
		m.theme.Title.Render(step.Title),
		m.theme.Subtitle.Render(step.Description),
		m.renderDots(),
		"",
		m.theme.Button.Render(button),
		"",
		m.help.View(m.keymap),
	)
}

func (m Model) renderDots() string {
	dots := make([]string, len(Steps))
	for i := range Steps {
		if i == m.step {
			dots[i] = m.theme.DotActive.Render("●")
		} else {
			dots[i] = m.theme.DotInactive.Render("●")
		}
	}
	return strings.Join(dots, " ")
}

func (m Model) renderUsername() string {
	lines := []string{
		m.theme.Title.Render("Welcome to Snacker!"),
		m.theme.Subtitle.Render("Please enter your username to get started."),
		m.input.View(),
	}
	if m.lastErr != nil {
		lines = append(lines, m.theme.StatusError.Render(m.lastErr.Error()))
	}
	lines = append(lines,
		"",
		m.theme.Button.Render("Save and Continue"),
		"",
		m.help.View(usernameKeys{m.keymap}),
	)
	return lipgloss.JoinVertical(lipgloss.Left, lines...)
}
