// Package tui implements the onboarding wizard and username prompt.
package tui

import (
	"errors"
	"strings"

	"github.com/Veraticus/snacker/internal/tui/themes"
	"github.com/charmbracelet/bubbles/help"
	"github.com/charmbracelet/bubbles/key"
	"github.com/charmbracelet/bubbles/textinput"
	tea "github.com/charmbracelet/bubbletea"
)

// MinUsernameLength is the shortest accepted username.
const MinUsernameLength = 3

// Username validation errors, worded for display.
var (
	ErrUsernameEmpty    = errors.New("Username cannot be empty.")
	ErrUsernameTooShort = errors.New("Username must be at least 3 characters long.")
)

// ValidateUsername trims name and checks it is long enough.
func ValidateUsername(name string) (string, error) {
	name = strings.TrimSpace(name)
	switch {
	case name == "":
		return "", ErrUsernameEmpty
	case len([]rune(name)) < MinUsernameLength:
		return "", ErrUsernameTooShort
	}
	return name, nil
}

// Step is one page of the intro.
type Step struct {
	Title       string
	Description string
}

// Steps are the intro pages shown before the username prompt.
var Steps = []Step{
	{
		Title:       "Welcome to Snacker!",
		Description: "Your personal expense tracker to help you manage your finances with ease.",
	},
	{
		Title:       "Track Income & Expenses",
		Description: "Easily log your earnings and spendings. Categorize them for better insights.",
	},
	{
		Title:       "Visualize Your Habits",
		Description: "See where your money goes with simple charts and summaries.",
	},
	{
		Title:       "Ready to Start?",
		Description: "Let's get your financial journey started with Snacker!",
	},
}

// Result is what the wizard collected when it exited.
type Result struct {
	Username string
	// Completed is true once the intro was finished or skipped.
	Completed bool
}

// Stage is the part of the wizard currently shown.
type Stage int

const (
	StageIntro Stage = iota
	StageUsername
	StageDone
)

// Model is the bubbletea model of the wizard.
type Model struct {
	theme    themes.Theme
	lastErr  error
	keymap   KeyMap
	input    textinput.Model
	help     help.Model
	result   Result
	step     int
	width    int
	height   int
	stage    Stage
	quitting bool
}

func newModel(cfg Config) Model {
	input := textinput.New()
	input.Placeholder = "e.g., Snacker"
	input.CharLimit = 64
	input.Width = 30
	input.SetValue(cfg.InitialUsername)

	m := Model{
		theme:  cfg.Theme,
		keymap: DefaultKeyMap(),
		input:  input,
		help:   help.New(),
		width:  cfg.Width,
		height: cfg.Height,
		stage:  StageIntro,
	}
	if cfg.SkipIntro {
		m.result.Completed = true
		m.stage = StageUsername
		m.input.Focus()
	}
	return m
}

// Init initializes the model.
func (m Model) Init() tea.Cmd {
	if m.stage == StageUsername {
		return textinput.Blink
	}
	return nil
}

// Update handles messages and updates the model.
func (m Model) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	switch msg := msg.(type) {
	case tea.WindowSizeMsg:
		m.width = msg.Width
		m.height = msg.Height
		return m, nil

	case tea.KeyMsg:
		if key.Matches(msg, m.keymap.ForceQuit) {
			return m.quit()
		}
		switch m.stage {
		case StageIntro:
			return m.updateIntro(msg)
		case StageUsername:
			return m.updateUsername(msg)
		}
	}

	if m.stage == StageUsername {
		var cmd tea.Cmd
		m.input, cmd = m.input.Update(msg)
		return m, cmd
	}
	return m, nil
}

func (m Model) updateIntro(msg tea.KeyMsg) (tea.Model, tea.Cmd) {
	switch {
	case key.Matches(msg, m.keymap.Quit):
		return m.quit()
	case key.Matches(msg, m.keymap.Next):
		if m.step < len(Steps)-1 {
			m.step++
			return m, nil
		}
		return m.finishIntro()
	case key.Matches(msg, m.keymap.Back):
		if m.step > 0 {
			m.step--
		}
		return m, nil
	case key.Matches(msg, m.keymap.Skip):
		return m.finishIntro()
	}
	return m, nil
}

func (m Model) finishIntro() (tea.Model, tea.Cmd) {
	m.result.Completed = true
	m.stage = StageUsername
	cmd := m.input.Focus()
	return m, cmd
}

func (m Model) updateUsername(msg tea.KeyMsg) (tea.Model, tea.Cmd) {
	switch msg.Type {
	case tea.KeyEsc:
		return m.quit()
	case tea.KeyEnter:
		name, err := ValidateUsername(m.input.Value())
		if err != nil {
			m.lastErr = err
			return m, nil
		}
		m.lastErr = nil
		m.result.Username = name
		m.stage = StageDone
		return m, tea.Quit
	}

	var cmd tea.Cmd
	m.input, cmd = m.input.Update(msg)
	return m, cmd
}

func (m Model) quit() (tea.Model, tea.Cmd) {
	m.quitting = true
	return m, tea.Quit
}

// Result returns what the wizard collected so far.
func (m Model) Result() Result {
	return m.result
}

// Stage returns the part of the wizard currently shown.
func (m Model) Stage() Stage {
	return m.stage
}

// StepIndex returns the current intro page.
func (m Model) StepIndex() int {
	return m.step
}

// Err returns the last validation error shown to the user.
func (m Model) Err() error {
	return m.lastErr
}
