package tui

import (
	"testing"

	tea "github.com/charmbracelet/bubbletea"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func runes(s string) tea.KeyMsg {
	return tea.KeyMsg{Type: tea.KeyRunes, Runes: []rune(s)}
}

var (
	enterKey = tea.KeyMsg{Type: tea.KeyEnter}
	leftKey  = tea.KeyMsg{Type: tea.KeyLeft}
	escKey   = tea.KeyMsg{Type: tea.KeyEsc}
	ctrlC    = tea.KeyMsg{Type: tea.KeyCtrlC}
)

func send(t *testing.T, m Model, msgs ...tea.Msg) (Model, tea.Cmd) {
	t.Helper()
	var cmd tea.Cmd
	for _, msg := range msgs {
		var next tea.Model
		next, cmd = m.Update(msg)
		var ok bool
		m, ok = next.(Model)
		require.True(t, ok)
	}
	return m, cmd
}

func isQuit(cmd tea.Cmd) bool {
	if cmd == nil {
		return false
	}
	_, ok := cmd().(tea.QuitMsg)
	return ok
}

func TestValidateUsername(t *testing.T) {
	tests := []struct {
		name    string
		input   string
		want    string
		wantErr error
	}{
		{name: "valid", input: "Ada", want: "Ada"},
		{name: "trimmed", input: "  Snacker  ", want: "Snacker"},
		{name: "empty", input: "", wantErr: ErrUsernameEmpty},
		{name: "whitespace only", input: "   ", wantErr: ErrUsernameEmpty},
		{name: "too short", input: " ab ", wantErr: ErrUsernameTooShort},
		{name: "multibyte counts runes", input: "Łéo", want: "Łéo"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got, err := ValidateUsername(tt.input)
			if tt.wantErr != nil {
				assert.ErrorIs(t, err, tt.wantErr)
				return
			}
			require.NoError(t, err)
			assert.Equal(t, tt.want, got)
		})
	}
}

func TestIntroNavigation(t *testing.T) {
	m := newModel(defaultConfig())
	assert.Equal(t, StageIntro, m.Stage())
	assert.Contains(t, m.View(), "Welcome to Snacker!")

	m, _ = send(t, m, enterKey, runes("l"))
	assert.Equal(t, 2, m.StepIndex())
	assert.Contains(t, m.View(), "Visualize Your Habits")

	m, _ = send(t, m, leftKey)
	assert.Equal(t, 1, m.StepIndex())

	m, _ = send(t, m, leftKey, leftKey)
	assert.Equal(t, 0, m.StepIndex(), "back stops at the first step")

	m, _ = send(t, m, enterKey, enterKey, enterKey)
	assert.Equal(t, len(Steps)-1, m.StepIndex())
	assert.Contains(t, m.View(), "Get Started")
	assert.False(t, m.Result().Completed)

	m, _ = send(t, m, enterKey)
	assert.Equal(t, StageUsername, m.Stage())
	assert.True(t, m.Result().Completed)
	assert.Contains(t, m.View(), "Save and Continue")
}

func TestSkipIntro(t *testing.T) {
	m, _ := send(t, newModel(defaultConfig()), runes("s"))
	assert.Equal(t, StageUsername, m.Stage())
	assert.True(t, m.Result().Completed)
}

func TestUsernameStep(t *testing.T) {
	cfg := defaultConfig()
	cfg.SkipIntro = true
	m := newModel(cfg)
	require.Equal(t, StageUsername, m.Stage())

	m, cmd := send(t, m, enterKey)
	assert.ErrorIs(t, m.Err(), ErrUsernameEmpty)
	assert.False(t, isQuit(cmd))
	assert.Contains(t, m.View(), "Username cannot be empty.")

	m, _ = send(t, m, runes("ab"), enterKey)
	assert.ErrorIs(t, m.Err(), ErrUsernameTooShort)

	m, cmd = send(t, m, runes("q "), enterKey)
	require.NoError(t, m.Err())
	assert.True(t, isQuit(cmd))
	assert.Equal(t, StageDone, m.Stage())
	assert.Equal(t, Result{Completed: true, Username: "abq"}, m.Result())
}

func TestInitialUsername(t *testing.T) {
	cfg := defaultConfig()
	cfg.SkipIntro = true
	cfg.InitialUsername = "Snacker"

	m, cmd := send(t, newModel(cfg), enterKey)
	assert.True(t, isQuit(cmd))
	assert.Equal(t, "Snacker", m.Result().Username)
}

func TestQuit(t *testing.T) {
	t.Run("quit during intro", func(t *testing.T) {
		m, cmd := send(t, newModel(defaultConfig()), runes("q"))
		assert.True(t, isQuit(cmd))
		assert.Equal(t, Result{}, m.Result())
		assert.Empty(t, m.View())
	})

	t.Run("esc during username keeps intro completion", func(t *testing.T) {
		m, cmd := send(t, newModel(defaultConfig()), runes("s"), runes("Ad"), escKey)
		assert.True(t, isQuit(cmd))
		assert.Equal(t, Result{Completed: true}, m.Result())
	})

	t.Run("ctrl+c", func(t *testing.T) {
		_, cmd := send(t, newModel(defaultConfig()), ctrlC)
		assert.True(t, isQuit(cmd))
	})
}

func TestWindowResize(t *testing.T) {
	m, _ := send(t, newModel(defaultConfig()), tea.WindowSizeMsg{Width: 120, Height: 40})
	assert.Equal(t, 120, m.width)
	assert.Equal(t, 40, m.height)
	assert.NotEmpty(t, m.View())
}

func TestOptions(t *testing.T) {
	cfg := defaultConfig()
	for _, opt := range []Option{WithSize(100, 30), WithSkipIntro(true), WithInitialUsername("Ada"), WithIO(nil, nil)} {
		opt(&cfg)
	}
	assert.Equal(t, 100, cfg.Width)
	assert.True(t, cfg.SkipIntro)
	assert.Equal(t, "Ada", cfg.InitialUsername)
	assert.False(t, cfg.AltScreen)
}
