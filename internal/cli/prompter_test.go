package cli

import (
	"bytes"
	"context"
	"errors"
	"io"
	"strings"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestPrompter_Confirm(t *testing.T) {
	tests := []struct {
		name     string
		input    string
		expected bool
		wantErr  error
	}{
		{name: "yes", input: "y\n", expected: true},
		{name: "full yes any case", input: "YES\n", expected: true},
		{name: "no", input: "n\n", expected: false},
		{name: "empty defaults to no", input: "\n", expected: false},
		{name: "retries invalid input", input: "maybe\ny\n", expected: true},
		{name: "end of input", input: "", wantErr: ErrInputTerminated},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			var out bytes.Buffer
			p := NewPrompter(strings.NewReader(tt.input), &out)

			got, err := p.Confirm(context.Background(), "Delete everything?")
			if tt.wantErr != nil {
				assert.ErrorIs(t, err, tt.wantErr)
				return
			}
			require.NoError(t, err)
			assert.Equal(t, tt.expected, got)
			assert.Contains(t, out.String(), "Delete everything?")
		})
	}

	t.Run("invalid answer message", func(t *testing.T) {
		var out bytes.Buffer
		p := NewPrompter(strings.NewReader("maybe\nn\n"), &out)
		_, err := p.Confirm(context.Background(), "Sure?")
		require.NoError(t, err)
		assert.Contains(t, out.String(), "Please answer y or n.")
	})
}

func TestPrompter_Ask(t *testing.T) {
	minLength := func(s string) error {
		if len(s) < 3 {
			return errors.New("Username must be at least 3 characters long.")
		}
		return nil
	}

	t.Run("default on empty input", func(t *testing.T) {
		p := NewPrompter(strings.NewReader("\n"), io.Discard)
		got, err := p.Ask(context.Background(), "Name", "Snacker", nil)
		require.NoError(t, err)
		assert.Equal(t, "Snacker", got)
	})

	t.Run("validation retries", func(t *testing.T) {
		var out bytes.Buffer
		p := NewPrompter(strings.NewReader("ab\n  Ada Lovelace \n"), &out)
		got, err := p.Ask(context.Background(), "Name", "", minLength)
		require.NoError(t, err)
		assert.Equal(t, "Ada Lovelace", got)
		assert.Contains(t, out.String(), "at least 3 characters")
	})

	t.Run("canceled", func(t *testing.T) {
		pr, pw := io.Pipe()
		defer func() { _ = pw.Close() }()

		ctx, cancel := context.WithTimeout(context.Background(), 20*time.Millisecond)
		defer cancel()

		p := NewPrompter(pr, io.Discard)
		_, err := p.Ask(ctx, "Name", "", nil)
		assert.ErrorIs(t, err, ErrInputCancelled)
	})
}

func TestPrompter_Choose(t *testing.T) {
	var out bytes.Buffer
	p := NewPrompter(strings.NewReader("0\n9\n2\n"), &out)

	idx, err := p.Choose(context.Background(), "Pick a category", []string{"Food", "Housing", "Travel"})
	require.NoError(t, err)
	assert.Equal(t, 1, idx)
	assert.Contains(t, out.String(), "[3] Travel")
	assert.Equal(t, 2, strings.Count(out.String(), "Enter a number between 1 and 3."))

	_, err = p.Choose(context.Background(), "Empty", nil)
	assert.Error(t, err)
}

func TestNewProgressBar(t *testing.T) {
	var out bytes.Buffer
	bar := NewProgressBar(&out, 2, "Importing transactions...")
	require.NoError(t, bar.Add(2))
	assert.Contains(t, out.String(), "Importing transactions...")
}
