package main

import (
	"os"
	"path/filepath"
	"strings"
	"testing"

	"github.com/Veraticus/snacker/internal/common"
	"github.com/Veraticus/snacker/internal/model"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

// 1x1 transparent PNG.
var tinyPNG = []byte{
	0x89, 0x50, 0x4e, 0x47, 0x0d, 0x0a, 0x1a, 0x0a, 0x00, 0x00, 0x00, 0x0d,
	0x49, 0x48, 0x44, 0x52, 0x00, 0x00, 0x00, 0x01, 0x00, 0x00, 0x00, 0x01,
	0x08, 0x06, 0x00, 0x00, 0x00, 0x1f, 0x15, 0xc4, 0x89, 0x00, 0x00, 0x00,
	0x0a, 0x49, 0x44, 0x41, 0x54, 0x78, 0x9c, 0x63, 0x00, 0x01, 0x00, 0x00,
	0x05, 0x00, 0x01, 0x0d, 0x0a, 0x2d, 0xb4, 0x00, 0x00, 0x00, 0x00, 0x49,
	0x45, 0x4e, 0x44, 0xae, 0x42, 0x60, 0x82,
}

func TestProfileName(t *testing.T) {
	env := newTestEnv(t)
	env.onboard()

	env.mustRun("profile", "set-name", "Juan dela Cruz")
	out := env.mustRun("profile", "show")
	assert.Contains(t, out, "Juan dela Cruz")
	assert.Contains(t, out, "Picture:      none")

	_, err := env.run("profile", "set-name", "   ")
	require.Error(t, err)
	assert.Equal(t, "Username cannot be empty.", common.UserMessage(err))
}

func TestProfilePicture(t *testing.T) {
	env := newTestEnv(t)
	env.onboard()

	path := filepath.Join(t.TempDir(), "me.png")
	require.NoError(t, os.WriteFile(path, tinyPNG, 0600))

	env.mustRun("profile", "set-picture", path)
	picture := env.state().ProfilePicture()
	assert.True(t, strings.HasPrefix(picture, "data:image/png;base64,iVBORw0KGgo"), picture)

	out := env.mustRun("profile", "show")
	assert.Contains(t, out, "image/png")

	uri := "data:image/gif;base64,R0lGODlhAQABAAAAACw="
	env.mustRun("profile", "set-picture", uri)
	assert.Equal(t, uri, env.state().ProfilePicture())

	env.mustRun("profile", "set-picture", "--clear")
	assert.Empty(t, env.state().ProfilePicture())
}

func TestProfilePictureRejectsNonImages(t *testing.T) {
	env := newTestEnv(t)
	env.onboard()

	path := filepath.Join(t.TempDir(), "notes.txt")
	require.NoError(t, os.WriteFile(path, []byte("not a picture"), 0600))

	_, err := env.run("profile", "set-picture", path)
	require.Error(t, err)
	assert.Equal(t, "That file is not an image.", common.UserMessage(err))

	_, err = env.run("profile", "set-picture", filepath.Join(t.TempDir(), "missing.png"))
	require.Error(t, err)
	assert.Equal(t, "Could not read the picture file.", common.UserMessage(err))
}

func TestFilters(t *testing.T) {
	env := newTestEnv(t)
	env.onboard()
	env.mustRun("tx", "add", "-a", "100", "-c", "food", "-d", "2024-03-01", "-n", "groceries")
	env.mustRun("tx", "add", "-a", "200", "-c", "transport", "-d", "2024-03-10", "-n", "taxi")

	out := env.mustRun("filters", "show")
	assert.Contains(t, out, "No saved filters.")

	env.mustRun("filters", "save", "--type", "expense", "--category", "food")
	f, ok := env.state().FilterPreferences()
	require.True(t, ok)
	assert.Equal(t, "expense", f.Type)
	assert.Equal(t, "food", f.CategoryID)

	env.mustRun("filters", "save", "--from", "2024-03-01")
	f, _ = env.state().FilterPreferences()
	assert.Equal(t, "food", f.CategoryID, "saving again only changes the flags passed")
	require.NotNil(t, f.DateFrom)
	assert.Equal(t, model.NewDate(2024, 3, 1), model.LocalDateOf(*f.DateFrom))

	out = env.mustRun("filters", "show")
	assert.Contains(t, out, "Food & Drinks")
	assert.Contains(t, out, "From:     2024-03-01")

	out = env.mustRun("tx", "list", "--saved")
	assert.Contains(t, out, "groceries")
	assert.NotContains(t, out, "taxi")

	out = env.mustRun("tx", "list", "--saved", "--category", "all")
	assert.Contains(t, out, "taxi")

	env.mustRun("tx", "list", "--search", "taxi", "--save")
	f, _ = env.state().FilterPreferences()
	assert.Equal(t, "taxi", f.SearchTerm)
	assert.Empty(t, f.CategoryID)

	env.mustRun("filters", "clear")
	_, ok = env.state().FilterPreferences()
	assert.False(t, ok)
}
