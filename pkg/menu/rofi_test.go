package menu

import (
	"errors"
	"fmt"
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestArgsWithoutTheme(t *testing.T) {
	r := NewRofi("")
	assert.Equal(t, []string{"-dmenu", "-i", "-p", "profile"}, r.args("profile"))
}

func TestArgsWithExistingTheme(t *testing.T) {
	theme := filepath.Join(t.TempDir(), "browser.rasi")
	require.NoError(t, os.WriteFile(theme, []byte("* {}"), 0644))

	r := NewRofi(theme)
	assert.Equal(t, []string{"-dmenu", "-i", "-p", "profile", "-theme", theme}, r.args("profile"))
}

func TestMissingThemeIsDropped(t *testing.T) {
	r := NewRofi(filepath.Join(t.TempDir(), "missing.rasi"))
	assert.NotContains(t, r.args("profile"), "-theme")
}

func TestIsCancelled(t *testing.T) {
	assert.True(t, IsCancelled(ErrCancelled))
	assert.True(t, IsCancelled(fmt.Errorf("wrapped: %w", ErrCancelled)))
	assert.False(t, IsCancelled(nil))
	assert.False(t, IsCancelled(errors.New("other failure")))
}
