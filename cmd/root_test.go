package cmd

import (
	"bytes"
	"os"
	"path/filepath"
	"testing"

	"github.com/spf13/cobra"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"golang.org/x/term"

	"github.com/godalming123/tinytile/internal/tui"
)

func executeCommand(root *cobra.Command, args ...string) (string, error) {
	if args == nil {
		// nil would make cobra read os.Args
		args = []string{}
	}
	var out bytes.Buffer
	root.SetOut(&out)
	root.SetErr(&out)
	root.SetArgs(args)
	err := root.Execute()
	return out.String(), err
}

func TestAbout(t *testing.T) {
	out, err := executeCommand(rootCmd, "about")
	require.NoError(t, err)
	assert.Contains(t, out, "A fork of tinywl with some additional features based on wlroots 0.16")
	assert.Contains(t, out, Version)
}

func TestAboutRejectsArguments(t *testing.T) {
	_, err := executeCommand(rootCmd, "about", "extra")
	assert.Error(t, err)
}

func TestUnknownArgument(t *testing.T) {
	for _, arg := range []string{"frobnicate", "server", "About"} {
		t.Run(arg, func(t *testing.T) {
			_, err := executeCommand(rootCmd, arg)
			require.Error(t, err)
			assert.Equal(t, arg+" is not a valid option, use the `about` command to see some info", err.Error())
		})
	}
}

func TestRunNeedsTerminal(t *testing.T) {
	if term.IsTerminal(int(os.Stdin.Fd())) && term.IsTerminal(int(os.Stdout.Fd())) {
		t.Skip("running on a terminal")
	}
	dir := t.TempDir()
	t.Setenv("XDG_RUNTIME_DIR", dir)

	_, err := executeCommand(rootCmd)
	assert.ErrorIs(t, err, tui.ErrNotTerminal)

	_, statErr := os.Stat(filepath.Join(dir, "tinytile.log"))
	assert.NoError(t, statErr)
}
