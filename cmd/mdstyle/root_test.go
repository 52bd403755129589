package main

import (
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"golang.org/x/term"

	"github.com/kyaoi/mdstyle/internal/app"
)

func TestRootCmdRejectsExtraArgs(t *testing.T) {
	cmd := newRootCmd()
	cmd.SetArgs([]string{"a.md", "b.md"})
	err := cmd.Execute()
	require.Error(t, err)
	assert.Contains(t, err.Error(), "accepts at most 1 arg")
}

func TestRootCmdInvalidLogLevel(t *testing.T) {
	cmd := newRootCmd()
	cmd.SetArgs([]string{"--log-level", "chatty"})
	err := cmd.Execute()
	require.Error(t, err)
	assert.Contains(t, err.Error(), "parse log level")
}

func TestRootCmdWritesLogFileOutsideTerminal(t *testing.T) {
	if term.IsTerminal(int(os.Stdout.Fd())) {
		t.Skip("stdout is a terminal")
	}
	logPath := filepath.Join(t.TempDir(), "mdstyle.log")
	cmd := newRootCmd()
	cmd.SetArgs([]string{"--log-file", logPath, "--log-level", "debug"})

	err := cmd.Execute()
	require.ErrorIs(t, err, app.ErrNotTerminal)

	data, readErr := os.ReadFile(logPath)
	require.NoError(t, readErr)
	assert.Contains(t, string(data), "mdstyle failed")
}

func TestRootCmdFlags(t *testing.T) {
	cmd := newRootCmd()
	for _, name := range []string{"catalog", "log-file", "log-level"} {
		assert.NotNil(t, cmd.Flags().Lookup(name), name)
	}
	assert.Equal(t, "info", cmd.Flags().Lookup("log-level").DefValue)
}
