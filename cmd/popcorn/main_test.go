package main

import (
	"bytes"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestVersionFlag(t *testing.T) {
	var out bytes.Buffer
	cmd := newRootCmd()
	cmd.SetOut(&out)
	cmd.SetArgs([]string{"--version"})

	require.NoError(t, cmd.Execute())
	assert.Equal(t, "popcorn dev\n", out.String())
}

func TestRefusesNonTerminal(t *testing.T) {
	// Test binaries write to a pipe
	cmd := newRootCmd()
	cmd.SetArgs([]string{})
	assert.ErrorIs(t, cmd.Execute(), errNotTerminal)
}

func TestRejectsArguments(t *testing.T) {
	cmd := newRootCmd()
	cmd.SetArgs([]string{"batman"})
	assert.Error(t, cmd.Execute())
}
