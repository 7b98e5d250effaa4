package service

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestSelectionTransitions(t *testing.T) {
	var s Selection
	assert.False(t, s.IsOpen(), "initial state is closed")

	assert.True(t, s.Select("tt1"))
	id, open := s.Active()
	assert.True(t, open)
	assert.Equal(t, "tt1", id)

	// Different id switches
	assert.True(t, s.Select("tt2"))
	id, _ = s.Active()
	assert.Equal(t, "tt2", id)

	// Same id toggles off
	assert.False(t, s.Select("tt2"))
	assert.False(t, s.IsOpen())
}

func TestSelectionToggleIsIdempotent(t *testing.T) {
	var s Selection
	s.Select("tt1")
	s.Select("tt1")
	assert.Equal(t, Selection{}, s)

	s.Select("tt1")
	s.Select("tt2")
	s.Select("tt2")
	assert.Equal(t, Selection{}, s)
}

func TestSelectionClose(t *testing.T) {
	var s Selection
	s.Close()
	assert.False(t, s.IsOpen())

	s.Select("tt1")
	s.Close()
	assert.False(t, s.IsOpen())

	// Closing then selecting the same id opens it again
	assert.True(t, s.Select("tt1"))
}

func TestSelectEmptyCloses(t *testing.T) {
	var s Selection
	s.Select("tt1")
	assert.False(t, s.Select(""))
	assert.False(t, s.IsOpen())
}
