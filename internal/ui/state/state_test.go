package state

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestClearStatusIfIgnoresOlderMessages(t *testing.T) {
	s := NewAppState()

	first := s.SetStatus("Copied https://github.com/octocat")
	second := s.SetError("Copy failed: no clipboard utility")

	assert.False(t, s.ClearStatusIf(first))
	assert.Equal(t, "Copy failed: no clipboard utility", s.StatusMessage)
	assert.True(t, s.StatusIsError)

	assert.True(t, s.ClearStatusIf(second))
	assert.Empty(t, s.StatusMessage)
	assert.False(t, s.StatusIsError)
}

func TestSetStatusReplacesError(t *testing.T) {
	s := NewAppState()
	s.SetError("Pager failed: boom")

	seq := s.SetStatus("Deleted 1 user")

	assert.False(t, s.StatusIsError)
	assert.True(t, s.ClearStatusIf(seq))
}
