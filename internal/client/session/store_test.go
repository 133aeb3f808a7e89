package session

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestMemoryStore_EmptyByDefault(t *testing.T) {
	s := NewMemoryStore()

	_, ok := s.Get()
	assert.False(t, ok)
	assert.False(t, s.IsAuthenticated())
}

func TestMemoryStore_SetOverwrites(t *testing.T) {
	s := NewMemoryStore()

	require.NoError(t, s.Set("T1"))
	require.NoError(t, s.Set("T2"))

	got, ok := s.Get()
	require.True(t, ok)
	assert.Equal(t, "T2", got)
	assert.True(t, s.IsAuthenticated())
}

func TestMemoryStore_ClearIsIdempotent(t *testing.T) {
	s := NewMemoryStore()
	require.NoError(t, s.Set("T"))

	require.NoError(t, s.Clear())
	assert.False(t, s.IsAuthenticated())

	// second clear must leave the same observable state
	require.NoError(t, s.Clear())
	assert.False(t, s.IsAuthenticated())

	_, ok := s.Get()
	assert.False(t, ok)
}
