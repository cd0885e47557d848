package commands

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/goalritmo/gymlog/internal/models"
)

func TestResolveExercise(t *testing.T) {
	catalog := []models.Exercise{
		{ID: 1, Name: "Bench Press"},
		{ID: 2, Name: "Incline Bench Press"},
		{ID: 3, Name: "Squat"},
	}

	// Exact name wins even when it is also a substring of another entry.
	ex, err := resolveExercise(catalog, "bench press")
	require.NoError(t, err)
	assert.Equal(t, 1, ex.ID)

	// A unique partial match resolves.
	ex, err = resolveExercise(catalog, "squ")
	require.NoError(t, err)
	assert.Equal(t, 3, ex.ID)

	// Ambiguous partials are rejected with the candidates listed.
	_, err = resolveExercise(catalog, "bench")
	require.Error(t, err)
	assert.Contains(t, err.Error(), "Incline Bench Press")

	_, err = resolveExercise(catalog, "deadlift")
	require.Error(t, err)

	_, err = resolveExercise(catalog, "  ")
	require.Error(t, err)
}
