package domain

import (
	"testing"

	"github.com/stretchr/testify/require"
)

func TestTaskStatus_IsValid(t *testing.T) {
	require.True(t, TaskStatusPending.IsValid())
	require.True(t, TaskStatusCompleted.IsValid())
	require.False(t, TaskStatus("archived").IsValid())
	require.False(t, TaskStatus("").IsValid())
}

func TestTaskStatus_Toggled(t *testing.T) {
	require.Equal(t, TaskStatusCompleted, TaskStatusPending.Toggled())
	require.Equal(t, TaskStatusPending, TaskStatusCompleted.Toggled())
	require.Equal(t, TaskStatusPending, TaskStatusPending.Toggled().Toggled())
}
