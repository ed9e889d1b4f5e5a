package main

import (
	"context"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestRunAllRequiresProcesses(t *testing.T) {
	err := runAll(context.Background(), nil)
	require.Error(t, err)
	assert.Contains(t, err.Error(), "no processes configured")
}

func TestRunOnceReportsFailure(t *testing.T) {
	err := runOnce(context.Background(), procConfig{Name: "fail", Args: []string{"sh", "-c", "exit 3"}})
	require.Error(t, err)
	assert.Contains(t, err.Error(), "fail:")

	require.NoError(t, runOnce(context.Background(), procConfig{Name: "ok", Args: []string{"sh", "-c", "exit 0"}}))
}

func TestRunAllReturnsFirstFailure(t *testing.T) {
	err := runAll(context.Background(), []procConfig{
		{Name: "broken", Args: []string{"sh", "-c", "exit 1"}},
	})
	require.Error(t, err)
	assert.Contains(t, err.Error(), "broken exited")
}
