package statuschecks

import (
	"context"
	"fmt"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestMemoryRepoListKeepsMostRecent(t *testing.T) {
	repo := NewMemoryRepo()
	ctx := context.Background()
	for i := 0; i < 5; i++ {
		require.NoError(t, repo.Insert(ctx, StatusCheck{ID: fmt.Sprintf("id-%d", i)}))
	}

	checks, err := repo.List(ctx, 3)
	require.NoError(t, err)
	require.Len(t, checks, 3)
	assert.Equal(t, "id-2", checks[0].ID)
	assert.Equal(t, "id-4", checks[2].ID)
}

func TestMemoryRepoListReturnsCopy(t *testing.T) {
	repo := NewMemoryRepo()
	ctx := context.Background()
	require.NoError(t, repo.Insert(ctx, StatusCheck{ID: "id-0", ClientName: "alice"}))

	checks, err := repo.List(ctx, DefaultListLimit)
	require.NoError(t, err)
	checks[0].ClientName = "mallory"

	again, err := repo.List(ctx, DefaultListLimit)
	require.NoError(t, err)
	assert.Equal(t, "alice", again[0].ClientName)
}

func TestMemoryRepoEmptyListIsNotNil(t *testing.T) {
	checks, err := NewMemoryRepo().List(context.Background(), DefaultListLimit)
	require.NoError(t, err)
	assert.NotNil(t, checks)
	assert.Empty(t, checks)
}

func TestMemoryRepoHonorsCanceledContext(t *testing.T) {
	ctx, cancel := context.WithCancel(context.Background())
	cancel()

	repo := NewMemoryRepo()
	assert.ErrorIs(t, repo.Insert(ctx, StatusCheck{ID: "x"}), context.Canceled)
	_, err := repo.List(ctx, 1)
	assert.ErrorIs(t, err, context.Canceled)
}
