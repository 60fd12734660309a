package service

import (
	"context"
	"errors"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestIndexSyncService_ResyncCountsSuccesses(t *testing.T) {
	env := newTestEnv(t)
	ctx := context.Background()

	ana := seedMember(t, env, "Ana", "ana@example.com")
	var ids []string
	for _, text := range []string{"one", "two", "three"} {
		u, err := env.updates.Create(ctx, CreateStatusUpdateRequest{TeamMemberID: ana.ID, StatusText: text})
		require.NoError(t, err)
		ids = append(ids, indexID(u.ID))
	}

	env.index.upserted = nil
	var names []interface{}
	env.index.UpsertFunc = func(_ context.Context, id, text string, metadata map[string]interface{}) error {
		names = append(names, metadata["team_member_name"])
		if text == "two" {
			return errors.New("rejected")
		}
		return nil
	}

	result, err := env.sync.Resync(ctx)
	require.NoError(t, err)
	assert.Equal(t, "Vector store sync completed", result.Message)
	assert.Equal(t, int64(3), result.TotalUpdates)
	assert.Equal(t, 2, result.SyncedCount)
	assert.Equal(t, ids, env.index.upserted)
	assert.Equal(t, []interface{}{"Ana", "Ana", "Ana"}, names)

	// 重复执行结果一致
	env.index.UpsertFunc = nil
	result, err = env.sync.Resync(ctx)
	require.NoError(t, err)
	assert.Equal(t, 3, result.SyncedCount)
}

func TestIndexSyncService_ResyncEmpty(t *testing.T) {
	env := newTestEnv(t)

	result, err := env.sync.Resync(context.Background())
	require.NoError(t, err)
	assert.Equal(t, int64(0), result.TotalUpdates)
	assert.Equal(t, 0, result.SyncedCount)
}

func TestIndexSyncService_OnDeleteIgnoresFailures(t *testing.T) {
	env := newTestEnv(t)
	env.index.DeleteFunc = func(context.Context, ...string) error { return errors.New("gone") }

	env.sync.OnDelete(context.Background(), 1, 2)
	assert.Equal(t, []string{"1", "2"}, env.index.deleted)

	env.sync.OnDelete(context.Background())
	assert.Len(t, env.index.deleted, 2)
}

func TestIndexSyncService_WritesSurviveCancelledRequest(t *testing.T) {
	env := newTestEnv(t)

	ctx, cancel := context.WithCancel(context.Background())
	cancel()

	var sawErr error
	env.index.UpsertFunc = func(ctx context.Context, _, _ string, _ map[string]interface{}) error {
		sawErr = ctx.Err()
		return nil
	}

	ana := seedMember(t, env, "Ana", "ana@example.com")
	_, err := env.updates.Create(ctx, CreateStatusUpdateRequest{TeamMemberID: ana.ID, StatusText: "late write"})
	require.NoError(t, err)
	assert.NoError(t, sawErr)
}
