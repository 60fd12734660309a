package service

import (
	"context"
	"errors"
	"testing"
	"team_tracker_backend/internal/repository"
	"team_tracker_backend/internal/util"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestStatusUpdateService_CreateSyncsIndex(t *testing.T) {
	env := newTestEnv(t)
	ctx := context.Background()

	var gotMeta map[string]interface{}
	env.index.UpsertFunc = func(_ context.Context, id, text string, metadata map[string]interface{}) error {
		gotMeta = metadata
		return nil
	}

	member, err := env.members.Create(CreateTeamMemberRequest{Name: "Ana", Email: "ana@example.com"})
	require.NoError(t, err)

	update, err := env.updates.Create(ctx, CreateStatusUpdateRequest{TeamMemberID: member.ID, StatusText: "shipped login"})
	require.NoError(t, err)
	assert.True(t, fixedNow.Equal(update.Date))
	require.NotNil(t, update.TeamMember)
	assert.Equal(t, "Ana", update.TeamMember.Name)

	assert.Equal(t, []string{indexID(update.ID)}, env.index.upserted)
	assert.Equal(t, "Ana", gotMeta["team_member_name"])
	assert.Equal(t, member.ID, gotMeta["team_member_id"])
	assert.Equal(t, fixedNow.Format(util.TimeFormat), gotMeta["date"])
}

func TestStatusUpdateService_IndexFailureDoesNotFailCreate(t *testing.T) {
	env := newTestEnv(t)
	ctx := context.Background()
	env.index.UpsertFunc = func(context.Context, string, string, map[string]interface{}) error {
		return errors.New("index down")
	}

	member, err := env.members.Create(CreateTeamMemberRequest{Name: "Ana", Email: "ana@example.com"})
	require.NoError(t, err)

	update, err := env.updates.Create(ctx, CreateStatusUpdateRequest{TeamMemberID: member.ID, StatusText: "still saved"})
	require.NoError(t, err)

	stored, err := env.updates.Get(update.ID)
	require.NoError(t, err)
	assert.Equal(t, "still saved", stored.StatusText)
}

func TestStatusUpdateService_CreateValidatesReferences(t *testing.T) {
	env := newTestEnv(t)
	ctx := context.Background()

	_, err := env.updates.Create(ctx, CreateStatusUpdateRequest{TeamMemberID: 5, StatusText: "nobody"})
	assert.ErrorIs(t, err, util.ErrTeamMemberNotFound)

	member, err := env.members.Create(CreateTeamMemberRequest{Name: "Ana", Email: "ana@example.com"})
	require.NoError(t, err)

	_, err = env.updates.Create(ctx, CreateStatusUpdateRequest{TeamMemberID: member.ID, TaskID: uintPtr(99), StatusText: "no task"})
	assert.ErrorIs(t, err, util.ErrTaskNotFound)

	_, err = env.updates.Create(ctx, CreateStatusUpdateRequest{TeamMemberID: member.ID, StatusText: "   "})
	assert.ErrorIs(t, err, util.ErrEmptyStatusText)

	assert.Empty(t, env.index.upserted)
	count, err := env.updateRepo.Count()
	require.NoError(t, err)
	assert.Equal(t, int64(0), count)
}

func TestStatusUpdateService_ListFilters(t *testing.T) {
	env := newTestEnv(t)
	ctx := context.Background()

	ana, err := env.members.Create(CreateTeamMemberRequest{Name: "Ana", Email: "ana@example.com"})
	require.NoError(t, err)
	bo, err := env.members.Create(CreateTeamMemberRequest{Name: "Bo", Email: "bo@example.com"})
	require.NoError(t, err)

	for i, m := range []uint{ana.ID, bo.ID, ana.ID} {
		_, err := env.updates.Create(ctx, CreateStatusUpdateRequest{
			TeamMemberID: m,
			StatusText:   "update",
			Date:         timePtr(fixedNow.AddDate(0, 0, -i)),
		})
		require.NoError(t, err)
	}

	all, err := env.updates.List(repository.StatusUpdateFilter{})
	require.NoError(t, err)
	require.Len(t, all, 3)
	assert.True(t, all[0].Date.After(all[1].Date))
	require.NotNil(t, all[0].TeamMember)

	mine, err := env.updates.List(repository.StatusUpdateFilter{TeamMemberID: &ana.ID})
	require.NoError(t, err)
	assert.Len(t, mine, 2)

	start := fixedNow.AddDate(0, 0, -1)
	recent, err := env.updates.List(repository.StatusUpdateFilter{StartDate: &start})
	require.NoError(t, err)
	assert.Len(t, recent, 2)

	end := fixedNow.AddDate(0, 0, -5)
	_, err = env.updates.List(repository.StatusUpdateFilter{StartDate: &start, EndDate: &end})
	assert.ErrorIs(t, err, util.ErrInvalidDateRange)

	page, err := env.updates.List(repository.StatusUpdateFilter{Skip: 1, Limit: 1})
	require.NoError(t, err)
	require.Len(t, page, 1)
	assert.Equal(t, all[1].ID, page[0].ID)
}

func TestStatusUpdateService_UpdateAndDelete(t *testing.T) {
	env := newTestEnv(t)
	ctx := context.Background()

	member, err := env.members.Create(CreateTeamMemberRequest{Name: "Ana", Email: "ana@example.com"})
	require.NoError(t, err)
	update, err := env.updates.Create(ctx, CreateStatusUpdateRequest{TeamMemberID: member.ID, StatusText: "draft"})
	require.NoError(t, err)

	text := "final"
	updated, err := env.updates.Update(ctx, update.ID, UpdateStatusUpdateRequest{StatusText: &text})
	require.NoError(t, err)
	assert.Equal(t, "final", updated.StatusText)
	assert.Equal(t, []string{indexID(update.ID), indexID(update.ID)}, env.index.upserted)

	require.NoError(t, env.updates.Delete(ctx, update.ID))
	assert.Equal(t, []string{indexID(update.ID)}, env.index.deleted)

	assert.ErrorIs(t, env.updates.Delete(ctx, update.ID), util.ErrStatusUpdateNotFound)
	_, err = env.updates.Update(ctx, update.ID, UpdateStatusUpdateRequest{StatusText: &text})
	assert.ErrorIs(t, err, util.ErrStatusUpdateNotFound)
}
