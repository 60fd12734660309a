package service

import (
	"context"
	"testing"
	"team_tracker_backend/internal/util"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestTeamMemberService_CreateRejectsDuplicateEmail(t *testing.T) {
	env := newTestEnv(t)

	_, err := env.members.Create(CreateTeamMemberRequest{Name: "Ana", Email: "ana@example.com", Role: "dev"})
	require.NoError(t, err)

	_, err = env.members.Create(CreateTeamMemberRequest{Name: "Other", Email: "ana@example.com"})
	assert.ErrorIs(t, err, util.ErrEmailRegistered)

	members, err := env.members.List(0, 0)
	require.NoError(t, err)
	assert.Len(t, members, 1)
}

func TestTeamMemberService_Update(t *testing.T) {
	env := newTestEnv(t)

	ana, err := env.members.Create(CreateTeamMemberRequest{Name: "Ana", Email: "ana@example.com"})
	require.NoError(t, err)
	bo, err := env.members.Create(CreateTeamMemberRequest{Name: "Bo", Email: "bo@example.com"})
	require.NoError(t, err)

	taken := "ana@example.com"
	_, err = env.members.Update(bo.ID, UpdateTeamMemberRequest{Email: &taken})
	assert.ErrorIs(t, err, util.ErrEmailRegistered)

	// 保持自己的邮箱不算冲突
	role := "lead"
	updated, err := env.members.Update(ana.ID, UpdateTeamMemberRequest{Email: &taken, Role: &role})
	require.NoError(t, err)
	assert.Equal(t, "lead", updated.Role)
	assert.Equal(t, "Ana", updated.Name)

	_, err = env.members.Update(9999, UpdateTeamMemberRequest{Role: &role})
	assert.ErrorIs(t, err, util.ErrTeamMemberNotFound)
}

func TestTeamMemberService_DeleteCascades(t *testing.T) {
	env := newTestEnv(t)
	ctx := context.Background()

	ana, err := env.members.Create(CreateTeamMemberRequest{Name: "Ana", Email: "ana@example.com"})
	require.NoError(t, err)
	bo, err := env.members.Create(CreateTeamMemberRequest{Name: "Bo", Email: "bo@example.com"})
	require.NoError(t, err)
	goal, err := env.goals.Create(CreateGoalRequest{Title: "Launch"})
	require.NoError(t, err)
	task, err := env.tasks.Create(CreateTaskRequest{GoalID: goal.ID, Title: "API", AssignedTo: &ana.ID})
	require.NoError(t, err)

	own, err := env.updates.Create(ctx, CreateStatusUpdateRequest{TeamMemberID: ana.ID, StatusText: "did things"})
	require.NoError(t, err)
	// Bo 在 Ana 的任务下的更新也会随任务一起删除
	onTask, err := env.updates.Create(ctx, CreateStatusUpdateRequest{TeamMemberID: bo.ID, TaskID: &task.ID, StatusText: "helped"})
	require.NoError(t, err)
	kept, err := env.updates.Create(ctx, CreateStatusUpdateRequest{TeamMemberID: bo.ID, StatusText: "other work"})
	require.NoError(t, err)

	require.NoError(t, env.members.Delete(ctx, ana.ID))

	_, err = env.members.Get(ana.ID)
	assert.ErrorIs(t, err, util.ErrTeamMemberNotFound)
	_, err = env.tasks.Get(task.ID)
	assert.ErrorIs(t, err, util.ErrTaskNotFound)
	_, err = env.updates.Get(own.ID)
	assert.ErrorIs(t, err, util.ErrStatusUpdateNotFound)
	_, err = env.updates.Get(onTask.ID)
	assert.ErrorIs(t, err, util.ErrStatusUpdateNotFound)
	_, err = env.updates.Get(kept.ID)
	assert.NoError(t, err)

	assert.ElementsMatch(t, []string{indexID(own.ID), indexID(onTask.ID)}, env.index.deleted)

	assert.ErrorIs(t, env.members.Delete(ctx, ana.ID), util.ErrTeamMemberNotFound)
}
