package service

import (
	"context"
	"testing"
	"team_tracker_backend/internal/model"
	"team_tracker_backend/internal/util"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestGoalService_MetricsRecomputedOnRead(t *testing.T) {
	env := newTestEnv(t)

	goal, err := env.goals.Create(CreateGoalRequest{Title: "Q2 launch"})
	require.NoError(t, err)
	assert.Equal(t, model.GoalNotStarted, goal.Status)
	assert.Equal(t, 0.0, goal.ProgressPercentage)

	t1, err := env.tasks.Create(CreateTaskRequest{GoalID: goal.ID, Title: "one"})
	require.NoError(t, err)
	_, err = env.tasks.Create(CreateTaskRequest{GoalID: goal.ID, Title: "two"})
	require.NoError(t, err)

	detail, err := env.goals.Get(goal.ID)
	require.NoError(t, err)
	assert.Equal(t, int64(2), detail.TaskCount)
	assert.Equal(t, 0.0, detail.ProgressPercentage)
	assert.Len(t, detail.Tasks, 2)

	done := model.TaskCompleted
	_, err = env.tasks.Update(t1.ID, UpdateTaskRequest{Status: &done})
	require.NoError(t, err)

	detail, err = env.goals.Get(goal.ID)
	require.NoError(t, err)
	assert.Equal(t, int64(1), detail.CompletedTaskCount)
	assert.Equal(t, 50.0, detail.ProgressPercentage)

	list, err := env.goals.List(nil, 0, 10)
	require.NoError(t, err)
	require.Len(t, list, 1)
	assert.Equal(t, 50.0, list[0].ProgressPercentage)
}

func TestGoalService_CompletedDateSetOnce(t *testing.T) {
	env := newTestEnv(t)

	goal, err := env.goals.Create(CreateGoalRequest{Title: "Ship", Status: model.GoalCompleted})
	require.NoError(t, err)
	require.NotNil(t, goal.CompletedDate)
	first := *goal.CompletedDate

	env.goals.Now = func() time.Time { return fixedNow.AddDate(0, 0, 3) }

	reopened := model.GoalInProgress
	view, err := env.goals.Update(goal.ID, UpdateGoalRequest{Status: &reopened})
	require.NoError(t, err)
	require.NotNil(t, view.CompletedDate)

	completed := model.GoalCompleted
	view, err = env.goals.Update(goal.ID, UpdateGoalRequest{Status: &completed})
	require.NoError(t, err)
	assert.True(t, first.Equal(*view.CompletedDate))
}

func TestGoalService_ListFiltersAndOrders(t *testing.T) {
	env := newTestEnv(t)

	_, err := env.goals.Create(CreateGoalRequest{Title: "first"})
	require.NoError(t, err)
	_, err = env.goals.Create(CreateGoalRequest{Title: "second", Status: model.GoalInProgress})
	require.NoError(t, err)

	all, err := env.goals.List(nil, 0, 10)
	require.NoError(t, err)
	require.Len(t, all, 2)
	assert.Equal(t, "second", all[0].Title)

	status := model.GoalInProgress
	filtered, err := env.goals.List(&status, 0, 10)
	require.NoError(t, err)
	require.Len(t, filtered, 1)
	assert.Equal(t, "second", filtered[0].Title)
}

func TestGoalService_DeleteCascades(t *testing.T) {
	env := newTestEnv(t)
	ctx := context.Background()

	member, err := env.members.Create(CreateTeamMemberRequest{Name: "Ana", Email: "ana@example.com"})
	require.NoError(t, err)
	goal, err := env.goals.Create(CreateGoalRequest{Title: "Launch"})
	require.NoError(t, err)
	task, err := env.tasks.Create(CreateTaskRequest{GoalID: goal.ID, Title: "API"})
	require.NoError(t, err)
	update, err := env.updates.Create(ctx, CreateStatusUpdateRequest{TeamMemberID: member.ID, TaskID: &task.ID, StatusText: "wip"})
	require.NoError(t, err)

	require.NoError(t, env.goals.Delete(ctx, goal.ID))

	_, err = env.tasks.Get(task.ID)
	assert.ErrorIs(t, err, util.ErrTaskNotFound)
	_, err = env.updates.Get(update.ID)
	assert.ErrorIs(t, err, util.ErrStatusUpdateNotFound)
	assert.Equal(t, []string{indexID(update.ID)}, env.index.deleted)

	_, err = env.members.Get(member.ID)
	assert.NoError(t, err)

	assert.ErrorIs(t, env.goals.Delete(ctx, goal.ID), util.ErrGoalNotFound)
}
