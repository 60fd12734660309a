package service

import (
	"testing"
	"team_tracker_backend/internal/model"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func timePtr(t time.Time) *time.Time { return &t }

func TestPercentage(t *testing.T) {
	assert.Equal(t, 0.0, Percentage(0, 0))
	assert.Equal(t, 50.0, Percentage(1, 2))
	assert.Equal(t, 33.33, Percentage(1, 3))
	assert.Equal(t, 66.67, Percentage(2, 3))
	assert.Equal(t, 100.0, Percentage(4, 4))
}

func TestGoalMetricsFromCounts(t *testing.T) {
	t.Run("no tasks", func(t *testing.T) {
		m := GoalMetricsFromCounts(model.TaskStatusCounts{})
		assert.Equal(t, int64(0), m.TaskCount)
		assert.Equal(t, 0.0, m.ProgressPercentage)
	})

	t.Run("mixed statuses", func(t *testing.T) {
		m := GoalMetricsFromCounts(model.TaskStatusCounts{
			model.TaskCompleted:  2,
			model.TaskTodo:       1,
			model.TaskBlocked:    1,
			model.TaskInProgress: 0,
		})
		assert.Equal(t, int64(4), m.TaskCount)
		assert.Equal(t, int64(2), m.CompletedTaskCount)
		assert.Equal(t, 50.0, m.ProgressPercentage)
	})
}

func TestMemberMetricsFromCounts(t *testing.T) {
	m := MemberMetricsFromCounts(model.TaskStatusCounts{
		model.TaskCompleted:  1,
		model.TaskInProgress: 2,
	}, 1)
	assert.Equal(t, int64(3), m.AssignedTasks)
	assert.Equal(t, int64(1), m.CompletedTasks)
	assert.Equal(t, int64(2), m.InProgressTasks)
	assert.Equal(t, int64(1), m.OverdueTasks)
	assert.Equal(t, 33.33, m.CompletionRate)

	empty := MemberMetricsFromCounts(nil, 0)
	assert.Equal(t, 0.0, empty.CompletionRate)
}

func TestEvaluateSchedule(t *testing.T) {
	now := time.Date(2024, 1, 10, 12, 0, 0, 0, time.UTC)

	t.Run("no target date", func(t *testing.T) {
		s := EvaluateSchedule(&model.Goal{}, model.GoalMetrics{TaskCount: 3}, now)
		assert.True(t, s.OnTrack)
		assert.Nil(t, s.DaysRemaining)
	})

	t.Run("half elapsed and half done", func(t *testing.T) {
		goal := &model.Goal{
			StartDate:  timePtr(now.AddDate(0, 0, -10)),
			TargetDate: timePtr(now.AddDate(0, 0, 10)),
		}
		s := EvaluateSchedule(goal, model.GoalMetrics{TaskCount: 2, CompletedTaskCount: 1, ProgressPercentage: 50}, now)
		require.NotNil(t, s.DaysRemaining)
		assert.Equal(t, 10, *s.DaysRemaining)
		require.NotNil(t, s.ExpectedProgress)
		assert.InDelta(t, 50.0, *s.ExpectedProgress, 0.001)
		assert.True(t, s.OnTrack)
	})

	t.Run("behind schedule", func(t *testing.T) {
		goal := &model.Goal{
			StartDate:  timePtr(now.AddDate(0, 0, -15)),
			TargetDate: timePtr(now.AddDate(0, 0, 5)),
		}
		s := EvaluateSchedule(goal, model.GoalMetrics{TaskCount: 4, CompletedTaskCount: 1, ProgressPercentage: 25}, now)
		assert.False(t, s.OnTrack)
		assert.InDelta(t, 75.0, *s.ExpectedProgress, 0.001)
	})

	t.Run("no start date expects half", func(t *testing.T) {
		goal := &model.Goal{TargetDate: timePtr(now.AddDate(0, 0, 3))}
		s := EvaluateSchedule(goal, model.GoalMetrics{TaskCount: 2, ProgressPercentage: 0}, now)
		assert.False(t, s.OnTrack)
		assert.Equal(t, 50.0, *s.ExpectedProgress)

		s = EvaluateSchedule(goal, model.GoalMetrics{TaskCount: 2, CompletedTaskCount: 1, ProgressPercentage: 50}, now)
		assert.True(t, s.OnTrack)
	})

	t.Run("past target date stays on track", func(t *testing.T) {
		goal := &model.Goal{TargetDate: timePtr(now.AddDate(0, 0, -2))}
		s := EvaluateSchedule(goal, model.GoalMetrics{TaskCount: 2}, now)
		assert.True(t, s.OnTrack)
		assert.Equal(t, -2, *s.DaysRemaining)
		assert.Nil(t, s.ExpectedProgress)
	})

	t.Run("partial day rounds down", func(t *testing.T) {
		goal := &model.Goal{TargetDate: timePtr(now.Add(36 * time.Hour))}
		s := EvaluateSchedule(goal, model.GoalMetrics{}, now)
		assert.Equal(t, 1, *s.DaysRemaining)
	})

	t.Run("zero tasks stays on track", func(t *testing.T) {
		goal := &model.Goal{
			StartDate:  timePtr(now.AddDate(0, 0, -9)),
			TargetDate: timePtr(now.AddDate(0, 0, 1)),
		}
		s := EvaluateSchedule(goal, model.GoalMetrics{}, now)
		assert.True(t, s.OnTrack)
	})
}
