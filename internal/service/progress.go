package service

import (
	"math"
	"team_tracker_backend/internal/model"
	"time"
)

// 进度指标全部在读取时实时计算，不缓存

// Percentage 百分比保留两位小数，total 为 0 时返回 0
func Percentage(part, total int64) float64 {
	if total <= 0 {
		return 0
	}
	return round2(float64(part) / float64(total) * 100)
}

func round2(v float64) float64 {
	return math.Round(v*100) / 100
}

func GoalMetricsFromCounts(counts model.TaskStatusCounts) model.GoalMetrics {
	total := counts.Total()
	completed := counts[model.TaskCompleted]
	return model.GoalMetrics{
		TaskCount:          total,
		CompletedTaskCount: completed,
		ProgressPercentage: Percentage(completed, total),
	}
}

func MemberMetricsFromCounts(counts model.TaskStatusCounts, overdue int64) model.MemberMetrics {
	total := counts.Total()
	completed := counts[model.TaskCompleted]
	return model.MemberMetrics{
		AssignedTasks:   total,
		CompletedTasks:  completed,
		InProgressTasks: counts[model.TaskInProgress],
		OverdueTasks:    overdue,
		CompletionRate:  Percentage(completed, total),
	}
}

// Schedule 目标是否按计划推进
type Schedule struct {
	OnTrack          bool
	DaysRemaining    *int
	ExpectedProgress *float64
}

// EvaluateSchedule 按已用时间比例估算期望进度；没有目标日期、已到期或没有任务时视为按计划
func EvaluateSchedule(goal *model.Goal, metrics model.GoalMetrics, now time.Time) Schedule {
	if goal.TargetDate == nil {
		return Schedule{OnTrack: true}
	}

	days := int(math.Floor(goal.TargetDate.Sub(now).Hours() / 24))
	schedule := Schedule{OnTrack: true, DaysRemaining: &days}

	if days <= 0 || metrics.TaskCount == 0 {
		return schedule
	}

	expected := 50.0
	if goal.StartDate != nil {
		span := goal.TargetDate.Sub(*goal.StartDate)
		if span <= 0 {
			expected = 100
		} else {
			elapsed := now.Sub(*goal.StartDate)
			expected = float64(elapsed) / float64(span) * 100
		}
	}

	schedule.ExpectedProgress = &expected
	schedule.OnTrack = metrics.ProgressPercentage >= expected
	return schedule
}
