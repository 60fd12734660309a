package model

// 以下为只读视图：实体快照 + 实时计算的指标，不写回数据库

// TaskStatusCounts 按状态统计的任务数
type TaskStatusCounts map[TaskStatus]int64

func (c TaskStatusCounts) Total() int64 {
	var total int64
	for _, n := range c {
		total += n
	}
	return total
}

type GoalMetrics struct {
	TaskCount          int64   `json:"task_count"`
	CompletedTaskCount int64   `json:"completed_task_count"`
	ProgressPercentage float64 `json:"progress_percentage"`
}

type GoalView struct {
	Goal
	GoalMetrics
}

type TaskView struct {
	Task
	UpdateCount int64 `json:"update_count"`
}

type GoalDetail struct {
	GoalView
	Tasks []TaskView `json:"tasks"`
}

type TaskDetail struct {
	TaskView
	Goal          *GoalView      `json:"goal"`
	Assignee      *TeamMember    `json:"assignee"`
	RecentUpdates []StatusUpdate `json:"recent_updates"`
}

type GoalProgressReport struct {
	Goal               GoalView `json:"goal"`
	TotalTasks         int64    `json:"total_tasks"`
	CompletedTasks     int64    `json:"completed_tasks"`
	InProgressTasks    int64    `json:"in_progress_tasks"`
	BlockedTasks       int64    `json:"blocked_tasks"`
	ProgressPercentage float64  `json:"progress_percentage"`
	OnTrack            bool     `json:"on_track"`
	DaysRemaining      *int     `json:"days_remaining"`
}

type MemberMetrics struct {
	AssignedTasks   int64   `json:"assigned_tasks"`
	CompletedTasks  int64   `json:"completed_tasks"`
	InProgressTasks int64   `json:"in_progress_tasks"`
	OverdueTasks    int64   `json:"overdue_tasks"`
	CompletionRate  float64 `json:"completion_rate"`
}

type MemberProgressReport struct {
	TeamMember TeamMember `json:"team_member"`
	MemberMetrics
}
