package model

import "time"

type TaskStatus string

const (
	TaskTodo       TaskStatus = "todo"
	TaskInProgress TaskStatus = "in_progress"
	TaskCompleted  TaskStatus = "completed"
	TaskBlocked    TaskStatus = "blocked"
	TaskCancelled  TaskStatus = "cancelled"
)

func (s TaskStatus) Valid() bool {
	switch s {
	case TaskTodo, TaskInProgress, TaskCompleted, TaskBlocked, TaskCancelled:
		return true
	}
	return false
}

type TaskPriority string

const (
	PriorityLow      TaskPriority = "low"
	PriorityMedium   TaskPriority = "medium"
	PriorityHigh     TaskPriority = "high"
	PriorityCritical TaskPriority = "critical"
)

func (p TaskPriority) Valid() bool {
	switch p {
	case PriorityLow, PriorityMedium, PriorityHigh, PriorityCritical:
		return true
	}
	return false
}

type Task struct {
	BaseModel
	GoalID        uint         `gorm:"not null;index" json:"goal_id"`
	Title         string       `gorm:"size:200;not null" json:"title"`
	Description   string       `gorm:"type:text" json:"description"`
	AssignedTo    *uint        `gorm:"index" json:"assigned_to"`
	Status        TaskStatus   `gorm:"size:20;not null;default:todo;index" json:"status"`
	Priority      TaskPriority `gorm:"size:20;not null;default:medium" json:"priority"`
	DueDate       *time.Time   `gorm:"index" json:"due_date"`
	CompletedDate *time.Time   `json:"completed_date"`

	Goal     *Goal       `gorm:"foreignKey:GoalID;constraint:OnDelete:CASCADE" json:"-"`
	Assignee *TeamMember `gorm:"foreignKey:AssignedTo;constraint:OnDelete:CASCADE" json:"-"`
}

func (Task) TableName() string {
	return "tasks"
}

// SetStatus 与 Goal.SetStatus 相同：completed_date 只写一次
func (t *Task) SetStatus(status TaskStatus, now time.Time) {
	t.Status = status
	if status == TaskCompleted && t.CompletedDate == nil {
		ts := now
		t.CompletedDate = &ts
	}
}

// IsOverdue 截止日期已过且未完成
func (t *Task) IsOverdue(now time.Time) bool {
	return t.DueDate != nil && t.DueDate.Before(now) && t.Status != TaskCompleted
}
