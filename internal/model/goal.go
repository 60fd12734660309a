package model

import "time"

type GoalStatus string

const (
	GoalNotStarted GoalStatus = "not_started"
	GoalInProgress GoalStatus = "in_progress"
	GoalCompleted  GoalStatus = "completed"
	GoalOnHold     GoalStatus = "on_hold"
	GoalCancelled  GoalStatus = "cancelled"
)

func (s GoalStatus) Valid() bool {
	switch s {
	case GoalNotStarted, GoalInProgress, GoalCompleted, GoalOnHold, GoalCancelled:
		return true
	}
	return false
}

type Goal struct {
	BaseModel
	Title         string     `gorm:"size:200;not null" json:"title"`
	Description   string     `gorm:"type:text" json:"description"`
	Status        GoalStatus `gorm:"size:20;not null;default:not_started;index" json:"status"`
	StartDate     *time.Time `json:"start_date"`
	TargetDate    *time.Time `json:"target_date"`
	CompletedDate *time.Time `json:"completed_date"`
}

func (Goal) TableName() string {
	return "goals"
}

// SetStatus 更新状态；首次进入 completed 时记录完成时间，之后不再改写
func (g *Goal) SetStatus(status GoalStatus, now time.Time) {
	g.Status = status
	if status == GoalCompleted && g.CompletedDate == nil {
		t := now
		g.CompletedDate = &t
	}
}
