package model

import "time"

// StatusUpdate 成员提交的每日状态
type StatusUpdate struct {
	ID           uint      `gorm:"primaryKey;autoIncrement" json:"id"`
	TeamMemberID uint      `gorm:"not null;index" json:"team_member_id"`
	TaskID       *uint     `gorm:"index" json:"task_id"`
	StatusText   string    `gorm:"type:text;not null" json:"status_text"`
	Date         time.Time `gorm:"not null;index" json:"date"`
	CreatedAt    time.Time `json:"created_at"`

	TeamMember *TeamMember `gorm:"foreignKey:TeamMemberID;constraint:OnDelete:CASCADE" json:"team_member,omitempty"`
	Task       *Task       `gorm:"foreignKey:TaskID;constraint:OnDelete:CASCADE" json:"-"`
}

func (StatusUpdate) TableName() string {
	return "status_updates"
}

// MemberName 返回预加载的成员名，未加载时为空
func (s *StatusUpdate) MemberName() string {
	if s.TeamMember == nil {
		return ""
	}
	return s.TeamMember.Name
}
