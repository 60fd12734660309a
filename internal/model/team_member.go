package model

// TeamMember 团队成员
type TeamMember struct {
	BaseModel
	Name  string `gorm:"size:100;not null;index" json:"name"`
	Email string `gorm:"size:255;not null;uniqueIndex" json:"email"`
	Role  string `gorm:"size:100" json:"role"`
}

func (TeamMember) TableName() string {
	return "team_members"
}
