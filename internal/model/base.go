package model

import (
	"time"
)

// BaseModel 通用主键与时间戳（不带软删除，所有删除均为物理删除）
type BaseModel struct {
	ID        uint      `gorm:"primaryKey;autoIncrement" json:"id"`
	CreatedAt time.Time `json:"created_at"`
	UpdatedAt time.Time `json:"updated_at"`
}
