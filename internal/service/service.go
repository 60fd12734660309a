package service

import (
	"errors"
	"strings"
	"time"

	"gorm.io/gorm"
)

// Clock 可注入的时间源，统一使用 UTC
type Clock func() time.Time

func SystemClock() time.Time {
	return time.Now().UTC()
}

// translateNotFound 将 gorm 的记录不存在转换为领域错误
func translateNotFound(err error, target error) error {
	if errors.Is(err, gorm.ErrRecordNotFound) {
		return target
	}
	return err
}

// isUniqueViolation 兼容 mysql / postgres / sqlite 的唯一约束错误
func isUniqueViolation(err error) bool {
	if err == nil {
		return false
	}
	if errors.Is(err, gorm.ErrDuplicatedKey) {
		return true
	}
	msg := err.Error()
	return strings.Contains(msg, "UNIQUE constraint failed") ||
		strings.Contains(msg, "Duplicate entry") ||
		strings.Contains(msg, "duplicate key value")
}

func utcPtr(t *time.Time) *time.Time {
	if t == nil {
		return nil
	}
	v := t.UTC()
	return &v
}
