package util

import "errors"

var (
	ErrTeamMemberNotFound   = errors.New("team member not found")
	ErrGoalNotFound         = errors.New("goal not found")
	ErrTaskNotFound         = errors.New("task not found")
	ErrStatusUpdateNotFound = errors.New("status update not found")
	ErrEmailRegistered      = errors.New("team member with this email already exists")
	ErrResyncInProgress     = errors.New("vector store sync already running")
	ErrInvalidDateRange     = errors.New("end_date must not be before start_date")
	ErrEmptyStatusText      = errors.New("status_text must not be empty")
)

// IsValidationError 参数校验类错误，映射为 400
func IsValidationError(err error) bool {
	return errors.Is(err, ErrInvalidDateRange) || errors.Is(err, ErrEmptyStatusText)
}
