package controller

import (
	"errors"
	"team_tracker_backend/internal/util"

	"github.com/gin-gonic/gin"
)

// respondError 将领域错误映射为 HTTP 状态码
func respondError(ctx *gin.Context, err error) {
	switch {
	case errors.Is(err, util.ErrTeamMemberNotFound),
		errors.Is(err, util.ErrGoalNotFound),
		errors.Is(err, util.ErrTaskNotFound),
		errors.Is(err, util.ErrStatusUpdateNotFound):
		util.NotFound(ctx, err.Error())
	case errors.Is(err, util.ErrEmailRegistered),
		errors.Is(err, util.ErrResyncInProgress):
		util.Conflict(ctx, err.Error())
	case util.IsValidationError(err):
		util.BadRequest(ctx, err.Error())
	default:
		util.LogInternalError(ctx, err)
	}
}

// pathID 解析路径参数，失败时直接返回 400
func pathID(ctx *gin.Context, name string) (uint, bool) {
	id, ok := util.ParseID(ctx.Param(name))
	if !ok {
		util.BadRequest(ctx, "invalid "+name)
		return 0, false
	}
	return id, true
}

// PageQuery 通用分页参数；limit 缺省时为 nil，显式传 0 会被校验拒绝
type PageQuery struct {
	Skip  int  `form:"skip" binding:"omitempty,min=0"`
	Limit *int `form:"limit" binding:"omitempty,min=1,max=1000"`
}

// PageLimit 未传 limit 时取默认值
func (q PageQuery) PageLimit() int {
	if q.Limit == nil {
		return util.DefaultLimit
	}
	return *q.Limit
}
