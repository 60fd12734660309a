package controller

import (
	"team_tracker_backend/internal/model"
	"team_tracker_backend/internal/service"
	"team_tracker_backend/internal/util"

	"github.com/gin-gonic/gin"
)

type GoalController struct {
	GoalService     *service.GoalService
	ProgressService *service.ProgressService
}

func NewGoalController(goalService *service.GoalService, progressService *service.ProgressService) *GoalController {
	return &GoalController{
		GoalService:     goalService,
		ProgressService: progressService,
	}
}

type ListGoalsQuery struct {
	PageQuery
	Status model.GoalStatus `form:"status" binding:"omitempty,oneof=not_started in_progress completed on_hold cancelled"`
}

// Create godoc
// @Summary 创建目标
// @Tags 目标
// @Accept json
// @Produce json
// @Param request body service.CreateGoalRequest true "目标信息"
// @Success 201 {object} util.Response{data=model.GoalView}
// @Failure 400 {object} util.Response "请求参数错误"
// @Router /api/goals [post]
func (c *GoalController) Create(ctx *gin.Context) {
	var req service.CreateGoalRequest
	if err := ctx.ShouldBindJSON(&req); err != nil {
		util.BadRequest(ctx, err.Error())
		return
	}

	goal, err := c.GoalService.Create(req)
	if err != nil {
		respondError(ctx, err)
		return
	}
	util.Created(ctx, goal)
}

// List godoc
// @Summary 目标列表（含进度）
// @Tags 目标
// @Produce json
// @Param status query string false "状态过滤"
// @Param skip query int false "跳过条数"
// @Param limit query int false "返回条数"
// @Success 200 {object} util.Response{data=[]model.GoalView}
// @Router /api/goals [get]
func (c *GoalController) List(ctx *gin.Context) {
	var q ListGoalsQuery
	if err := ctx.ShouldBindQuery(&q); err != nil {
		util.BadRequest(ctx, err.Error())
		return
	}

	var status *model.GoalStatus
	if q.Status != "" {
		status = &q.Status
	}

	goals, err := c.GoalService.List(status, q.Skip, q.PageLimit())
	if err != nil {
		respondError(ctx, err)
		return
	}
	util.Success(ctx, goals)
}

// Get godoc
// @Summary 目标详情（含任务）
// @Tags 目标
// @Produce json
// @Param id path int true "目标ID"
// @Success 200 {object} util.Response{data=model.GoalDetail}
// @Failure 404 {object} util.Response "目标不存在"
// @Router /api/goals/{id} [get]
func (c *GoalController) Get(ctx *gin.Context) {
	id, ok := pathID(ctx, "id")
	if !ok {
		return
	}

	goal, err := c.GoalService.Get(id)
	if err != nil {
		respondError(ctx, err)
		return
	}
	util.Success(ctx, goal)
}

// Update godoc
// @Summary 更新目标
// @Tags 目标
// @Accept json
// @Produce json
// @Param id path int true "目标ID"
// @Param request body service.UpdateGoalRequest true "需要更新的字段"
// @Success 200 {object} util.Response{data=model.GoalView}
// @Failure 404 {object} util.Response "目标不存在"
// @Router /api/goals/{id} [put]
func (c *GoalController) Update(ctx *gin.Context) {
	id, ok := pathID(ctx, "id")
	if !ok {
		return
	}

	var req service.UpdateGoalRequest
	if err := ctx.ShouldBindJSON(&req); err != nil {
		util.BadRequest(ctx, err.Error())
		return
	}

	goal, err := c.GoalService.Update(id, req)
	if err != nil {
		respondError(ctx, err)
		return
	}
	util.Success(ctx, goal)
}

// Delete godoc
// @Summary 删除目标
// @Description 同时删除目标下的任务及其状态更新
// @Tags 目标
// @Param id path int true "目标ID"
// @Success 204 "删除成功"
// @Failure 404 {object} util.Response "目标不存在"
// @Router /api/goals/{id} [delete]
func (c *GoalController) Delete(ctx *gin.Context) {
	id, ok := pathID(ctx, "id")
	if !ok {
		return
	}

	if err := c.GoalService.Delete(ctx.Request.Context(), id); err != nil {
		respondError(ctx, err)
		return
	}
	util.NoContent(ctx)
}

// Progress godoc
// @Summary 目标进度报告
// @Tags 目标
// @Produce json
// @Param id path int true "目标ID"
// @Success 200 {object} util.Response{data=model.GoalProgressReport}
// @Failure 404 {object} util.Response "目标不存在"
// @Router /api/goals/{id}/progress [get]
func (c *GoalController) Progress(ctx *gin.Context) {
	id, ok := pathID(ctx, "id")
	if !ok {
		return
	}

	report, err := c.ProgressService.GoalProgress(id)
	if err != nil {
		respondError(ctx, err)
		return
	}
	util.Success(ctx, report)
}
