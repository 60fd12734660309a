package controller

import (
	"team_tracker_backend/internal/repository"
	"team_tracker_backend/internal/service"
	"team_tracker_backend/internal/util"

	"github.com/gin-gonic/gin"
)

type StatusUpdateController struct {
	UpdateService *service.StatusUpdateService
}

func NewStatusUpdateController(updateService *service.StatusUpdateService) *StatusUpdateController {
	return &StatusUpdateController{UpdateService: updateService}
}

type ListStatusUpdatesQuery struct {
	PageQuery
	TeamMemberID *uint  `form:"team_member_id"`
	TaskID       *uint  `form:"task_id"`
	StartDate    string `form:"start_date"`
	EndDate      string `form:"end_date"`
}

// Create godoc
// @Summary 提交状态更新
// @Description 写入后同步到语义索引，索引失败不影响结果
// @Tags 状态更新
// @Accept json
// @Produce json
// @Param request body service.CreateStatusUpdateRequest true "状态更新"
// @Success 201 {object} util.Response{data=model.StatusUpdate}
// @Failure 400 {object} util.Response "请求参数错误"
// @Failure 404 {object} util.Response "成员或任务不存在"
// @Router /api/status-updates [post]
func (c *StatusUpdateController) Create(ctx *gin.Context) {
	var req service.CreateStatusUpdateRequest
	if err := ctx.ShouldBindJSON(&req); err != nil {
		util.BadRequest(ctx, err.Error())
		return
	}

	update, err := c.UpdateService.Create(ctx.Request.Context(), req)
	if err != nil {
		respondError(ctx, err)
		return
	}
	util.Created(ctx, update)
}

// List godoc
// @Summary 状态更新列表
// @Description 按日期倒序
// @Tags 状态更新
// @Produce json
// @Param team_member_id query int false "成员ID"
// @Param task_id query int false "任务ID"
// @Param start_date query string false "开始日期（RFC3339 或 2006-01-02）"
// @Param end_date query string false "结束日期（RFC3339 或 2006-01-02）"
// @Param skip query int false "跳过条数"
// @Param limit query int false "返回条数"
// @Success 200 {object} util.Response{data=[]model.StatusUpdate}
// @Router /api/status-updates [get]
func (c *StatusUpdateController) List(ctx *gin.Context) {
	var q ListStatusUpdatesQuery
	if err := ctx.ShouldBindQuery(&q); err != nil {
		util.BadRequest(ctx, err.Error())
		return
	}

	start, err := util.ParseDate(q.StartDate)
	if err != nil {
		util.BadRequest(ctx, "invalid start_date")
		return
	}
	end, err := util.ParseDate(q.EndDate)
	if err != nil {
		util.BadRequest(ctx, "invalid end_date")
		return
	}

	updates, err := c.UpdateService.List(repository.StatusUpdateFilter{
		TeamMemberID: q.TeamMemberID,
		TaskID:       q.TaskID,
		StartDate:    start,
		EndDate:      end,
		Skip:         q.Skip,
		Limit:        q.PageLimit(),
	})
	if err != nil {
		respondError(ctx, err)
		return
	}
	util.Success(ctx, updates)
}

// Get godoc
// @Summary 状态更新详情
// @Tags 状态更新
// @Produce json
// @Param id path int true "状态更新ID"
// @Success 200 {object} util.Response{data=model.StatusUpdate}
// @Failure 404 {object} util.Response "状态更新不存在"
// @Router /api/status-updates/{id} [get]
func (c *StatusUpdateController) Get(ctx *gin.Context) {
	id, ok := pathID(ctx, "id")
	if !ok {
		return
	}

	update, err := c.UpdateService.Get(id)
	if err != nil {
		respondError(ctx, err)
		return
	}
	util.Success(ctx, update)
}

// Update godoc
// @Summary 更新状态更新
// @Tags 状态更新
// @Accept json
// @Produce json
// @Param id path int true "状态更新ID"
// @Param request body service.UpdateStatusUpdateRequest true "需要更新的字段"
// @Success 200 {object} util.Response{data=model.StatusUpdate}
// @Failure 404 {object} util.Response "状态更新不存在"
// @Router /api/status-updates/{id} [put]
func (c *StatusUpdateController) Update(ctx *gin.Context) {
	id, ok := pathID(ctx, "id")
	if !ok {
		return
	}

	var req service.UpdateStatusUpdateRequest
	if err := ctx.ShouldBindJSON(&req); err != nil {
		util.BadRequest(ctx, err.Error())
		return
	}

	update, err := c.UpdateService.Update(ctx.Request.Context(), id, req)
	if err != nil {
		respondError(ctx, err)
		return
	}
	util.Success(ctx, update)
}

// Delete godoc
// @Summary 删除状态更新
// @Tags 状态更新
// @Param id path int true "状态更新ID"
// @Success 204 "删除成功"
// @Failure 404 {object} util.Response "状态更新不存在"
// @Router /api/status-updates/{id} [delete]
func (c *StatusUpdateController) Delete(ctx *gin.Context) {
	id, ok := pathID(ctx, "id")
	if !ok {
		return
	}

	if err := c.UpdateService.Delete(ctx.Request.Context(), id); err != nil {
		respondError(ctx, err)
		return
	}
	util.NoContent(ctx)
}
