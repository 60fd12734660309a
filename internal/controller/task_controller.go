package controller

import (
	"team_tracker_backend/internal/model"
	"team_tracker_backend/internal/repository"
	"team_tracker_backend/internal/service"
	"team_tracker_backend/internal/util"

	"github.com/gin-gonic/gin"
)

// TaskController 任务接口，包括成员维度的任务与进度
type TaskController struct {
	TaskService     *service.TaskService
	ProgressService *service.ProgressService
}

func NewTaskController(taskService *service.TaskService, progressService *service.ProgressService) *TaskController {
	return &TaskController{
		TaskService:     taskService,
		ProgressService: progressService,
	}
}

type ListTasksQuery struct {
	PageQuery
	GoalID     *uint              `form:"goal_id"`
	AssignedTo *uint              `form:"assigned_to"`
	Status     model.TaskStatus   `form:"status" binding:"omitempty,oneof=todo in_progress completed blocked cancelled"`
	Priority   model.TaskPriority `form:"priority" binding:"omitempty,oneof=low medium high critical"`
}

type AssignedTasksQuery struct {
	Status model.TaskStatus `form:"status" binding:"omitempty,oneof=todo in_progress completed blocked cancelled"`
}

// Create godoc
// @Summary 创建任务
// @Tags 任务
// @Accept json
// @Produce json
// @Param request body service.CreateTaskRequest true "任务信息"
// @Success 201 {object} util.Response{data=model.TaskView}
// @Failure 400 {object} util.Response "请求参数错误"
// @Failure 404 {object} util.Response "目标或成员不存在"
// @Router /api/tasks [post]
func (c *TaskController) Create(ctx *gin.Context) {
	var req service.CreateTaskRequest
	if err := ctx.ShouldBindJSON(&req); err != nil {
		util.BadRequest(ctx, err.Error())
		return
	}

	task, err := c.TaskService.Create(req)
	if err != nil {
		respondError(ctx, err)
		return
	}
	util.Created(ctx, task)
}

// List godoc
// @Summary 任务列表
// @Tags 任务
// @Produce json
// @Param goal_id query int false "目标ID"
// @Param assigned_to query int false "负责人ID"
// @Param status query string false "状态"
// @Param priority query string false "优先级"
// @Param skip query int false "跳过条数"
// @Param limit query int false "返回条数"
// @Success 200 {object} util.Response{data=[]model.TaskView}
// @Router /api/tasks [get]
func (c *TaskController) List(ctx *gin.Context) {
	var q ListTasksQuery
	if err := ctx.ShouldBindQuery(&q); err != nil {
		util.BadRequest(ctx, err.Error())
		return
	}

	filter := repository.TaskFilter{
		GoalID:     q.GoalID,
		AssignedTo: q.AssignedTo,
		Skip:       q.Skip,
		Limit:      q.PageLimit(),
	}
	if q.Status != "" {
		filter.Status = &q.Status
	}
	if q.Priority != "" {
		filter.Priority = &q.Priority
	}

	tasks, err := c.TaskService.List(filter)
	if err != nil {
		respondError(ctx, err)
		return
	}
	util.Success(ctx, tasks)
}

// Get godoc
// @Summary 任务详情
// @Description 包含所属目标、负责人、状态更新数量和最近 5 条状态更新
// @Tags 任务
// @Produce json
// @Param id path int true "任务ID"
// @Success 200 {object} util.Response{data=model.TaskDetail}
// @Failure 404 {object} util.Response "任务不存在"
// @Router /api/tasks/{id} [get]
func (c *TaskController) Get(ctx *gin.Context) {
	id, ok := pathID(ctx, "id")
	if !ok {
		return
	}

	task, err := c.TaskService.Get(id)
	if err != nil {
		respondError(ctx, err)
		return
	}
	util.Success(ctx, task)
}

// Update godoc
// @Summary 更新任务
// @Description assigned_to 传 0 表示取消指派
// @Tags 任务
// @Accept json
// @Produce json
// @Param id path int true "任务ID"
// @Param request body service.UpdateTaskRequest true "需要更新的字段"
// @Success 200 {object} util.Response{data=model.TaskView}
// @Failure 404 {object} util.Response "任务、目标或成员不存在"
// @Router /api/tasks/{id} [put]
func (c *TaskController) Update(ctx *gin.Context) {
	id, ok := pathID(ctx, "id")
	if !ok {
		return
	}

	var req service.UpdateTaskRequest
	if err := ctx.ShouldBindJSON(&req); err != nil {
		util.BadRequest(ctx, err.Error())
		return
	}

	task, err := c.TaskService.Update(id, req)
	if err != nil {
		respondError(ctx, err)
		return
	}
	util.Success(ctx, task)
}

// Delete godoc
// @Summary 删除任务
// @Tags 任务
// @Param id path int true "任务ID"
// @Success 204 "删除成功"
// @Failure 404 {object} util.Response "任务不存在"
// @Router /api/tasks/{id} [delete]
func (c *TaskController) Delete(ctx *gin.Context) {
	id, ok := pathID(ctx, "id")
	if !ok {
		return
	}

	if err := c.TaskService.Delete(ctx.Request.Context(), id); err != nil {
		respondError(ctx, err)
		return
	}
	util.NoContent(ctx)
}

// Assigned godoc
// @Summary 成员的任务
// @Description 按截止日期升序
// @Tags 任务
// @Produce json
// @Param memberId path int true "成员ID"
// @Param status query string false "状态"
// @Success 200 {object} util.Response{data=[]model.TaskView}
// @Failure 404 {object} util.Response "成员不存在"
// @Router /api/tasks/member/{memberId}/assigned [get]
func (c *TaskController) Assigned(ctx *gin.Context) {
	memberID, ok := pathID(ctx, "memberId")
	if !ok {
		return
	}

	var q AssignedTasksQuery
	if err := ctx.ShouldBindQuery(&q); err != nil {
		util.BadRequest(ctx, err.Error())
		return
	}

	var status *model.TaskStatus
	if q.Status != "" {
		status = &q.Status
	}

	tasks, err := c.TaskService.AssignedTo(memberID, status)
	if err != nil {
		respondError(ctx, err)
		return
	}
	util.Success(ctx, tasks)
}

// MemberProgress godoc
// @Summary 成员进度报告
// @Tags 任务
// @Produce json
// @Param memberId path int true "成员ID"
// @Success 200 {object} util.Response{data=model.MemberProgressReport}
// @Failure 404 {object} util.Response "成员不存在"
// @Router /api/tasks/member/{memberId}/progress [get]
func (c *TaskController) MemberProgress(ctx *gin.Context) {
	memberID, ok := pathID(ctx, "memberId")
	if !ok {
		return
	}

	report, err := c.ProgressService.MemberProgress(memberID)
	if err != nil {
		respondError(ctx, err)
		return
	}
	util.Success(ctx, report)
}
