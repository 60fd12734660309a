package controller

import (
	"team_tracker_backend/internal/service"
	"team_tracker_backend/internal/util"

	"github.com/gin-gonic/gin"
)

// TeamMemberController 团队成员接口
type TeamMemberController struct {
	MemberService *service.TeamMemberService
}

func NewTeamMemberController(memberService *service.TeamMemberService) *TeamMemberController {
	return &TeamMemberController{MemberService: memberService}
}

// Create godoc
// @Summary 创建团队成员
// @Tags 团队成员
// @Accept json
// @Produce json
// @Param request body service.CreateTeamMemberRequest true "成员信息"
// @Success 201 {object} util.Response{data=model.TeamMember}
// @Failure 400 {object} util.Response "请求参数错误"
// @Failure 409 {object} util.Response "邮箱已存在"
// @Router /api/team-members [post]
func (c *TeamMemberController) Create(ctx *gin.Context) {
	var req service.CreateTeamMemberRequest
	if err := ctx.ShouldBindJSON(&req); err != nil {
		util.BadRequest(ctx, err.Error())
		return
	}

	member, err := c.MemberService.Create(req)
	if err != nil {
		respondError(ctx, err)
		return
	}
	util.Created(ctx, member)
}

// List godoc
// @Summary 成员列表
// @Tags 团队成员
// @Produce json
// @Param skip query int false "跳过条数"
// @Param limit query int false "返回条数"
// @Success 200 {object} util.Response{data=[]model.TeamMember}
// @Router /api/team-members [get]
func (c *TeamMemberController) List(ctx *gin.Context) {
	var q PageQuery
	if err := ctx.ShouldBindQuery(&q); err != nil {
		util.BadRequest(ctx, err.Error())
		return
	}

	members, err := c.MemberService.List(q.Skip, q.PageLimit())
	if err != nil {
		respondError(ctx, err)
		return
	}
	util.Success(ctx, members)
}

// Get godoc
// @Summary 成员详情
// @Tags 团队成员
// @Produce json
// @Param id path int true "成员ID"
// @Success 200 {object} util.Response{data=model.TeamMember}
// @Failure 404 {object} util.Response "成员不存在"
// @Router /api/team-members/{id} [get]
func (c *TeamMemberController) Get(ctx *gin.Context) {
	id, ok := pathID(ctx, "id")
	if !ok {
		return
	}

	member, err := c.MemberService.Get(id)
	if err != nil {
		respondError(ctx, err)
		return
	}
	util.Success(ctx, member)
}

// Update godoc
// @Summary 更新成员
// @Tags 团队成员
// @Accept json
// @Produce json
// @Param id path int true "成员ID"
// @Param request body service.UpdateTeamMemberRequest true "需要更新的字段"
// @Success 200 {object} util.Response{data=model.TeamMember}
// @Failure 404 {object} util.Response "成员不存在"
// @Failure 409 {object} util.Response "邮箱已存在"
// @Router /api/team-members/{id} [put]
func (c *TeamMemberController) Update(ctx *gin.Context) {
	id, ok := pathID(ctx, "id")
	if !ok {
		return
	}

	var req service.UpdateTeamMemberRequest
	if err := ctx.ShouldBindJSON(&req); err != nil {
		util.BadRequest(ctx, err.Error())
		return
	}

	member, err := c.MemberService.Update(id, req)
	if err != nil {
		respondError(ctx, err)
		return
	}
	util.Success(ctx, member)
}

// Delete godoc
// @Summary 删除成员
// @Description 同时删除该成员的状态更新和被指派的任务
// @Tags 团队成员
// @Param id path int true "成员ID"
// @Success 204 "删除成功"
// @Failure 404 {object} util.Response "成员不存在"
// @Router /api/team-members/{id} [delete]
func (c *TeamMemberController) Delete(ctx *gin.Context) {
	id, ok := pathID(ctx, "id")
	if !ok {
		return
	}

	if err := c.MemberService.Delete(ctx.Request.Context(), id); err != nil {
		respondError(ctx, err)
		return
	}
	util.NoContent(ctx)
}
