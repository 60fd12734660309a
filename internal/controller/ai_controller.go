package controller

import (
	"team_tracker_backend/internal/service"
	"team_tracker_backend/internal/util"

	"github.com/gin-gonic/gin"
)

// AIController 语义检索、周报与索引维护
type AIController struct {
	InsightService *service.InsightService
}

func NewAIController(insightService *service.InsightService) *AIController {
	return &AIController{InsightService: insightService}
}

// Search godoc
// @Summary 语义检索问答
// @Description 例如 "What did John work on last month?"；生成失败时 answer 为错误描述，状态码不变
// @Tags AI
// @Accept json
// @Produce json
// @Param request body service.SearchRequest true "问题"
// @Success 200 {object} util.Response{data=service.SearchResult}
// @Failure 400 {object} util.Response "请求参数错误"
// @Router /api/ai/search [post]
func (c *AIController) Search(ctx *gin.Context) {
	var req service.SearchRequest
	if err := ctx.ShouldBindJSON(&req); err != nil {
		util.BadRequest(ctx, err.Error())
		return
	}

	result, err := c.InsightService.Search(ctx.Request.Context(), req.Query, req.Limit)
	if err != nil {
		respondError(ctx, err)
		return
	}
	util.Success(ctx, result)
}

// WeeklySummary godoc
// @Summary 周期总结
// @Description end_date 缺省为 start_date 之后 7 天
// @Tags AI
// @Accept json
// @Produce json
// @Param request body service.PeriodSummaryRequest true "时间窗口"
// @Success 200 {object} util.Response{data=service.PeriodSummary}
// @Failure 400 {object} util.Response "请求参数错误"
// @Router /api/ai/weekly-summary [post]
func (c *AIController) WeeklySummary(ctx *gin.Context) {
	var req service.PeriodSummaryRequest
	if err := ctx.ShouldBindJSON(&req); err != nil {
		util.BadRequest(ctx, err.Error())
		return
	}

	summary, err := c.InsightService.PeriodSummary(ctx.Request.Context(), req)
	if err != nil {
		respondError(ctx, err)
		return
	}
	util.Success(ctx, summary)
}

// SyncVectorStore godoc
// @Summary 全量同步语义索引
// @Tags AI
// @Produce json
// @Success 200 {object} util.Response{data=service.ResyncResult}
// @Failure 409 {object} util.Response "同步进行中"
// @Router /api/ai/sync-vector-store [post]
func (c *AIController) SyncVectorStore(ctx *gin.Context) {
	result, err := c.InsightService.Resync(ctx.Request.Context())
	if err != nil {
		respondError(ctx, err)
		return
	}
	util.Success(ctx, result)
}

// HealthCheck godoc
// @Summary AI 组件状态
// @Tags AI
// @Produce json
// @Success 200 {object} util.Response{data=service.HealthReport}
// @Router /api/ai/health-check [get]
func (c *AIController) HealthCheck(ctx *gin.Context) {
	util.Success(ctx, c.InsightService.Health(ctx.Request.Context()))
}
