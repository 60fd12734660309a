package app

import (
	"team_tracker_backend/docs"
	"team_tracker_backend/pkg/monitoring"

	"github.com/gin-gonic/gin"
	swaggerFiles "github.com/swaggo/files"
	ginSwagger "github.com/swaggo/gin-swagger"
)

func (a *App) registerRoutes(router *gin.Engine, c *controllers) {
	docs.SwaggerInfo.BasePath = "/"
	router.GET("/swagger/*any", ginSwagger.WrapHandler(swaggerFiles.Handler, ginSwagger.URL("/swagger/doc.json")))

	router.GET("/metrics", monitoring.PrometheusHandler())

	api := router.Group("/api")
	api.GET("/health", c.health.HealthCheck)

	registerTrackerRoutes(api, c)
	registerAIRoutes(api, c)
}

func registerTrackerRoutes(api *gin.RouterGroup, c *controllers) {
	members := api.Group("/team-members")
	{
		members.POST("", c.member.Create)
		members.GET("", c.member.List)
		members.GET("/:id", c.member.Get)
		members.PUT("/:id", c.member.Update)
		members.DELETE("/:id", c.member.Delete)
	}

	goals := api.Group("/goals")
	{
		goals.POST("", c.goal.Create)
		goals.GET("", c.goal.List)
		goals.GET("/:id", c.goal.Get)
		goals.PUT("/:id", c.goal.Update)
		goals.DELETE("/:id", c.goal.Delete)
		goals.GET("/:id/progress", c.goal.Progress)
	}

	tasks := api.Group("/tasks")
	{
		tasks.POST("", c.task.Create)
		tasks.GET("", c.task.List)
		tasks.GET("/:id", c.task.Get)
		tasks.PUT("/:id", c.task.Update)
		tasks.DELETE("/:id", c.task.Delete)
		tasks.GET("/member/:memberId/assigned", c.task.Assigned)
		tasks.GET("/member/:memberId/progress", c.task.MemberProgress)
	}

	updates := api.Group("/status-updates")
	{
		updates.POST("", c.update.Create)
		updates.GET("", c.update.List)
		updates.GET("/:id", c.update.Get)
		updates.PUT("/:id", c.update.Update)
		updates.DELETE("/:id", c.update.Delete)
	}
}

func registerAIRoutes(api *gin.RouterGroup, c *controllers) {
	ai := api.Group("/ai")
	{
		ai.POST("/search", c.ai.Search)
		ai.POST("/weekly-summary", c.ai.WeeklySummary)
		ai.POST("/sync-vector-store", c.ai.SyncVectorStore)
		ai.GET("/health-check", c.ai.HealthCheck)
	}
}
