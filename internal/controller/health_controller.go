package controller

import (
	"context"
	"net/http"
	"team_tracker_backend/internal/util"
	"time"

	"github.com/gin-gonic/gin"
	"github.com/go-redis/redis/v8"
	"gorm.io/gorm"
)

const (
	depUp          = "up"
	depDown        = "down"
	statusOK       = "ok"
	statusDegraded = "degraded"
	pingTimeout    = 2 * time.Second
)

// Dependency 单个依赖的检查结果
type Dependency struct {
	Name     string `json:"name"`
	Status   string `json:"status"`
	Required bool   `json:"required"`
	Message  string `json:"message,omitempty"`
}

// HealthReport /api/health 的返回体
type HealthReport struct {
	Status string       `json:"status"`
	Deps   []Dependency `json:"deps"`
}

// HealthController 数据库必需，redis 只承载重建锁，可为空
type HealthController struct {
	DB    *gorm.DB
	Redis *redis.Client
}

func NewHealthController(db *gorm.DB, rdb *redis.Client) *HealthController {
	return &HealthController{DB: db, Redis: rdb}
}

// @Summary 健康检查
// @Description 逐项检查数据库与 redis，数据库不可用时返回 503
// @Tags 系统
// @Produce json
// @Success 200 {object} util.Response{data=HealthReport}
// @Failure 503 {object} util.Response{data=HealthReport} "数据库不可用"
// @Router /api/health [get]
func (c *HealthController) HealthCheck(ctx *gin.Context) {
	reqCtx, cancel := context.WithTimeout(ctx.Request.Context(), pingTimeout)
	defer cancel()

	report := c.check(reqCtx)
	if report.Status == depDown {
		ctx.JSON(http.StatusServiceUnavailable, util.Response{
			Code:    http.StatusServiceUnavailable,
			Message: "Database unavailable",
			Data:    report,
		})
		return
	}
	util.Success(ctx, report)
}

func (c *HealthController) check(ctx context.Context) HealthReport {
	deps := []Dependency{c.checkDB(ctx)}
	if c.Redis != nil {
		deps = append(deps, c.checkRedis(ctx))
	}

	report := HealthReport{Status: statusOK, Deps: deps}
	for _, dep := range deps {
		if dep.Status == depUp {
			continue
		}
		if dep.Required {
			report.Status = depDown
			break
		}
		report.Status = statusDegraded
	}
	return report
}

func (c *HealthController) checkDB(ctx context.Context) Dependency {
	dep := Dependency{Name: "database", Status: depUp, Required: true}
	if c.DB == nil {
		dep.Status, dep.Message = depDown, "not configured"
		return dep
	}
	dep.Name = "database:" + c.DB.Name()

	sqlDB, err := c.DB.DB()
	if err == nil {
		err = sqlDB.PingContext(ctx)
	}
	if err != nil {
		dep.Status, dep.Message = depDown, err.Error()
	}
	return dep
}

func (c *HealthController) checkRedis(ctx context.Context) Dependency {
	dep := Dependency{Name: "redis", Status: depUp}
	if err := c.Redis.Ping(ctx).Err(); err != nil {
		dep.Status, dep.Message = depDown, err.Error()
	}
	return dep
}
