package controller

import (
	"context"
	"net/http"
	"quiz_engine_backend/internal/util"
	"quiz_engine_backend/pkg/logger"
	"sort"

	"github.com/gin-gonic/gin"
	"go.uber.org/zap"
)

// HealthCheck pings one backing component.
type HealthCheck func(ctx context.Context) error

type HealthController struct {
	Checks map[string]HealthCheck
}

func NewHealthController(checks map[string]HealthCheck) *HealthController {
	return &HealthController{Checks: checks}
}

// @Summary 健康检查
// @Description 检查服务及存储组件状态
// @Tags 系统
// @Produce json
// @Success 200 {object} util.Response
// @Failure 503 {object} util.Response
// @Router /health [get]
func (c *HealthController) HealthCheck(ctx *gin.Context) {
	names := make([]string, 0, len(c.Checks))
	for name := range c.Checks {
		names = append(names, name)
	}
	sort.Strings(names)

	components := gin.H{}
	healthy := true
	for _, name := range names {
		if err := c.Checks[name](ctx.Request.Context()); err != nil {
			logger.Log.Warn("Health check failed", zap.String("component", name), zap.Error(err))
			components[name] = "down"
			healthy = false
			continue
		}
		components[name] = "up"
	}

	if !healthy {
		ctx.JSON(http.StatusServiceUnavailable, util.Response{
			Code:    http.StatusServiceUnavailable,
			Message: "Component unavailable",
			Data:    gin.H{"status": "degraded", "components": components},
		})
		return
	}

	util.Success(ctx, gin.H{
		"status":     "ok",
		"components": components,
	})
}
