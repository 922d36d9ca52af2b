package controller

import (
	"quiz_engine_backend/internal/service"
	"quiz_engine_backend/internal/util"

	"github.com/gin-gonic/gin"
)

type StatisticsController struct {
	Service *service.StatisticsService
}

func NewStatisticsController(s *service.StatisticsService) *StatisticsController {
	return &StatisticsController{Service: s}
}

// @Summary 测试统计
// @Description 每个已保存的测试一条：作答次数与平均分
// @Tags 统计
// @Produce json
// @Success 200 {object} util.Response
// @Router /statistics [get]
func (c *StatisticsController) GetStatistics(ctx *gin.Context) {
	stats, err := c.Service.GetTestStatistics(ctx.Request.Context())
	if err != nil {
		handleError(ctx, err)
		return
	}
	util.Success(ctx, stats)
}
