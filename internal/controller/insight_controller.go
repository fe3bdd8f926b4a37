package controller

import (
	"readflow_backend/internal/service"
	"readflow_backend/internal/util"

	"github.com/gin-gonic/gin"
)

// InsightController serves AI-generated reading insights.
type InsightController struct {
	InsightService *service.InsightService
}

func NewInsightController(insightService *service.InsightService) *InsightController {
	return &InsightController{InsightService: insightService}
}

// @Summary Get reading insights
// @Description Summarizes recent sessions for the AI gateway and returns its
// tips; falls back to canned insights when the gateway is unavailable
// @Tags insights
// @Produce json
// @Success 200 {object} util.Response
// @Router /api/insights [get]
func (c *InsightController) GetInsights(ctx *gin.Context) {
	util.Success(ctx, c.InsightService.GenerateInsights(ctx.Request.Context()))
}
