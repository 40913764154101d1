package controller

import (
	"time"

	"github.com/gin-gonic/gin"

	"chadjee_backend/internal/model"
	"chadjee_backend/internal/service"
	"chadjee_backend/internal/util"
)

type AnalyticsController struct {
	AnalyticsService *service.AnalyticsService
}

func NewAnalyticsController(analyticsService *service.AnalyticsService) *AnalyticsController {
	return &AnalyticsController{AnalyticsService: analyticsService}
}

// GetOverview godoc
// @Summary Study analytics overview
// @Description Per-subject totals, daily minutes and streak for a time window
// @Tags analytics
// @Produce json
// @Security BearerAuth
// @Param window query string false "time window" Enums(week, month, year) default(month)
// @Success 200 {object} util.Response{data=service.Overview}
// @Router /api/analytics/overview [get]
func (c *AnalyticsController) GetOverview(ctx *gin.Context) {
	claims := util.GetUserFromContext(ctx)
	if claims == nil {
		util.Unauthorized(ctx)
		return
	}

	window := model.TimeWindow(ctx.DefaultQuery("window", string(model.WindowMonth)))
	switch window {
	case model.WindowWeek, model.WindowMonth, model.WindowYear:
	default:
		util.BadRequest(ctx, "window must be week, month or year")
		return
	}

	overview, err := c.AnalyticsService.GetOverview(claims.UserID, window, time.Now())
	if err != nil {
		util.LogInternalError(ctx, err)
		return
	}

	util.Success(ctx, overview)
}
