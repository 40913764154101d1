package controller

import (
	"time"

	"github.com/gin-gonic/gin"

	"chadjee_backend/internal/service"
	"chadjee_backend/internal/util"
)

type RecommendationController struct {
	RecommendationService *service.RecommendationService
	StreakService         *service.StreakService
}

func NewRecommendationController(
	recommendationService *service.RecommendationService,
	streakService *service.StreakService,
) *RecommendationController {
	return &RecommendationController{
		RecommendationService: recommendationService,
		StreakService:         streakService,
	}
}

// GetRecommendations godoc
// @Summary Get study recommendations
// @Description Ranked suggestions derived from recent sessions, test scores and streaks
// @Tags recommendations
// @Produce json
// @Security BearerAuth
// @Success 200 {object} util.Response{data=[]model.Recommendation}
// @Router /api/recommendations [get]
func (c *RecommendationController) GetRecommendations(ctx *gin.Context) {
	claims := util.GetUserFromContext(ctx)
	if claims == nil {
		util.Unauthorized(ctx)
		return
	}

	recs, err := c.RecommendationService.GetRecommendations(ctx.Request.Context(), claims.UserID)
	if err != nil {
		util.LogInternalError(ctx, err)
		return
	}

	util.Success(ctx, recs)
}

// RefreshRecommendations godoc
// @Summary Recompute study recommendations
// @Description Drops the cached list and rebuilds it from current data
// @Tags recommendations
// @Produce json
// @Security BearerAuth
// @Success 200 {object} util.Response{data=[]model.Recommendation}
// @Router /api/recommendations/refresh [post]
func (c *RecommendationController) RefreshRecommendations(ctx *gin.Context) {
	claims := util.GetUserFromContext(ctx)
	if claims == nil {
		util.Unauthorized(ctx)
		return
	}

	recs, err := c.RecommendationService.Refresh(ctx.Request.Context(), claims.UserID)
	if err != nil {
		util.LogInternalError(ctx, err)
		return
	}

	util.Success(ctx, recs)
}

// GetStreak godoc
// @Summary Get the current study streak
// @Tags streak
// @Produce json
// @Security BearerAuth
// @Success 200 {object} util.Response{data=model.StreakSummary}
// @Router /api/streak [get]
func (c *RecommendationController) GetStreak(ctx *gin.Context) {
	claims := util.GetUserFromContext(ctx)
	if claims == nil {
		util.Unauthorized(ctx)
		return
	}

	summary, err := c.StreakService.Summary(claims.UserID, time.Now())
	if err != nil {
		util.LogInternalError(ctx, err)
		return
	}

	util.Success(ctx, summary)
}
