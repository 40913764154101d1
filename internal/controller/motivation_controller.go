package controller

import (
	"github.com/gin-gonic/gin"

	"chadjee_backend/internal/service"
	"chadjee_backend/internal/util"
)

type MotivationController struct {
	MotivationService *service.MotivationService
}

func NewMotivationController(motivationService *service.MotivationService) *MotivationController {
	return &MotivationController{MotivationService: motivationService}
}

// GetCurrent godoc
// @Summary Quote of the day
// @Tags motivation
// @Produce json
// @Success 200 {object} util.Response{data=model.Motivation}
// @Router /api/motivation [get]
func (c *MotivationController) GetCurrent(ctx *gin.Context) {
	quote, err := c.MotivationService.Current()
	if err != nil {
		util.InternalServerError(ctx)
		return
	}

	util.Success(ctx, quote)
}

// List godoc
// @Summary All motivation quotes
// @Tags motivation
// @Produce json
// @Security BearerAuth
// @Success 200 {object} util.Response{data=[]model.Motivation}
// @Router /api/admin/motivations [get]
func (c *MotivationController) List(ctx *gin.Context) {
	quotes, err := c.MotivationService.List()
	if err != nil {
		util.InternalServerError(ctx)
		return
	}

	util.Success(ctx, quotes)
}
