package controller

import (
	"github.com/gin-gonic/gin"

	"chadjee_backend/internal/service"
	"chadjee_backend/internal/util"
)

type SubjectController struct {
	SubjectService *service.SubjectService
}

func NewSubjectController(subjectService *service.SubjectService) *SubjectController {
	return &SubjectController{SubjectService: subjectService}
}

// ListProgress godoc
// @Summary Per-subject progress tracker
// @Description Last-studied date, study frequency and topic coverage per subject
// @Tags subjects
// @Produce json
// @Security BearerAuth
// @Success 200 {object} util.Response{data=[]model.SubjectProgress}
// @Router /api/subjects/progress [get]
func (c *SubjectController) ListProgress(ctx *gin.Context) {
	claims := util.GetUserFromContext(ctx)
	if claims == nil {
		util.Unauthorized(ctx)
		return
	}

	progress, err := c.SubjectService.ListProgress(claims.UserID)
	if err != nil {
		util.LogInternalError(ctx, err)
		return
	}

	util.Success(ctx, progress)
}

type TopicsRequest struct {
	Complete int `json:"complete" binding:"min=0"`
	Total    int `json:"total" binding:"required,min=1,gtefield=Complete"`
}

// SetTopics godoc
// @Summary Record syllabus coverage for a subject
// @Tags subjects
// @Accept json
// @Produce json
// @Security BearerAuth
// @Param subject path string true "subject name"
// @Param body body TopicsRequest true "topic counts"
// @Success 200 {object} util.Response{data=model.SubjectProgress}
// @Failure 400 {object} util.Response
// @Router /api/subjects/{subject}/topics [put]
func (c *SubjectController) SetTopics(ctx *gin.Context) {
	claims := util.GetUserFromContext(ctx)
	if claims == nil {
		util.Unauthorized(ctx)
		return
	}

	var req TopicsRequest
	if err := ctx.ShouldBindJSON(&req); err != nil {
		util.BadRequest(ctx, err.Error())
		return
	}

	progress, err := c.SubjectService.SetTopics(claims.UserID, ctx.Param("subject"), req.Complete, req.Total)
	if err != nil {
		util.LogInternalError(ctx, err)
		return
	}

	util.Success(ctx, progress)
}
