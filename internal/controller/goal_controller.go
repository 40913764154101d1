package controller

import (
	"errors"
	"strconv"
	"time"

	"github.com/gin-gonic/gin"

	"chadjee_backend/internal/model"
	"chadjee_backend/internal/service"
	"chadjee_backend/internal/util"
)

type GoalController struct {
	GoalService *service.GoalService
}

func NewGoalController(goalService *service.GoalService) *GoalController {
	return &GoalController{GoalService: goalService}
}

type GoalRequest struct {
	Title       string    `json:"title" binding:"required"`
	Description string    `json:"description"`
	Subject     string    `json:"subject"`
	Target      int       `json:"target" binding:"required,min=1"`
	TargetDate  time.Time `json:"targetDate"`
}

// CreateGoal godoc
// @Summary Create a study goal
// @Tags goals
// @Accept json
// @Produce json
// @Security BearerAuth
// @Param body body GoalRequest true "goal fields"
// @Success 201 {object} util.Response{data=model.Goal}
// @Failure 400 {object} util.Response
// @Router /api/goals [post]
func (c *GoalController) CreateGoal(ctx *gin.Context) {
	claims := util.GetUserFromContext(ctx)
	if claims == nil {
		util.Unauthorized(ctx)
		return
	}

	var req GoalRequest
	if err := ctx.ShouldBindJSON(&req); err != nil {
		util.BadRequest(ctx, err.Error())
		return
	}

	goal := &model.Goal{
		UserID:      claims.UserID,
		Title:       req.Title,
		Description: req.Description,
		Subject:     model.NormalizeSubject(req.Subject),
		Target:      req.Target,
		TargetDate:  req.TargetDate,
	}

	if err := c.GoalService.CreateGoal(goal); err != nil {
		util.LogInternalError(ctx, err)
		return
	}

	util.Created(ctx, goal)
}

// ListGoals godoc
// @Summary List study goals
// @Tags goals
// @Produce json
// @Security BearerAuth
// @Success 200 {object} util.Response{data=[]model.Goal}
// @Router /api/goals [get]
func (c *GoalController) ListGoals(ctx *gin.Context) {
	claims := util.GetUserFromContext(ctx)
	if claims == nil {
		util.Unauthorized(ctx)
		return
	}

	goals, err := c.GoalService.ListGoals(claims.UserID)
	if err != nil {
		util.LogInternalError(ctx, err)
		return
	}

	util.Success(ctx, goals)
}

type GoalProgressRequest struct {
	Current int `json:"current" binding:"min=0"`
}

// UpdateProgress godoc
// @Summary Update a goal's progress
// @Description Sets the current value; status and percentage follow from it
// @Tags goals
// @Accept json
// @Produce json
// @Security BearerAuth
// @Param id path int true "goal id"
// @Param body body GoalProgressRequest true "progress"
// @Success 200 {object} util.Response{data=model.Goal}
// @Failure 404 {object} util.Response
// @Router /api/goals/{id}/progress [put]
func (c *GoalController) UpdateProgress(ctx *gin.Context) {
	claims := util.GetUserFromContext(ctx)
	if claims == nil {
		util.Unauthorized(ctx)
		return
	}

	id, err := strconv.ParseUint(ctx.Param("id"), 10, 64)
	if err != nil {
		util.BadRequest(ctx, "invalid goal id")
		return
	}

	var req GoalProgressRequest
	if err := ctx.ShouldBindJSON(&req); err != nil {
		util.BadRequest(ctx, err.Error())
		return
	}

	goal, err := c.GoalService.UpdateProgress(claims.UserID, uint(id), req.Current)
	if err != nil {
		if errors.Is(err, util.ErrGoalNotFound) {
			util.NotFound(ctx)
		} else {
			util.LogInternalError(ctx, err)
		}
		return
	}

	util.Success(ctx, goal)
}

// DeleteGoal godoc
// @Summary Delete a study goal
// @Tags goals
// @Produce json
// @Security BearerAuth
// @Param id path int true "goal id"
// @Success 200 {object} util.Response
// @Failure 404 {object} util.Response
// @Router /api/goals/{id} [delete]
func (c *GoalController) DeleteGoal(ctx *gin.Context) {
	claims := util.GetUserFromContext(ctx)
	if claims == nil {
		util.Unauthorized(ctx)
		return
	}

	id, err := strconv.ParseUint(ctx.Param("id"), 10, 64)
	if err != nil {
		util.BadRequest(ctx, "invalid goal id")
		return
	}

	if err := c.GoalService.DeleteGoal(claims.UserID, uint(id)); err != nil {
		if errors.Is(err, util.ErrGoalNotFound) {
			util.NotFound(ctx)
		} else {
			util.LogInternalError(ctx, err)
		}
		return
	}

	util.Success(ctx, gin.H{"deleted": true})
}
