package controller

import (
	"errors"

	"github.com/gin-gonic/gin"

	"chadjee_backend/internal/model"
	"chadjee_backend/internal/service"
	"chadjee_backend/internal/util"
)

type SessionController struct {
	SessionService *service.SessionService
}

func NewSessionController(sessionService *service.SessionService) *SessionController {
	return &SessionController{SessionService: sessionService}
}

type StartSessionRequest struct {
	Subject string `json:"subject" binding:"required"`
	Kind    string `json:"kind" binding:"omitempty,oneof=focus short_break long_break"`
}

// StartSession godoc
// @Summary Start a study session
// @Description Open a Pomodoro interval for the given subject
// @Tags sessions
// @Accept json
// @Produce json
// @Security BearerAuth
// @Param body body StartSessionRequest true "session parameters"
// @Success 201 {object} util.Response{data=model.StudySession}
// @Failure 400 {object} util.Response
// @Router /api/sessions [post]
func (c *SessionController) StartSession(ctx *gin.Context) {
	claims := util.GetUserFromContext(ctx)
	if claims == nil {
		util.Unauthorized(ctx)
		return
	}

	var req StartSessionRequest
	if err := ctx.ShouldBindJSON(&req); err != nil {
		util.BadRequest(ctx, err.Error())
		return
	}

	session, err := c.SessionService.StartSession(claims.UserID, req.Subject, model.SessionKind(req.Kind))
	if err != nil {
		util.LogInternalError(ctx, err)
		return
	}

	util.Created(ctx, session)
}

type EndSessionRequest struct {
	Completed bool   `json:"completed"`
	Notes     string `json:"notes"`
}

// EndSession godoc
// @Summary End a study session
// @Description Close the session, record its duration and update streaks
// @Tags sessions
// @Accept json
// @Produce json
// @Security BearerAuth
// @Param id path string true "session id"
// @Param body body EndSessionRequest true "completion details"
// @Success 200 {object} util.Response{data=model.StudySession}
// @Failure 404 {object} util.Response
// @Failure 409 {object} util.Response "session already ended"
// @Router /api/sessions/{id}/end [post]
func (c *SessionController) EndSession(ctx *gin.Context) {
	claims := util.GetUserFromContext(ctx)
	if claims == nil {
		util.Unauthorized(ctx)
		return
	}

	var req EndSessionRequest
	if err := ctx.ShouldBindJSON(&req); err != nil {
		util.BadRequest(ctx, err.Error())
		return
	}

	session, err := c.SessionService.EndSession(ctx.Request.Context(), claims.UserID, ctx.Param("id"), req.Completed, req.Notes)
	if err != nil {
		switch {
		case errors.Is(err, util.ErrSessionNotFound):
			util.NotFound(ctx)
		case errors.Is(err, util.ErrSessionEnded):
			util.Error(ctx, 409, "session has already ended")
		default:
			util.LogInternalError(ctx, err)
		}
		return
	}

	util.Success(ctx, session)
}

// ListSessions godoc
// @Summary List study sessions
// @Description Sessions within the requested window (week, month or year)
// @Tags sessions
// @Produce json
// @Security BearerAuth
// @Param window query string false "time window" Enums(week, month, year) default(month)
// @Success 200 {object} util.Response{data=[]model.StudySession}
// @Router /api/sessions [get]
func (c *SessionController) ListSessions(ctx *gin.Context) {
	claims := util.GetUserFromContext(ctx)
	if claims == nil {
		util.Unauthorized(ctx)
		return
	}

	window := model.TimeWindow(ctx.DefaultQuery("window", string(model.WindowMonth)))
	sessions, err := c.SessionService.ListSessions(claims.UserID, window)
	if err != nil {
		util.LogInternalError(ctx, err)
		return
	}

	util.Success(ctx, sessions)
}

// GetActiveSession godoc
// @Summary Get the currently running session
// @Tags sessions
// @Produce json
// @Security BearerAuth
// @Success 200 {object} util.Response{data=model.StudySession}
// @Failure 404 {object} util.Response "no active session"
// @Router /api/sessions/active [get]
func (c *SessionController) GetActiveSession(ctx *gin.Context) {
	claims := util.GetUserFromContext(ctx)
	if claims == nil {
		util.Unauthorized(ctx)
		return
	}

	session, err := c.SessionService.GetActiveSession(claims.UserID)
	if err != nil {
		if errors.Is(err, util.ErrSessionNotFound) {
			util.NotFound(ctx)
		} else {
			util.LogInternalError(ctx, err)
		}
		return
	}

	util.Success(ctx, session)
}

// WouldBreakStreak godoc
// @Summary Preview a deletion's effect on the streak
// @Description Answers whether deleting this session would lower the current streak
// @Tags sessions
// @Produce json
// @Security BearerAuth
// @Param id path string true "session id"
// @Success 200 {object} util.Response{data=object}
// @Router /api/sessions/{id}/streak-impact [get]
func (c *SessionController) WouldBreakStreak(ctx *gin.Context) {
	claims := util.GetUserFromContext(ctx)
	if claims == nil {
		util.Unauthorized(ctx)
		return
	}

	breaks, err := c.SessionService.WouldBreakStreak(claims.UserID, ctx.Param("id"))
	if err != nil {
		util.LogInternalError(ctx, err)
		return
	}

	util.Success(ctx, gin.H{"wouldBreakStreak": breaks})
}

// DeleteSession godoc
// @Summary Delete a study session
// @Description Removes the session and recomputes streaks
// @Tags sessions
// @Produce json
// @Security BearerAuth
// @Param id path string true "session id"
// @Success 200 {object} util.Response
// @Failure 404 {object} util.Response
// @Router /api/sessions/{id} [delete]
func (c *SessionController) DeleteSession(ctx *gin.Context) {
	claims := util.GetUserFromContext(ctx)
	if claims == nil {
		util.Unauthorized(ctx)
		return
	}

	if err := c.SessionService.DeleteSession(ctx.Request.Context(), claims.UserID, ctx.Param("id")); err != nil {
		if errors.Is(err, util.ErrSessionNotFound) {
			util.NotFound(ctx)
		} else {
			util.LogInternalError(ctx, err)
		}
		return
	}

	util.Success(ctx, gin.H{"deleted": true})
}
