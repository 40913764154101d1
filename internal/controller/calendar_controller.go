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

type CalendarController struct {
	CalendarService *service.CalendarService
}

func NewCalendarController(calendarService *service.CalendarService) *CalendarController {
	return &CalendarController{CalendarService: calendarService}
}

type EventRequest struct {
	Title       string    `json:"title" binding:"required"`
	Description string    `json:"description"`
	Subject     string    `json:"subject"`
	Kind        string    `json:"kind" binding:"omitempty,oneof=study mock_test revision other"`
	StartTime   time.Time `json:"startTime" binding:"required"`
	EndTime     time.Time `json:"endTime" binding:"required"`
	AllDay      bool      `json:"allDay"`
}

// CreateEvent godoc
// @Summary Create a calendar event
// @Tags calendar
// @Accept json
// @Produce json
// @Security BearerAuth
// @Param body body EventRequest true "event fields"
// @Success 201 {object} util.Response{data=model.CalendarEvent}
// @Failure 400 {object} util.Response
// @Router /api/calendar/events [post]
func (c *CalendarController) CreateEvent(ctx *gin.Context) {
	claims := util.GetUserFromContext(ctx)
	if claims == nil {
		util.Unauthorized(ctx)
		return
	}

	var req EventRequest
	if err := ctx.ShouldBindJSON(&req); err != nil {
		util.BadRequest(ctx, err.Error())
		return
	}

	event := &model.CalendarEvent{
		UserID:      claims.UserID,
		Title:       req.Title,
		Description: req.Description,
		Subject:     model.NormalizeSubject(req.Subject),
		Kind:        model.EventKind(req.Kind),
		StartTime:   req.StartTime,
		EndTime:     req.EndTime,
		AllDay:      req.AllDay,
	}

	if err := c.CalendarService.CreateEvent(event); err != nil {
		util.LogInternalError(ctx, err)
		return
	}

	util.Created(ctx, event)
}

// ListEvents godoc
// @Summary List calendar events in a range
// @Tags calendar
// @Produce json
// @Security BearerAuth
// @Param from query string true "range start (RFC 3339)"
// @Param to query string true "range end (RFC 3339)"
// @Success 200 {object} util.Response{data=[]model.CalendarEvent}
// @Failure 400 {object} util.Response
// @Router /api/calendar/events [get]
func (c *CalendarController) ListEvents(ctx *gin.Context) {
	claims := util.GetUserFromContext(ctx)
	if claims == nil {
		util.Unauthorized(ctx)
		return
	}

	from, err := time.Parse(time.RFC3339, ctx.Query("from"))
	if err != nil {
		util.BadRequest(ctx, "invalid from timestamp")
		return
	}
	to, err := time.Parse(time.RFC3339, ctx.Query("to"))
	if err != nil {
		util.BadRequest(ctx, "invalid to timestamp")
		return
	}

	events, err := c.CalendarService.ListEvents(claims.UserID, from, to)
	if err != nil {
		util.LogInternalError(ctx, err)
		return
	}

	util.Success(ctx, events)
}

// UpdateEvent godoc
// @Summary Update a calendar event
// @Tags calendar
// @Accept json
// @Produce json
// @Security BearerAuth
// @Param id path int true "event id"
// @Param body body EventRequest true "updated fields"
// @Success 200 {object} util.Response{data=model.CalendarEvent}
// @Failure 404 {object} util.Response
// @Router /api/calendar/events/{id} [put]
func (c *CalendarController) UpdateEvent(ctx *gin.Context) {
	claims := util.GetUserFromContext(ctx)
	if claims == nil {
		util.Unauthorized(ctx)
		return
	}

	id, err := strconv.ParseUint(ctx.Param("id"), 10, 64)
	if err != nil {
		util.BadRequest(ctx, "invalid event id")
		return
	}

	var req EventRequest
	if err := ctx.ShouldBindJSON(&req); err != nil {
		util.BadRequest(ctx, err.Error())
		return
	}

	updates := &model.CalendarEvent{
		Title:       req.Title,
		Description: req.Description,
		Subject:     model.NormalizeSubject(req.Subject),
		Kind:        model.EventKind(req.Kind),
		StartTime:   req.StartTime,
		EndTime:     req.EndTime,
		AllDay:      req.AllDay,
	}

	event, err := c.CalendarService.UpdateEvent(claims.UserID, uint(id), updates)
	if err != nil {
		if errors.Is(err, util.ErrEventNotFound) {
			util.NotFound(ctx)
		} else {
			util.LogInternalError(ctx, err)
		}
		return
	}

	util.Success(ctx, event)
}

// DeleteEvent godoc
// @Summary Delete a calendar event
// @Tags calendar
// @Produce json
// @Security BearerAuth
// @Param id path int true "event id"
// @Success 200 {object} util.Response
// @Failure 404 {object} util.Response
// @Router /api/calendar/events/{id} [delete]
func (c *CalendarController) DeleteEvent(ctx *gin.Context) {
	claims := util.GetUserFromContext(ctx)
	if claims == nil {
		util.Unauthorized(ctx)
		return
	}

	id, err := strconv.ParseUint(ctx.Param("id"), 10, 64)
	if err != nil {
		util.BadRequest(ctx, "invalid event id")
		return
	}

	if err := c.CalendarService.DeleteEvent(claims.UserID, uint(id)); err != nil {
		if errors.Is(err, util.ErrEventNotFound) {
			util.NotFound(ctx)
		} else {
			util.LogInternalError(ctx, err)
		}
		return
	}

	util.Success(ctx, gin.H{"deleted": true})
}
