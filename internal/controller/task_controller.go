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

type TaskController struct {
	TaskService *service.TaskService
}

func NewTaskController(taskService *service.TaskService) *TaskController {
	return &TaskController{TaskService: taskService}
}

type TaskRequest struct {
	Title       string    `json:"title" binding:"required"`
	Description string    `json:"description"`
	Subject     string    `json:"subject"`
	Priority    string    `json:"priority" binding:"omitempty,oneof=low medium high"`
	DueDate     time.Time `json:"dueDate"`
	Order       int       `json:"order"`
}

// CreateTask godoc
// @Summary Create a task
// @Tags tasks
// @Accept json
// @Produce json
// @Security BearerAuth
// @Param body body TaskRequest true "task fields"
// @Success 201 {object} util.Response{data=model.Task}
// @Failure 400 {object} util.Response
// @Router /api/tasks [post]
func (c *TaskController) CreateTask(ctx *gin.Context) {
	claims := util.GetUserFromContext(ctx)
	if claims == nil {
		util.Unauthorized(ctx)
		return
	}

	var req TaskRequest
	if err := ctx.ShouldBindJSON(&req); err != nil {
		util.BadRequest(ctx, err.Error())
		return
	}

	task := &model.Task{
		UserID:      claims.UserID,
		Title:       req.Title,
		Description: req.Description,
		Subject:     model.NormalizeSubject(req.Subject),
		Priority:    model.TaskPriority(req.Priority),
		DueDate:     req.DueDate,
		Order:       req.Order,
	}

	if err := c.TaskService.CreateTask(task); err != nil {
		util.LogInternalError(ctx, err)
		return
	}

	util.Created(ctx, task)
}

// ListTasks godoc
// @Summary List tasks
// @Tags tasks
// @Produce json
// @Security BearerAuth
// @Success 200 {object} util.Response{data=[]model.Task}
// @Router /api/tasks [get]
func (c *TaskController) ListTasks(ctx *gin.Context) {
	claims := util.GetUserFromContext(ctx)
	if claims == nil {
		util.Unauthorized(ctx)
		return
	}

	tasks, err := c.TaskService.ListTasks(claims.UserID)
	if err != nil {
		util.LogInternalError(ctx, err)
		return
	}

	util.Success(ctx, tasks)
}

// UpdateTask godoc
// @Summary Update a task
// @Tags tasks
// @Accept json
// @Produce json
// @Security BearerAuth
// @Param id path int true "task id"
// @Param body body TaskRequest true "updated fields"
// @Success 200 {object} util.Response{data=model.Task}
// @Failure 404 {object} util.Response
// @Router /api/tasks/{id} [put]
func (c *TaskController) UpdateTask(ctx *gin.Context) {
	claims := util.GetUserFromContext(ctx)
	if claims == nil {
		util.Unauthorized(ctx)
		return
	}

	id, err := strconv.ParseUint(ctx.Param("id"), 10, 64)
	if err != nil {
		util.BadRequest(ctx, "invalid task id")
		return
	}

	var req TaskRequest
	if err := ctx.ShouldBindJSON(&req); err != nil {
		util.BadRequest(ctx, err.Error())
		return
	}

	updates := &model.Task{
		Title:       req.Title,
		Description: req.Description,
		Subject:     model.NormalizeSubject(req.Subject),
		Priority:    model.TaskPriority(req.Priority),
		DueDate:     req.DueDate,
		Order:       req.Order,
	}

	task, err := c.TaskService.UpdateTask(claims.UserID, uint(id), updates)
	if err != nil {
		if errors.Is(err, util.ErrTaskNotFound) {
			util.NotFound(ctx)
		} else {
			util.LogInternalError(ctx, err)
		}
		return
	}

	util.Success(ctx, task)
}

type TaskStatusRequest struct {
	Status string `json:"status" binding:"required,oneof=pending in_progress completed"`
}

// UpdateStatus godoc
// @Summary Change a task's status
// @Tags tasks
// @Accept json
// @Produce json
// @Security BearerAuth
// @Param id path int true "task id"
// @Param body body TaskStatusRequest true "new status"
// @Success 200 {object} util.Response
// @Router /api/tasks/{id}/status [put]
func (c *TaskController) UpdateStatus(ctx *gin.Context) {
	claims := util.GetUserFromContext(ctx)
	if claims == nil {
		util.Unauthorized(ctx)
		return
	}

	id, err := strconv.ParseUint(ctx.Param("id"), 10, 64)
	if err != nil {
		util.BadRequest(ctx, "invalid task id")
		return
	}

	var req TaskStatusRequest
	if err := ctx.ShouldBindJSON(&req); err != nil {
		util.BadRequest(ctx, err.Error())
		return
	}

	if err := c.TaskService.UpdateStatus(claims.UserID, uint(id), model.TaskStatus(req.Status)); err != nil {
		util.LogInternalError(ctx, err)
		return
	}

	util.Success(ctx, gin.H{"updated": true})
}

// DeleteTask godoc
// @Summary Delete a task
// @Tags tasks
// @Produce json
// @Security BearerAuth
// @Param id path int true "task id"
// @Success 200 {object} util.Response
// @Failure 404 {object} util.Response
// @Router /api/tasks/{id} [delete]
func (c *TaskController) DeleteTask(ctx *gin.Context) {
	claims := util.GetUserFromContext(ctx)
	if claims == nil {
		util.Unauthorized(ctx)
		return
	}

	id, err := strconv.ParseUint(ctx.Param("id"), 10, 64)
	if err != nil {
		util.BadRequest(ctx, "invalid task id")
		return
	}

	if err := c.TaskService.DeleteTask(claims.UserID, uint(id)); err != nil {
		if errors.Is(err, util.ErrTaskNotFound) {
			util.NotFound(ctx)
		} else {
			util.LogInternalError(ctx, err)
		}
		return
	}

	util.Success(ctx, gin.H{"deleted": true})
}
