package controller

import (
	"errors"
	"strconv"

	"github.com/gin-gonic/gin"

	"chadjee_backend/internal/model"
	"chadjee_backend/internal/service"
	"chadjee_backend/internal/util"
)

type TestRecordController struct {
	TestRecordService *service.TestRecordService
}

func NewTestRecordController(testRecordService *service.TestRecordService) *TestRecordController {
	return &TestRecordController{TestRecordService: testRecordService}
}

type TestRecordRequest struct {
	Subject            string  `json:"subject" binding:"required"`
	SubTopic           string  `json:"subTopic"`
	Score              float64 `json:"score"`
	MaxScore           float64 `json:"maxScore" binding:"required"`
	Date               string  `json:"date" binding:"required"`
	AreasOfImprovement string  `json:"areasOfImprovement"`
}

// CreateRecord godoc
// @Summary Record a test result
// @Description Store a mock-test or exam score and update streaks
// @Tags tests
// @Accept json
// @Produce json
// @Security BearerAuth
// @Param body body TestRecordRequest true "test result"
// @Success 201 {object} util.Response{data=model.TestRecord}
// @Failure 400 {object} util.Response
// @Router /api/tests [post]
func (c *TestRecordController) CreateRecord(ctx *gin.Context) {
	claims := util.GetUserFromContext(ctx)
	if claims == nil {
		util.Unauthorized(ctx)
		return
	}

	var req TestRecordRequest
	if err := ctx.ShouldBindJSON(&req); err != nil {
		util.BadRequest(ctx, err.Error())
		return
	}

	record := &model.TestRecord{
		UserID:             claims.UserID,
		Subject:            model.NormalizeSubject(req.Subject),
		SubTopic:           req.SubTopic,
		Score:              req.Score,
		MaxScore:           req.MaxScore,
		Date:               req.Date,
		AreasOfImprovement: req.AreasOfImprovement,
	}

	if err := c.TestRecordService.CreateRecord(ctx.Request.Context(), record); err != nil {
		if errors.Is(err, util.ErrInvalidScore) || errors.Is(err, util.ErrInvalidDate) {
			util.BadRequest(ctx, err.Error())
		} else {
			util.LogInternalError(ctx, err)
		}
		return
	}

	util.Created(ctx, record)
}

// ListRecords godoc
// @Summary List test results
// @Tags tests
// @Produce json
// @Security BearerAuth
// @Param subject query string false "filter by subject"
// @Success 200 {object} util.Response{data=[]model.TestRecord}
// @Router /api/tests [get]
func (c *TestRecordController) ListRecords(ctx *gin.Context) {
	claims := util.GetUserFromContext(ctx)
	if claims == nil {
		util.Unauthorized(ctx)
		return
	}

	records, err := c.TestRecordService.ListRecords(claims.UserID, ctx.Query("subject"))
	if err != nil {
		util.LogInternalError(ctx, err)
		return
	}

	util.Success(ctx, records)
}

// UpdateRecord godoc
// @Summary Update a test result
// @Tags tests
// @Accept json
// @Produce json
// @Security BearerAuth
// @Param id path int true "record id"
// @Param body body TestRecordRequest true "updated fields"
// @Success 200 {object} util.Response{data=model.TestRecord}
// @Failure 404 {object} util.Response
// @Router /api/tests/{id} [put]
func (c *TestRecordController) UpdateRecord(ctx *gin.Context) {
	claims := util.GetUserFromContext(ctx)
	if claims == nil {
		util.Unauthorized(ctx)
		return
	}

	id, err := strconv.ParseUint(ctx.Param("id"), 10, 64)
	if err != nil {
		util.BadRequest(ctx, "invalid record id")
		return
	}

	var req TestRecordRequest
	if err := ctx.ShouldBindJSON(&req); err != nil {
		util.BadRequest(ctx, err.Error())
		return
	}

	updates := &model.TestRecord{
		Subject:            model.NormalizeSubject(req.Subject),
		SubTopic:           req.SubTopic,
		Score:              req.Score,
		MaxScore:           req.MaxScore,
		Date:               req.Date,
		AreasOfImprovement: req.AreasOfImprovement,
	}

	record, err := c.TestRecordService.UpdateRecord(ctx.Request.Context(), claims.UserID, uint(id), updates)
	if err != nil {
		switch {
		case errors.Is(err, util.ErrTestNotFound):
			util.NotFound(ctx)
		case errors.Is(err, util.ErrInvalidScore), errors.Is(err, util.ErrInvalidDate):
			util.BadRequest(ctx, err.Error())
		default:
			util.LogInternalError(ctx, err)
		}
		return
	}

	util.Success(ctx, record)
}

// DeleteRecord godoc
// @Summary Delete a test result
// @Description Removes the record and recomputes streaks
// @Tags tests
// @Produce json
// @Security BearerAuth
// @Param id path int true "record id"
// @Success 200 {object} util.Response
// @Failure 404 {object} util.Response
// @Router /api/tests/{id} [delete]
func (c *TestRecordController) DeleteRecord(ctx *gin.Context) {
	claims := util.GetUserFromContext(ctx)
	if claims == nil {
		util.Unauthorized(ctx)
		return
	}

	id, err := strconv.ParseUint(ctx.Param("id"), 10, 64)
	if err != nil {
		util.BadRequest(ctx, "invalid record id")
		return
	}

	if err := c.TestRecordService.DeleteRecord(ctx.Request.Context(), claims.UserID, uint(id)); err != nil {
		if errors.Is(err, util.ErrTestNotFound) {
			util.NotFound(ctx)
		} else {
			util.LogInternalError(ctx, err)
		}
		return
	}

	util.Success(ctx, gin.H{"deleted": true})
}
