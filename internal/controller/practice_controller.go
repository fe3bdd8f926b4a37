package controller

import (
	"errors"

	"readflow_backend/internal/service"
	"readflow_backend/internal/util"

	"github.com/gin-gonic/gin"
)

// PracticeController runs speed-test attempts and manual session logging.
type PracticeController struct {
	PracticeService *service.PracticeService
}

func NewPracticeController(practiceService *service.PracticeService) *PracticeController {
	return &PracticeController{PracticeService: practiceService}
}

type startPracticeRequest struct {
	Topic string `json:"topic"`
}

func (c *PracticeController) handleAttemptError(ctx *gin.Context, err error) {
	switch {
	case errors.Is(err, util.ErrAttemptNotFound):
		util.NotFound(ctx)
	case errors.Is(err, util.ErrAttemptNotReady):
		util.BadRequest(ctx, "attempt is not in the required state")
	default:
		util.LogInternalError(ctx, err)
	}
}

// @Summary Start a speed test
// @Description Generates a passage for the topic and opens a ready attempt
// @Tags practice
// @Accept json
// @Produce json
// @Param body body startPracticeRequest true "Passage topic"
// @Success 201 {object} util.Response
// @Router /api/practice/start [post]
func (c *PracticeController) Start(ctx *gin.Context) {
	var req startPracticeRequest
	if err := ctx.ShouldBindJSON(&req); err != nil {
		util.BadRequest(ctx, err.Error())
		return
	}

	util.Created(ctx, c.PracticeService.Start(ctx.Request.Context(), req.Topic))
}

// @Summary Begin reading
// @Description Starts the attempt clock
// @Tags practice
// @Produce json
// @Param id path string true "Attempt ID"
// @Success 200 {object} util.Response
// @Router /api/practice/{id}/begin [post]
func (c *PracticeController) Begin(ctx *gin.Context) {
	attempt, err := c.PracticeService.Begin(ctx.Param("id"))
	if err != nil {
		c.handleAttemptError(ctx, err)
		return
	}
	util.Success(ctx, attempt)
}

// @Summary Finish reading
// @Description Stops the clock and computes the words-per-minute result
// @Tags practice
// @Produce json
// @Param id path string true "Attempt ID"
// @Success 200 {object} util.Response
// @Router /api/practice/{id}/finish [post]
func (c *PracticeController) Finish(ctx *gin.Context) {
	attempt, err := c.PracticeService.Finish(ctx.Param("id"))
	if err != nil {
		c.handleAttemptError(ctx, err)
		return
	}
	util.Success(ctx, attempt)
}

// @Summary Save the result
// @Description Records the finished attempt as a speed-test session
// @Tags practice
// @Produce json
// @Param id path string true "Attempt ID"
// @Success 201 {object} util.Response
// @Router /api/practice/{id}/save [post]
func (c *PracticeController) Save(ctx *gin.Context) {
	session, stats, err := c.PracticeService.Save(ctx.Param("id"))
	if err != nil {
		c.handleAttemptError(ctx, err)
		return
	}
	util.Created(ctx, gin.H{"session": session, "stats": stats})
}

// @Summary Discard an attempt
// @Tags practice
// @Produce json
// @Param id path string true "Attempt ID"
// @Success 200 {object} util.Response
// @Router /api/practice/{id} [delete]
func (c *PracticeController) Discard(ctx *gin.Context) {
	c.PracticeService.Discard(ctx.Param("id"))
	util.Success(ctx, nil)
}

// @Summary Log a manual session
// @Description Records a self-reported session from minutes and pages
// @Tags practice
// @Accept json
// @Produce json
// @Param body body service.ManualLogInput true "Minutes, pages, subject"
// @Success 201 {object} util.Response
// @Router /api/practice/manual [post]
func (c *PracticeController) ManualLog(ctx *gin.Context) {
	var req service.ManualLogInput
	if err := ctx.ShouldBindJSON(&req); err != nil {
		util.BadRequest(ctx, err.Error())
		return
	}

	session, stats, err := c.PracticeService.ManualLog(req)
	if err != nil {
		util.BadRequest(ctx, "minutes and pages must be positive")
		return
	}
	util.Created(ctx, gin.H{"session": session, "stats": stats})
}
