package controller

import (
	"errors"
	"strconv"

	"readflow_backend/internal/service"
	"readflow_backend/internal/util"

	"github.com/gin-gonic/gin"
)

// SyllabusController serves the study syllabus, its progress aggregates and
// the daily schedule.
type SyllabusController struct {
	SyllabusService *service.SyllabusService
}

func NewSyllabusController(syllabusService *service.SyllabusService) *SyllabusController {
	return &SyllabusController{SyllabusService: syllabusService}
}

type addChapterRequest struct {
	Title string `json:"title" binding:"required"`
}

func subjectIndexParam(ctx *gin.Context) (int, bool) {
	idx, err := strconv.Atoi(ctx.Param("index"))
	if err != nil {
		util.BadRequest(ctx, "subject index must be an integer")
		return 0, false
	}
	return idx, true
}

func (c *SyllabusController) handleSyllabusError(ctx *gin.Context, err error) {
	switch {
	case errors.Is(err, util.ErrSubjectNotFound), errors.Is(err, util.ErrChapterNotFound):
		util.NotFound(ctx)
	case errors.Is(err, util.ErrInvalidInput):
		util.BadRequest(ctx, "invalid input")
	default:
		util.LogInternalError(ctx, err)
	}
}

// @Summary Get the syllabus
// @Description Returns all subjects with per-subject and overall progress
// @Tags syllabus
// @Produce json
// @Success 200 {object} util.Response
// @Router /api/syllabus [get]
func (c *SyllabusController) GetSyllabus(ctx *gin.Context) {
	util.Success(ctx, gin.H{
		"state":    c.SyllabusService.State(),
		"progress": c.SyllabusService.Progress(),
	})
}

// @Summary Toggle a chapter
// @Description Cycles the chapter not-started, in-progress, completed
// @Tags syllabus
// @Produce json
// @Param index path int true "Subject index"
// @Param id path string true "Chapter ID"
// @Success 200 {object} util.Response
// @Router /api/syllabus/subjects/{index}/chapters/{id}/toggle [patch]
func (c *SyllabusController) ToggleChapter(ctx *gin.Context) {
	idx, ok := subjectIndexParam(ctx)
	if !ok {
		return
	}

	chapter, err := c.SyllabusService.ToggleChapter(idx, ctx.Param("id"))
	if err != nil {
		c.handleSyllabusError(ctx, err)
		return
	}
	util.Success(ctx, chapter)
}

// @Summary Add a chapter
// @Tags syllabus
// @Accept json
// @Produce json
// @Param index path int true "Subject index"
// @Param body body addChapterRequest true "Chapter title"
// @Success 201 {object} util.Response
// @Router /api/syllabus/subjects/{index}/chapters [post]
func (c *SyllabusController) AddChapter(ctx *gin.Context) {
	idx, ok := subjectIndexParam(ctx)
	if !ok {
		return
	}

	var req addChapterRequest
	if err := ctx.ShouldBindJSON(&req); err != nil {
		util.BadRequest(ctx, err.Error())
		return
	}

	chapter, err := c.SyllabusService.AddChapter(idx, req.Title)
	if err != nil {
		c.handleSyllabusError(ctx, err)
		return
	}
	util.Created(ctx, chapter)
}

// @Summary Delete a chapter
// @Tags syllabus
// @Produce json
// @Param index path int true "Subject index"
// @Param id path string true "Chapter ID"
// @Success 200 {object} util.Response
// @Router /api/syllabus/subjects/{index}/chapters/{id} [delete]
func (c *SyllabusController) DeleteChapter(ctx *gin.Context) {
	idx, ok := subjectIndexParam(ctx)
	if !ok {
		return
	}

	if err := c.SyllabusService.DeleteChapter(idx, ctx.Param("id")); err != nil {
		c.handleSyllabusError(ctx, err)
		return
	}
	util.Success(ctx, nil)
}

// @Summary Reset syllabus progress
// @Description Clears completion and in-progress flags on every chapter
// @Tags syllabus
// @Produce json
// @Success 200 {object} util.Response
// @Router /api/syllabus/reset [post]
func (c *SyllabusController) ResetSyllabus(ctx *gin.Context) {
	c.SyllabusService.Reset()
	util.Success(ctx, c.SyllabusService.State())
}

// @Summary Get today's schedule
// @Description Resolves manual override, buffer day, weekend revision or the
// weekday subject rotation
// @Tags syllabus
// @Produce json
// @Success 200 {object} util.Response
// @Router /api/syllabus/schedule [get]
func (c *SyllabusController) GetSchedule(ctx *gin.Context) {
	util.Success(ctx, c.SyllabusService.TodaySchedule())
}

// @Summary Cycle the schedule override
// @Description Steps the manual subject override through each subject and
// back to automatic
// @Tags syllabus
// @Produce json
// @Success 200 {object} util.Response
// @Router /api/syllabus/schedule/cycle [post]
func (c *SyllabusController) CycleSchedule(ctx *gin.Context) {
	c.SyllabusService.CycleSchedule()
	util.Success(ctx, c.SyllabusService.TodaySchedule())
}

// @Summary Toggle the buffer day
// @Tags syllabus
// @Produce json
// @Success 200 {object} util.Response
// @Router /api/syllabus/schedule/buffer [post]
func (c *SyllabusController) ToggleBufferDay(ctx *gin.Context) {
	buffer := c.SyllabusService.ToggleBufferDay()
	util.Success(ctx, gin.H{"bufferDay": buffer, "schedule": c.SyllabusService.TodaySchedule()})
}
