package controller

import (
	"errors"

	"readflow_backend/internal/service"
	"readflow_backend/internal/util"

	"github.com/gin-gonic/gin"
)

// TrackerController serves the session log, stats, goals, badges, activities
// and the reading timer.
type TrackerController struct {
	TrackerService *service.TrackerService
}

func NewTrackerController(trackerService *service.TrackerService) *TrackerController {
	return &TrackerController{TrackerService: trackerService}
}

type timerStartRequest struct {
	Mode service.TimerMode `json:"mode" binding:"required,oneof=reading writing"`
}

type updateWPMRequest struct {
	WPM int `json:"wpm" binding:"min=0"`
}

// @Summary Save a reading session
// @Description Appends a session to the log and applies the stat rewards
// @Tags tracker
// @Accept json
// @Produce json
// @Param session body service.SessionInput true "Session to record"
// @Success 201 {object} util.Response
// @Router /api/sessions [post]
func (c *TrackerController) SaveSession(ctx *gin.Context) {
	var req service.SessionInput
	if err := ctx.ShouldBindJSON(&req); err != nil {
		util.BadRequest(ctx, err.Error())
		return
	}

	session, stats := c.TrackerService.SaveSession(req)
	util.Created(ctx, gin.H{"session": session, "stats": stats})
}

// @Summary List sessions
// @Description Returns the session log, newest first
// @Tags tracker
// @Produce json
// @Success 200 {object} util.Response
// @Router /api/sessions [get]
func (c *TrackerController) ListSessions(ctx *gin.Context) {
	util.Success(ctx, c.TrackerService.Sessions())
}

// @Summary Get user stats
// @Description Returns the stat block with the next level XP projection
// @Tags tracker
// @Produce json
// @Success 200 {object} util.Response
// @Router /api/stats [get]
func (c *TrackerController) GetStats(ctx *gin.Context) {
	stats := c.TrackerService.Stats()
	util.Success(ctx, gin.H{"stats": stats, "nextLevelXp": stats.NextLevelXP()})
}

// @Summary Get today's stats
// @Description Derives today's reading time, pages and average WPM from the log
// @Tags tracker
// @Produce json
// @Success 200 {object} util.Response
// @Router /api/stats/today [get]
func (c *TrackerController) GetTodayStats(ctx *gin.Context) {
	util.Success(ctx, c.TrackerService.TodayStats())
}

// @Summary Update current WPM
// @Description Overwrites the current words-per-minute reading speed
// @Tags tracker
// @Accept json
// @Produce json
// @Param body body updateWPMRequest true "New WPM"
// @Success 200 {object} util.Response
// @Router /api/stats/wpm [put]
func (c *TrackerController) UpdateWPM(ctx *gin.Context) {
	var req updateWPMRequest
	if err := ctx.ShouldBindJSON(&req); err != nil {
		util.BadRequest(ctx, err.Error())
		return
	}

	util.Success(ctx, c.TrackerService.UpdateWPM(req.WPM))
}

// @Summary List goals
// @Tags tracker
// @Produce json
// @Success 200 {object} util.Response
// @Router /api/goals [get]
func (c *TrackerController) ListGoals(ctx *gin.Context) {
	util.Success(ctx, c.TrackerService.Goals())
}

// @Summary Create a goal
// @Description Adds a periodic goal and logs a creation activity
// @Tags tracker
// @Accept json
// @Produce json
// @Param goal body service.GoalInput true "Goal definition"
// @Success 201 {object} util.Response
// @Router /api/goals [post]
func (c *TrackerController) CreateGoal(ctx *gin.Context) {
	var req service.GoalInput
	if err := ctx.ShouldBindJSON(&req); err != nil {
		util.BadRequest(ctx, err.Error())
		return
	}

	util.Created(ctx, c.TrackerService.AddGoal(req))
}

// @Summary Toggle goal completion
// @Description Flips completion and applies the XP/coin reward or refund
// @Tags tracker
// @Produce json
// @Param id path string true "Goal ID"
// @Success 200 {object} util.Response
// @Router /api/goals/{id}/toggle [patch]
func (c *TrackerController) ToggleGoal(ctx *gin.Context) {
	goal, err := c.TrackerService.ToggleGoal(ctx.Param("id"))
	if err != nil {
		if errors.Is(err, util.ErrGoalNotFound) {
			util.NotFound(ctx)
			return
		}
		util.LogInternalError(ctx, err)
		return
	}

	util.Success(ctx, gin.H{"goal": goal, "stats": c.TrackerService.Stats()})
}

// @Summary Delete a goal
// @Tags tracker
// @Produce json
// @Param id path string true "Goal ID"
// @Success 200 {object} util.Response
// @Router /api/goals/{id} [delete]
func (c *TrackerController) DeleteGoal(ctx *gin.Context) {
	c.TrackerService.DeleteGoal(ctx.Param("id"))
	util.Success(ctx, nil)
}

// @Summary List activities
// @Description Returns the activity feed, newest first
// @Tags tracker
// @Produce json
// @Success 200 {object} util.Response
// @Router /api/activities [get]
func (c *TrackerController) ListActivities(ctx *gin.Context) {
	util.Success(ctx, c.TrackerService.Activities())
}

// @Summary List badges
// @Description Returns the badge list after sweeping for new unlocks
// @Tags tracker
// @Produce json
// @Success 200 {object} util.Response
// @Router /api/badges [get]
func (c *TrackerController) ListBadges(ctx *gin.Context) {
	util.Success(ctx, c.TrackerService.Badges())
}

// @Summary Start the timer
// @Description Starts (or restarts) the reading/writing timer
// @Tags timer
// @Accept json
// @Produce json
// @Param body body timerStartRequest true "Timer mode"
// @Success 200 {object} util.Response
// @Router /api/timer/start [post]
func (c *TrackerController) StartTimer(ctx *gin.Context) {
	var req timerStartRequest
	if err := ctx.ShouldBindJSON(&req); err != nil {
		util.BadRequest(ctx, err.Error())
		return
	}

	util.Success(ctx, c.TrackerService.StartTimer(req.Mode))
}

// @Summary Get timer status
// @Tags timer
// @Produce json
// @Success 200 {object} util.Response
// @Router /api/timer [get]
func (c *TrackerController) GetTimer(ctx *gin.Context) {
	util.Success(ctx, c.TrackerService.Timer())
}

// @Summary Stop the timer
// @Description Stops the timer; non-zero elapsed time becomes a session and
// feeds minute goals in reading mode
// @Tags timer
// @Produce json
// @Success 200 {object} util.Response
// @Router /api/timer/stop [post]
func (c *TrackerController) StopTimer(ctx *gin.Context) {
	session, err := c.TrackerService.StopTimer()
	if err != nil {
		if errors.Is(err, util.ErrTimerNotRunning) {
			util.BadRequest(ctx, "timer is not running")
			return
		}
		util.LogInternalError(ctx, err)
		return
	}

	if session == nil {
		util.Success(ctx, nil)
		return
	}
	util.Success(ctx, gin.H{"session": session, "stats": c.TrackerService.Stats()})
}
