package app

import (
	"readflow_backend/docs"
	"readflow_backend/pkg/monitoring"

	"github.com/gin-gonic/gin"
	swaggerFiles "github.com/swaggo/files"
	ginSwagger "github.com/swaggo/gin-swagger"
)

func (a *App) registerRoutes(router *gin.Engine, c *controllers) {
	docs.SwaggerInfo.BasePath = "/api"
	router.GET("/swagger/*any", ginSwagger.WrapHandler(swaggerFiles.Handler, ginSwagger.URL("/swagger/doc.json")))

	router.GET("/metrics", monitoring.PrometheusHandler())

	api := router.Group("/api")
	{
		api.GET("/health", c.health.HealthCheck)

		api.POST("/sessions", c.tracker.SaveSession)
		api.GET("/sessions", c.tracker.ListSessions)
		api.GET("/stats", c.tracker.GetStats)
		api.GET("/stats/today", c.tracker.GetTodayStats)
		api.PUT("/stats/wpm", c.tracker.UpdateWPM)
		api.GET("/goals", c.tracker.ListGoals)
		api.POST("/goals", c.tracker.CreateGoal)
		api.PATCH("/goals/:id/toggle", c.tracker.ToggleGoal)
		api.DELETE("/goals/:id", c.tracker.DeleteGoal)
		api.GET("/activities", c.tracker.ListActivities)
		api.GET("/badges", c.tracker.ListBadges)

		api.POST("/timer/start", c.tracker.StartTimer)
		api.GET("/timer", c.tracker.GetTimer)
		api.POST("/timer/stop", c.tracker.StopTimer)

		syllabus := api.Group("/syllabus")
		{
			syllabus.GET("", c.syllabus.GetSyllabus)
			syllabus.POST("/reset", c.syllabus.ResetSyllabus)
			syllabus.PATCH("/subjects/:index/chapters/:id/toggle", c.syllabus.ToggleChapter)
			syllabus.POST("/subjects/:index/chapters", c.syllabus.AddChapter)
			syllabus.DELETE("/subjects/:index/chapters/:id", c.syllabus.DeleteChapter)
			syllabus.GET("/schedule", c.syllabus.GetSchedule)
			syllabus.POST("/schedule/cycle", c.syllabus.CycleSchedule)
			syllabus.POST("/schedule/buffer", c.syllabus.ToggleBufferDay)
		}

		practice := api.Group("/practice")
		{
			practice.POST("/start", c.practice.Start)
			practice.POST("/:id/begin", c.practice.Begin)
			practice.POST("/:id/finish", c.practice.Finish)
			practice.POST("/:id/save", c.practice.Save)
			practice.DELETE("/:id", c.practice.Discard)
			practice.POST("/manual", c.practice.ManualLog)
		}

		api.GET("/insights", c.insight.GetInsights)
	}
}
