package api

import (
	"fmt"
	"time"

	"github.com/gin-gonic/gin"
	"github.com/prometheus/client_golang/prometheus/promhttp"

	"github.com/Tech-T1tans/StudyBuddy-version-control/pkg/metrics"
)

type Router struct {
	Engine *gin.Engine
}

func NewRouter(
	quizHandler *QuizHandler,
	notificationHandler *NotificationHandler,
) *Router {
	r := gin.Default()
	r.Use(requestMetrics())

	r.POST("/api/generate-quiz", quizHandler.GenerateQuiz)
	r.GET("/api/health", quizHandler.Health)

	notifications := r.Group("/api/notifications")
	{
		notifications.GET("", notificationHandler.List)
		notifications.GET("/unread", notificationHandler.Unread)
		notifications.GET("/unread-count", notificationHandler.UnreadCount)
		notifications.POST("", notificationHandler.Create)
		notifications.POST("/:id/read", notificationHandler.MarkRead)
		notifications.POST("/read-all", notificationHandler.MarkAllRead)
		notifications.DELETE("/:id", notificationHandler.Delete)
		notifications.DELETE("", notificationHandler.Clear)
		notifications.POST("/sync", notificationHandler.Sync)
		notifications.POST("/welcome", notificationHandler.Welcome)
		notifications.POST("/profile-check", notificationHandler.ProfileCheck)
		notifications.POST("/cleanup", notificationHandler.Cleanup)
		notifications.POST("/sound/toggle", notificationHandler.ToggleSound)
	}

	r.GET("/metrics", gin.WrapH(promhttp.Handler()))

	return &Router{Engine: r}
}

func requestMetrics() gin.HandlerFunc {
	return func(c *gin.Context) {
		start := time.Now()
		c.Next()
		metrics.RecordHTTPRequestDuration(
			c.Request.Method,
			c.FullPath(),
			fmt.Sprintf("%d", c.Writer.Status()),
			time.Since(start),
		)
	}
}

func (r *Router) Run(port string) error {
	return r.Engine.Run(":" + port)
}
