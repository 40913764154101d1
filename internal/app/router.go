package app

import (
	"github.com/gin-gonic/gin"
	swaggerFiles "github.com/swaggo/files"
	ginSwagger "github.com/swaggo/gin-swagger"

	"chadjee_backend/docs"
	"chadjee_backend/internal/config"
	"chadjee_backend/internal/middleware"
	"chadjee_backend/internal/model"
	"chadjee_backend/pkg/monitoring"
)

func (a *App) registerRoutes(router *gin.Engine, c *controllers, repos *repositories, cfg *config.Config) {
	docs.SwaggerInfo.BasePath = "/api"
	router.GET("/swagger/*any", ginSwagger.WrapHandler(swaggerFiles.Handler, ginSwagger.URL("/swagger/doc.json")))

	router.GET("/metrics", monitoring.PrometheusHandler())

	a.registerPublicRoutes(router, c)

	authGroup := router.Group("/api")
	authGroup.Use(middleware.AuthMiddleware(cfg), middleware.ActivityMiddleware(repos.user))
	{
		a.registerStudentRoutes(authGroup, c)
	}

	a.registerAdminRoutes(router, c, cfg)
}

func (a *App) registerPublicRoutes(router *gin.Engine, c *controllers) {
	public := router.Group("/api")
	{
		public.GET("/health", c.health.HealthCheck)
		public.POST("/register", c.auth.Register)
		public.POST("/login", c.auth.Login)
		public.GET("/motivation", c.motivation.GetCurrent)
	}
}

func (a *App) registerStudentRoutes(group *gin.RouterGroup, c *controllers) {
	group.GET("/user/profile", c.user.GetProfile)
	group.PUT("/user/profile", c.user.UpdateProfile)
	group.POST("/user/avatar", c.user.UploadAvatar)

	group.POST("/sessions", c.session.StartSession)
	group.GET("/sessions", c.session.ListSessions)
	group.GET("/sessions/active", c.session.GetActiveSession)
	group.POST("/sessions/:id/end", c.session.EndSession)
	group.GET("/sessions/:id/streak-impact", c.session.WouldBreakStreak)
	group.DELETE("/sessions/:id", c.session.DeleteSession)

	group.POST("/tests", c.testRecord.CreateRecord)
	group.GET("/tests", c.testRecord.ListRecords)
	group.PUT("/tests/:id", c.testRecord.UpdateRecord)
	group.DELETE("/tests/:id", c.testRecord.DeleteRecord)

	group.POST("/tasks", c.task.CreateTask)
	group.GET("/tasks", c.task.ListTasks)
	group.PUT("/tasks/:id", c.task.UpdateTask)
	group.PUT("/tasks/:id/status", c.task.UpdateStatus)
	group.DELETE("/tasks/:id", c.task.DeleteTask)

	group.POST("/goals", c.goal.CreateGoal)
	group.GET("/goals", c.goal.ListGoals)
	group.PUT("/goals/:id/progress", c.goal.UpdateProgress)
	group.DELETE("/goals/:id", c.goal.DeleteGoal)

	group.POST("/calendar/events", c.calendar.CreateEvent)
	group.GET("/calendar/events", c.calendar.ListEvents)
	group.PUT("/calendar/events/:id", c.calendar.UpdateEvent)
	group.DELETE("/calendar/events/:id", c.calendar.DeleteEvent)

	group.GET("/subjects/progress", c.subject.ListProgress)
	group.PUT("/subjects/:subject/topics", c.subject.SetTopics)

	group.GET("/streak", c.recommendation.GetStreak)
	group.GET("/recommendations", c.recommendation.GetRecommendations)
	group.POST("/recommendations/refresh", c.recommendation.RefreshRecommendations)

	group.GET("/analytics/overview", c.analytics.GetOverview)
	group.GET("/dashboard", c.dashboard.GetDashboard)
}

func (a *App) registerAdminRoutes(router *gin.Engine, c *controllers, cfg *config.Config) {
	admin := router.Group("/api/admin")
	admin.Use(middleware.AuthMiddleware(cfg), middleware.RoleMiddleware(model.Admin))
	{
		admin.GET("/motivations", c.motivation.List)
	}
}
