package app

import (
	"quiz_engine_backend/docs"
	"quiz_engine_backend/pkg/monitoring"

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
		api.GET("/statistics", c.statistics.GetStatistics)
	}

	a.registerStudentRoutes(api, c)
	a.registerAdminRoutes(api, c)
}

func (a *App) registerStudentRoutes(api *gin.RouterGroup, c *controllers) {
	api.GET("/tests", c.testing.ListTests)

	sessions := api.Group("/sessions")
	{
		sessions.POST("", c.testing.StartSession)
		sessions.GET("/:id", c.testing.CurrentQuestion)
		sessions.POST("/:id/next", c.testing.NextQuestion)
		sessions.POST("/:id/answers", c.testing.SubmitAnswer)
		sessions.POST("/:id/stop", c.testing.StopSession)
	}
}

func (a *App) registerAdminRoutes(api *gin.RouterGroup, c *controllers) {
	admin := api.Group("/admin/tests")
	{
		admin.GET("", c.tests.ListTests)
		admin.POST("", c.tests.CreateTest)
		admin.POST("/save", c.tests.SaveChanges)
		admin.GET("/:id", c.tests.GetTest)
		admin.PUT("/:id", c.tests.UpdateTest)
		admin.DELETE("/:id", c.tests.DeleteTest)

		admin.GET("/:id/questions", c.tests.ListQuestions)
		admin.POST("/:id/questions", c.tests.AddQuestion)
		admin.PUT("/:id/questions/:questionId", c.tests.UpdateQuestion)
		admin.DELETE("/:id/questions/:questionId", c.tests.DeleteQuestion)

		admin.GET("/:id/questions/:questionId/answers", c.tests.ListAnswers)
		admin.POST("/:id/questions/:questionId/answers", c.tests.AddAnswer)
		admin.PUT("/:id/questions/:questionId/answers/:answerId", c.tests.UpdateAnswer)
		admin.DELETE("/:id/questions/:questionId/answers/:answerId", c.tests.DeleteAnswer)
	}
}
