package routes

import (
	"github.com/gin-gonic/gin"
	"github.com/mrmarton/REST-API/internal/app/controllers"
	"github.com/mrmarton/REST-API/internal/middleware"
)

// SetupRouter configures all application routes
func SetupRouter(
	router *gin.Engine,
	userController *controllers.UserController,
	courseController *controllers.CourseController,
	authMiddleware *middleware.AuthMiddleware,
) {
	// User routes
	users := router.Group("/users")
	{
		users.GET("", authMiddleware.BasicAuth(), userController.GetCurrentUser)
		users.POST("", userController.CreateUser)
	}

	// Course routes: reads are public, writes require basic auth
	courses := router.Group("/courses")
	{
		courses.GET("", courseController.GetAllCourses)
		courses.GET("/:id", courseController.GetCourseByID)

		coursesProtected := courses.Group("")
		coursesProtected.Use(authMiddleware.BasicAuth())
		{
			coursesProtected.POST("", courseController.CreateCourse)
			coursesProtected.PUT("/:id", courseController.UpdateCourse)
			coursesProtected.DELETE("/:id", courseController.DeleteCourse)
		}
	}

	// Health check endpoint (public)
	router.GET("/health", func(c *gin.Context) {
		c.JSON(200, gin.H{"status": "ok"})
	})
}
