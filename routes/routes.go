package routes

import (
	"github.com/gin-gonic/gin"
	"gorm.io/gorm"

	"github.com/vnkhanh/e-course-backend/controllers"
	"github.com/vnkhanh/e-course-backend/middleware"
	"github.com/vnkhanh/e-course-backend/models"
	"github.com/vnkhanh/e-course-backend/ws"
)

func SetupRouter(r *gin.Engine, db *gorm.DB) *gin.Engine {
	r.GET("/ping", func(c *gin.Context) {
		c.JSON(200, gin.H{"message": "pong"})
	})
	r.GET("/health", controllers.HealthCheck)

	api := r.Group("/api")

	auth := api.Group("/auth")
	{
		auth.POST("/register", controllers.Register)
		auth.POST("/login", controllers.Login)
		auth.PUT("/password", middleware.AuthMiddleware(), controllers.ChangePassword)
	}

	// Catalog công khai
	api.GET("/courses", controllers.GetPublishedCourses)
	api.GET("/courses/:id", controllers.GetPublishedCourseDetail)

	// Đăng ký khoá học (học viên đã đăng nhập)
	enroll := api.Group("/enrollments")
	{
		enroll.Use(middleware.AuthMiddleware())
		enroll.POST("", controllers.Enroll)
		enroll.GET("", controllers.GetMyEnrollments)
	}

	admin := api.Group("/admin")
	{
		admin.Use(middleware.AuthMiddleware(), middleware.DBMiddleware(db))

		adminOnly := middleware.RequireRoles(string(models.RoleAdmin))
		adminOrInstructor := middleware.RequireRoles(string(models.RoleAdmin), string(models.RoleInstructor))

		// Quản lý người dùng
		admin.GET("/users", adminOnly, controllers.GetAllUsers)
		admin.GET("/users/:id", adminOnly, controllers.GetUserByID)
		admin.PUT("/users/:id", adminOnly, controllers.UpdateUserRole)
		admin.DELETE("/users/:id", adminOnly, controllers.DeleteUser)
		admin.POST("/users", adminOnly, controllers.AddStudent)

		// Quản lý khoá học
		admin.GET("/courses", adminOrInstructor, controllers.GetAllCourses)
		admin.GET("/courses/:id", adminOrInstructor, controllers.GetCourseByID)
		admin.PUT("/courses/:id", adminOrInstructor, controllers.UpdateCourse)
		admin.PUT("/courses/:id/publish", adminOrInstructor, controllers.ToggleCoursePublish)
		admin.POST("/courses/:id/thumbnail", adminOrInstructor, controllers.UploadCourseThumbnail)

		// Quản trị hệ thống
		admin.GET("/stats", adminOnly, controllers.GetSystemStats)
		admin.PUT("/settings", adminOnly, controllers.UpdateSystemSettings)
		admin.GET("/audit-logs", adminOnly, controllers.GetAuditLogs)
	}

	r.GET("/ws/admin", ws.HandleAdminWebSocket)

	return r
}
