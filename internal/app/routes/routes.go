package routes

import (
	"github.com/gin-gonic/gin"

	"github.com/yigit/uniadmin/internal/app/controllers"
)

// Controllers groups the handlers mounted under /api/v1
type Controllers struct {
	Health     *controllers.HealthController
	Lookup     *controllers.LookupController
	Student    *controllers.StudentController
	Course     *controllers.CourseController
	Enrollment *controllers.EnrollmentController
	SQL        *controllers.SQLController
}

// SetupRouter configures all application routes
func SetupRouter(router *gin.Engine, c *Controllers) {
	// API version group
	v1 := router.Group("/api/v1")

	v1.GET("/health", c.Health.Health)
	v1.GET("/dashboard", c.Lookup.GetDashboard)
	v1.GET("/departments", c.Lookup.GetDepartments)
	v1.GET("/instructors", c.Lookup.GetInstructors)

	students := v1.Group("/students")
	{
		students.GET("", c.Student.GetDirectory)
		students.POST("", c.Student.CreateStudent)
		students.GET("/options", c.Student.GetStudentOptions)
		students.GET("/:id", c.Student.GetStudentByID)
		students.PUT("/:id", c.Student.UpdateStudent)
		students.DELETE("/:id", c.Student.DeleteStudent)
		students.GET("/:id/courses", c.Student.GetStudentCourses)
	}

	courses := v1.Group("/courses")
	{
		courses.GET("", c.Course.GetCatalog)
		courses.POST("", c.Course.CreateCourse)
		courses.GET("/options", c.Course.GetCourseOptions)
		courses.GET("/:code", c.Course.GetCourseByCode)
		courses.PUT("/:code", c.Course.UpdateCourse)
		courses.DELETE("/:code", c.Course.DeleteCourse)
	}

	enrollments := v1.Group("/enrollments")
	{
		enrollments.POST("", c.Enrollment.Enroll)
		enrollments.DELETE("", c.Enrollment.Drop)
	}

	sql := v1.Group("/sql")
	{
		sql.GET("/templates", c.SQL.GetTemplates)
		sql.GET("/templates/lookup", c.SQL.LookupTemplate)
		sql.POST("/execute", c.SQL.Execute)
	}
}
