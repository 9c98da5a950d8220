// Package services holds the console's business logic. Every operation
// acquires its own connection from the connector and releases it before
// returning.
package services

import (
	"github.com/yigit/uniadmin/internal/app/repositories"
	"github.com/yigit/uniadmin/internal/db"
	"github.com/yigit/uniadmin/internal/pkg/logger"
)

// Services holds all the service instances
type Services struct {
	StudentService    *StudentService
	CourseService     *CourseService
	EnrollmentService *EnrollmentService
	LookupService     *LookupService
	DashboardService  *DashboardService
	Dispatcher        *Dispatcher
}

// NewServices wires every service to the connector and repositories
func NewServices(connector *db.Connector, repos *repositories.Repositories, semester string) *Services {
	return &Services{
		StudentService:    NewStudentService(connector, repos.StudentRepository, logger.Component("students")),
		CourseService:     NewCourseService(connector, repos.CourseRepository, logger.Component("courses")),
		EnrollmentService: NewEnrollmentService(connector, repos.RegistrationRepository, semester, logger.Component("enrollment")),
		LookupService:     NewLookupService(connector, repos.DepartmentRepository, repos.InstructorRepository),
		DashboardService:  NewDashboardService(connector, repos.DashboardRepository),
		Dispatcher:        NewDispatcher(connector, logger.Get()),
	}
}
