package repositories

import (
	"github.com/Masterminds/squirrel"
)

// Repositories holds all the repository instances
type Repositories struct {
	StudentRepository      *StudentRepository
	CourseRepository       *CourseRepository
	DepartmentRepository   *DepartmentRepository
	InstructorRepository   *InstructorRepository
	RegistrationRepository *RegistrationRepository
	DashboardRepository    *DashboardRepository
}

// NewRepositories initializes all repositories for the driver's placeholder style
func NewRepositories(placeholder squirrel.PlaceholderFormat) *Repositories {
	sb := squirrel.StatementBuilder.PlaceholderFormat(placeholder)
	return &Repositories{
		StudentRepository:      NewStudentRepository(sb),
		CourseRepository:       NewCourseRepository(sb),
		DepartmentRepository:   NewDepartmentRepository(sb),
		InstructorRepository:   NewInstructorRepository(sb),
		RegistrationRepository: NewRegistrationRepository(sb),
		DashboardRepository:    NewDashboardRepository(sb),
	}
}
