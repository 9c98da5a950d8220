package dto

import (
	"time"

	"github.com/yigit/uniadmin/internal/app/models"
	"github.com/yigit/uniadmin/internal/pkg/helpers"
)

// DateLayout is the wire format of dates
const DateLayout = "2006-01-02"

// CreateStudentRequest represents the new student form
type CreateStudentRequest struct {
	FirstName      string `json:"firstName" binding:"required,max=50" example:"Grace"`
	LastName       string `json:"lastName" binding:"required,max=50" example:"Hopper"`
	Email          string `json:"email" binding:"omitempty,email,max=100" example:"grace@uni.edu"`
	Phone          string `json:"phone" binding:"omitempty,max=20" example:"555-0101"`
	DateOfBirth    string `json:"dateOfBirth" binding:"omitempty,datetime=2006-01-02" example:"2003-05-01"`
	EnrollmentYear int    `json:"enrollmentYear" binding:"omitempty,min=1900,max=2100" example:"2024"`
	DeptID         string `json:"deptId" binding:"required,max=10" example:"01"`
}

// ToModel converts the request to a student row. DateOfBirth must already
// have passed binding validation.
func (r *CreateStudentRequest) ToModel() *models.Student {
	student := &models.Student{
		FirstName:      r.FirstName,
		LastName:       r.LastName,
		Email:          helpers.OptionalString(r.Email),
		Phone:          helpers.OptionalString(r.Phone),
		EnrollmentYear: r.EnrollmentYear,
		DeptID:         r.DeptID,
	}
	if dob, err := time.Parse(DateLayout, r.DateOfBirth); err == nil {
		student.DateOfBirth = &dob
	}
	return student
}

// UpdateStudentRequest represents the edit student form
type UpdateStudentRequest struct {
	FirstName string `json:"firstName" binding:"required,max=50" example:"Grace"`
	LastName  string `json:"lastName" binding:"required,max=50" example:"Hopper"`
	Email     string `json:"email" binding:"omitempty,email,max=100" example:"grace@uni.edu"`
	Phone     string `json:"phone" binding:"omitempty,max=20" example:"555-0101"`
}

// ToModel converts the request to a student row for id
func (r *UpdateStudentRequest) ToModel(id int64) *models.Student {
	return &models.Student{
		ID:        id,
		FirstName: r.FirstName,
		LastName:  r.LastName,
		Email:     helpers.OptionalString(r.Email),
		Phone:     helpers.OptionalString(r.Phone),
	}
}

// CreateCourseRequest represents the new course form
type CreateCourseRequest struct {
	Code         string `json:"courseCode" binding:"required,max=20" example:"022400300"`
	Title        string `json:"courseTitle" binding:"required,max=100" example:"Data Mining"`
	Credits      int    `json:"credits" binding:"omitempty,min=1,max=6" example:"3"`
	Description  string `json:"description" example:"Mining big datasets."`
	DeptID       string `json:"deptId" binding:"required,max=10" example:"01"`
	InstructorID int64  `json:"instructorId" binding:"required,min=1" example:"2"`
}

// ToModel converts the request to a course row
func (r *CreateCourseRequest) ToModel() *models.Course {
	return &models.Course{
		Code:         r.Code,
		Title:        r.Title,
		Credits:      r.Credits,
		Description:  helpers.OptionalString(r.Description),
		DeptID:       r.DeptID,
		InstructorID: r.InstructorID,
	}
}

// UpdateCourseRequest represents the edit course form
type UpdateCourseRequest struct {
	Title       string `json:"courseTitle" binding:"required,max=100" example:"Database Systems"`
	Credits     int    `json:"credits" binding:"required,min=1,max=6" example:"4"`
	Description string `json:"description" example:"Relational databases."`
}

// ToModel converts the request to a course row for code
func (r *UpdateCourseRequest) ToModel(code string) *models.Course {
	return &models.Course{
		Code:        code,
		Title:       r.Title,
		Credits:     r.Credits,
		Description: helpers.OptionalString(r.Description),
	}
}

// EnrollmentRequest identifies a student and a course
type EnrollmentRequest struct {
	StudentID  int64  `json:"studentId" binding:"required,min=1" example:"1"`
	CourseCode string `json:"courseCode" binding:"required,max=20" example:"022400202"`
}

// ExecuteSQLRequest carries a statement for the SQL panel. It is executed
// exactly as given; an empty statement is reported as a failed outcome.
type ExecuteSQLRequest struct {
	SQL string `json:"sql" example:"SELECT StudentID FROM STUDENT"`
}
