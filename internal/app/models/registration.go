package models

// Registration is a row of the REGISTRATION table
type Registration struct {
	ID         int64   `json:"registrationId" db:"RegistrationID" example:"1"`
	Semester   string  `json:"semester" db:"Semester" example:"Spring 2025"`
	Grade      *string `json:"grade,omitempty" db:"Grade" example:"A"`
	StudentID  int64   `json:"studentId" db:"StudentID" example:"1"`
	CourseCode string  `json:"courseCode" db:"CourseCode" example:"022400202"`
}
