package models

// Instructor is the selector view of the INSTRUCTOR table
type Instructor struct {
	ID        int64  `json:"instructorId" db:"InstructorID" example:"1"`
	FirstName string `json:"firstName" db:"FirstName" example:"Ada"`
	LastName  string `json:"lastName" db:"LastName" example:"Lovelace"`
}
