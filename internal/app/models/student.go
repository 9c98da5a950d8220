package models

import "time"

// Student is a row of the STUDENT table
type Student struct {
	ID             int64      `json:"studentId" db:"StudentID" example:"1"`
	FirstName      string     `json:"firstName" db:"FirstName" example:"Grace"`
	LastName       string     `json:"lastName" db:"LastName" example:"Hopper"`
	Email          *string    `json:"email,omitempty" db:"Email" example:"grace@uni.edu"`
	Phone          *string    `json:"phone,omitempty" db:"Phone" example:"555-0101"`
	DateOfBirth    *time.Time `json:"dateOfBirth,omitempty" db:"DateOfBirth"`
	EnrollmentYear int        `json:"enrollmentYear" db:"EnrollmentYear" example:"2024"`
	DeptID         string     `json:"deptId" db:"DeptID" example:"01"`
}

// StudentOption is the id/name pair shown in student selectors
type StudentOption struct {
	ID        int64  `json:"studentId"`
	FirstName string `json:"firstName"`
	LastName  string `json:"lastName"`
}
