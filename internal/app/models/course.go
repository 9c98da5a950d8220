package models

// Course is a row of the COURSE table
type Course struct {
	Code         string  `json:"courseCode" db:"CourseCode" example:"022400202"`
	Title        string  `json:"courseTitle" db:"CourseTitle" example:"Database Systems"`
	Credits      int     `json:"credits" db:"Credits" example:"3"`
	Description  *string `json:"description,omitempty" db:"Description"` // Nullable
	DeptID       string  `json:"deptId" db:"DeptID" example:"01"`
	InstructorID int64   `json:"instructorId" db:"InstructorID" example:"1"`
}

// CourseOption is the code/title pair shown in course selectors
type CourseOption struct {
	Code  string `json:"courseCode"`
	Title string `json:"courseTitle"`
}
