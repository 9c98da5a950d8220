package models

// Department is a row of the DEPARTMENT table
type Department struct {
	ID   string `json:"deptId" db:"DeptID" example:"01"`
	Name string `json:"deptName" db:"DeptName" example:"Computer Science"`
}
