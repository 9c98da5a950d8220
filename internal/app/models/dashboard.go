package models

import "github.com/yigit/uniadmin/internal/db"

// DashboardMetrics are the headline counters of the console
type DashboardMetrics struct {
	TotalStudents  int `json:"totalStudents"`
	ActiveCourses  int `json:"activeCourses"`
	FacultyMembers int `json:"facultyMembers"`
	Departments    int `json:"departments"`
}

// Dashboard is the landing view: counters plus the recent activity log
type Dashboard struct {
	Metrics        DashboardMetrics `json:"metrics"`
	RecentActivity *db.Table        `json:"recentActivity"`
}
