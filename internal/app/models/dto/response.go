package dto

import (
	"time"

	"github.com/yigit/uniadmin/internal/app/catalog"
	"github.com/yigit/uniadmin/internal/app/models"
	"github.com/yigit/uniadmin/internal/db"
)

// APIResponse is the envelope of every JSON response
type APIResponse struct {
	Success   bool         `json:"success" example:"true"`
	Message   string       `json:"message,omitempty" example:"Operation completed successfully"`
	Data      interface{}  `json:"data,omitempty"`
	Error     *ErrorDetail `json:"error,omitempty"`
	Timestamp time.Time    `json:"timestamp" example:"2025-04-23T12:01:05.123Z"`
}

// NewSuccessResponse wraps data in a successful envelope
func NewSuccessResponse(data interface{}, message string) APIResponse {
	return APIResponse{
		Success:   true,
		Message:   message,
		Data:      data,
		Timestamp: time.Now(),
	}
}

// TableResponse is a materialized result set
type TableResponse struct {
	Columns []string `json:"columns" example:"StudentID,FirstName"`
	Rows    [][]any  `json:"rows"`
	Count   int      `json:"count" example:"3"`
}

// NewTableResponse converts a result set for the wire
func NewTableResponse(t *db.Table) TableResponse {
	if t == nil {
		return TableResponse{Columns: []string{}, Rows: [][]any{}}
	}
	return TableResponse{Columns: t.Columns, Rows: t.Rows, Count: t.Len()}
}

// TemplateListResponse lists the SQL templates in display order
type TemplateListResponse struct {
	Templates []catalog.Entry `json:"templates"`
}

// TemplateResponse is a single SQL template
type TemplateResponse struct {
	Label string `json:"label" example:"1. View Student Records"`
	SQL   string `json:"sql" example:"SELECT StudentID, FirstName, LastName, Email, EnrollmentYear, DeptID\nFROM STUDENT;"`
}

// EnrollmentResponse reports a created registration
type EnrollmentResponse struct {
	Registration *models.Registration `json:"registration"`
}

// DropResponse reports how many registrations were removed
type DropResponse struct {
	Dropped int64 `json:"dropped" example:"1"`
}

// HealthResponse reports liveness and database reachability
type HealthResponse struct {
	Status   string `json:"status" example:"ok"`
	Database string `json:"database" example:"up"`
	Driver   string `json:"driver" example:"postgres"`
}
