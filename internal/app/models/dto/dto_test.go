package dto

import (
	"errors"
	"testing"

	"github.com/go-playground/validator/v10"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/yigit/uniadmin/internal/db"
)

func TestHandleValidationError_FieldErrors(t *testing.T) {
	v := validator.New()
	v.SetTagName("binding")

	err := v.Struct(CreateCourseRequest{Code: "X1", DeptID: "01", InstructorID: 1, Credits: 9})
	require.Error(t, err)

	detail := HandleValidationError(err)
	assert.Equal(t, ErrorCodeValidationFailed, detail.Code)
	assert.Equal(t, "Validation failed", detail.Message)

	fields, ok := detail.Details.([]ErrorDetail)
	require.True(t, ok)
	require.Len(t, fields, 2)
	assert.Equal(t, "Title", fields[0].Field)
	assert.Equal(t, "Title is required", fields[0].Message)
	assert.Equal(t, "Credits must be at most 6", fields[1].Message)
	assert.Empty(t, detail.Field)
}

func TestHandleValidationError_SingleFieldIsNamed(t *testing.T) {
	v := validator.New()
	v.SetTagName("binding")

	err := v.Struct(CreateStudentRequest{FirstName: "A", LastName: "B", DeptID: "01", DateOfBirth: "01/05/2003"})
	detail := HandleValidationError(err)
	assert.Equal(t, "DateOfBirth", detail.Field)
}

func TestHandleValidationError_Malformed(t *testing.T) {
	detail := HandleValidationError(errors.New("unexpected EOF"))
	assert.Equal(t, "Invalid request format", detail.Message)
	assert.Equal(t, "unexpected EOF", detail.Details)
}

func TestCreateStudentRequest_ToModel(t *testing.T) {
	req := CreateStudentRequest{FirstName: "Grace", LastName: "Hopper", Email: " ", DateOfBirth: "2003-05-01", DeptID: "01"}
	student := req.ToModel()

	assert.Nil(t, student.Email)
	require.NotNil(t, student.DateOfBirth)
	assert.Equal(t, 2003, student.DateOfBirth.Year())

	req.DateOfBirth = ""
	assert.Nil(t, req.ToModel().DateOfBirth)
}

func TestNewTableResponse(t *testing.T) {
	resp := NewTableResponse(&db.Table{Columns: []string{"a"}, Rows: [][]any{{1}, {2}}})
	assert.Equal(t, 2, resp.Count)

	empty := NewTableResponse(nil)
	assert.NotNil(t, empty.Columns)
	assert.NotNil(t, empty.Rows)
	assert.Zero(t, empty.Count)
}

func TestErrorDetail_WithDatabaseError(t *testing.T) {
	detail := NewErrorDetail(ErrorCodeDatabaseError, "Database error").
		WithDatabaseError(errors.New("relation \"studnt\" does not exist"))
	assert.Equal(t, `relation "studnt" does not exist`, detail.DatabaseError)
	assert.Equal(t, ErrorSeverityError, detail.Severity)

	assert.Empty(t, NewErrorDetail(ErrorCodeDatabaseError, "x").WithDatabaseError(nil).DatabaseError)
}
