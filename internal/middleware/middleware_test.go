package middleware

import (
	"encoding/json"
	"errors"
	"fmt"
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"

	"github.com/gin-gonic/gin"
	"github.com/rs/zerolog"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/yigit/uniadmin/internal/app/models/dto"
	"github.com/yigit/uniadmin/internal/pkg/apperrors"
)

func init() {
	gin.SetMode(gin.TestMode)
}

func renderError(t *testing.T, err error) (int, dto.ErrorResponse) {
	t.Helper()

	w := httptest.NewRecorder()
	c, _ := gin.CreateTestContext(w)
	c.Request = httptest.NewRequest(http.MethodGet, "/api/v1/students/1", nil)

	HandleAPIError(c, err)

	var resp dto.ErrorResponse
	require.NoError(t, json.Unmarshal(w.Body.Bytes(), &resp))
	return w.Code, resp
}

func TestHandleAPIError_Mapping(t *testing.T) {
	cause := errors.New("FOREIGN KEY constraint failed")

	tests := []struct {
		name   string
		err    error
		status int
		code   dto.ErrorCode
	}{
		{"student not found", apperrors.ErrStudentNotFound, http.StatusNotFound, dto.ErrorCodeResourceNotFound},
		{"wrapped course not found", fmt.Errorf("lookup: %w", apperrors.ErrCourseNotFound), http.StatusNotFound, dto.ErrorCodeResourceNotFound},
		{"validation", fmt.Errorf("%w: credits must be between 1 and 6", apperrors.ErrValidationFailed), http.StatusBadRequest, dto.ErrorCodeValidationFailed},
		{"duplicate course", apperrors.NewCustomError(apperrors.ErrCourseAlreadyExists, "Course code already exists").WithCause(cause), http.StatusConflict, dto.ErrorCodeResourceAlreadyExists},
		{"already enrolled", apperrors.ErrAlreadyEnrolled, http.StatusConflict, dto.ErrorCodeConflict},
		{"student has relations", apperrors.NewCustomError(apperrors.ErrStudentHasRelations, "Cannot delete student").WithCause(cause), http.StatusConflict, dto.ErrorCodeConflict},
		{"unreachable", apperrors.NewCustomError(apperrors.ErrDatabaseUnavailable, "Database Connection Error").WithCause(cause), http.StatusServiceUnavailable, dto.ErrorCodeDatabaseError},
		{"unknown", errors.New("syntax error at or near \"SELEC\""), http.StatusInternalServerError, dto.ErrorCodeDatabaseError},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			status, resp := renderError(t, tt.err)
			assert.Equal(t, tt.status, status)
			assert.False(t, resp.Success)
			require.NotNil(t, resp.Error)
			assert.Equal(t, tt.code, resp.Error.Code)
		})
	}
}

func TestHandleAPIError_PassesDatabaseText(t *testing.T) {
	cause := errors.New("FOREIGN KEY constraint failed")
	_, resp := renderError(t, apperrors.NewCustomError(apperrors.ErrStudentHasRelations, "Cannot delete student").WithCause(cause))

	assert.Equal(t, "Cannot delete student", resp.Error.Message)
	assert.Equal(t, "FOREIGN KEY constraint failed", resp.Error.DatabaseError)
	assert.Equal(t, dto.ErrorSeverityWarning, resp.Error.Severity)

	_, resp = renderError(t, errors.New(`relation "studnt" does not exist`))
	assert.Equal(t, `relation "studnt" does not exist`, resp.Error.DatabaseError)
	assert.Equal(t, dto.ErrorSeverityError, resp.Error.Severity)
}

func TestBindJSON(t *testing.T) {
	router := gin.New()
	router.POST("/enrollments", func(c *gin.Context) {
		var req dto.EnrollmentRequest
		if !BindJSON(c, &req) {
			return
		}
		c.JSON(http.StatusOK, req)
	})

	w := httptest.NewRecorder()
	router.ServeHTTP(w, httptest.NewRequest(http.MethodPost, "/enrollments", strings.NewReader(`{"studentId":1}`)))
	assert.Equal(t, http.StatusBadRequest, w.Code)
	assert.Contains(t, w.Body.String(), "CourseCode is required")

	w = httptest.NewRecorder()
	router.ServeHTTP(w, httptest.NewRequest(http.MethodPost, "/enrollments", strings.NewReader(`{"studentId":1,"courseCode":"022400202"}`)))
	assert.Equal(t, http.StatusOK, w.Code)
}

func TestRequestLogger_SetsRequestID(t *testing.T) {
	router := gin.New()
	router.Use(RequestLogger(zerolog.Nop()))
	router.GET("/ping", func(c *gin.Context) {
		assert.NotEmpty(t, c.GetString("requestId"))
		c.Status(http.StatusNoContent)
	})

	w := httptest.NewRecorder()
	router.ServeHTTP(w, httptest.NewRequest(http.MethodGet, "/ping", nil))
	assert.Len(t, w.Header().Get(RequestIDHeader), 36)

	req := httptest.NewRequest(http.MethodGet, "/ping", nil)
	req.Header.Set(RequestIDHeader, "abc-123")
	w = httptest.NewRecorder()
	router.ServeHTTP(w, req)
	assert.Equal(t, "abc-123", w.Header().Get(RequestIDHeader))
}
