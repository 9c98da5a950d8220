package middleware

import (
	"errors"
	"net/http"

	"github.com/gin-gonic/gin"

	"github.com/yigit/uniadmin/internal/app/models/dto"
	"github.com/yigit/uniadmin/internal/pkg/apperrors"
	"github.com/yigit/uniadmin/internal/pkg/logger"
)

// apiError is the HTTP rendering of an application error
type apiError struct {
	status  int
	code    dto.ErrorCode
	message string
}

// errorTable is checked in order; the first matching sentinel wins.
var errorTable = []struct {
	target error
	apiError
}{
	{apperrors.ErrStudentNotFound, apiError{http.StatusNotFound, dto.ErrorCodeResourceNotFound, "Student not found"}},
	{apperrors.ErrCourseNotFound, apiError{http.StatusNotFound, dto.ErrorCodeResourceNotFound, "Course not found"}},
	{apperrors.ErrEnrollmentNotFound, apiError{http.StatusNotFound, dto.ErrorCodeResourceNotFound, "No matching enrollment found"}},
	{apperrors.ErrResourceNotFound, apiError{http.StatusNotFound, dto.ErrorCodeResourceNotFound, "Resource not found"}},
	{apperrors.ErrValidationFailed, apiError{http.StatusBadRequest, dto.ErrorCodeValidationFailed, "Validation failed"}},
	{apperrors.ErrBadRequest, apiError{http.StatusBadRequest, dto.ErrorCodeValidationFailed, "Bad request"}},
	{apperrors.ErrEnrollmentReference, apiError{http.StatusBadRequest, dto.ErrorCodeResourceInvalid, "Student or course does not exist"}},
	{apperrors.ErrCourseAlreadyExists, apiError{http.StatusConflict, dto.ErrorCodeResourceAlreadyExists, "Course code already exists"}},
	{apperrors.ErrResourceAlreadyExists, apiError{http.StatusConflict, dto.ErrorCodeResourceAlreadyExists, "Resource already exists"}},
	{apperrors.ErrAlreadyEnrolled, apiError{http.StatusConflict, dto.ErrorCodeConflict, "Student is already enrolled in this course for the current semester"}},
	{apperrors.ErrStudentHasRelations, apiError{http.StatusConflict, dto.ErrorCodeConflict, "Cannot delete student: related records (e.g., registration) exist"}},
	{apperrors.ErrCourseHasRelations, apiError{http.StatusConflict, dto.ErrorCodeConflict, "Cannot delete course: students are currently registered"}},
	{apperrors.ErrConflict, apiError{http.StatusConflict, dto.ErrorCodeConflict, "Conflict"}},
	{apperrors.ErrDatabaseUnavailable, apiError{http.StatusServiceUnavailable, dto.ErrorCodeDatabaseError, "Database Connection Error"}},
}

// HandleAPIError handles common API errors and returns appropriate responses.
// The database's own error text is always passed through to the client.
func HandleAPIError(c *gin.Context, err error) {
	resolved := apiError{http.StatusInternalServerError, dto.ErrorCodeDatabaseError, "Database error"}
	for _, entry := range errorTable {
		if errors.Is(err, entry.target) {
			resolved = entry.apiError
			break
		}
	}

	detail := dto.NewErrorDetail(resolved.code, resolved.message)

	var custom *apperrors.CustomError
	if errors.As(err, &custom) {
		if custom.Message != "" {
			detail.Message = custom.Message
		}
		if custom.Details != nil {
			detail.WithDetails(custom.Details)
		}
		detail.WithDatabaseError(custom.Cause)
	}

	if detail.DatabaseError == "" {
		if resolved.status == http.StatusInternalServerError {
			detail.WithDatabaseError(err)
		} else if detail.Details == nil {
			detail.WithDetails(err.Error())
		}
	}

	if resolved.status >= http.StatusInternalServerError {
		logger.Error().Err(err).Str("path", c.Request.URL.Path).Int("status", resolved.status).Msg("Request failed")
	} else {
		detail.WithSeverity(dto.ErrorSeverityWarning)
	}

	c.JSON(resolved.status, dto.NewErrorResponse(detail))
}
