package controllers

import (
	"fmt"
	"net/http"

	"github.com/gin-gonic/gin"

	"github.com/yigit/uniadmin/internal/app/models/dto"
	"github.com/yigit/uniadmin/internal/app/services"
	"github.com/yigit/uniadmin/internal/middleware"
)

// EnrollmentController handles course registration
type EnrollmentController struct {
	enrollmentService *services.EnrollmentService
}

// NewEnrollmentController creates a new EnrollmentController
func NewEnrollmentController(enrollmentService *services.EnrollmentService) *EnrollmentController {
	return &EnrollmentController{
		enrollmentService: enrollmentService,
	}
}

// Enroll registers a student in a course for the current semester
// @Summary Enroll student
// @Description A student can be registered in a course only once per semester.
// @Tags enrollments
// @Accept json
// @Produce json
// @Param request body dto.EnrollmentRequest true "Student and course"
// @Success 201 {object} dto.APIResponse{data=dto.EnrollmentResponse}
// @Failure 400 {object} dto.ErrorResponse "Invalid request or unknown student/course"
// @Failure 409 {object} dto.ErrorResponse "Already enrolled this semester"
// @Router /enrollments [post]
func (c *EnrollmentController) Enroll(ctx *gin.Context) {
	var req dto.EnrollmentRequest
	if !middleware.BindJSON(ctx, &req) {
		return
	}

	registration, err := c.enrollmentService.Enroll(ctx.Request.Context(), req.StudentID, req.CourseCode)
	if err != nil {
		middleware.HandleAPIError(ctx, err)
		return
	}

	message := fmt.Sprintf("Successfully enrolled student %d in %s for %s", req.StudentID, registration.CourseCode, registration.Semester)
	ctx.JSON(http.StatusCreated, dto.NewSuccessResponse(dto.EnrollmentResponse{Registration: registration}, message))
}

// Drop removes a student from a course
// @Summary Drop course
// @Tags enrollments
// @Accept json
// @Produce json
// @Param request body dto.EnrollmentRequest true "Student and course"
// @Success 200 {object} dto.APIResponse{data=dto.DropResponse}
// @Failure 400 {object} dto.ErrorResponse "Invalid request data"
// @Failure 404 {object} dto.ErrorResponse "No matching enrollment"
// @Router /enrollments [delete]
func (c *EnrollmentController) Drop(ctx *gin.Context) {
	var req dto.EnrollmentRequest
	if !middleware.BindJSON(ctx, &req) {
		return
	}

	dropped, err := c.enrollmentService.Drop(ctx.Request.Context(), req.StudentID, req.CourseCode)
	if err != nil {
		middleware.HandleAPIError(ctx, err)
		return
	}

	ctx.JSON(http.StatusOK, dto.NewSuccessResponse(dto.DropResponse{Dropped: dropped}, "Course dropped successfully"))
}
