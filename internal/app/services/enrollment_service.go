package services

import (
	"context"
	"database/sql"
	"fmt"
	"strings"

	"github.com/rs/zerolog"

	"github.com/yigit/uniadmin/internal/app/models"
	"github.com/yigit/uniadmin/internal/app/repositories"
	"github.com/yigit/uniadmin/internal/db"
	"github.com/yigit/uniadmin/internal/pkg/apperrors"
	"github.com/yigit/uniadmin/internal/pkg/dberrors"
)

// EnrollmentService registers students in courses for the current semester
type EnrollmentService struct {
	connector        *db.Connector
	registrationRepo *repositories.RegistrationRepository
	semester         string
	logger           zerolog.Logger
}

// NewEnrollmentService creates a new enrollment service for semester
func NewEnrollmentService(connector *db.Connector, registrationRepo *repositories.RegistrationRepository, semester string, logger zerolog.Logger) *EnrollmentService {
	return &EnrollmentService{
		connector:        connector,
		registrationRepo: registrationRepo,
		semester:         semester,
		logger:           logger,
	}
}

// Semester returns the semester new registrations are recorded under
func (s *EnrollmentService) Semester() string {
	return s.semester
}

func validateEnrollment(studentID int64, courseCode string) error {
	if err := validateStudentID(studentID); err != nil {
		return err
	}
	return validateCourseCode(courseCode)
}

// Enroll registers the student in the course for the current semester. A
// second registration in the same semester is refused.
func (s *EnrollmentService) Enroll(ctx context.Context, studentID int64, courseCode string) (*models.Registration, error) {
	if err := validateEnrollment(studentID, courseCode); err != nil {
		return nil, err
	}

	registration := &models.Registration{
		StudentID:  studentID,
		CourseCode: strings.TrimSpace(courseCode),
		Semester:   s.semester,
	}

	err := s.connector.WithTransaction(ctx, func(ctx context.Context, tx *sql.Tx) error {
		exists, err := s.registrationRepo.Exists(ctx, tx, registration.StudentID, registration.CourseCode, registration.Semester)
		if err != nil {
			return fmt.Errorf("error checking registration: %w", err)
		}
		if exists {
			return apperrors.ErrAlreadyEnrolled
		}
		return s.registrationRepo.Create(ctx, tx, registration)
	})
	if err != nil {
		if dberrors.IsForeignKeyViolation(err) {
			return nil, apperrors.NewCustomError(apperrors.ErrEnrollmentReference, "Enrollment failed").WithCause(err)
		}
		return nil, err
	}

	s.logger.Info().
		Int64("registrationId", registration.ID).
		Int64("studentId", studentID).
		Str("courseCode", registration.CourseCode).
		Str("semester", registration.Semester).
		Msg("Student enrolled")
	return registration, nil
}

// GetStudentCourses lists the courses the student is registered in
func (s *EnrollmentService) GetStudentCourses(ctx context.Context, studentID int64) ([]models.CourseOption, error) {
	if err := validateStudentID(studentID); err != nil {
		return nil, err
	}

	var courses []models.CourseOption
	err := s.connector.WithConn(ctx, func(ctx context.Context, conn *sql.Conn) error {
		var err error
		courses, err = s.registrationRepo.CoursesForStudent(ctx, conn, studentID)
		return err
	})
	if err != nil {
		return nil, fmt.Errorf("error retrieving registered courses: %w", err)
	}
	return courses, nil
}

// Drop removes the student's registrations in the course and returns how
// many were removed.
func (s *EnrollmentService) Drop(ctx context.Context, studentID int64, courseCode string) (int64, error) {
	if err := validateEnrollment(studentID, courseCode); err != nil {
		return 0, err
	}

	var dropped int64
	err := s.connector.WithConn(ctx, func(ctx context.Context, conn *sql.Conn) error {
		var err error
		dropped, err = s.registrationRepo.Drop(ctx, conn, studentID, strings.TrimSpace(courseCode))
		return err
	})
	if err != nil {
		return 0, err
	}

	s.logger.Info().Int64("studentId", studentID).Str("courseCode", courseCode).Int64("dropped", dropped).Msg("Course dropped")
	return dropped, nil
}
