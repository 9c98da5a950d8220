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
	"github.com/yigit/uniadmin/internal/pkg/validation"
)

// DefaultEnrollmentYear is used when a new student has no enrollment year
const DefaultEnrollmentYear = 2024

// StudentService handles student management operations
type StudentService struct {
	connector   *db.Connector
	studentRepo *repositories.StudentRepository
	logger      zerolog.Logger
}

// NewStudentService creates a new student service instance
func NewStudentService(connector *db.Connector, studentRepo *repositories.StudentRepository, logger zerolog.Logger) *StudentService {
	return &StudentService{
		connector:   connector,
		studentRepo: studentRepo,
		logger:      logger,
	}
}

// validateStudent checks the fields every stored student must have
func (s *StudentService) validateStudent(student *models.Student) error {
	if student == nil {
		return fmt.Errorf("%w: student is nil", apperrors.ErrValidationFailed)
	}

	student.FirstName = strings.TrimSpace(student.FirstName)
	student.LastName = strings.TrimSpace(student.LastName)
	if !validation.NewStringValidation(student.FirstName).WithMaxLength(validation.NameMaxLength).Validate() ||
		!validation.NewStringValidation(student.LastName).WithMaxLength(validation.NameMaxLength).Validate() {
		return fmt.Errorf("%w: first and last name are required (at most %d characters)", apperrors.ErrValidationFailed, validation.NameMaxLength)
	}

	return nil
}

// validateStudentID validates a student ID
func validateStudentID(id int64) error {
	if !validation.NewNumericValidation(id).WithMin(1).Validate() {
		return fmt.Errorf("%w: student ID must be positive", apperrors.ErrValidationFailed)
	}
	return nil
}

// CreateStudent registers a new student and sets its generated ID
func (s *StudentService) CreateStudent(ctx context.Context, student *models.Student) error {
	if err := s.validateStudent(student); err != nil {
		return err
	}

	student.DeptID = strings.TrimSpace(student.DeptID)
	if student.DeptID == "" {
		return fmt.Errorf("%w: department is required", apperrors.ErrValidationFailed)
	}
	if student.EnrollmentYear == 0 {
		student.EnrollmentYear = DefaultEnrollmentYear
	}

	err := s.connector.WithConn(ctx, func(ctx context.Context, conn *sql.Conn) error {
		return s.studentRepo.Create(ctx, conn, student)
	})
	if err != nil {
		switch {
		case dberrors.IsUniqueViolation(err):
			return apperrors.NewCustomError(apperrors.ErrResourceAlreadyExists, "A student with this email already exists").WithCause(err)
		case dberrors.IsForeignKeyViolation(err):
			return apperrors.NewCustomError(apperrors.ErrValidationFailed, "Department does not exist").WithCause(err)
		}
		return fmt.Errorf("error creating student: %w", err)
	}

	s.logger.Info().Int64("studentId", student.ID).Str("deptId", student.DeptID).Msg("Student registered")
	return nil
}

// GetDirectory returns the full student table
func (s *StudentService) GetDirectory(ctx context.Context) (*db.Table, error) {
	var table *db.Table
	err := s.connector.WithConn(ctx, func(ctx context.Context, conn *sql.Conn) error {
		var err error
		table, err = s.studentRepo.Directory(ctx, conn)
		return err
	})
	if err != nil {
		return nil, fmt.Errorf("error retrieving student directory: %w", err)
	}
	return table, nil
}

// GetStudentOptions returns the id/name pairs used by selectors
func (s *StudentService) GetStudentOptions(ctx context.Context) ([]models.StudentOption, error) {
	var options []models.StudentOption
	err := s.connector.WithConn(ctx, func(ctx context.Context, conn *sql.Conn) error {
		var err error
		options, err = s.studentRepo.Options(ctx, conn)
		return err
	})
	if err != nil {
		return nil, fmt.Errorf("error retrieving students: %w", err)
	}
	return options, nil
}

// GetStudentByID loads the editable fields of a student
func (s *StudentService) GetStudentByID(ctx context.Context, id int64) (*models.Student, error) {
	if err := validateStudentID(id); err != nil {
		return nil, err
	}

	var student *models.Student
	err := s.connector.WithConn(ctx, func(ctx context.Context, conn *sql.Conn) error {
		var err error
		student, err = s.studentRepo.GetByID(ctx, conn, id)
		return err
	})
	if err != nil {
		return nil, err
	}
	return student, nil
}

// UpdateStudent changes name and contact details of an existing student
func (s *StudentService) UpdateStudent(ctx context.Context, student *models.Student) error {
	if err := s.validateStudent(student); err != nil {
		return err
	}
	if err := validateStudentID(student.ID); err != nil {
		return err
	}

	err := s.connector.WithConn(ctx, func(ctx context.Context, conn *sql.Conn) error {
		return s.studentRepo.Update(ctx, conn, student)
	})
	if err != nil {
		if dberrors.IsUniqueViolation(err) {
			return apperrors.NewCustomError(apperrors.ErrResourceAlreadyExists, "A student with this email already exists").WithCause(err)
		}
		return err
	}

	s.logger.Info().Int64("studentId", student.ID).Msg("Student updated")
	return nil
}

// DeleteStudent removes a student. Students that are still referenced by
// registrations are refused by the database and reported as a conflict.
func (s *StudentService) DeleteStudent(ctx context.Context, id int64) error {
	if err := validateStudentID(id); err != nil {
		return err
	}

	err := s.connector.WithConn(ctx, func(ctx context.Context, conn *sql.Conn) error {
		return s.studentRepo.Delete(ctx, conn, id)
	})
	if err != nil {
		if dberrors.IsForeignKeyViolation(err) {
			return apperrors.NewCustomError(apperrors.ErrStudentHasRelations, "Cannot delete student").WithCause(err)
		}
		return err
	}

	s.logger.Info().Int64("studentId", id).Msg("Student deleted")
	return nil
}
