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

// Credit bounds of a course
const (
	MinCredits     = 1
	MaxCredits     = 6
	DefaultCredits = 3
)

// CourseService handles course management operations
type CourseService struct {
	connector  *db.Connector
	courseRepo *repositories.CourseRepository
	logger     zerolog.Logger
}

// NewCourseService creates a new course service instance
func NewCourseService(connector *db.Connector, courseRepo *repositories.CourseRepository, logger zerolog.Logger) *CourseService {
	return &CourseService{
		connector:  connector,
		courseRepo: courseRepo,
		logger:     logger,
	}
}

func validateCredits(credits int) error {
	if !validation.NewNumericValidation(credits).WithMin(MinCredits).WithMax(MaxCredits).Validate() {
		return fmt.Errorf("%w: credits must be between %d and %d", apperrors.ErrValidationFailed, MinCredits, MaxCredits)
	}
	return nil
}

func validateCourseCode(code string) error {
	if !validation.NewStringValidation(code).
		WithMaxLength(validation.CourseCodeMaxLength).
		WithPattern(validation.CompiledPatterns.CourseCode).
		Validate() {
		return fmt.Errorf("%w: course code is required and must be a single token", apperrors.ErrValidationFailed)
	}
	return nil
}

// CreateCourse adds a course to the catalog
func (s *CourseService) CreateCourse(ctx context.Context, course *models.Course) error {
	if course == nil {
		return fmt.Errorf("%w: course is nil", apperrors.ErrValidationFailed)
	}

	course.Code = strings.TrimSpace(course.Code)
	course.Title = strings.TrimSpace(course.Title)
	course.DeptID = strings.TrimSpace(course.DeptID)
	if course.Code == "" || course.Title == "" || course.DeptID == "" || course.InstructorID <= 0 {
		return fmt.Errorf("%w: course code, title, department and instructor are required", apperrors.ErrValidationFailed)
	}

	if course.Credits == 0 {
		course.Credits = DefaultCredits
	}
	if err := validateCredits(course.Credits); err != nil {
		return err
	}

	err := s.connector.WithConn(ctx, func(ctx context.Context, conn *sql.Conn) error {
		return s.courseRepo.Create(ctx, conn, course)
	})
	if err != nil {
		switch {
		case dberrors.IsUniqueViolation(err):
			return apperrors.NewCustomError(apperrors.ErrCourseAlreadyExists, "Course code already exists").WithCause(err)
		case dberrors.IsForeignKeyViolation(err):
			return apperrors.NewCustomError(apperrors.ErrValidationFailed, "Department or instructor does not exist").WithCause(err)
		}
		return fmt.Errorf("error creating course: %w", err)
	}

	s.logger.Info().Str("courseCode", course.Code).Msg("Course added")
	return nil
}

// GetCatalog returns every course with its department and instructor names
func (s *CourseService) GetCatalog(ctx context.Context) (*db.Table, error) {
	var table *db.Table
	err := s.connector.WithConn(ctx, func(ctx context.Context, conn *sql.Conn) error {
		var err error
		table, err = s.courseRepo.Catalog(ctx, conn)
		return err
	})
	if err != nil {
		return nil, fmt.Errorf("error retrieving course catalog: %w", err)
	}
	return table, nil
}

// GetCourseOptions returns the code/title pairs used by selectors
func (s *CourseService) GetCourseOptions(ctx context.Context) ([]models.CourseOption, error) {
	var options []models.CourseOption
	err := s.connector.WithConn(ctx, func(ctx context.Context, conn *sql.Conn) error {
		var err error
		options, err = s.courseRepo.Options(ctx, conn)
		return err
	})
	if err != nil {
		return nil, fmt.Errorf("error retrieving courses: %w", err)
	}
	return options, nil
}

// GetCourseByCode loads a single course
func (s *CourseService) GetCourseByCode(ctx context.Context, code string) (*models.Course, error) {
	if err := validateCourseCode(code); err != nil {
		return nil, err
	}

	var course *models.Course
	err := s.connector.WithConn(ctx, func(ctx context.Context, conn *sql.Conn) error {
		var err error
		course, err = s.courseRepo.GetByCode(ctx, conn, strings.TrimSpace(code))
		return err
	})
	if err != nil {
		return nil, err
	}
	return course, nil
}

// UpdateCourse changes title, credits and description
func (s *CourseService) UpdateCourse(ctx context.Context, course *models.Course) error {
	if course == nil {
		return fmt.Errorf("%w: course is nil", apperrors.ErrValidationFailed)
	}
	if err := validateCourseCode(course.Code); err != nil {
		return err
	}

	course.Title = strings.TrimSpace(course.Title)
	if course.Title == "" {
		return fmt.Errorf("%w: course title is required", apperrors.ErrValidationFailed)
	}
	if err := validateCredits(course.Credits); err != nil {
		return err
	}

	err := s.connector.WithConn(ctx, func(ctx context.Context, conn *sql.Conn) error {
		return s.courseRepo.Update(ctx, conn, course)
	})
	if err != nil {
		return err
	}

	s.logger.Info().Str("courseCode", course.Code).Msg("Course updated")
	return nil
}

// DeleteCourse removes a course. Courses with registered students are
// refused by the database and reported as a conflict.
func (s *CourseService) DeleteCourse(ctx context.Context, code string) error {
	if err := validateCourseCode(code); err != nil {
		return err
	}

	err := s.connector.WithConn(ctx, func(ctx context.Context, conn *sql.Conn) error {
		return s.courseRepo.Delete(ctx, conn, strings.TrimSpace(code))
	})
	if err != nil {
		if dberrors.IsForeignKeyViolation(err) {
			return apperrors.NewCustomError(apperrors.ErrCourseHasRelations, "Cannot delete course").WithCause(err)
		}
		return err
	}

	s.logger.Info().Str("courseCode", code).Msg("Course deleted")
	return nil
}
