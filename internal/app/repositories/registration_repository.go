package repositories

import (
	"context"

	"github.com/Masterminds/squirrel"
	"github.com/yigit/uniadmin/internal/app/models"
	"github.com/yigit/uniadmin/internal/db"
	"github.com/yigit/uniadmin/internal/pkg/apperrors"
)

// RegistrationRepository handles database operations for course registrations
type RegistrationRepository struct {
	sb squirrel.StatementBuilderType
}

// NewRegistrationRepository creates a new registration repository
func NewRegistrationRepository(sb squirrel.StatementBuilderType) *RegistrationRepository {
	return &RegistrationRepository{sb: sb}
}

// Exists reports whether the student is registered in the course for semester
func (r *RegistrationRepository) Exists(ctx context.Context, q db.DBTX, studentID int64, courseCode, semester string) (bool, error) {
	query, args, err := r.sb.Select("1").
		From("REGISTRATION").
		Where(squirrel.Eq{"StudentID": studentID, "CourseCode": courseCode, "Semester": semester}).
		Limit(1).
		ToSql()
	if err != nil {
		return false, err
	}

	rows, err := q.QueryContext(ctx, query, args...)
	if err != nil {
		return false, err
	}
	defer rows.Close()

	found := rows.Next()
	return found, rows.Err()
}

// Create registers a student in a course for semester, without a grade
func (r *RegistrationRepository) Create(ctx context.Context, q db.DBTX, registration *models.Registration) error {
	query, args, err := r.sb.Insert("REGISTRATION").
		Columns("StudentID", "CourseCode", "Semester").
		Values(registration.StudentID, registration.CourseCode, registration.Semester).
		Suffix("RETURNING RegistrationID").
		ToSql()
	if err != nil {
		return err
	}

	return q.QueryRowContext(ctx, query, args...).Scan(&registration.ID)
}

// CoursesForStudent lists the courses a student is currently registered in
func (r *RegistrationRepository) CoursesForStudent(ctx context.Context, q db.DBTX, studentID int64) ([]models.CourseOption, error) {
	query, args, err := r.sb.Select("r.CourseCode", "c.CourseTitle").
		From("REGISTRATION r").
		Join("COURSE c ON r.CourseCode = c.CourseCode").
		Where(squirrel.Eq{"r.StudentID": studentID}).
		ToSql()
	if err != nil {
		return nil, err
	}
	return scanCourseOptions(ctx, q, query, args...)
}

// Drop removes every registration of the student in the course
func (r *RegistrationRepository) Drop(ctx context.Context, q db.DBTX, studentID int64, courseCode string) (int64, error) {
	query, args, err := r.sb.Delete("REGISTRATION").
		Where(squirrel.Eq{"StudentID": studentID, "CourseCode": courseCode}).
		ToSql()
	if err != nil {
		return 0, err
	}

	res, err := q.ExecContext(ctx, query, args...)
	if err != nil {
		return 0, err
	}

	n, err := res.RowsAffected()
	if err != nil {
		return 0, err
	}
	if n == 0 {
		return 0, apperrors.ErrEnrollmentNotFound
	}
	return n, nil
}
