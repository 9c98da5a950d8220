package repositories

import (
	"context"
	"database/sql"
	"errors"
	"fmt"

	"github.com/Masterminds/squirrel"
	"github.com/yigit/uniadmin/internal/app/models"
	"github.com/yigit/uniadmin/internal/db"
	"github.com/yigit/uniadmin/internal/pkg/apperrors"
	"github.com/yigit/uniadmin/internal/pkg/helpers"
)

// CourseRepository handles database operations for courses
type CourseRepository struct {
	sb squirrel.StatementBuilderType
}

// NewCourseRepository creates a new course repository
func NewCourseRepository(sb squirrel.StatementBuilderType) *CourseRepository {
	return &CourseRepository{sb: sb}
}

// Create inserts a course
func (r *CourseRepository) Create(ctx context.Context, q db.DBTX, course *models.Course) error {
	query, args, err := r.sb.Insert("COURSE").
		Columns("CourseCode", "CourseTitle", "Credits", "Description", "DeptID", "InstructorID").
		Values(
			course.Code,
			course.Title,
			course.Credits,
			helpers.GetNullString(course.Description),
			course.DeptID,
			course.InstructorID,
		).
		ToSql()
	if err != nil {
		return fmt.Errorf("error building create course SQL: %w", err)
	}

	_, err = q.ExecContext(ctx, query, args...)
	return err
}

// Catalog returns courses joined with their department and instructor names
func (r *CourseRepository) Catalog(ctx context.Context, q db.DBTX) (*db.Table, error) {
	query, args, err := r.sb.Select(
		"c.CourseCode", "c.CourseTitle", "c.Credits", "d.DeptName",
		"CONCAT(i.FirstName, ' ', i.LastName) AS Instructor",
	).
		From("COURSE c").
		LeftJoin("DEPARTMENT d ON c.DeptID = d.DeptID").
		LeftJoin("INSTRUCTOR i ON c.InstructorID = i.InstructorID").
		ToSql()
	if err != nil {
		return nil, err
	}
	return db.QueryTable(ctx, q, query, args...)
}

// Options returns code and title of every course for selectors
func (r *CourseRepository) Options(ctx context.Context, q db.DBTX) ([]models.CourseOption, error) {
	query, args, err := r.sb.Select("CourseCode", "CourseTitle").From("COURSE").ToSql()
	if err != nil {
		return nil, err
	}
	return scanCourseOptions(ctx, q, query, args...)
}

// GetByCode retrieves a course by its code
func (r *CourseRepository) GetByCode(ctx context.Context, q db.DBTX, code string) (*models.Course, error) {
	query, args, err := r.sb.Select("CourseCode", "CourseTitle", "Credits", "Description", "DeptID", "InstructorID").
		From("COURSE").
		Where(squirrel.Eq{"CourseCode": code}).
		ToSql()
	if err != nil {
		return nil, err
	}

	var (
		course       models.Course
		description  sql.NullString
		deptID       sql.NullString
		instructorID sql.NullInt64
	)
	err = q.QueryRowContext(ctx, query, args...).Scan(
		&course.Code,
		&course.Title,
		&course.Credits,
		&description,
		&deptID,
		&instructorID,
	)
	if err != nil {
		if errors.Is(err, sql.ErrNoRows) {
			return nil, apperrors.ErrCourseNotFound
		}
		return nil, fmt.Errorf("error retrieving course: %w", err)
	}

	course.Description = helpers.StringPtr(description)
	course.DeptID = deptID.String
	course.InstructorID = instructorID.Int64
	return &course, nil
}

// Update changes title, credits and description of a course
func (r *CourseRepository) Update(ctx context.Context, q db.DBTX, course *models.Course) error {
	query, args, err := r.sb.Update("COURSE").
		Set("CourseTitle", course.Title).
		Set("Credits", course.Credits).
		Set("Description", helpers.GetNullString(course.Description)).
		Where(squirrel.Eq{"CourseCode": course.Code}).
		ToSql()
	if err != nil {
		return err
	}

	res, err := q.ExecContext(ctx, query, args...)
	if err != nil {
		return err
	}
	return requireAffected(res, apperrors.ErrCourseNotFound)
}

// Delete removes a course by code
func (r *CourseRepository) Delete(ctx context.Context, q db.DBTX, code string) error {
	query, args, err := r.sb.Delete("COURSE").Where(squirrel.Eq{"CourseCode": code}).ToSql()
	if err != nil {
		return err
	}

	res, err := q.ExecContext(ctx, query, args...)
	if err != nil {
		return err
	}
	return requireAffected(res, apperrors.ErrCourseNotFound)
}

func scanCourseOptions(ctx context.Context, q db.DBTX, query string, args ...any) ([]models.CourseOption, error) {
	rows, err := q.QueryContext(ctx, query, args...)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	options := make([]models.CourseOption, 0)
	for rows.Next() {
		var option models.CourseOption
		if err := rows.Scan(&option.Code, &option.Title); err != nil {
			return nil, err
		}
		options = append(options, option)
	}

	if err := rows.Err(); err != nil {
		return nil, err
	}

	return options, nil
}
