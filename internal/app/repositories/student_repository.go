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

// StudentRepository handles database operations for students
type StudentRepository struct {
	sb squirrel.StatementBuilderType
}

// NewStudentRepository creates a new student repository
func NewStudentRepository(sb squirrel.StatementBuilderType) *StudentRepository {
	return &StudentRepository{sb: sb}
}

// Create inserts a student and sets its generated ID
func (r *StudentRepository) Create(ctx context.Context, q db.DBTX, student *models.Student) error {
	query, args, err := r.sb.Insert("STUDENT").
		Columns("FirstName", "LastName", "Email", "Phone", "DateOfBirth", "EnrollmentYear", "DeptID").
		Values(
			student.FirstName,
			student.LastName,
			helpers.GetNullString(student.Email),
			helpers.GetNullString(student.Phone),
			helpers.GetNullTime(student.DateOfBirth),
			student.EnrollmentYear,
			student.DeptID,
		).
		Suffix("RETURNING StudentID").
		ToSql()
	if err != nil {
		return fmt.Errorf("error building create student SQL: %w", err)
	}

	return q.QueryRowContext(ctx, query, args...).Scan(&student.ID)
}

// Directory returns the full STUDENT table as displayed in the directory view
func (r *StudentRepository) Directory(ctx context.Context, q db.DBTX) (*db.Table, error) {
	query, args, err := r.sb.Select("*").From("STUDENT").ToSql()
	if err != nil {
		return nil, err
	}
	return db.QueryTable(ctx, q, query, args...)
}

// Options returns id and name of every student for selectors
func (r *StudentRepository) Options(ctx context.Context, q db.DBTX) ([]models.StudentOption, error) {
	query, args, err := r.sb.Select("StudentID", "FirstName", "LastName").From("STUDENT").ToSql()
	if err != nil {
		return nil, err
	}

	rows, err := q.QueryContext(ctx, query, args...)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	options := make([]models.StudentOption, 0)
	for rows.Next() {
		var option models.StudentOption
		if err := rows.Scan(&option.ID, &option.FirstName, &option.LastName); err != nil {
			return nil, err
		}
		options = append(options, option)
	}

	if err := rows.Err(); err != nil {
		return nil, err
	}

	return options, nil
}

// GetByID retrieves the editable fields of a student
func (r *StudentRepository) GetByID(ctx context.Context, q db.DBTX, id int64) (*models.Student, error) {
	query, args, err := r.sb.Select("StudentID", "FirstName", "LastName", "Email", "Phone", "EnrollmentYear", "DeptID").
		From("STUDENT").
		Where(squirrel.Eq{"StudentID": id}).
		ToSql()
	if err != nil {
		return nil, err
	}

	var (
		student        models.Student
		email, phone   sql.NullString
		deptID         sql.NullString
		enrollmentYear sql.NullInt64
	)
	err = q.QueryRowContext(ctx, query, args...).Scan(
		&student.ID,
		&student.FirstName,
		&student.LastName,
		&email,
		&phone,
		&enrollmentYear,
		&deptID,
	)
	if err != nil {
		if errors.Is(err, sql.ErrNoRows) {
			return nil, apperrors.ErrStudentNotFound
		}
		return nil, fmt.Errorf("error retrieving student: %w", err)
	}

	student.Email = helpers.StringPtr(email)
	student.Phone = helpers.StringPtr(phone)
	student.DeptID = deptID.String
	student.EnrollmentYear = int(enrollmentYear.Int64)
	return &student, nil
}

// Update changes the contact details of a student
func (r *StudentRepository) Update(ctx context.Context, q db.DBTX, student *models.Student) error {
	query, args, err := r.sb.Update("STUDENT").
		Set("FirstName", student.FirstName).
		Set("LastName", student.LastName).
		Set("Email", helpers.GetNullString(student.Email)).
		Set("Phone", helpers.GetNullString(student.Phone)).
		Where(squirrel.Eq{"StudentID": student.ID}).
		ToSql()
	if err != nil {
		return err
	}

	res, err := q.ExecContext(ctx, query, args...)
	if err != nil {
		return err
	}
	return requireAffected(res, apperrors.ErrStudentNotFound)
}

// Delete removes a student by ID
func (r *StudentRepository) Delete(ctx context.Context, q db.DBTX, id int64) error {
	query, args, err := r.sb.Delete("STUDENT").Where(squirrel.Eq{"StudentID": id}).ToSql()
	if err != nil {
		return err
	}

	res, err := q.ExecContext(ctx, query, args...)
	if err != nil {
		return err
	}
	return requireAffected(res, apperrors.ErrStudentNotFound)
}

// requireAffected maps "no row matched" onto notFound
func requireAffected(res sql.Result, notFound error) error {
	n, err := res.RowsAffected()
	if err != nil {
		return err
	}
	if n == 0 {
		return notFound
	}
	return nil
}
