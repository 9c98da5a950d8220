package repositories

import (
	"context"

	"github.com/Masterminds/squirrel"
	"github.com/yigit/uniadmin/internal/app/models"
	"github.com/yigit/uniadmin/internal/db"
)

// InstructorRepository reads the INSTRUCTOR table
type InstructorRepository struct {
	sb squirrel.StatementBuilderType
}

// NewInstructorRepository creates a new instructor repository
func NewInstructorRepository(sb squirrel.StatementBuilderType) *InstructorRepository {
	return &InstructorRepository{sb: sb}
}

// GetAll retrieves all instructors for selectors
func (r *InstructorRepository) GetAll(ctx context.Context, q db.DBTX) ([]models.Instructor, error) {
	query, args, err := r.sb.Select("InstructorID", "FirstName", "LastName").From("INSTRUCTOR").ToSql()
	if err != nil {
		return nil, err
	}

	rows, err := q.QueryContext(ctx, query, args...)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	instructors := make([]models.Instructor, 0)
	for rows.Next() {
		var instructor models.Instructor
		if err := rows.Scan(&instructor.ID, &instructor.FirstName, &instructor.LastName); err != nil {
			return nil, err
		}
		instructors = append(instructors, instructor)
	}

	if err := rows.Err(); err != nil {
		return nil, err
	}

	return instructors, nil
}
