package repositories

import (
	"context"

	"github.com/Masterminds/squirrel"
	"github.com/yigit/uniadmin/internal/app/models"
	"github.com/yigit/uniadmin/internal/db"
)

// DepartmentRepository reads the DEPARTMENT table
type DepartmentRepository struct {
	sb squirrel.StatementBuilderType
}

// NewDepartmentRepository creates a new department repository
func NewDepartmentRepository(sb squirrel.StatementBuilderType) *DepartmentRepository {
	return &DepartmentRepository{sb: sb}
}

// GetAll retrieves all departments for selectors
func (r *DepartmentRepository) GetAll(ctx context.Context, q db.DBTX) ([]models.Department, error) {
	query, args, err := r.sb.Select("DeptID", "DeptName").From("DEPARTMENT").ToSql()
	if err != nil {
		return nil, err
	}

	rows, err := q.QueryContext(ctx, query, args...)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	departments := make([]models.Department, 0)
	for rows.Next() {
		var department models.Department
		if err := rows.Scan(&department.ID, &department.Name); err != nil {
			return nil, err
		}
		departments = append(departments, department)
	}

	if err := rows.Err(); err != nil {
		return nil, err
	}

	return departments, nil
}
