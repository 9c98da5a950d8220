package repositories

import (
	"context"
	"fmt"

	"github.com/Masterminds/squirrel"
	"github.com/yigit/uniadmin/internal/db"
)

// recentActivityLimit is the size of the dashboard activity log
const recentActivityLimit = 5

// DashboardRepository runs the aggregate queries of the dashboard
type DashboardRepository struct {
	sb squirrel.StatementBuilderType
}

// NewDashboardRepository creates a new dashboard repository
func NewDashboardRepository(sb squirrel.StatementBuilderType) *DashboardRepository {
	return &DashboardRepository{sb: sb}
}

// Count returns the number of rows in one of the schema tables
func (r *DashboardRepository) Count(ctx context.Context, q db.DBTX, table string) (int, error) {
	query, args, err := r.sb.Select("COUNT(*)").From(table).ToSql()
	if err != nil {
		return 0, err
	}

	var n int
	if err := q.QueryRowContext(ctx, query, args...).Scan(&n); err != nil {
		return 0, fmt.Errorf("error counting %s: %w", table, err)
	}
	return n, nil
}

// RecentActivity returns the latest registrations with student and course names
func (r *DashboardRepository) RecentActivity(ctx context.Context, q db.DBTX) (*db.Table, error) {
	query, args, err := r.sb.Select("r.RegistrationID", "s.FirstName", "s.LastName", "c.CourseTitle", "r.Semester").
		From("REGISTRATION r").
		Join("STUDENT s ON r.StudentID = s.StudentID").
		Join("COURSE c ON r.CourseCode = c.CourseCode").
		OrderBy("r.RegistrationID DESC").
		Limit(recentActivityLimit).
		ToSql()
	if err != nil {
		return nil, err
	}
	return db.QueryTable(ctx, q, query, args...)
}
