package services

import (
	"context"
	"database/sql"
	"fmt"

	"github.com/yigit/uniadmin/internal/app/models"
	"github.com/yigit/uniadmin/internal/app/repositories"
	"github.com/yigit/uniadmin/internal/db"
)

// DashboardService assembles the landing view
type DashboardService struct {
	connector     *db.Connector
	dashboardRepo *repositories.DashboardRepository
}

// NewDashboardService creates a new dashboard service instance
func NewDashboardService(connector *db.Connector, dashboardRepo *repositories.DashboardRepository) *DashboardService {
	return &DashboardService{
		connector:     connector,
		dashboardRepo: dashboardRepo,
	}
}

// GetDashboard reads every counter and the recent activity on one connection
func (s *DashboardService) GetDashboard(ctx context.Context) (*models.Dashboard, error) {
	dashboard := &models.Dashboard{}

	err := s.connector.WithConn(ctx, func(ctx context.Context, conn *sql.Conn) error {
		counters := []struct {
			table string
			dst   *int
		}{
			{"STUDENT", &dashboard.Metrics.TotalStudents},
			{"COURSE", &dashboard.Metrics.ActiveCourses},
			{"INSTRUCTOR", &dashboard.Metrics.FacultyMembers},
			{"DEPARTMENT", &dashboard.Metrics.Departments},
		}
		for _, c := range counters {
			n, err := s.dashboardRepo.Count(ctx, conn, c.table)
			if err != nil {
				return err
			}
			*c.dst = n
		}

		var err error
		dashboard.RecentActivity, err = s.dashboardRepo.RecentActivity(ctx, conn)
		return err
	})
	if err != nil {
		return nil, fmt.Errorf("error loading dashboard: %w", err)
	}

	return dashboard, nil
}
