package services

import (
	"context"
	"database/sql"
	"fmt"

	"github.com/yigit/uniadmin/internal/app/models"
	"github.com/yigit/uniadmin/internal/app/repositories"
	"github.com/yigit/uniadmin/internal/db"
)

// LookupService serves the reference data forms choose from
type LookupService struct {
	connector      *db.Connector
	departmentRepo *repositories.DepartmentRepository
	instructorRepo *repositories.InstructorRepository
}

// NewLookupService creates a new lookup service instance
func NewLookupService(connector *db.Connector, departmentRepo *repositories.DepartmentRepository, instructorRepo *repositories.InstructorRepository) *LookupService {
	return &LookupService{
		connector:      connector,
		departmentRepo: departmentRepo,
		instructorRepo: instructorRepo,
	}
}

// GetDepartments retrieves all departments
func (s *LookupService) GetDepartments(ctx context.Context) ([]models.Department, error) {
	var departments []models.Department
	err := s.connector.WithConn(ctx, func(ctx context.Context, conn *sql.Conn) error {
		var err error
		departments, err = s.departmentRepo.GetAll(ctx, conn)
		return err
	})
	if err != nil {
		return nil, fmt.Errorf("error retrieving departments: %w", err)
	}
	return departments, nil
}

// GetInstructors retrieves all instructors
func (s *LookupService) GetInstructors(ctx context.Context) ([]models.Instructor, error) {
	var instructors []models.Instructor
	err := s.connector.WithConn(ctx, func(ctx context.Context, conn *sql.Conn) error {
		var err error
		instructors, err = s.instructorRepo.GetAll(ctx, conn)
		return err
	})
	if err != nil {
		return nil, fmt.Errorf("error retrieving instructors: %w", err)
	}
	return instructors, nil
}
