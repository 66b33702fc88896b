package services

import (
	"context"

	"github.com/FAMH/Collection-Gateway/src/api"
	"github.com/FAMH/Collection-Gateway/src/models"
	"go.uber.org/zap"
)

// DepartmentService backs the department listing: a source filter (all /
// with artwork / without artwork), name ordering, and the soft-delete
// lifecycle. Departments have no facet filters.
type DepartmentService struct {
	api *api.Client
	log *zap.Logger
}

func NewDepartmentService(client *api.Client, logger *zap.Logger) *DepartmentService {
	if logger == nil {
		logger = zap.NewNop()
	}
	return &DepartmentService{api: client, log: logger}
}

// List fetches one department listing and orders it by name.
func (s *DepartmentService) List(ctx context.Context, source models.DepartmentSource, deleted bool, sortToken string) ([]models.DepartmentRecord, error) {
	if sortToken == "" {
		sortToken = SortDepartmentAsc
	}
	departments, err := s.api.ListDepartments(ctx, source, deleted)
	if err != nil {
		s.log.Warn("department fetch failed", zap.Error(err))
		return nil, err
	}
	return SortDepartments(departments, sortToken), nil
}

func (s *DepartmentService) Update(ctx context.Context, id int, update api.DepartmentUpdate) error {
	return s.api.UpdateDepartment(ctx, id, update)
}

// Delete soft-deletes a department; editing and deleting are not offered in
// the deleted view, which the controller enforces.
func (s *DepartmentService) Delete(ctx context.Context, id int) error {
	return s.api.DeleteDepartment(ctx, id)
}

func (s *DepartmentService) Restore(ctx context.Context, id int) error {
	return s.api.RestoreDepartment(ctx, id)
}
