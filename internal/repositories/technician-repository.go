package repositories

import (
	"context"

	"go.uber.org/zap"

	"maintenance-console/internal/entities"
	"maintenance-console/pkg/apiclient"
	"maintenance-console/pkg/constants"
	"maintenance-console/pkg/types"
)

type TechnicianRepositoryInterface interface {
	GetTechnicians(ctx context.Context, filter types.Filter) ([]entities.Technician, uint64, error)
	FindTechnician(ctx context.Context, id uint64) (*entities.Technician, error)
	CreateTechnician(ctx context.Context, technician entities.Technician) (uint64, error)
	UpdateTechnician(ctx context.Context, technician entities.Technician) error
	DeleteTechnician(ctx context.Context, id uint64) error
}

type TechnicianRepository struct {
	rest *restRepository[entities.Technician]
}

func NewTechnicianRepository(client *apiclient.Client, logger *zap.Logger) TechnicianRepositoryInterface {
	return &TechnicianRepository{
		rest: newRestRepository[entities.Technician](client, constants.ResourceTechnicians, logger),
	}
}

func (r *TechnicianRepository) GetTechnicians(ctx context.Context, filter types.Filter) ([]entities.Technician, uint64, error) {
	return r.rest.list(ctx, filter)
}

func (r *TechnicianRepository) FindTechnician(ctx context.Context, id uint64) (*entities.Technician, error) {
	return r.rest.find(ctx, id)
}

func (r *TechnicianRepository) CreateTechnician(ctx context.Context, technician entities.Technician) (uint64, error) {
	return r.rest.create(ctx, technician)
}

func (r *TechnicianRepository) UpdateTechnician(ctx context.Context, technician entities.Technician) error {
	return r.rest.update(ctx, technician)
}

func (r *TechnicianRepository) DeleteTechnician(ctx context.Context, id uint64) error {
	return r.rest.delete(ctx, id)
}
