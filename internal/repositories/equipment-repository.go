package repositories

import (
	"context"

	"go.uber.org/zap"

	"maintenance-console/internal/entities"
	"maintenance-console/pkg/apiclient"
	"maintenance-console/pkg/constants"
	"maintenance-console/pkg/types"
)

type EquipmentRepositoryInterface interface {
	GetEquipments(ctx context.Context, filter types.Filter) ([]entities.Equipment, uint64, error)
	FindEquipment(ctx context.Context, id uint64) (*entities.Equipment, error)
	CreateEquipment(ctx context.Context, equipment entities.Equipment) (uint64, error)
	UpdateEquipment(ctx context.Context, equipment entities.Equipment) error
	DeleteEquipment(ctx context.Context, id uint64) error
}

type EquipmentRepository struct {
	rest *restRepository[entities.Equipment]
}

func NewEquipmentRepository(client *apiclient.Client, logger *zap.Logger) EquipmentRepositoryInterface {
	return &EquipmentRepository{
		rest: newRestRepository[entities.Equipment](client, constants.ResourceEquipments, logger),
	}
}

func (r *EquipmentRepository) GetEquipments(ctx context.Context, filter types.Filter) ([]entities.Equipment, uint64, error) {
	return r.rest.list(ctx, filter)
}

func (r *EquipmentRepository) FindEquipment(ctx context.Context, id uint64) (*entities.Equipment, error) {
	return r.rest.find(ctx, id)
}

func (r *EquipmentRepository) CreateEquipment(ctx context.Context, equipment entities.Equipment) (uint64, error) {
	return r.rest.create(ctx, equipment)
}

func (r *EquipmentRepository) UpdateEquipment(ctx context.Context, equipment entities.Equipment) error {
	return r.rest.update(ctx, equipment)
}

func (r *EquipmentRepository) DeleteEquipment(ctx context.Context, id uint64) error {
	return r.rest.delete(ctx, id)
}
