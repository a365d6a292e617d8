package services

import (
	"context"

	"go.uber.org/zap"

	"maintenance-console/internal/dto"
	"maintenance-console/internal/entities"
	"maintenance-console/internal/events"
	"maintenance-console/internal/repositories"
	"maintenance-console/pkg/constants"
	"maintenance-console/pkg/eventbus"
	"maintenance-console/pkg/types"
)

type EquipmentServiceInterface interface {
	GetEquipments(ctx context.Context, filter types.Filter) (*types.ListResult[entities.Equipment], error)
	FindEquipment(ctx context.Context, id uint64) (*entities.Equipment, error)
	CreateEquipment(ctx context.Context, form dto.EquipmentFormDTO) (uint64, error)
	UpdateEquipment(ctx context.Context, id uint64, form dto.EquipmentFormDTO) error
	DeleteEquipment(ctx context.Context, id uint64) error
}

type EquipmentService struct {
	*BaseService
	equipmentRepository repositories.EquipmentRepositoryInterface
}

func NewEquipmentService(
	equipmentRepository repositories.EquipmentRepositoryInterface,
	bus *eventbus.Bus,
	logger *zap.Logger,
) EquipmentServiceInterface {
	return &EquipmentService{
		BaseService:         NewBaseService(constants.ResourceEquipments, bus, logger),
		equipmentRepository: equipmentRepository,
	}
}

func (s *EquipmentService) GetEquipments(ctx context.Context, filter types.Filter) (*types.ListResult[entities.Equipment], error) {
	rows, total, err := s.equipmentRepository.GetEquipments(ctx, filter)
	if err != nil {
		return nil, s.fail(ctx, "list", err, zap.Any("filter", filter))
	}
	return listResult(rows, total, filter), nil
}

func (s *EquipmentService) FindEquipment(ctx context.Context, id uint64) (*entities.Equipment, error) {
	equipment, err := s.equipmentRepository.FindEquipment(ctx, id)
	if err != nil {
		return nil, s.fail(ctx, "get", err, zap.Uint64("id", id))
	}
	return equipment, nil
}

func (s *EquipmentService) CreateEquipment(ctx context.Context, form dto.EquipmentFormDTO) (uint64, error) {
	id, err := s.equipmentRepository.CreateEquipment(ctx, form.ToEntity(0))
	if err != nil {
		return 0, s.fail(ctx, "create", err, zap.Any("payload", form))
	}
	s.changed(ctx, events.ActionCreated, id)
	return id, nil
}

func (s *EquipmentService) UpdateEquipment(ctx context.Context, id uint64, form dto.EquipmentFormDTO) error {
	if err := s.equipmentRepository.UpdateEquipment(ctx, form.ToEntity(id)); err != nil {
		return s.fail(ctx, "update", err, zap.Uint64("id", id), zap.Any("payload", form))
	}
	s.changed(ctx, events.ActionUpdated, id)
	return nil
}

func (s *EquipmentService) DeleteEquipment(ctx context.Context, id uint64) error {
	if err := s.equipmentRepository.DeleteEquipment(ctx, id); err != nil {
		return s.fail(ctx, "delete", err, zap.Uint64("id", id))
	}
	s.changed(ctx, events.ActionDeleted, id)
	return nil
}
