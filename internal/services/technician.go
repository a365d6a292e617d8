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

type TechnicianServiceInterface interface {
	GetTechnicians(ctx context.Context, filter types.Filter) (*types.ListResult[entities.Technician], error)
	FindTechnician(ctx context.Context, id uint64) (*entities.Technician, error)
	CreateTechnician(ctx context.Context, form dto.TechnicianFormDTO) (uint64, error)
	UpdateTechnician(ctx context.Context, id uint64, form dto.TechnicianFormDTO) error
	DeleteTechnician(ctx context.Context, id uint64) error
}

type TechnicianService struct {
	*BaseService
	technicianRepository repositories.TechnicianRepositoryInterface
}

func NewTechnicianService(
	technicianRepository repositories.TechnicianRepositoryInterface,
	bus *eventbus.Bus,
	logger *zap.Logger,
) TechnicianServiceInterface {
	return &TechnicianService{
		BaseService:          NewBaseService(constants.ResourceTechnicians, bus, logger),
		technicianRepository: technicianRepository,
	}
}

func (s *TechnicianService) GetTechnicians(ctx context.Context, filter types.Filter) (*types.ListResult[entities.Technician], error) {
	rows, total, err := s.technicianRepository.GetTechnicians(ctx, filter)
	if err != nil {
		return nil, s.fail(ctx, "list", err, zap.Any("filter", filter))
	}
	return listResult(rows, total, filter), nil
}

func (s *TechnicianService) FindTechnician(ctx context.Context, id uint64) (*entities.Technician, error) {
	technician, err := s.technicianRepository.FindTechnician(ctx, id)
	if err != nil {
		return nil, s.fail(ctx, "get", err, zap.Uint64("id", id))
	}
	return technician, nil
}

func (s *TechnicianService) CreateTechnician(ctx context.Context, form dto.TechnicianFormDTO) (uint64, error) {
	id, err := s.technicianRepository.CreateTechnician(ctx, form.ToEntity(0))
	if err != nil {
		return 0, s.fail(ctx, "create", err, zap.Any("payload", form))
	}
	s.changed(ctx, events.ActionCreated, id)
	return id, nil
}

func (s *TechnicianService) UpdateTechnician(ctx context.Context, id uint64, form dto.TechnicianFormDTO) error {
	if err := s.technicianRepository.UpdateTechnician(ctx, form.ToEntity(id)); err != nil {
		return s.fail(ctx, "update", err, zap.Uint64("id", id), zap.Any("payload", form))
	}
	s.changed(ctx, events.ActionUpdated, id)
	return nil
}

func (s *TechnicianService) DeleteTechnician(ctx context.Context, id uint64) error {
	if err := s.technicianRepository.DeleteTechnician(ctx, id); err != nil {
		return s.fail(ctx, "delete", err, zap.Uint64("id", id))
	}
	s.changed(ctx, events.ActionDeleted, id)
	return nil
}
