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

type OrderServiceInterface interface {
	GetOrders(ctx context.Context, filter types.Filter) (*types.ListResult[entities.Order], error)
	FindOrder(ctx context.Context, id uint64) (*entities.Order, error)
	CreateOrder(ctx context.Context, form dto.OrderFormDTO) (uint64, error)
	UpdateOrder(ctx context.Context, id uint64, form dto.OrderFormDTO) error
	DeleteOrder(ctx context.Context, id uint64) error
}

type OrderService struct {
	*BaseService
	orderRepository repositories.OrderRepositoryInterface
}

func NewOrderService(
	orderRepository repositories.OrderRepositoryInterface,
	bus *eventbus.Bus,
	logger *zap.Logger,
) OrderServiceInterface {
	return &OrderService{
		BaseService:     NewBaseService(constants.ResourceOrders, bus, logger),
		orderRepository: orderRepository,
	}
}

func (s *OrderService) GetOrders(ctx context.Context, filter types.Filter) (*types.ListResult[entities.Order], error) {
	rows, total, err := s.orderRepository.GetOrders(ctx, filter)
	if err != nil {
		return nil, s.fail(ctx, "list", err, zap.Any("filter", filter))
	}
	return listResult(rows, total, filter), nil
}

func (s *OrderService) FindOrder(ctx context.Context, id uint64) (*entities.Order, error) {
	order, err := s.orderRepository.FindOrder(ctx, id)
	if err != nil {
		return nil, s.fail(ctx, "get", err, zap.Uint64("id", id))
	}
	return order, nil
}

func (s *OrderService) CreateOrder(ctx context.Context, form dto.OrderFormDTO) (uint64, error) {
	id, err := s.orderRepository.CreateOrder(ctx, form.ToEntity(0))
	if err != nil {
		return 0, s.fail(ctx, "create", err, zap.Any("payload", form))
	}
	s.changed(ctx, events.ActionCreated, id)
	return id, nil
}

func (s *OrderService) UpdateOrder(ctx context.Context, id uint64, form dto.OrderFormDTO) error {
	if err := s.orderRepository.UpdateOrder(ctx, form.ToEntity(id)); err != nil {
		return s.fail(ctx, "update", err, zap.Uint64("id", id), zap.Any("payload", form))
	}
	s.changed(ctx, events.ActionUpdated, id)
	return nil
}

func (s *OrderService) DeleteOrder(ctx context.Context, id uint64) error {
	if err := s.orderRepository.DeleteOrder(ctx, id); err != nil {
		return s.fail(ctx, "delete", err, zap.Uint64("id", id))
	}
	s.changed(ctx, events.ActionDeleted, id)
	return nil
}
