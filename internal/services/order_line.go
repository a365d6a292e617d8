package services

import (
	"context"
	"net/http"

	"go.uber.org/zap"

	"maintenance-console/internal/dto"
	"maintenance-console/internal/entities"
	"maintenance-console/internal/events"
	"maintenance-console/internal/repositories"
	"maintenance-console/pkg/constants"
	apperrors "maintenance-console/pkg/errors"
	"maintenance-console/pkg/eventbus"
)

type OrderLineServiceInterface interface {
	GetOrderLines(ctx context.Context, orderID uint64) ([]entities.OrderLine, error)
	AddOrderLine(ctx context.Context, form dto.OrderLineFormDTO) (*entities.OrderLine, error)
	UpdateOrderLine(ctx context.Context, id uint64, form dto.OrderLineFormDTO) (*entities.OrderLine, bool, error)
	DeleteOrderLine(ctx context.Context, orderID, id uint64) error
}

type OrderLineService struct {
	*BaseService
	orderLineRepository repositories.OrderLineRepositoryInterface
}

func NewOrderLineService(
	orderLineRepository repositories.OrderLineRepositoryInterface,
	bus *eventbus.Bus,
	logger *zap.Logger,
) OrderLineServiceInterface {
	return &OrderLineService{
		BaseService:         NewBaseService(constants.ResourceOrderLines, bus, logger),
		orderLineRepository: orderLineRepository,
	}
}

func (s *OrderLineService) GetOrderLines(ctx context.Context, orderID uint64) ([]entities.OrderLine, error) {
	lines, err := s.orderLineRepository.GetOrderLines(ctx, orderID)
	if err != nil {
		return nil, s.fail(ctx, "list", err, zap.Uint64("order_id", orderID))
	}
	return lines, nil
}

// AddOrderLine creates the line and returns it with the id the backend
// assigned, ready to be appended to the rendered list.
func (s *OrderLineService) AddOrderLine(ctx context.Context, form dto.OrderLineFormDTO) (*entities.OrderLine, error) {
	line := form.ToEntity(0)
	id, err := s.orderLineRepository.CreateOrderLine(ctx, line)
	if err != nil {
		return nil, s.fail(ctx, "create", err, zap.Any("payload", form))
	}
	line.ID = id
	s.changed(ctx, events.ActionCreated, id)
	return &line, nil
}

// UpdateOrderLine saves amount and total of a line of form.OrderID. Nothing
// is sent when neither value differs from the stored line; the bool reports
// whether an update was issued.
func (s *OrderLineService) UpdateOrderLine(ctx context.Context, id uint64, form dto.OrderLineFormDTO) (*entities.OrderLine, bool, error) {
	current, err := s.owned(ctx, form.OrderID, id)
	if err != nil {
		return nil, false, err
	}

	next := form.ToEntity(id)
	if current.Amount == next.Amount && current.Total == next.Total {
		return current, false, nil
	}

	updated := *current
	updated.Amount = next.Amount
	updated.Total = next.Total
	if err := s.orderLineRepository.UpdateOrderLine(ctx, updated); err != nil {
		return nil, false, s.fail(ctx, "update", err, zap.Uint64("id", id), zap.Any("payload", form))
	}
	s.changed(ctx, events.ActionUpdated, id)
	return &updated, true, nil
}

func (s *OrderLineService) DeleteOrderLine(ctx context.Context, orderID, id uint64) error {
	if _, err := s.owned(ctx, orderID, id); err != nil {
		return err
	}
	if err := s.orderLineRepository.DeleteOrderLine(ctx, id); err != nil {
		return s.fail(ctx, "delete", err, zap.Uint64("id", id))
	}
	s.changed(ctx, events.ActionDeleted, id)
	return nil
}

// owned loads line id and checks it belongs to orderID. A line of another
// order is reported as not found.
func (s *OrderLineService) owned(ctx context.Context, orderID, id uint64) (*entities.OrderLine, error) {
	line, err := s.orderLineRepository.FindOrderLine(ctx, id)
	if err != nil {
		return nil, s.fail(ctx, "get", err, zap.Uint64("id", id))
	}
	if line.OrderID != orderID {
		s.logger.Warn("line belongs to another order",
			zap.Uint64("id", id),
			zap.Uint64("order_id", orderID),
			zap.Uint64("line_order_id", line.OrderID),
		)
		return nil, apperrors.NewHttpError(http.StatusNotFound, "", apperrors.ErrNotFound, map[string]interface{}{
			"resource": s.resource,
			"id":       id,
			"order_id": orderID,
		})
	}
	return line, nil
}
