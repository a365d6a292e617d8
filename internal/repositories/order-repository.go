package repositories

import (
	"context"

	"go.uber.org/zap"

	"maintenance-console/internal/entities"
	"maintenance-console/pkg/apiclient"
	"maintenance-console/pkg/constants"
	"maintenance-console/pkg/types"
)

type OrderRepositoryInterface interface {
	GetOrders(ctx context.Context, filter types.Filter) ([]entities.Order, uint64, error)
	FindOrder(ctx context.Context, id uint64) (*entities.Order, error)
	CreateOrder(ctx context.Context, order entities.Order) (uint64, error)
	UpdateOrder(ctx context.Context, order entities.Order) error
	DeleteOrder(ctx context.Context, id uint64) error
}

type OrderRepository struct {
	rest *restRepository[entities.Order]
}

func NewOrderRepository(client *apiclient.Client, logger *zap.Logger) OrderRepositoryInterface {
	return &OrderRepository{
		rest: newRestRepository[entities.Order](client, constants.ResourceOrders, logger),
	}
}

func (r *OrderRepository) GetOrders(ctx context.Context, filter types.Filter) ([]entities.Order, uint64, error) {
	return r.rest.list(ctx, filter)
}

func (r *OrderRepository) FindOrder(ctx context.Context, id uint64) (*entities.Order, error) {
	return r.rest.find(ctx, id)
}

func (r *OrderRepository) CreateOrder(ctx context.Context, order entities.Order) (uint64, error) {
	return r.rest.create(ctx, order)
}

func (r *OrderRepository) UpdateOrder(ctx context.Context, order entities.Order) error {
	return r.rest.update(ctx, order)
}

func (r *OrderRepository) DeleteOrder(ctx context.Context, id uint64) error {
	return r.rest.delete(ctx, id)
}
