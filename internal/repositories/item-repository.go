package repositories

import (
	"context"

	"go.uber.org/zap"

	"maintenance-console/internal/entities"
	"maintenance-console/pkg/apiclient"
	"maintenance-console/pkg/constants"
	"maintenance-console/pkg/types"
)

type ItemRepositoryInterface interface {
	GetItems(ctx context.Context, filter types.Filter) ([]entities.Item, uint64, error)
	FindItem(ctx context.Context, id uint64) (*entities.Item, error)
	CreateItem(ctx context.Context, item entities.Item) (uint64, error)
	UpdateItem(ctx context.Context, item entities.Item) error
	DeleteItem(ctx context.Context, id uint64) error
}

type ItemRepository struct {
	rest *restRepository[entities.Item]
}

func NewItemRepository(client *apiclient.Client, logger *zap.Logger) ItemRepositoryInterface {
	return &ItemRepository{
		rest: newRestRepository[entities.Item](client, constants.ResourceItems, logger),
	}
}

func (r *ItemRepository) GetItems(ctx context.Context, filter types.Filter) ([]entities.Item, uint64, error) {
	return r.rest.list(ctx, filter)
}

func (r *ItemRepository) FindItem(ctx context.Context, id uint64) (*entities.Item, error) {
	return r.rest.find(ctx, id)
}

func (r *ItemRepository) CreateItem(ctx context.Context, item entities.Item) (uint64, error) {
	return r.rest.create(ctx, item)
}

func (r *ItemRepository) UpdateItem(ctx context.Context, item entities.Item) error {
	return r.rest.update(ctx, item)
}

func (r *ItemRepository) DeleteItem(ctx context.Context, id uint64) error {
	return r.rest.delete(ctx, id)
}
