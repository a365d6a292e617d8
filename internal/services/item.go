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

type ItemServiceInterface interface {
	GetItems(ctx context.Context, filter types.Filter) (*types.ListResult[entities.Item], error)
	FindItem(ctx context.Context, id uint64) (*entities.Item, error)
	CreateItem(ctx context.Context, form dto.ItemFormDTO) (uint64, error)
	UpdateItem(ctx context.Context, id uint64, form dto.ItemFormDTO) error
	DeleteItem(ctx context.Context, id uint64) error
}

type ItemService struct {
	*BaseService
	itemRepository repositories.ItemRepositoryInterface
}

func NewItemService(
	itemRepository repositories.ItemRepositoryInterface,
	bus *eventbus.Bus,
	logger *zap.Logger,
) ItemServiceInterface {
	return &ItemService{
		BaseService:    NewBaseService(constants.ResourceItems, bus, logger),
		itemRepository: itemRepository,
	}
}

func (s *ItemService) GetItems(ctx context.Context, filter types.Filter) (*types.ListResult[entities.Item], error) {
	rows, total, err := s.itemRepository.GetItems(ctx, filter)
	if err != nil {
		return nil, s.fail(ctx, "list", err, zap.Any("filter", filter))
	}
	return listResult(rows, total, filter), nil
}

func (s *ItemService) FindItem(ctx context.Context, id uint64) (*entities.Item, error) {
	item, err := s.itemRepository.FindItem(ctx, id)
	if err != nil {
		return nil, s.fail(ctx, "get", err, zap.Uint64("id", id))
	}
	return item, nil
}

func (s *ItemService) CreateItem(ctx context.Context, form dto.ItemFormDTO) (uint64, error) {
	id, err := s.itemRepository.CreateItem(ctx, form.ToEntity(0))
	if err != nil {
		return 0, s.fail(ctx, "create", err, zap.Any("payload", form))
	}
	s.changed(ctx, events.ActionCreated, id)
	return id, nil
}

func (s *ItemService) UpdateItem(ctx context.Context, id uint64, form dto.ItemFormDTO) error {
	if err := s.itemRepository.UpdateItem(ctx, form.ToEntity(id)); err != nil {
		return s.fail(ctx, "update", err, zap.Uint64("id", id), zap.Any("payload", form))
	}
	s.changed(ctx, events.ActionUpdated, id)
	return nil
}

func (s *ItemService) DeleteItem(ctx context.Context, id uint64) error {
	if err := s.itemRepository.DeleteItem(ctx, id); err != nil {
		return s.fail(ctx, "delete", err, zap.Uint64("id", id))
	}
	s.changed(ctx, events.ActionDeleted, id)
	return nil
}
