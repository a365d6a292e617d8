package repositories

import (
	"context"

	"go.uber.org/zap"

	"maintenance-console/pkg/apiclient"
	"maintenance-console/pkg/types"
)

// restRepository is the CRUD plumbing every resource repository shares.
type restRepository[T types.Identifiable] struct {
	resource *apiclient.Resource[T]
	logger   *zap.Logger
}

func newRestRepository[T types.Identifiable](client *apiclient.Client, path string, logger *zap.Logger) *restRepository[T] {
	return &restRepository[T]{
		resource: apiclient.NewResource[T](client, "/"+path),
		logger:   logger.With(zap.String("resource", path)),
	}
}

func (r *restRepository[T]) list(ctx context.Context, filter types.Filter) ([]T, uint64, error) {
	page, err := r.resource.List(ctx, apiclient.Query{
		Page:   filter.Page,
		Limit:  filter.Limit,
		Filter: filter.Search,
		ID:     filter.ID,
	})
	if err != nil {
		r.logger.Debug("list failed", zap.Any("filter", filter), zap.Error(err))
		return nil, 0, err
	}
	return page.Data, page.TotalCount, nil
}

func (r *restRepository[T]) find(ctx context.Context, id uint64) (*T, error) {
	record, err := r.resource.Get(ctx, id)
	if err != nil {
		return nil, err
	}
	return &record, nil
}

func (r *restRepository[T]) create(ctx context.Context, record T) (uint64, error) {
	return r.resource.Create(ctx, record)
}

func (r *restRepository[T]) update(ctx context.Context, record T) error {
	return r.resource.Update(ctx, record.GetID(), record)
}

func (r *restRepository[T]) delete(ctx context.Context, id uint64) error {
	return r.resource.Delete(ctx, id)
}
