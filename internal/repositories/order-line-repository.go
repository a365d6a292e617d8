package repositories

import (
	"context"
	"strconv"

	"go.uber.org/zap"

	"maintenance-console/internal/entities"
	"maintenance-console/pkg/apiclient"
	"maintenance-console/pkg/constants"
	"maintenance-console/pkg/types"
)

// maxLinePages bounds how many pages of lines are read for one order.
const maxLinePages = 50

type OrderLineRepositoryInterface interface {
	GetOrderLines(ctx context.Context, orderID uint64) ([]entities.OrderLine, error)
	FindOrderLine(ctx context.Context, id uint64) (*entities.OrderLine, error)
	CreateOrderLine(ctx context.Context, line entities.OrderLine) (uint64, error)
	UpdateOrderLine(ctx context.Context, line entities.OrderLine) error
	DeleteOrderLine(ctx context.Context, id uint64) error
}

type OrderLineRepository struct {
	rest     *restRepository[entities.OrderLine]
	pageSize int
}

func NewOrderLineRepository(client *apiclient.Client, pageSize int, logger *zap.Logger) OrderLineRepositoryInterface {
	return &OrderLineRepository{
		rest:     newRestRepository[entities.OrderLine](client, constants.ResourceOrderLines, logger),
		pageSize: pageSize,
	}
}

// GetOrderLines reads every line of an order. The backend selects lines by
// the order id sent as filter text; rows of other orders are dropped in case
// the match is textual.
func (r *OrderLineRepository) GetOrderLines(ctx context.Context, orderID uint64) ([]entities.OrderLine, error) {
	filter := types.Filter{
		Search: strconv.FormatUint(orderID, 10),
		Page:   1,
		Limit:  r.pageSize,
	}

	lines := make([]entities.OrderLine, 0)
	for ; filter.Page <= maxLinePages; filter.Page++ {
		rows, total, err := r.rest.list(ctx, filter)
		if err != nil {
			return nil, err
		}
		for _, row := range rows {
			if row.OrderID == orderID {
				lines = append(lines, row)
			}
		}
		if len(rows) < filter.Limit || uint64(filter.Page*filter.Limit) >= total {
			break
		}
	}
	return lines, nil
}

func (r *OrderLineRepository) FindOrderLine(ctx context.Context, id uint64) (*entities.OrderLine, error) {
	return r.rest.find(ctx, id)
}

func (r *OrderLineRepository) CreateOrderLine(ctx context.Context, line entities.OrderLine) (uint64, error) {
	return r.rest.create(ctx, line)
}

func (r *OrderLineRepository) UpdateOrderLine(ctx context.Context, line entities.OrderLine) error {
	return r.rest.update(ctx, line)
}

func (r *OrderLineRepository) DeleteOrderLine(ctx context.Context, id uint64) error {
	return r.rest.delete(ctx, id)
}
