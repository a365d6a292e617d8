package seeders

import (
	"context"
	"fmt"
	"time"

	"go.uber.org/zap"

	"maintenance-console/internal/entities"
	"maintenance-console/internal/repositories"
	"maintenance-console/pkg/types"
)

// Seeder fills an empty backend with demo records through the same
// repositories the console uses.
type Seeder struct {
	technicians repositories.TechnicianRepositoryInterface
	equipments  repositories.EquipmentRepositoryInterface
	items       repositories.ItemRepositoryInterface
	orders      repositories.OrderRepositoryInterface
	orderLines  repositories.OrderLineRepositoryInterface
	logger      *zap.Logger
	now         func() time.Time

	technicianIDs []uint64
	equipmentIDs  []uint64
	itemIDs       []uint64
}

func New(
	technicians repositories.TechnicianRepositoryInterface,
	equipments repositories.EquipmentRepositoryInterface,
	items repositories.ItemRepositoryInterface,
	orders repositories.OrderRepositoryInterface,
	orderLines repositories.OrderLineRepositoryInterface,
	logger *zap.Logger,
) *Seeder {
	return &Seeder{
		technicians: technicians,
		equipments:  equipments,
		items:       items,
		orders:      orders,
		orderLines:  orderLines,
		logger:      logger.Named("seeder"),
		now:         time.Now,
	}
}

// SeedDirectories creates technicians, equipments and items. A collection
// that already has records is left untouched.
func (s *Seeder) SeedDirectories(ctx context.Context) error {
	s.logger.Info("seeding directories")
	if err := s.seedTechnicians(ctx); err != nil {
		return err
	}
	if err := s.seedEquipments(ctx); err != nil {
		return err
	}
	return s.seedItems(ctx)
}

// SeedOrders creates demo orders with their lines. It must run after
// SeedDirectories on the same Seeder.
func (s *Seeder) SeedOrders(ctx context.Context) error {
	s.logger.Info("seeding orders")
	return s.seedOrders(ctx)
}

// hasRecords reports whether the first page of the collection is not
// empty. x-total-count is not trusted here since a missing header reads as
// a full page.
func (s *Seeder) hasRecords(resource string, firstPage func(types.Filter) (int, error)) (bool, error) {
	n, err := firstPage(types.Filter{Page: 1, Limit: 1})
	if err != nil {
		return false, fmt.Errorf("read %s: %w", resource, err)
	}
	if n > 0 {
		s.logger.Info("already has records, skipping", zap.String("resource", resource))
		return true, nil
	}
	return false, nil
}

func orderLine(orderID, itemID uint64, amount, total float64) entities.OrderLine {
	return entities.OrderLine{OrderID: orderID, ItemID: itemID, Amount: amount, Total: total}
}
