package seeders

import (
	"context"
	"fmt"
	"time"

	"go.uber.org/zap"

	"maintenance-console/pkg/types"
)

func (s *Seeder) seedTechnicians(ctx context.Context) error {
	found, err := s.hasRecords("technicians", func(f types.Filter) (int, error) {
		rows, _, err := s.technicians.GetTechnicians(ctx, f)
		return len(rows), err
	})
	if err != nil || found {
		return err
	}
	for _, t := range techniciansData {
		id, err := s.technicians.CreateTechnician(ctx, t)
		if err != nil {
			return fmt.Errorf("technician %q: %w", t.Name, err)
		}
		s.technicianIDs = append(s.technicianIDs, id)
	}
	s.logger.Info("technicians seeded", zap.Int("count", len(techniciansData)))
	return nil
}

func (s *Seeder) seedEquipments(ctx context.Context) error {
	found, err := s.hasRecords("equipments", func(f types.Filter) (int, error) {
		rows, _, err := s.equipments.GetEquipments(ctx, f)
		return len(rows), err
	})
	if err != nil || found {
		return err
	}
	for _, e := range equipmentsData {
		id, err := s.equipments.CreateEquipment(ctx, e)
		if err != nil {
			return fmt.Errorf("equipment %q: %w", e.Name, err)
		}
		s.equipmentIDs = append(s.equipmentIDs, id)
	}
	s.logger.Info("equipments seeded", zap.Int("count", len(equipmentsData)))
	return nil
}

func (s *Seeder) seedItems(ctx context.Context) error {
	found, err := s.hasRecords("items", func(f types.Filter) (int, error) {
		rows, _, err := s.items.GetItems(ctx, f)
		return len(rows), err
	})
	if err != nil || found {
		return err
	}
	for _, it := range itemsData {
		id, err := s.items.CreateItem(ctx, it)
		if err != nil {
			return fmt.Errorf("item %q: %w", it.Name, err)
		}
		s.itemIDs = append(s.itemIDs, id)
	}
	s.logger.Info("items seeded", zap.Int("count", len(itemsData)))
	return nil
}

// seedOrders needs the ids created by the other seeders of the same run;
// orders are skipped when any of them was skipped.
func (s *Seeder) seedOrders(ctx context.Context) error {
	if len(s.technicianIDs) == 0 || len(s.equipmentIDs) == 0 || len(s.itemIDs) == 0 {
		s.logger.Warn("orders skipped: technicians, equipments and items must be seeded in the same run")
		return nil
	}

	start := s.now().Truncate(24 * time.Hour)
	for i, d := range ordersData {
		order := d.Order
		order.TechnicianID = s.technicianIDs[d.Technician]
		order.EquipmentID = s.equipmentIDs[d.Equipment]
		order.DateInitOS = start.AddDate(0, 0, -7*(i+1))

		orderID, err := s.orders.CreateOrder(ctx, order)
		if err != nil {
			return fmt.Errorf("order %d: %w", i, err)
		}
		for _, l := range d.Lines {
			line := orderLine(orderID, s.itemIDs[l.Item], l.Amount, l.Total)
			if _, err := s.orderLines.CreateOrderLine(ctx, line); err != nil {
				return fmt.Errorf("order %d line: %w", orderID, err)
			}
		}
	}
	s.logger.Info("orders seeded", zap.Int("count", len(ordersData)))
	return nil
}
