package services

import (
	"context"
	"sync"

	"maintenance-console/internal/entities"
	"maintenance-console/pkg/types"
)

type fakeEquipmentRepo struct {
	mu      sync.Mutex
	rows    []entities.Equipment
	total   uint64
	err     error
	created []entities.Equipment
	updated []entities.Equipment
	deleted []uint64
	filters []types.Filter
}

func (f *fakeEquipmentRepo) GetEquipments(ctx context.Context, filter types.Filter) ([]entities.Equipment, uint64, error) {
	f.mu.Lock()
	defer f.mu.Unlock()
	f.filters = append(f.filters, filter)
	if f.err != nil {
		return nil, 0, f.err
	}
	start := (filter.Page - 1) * filter.Limit
	if start >= len(f.rows) {
		return []entities.Equipment{}, f.total, nil
	}
	end := start + filter.Limit
	if end > len(f.rows) {
		end = len(f.rows)
	}
	return f.rows[start:end], f.total, nil
}

func (f *fakeEquipmentRepo) FindEquipment(ctx context.Context, id uint64) (*entities.Equipment, error) {
	if f.err != nil {
		return nil, f.err
	}
	for _, r := range f.rows {
		if r.ID == id {
			r := r
			return &r, nil
		}
	}
	return &entities.Equipment{ID: id}, nil
}

func (f *fakeEquipmentRepo) CreateEquipment(ctx context.Context, e entities.Equipment) (uint64, error) {
	if f.err != nil {
		return 0, f.err
	}
	f.created = append(f.created, e)
	return 99, nil
}

func (f *fakeEquipmentRepo) UpdateEquipment(ctx context.Context, e entities.Equipment) error {
	if f.err != nil {
		return f.err
	}
	f.updated = append(f.updated, e)
	return nil
}

func (f *fakeEquipmentRepo) DeleteEquipment(ctx context.Context, id uint64) error {
	if f.err != nil {
		return f.err
	}
	f.deleted = append(f.deleted, id)
	return nil
}

type fakeTechnicianRepo struct {
	rows  []entities.Technician
	total uint64
	err   error
}

func (f *fakeTechnicianRepo) GetTechnicians(ctx context.Context, filter types.Filter) ([]entities.Technician, uint64, error) {
	return f.rows, f.total, f.err
}
func (f *fakeTechnicianRepo) FindTechnician(ctx context.Context, id uint64) (*entities.Technician, error) {
	return &entities.Technician{ID: id}, f.err
}
func (f *fakeTechnicianRepo) CreateTechnician(ctx context.Context, t entities.Technician) (uint64, error) {
	return 1, f.err
}
func (f *fakeTechnicianRepo) UpdateTechnician(ctx context.Context, t entities.Technician) error {
	return f.err
}
func (f *fakeTechnicianRepo) DeleteTechnician(ctx context.Context, id uint64) error { return f.err }

type fakeItemRepo struct {
	rows  []entities.Item
	total uint64
	err   error
}

func (f *fakeItemRepo) GetItems(ctx context.Context, filter types.Filter) ([]entities.Item, uint64, error) {
	return f.rows, f.total, f.err
}
func (f *fakeItemRepo) FindItem(ctx context.Context, id uint64) (*entities.Item, error) {
	return &entities.Item{ID: id}, f.err
}
func (f *fakeItemRepo) CreateItem(ctx context.Context, i entities.Item) (uint64, error) {
	return 1, f.err
}
func (f *fakeItemRepo) UpdateItem(ctx context.Context, i entities.Item) error { return f.err }
func (f *fakeItemRepo) DeleteItem(ctx context.Context, id uint64) error       { return f.err }

type fakeOrderRepo struct {
	rows  []entities.Order
	total uint64
	err   error
}

func (f *fakeOrderRepo) GetOrders(ctx context.Context, filter types.Filter) ([]entities.Order, uint64, error) {
	return f.rows, f.total, f.err
}
func (f *fakeOrderRepo) FindOrder(ctx context.Context, id uint64) (*entities.Order, error) {
	return &entities.Order{ID: id}, f.err
}
func (f *fakeOrderRepo) CreateOrder(ctx context.Context, o entities.Order) (uint64, error) {
	return 1, f.err
}
func (f *fakeOrderRepo) UpdateOrder(ctx context.Context, o entities.Order) error { return f.err }
func (f *fakeOrderRepo) DeleteOrder(ctx context.Context, id uint64) error        { return f.err }

type fakeOrderLineRepo struct {
	stored  map[uint64]entities.OrderLine
	updated []entities.OrderLine
	err     error
}

func (f *fakeOrderLineRepo) GetOrderLines(ctx context.Context, orderID uint64) ([]entities.OrderLine, error) {
	var out []entities.OrderLine
	for _, l := range f.stored {
		if l.OrderID == orderID {
			out = append(out, l)
		}
	}
	return out, f.err
}
func (f *fakeOrderLineRepo) FindOrderLine(ctx context.Context, id uint64) (*entities.OrderLine, error) {
	if f.err != nil {
		return nil, f.err
	}
	l := f.stored[id]
	return &l, nil
}
func (f *fakeOrderLineRepo) CreateOrderLine(ctx context.Context, l entities.OrderLine) (uint64, error) {
	if f.err != nil {
		return 0, f.err
	}
	l.ID = uint64(len(f.stored) + 100)
	f.stored[l.ID] = l
	return l.ID, nil
}
func (f *fakeOrderLineRepo) UpdateOrderLine(ctx context.Context, l entities.OrderLine) error {
	if f.err != nil {
		return f.err
	}
	f.updated = append(f.updated, l)
	f.stored[l.ID] = l
	return nil
}
func (f *fakeOrderLineRepo) DeleteOrderLine(ctx context.Context, id uint64) error {
	delete(f.stored, id)
	return f.err
}
