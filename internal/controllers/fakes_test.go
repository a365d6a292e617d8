package controllers

import (
	"context"
	"sync"

	"github.com/xuri/excelize/v2"

	"maintenance-console/internal/dto"
	"maintenance-console/internal/entities"
	"maintenance-console/pkg/i18n"
	"maintenance-console/pkg/types"
)

type fakeEquipmentService struct {
	mu       sync.Mutex
	rows     []entities.Equipment
	total    uint64
	err      error
	newID    uint64
	created  []dto.EquipmentFormDTO
	updated  map[uint64]dto.EquipmentFormDTO
	deleted  []uint64
	lastList types.Filter
}

func (f *fakeEquipmentService) GetEquipments(ctx context.Context, filter types.Filter) (*types.ListResult[entities.Equipment], error) {
	f.mu.Lock()
	defer f.mu.Unlock()
	f.lastList = filter
	if f.err != nil {
		return nil, f.err
	}
	return &types.ListResult[entities.Equipment]{
		Rows:       f.rows,
		Pagination: types.NewPagination(f.total, filter.Page, filter.Limit),
	}, nil
}

func (f *fakeEquipmentService) FindEquipment(ctx context.Context, id uint64) (*entities.Equipment, error) {
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

func (f *fakeEquipmentService) CreateEquipment(ctx context.Context, form dto.EquipmentFormDTO) (uint64, error) {
	f.mu.Lock()
	defer f.mu.Unlock()
	if f.err != nil {
		return 0, f.err
	}
	f.created = append(f.created, form)
	return f.newID, nil
}

func (f *fakeEquipmentService) UpdateEquipment(ctx context.Context, id uint64, form dto.EquipmentFormDTO) error {
	f.mu.Lock()
	defer f.mu.Unlock()
	if f.err != nil {
		return f.err
	}
	if f.updated == nil {
		f.updated = make(map[uint64]dto.EquipmentFormDTO)
	}
	f.updated[id] = form
	return nil
}

func (f *fakeEquipmentService) DeleteEquipment(ctx context.Context, id uint64) error {
	f.mu.Lock()
	defer f.mu.Unlock()
	if f.err != nil {
		return f.err
	}
	f.deleted = append(f.deleted, id)
	return nil
}

type fakeOrderService struct {
	rows  []entities.Order
	total uint64
	err   error
}

func (f *fakeOrderService) GetOrders(ctx context.Context, filter types.Filter) (*types.ListResult[entities.Order], error) {
	if f.err != nil {
		return nil, f.err
	}
	return &types.ListResult[entities.Order]{
		Rows:       f.rows,
		Pagination: types.NewPagination(f.total, filter.Page, filter.Limit),
	}, nil
}

func (f *fakeOrderService) FindOrder(ctx context.Context, id uint64) (*entities.Order, error) {
	for _, r := range f.rows {
		if r.ID == id {
			r := r
			return &r, f.err
		}
	}
	return &entities.Order{ID: id}, f.err
}

func (f *fakeOrderService) CreateOrder(ctx context.Context, form dto.OrderFormDTO) (uint64, error) {
	return 77, f.err
}

func (f *fakeOrderService) UpdateOrder(ctx context.Context, id uint64, form dto.OrderFormDTO) error {
	return f.err
}

func (f *fakeOrderService) DeleteOrder(ctx context.Context, id uint64) error { return f.err }

type fakeOrderLineService struct {
	mu      sync.Mutex
	lines   []entities.OrderLine
	err     error
	changed bool
	added   []dto.OrderLineFormDTO
	deleted []uint64
}

func (f *fakeOrderLineService) GetOrderLines(ctx context.Context, orderID uint64) ([]entities.OrderLine, error) {
	return f.lines, f.err
}

func (f *fakeOrderLineService) AddOrderLine(ctx context.Context, form dto.OrderLineFormDTO) (*entities.OrderLine, error) {
	f.mu.Lock()
	defer f.mu.Unlock()
	if f.err != nil {
		return nil, f.err
	}
	f.added = append(f.added, form)
	line := form.ToEntity(501)
	return &line, nil
}

func (f *fakeOrderLineService) UpdateOrderLine(ctx context.Context, id uint64, form dto.OrderLineFormDTO) (*entities.OrderLine, bool, error) {
	if f.err != nil {
		return nil, false, f.err
	}
	line := form.ToEntity(id)
	return &line, f.changed, nil
}

func (f *fakeOrderLineService) DeleteOrderLine(ctx context.Context, orderID, id uint64) error {
	f.mu.Lock()
	defer f.mu.Unlock()
	f.deleted = append(f.deleted, id)
	return f.err
}

type fakeLookupService struct {
	options map[string][]types.Option
	err     error
	calls   []string
	mu      sync.Mutex
}

func (f *fakeLookupService) Options(ctx context.Context, widget, term string, selected uint64) ([]types.Option, error) {
	f.mu.Lock()
	f.calls = append(f.calls, widget+":"+term)
	f.mu.Unlock()
	return f.Preload(ctx, widget, selected)
}

func (f *fakeLookupService) Preload(ctx context.Context, widget string, selected uint64) ([]types.Option, error) {
	if f.err != nil {
		return nil, f.err
	}
	out := make([]types.Option, 0, len(f.options[widget]))
	for _, o := range f.options[widget] {
		o.Selected = o.ID == selected
		out = append(out, o)
	}
	return out, nil
}

type fakeDashboardService struct {
	summary entities.DashboardSummary
	err     error
}

func (f *fakeDashboardService) Summary(ctx context.Context) (*entities.DashboardSummary, error) {
	if f.err != nil {
		return nil, f.err
	}
	s := f.summary
	return &s, nil
}

type fakeExportService struct {
	resource, search string
	err              error
}

func (f *fakeExportService) Build(ctx context.Context, resource, search string, tr *i18n.Translator) (*excelize.File, error) {
	f.resource, f.search = resource, search
	if f.err != nil {
		return nil, f.err
	}
	file := excelize.NewFile()
	file.SetSheetName("Sheet1", resource)
	file.SetSheetRow(resource, "A1", &[]interface{}{"Nome"})
	return file, nil
}
