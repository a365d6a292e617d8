package services

import (
	"context"
	"fmt"

	"github.com/xuri/excelize/v2"
	"go.uber.org/zap"

	"maintenance-console/internal/repositories"
	"maintenance-console/pkg/constants"
	apperrors "maintenance-console/pkg/errors"
	"maintenance-console/pkg/i18n"
	"maintenance-console/pkg/types"
)

type ExportServiceInterface interface {
	// Build writes every record of resource matching search, up to the export
	// limit, into a one sheet workbook.
	Build(ctx context.Context, resource, search string, tr *i18n.Translator) (*excelize.File, error)
}

type ExportService struct {
	*BaseService
	equipmentRepo  repositories.EquipmentRepositoryInterface
	technicianRepo repositories.TechnicianRepositoryInterface
	itemRepo       repositories.ItemRepositoryInterface
	orderRepo      repositories.OrderRepositoryInterface
	pageSize       int
	limit          int
}

func NewExportService(
	equipmentRepo repositories.EquipmentRepositoryInterface,
	technicianRepo repositories.TechnicianRepositoryInterface,
	itemRepo repositories.ItemRepositoryInterface,
	orderRepo repositories.OrderRepositoryInterface,
	pageSize, limit int,
	logger *zap.Logger,
) ExportServiceInterface {
	return &ExportService{
		BaseService:    NewBaseService("export", nil, logger),
		equipmentRepo:  equipmentRepo,
		technicianRepo: technicianRepo,
		itemRepo:       itemRepo,
		orderRepo:      orderRepo,
		pageSize:       pageSize,
		limit:          limit,
	}
}

type sheet struct {
	headers []string
	rows    [][]interface{}
}

func (s *ExportService) Build(ctx context.Context, resource, search string, tr *i18n.Translator) (*excelize.File, error) {
	data, err := s.collect(ctx, resource, search, tr)
	if err != nil {
		return nil, s.fail(ctx, "export", err, zap.String("export", resource), zap.String("search", search))
	}

	f := excelize.NewFile()
	if err := writeSheet(f, resource, data); err != nil {
		_ = f.Close()
		s.logger.Error("export workbook failed", zap.String("export", resource), zap.Error(err))
		return nil, fmt.Errorf("export %s workbook: %w", resource, err)
	}

	s.logger.Info("export built", zap.String("export", resource), zap.Int("rows", len(data.rows)))
	return f, nil
}

// writeSheet renames the default sheet to name and fills it with a bold
// header row followed by the data rows.
func writeSheet(f *excelize.File, name string, data *sheet) error {
	if err := f.SetSheetName("Sheet1", name); err != nil {
		return err
	}
	if err := f.SetSheetRow(name, "A1", &data.headers); err != nil {
		return err
	}
	style, err := f.NewStyle(&excelize.Style{Font: &excelize.Font{Bold: true}})
	if err != nil {
		return err
	}
	lastHeader, err := excelize.CoordinatesToCellName(len(data.headers), 1)
	if err != nil {
		return err
	}
	if err := f.SetCellStyle(name, "A1", lastHeader, style); err != nil {
		return err
	}

	for i, row := range data.rows {
		cell, err := excelize.CoordinatesToCellName(1, i+2)
		if err != nil {
			return err
		}
		if err := f.SetSheetRow(name, cell, &row); err != nil {
			return err
		}
	}

	lastCol, err := excelize.ColumnNumberToName(len(data.headers))
	if err != nil {
		return err
	}
	return f.SetColWidth(name, "B", lastCol, 25)
}

func (s *ExportService) collect(ctx context.Context, resource, search string, tr *i18n.Translator) (*sheet, error) {
	switch resource {
	case constants.ResourceEquipments:
		rows, err := collectAll(ctx, s.equipmentRepo.GetEquipments, search, s.pageSize, s.limit)
		if err != nil {
			return nil, err
		}
		out := &sheet{headers: []string{tr.T("field.id"), tr.T("field.name"), tr.T("field.serieNumber"), tr.T("field.type"), tr.T("field.description")}}
		for _, r := range rows {
			out.rows = append(out.rows, []interface{}{r.ID, r.Name, r.SerieNumber, r.Type, r.Description.String})
		}
		return out, nil

	case constants.ResourceTechnicians:
		rows, err := collectAll(ctx, s.technicianRepo.GetTechnicians, search, s.pageSize, s.limit)
		if err != nil {
			return nil, err
		}
		out := &sheet{headers: []string{tr.T("field.id"), tr.T("field.name"), tr.T("field.email"), tr.T("field.category"), tr.T("field.description")}}
		for _, r := range rows {
			out.rows = append(out.rows, []interface{}{r.ID, r.Name, r.Email, r.Category, r.Description.String})
		}
		return out, nil

	case constants.ResourceItems:
		rows, err := collectAll(ctx, s.itemRepo.GetItems, search, s.pageSize, s.limit)
		if err != nil {
			return nil, err
		}
		out := &sheet{headers: []string{tr.T("field.id"), tr.T("field.name"), tr.T("field.amount"), tr.T("field.price")}}
		for _, r := range rows {
			out.rows = append(out.rows, []interface{}{r.ID, r.Name, r.Amount, r.Price})
		}
		return out, nil

	case constants.ResourceOrders:
		rows, err := collectAll(ctx, s.orderRepo.GetOrders, search, s.pageSize, s.limit)
		if err != nil {
			return nil, err
		}
		out := &sheet{headers: []string{
			tr.T("field.id"), tr.T("field.type"), tr.T("field.defect"), tr.T("field.causes"), tr.T("field.solution"),
			tr.T("field.status"), tr.T("field.date_init_os"), tr.T("field.date_end_os"), tr.T("field.total"),
		}}
		for _, r := range rows {
			status := tr.T("status.closed")
			if r.IsOpen() {
				status = tr.T("status.open")
			}
			var end string
			if r.DateEndOS.Valid {
				end = tr.Date(r.DateEndOS.Time)
			}
			out.rows = append(out.rows, []interface{}{
				r.ID, r.Type, r.Defect, r.Causes, r.Solution, status, tr.Date(r.DateInitOS), end, r.Total,
			})
		}
		return out, nil
	}
	return nil, fmt.Errorf("export %q: %w", resource, apperrors.ErrNotFound)
}

// collectAll pages through a listing until it is exhausted or limit rows were
// read.
func collectAll[T any](
	ctx context.Context,
	fetch func(ctx context.Context, filter types.Filter) ([]T, uint64, error),
	search string,
	pageSize, limit int,
) ([]T, error) {
	out := make([]T, 0)
	filter := types.Filter{Search: search, Page: 1, Limit: pageSize}
	for len(out) < limit {
		rows, total, err := fetch(ctx, filter)
		if err != nil {
			return nil, err
		}
		out = append(out, rows...)
		if len(rows) < pageSize || uint64(filter.Page*pageSize) >= total {
			break
		}
		filter.Page++
	}
	if len(out) > limit {
		out = out[:limit]
	}
	return out, nil
}
