package services

import (
	"context"

	"go.uber.org/zap"
	"golang.org/x/sync/errgroup"

	"maintenance-console/internal/entities"
	"maintenance-console/internal/repositories"
	"maintenance-console/pkg/types"
)

type DashboardServiceInterface interface {
	Summary(ctx context.Context) (*entities.DashboardSummary, error)
}

type DashboardService struct {
	*BaseService
	technicianRepo repositories.TechnicianRepositoryInterface
	equipmentRepo  repositories.EquipmentRepositoryInterface
	itemRepo       repositories.ItemRepositoryInterface
	pageSize       int
}

func NewDashboardService(
	technicianRepo repositories.TechnicianRepositoryInterface,
	equipmentRepo repositories.EquipmentRepositoryInterface,
	itemRepo repositories.ItemRepositoryInterface,
	pageSize int,
	logger *zap.Logger,
) DashboardServiceInterface {
	return &DashboardService{
		BaseService:    NewBaseService("dashboard", nil, logger),
		technicianRepo: technicianRepo,
		equipmentRepo:  equipmentRepo,
		itemRepo:       itemRepo,
		pageSize:       pageSize,
	}
}

// Summary reads the three card counters concurrently. Any failure fails the
// whole summary.
func (s *DashboardService) Summary(ctx context.Context) (*entities.DashboardSummary, error) {
	filter := types.Filter{Page: 1, Limit: s.pageSize}
	summary := &entities.DashboardSummary{}

	g, gctx := errgroup.WithContext(ctx)
	g.Go(func() error {
		_, total, err := s.technicianRepo.GetTechnicians(gctx, filter)
		summary.Technicians = total
		return err
	})
	g.Go(func() error {
		_, total, err := s.equipmentRepo.GetEquipments(gctx, filter)
		summary.Equipments = total
		return err
	})
	g.Go(func() error {
		_, total, err := s.itemRepo.GetItems(gctx, filter)
		summary.Items = total
		return err
	})

	if err := g.Wait(); err != nil {
		return nil, s.fail(ctx, "summary", err)
	}
	return summary, nil
}
