package services

import (
	"context"
	"strings"

	"go.uber.org/zap"

	"maintenance-console/internal/repositories"
	"maintenance-console/pkg/contextkeys"
	"maintenance-console/pkg/debounce"
	apperrors "maintenance-console/pkg/errors"
	"maintenance-console/pkg/types"
)

// Autocomplete widgets.
const (
	LookupTechnicians = "technicians"
	LookupEquipments  = "equipments"
	LookupItems       = "items"
)

type LookupServiceInterface interface {
	// Options returns the first page of records of widget matching term. The
	// record with id selected is always included by the backend and flagged.
	// A call overtaken by a newer one of the same session and widget returns
	// debounce.ErrSuperseded.
	Options(ctx context.Context, widget, term string, selected uint64) ([]types.Option, error)
	// Preload returns the options a form starts with, skipping the quiet
	// period.
	Preload(ctx context.Context, widget string, selected uint64) ([]types.Option, error)
}

type LookupService struct {
	*BaseService
	technicianRepo repositories.TechnicianRepositoryInterface
	equipmentRepo  repositories.EquipmentRepositoryInterface
	itemRepo       repositories.ItemRepositoryInterface
	debouncer      *debounce.Debouncer
	pageSize       int
}

func NewLookupService(
	technicianRepo repositories.TechnicianRepositoryInterface,
	equipmentRepo repositories.EquipmentRepositoryInterface,
	itemRepo repositories.ItemRepositoryInterface,
	debouncer *debounce.Debouncer,
	pageSize int,
	logger *zap.Logger,
) LookupServiceInterface {
	return &LookupService{
		BaseService:    NewBaseService("lookups", nil, logger),
		technicianRepo: technicianRepo,
		equipmentRepo:  equipmentRepo,
		itemRepo:       itemRepo,
		debouncer:      debouncer,
		pageSize:       pageSize,
	}
}

func (s *LookupService) Options(ctx context.Context, widget, term string, selected uint64) ([]types.Option, error) {
	fetch, err := s.fetcher(widget)
	if err != nil {
		return nil, err
	}

	filter := types.Filter{Search: strings.TrimSpace(term), Page: 1, Limit: s.pageSize, ID: selected}
	key := contextkeys.SessionID(ctx) + ":" + widget

	options, err := debounce.Run(ctx, s.debouncer, key, func(ctx context.Context) ([]types.Option, error) {
		return fetch(ctx, filter)
	})
	if err != nil {
		return nil, s.fail(ctx, "lookup "+widget, err, zap.String("term", term))
	}

	return markSelected(options, selected), nil
}

func (s *LookupService) Preload(ctx context.Context, widget string, selected uint64) ([]types.Option, error) {
	fetch, err := s.fetcher(widget)
	if err != nil {
		return nil, err
	}

	options, err := fetch(ctx, types.Filter{Page: 1, Limit: s.pageSize, ID: selected})
	if err != nil {
		return nil, s.fail(ctx, "preload "+widget, err)
	}
	return markSelected(options, selected), nil
}

func markSelected(options []types.Option, selected uint64) []types.Option {
	for i := range options {
		options[i].Selected = selected != 0 && options[i].ID == selected
	}
	return options
}

type optionFetcher func(ctx context.Context, filter types.Filter) ([]types.Option, error)

func (s *LookupService) fetcher(widget string) (optionFetcher, error) {
	switch widget {
	case LookupTechnicians:
		return func(ctx context.Context, filter types.Filter) ([]types.Option, error) {
			rows, _, err := s.technicianRepo.GetTechnicians(ctx, filter)
			if err != nil {
				return nil, err
			}
			out := make([]types.Option, 0, len(rows))
			for _, r := range rows {
				out = append(out, types.Option{ID: r.ID, Label: r.Name})
			}
			return out, nil
		}, nil
	case LookupEquipments:
		return func(ctx context.Context, filter types.Filter) ([]types.Option, error) {
			rows, _, err := s.equipmentRepo.GetEquipments(ctx, filter)
			if err != nil {
				return nil, err
			}
			out := make([]types.Option, 0, len(rows))
			for _, r := range rows {
				out = append(out, types.Option{ID: r.ID, Label: r.Name})
			}
			return out, nil
		}, nil
	case LookupItems:
		return func(ctx context.Context, filter types.Filter) ([]types.Option, error) {
			rows, _, err := s.itemRepo.GetItems(ctx, filter)
			if err != nil {
				return nil, err
			}
			out := make([]types.Option, 0, len(rows))
			for _, r := range rows {
				out = append(out, types.Option{ID: r.ID, Label: r.Name})
			}
			return out, nil
		}, nil
	}
	return nil, apperrors.ErrNotFound
}
