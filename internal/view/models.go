package view

import (
	"strconv"

	"maintenance-console/internal/entities"
	"maintenance-console/pkg/types"
)

// Layout is embedded by every full page model.
type Layout struct {
	Title string
	Nav   string
	Flash []string
}

type ListPage struct {
	Layout
	Resource   string
	Search     string
	Rows       interface{}
	Pagination types.Pagination
	// BasePath overrides the listing URL; the dashboard lists orders at "/".
	BasePath string
}

func (p ListPage) Path() string {
	if p.BasePath != "" {
		return p.BasePath
	}
	return "/" + p.Resource
}

type FormPage struct {
	Layout
	Resource string
	ID       uint64
	IsNew    bool
	Form     interface{}
	Errors   map[string]string
	// Choices feeds the fixed select of the form (equipment or order type).
	Choices []string
	// Options feeds the autocomplete selects, keyed by widget.
	Options map[string][]types.Option
	Lines   *LinesBlock
}

// Action is the form target: nova for a record not yet created.
func (p FormPage) Action() string {
	if p.IsNew {
		return "/" + p.Resource + "/detail/nova"
	}
	return "/" + p.Resource + "/detail/" + strconv.FormatUint(p.ID, 10)
}

type LinesBlock struct {
	OrderID uint64
	Rows    []LineRow
	Items   []types.Option
}

type LineRow struct {
	Line      entities.OrderLine
	ItemLabel string
}

type DashboardPage struct {
	Layout
	Summary entities.DashboardSummary
	Orders  ListPage
}
