package view

import (
	"bytes"
	"net/http/httptest"
	"testing"
	"time"

	"github.com/aarondl/null/v8"
	"github.com/labstack/echo/v4"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"maintenance-console/internal/dto"
	"maintenance-console/internal/entities"
	"maintenance-console/pkg/contextkeys"
	"maintenance-console/pkg/i18n"
	"maintenance-console/pkg/types"
)

func equipmentList(total uint64) ListPage {
	return ListPage{
		Layout:   Layout{Title: "Equipamentos", Nav: "equipments", Flash: []string{"Registro salvo com sucesso!"}},
		Resource: "equipments",
		Search:   "torno",
		Rows: []entities.Equipment{
			{ID: 3, Name: "Torno CNC", SerieNumber: "TN-001", Type: "Mecânico"},
		},
		Pagination: types.NewPagination(total, 1, 5),
	}
}

func TestRenderer_FullPage(t *testing.T) {
	r, err := New()
	require.NoError(t, err)

	var buf bytes.Buffer
	require.NoError(t, r.Render(&buf, "equipments.html", equipmentList(1), nil))

	html := buf.String()
	assert.Contains(t, html, "<!DOCTYPE html>")
	assert.Contains(t, html, `data-message="Registro salvo com sucesso!"`)
	assert.Contains(t, html, "Torno CNC")
	assert.Contains(t, html, `hx-get="/equipments"`)
	assert.Contains(t, html, `href="/equipments/detail/3"`)
	assert.NotContains(t, html, `class="pagination"`)
}

func TestRenderer_Block(t *testing.T) {
	r, err := New()
	require.NoError(t, err)

	var buf bytes.Buffer
	require.NoError(t, r.Render(&buf, "equipments.html#rows", equipmentList(12), nil))

	html := buf.String()
	assert.NotContains(t, html, "<!DOCTYPE html>")
	assert.Contains(t, html, `id="row-3"`)
	assert.Contains(t, html, `class="pagination"`)
	assert.Contains(t, html, `<span aria-current="page">1</span>`)
	assert.Contains(t, html, `hx-get="/equipments?page=3&search=torno"`)
}

func TestRenderer_EmptyList(t *testing.T) {
	r, err := New()
	require.NoError(t, err)

	page := equipmentList(0)
	page.Rows = []entities.Equipment{}

	var buf bytes.Buffer
	require.NoError(t, r.Render(&buf, "equipments.html#rows", page, nil))
	assert.Contains(t, buf.String(), "Nenhum registro encontrado.")
}

func TestRenderer_UsesRequestLanguage(t *testing.T) {
	r, err := New()
	require.NoError(t, err)

	e := echo.New()
	c := e.NewContext(httptest.NewRequest("GET", "/", nil), httptest.NewRecorder())
	c.Set(contextkeys.EchoTranslatorKey, i18n.New(i18n.English))

	page := equipmentList(0)
	page.Rows = nil

	var buf bytes.Buffer
	require.NoError(t, r.Render(&buf, "equipments.html#rows", page, c))
	assert.Contains(t, buf.String(), "No records found.")
}

func TestRenderer_OrderDetail(t *testing.T) {
	r, err := New()
	require.NoError(t, err)

	page := FormPage{
		Layout:   Layout{Title: "Ordem de serviço", Nav: "orders"},
		Resource: "orders",
		ID:       8,
		Form:     dto.OrderFormDTO{Type: "Corretiva", Status: false, DateInitOS: "2024-03-01", Total: "10"},
		Errors:   map[string]string{"defect": "Este campo é obrigatório"},
		Choices:  []string{"Corretiva", "Preventiva", "Garantia"},
		Options: map[string][]types.Option{
			"technicians": {{ID: 1, Label: "Ana", Selected: true}},
			"equipments":  {{ID: 2, Label: "Torno"}},
		},
		Lines: &LinesBlock{
			OrderID: 8,
			Rows:    []LineRow{{Line: entities.OrderLine{ID: 31, OrderID: 8, ItemID: 4, Amount: 2, Total: 30}, ItemLabel: "Correia"}},
			Items:   []types.Option{{ID: 4, Label: "Correia"}},
		},
	}

	var buf bytes.Buffer
	require.NoError(t, r.Render(&buf, "order_detail.html", page, nil))

	html := buf.String()
	assert.Contains(t, html, `action="/orders/detail/8"`)
	assert.Contains(t, html, `<option value="1" selected>Ana</option>`)
	assert.Contains(t, html, `<option value="false" selected>Fechada</option>`)
	assert.Contains(t, html, "Este campo é obrigatório")
	assert.Contains(t, html, `hx-post="/orders/8/lines"`)
	assert.Contains(t, html, `hx-put="/orders/8/lines/31"`)
	assert.Contains(t, html, "Correia")
}

func TestFuncs_Date(t *testing.T) {
	f := Funcs(i18n.New(i18n.PortugueseBR))["date"].(func(interface{}) string)

	d := time.Date(2024, 3, 9, 0, 0, 0, 0, time.UTC)
	assert.Equal(t, "09/03/2024", f(d))
	assert.Equal(t, "09/03/2024", f(null.TimeFrom(d)))
	assert.Equal(t, "", f(null.Time{}))
	assert.Equal(t, "", f("x"))
}

func TestFormPage_Action(t *testing.T) {
	assert.Equal(t, "/items/detail/nova", FormPage{Resource: "items", IsNew: true}.Action())
	assert.Equal(t, "/items/detail/5", FormPage{Resource: "items", ID: 5}.Action())
}
