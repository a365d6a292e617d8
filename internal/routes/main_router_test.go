package routes

import (
	"encoding/json"
	"fmt"
	"io"
	"net/http"
	"net/http/httptest"
	"net/url"
	"sort"
	"strconv"
	"strings"
	"sync"
	"testing"
	"time"

	"github.com/labstack/echo/v4"
	"github.com/stretchr/testify/suite"
	"go.uber.org/zap"

	"maintenance-console/internal/listeners"
	"maintenance-console/internal/repositories"
	"maintenance-console/internal/view"
	"maintenance-console/pkg/apiclient"
	"maintenance-console/pkg/config"
	"maintenance-console/pkg/constants"
	"maintenance-console/pkg/eventbus"
	"maintenance-console/pkg/middleware"
	"maintenance-console/pkg/validation"
)

// fakeBackend is an in-memory stand-in for the REST API the console fronts.
type fakeBackend struct {
	mu      sync.Mutex
	records map[string]map[uint64]map[string]interface{}
	nextID  uint64
	puts    map[string]int
	reject  map[string]string // resource -> errors.default answered to POST
}

func newFakeBackend() *fakeBackend {
	return &fakeBackend{
		records: make(map[string]map[uint64]map[string]interface{}),
		puts:    make(map[string]int),
		reject:  make(map[string]string),
	}
}

func (b *fakeBackend) seed(resource string, rec map[string]interface{}) uint64 {
	b.mu.Lock()
	defer b.mu.Unlock()
	return b.insert(resource, rec)
}

func (b *fakeBackend) insert(resource string, rec map[string]interface{}) uint64 {
	b.nextID++
	rec["id"] = float64(b.nextID)
	if b.records[resource] == nil {
		b.records[resource] = make(map[uint64]map[string]interface{})
	}
	b.records[resource][b.nextID] = rec
	return b.nextID
}

func (b *fakeBackend) get(resource string, id uint64) map[string]interface{} {
	b.mu.Lock()
	defer b.mu.Unlock()
	return b.records[resource][id]
}

func (b *fakeBackend) count(resource string) int {
	b.mu.Lock()
	defer b.mu.Unlock()
	return len(b.records[resource])
}

func (b *fakeBackend) putCount(resource string) int {
	b.mu.Lock()
	defer b.mu.Unlock()
	return b.puts[resource]
}

func (b *fakeBackend) ServeHTTP(w http.ResponseWriter, r *http.Request) {
	b.mu.Lock()
	defer b.mu.Unlock()

	parts := strings.Split(strings.Trim(r.URL.Path, "/"), "/")
	resource := parts[0]
	var id uint64
	if len(parts) > 1 {
		id, _ = strconv.ParseUint(parts[1], 10, 64)
	}

	w.Header().Set("Content-Type", "application/json")
	switch {
	case r.Method == http.MethodGet && id == 0:
		b.list(w, resource, r.URL.Query())
	case r.Method == http.MethodGet:
		rec, ok := b.records[resource][id]
		if !ok {
			w.WriteHeader(http.StatusNotFound)
			_, _ = io.WriteString(w, `{"errors":{"default":"Registro não encontrado"}}`)
			return
		}
		_ = json.NewEncoder(w).Encode(rec)
	case r.Method == http.MethodPost:
		if msg, ok := b.reject[resource]; ok {
			w.WriteHeader(http.StatusBadRequest)
			_ = json.NewEncoder(w).Encode(map[string]interface{}{"errors": map[string]string{"default": msg}})
			return
		}
		var rec map[string]interface{}
		_ = json.NewDecoder(r.Body).Decode(&rec)
		fmt.Fprint(w, b.insert(resource, rec))
	case r.Method == http.MethodPut:
		var rec map[string]interface{}
		_ = json.NewDecoder(r.Body).Decode(&rec)
		rec["id"] = float64(id)
		b.records[resource][id] = rec
		b.puts[resource]++
	case r.Method == http.MethodDelete:
		delete(b.records[resource], id)
	}
}

func (b *fakeBackend) list(w http.ResponseWriter, resource string, q url.Values) {
	page, _ := strconv.Atoi(q.Get("page"))
	limit, _ := strconv.Atoi(q.Get("limit"))
	filter := strings.ToLower(q.Get("filter"))

	ids := make([]uint64, 0, len(b.records[resource]))
	for id, rec := range b.records[resource] {
		if filter == "" || matches(rec, filter) {
			ids = append(ids, id)
		}
	}
	sort.Slice(ids, func(i, j int) bool { return ids[i] < ids[j] })

	rows := make([]map[string]interface{}, 0, limit)
	for i := (page - 1) * limit; i < len(ids) && i < page*limit; i++ {
		rows = append(rows, b.records[resource][ids[i]])
	}
	w.Header().Set("x-total-count", strconv.Itoa(len(ids)))
	_ = json.NewEncoder(w).Encode(rows)
}

func matches(rec map[string]interface{}, filter string) bool {
	for _, v := range rec {
		if strings.Contains(strings.ToLower(fmt.Sprint(v)), filter) {
			return true
		}
	}
	return false
}

type ConsoleTestSuite struct {
	suite.Suite
	Echo    *echo.Echo
	Backend *fakeBackend
	server  *httptest.Server
	bus     *eventbus.Bus
}

func (s *ConsoleTestSuite) SetupTest() {
	s.Backend = newFakeBackend()
	s.server = httptest.NewServer(s.Backend)

	cfg := &config.Config{
		Listing:  config.ListingConfig{PageSize: 5, Debounce: time.Millisecond, ExportLimit: 100},
		Lang:     "pt-BR",
		FlashTTL: time.Minute,
	}

	e := echo.New()
	e.Validator = validation.New()
	renderer, err := view.New()
	s.Require().NoError(err)
	e.Renderer = renderer
	e.Use(middleware.Session(), middleware.Locale(cfg.Lang))

	nop := zap.NewNop()
	s.bus = eventbus.New(nop)
	listeners.NewAuditListener(nop).Register(s.bus)

	client := apiclient.New(s.server.URL, 5*time.Second, nop)
	InitRouter(e, client, repositories.NewMemoryCacheRepository(), s.bus, &Loggers{Main: nop, Backend: nop}, cfg)
	s.Echo = e
}

func (s *ConsoleTestSuite) TearDownTest() {
	s.bus.Wait()
	s.server.Close()
}

func (s *ConsoleTestSuite) request(method, target string, form url.Values, htmx bool) *httptest.ResponseRecorder {
	var body io.Reader
	if form != nil {
		body = strings.NewReader(form.Encode())
	}
	req := httptest.NewRequest(method, target, body)
	if form != nil {
		req.Header.Set(echo.HeaderContentType, echo.MIMEApplicationForm)
	}
	if htmx {
		req.Header.Set(constants.HeaderHXRequest, "true")
	}
	rec := httptest.NewRecorder()
	s.Echo.ServeHTTP(rec, req)
	return rec
}

func (s *ConsoleTestSuite) TestEquipmentLifecycle() {
	form := url.Values{
		"name": {"Torno CNC"}, "serieNumber": {"TN-001"}, "type": {"Mecânico"},
		"description": {"  "}, "action": {constants.ActionSave},
	}

	rec := s.request(http.MethodPost, "/equipments/detail/nova", form, false)
	s.Equal(http.StatusSeeOther, rec.Code)
	s.Equal("/equipments/detail/1", rec.Header().Get(echo.HeaderLocation))

	stored := s.Backend.get("equipments", 1)
	s.Require().NotNil(stored)
	s.Equal("TN-001", stored["serieNumber"])
	s.Nil(stored["description"])

	rec = s.request(http.MethodGet, "/equipments/detail/1", nil, false)
	s.Equal(http.StatusOK, rec.Code)
	s.Contains(rec.Body.String(), `value="Torno CNC"`)

	form.Set("name", "Torno CNC 2")
	form.Set("action", constants.ActionSaveClose)
	rec = s.request(http.MethodPost, "/equipments/detail/1", form, false)
	s.Equal(http.StatusSeeOther, rec.Code)
	s.Equal("/equipments", rec.Header().Get(echo.HeaderLocation))
	s.Equal("Torno CNC 2", s.Backend.get("equipments", 1)["name"])

	rec = s.request(http.MethodDelete, "/equipments/1", nil, true)
	s.Equal(http.StatusOK, rec.Code)
	s.Empty(rec.Body.String())
	s.Equal(0, s.Backend.count("equipments"))
}

func (s *ConsoleTestSuite) TestBackendMessageIsShown() {
	s.Backend.reject["technicians"] = "E-mail já cadastrado"

	form := url.Values{"name": {"Ana Souza"}, "email": {"ana@example.com"}, "category": {"Elétrica"}}
	rec := s.request(http.MethodPost, "/technicians/detail/nova", form, false)

	s.Equal(http.StatusUnprocessableEntity, rec.Code)
	s.Contains(rec.Body.String(), `data-message="E-mail já cadastrado"`)
}

func (s *ConsoleTestSuite) TestPagination() {
	for i := 1; i <= 7; i++ {
		s.Backend.seed("items", map[string]interface{}{"name": fmt.Sprintf("Item %02d", i), "price": 1.5, "amount": 3.0})
	}

	rec := s.request(http.MethodGet, "/items?page=2", nil, true)
	s.Equal(http.StatusOK, rec.Code)
	body := rec.Body.String()
	s.Contains(body, "Item 06")
	s.Contains(body, "Item 07")
	s.NotContains(body, "Item 01")
	s.Contains(body, `<span aria-current="page">2</span>`)
	s.Contains(body, `hx-get="/items?page=1&search="`)

	rec = s.request(http.MethodGet, "/items?search=07", nil, true)
	s.Contains(rec.Body.String(), "Item 07")
	s.NotContains(rec.Body.String(), `class="pagination"`)
}

func (s *ConsoleTestSuite) TestOrderWithLines() {
	tech := s.Backend.seed("technicians", map[string]interface{}{"name": "Ana", "email": "ana@example.com", "category": "Elétrica"})
	equip := s.Backend.seed("equipments", map[string]interface{}{"name": "Prensa", "serieNumber": "PR-1", "type": "Hidráulico"})
	item := s.Backend.seed("items", map[string]interface{}{"name": "Correia", "price": 15.0, "amount": 10.0})

	form := url.Values{
		"technicianID": {strconv.FormatUint(tech, 10)}, "equipmentID": {strconv.FormatUint(equip, 10)},
		"type": {"Corretiva"}, "defect": {"Vazamento"}, "causes": {"Vedação"}, "solution": {"Troca"},
		"status": {"true"}, "date_init_os": {"2024-03-01"}, "total": {"30"},
	}
	rec := s.request(http.MethodPost, "/orders/detail/nova", form, false)
	s.Require().Equal(http.StatusSeeOther, rec.Code)
	orderID := strings.TrimPrefix(rec.Header().Get(echo.HeaderLocation), "/orders/detail/")

	line := url.Values{"itemID": {strconv.FormatUint(item, 10)}, "amount": {"2"}, "total": {"30"}}
	rec = s.request(http.MethodPost, "/orders/"+orderID+"/lines", line, true)
	s.Require().Equal(http.StatusOK, rec.Code)
	s.Contains(rec.Body.String(), "Correia")
	s.Equal(1, s.Backend.count(constants.ResourceOrderLines))

	var lineID uint64
	for id := range s.Backend.records[constants.ResourceOrderLines] {
		lineID = id
	}
	linePath := fmt.Sprintf("/orders/%s/lines/%d", orderID, lineID)

	rec = s.request(http.MethodPut, linePath, line, true)
	s.Equal(http.StatusOK, rec.Code)
	s.Equal(0, s.Backend.putCount(constants.ResourceOrderLines))

	line.Set("amount", "3")
	rec = s.request(http.MethodPut, linePath, line, true)
	s.Equal(http.StatusOK, rec.Code)
	s.Equal(1, s.Backend.putCount(constants.ResourceOrderLines))

	rec = s.request(http.MethodGet, "/orders/detail/"+orderID, nil, false)
	s.Equal(http.StatusOK, rec.Code)
	s.Contains(rec.Body.String(), fmt.Sprintf(`id="line-%d"`, lineID))
	s.Contains(rec.Body.String(), `<option value="true" selected>Aberta</option>`)

	foreignPath := fmt.Sprintf("/orders/%d/lines/%d", tech+equip+item+1000, lineID)
	rec = s.request(http.MethodDelete, foreignPath, nil, true)
	s.Equal(http.StatusNotFound, rec.Code)
	s.Equal(1, s.Backend.count(constants.ResourceOrderLines))

	rec = s.request(http.MethodDelete, linePath, nil, true)
	s.Equal(http.StatusOK, rec.Code)
	s.Equal(0, s.Backend.count(constants.ResourceOrderLines))
}

func (s *ConsoleTestSuite) TestDashboard() {
	s.Backend.seed("technicians", map[string]interface{}{"name": "Ana"})
	s.Backend.seed("technicians", map[string]interface{}{"name": "Bruno"})
	s.Backend.seed("items", map[string]interface{}{"name": "Correia"})

	rec := s.request(http.MethodGet, "/pagina-inicial", nil, false)

	s.Equal(http.StatusOK, rec.Code)
	s.Contains(rec.Body.String(), `<p class="count">2</p>`)
	s.Contains(rec.Body.String(), `<p class="count">0</p>`)
	s.Contains(rec.Body.String(), `hx-get="/pagina-inicial"`)
}

func (s *ConsoleTestSuite) TestBackendDown() {
	s.server.Close()

	rec := s.request(http.MethodGet, "/equipments", nil, true)

	s.Equal(http.StatusInternalServerError, rec.Code)
	s.Equal(`{"showMessage":"Erro ao listar os registros."}`, rec.Header().Get(constants.HeaderHXTrigger))
}

func TestConsoleTestSuite(t *testing.T) {
	suite.Run(t, new(ConsoleTestSuite))
}
