package repositories

import (
	"context"
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/zap"

	"maintenance-console/internal/entities"
	"maintenance-console/pkg/apiclient"
	"maintenance-console/pkg/types"
)

func newTestClient(t *testing.T, h http.Handler) *apiclient.Client {
	t.Helper()
	srv := httptest.NewServer(h)
	t.Cleanup(srv.Close)
	return apiclient.New(srv.URL, 5*time.Second, zap.NewNop())
}

func TestEquipmentRepository_CRUD(t *testing.T) {
	var updated entities.Equipment
	mux := http.NewServeMux()
	mux.HandleFunc("/equipments", func(w http.ResponseWriter, r *http.Request) {
		switch r.Method {
		case http.MethodGet:
			assert.Equal(t, "bomba", r.URL.Query().Get("filter"))
			w.Header().Set("x-total-count", "6")
			_ = json.NewEncoder(w).Encode([]entities.Equipment{{ID: 1, Name: "Bomba d'água"}})
		case http.MethodPost:
			_, _ = w.Write([]byte("31"))
		}
	})
	mux.HandleFunc("/equipments/1", func(w http.ResponseWriter, r *http.Request) {
		switch r.Method {
		case http.MethodGet:
			_, _ = w.Write([]byte(`{"id":1,"name":"Bomba d'água","serieNumber":"BX-1","type":"Hidráulico","description":null}`))
		case http.MethodPut:
			assert.NoError(t, json.NewDecoder(r.Body).Decode(&updated))
		case http.MethodDelete:
			w.WriteHeader(http.StatusNoContent)
		}
	})
	repo := NewEquipmentRepository(newTestClient(t, mux), zap.NewNop())
	ctx := context.Background()

	rows, total, err := repo.GetEquipments(ctx, types.Filter{Search: "bomba", Page: 1, Limit: 5})
	require.NoError(t, err)
	assert.Equal(t, uint64(6), total)
	require.Len(t, rows, 1)

	found, err := repo.FindEquipment(ctx, 1)
	require.NoError(t, err)
	assert.Equal(t, "BX-1", found.SerieNumber)
	assert.False(t, found.Description.Valid)

	id, err := repo.CreateEquipment(ctx, entities.Equipment{Name: "Torno"})
	require.NoError(t, err)
	assert.Equal(t, uint64(31), id)

	found.Name = "Bomba nova"
	require.NoError(t, repo.UpdateEquipment(ctx, *found))
	assert.Equal(t, uint64(1), updated.ID)
	assert.Equal(t, "Bomba nova", updated.Name)

	require.NoError(t, repo.DeleteEquipment(ctx, 1))
}

func TestOrderLineRepository_GetOrderLines(t *testing.T) {
	pages := map[string][]entities.OrderLine{
		"1": {{ID: 1, OrderID: 7}, {ID: 2, OrderID: 7}},
		"2": {{ID: 3, OrderID: 7}, {ID: 4, OrderID: 77}},
		"3": {{ID: 5, OrderID: 7}},
	}
	var requested []string
	client := newTestClient(t, http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		assert.Equal(t, "/itemofLines", r.URL.Path)
		assert.Equal(t, "7", r.URL.Query().Get("filter"))
		page := r.URL.Query().Get("page")
		requested = append(requested, page)
		w.Header().Set("x-total-count", "5")
		_ = json.NewEncoder(w).Encode(pages[page])
	}))

	repo := NewOrderLineRepository(client, 2, zap.NewNop())
	lines, err := repo.GetOrderLines(context.Background(), 7)
	require.NoError(t, err)

	assert.Equal(t, []string{"1", "2", "3"}, requested)
	ids := make([]uint64, 0, len(lines))
	for _, l := range lines {
		ids = append(ids, l.ID)
	}
	assert.Equal(t, []uint64{1, 2, 3, 5}, ids)
}

func TestMemoryCacheRepository(t *testing.T) {
	repo := NewMemoryCacheRepository().(*MemoryCacheRepository)
	now := time.Date(2024, 1, 1, 12, 0, 0, 0, time.UTC)
	repo.now = func() time.Time { return now }
	ctx := context.Background()

	_, err := repo.Get(ctx, "missing")
	assert.ErrorIs(t, err, ErrCacheMiss)

	require.NoError(t, repo.Set(ctx, "flash:a", "hello", time.Minute))
	require.NoError(t, repo.Set(ctx, "keep", []byte("forever"), 0))

	v, err := repo.Get(ctx, "flash:a")
	require.NoError(t, err)
	assert.Equal(t, "hello", v)

	now = now.Add(2 * time.Minute)
	_, err = repo.Get(ctx, "flash:a")
	assert.ErrorIs(t, err, ErrCacheMiss)

	v, err = repo.Get(ctx, "keep")
	require.NoError(t, err)
	assert.Equal(t, "forever", v)

	require.NoError(t, repo.Del(ctx, "keep"))
	_, err = repo.Get(ctx, "keep")
	assert.ErrorIs(t, err, ErrCacheMiss)
}
