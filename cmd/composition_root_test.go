package cmd

import (
	"context"
	"io"
	"log/slog"
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"

	"foodorders/internal/core/application/usecases/commands"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func memoryRoot(t *testing.T) *CompositionRoot {
	t.Helper()
	root, err := NewCompositionRoot(Config{
		StoreDriver:     StoreDriverMemory,
		OutboxBatchSize: 10,
	}, nil, slog.New(slog.NewTextHandler(io.Discard, nil)))
	require.NoError(t, err)
	t.Cleanup(func() { _ = root.Close() })
	return root
}

func TestCompositionRoot_MemoryStore(t *testing.T) {
	root := memoryRoot(t)
	e := root.CreateRouter()

	req := httptest.NewRequest(http.MethodPost, "/api/v1/orders",
		strings.NewReader(`{"restaurantId":1,"products":[{"productId":1,"quantity":1}]}`))
	req.Header.Set("Content-Type", "application/json")
	rec := httptest.NewRecorder()
	e.ServeHTTP(rec, req)
	require.Equal(t, http.StatusCreated, rec.Code, rec.Body.String())

	relay := root.CreateRelayOutboxCommandHandler()
	relayed, err := relay.Handle(context.Background(), mustRelayCommand(t))
	require.NoError(t, err)
	assert.Equal(t, 1, relayed)

	relayed, err = relay.Handle(context.Background(), mustRelayCommand(t))
	require.NoError(t, err)
	assert.Zero(t, relayed)
}

func TestCompositionRoot_SeededCatalogRejectsUnavailableProduct(t *testing.T) {
	e := memoryRoot(t).CreateRouter()

	req := httptest.NewRequest(http.MethodPost, "/api/v1/orders",
		strings.NewReader(`{"restaurantId":1,"products":[{"productId":3,"quantity":1}]}`))
	req.Header.Set("Content-Type", "application/json")
	rec := httptest.NewRecorder()
	e.ServeHTTP(rec, req)

	assert.Equal(t, http.StatusUnprocessableEntity, rec.Code)
	assert.Contains(t, rec.Body.String(), "ProductNotAvailableOrWrongRestaurant")
}

func TestCompositionRoot_Metrics(t *testing.T) {
	e := memoryRoot(t).CreateRouter()

	e.ServeHTTP(httptest.NewRecorder(), httptest.NewRequest(http.MethodGet, "/health", nil))

	rec := httptest.NewRecorder()
	e.ServeHTTP(rec, httptest.NewRequest(http.MethodGet, "/metrics", nil))

	require.Equal(t, http.StatusOK, rec.Code)
	assert.Contains(t, rec.Body.String(), "foodorders_http_requests_total")
}

func TestCompositionRoot_JobManager(t *testing.T) {
	manager, err := memoryRoot(t).CreateJobManager()
	require.NoError(t, err)

	require.NoError(t, manager.StartAll())
	manager.StopAll()
}

func mustRelayCommand(t *testing.T) commands.RelayOutboxCommand {
	t.Helper()
	relayCmd, err := commands.NewRelayOutboxCommand(10)
	require.NoError(t, err)
	return relayCmd
}
