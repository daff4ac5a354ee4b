package metrics_test

import (
	"io"
	"net/http/httptest"
	"strings"
	"testing"

	"github.com/gofiber/fiber/v2"
	"github.com/prometheus/client_golang/prometheus/testutil"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/jhoicas/stockmanager/internal/domain/stock"
	"github.com/jhoicas/stockmanager/internal/infrastructure/metrics"
)

func TestMiddleware_EtiquetaPorRuta(t *testing.T) {
	m := metrics.New("test")
	app := fiber.New()
	app.Use(m.Middleware())
	app.Get("/ingredientes/:id", func(c *fiber.Ctx) error { return c.SendStatus(fiber.StatusNotFound) })
	app.Get("/metrics", m.Handler())

	for _, id := range []string{"1", "2", "3"} {
		resp, err := app.Test(httptest.NewRequest("GET", "/ingredientes/"+id, nil))
		require.NoError(t, err)
		assert.Equal(t, fiber.StatusNotFound, resp.StatusCode)
	}

	resp, err := app.Test(httptest.NewRequest("GET", "/metrics", nil))
	require.NoError(t, err)
	body, _ := io.ReadAll(resp.Body)
	assert.Contains(t, string(body), `test_http_requests_total{method="GET",path="/ingredientes/:id",status="404"} 3`)
}

func TestRecordAlerts(t *testing.T) {
	m := metrics.New("test")
	m.RecordAlerts(map[stock.Kind]int{stock.KindZeroStock: 2, stock.KindExpired: 1})

	expected := `
# HELP test_stock_alerts Active alerts by kind at the last panel build; an ingredient can raise one stock and one expiry alert
# TYPE test_stock_alerts gauge
test_stock_alerts{kind="estoque_baixo"} 0
test_stock_alerts{kind="estoque_zerado"} 2
test_stock_alerts{kind="validade_proxima"} 0
test_stock_alerts{kind="vencido"} 1
`
	require.NoError(t, testutil.GatherAndCompare(m.Registry(), strings.NewReader(expected), "test_stock_alerts"))
}

func TestRecordOperation(t *testing.T) {
	m := metrics.New("test")
	m.RecordOperation("create")
	m.RecordOperation("create")
	m.RecordOperation("delete")

	expected := `
# HELP test_ingredient_operations_total Ingredient write operations by type
# TYPE test_ingredient_operations_total counter
test_ingredient_operations_total{operation="create"} 2
test_ingredient_operations_total{operation="delete"} 1
`
	require.NoError(t, testutil.GatherAndCompare(m.Registry(), strings.NewReader(expected), "test_ingredient_operations_total"))
}
