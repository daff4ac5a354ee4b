package stock_test

import (
	"testing"
	"time"

	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/jhoicas/stockmanager/internal/domain/entity"
	"github.com/jhoicas/stockmanager/internal/domain/stock"
)

var now = time.Date(2026, time.October, 17, 0, 0, 0, 0, time.UTC)

func ingredient(qtd, min string) entity.Ingredient {
	return entity.Ingredient{
		Nome:             "Farinha",
		Quantidade:       decimal.RequireFromString(qtd),
		Unidade:          "kg",
		QuantidadeMinima: decimal.RequireFromString(min),
	}
}

func withExpiry(ing entity.Ingredient, days int) entity.Ingredient {
	v := now.AddDate(0, 0, days)
	ing.Validade = &v
	return ing
}

func kinds(alerts []stock.Alert) []stock.Kind {
	out := []stock.Kind{}
	for _, a := range alerts {
		out = append(out, a.Kind)
	}
	return out
}

func TestEvaluate_NivelDeStock(t *testing.T) {
	cases := []struct {
		name     string
		qtd, min string
		want     []stock.Kind
	}{
		{"igual al mínimo es estoque baixo", "2", "2", []stock.Kind{stock.KindLowStock}},
		{"bajo el mínimo", "1.5", "2", []stock.Kind{stock.KindLowStock}},
		{"sobre el mínimo sin alerta", "5", "2", []stock.Kind{}},
		{"cero con mínimo positivo", "0", "2", []stock.Kind{stock.KindZeroStock}},
		{"cero con mínimo cero", "0", "0", []stock.Kind{stock.KindZeroStock}},
		{"cero con decimales", "0.000", "1", []stock.Kind{stock.KindZeroStock}},
	}
	for _, tc := range cases {
		t.Run(tc.name, func(t *testing.T) {
			got := stock.Evaluate(ingredient(tc.qtd, tc.min), now)
			assert.Equal(t, tc.want, kinds(got))
		})
	}
}

func TestEvaluate_Severidades(t *testing.T) {
	zero := stock.Evaluate(ingredient("0", "1"), now)
	require.Len(t, zero, 1)
	assert.Equal(t, stock.SeverityCritical, zero[0].Severity)

	low := stock.Evaluate(ingredient("1", "1"), now)
	require.Len(t, low, 1)
	assert.Equal(t, stock.SeverityWarning, low[0].Severity)
	assert.Nil(t, low[0].DaysLeft)
}

func TestEvaluate_Vencimiento(t *testing.T) {
	cases := []struct {
		name string
		days int
		want []stock.Kind
		sev  stock.Severity
	}{
		{"vence hoy", 0, []stock.Kind{stock.KindExpired}, stock.SeverityDanger},
		{"vencido ayer", -1, []stock.Kind{stock.KindExpired}, stock.SeverityDanger},
		{"vence en 1 día", 1, []stock.Kind{stock.KindExpiringSoon}, stock.SeverityWarning},
		{"vence en 3 días", 3, []stock.Kind{stock.KindExpiringSoon}, stock.SeverityWarning},
		{"vence en 4 días", 4, []stock.Kind{}, ""},
	}
	for _, tc := range cases {
		t.Run(tc.name, func(t *testing.T) {
			got := stock.Evaluate(withExpiry(ingredient("10", "1"), tc.days), now)
			assert.Equal(t, tc.want, kinds(got))
			if len(got) == 1 {
				assert.Equal(t, tc.sev, got[0].Severity)
				require.NotNil(t, got[0].DaysLeft)
				assert.Equal(t, tc.days, *got[0].DaysLeft)
			}
		})
	}
}

func TestEvaluate_SinValidadeNoEvaluaVencimiento(t *testing.T) {
	assert.Empty(t, stock.Evaluate(ingredient("10", "1"), now))
}

func TestEvaluate_AlertasIndependientes(t *testing.T) {
	got := stock.Evaluate(withExpiry(ingredient("0", "1"), 2), now)
	assert.Equal(t, []stock.Kind{stock.KindZeroStock, stock.KindExpiringSoon}, kinds(got))
	assert.Equal(t, stock.SeverityCritical, got[0].Severity)
	assert.Equal(t, stock.SeverityWarning, got[1].Severity)

	got = stock.Evaluate(withExpiry(ingredient("1", "3"), -2), now)
	assert.Equal(t, []stock.Kind{stock.KindLowStock, stock.KindExpired}, kinds(got))
}

func TestDaysUntil_RedondeaHaciaArriba(t *testing.T) {
	expiry := time.Date(2026, time.October, 18, 0, 0, 0, 0, time.UTC)

	// A media mañana del día anterior quedan 14h: ceil -> 1 día.
	assert.Equal(t, 1, stock.DaysUntil(expiry, now.Add(10*time.Hour)))
	// Durante el mismo día del vencimiento ya está vencido.
	assert.Equal(t, 0, stock.DaysUntil(expiry, expiry.Add(8*time.Hour)))
	assert.Equal(t, 0, stock.DaysUntil(expiry, expiry))
}

func TestPolicy_VentanaConfigurable(t *testing.T) {
	p := stock.Policy{ExpiryWindowDays: 7}
	got := p.Evaluate(withExpiry(ingredient("10", "1"), 6), now)
	assert.True(t, stock.HasKind(got, stock.KindExpiringSoon))

	got = stock.DefaultPolicy.Evaluate(withExpiry(ingredient("10", "1"), 6), now)
	assert.False(t, stock.HasKind(got, stock.KindExpiringSoon))
}

func TestSummary(t *testing.T) {
	a := stock.Evaluate(ingredient("0", "1"), now)
	b := stock.Evaluate(withExpiry(ingredient("1", "1"), 0), now)

	s := stock.Summary(a, b)
	assert.Equal(t, 1, s[stock.KindZeroStock])
	assert.Equal(t, 1, s[stock.KindLowStock])
	assert.Equal(t, 1, s[stock.KindExpired])
	assert.Equal(t, 0, s[stock.KindExpiringSoon])
	assert.Len(t, stock.Kinds(), 4)
}
