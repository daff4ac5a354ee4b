package pdf

import (
	"bytes"
	"context"
	"testing"

	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/jhoicas/stockmanager/internal/application/dto"
)

func TestGenerateStockReport(t *testing.T) {
	validade := "2026-10-16"
	view := &dto.PanelResponse{
		Rows: []dto.PanelRowDTO{
			{
				Ingrediente: dto.IngredientResponse{ID: 1, Nome: "Leite", Quantidade: decimal.NewFromInt(0), Unidade: "l", Validade: &validade},
				Alertas: []dto.AlertDTO{
					{Tipo: "estoque_zerado", Severidade: "critical", Mensagem: "Sem estoque de Leite"},
					{Tipo: "vencido", Severidade: "danger", Mensagem: "ATENÇÃO: Leite vencido em 16/10/2026"},
				},
				Quantidade: "0 l",
				Minima:     "1 l",
			},
			{
				Ingrediente: dto.IngredientResponse{ID: 2, Nome: "Sal", Quantidade: decimal.NewFromInt(10), Unidade: "kg"},
				Alertas:     []dto.AlertDTO{},
				Quantidade:  "10 kg",
				Minima:      "2 kg",
			},
		},
		Alertas:  []string{"Sem estoque de Leite", "ATENÇÃO: Leite vencido em 16/10/2026"},
		Resumo:   map[string]int{"estoque_zerado": 1, "vencido": 1},
		GeradoEm: "2026-10-17T09:30:00Z",
	}

	out, err := NewMarotoReportGenerator("").GenerateStockReport(context.Background(), view)
	require.NoError(t, err)
	assert.True(t, bytes.HasPrefix(out, []byte("%PDF")))
}

func TestGenerateStockReport_Vacio(t *testing.T) {
	out, err := NewMarotoReportGenerator("Estoque").GenerateStockReport(context.Background(), &dto.PanelResponse{})
	require.NoError(t, err)
	assert.NotEmpty(t, out)
}

func TestFormatDate(t *testing.T) {
	d := "2026-10-20"
	assert.Equal(t, "20/10/2026", formatDate(&d))
	assert.Equal(t, "-", formatDate(nil))
}
