package dto

import "github.com/shopspring/decimal"

// AlertDTO alerta de un ingrediente.
type AlertDTO struct {
	Tipo       string `json:"tipo"`
	Severidade string `json:"severidade"`
	Dias       *int   `json:"dias,omitempty"`
	Mensagem   string `json:"mensagem"`
}

// AdjustmentDTO botón de ajuste rápido con la cantidad resultante ya calculada.
type AdjustmentDTO struct {
	Delta      decimal.Decimal `json:"delta" swaggertype:"number"`
	Quantidade decimal.Decimal `json:"quantidade" swaggertype:"number"`
	Permitido  bool            `json:"permitido"`
}

// PanelRowDTO fila de la tabla de stock.
type PanelRowDTO struct {
	Ingrediente IngredientResponse `json:"ingrediente"`
	Alertas     []AlertDTO         `json:"alertas"`
	Classes     []string           `json:"classes"`
	Ajustes     []AdjustmentDTO    `json:"ajustes"`
	Quantidade  string             `json:"quantidade_formatada"`
	Minima      string             `json:"minima_formatada"`
}

// PanelResponse vista completa: filas, banner consolidado y conteo por tipo de alerta.
type PanelResponse struct {
	Rows     []PanelRowDTO  `json:"rows"`
	Alertas  []string       `json:"alertas"`
	Resumo   map[string]int `json:"resumo"`
	GeradoEm string         `json:"gerado_em"`
}
