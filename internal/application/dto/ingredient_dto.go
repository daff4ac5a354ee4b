package dto

import (
	"time"

	"github.com/shopspring/decimal"
)

// DateLayout formato de la fecha de validade en JSON.
const DateLayout = "2006-01-02"

// IngredientRequest entrada para crear o reemplazar un ingrediente.
// Los punteros distinguen "ausente" de "cero".
type IngredientRequest struct {
	Nome             string           `json:"nome" example:"Farinha"`
	Quantidade       *decimal.Decimal `json:"quantidade" swaggertype:"number" example:"5"`
	Unidade          string           `json:"unidade" example:"kg"`
	QuantidadeMinima *decimal.Decimal `json:"quantidade_minima" swaggertype:"number" example:"2"`
	Validade         *string          `json:"validade" example:"2026-10-20"`
	Fornecedor       *string          `json:"fornecedor" example:"Moinho Sul"`
}

// UpdateQuantityRequest entrada del ajuste parcial de cantidad.
type UpdateQuantityRequest struct {
	Quantidade *decimal.Decimal `json:"quantidade" swaggertype:"number" example:"4.5"`
}

// UpdateQuantityResponse resultado del ajuste parcial: "no encontrado" es updated=false, no un 404.
type UpdateQuantityResponse struct {
	Updated bool   `json:"updated"`
	Message string `json:"message"`
}

// IngredientResponse salida de un ingrediente.
type IngredientResponse struct {
	ID                int64           `json:"id"`
	Nome              string          `json:"nome"`
	Quantidade        decimal.Decimal `json:"quantidade" swaggertype:"number"`
	Unidade           string          `json:"unidade"`
	QuantidadeMinima  decimal.Decimal `json:"quantidade_minima" swaggertype:"number"`
	Validade          *string         `json:"validade"`
	Fornecedor        *string         `json:"fornecedor"`
	UltimaAtualizacao time.Time       `json:"ultima_atualizacao"`
}

// Links navegación descriptiva del recurso.
type Links struct {
	Self string `json:"self"`
	All  string `json:"all"`
}

// IngredientDetailResponse ingrediente con enlaces (GET por id).
type IngredientDetailResponse struct {
	IngredientResponse
	Links Links `json:"_links"`
}

// DeleteIngredientResponse resultado del borrado.
type DeleteIngredientResponse struct {
	Success           bool               `json:"success"`
	DeletedIngredient IngredientResponse `json:"deletedIngredient"`
	Message           string             `json:"message"`
}
