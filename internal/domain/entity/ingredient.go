package entity

import (
	"time"

	"github.com/shopspring/decimal"
)

// Ingredient representa un insumo de cocina con su stock actual y punto de reposición.
// Validade y Fornecedor son opcionales: nil significa "no informado".
type Ingredient struct {
	ID                int64
	Nome              string
	Quantidade        decimal.Decimal
	Unidade           string
	QuantidadeMinima  decimal.Decimal
	Validade          *time.Time // solo fecha
	Fornecedor        *string
	UltimaAtualizacao time.Time
}
