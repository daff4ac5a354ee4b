package repository

import (
	"context"

	"github.com/shopspring/decimal"

	"github.com/jhoicas/stockmanager/internal/domain/entity"
)

// IngredientRepository define el puerto de persistencia para Ingredient (DIP).
//
// Convenciones: las lecturas devuelven (nil, nil) si no hay fila; UpdateQuantity informa
// si alguna fila cambió en lugar de fallar; Delete devuelve la fila borrada o (nil, nil).
type IngredientRepository interface {
	List(ctx context.Context) ([]*entity.Ingredient, error)
	GetByID(ctx context.Context, id int64) (*entity.Ingredient, error)
	Create(ctx context.Context, ing *entity.Ingredient) error
	UpdateQuantity(ctx context.Context, id int64, quantidade decimal.Decimal) (bool, error)
	Update(ctx context.Context, ing *entity.Ingredient) (bool, error)
	Delete(ctx context.Context, id int64) (*entity.Ingredient, error)
}
