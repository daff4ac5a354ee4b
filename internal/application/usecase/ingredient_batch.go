package usecase

import (
	"context"
	"fmt"

	"github.com/jhoicas/stockmanager/internal/application/dto"
	"github.com/jhoicas/stockmanager/internal/domain"
	"github.com/jhoicas/stockmanager/internal/domain/entity"
	"github.com/jhoicas/stockmanager/internal/domain/repository"
)

// TxRunner ejecuta fn con un repositorio atado a una transacción (implementado en infrastructure/postgres).
// Si fn devuelve error la transacción se revierte.
type TxRunner interface {
	Run(ctx context.Context, fn func(repo repository.IngredientRepository) error) error
}

// CreateBatch crea todos los ingredientes o ninguno. Valida el lote completo antes de abrir
// la transacción; el error indica la posición (1-based) de la primera entrada inválida.
func CreateBatch(ctx context.Context, tx TxRunner, in []dto.IngredientRequest) ([]dto.IngredientResponse, error) {
	items := make([]*entity.Ingredient, 0, len(in))
	for i, req := range in {
		ing, err := toIngredient(req)
		if err != nil {
			return nil, domain.InvalidInput(fmt.Sprintf("item %d: %v", i+1, err))
		}
		items = append(items, ing)
	}

	out := make([]dto.IngredientResponse, 0, len(items))
	err := tx.Run(ctx, func(repo repository.IngredientRepository) error {
		for _, ing := range items {
			if err := repo.Create(ctx, ing); err != nil {
				return fmt.Errorf("crear %q: %w", ing.Nome, err)
			}
			out = append(out, ToIngredientResponse(ing))
		}
		return nil
	})
	if err != nil {
		return nil, err
	}
	return out, nil
}
