package postgres

import (
	"context"
	"errors"
	"fmt"

	"github.com/jackc/pgx/v5"
	"github.com/shopspring/decimal"

	"github.com/jhoicas/stockmanager/internal/domain"
	"github.com/jhoicas/stockmanager/internal/domain/entity"
	"github.com/jhoicas/stockmanager/internal/domain/repository"
)

var _ repository.IngredientRepository = (*IngredientRepo)(nil)

const ingredientColumns = `id, nome, quantidade, unidade, quantidade_minima, validade, fornecedor, ultima_atualizacao`

// touch garantiza que ultima_atualizacao crece en cada escritura aunque now() repita valor
// dentro de la misma transacción.
const touch = `ultima_atualizacao = GREATEST(now(), ultima_atualizacao + interval '1 microsecond')`

// IngredientRepo implementación del puerto IngredientRepository sobre PostgreSQL (pool o tx).
type IngredientRepo struct {
	q Querier
}

// NewIngredientRepository construye el adaptador. Pasar pool o tx (Querier).
func NewIngredientRepository(q Querier) *IngredientRepo {
	return &IngredientRepo{q: q}
}

func scanIngredient(row pgx.Row) (*entity.Ingredient, error) {
	var i entity.Ingredient
	err := row.Scan(&i.ID, &i.Nome, &i.Quantidade, &i.Unidade, &i.QuantidadeMinima,
		&i.Validade, &i.Fornecedor, &i.UltimaAtualizacao)
	if err != nil {
		return nil, err
	}
	return &i, nil
}

// List devuelve todos los ingredientes ordenados por nombre.
func (r *IngredientRepo) List(ctx context.Context) ([]*entity.Ingredient, error) {
	rows, err := r.q.Query(ctx, `SELECT `+ingredientColumns+` FROM ingredientes ORDER BY nome, id`)
	if err != nil {
		return nil, fmt.Errorf("list ingredientes: %w", err)
	}
	defer rows.Close()

	list := make([]*entity.Ingredient, 0)
	for rows.Next() {
		i, err := scanIngredient(rows)
		if err != nil {
			return nil, fmt.Errorf("scan ingrediente: %w", err)
		}
		list = append(list, i)
	}
	return list, rows.Err()
}

// GetByID obtiene un ingrediente por ID; (nil, nil) si no existe.
func (r *IngredientRepo) GetByID(ctx context.Context, id int64) (*entity.Ingredient, error) {
	i, err := scanIngredient(r.q.QueryRow(ctx,
		`SELECT `+ingredientColumns+` FROM ingredientes WHERE id = $1`, id))
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, nil
		}
		return nil, fmt.Errorf("get ingrediente: %w", err)
	}
	return i, nil
}

// Create inserta el ingrediente y lo reemplaza por la fila guardada (ID, fecha y valores ya redondeados por la base).
func (r *IngredientRepo) Create(ctx context.Context, ing *entity.Ingredient) error {
	query := `
		INSERT INTO ingredientes (nome, quantidade, unidade, quantidade_minima, validade, fornecedor)
		VALUES ($1, $2, $3, $4, $5, $6)
		RETURNING ` + ingredientColumns
	stored, err := scanIngredient(r.q.QueryRow(ctx, query,
		ing.Nome, ing.Quantidade, ing.Unidade, ing.QuantidadeMinima, ing.Validade, ing.Fornecedor,
	))
	if err != nil {
		if isInvalidValue(err) {
			return domain.ErrInvalidInput
		}
		return fmt.Errorf("insert ingrediente: %w", err)
	}
	*ing = *stored
	return nil
}

// UpdateQuantity cambia solo la cantidad. false si ninguna fila coincidió.
func (r *IngredientRepo) UpdateQuantity(ctx context.Context, id int64, quantidade decimal.Decimal) (bool, error) {
	cmd, err := r.q.Exec(ctx,
		`UPDATE ingredientes SET quantidade = $2, `+touch+` WHERE id = $1`, id, quantidade)
	if err != nil {
		if isInvalidValue(err) {
			return false, domain.ErrInvalidInput
		}
		return false, fmt.Errorf("update quantidade: %w", err)
	}
	return cmd.RowsAffected() > 0, nil
}

// Update reemplaza todos los campos editables y devuelve en ing la fila guardada. false si no existe.
func (r *IngredientRepo) Update(ctx context.Context, ing *entity.Ingredient) (bool, error) {
	query := `
		UPDATE ingredientes
		SET nome = $2, quantidade = $3, unidade = $4, quantidade_minima = $5,
		    validade = $6, fornecedor = $7, ` + touch + `
		WHERE id = $1
		RETURNING ` + ingredientColumns
	stored, err := scanIngredient(r.q.QueryRow(ctx, query,
		ing.ID, ing.Nome, ing.Quantidade, ing.Unidade, ing.QuantidadeMinima, ing.Validade, ing.Fornecedor,
	))
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return false, nil
		}
		if isInvalidValue(err) {
			return false, domain.ErrInvalidInput
		}
		return false, fmt.Errorf("update ingrediente: %w", err)
	}
	*ing = *stored
	return true, nil
}

// Delete borra y devuelve la fila. Si otra tabla la referencia devuelve domain.ErrConflict.
func (r *IngredientRepo) Delete(ctx context.Context, id int64) (*entity.Ingredient, error) {
	i, err := scanIngredient(r.q.QueryRow(ctx,
		`DELETE FROM ingredientes WHERE id = $1 RETURNING `+ingredientColumns, id))
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, nil
		}
		if isForeignKeyViolation(err) {
			return nil, domain.ErrConflict
		}
		return nil, fmt.Errorf("delete ingrediente: %w", err)
	}
	return i, nil
}
