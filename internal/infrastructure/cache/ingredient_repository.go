// Package cache decora el repositorio de ingredientes con cache-aside en Redis.
// Un fallo de Redis nunca falla la operación: se registra y se va a la base.
package cache

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"time"

	"github.com/shopspring/decimal"

	"github.com/jhoicas/stockmanager/internal/domain/entity"
	"github.com/jhoicas/stockmanager/internal/domain/repository"
	"github.com/jhoicas/stockmanager/pkg/logger"
)

const (
	listKey      = "ingredientes:lista"
	ingredientFn = "ingredientes:%d"
)

var _ repository.IngredientRepository = (*IngredientRepository)(nil)

// IngredientRepository lecturas desde caché, escrituras a la base con invalidación.
type IngredientRepository struct {
	next  repository.IngredientRepository
	cache Client
	ttl   time.Duration
	log   *logger.Logger
}

// NewIngredientRepository envuelve next. log puede ser nil.
func NewIngredientRepository(next repository.IngredientRepository, c Client, ttl time.Duration, log *logger.Logger) *IngredientRepository {
	if log == nil {
		log = logger.Nop()
	}
	return &IngredientRepository{next: next, cache: c, ttl: ttl, log: log.Named("cache")}
}

func ingredientKey(id int64) string { return fmt.Sprintf(ingredientFn, id) }

func (r *IngredientRepository) List(ctx context.Context) ([]*entity.Ingredient, error) {
	var list []*entity.Ingredient
	if r.load(ctx, listKey, &list) {
		return list, nil
	}
	list, err := r.next.List(ctx)
	if err != nil {
		return nil, err
	}
	r.store(ctx, listKey, list)
	return list, nil
}

func (r *IngredientRepository) GetByID(ctx context.Context, id int64) (*entity.Ingredient, error) {
	key := ingredientKey(id)
	var ing entity.Ingredient
	if r.load(ctx, key, &ing) {
		return &ing, nil
	}
	found, err := r.next.GetByID(ctx, id)
	if err != nil || found == nil {
		return found, err
	}
	r.store(ctx, key, found)
	return found, nil
}

func (r *IngredientRepository) Create(ctx context.Context, ing *entity.Ingredient) error {
	if err := r.next.Create(ctx, ing); err != nil {
		return err
	}
	r.invalidate(ctx, listKey)
	return nil
}

func (r *IngredientRepository) UpdateQuantity(ctx context.Context, id int64, q decimal.Decimal) (bool, error) {
	ok, err := r.next.UpdateQuantity(ctx, id, q)
	if err == nil && ok {
		r.invalidate(ctx, listKey, ingredientKey(id))
	}
	return ok, err
}

func (r *IngredientRepository) Update(ctx context.Context, ing *entity.Ingredient) (bool, error) {
	ok, err := r.next.Update(ctx, ing)
	if err == nil && ok {
		r.invalidate(ctx, listKey, ingredientKey(ing.ID))
	}
	return ok, err
}

func (r *IngredientRepository) Delete(ctx context.Context, id int64) (*entity.Ingredient, error) {
	deleted, err := r.next.Delete(ctx, id)
	if err == nil && deleted != nil {
		r.invalidate(ctx, listKey, ingredientKey(id))
	}
	return deleted, err
}

func (r *IngredientRepository) load(ctx context.Context, key string, dst interface{}) bool {
	raw, err := r.cache.Get(ctx, key)
	if err != nil {
		if !errors.Is(err, ErrCacheMiss) {
			r.log.Warn().Err(err).Str("key", key).Msg("lectura de caché fallida")
		}
		return false
	}
	if err := json.Unmarshal([]byte(raw), dst); err != nil {
		r.log.Warn().Err(err).Str("key", key).Msg("entrada de caché corrupta")
		r.invalidate(ctx, key)
		return false
	}
	return true
}

func (r *IngredientRepository) store(ctx context.Context, key string, v interface{}) {
	raw, err := json.Marshal(v)
	if err != nil {
		r.log.Warn().Err(err).Str("key", key).Msg("serialización para caché fallida")
		return
	}
	if err := r.cache.Set(ctx, key, raw, r.ttl); err != nil {
		r.log.Warn().Err(err).Str("key", key).Msg("escritura de caché fallida")
	}
}

func (r *IngredientRepository) invalidate(ctx context.Context, keys ...string) {
	if err := r.cache.Delete(ctx, keys...); err != nil {
		r.log.Warn().Err(err).Strs("keys", keys).Msg("invalidación de caché fallida")
	}
}
