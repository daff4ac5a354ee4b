package cache_test

import (
	"context"
	"errors"
	"testing"
	"time"

	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/jhoicas/stockmanager/internal/domain/entity"
	"github.com/jhoicas/stockmanager/internal/infrastructure/cache"
)

type memClient struct {
	data map[string]string
	err  error
}

func newMem() *memClient { return &memClient{data: map[string]string{}} }

func (m *memClient) Get(_ context.Context, key string) (string, error) {
	if m.err != nil {
		return "", m.err
	}
	v, ok := m.data[key]
	if !ok {
		return "", cache.ErrCacheMiss
	}
	return v, nil
}

func (m *memClient) Set(_ context.Context, key string, value interface{}, _ time.Duration) error {
	if m.err != nil {
		return m.err
	}
	m.data[key] = string(value.([]byte))
	return nil
}

func (m *memClient) Delete(_ context.Context, keys ...string) error {
	if m.err != nil {
		return m.err
	}
	for _, k := range keys {
		delete(m.data, k)
	}
	return nil
}

// countingRepo repositorio en memoria que cuenta lecturas.
type countingRepo struct {
	rows   map[int64]*entity.Ingredient
	nextID int64
	lists  int
	gets   int
}

func newRepo() *countingRepo { return &countingRepo{rows: map[int64]*entity.Ingredient{}} }

func (r *countingRepo) List(context.Context) ([]*entity.Ingredient, error) {
	r.lists++
	out := make([]*entity.Ingredient, 0, len(r.rows))
	for id := int64(1); id <= r.nextID; id++ {
		if i, ok := r.rows[id]; ok {
			c := *i
			out = append(out, &c)
		}
	}
	return out, nil
}

func (r *countingRepo) GetByID(_ context.Context, id int64) (*entity.Ingredient, error) {
	r.gets++
	i, ok := r.rows[id]
	if !ok {
		return nil, nil
	}
	c := *i
	return &c, nil
}

func (r *countingRepo) Create(_ context.Context, ing *entity.Ingredient) error {
	r.nextID++
	ing.ID = r.nextID
	ing.UltimaAtualizacao = time.Date(2026, 10, 17, 10, 0, 0, 0, time.UTC)
	c := *ing
	r.rows[ing.ID] = &c
	return nil
}

func (r *countingRepo) UpdateQuantity(_ context.Context, id int64, q decimal.Decimal) (bool, error) {
	i, ok := r.rows[id]
	if !ok {
		return false, nil
	}
	i.Quantidade = q
	return true, nil
}

func (r *countingRepo) Update(_ context.Context, ing *entity.Ingredient) (bool, error) {
	if _, ok := r.rows[ing.ID]; !ok {
		return false, nil
	}
	c := *ing
	r.rows[ing.ID] = &c
	return true, nil
}

func (r *countingRepo) Delete(_ context.Context, id int64) (*entity.Ingredient, error) {
	i, ok := r.rows[id]
	if !ok {
		return nil, nil
	}
	delete(r.rows, id)
	return i, nil
}

func farinha() *entity.Ingredient {
	v := time.Date(2026, 10, 20, 0, 0, 0, 0, time.UTC)
	f := "Moinho Sul"
	return &entity.Ingredient{
		Nome:             "Farinha",
		Quantidade:       decimal.RequireFromString("5.5"),
		Unidade:          "kg",
		QuantidadeMinima: decimal.NewFromInt(2),
		Validade:         &v,
		Fornecedor:       &f,
	}
}

func TestList_SegundaLecturaDesdeCache(t *testing.T) {
	ctx := context.Background()
	inner := newRepo()
	require.NoError(t, inner.Create(ctx, farinha()))
	repo := cache.NewIngredientRepository(inner, newMem(), time.Minute, nil)

	first, err := repo.List(ctx)
	require.NoError(t, err)
	second, err := repo.List(ctx)
	require.NoError(t, err)

	assert.Equal(t, 1, inner.lists)
	require.Len(t, second, 1)
	assert.Equal(t, first[0].Nome, second[0].Nome)
	assert.True(t, first[0].Quantidade.Equal(second[0].Quantidade))
	assert.True(t, first[0].Validade.Equal(*second[0].Validade))
	assert.Equal(t, *first[0].Fornecedor, *second[0].Fornecedor)
}

func TestEscriturasInvalidan(t *testing.T) {
	ctx := context.Background()
	inner := newRepo()
	repo := cache.NewIngredientRepository(inner, newMem(), time.Minute, nil)

	require.NoError(t, repo.Create(ctx, farinha()))
	_, _ = repo.List(ctx)
	_, _ = repo.GetByID(ctx, 1)

	ok, err := repo.UpdateQuantity(ctx, 1, decimal.NewFromInt(9))
	require.NoError(t, err)
	require.True(t, ok)

	got, err := repo.GetByID(ctx, 1)
	require.NoError(t, err)
	assert.True(t, got.Quantidade.Equal(decimal.NewFromInt(9)))
	assert.Equal(t, 2, inner.gets)

	list, err := repo.List(ctx)
	require.NoError(t, err)
	assert.Equal(t, 2, inner.lists)
	assert.True(t, list[0].Quantidade.Equal(decimal.NewFromInt(9)))

	_, err = repo.Delete(ctx, 1)
	require.NoError(t, err)
	got, err = repo.GetByID(ctx, 1)
	require.NoError(t, err)
	assert.Nil(t, got)
}

func TestGetByID_NoCacheaInexistentes(t *testing.T) {
	ctx := context.Background()
	inner := newRepo()
	mem := newMem()
	repo := cache.NewIngredientRepository(inner, mem, time.Minute, nil)

	got, err := repo.GetByID(ctx, 42)
	require.NoError(t, err)
	assert.Nil(t, got)
	assert.Empty(t, mem.data)
}

func TestRedisCaidoNoFallaLaOperacion(t *testing.T) {
	ctx := context.Background()
	inner := newRepo()
	mem := newMem()
	mem.err = errors.New("connection refused")
	repo := cache.NewIngredientRepository(inner, mem, time.Minute, nil)

	require.NoError(t, repo.Create(ctx, farinha()))
	list, err := repo.List(ctx)
	require.NoError(t, err)
	assert.Len(t, list, 1)
	got, err := repo.GetByID(ctx, 1)
	require.NoError(t, err)
	assert.Equal(t, "Farinha", got.Nome)
}

func TestEntradaCorruptaSeDescarta(t *testing.T) {
	ctx := context.Background()
	inner := newRepo()
	require.NoError(t, inner.Create(ctx, farinha()))
	mem := newMem()
	mem.data["ingredientes:1"] = "{no es json"
	repo := cache.NewIngredientRepository(inner, mem, time.Minute, nil)

	got, err := repo.GetByID(ctx, 1)
	require.NoError(t, err)
	assert.Equal(t, "Farinha", got.Nome)
	assert.Equal(t, 1, inner.gets)
}
