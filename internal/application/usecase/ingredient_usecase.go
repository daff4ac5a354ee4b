package usecase

import (
	"context"
	"errors"
	"fmt"
	"strconv"
	"strings"
	"time"

	"github.com/shopspring/decimal"

	"github.com/jhoicas/stockmanager/internal/application/dto"
	"github.com/jhoicas/stockmanager/internal/domain"
	"github.com/jhoicas/stockmanager/internal/domain/entity"
	"github.com/jhoicas/stockmanager/internal/domain/repository"
)

const (
	msgQuantityUpdated   = "Quantidade atualizada"
	msgNothingChanged    = "Nenhum registro alterado"
	msgIngredientRemoved = "Ingrediente removido com sucesso"
)

// Las columnas son NUMERIC(12, 3).
const quantityScale = 3

var quantityLimit = decimal.New(1, 9)

// IngredientUseCase casos de uso CRUD de ingredientes.
type IngredientUseCase struct {
	repo repository.IngredientRepository
}

// NewIngredientUseCase construye el caso de uso.
func NewIngredientUseCase(repo repository.IngredientRepository) *IngredientUseCase {
	return &IngredientUseCase{repo: repo}
}

// ParseID valida un id de ruta: entero positivo.
func ParseID(raw string) (int64, error) {
	id, err := strconv.ParseInt(strings.TrimSpace(raw), 10, 64)
	if err != nil || id <= 0 {
		return 0, domain.InvalidID("O ID deve ser um número positivo")
	}
	return id, nil
}

// List devuelve todos los ingredientes ordenados por nombre (nunca nil).
func (uc *IngredientUseCase) List(ctx context.Context) ([]dto.IngredientResponse, error) {
	list, err := uc.repo.List(ctx)
	if err != nil {
		return nil, err
	}
	out := make([]dto.IngredientResponse, 0, len(list))
	for _, i := range list {
		out = append(out, ToIngredientResponse(i))
	}
	return out, nil
}

// GetByID obtiene un ingrediente. Un id inválido no llega al repositorio.
func (uc *IngredientUseCase) GetByID(ctx context.Context, rawID string) (*dto.IngredientResponse, error) {
	id, err := ParseID(rawID)
	if err != nil {
		return nil, err
	}
	ing, err := uc.repo.GetByID(ctx, id)
	if err != nil {
		return nil, err
	}
	if ing == nil {
		return nil, domain.ErrNotFound
	}
	out := ToIngredientResponse(ing)
	return &out, nil
}

// Create valida y persiste un ingrediente nuevo; id y fecha los asigna la base.
func (uc *IngredientUseCase) Create(ctx context.Context, in dto.IngredientRequest) (*dto.IngredientResponse, error) {
	ing, err := toIngredient(in)
	if err != nil {
		return nil, err
	}
	if err := uc.repo.Create(ctx, ing); err != nil {
		return nil, err
	}
	out := ToIngredientResponse(ing)
	return &out, nil
}

// UpdateQuantity ajusta solo la cantidad. Si el id no existe responde updated=false sin error.
func (uc *IngredientUseCase) UpdateQuantity(ctx context.Context, rawID string, in dto.UpdateQuantityRequest) (*dto.UpdateQuantityResponse, error) {
	id, err := ParseID(rawID)
	if err != nil {
		return nil, err
	}
	if in.Quantidade == nil {
		return nil, domain.InvalidInput("quantidade é obrigatória")
	}
	if err := checkQuantity("quantidade", *in.Quantidade); err != nil {
		return nil, err
	}
	updated, err := uc.repo.UpdateQuantity(ctx, id, *in.Quantidade)
	if err != nil {
		return nil, err
	}
	msg := msgNothingChanged
	if updated {
		msg = msgQuantityUpdated
	}
	return &dto.UpdateQuantityResponse{Updated: updated, Message: msg}, nil
}

// Update reemplaza el registro completo. ErrNotFound si el id no existe.
func (uc *IngredientUseCase) Update(ctx context.Context, rawID string, in dto.IngredientRequest) (*dto.IngredientResponse, error) {
	id, err := ParseID(rawID)
	if err != nil {
		return nil, err
	}
	ing, err := toIngredient(in)
	if err != nil {
		return nil, err
	}
	ing.ID = id
	found, err := uc.repo.Update(ctx, ing)
	if err != nil {
		return nil, err
	}
	if !found {
		return nil, domain.ErrNotFound
	}
	out := ToIngredientResponse(ing)
	return &out, nil
}

// Delete verifica que exista y lo borra. ErrConflict si sigue referenciado.
func (uc *IngredientUseCase) Delete(ctx context.Context, rawID string) (*dto.DeleteIngredientResponse, error) {
	id, err := strconv.ParseInt(strings.TrimSpace(rawID), 10, 64)
	if errors.Is(err, strconv.ErrRange) {
		// numérico pero fuera de int64: ninguna fila puede tenerlo
		return nil, domain.ErrNotFound
	}
	if err != nil {
		return nil, domain.InvalidID("O ID deve ser um número")
	}
	existing, err := uc.repo.GetByID(ctx, id)
	if err != nil {
		return nil, err
	}
	if existing == nil {
		return nil, domain.ErrNotFound
	}
	deleted, err := uc.repo.Delete(ctx, id)
	if err != nil {
		return nil, err
	}
	if deleted == nil {
		// borrado concurrente entre la verificación y el DELETE
		return nil, domain.ErrNotFound
	}
	return &dto.DeleteIngredientResponse{
		Success:           true,
		DeletedIngredient: ToIngredientResponse(deleted),
		Message:           msgIngredientRemoved,
	}, nil
}

func toIngredient(in dto.IngredientRequest) (*entity.Ingredient, error) {
	nome := strings.TrimSpace(in.Nome)
	unidade := strings.TrimSpace(in.Unidade)
	switch {
	case nome == "":
		return nil, domain.InvalidInput("nome é obrigatório")
	case in.Quantidade == nil:
		return nil, domain.InvalidInput("quantidade é obrigatória")
	case unidade == "":
		return nil, domain.InvalidInput("unidade é obrigatória")
	case in.QuantidadeMinima == nil:
		return nil, domain.InvalidInput("quantidade_minima é obrigatória")
	}
	if err := checkQuantity("quantidade", *in.Quantidade); err != nil {
		return nil, err
	}
	if err := checkQuantity("quantidade_minima", *in.QuantidadeMinima); err != nil {
		return nil, err
	}

	validade, err := ParseDate(in.Validade)
	if err != nil {
		return nil, err
	}

	return &entity.Ingredient{
		Nome:             nome,
		Quantidade:       *in.Quantidade,
		Unidade:          unidade,
		QuantidadeMinima: *in.QuantidadeMinima,
		Validade:         validade,
		Fornecedor:       optionalString(in.Fornecedor),
	}, nil
}

// checkQuantity rechaza lo que la columna no puede guardar tal cual: negativos, más de 3
// decimales (se redondearían) y valores de 1e9 en adelante.
func checkQuantity(field string, q decimal.Decimal) error {
	switch {
	case q.IsNegative():
		return domain.InvalidInput(field + " não pode ser negativa")
	case !q.Equal(q.Truncate(quantityScale)):
		return domain.InvalidInput(fmt.Sprintf("%s admite no máximo %d casas decimais", field, quantityScale))
	case q.GreaterThanOrEqual(quantityLimit):
		return domain.InvalidInput(field + " deve ser menor que 1.000.000.000")
	}
	return nil
}

// ParseDate interpreta "YYYY-MM-DD" (o un timestamp ISO, del que se toma la fecha).
// nil o cadena vacía significan "sin validade".
func ParseDate(s *string) (*time.Time, error) {
	if s == nil {
		return nil, nil
	}
	raw := strings.TrimSpace(*s)
	if raw == "" {
		return nil, nil
	}
	if len(raw) > len(dto.DateLayout) && raw[len(dto.DateLayout)] == 'T' {
		raw = raw[:len(dto.DateLayout)]
	}
	t, err := time.Parse(dto.DateLayout, raw)
	if err != nil {
		return nil, domain.InvalidInput(fmt.Sprintf("validade inválida %q: use AAAA-MM-DD", *s))
	}
	return &t, nil
}

func optionalString(s *string) *string {
	if s == nil {
		return nil
	}
	v := strings.TrimSpace(*s)
	if v == "" {
		return nil
	}
	return &v
}

// ToIngredientResponse mapea la entidad al DTO de salida.
func ToIngredientResponse(i *entity.Ingredient) dto.IngredientResponse {
	var validade *string
	if i.Validade != nil {
		v := i.Validade.Format(dto.DateLayout)
		validade = &v
	}
	return dto.IngredientResponse{
		ID:                i.ID,
		Nome:              i.Nome,
		Quantidade:        i.Quantidade,
		Unidade:           i.Unidade,
		QuantidadeMinima:  i.QuantidadeMinima,
		Validade:          validade,
		Fornecedor:        i.Fornecedor,
		UltimaAtualizacao: i.UltimaAtualizacao,
	}
}
