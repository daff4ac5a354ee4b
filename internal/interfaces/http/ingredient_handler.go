package http

import (
	"strconv"

	"github.com/gofiber/fiber/v2"

	"github.com/jhoicas/stockmanager/internal/application/dto"
	"github.com/jhoicas/stockmanager/internal/application/usecase"
)

// OperationRecorder cuenta escrituras exitosas (métricas). Opcional.
type OperationRecorder interface {
	RecordOperation(op string)
}

// IngredientHandler maneja las peticiones HTTP de /ingredientes.
type IngredientHandler struct {
	uc     *usecase.IngredientUseCase
	prefix string
	ops    OperationRecorder
}

// NewIngredientHandler construye el handler. prefix es el montaje de la API ("" o "/api").
func NewIngredientHandler(uc *usecase.IngredientUseCase, prefix string, ops OperationRecorder) *IngredientHandler {
	return &IngredientHandler{uc: uc, prefix: prefix, ops: ops}
}

func (h *IngredientHandler) record(op string) {
	if h.ops != nil {
		h.ops.RecordOperation(op)
	}
}

// List godoc
// @Summary      Listar ingredientes
// @Tags         ingredientes
// @Produce      json
// @Success      200  {array}   dto.IngredientResponse
// @Failure      500  {object}  dto.ErrorResponse
// @Router       /ingredientes [get]
func (h *IngredientHandler) List(c *fiber.Ctx) error {
	out, err := h.uc.List(c.UserContext())
	if err != nil {
		return respondError(c, err, "Erro ao buscar ingredientes")
	}
	return c.JSON(out)
}

// GetByID godoc
// @Summary      Obtener ingrediente por ID
// @Tags         ingredientes
// @Produce      json
// @Param        id   path  int  true  "ID del ingrediente"
// @Success      200  {object}  dto.IngredientDetailResponse
// @Failure      400  {object}  dto.ErrorResponse
// @Failure      404  {object}  dto.ErrorResponse
// @Failure      500  {object}  dto.ErrorResponse
// @Router       /ingredientes/{id} [get]
func (h *IngredientHandler) GetByID(c *fiber.Ctx) error {
	out, err := h.uc.GetByID(c.UserContext(), c.Params("id"))
	if err != nil {
		return respondError(c, err, "Erro no banco de dados")
	}
	base := h.prefix + "/ingredientes"
	return c.JSON(dto.IngredientDetailResponse{
		IngredientResponse: *out,
		Links: dto.Links{
			Self: base + "/" + strconv.FormatInt(out.ID, 10),
			All:  base,
		},
	})
}

// Create godoc
// @Summary      Crear ingrediente
// @Tags         ingredientes
// @Accept       json
// @Produce      json
// @Param        body  body  dto.IngredientRequest  true  "Datos del ingrediente"
// @Success      200   {object}  dto.IngredientResponse
// @Failure      400   {object}  dto.ErrorResponse
// @Failure      500   {object}  dto.ErrorResponse
// @Router       /ingredientes [post]
func (h *IngredientHandler) Create(c *fiber.Ctx) error {
	var in dto.IngredientRequest
	if err := c.BodyParser(&in); err != nil {
		return invalidBody(c)
	}
	out, err := h.uc.Create(c.UserContext(), in)
	if err != nil {
		return respondError(c, err, "Erro ao adicionar ingrediente")
	}
	h.record("create")
	return c.JSON(out)
}

// UpdateQuantity godoc
// @Summary      Ajustar cantidad
// @Description  Solo cambia la cantidad. Un id inexistente responde updated=false.
// @Tags         ingredientes
// @Accept       json
// @Produce      json
// @Param        id    path  int                        true  "ID del ingrediente"
// @Param        body  body  dto.UpdateQuantityRequest  true  "Nueva cantidad"
// @Success      200   {object}  dto.UpdateQuantityResponse
// @Failure      400   {object}  dto.ErrorResponse
// @Failure      500   {object}  dto.ErrorResponse
// @Router       /ingredientes/{id}/quantidade [put]
func (h *IngredientHandler) UpdateQuantity(c *fiber.Ctx) error {
	var in dto.UpdateQuantityRequest
	if err := c.BodyParser(&in); err != nil {
		return invalidBody(c)
	}
	out, err := h.uc.UpdateQuantity(c.UserContext(), c.Params("id"), in)
	if err != nil {
		return respondError(c, err, "Erro ao atualizar quantidade")
	}
	if out.Updated {
		h.record("update_quantity")
	}
	return c.JSON(out)
}

// Update godoc
// @Summary      Reemplazar ingrediente
// @Tags         ingredientes
// @Accept       json
// @Produce      json
// @Param        id    path  int                    true  "ID del ingrediente"
// @Param        body  body  dto.IngredientRequest  true  "Registro completo"
// @Success      200   {object}  dto.IngredientResponse
// @Failure      400   {object}  dto.ErrorResponse
// @Failure      404   {object}  dto.ErrorResponse
// @Failure      500   {object}  dto.ErrorResponse
// @Router       /ingredientes/{id} [put]
func (h *IngredientHandler) Update(c *fiber.Ctx) error {
	var in dto.IngredientRequest
	if err := c.BodyParser(&in); err != nil {
		return invalidBody(c)
	}
	out, err := h.uc.Update(c.UserContext(), c.Params("id"), in)
	if err != nil {
		return respondError(c, err, "Erro ao atualizar ingrediente")
	}
	h.record("update")
	return c.JSON(out)
}

// Delete godoc
// @Summary      Eliminar ingrediente
// @Tags         ingredientes
// @Produce      json
// @Param        id   path  int  true  "ID del ingrediente"
// @Success      200  {object}  dto.DeleteIngredientResponse
// @Failure      400  {object}  dto.ErrorResponse
// @Failure      404  {object}  dto.ErrorResponse
// @Failure      409  {object}  dto.ErrorResponse
// @Failure      500  {object}  dto.ErrorResponse
// @Router       /ingredientes/{id} [delete]
func (h *IngredientHandler) Delete(c *fiber.Ctx) error {
	out, err := h.uc.Delete(c.UserContext(), c.Params("id"))
	if err != nil {
		return respondError(c, err, "Erro no servidor")
	}
	h.record("delete")
	return c.JSON(out)
}
