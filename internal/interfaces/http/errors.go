package http

import (
	"errors"
	"fmt"
	"strconv"
	"strings"
	"time"

	"github.com/gofiber/fiber/v2"
	"github.com/rs/zerolog/log"

	"github.com/jhoicas/stockmanager/internal/application/dto"
	"github.com/jhoicas/stockmanager/internal/domain"
)

// timestampLayout ISO 8601 en UTC con milisegundos.
const timestampLayout = "2006-01-02T15:04:05.000Z"

// respondError traduce un error de dominio a su respuesta HTTP. title encabeza los 500.
func respondError(c *fiber.Ctx, err error, title string) error {
	var in *domain.InputError
	switch {
	case errors.As(err, &in):
		t := in.Title
		if t == "" {
			t = "Dados inválidos"
		}
		return c.Status(fiber.StatusBadRequest).JSON(dto.ErrorResponse{Code: "INVALID_INPUT", Error: t, Message: in.Msg})
	case errors.Is(err, domain.ErrInvalidInput):
		return c.Status(fiber.StatusBadRequest).JSON(dto.ErrorResponse{
			Code: "INVALID_INPUT", Error: "Dados inválidos", Message: "quantidades não podem ser negativas",
		})
	case errors.Is(err, domain.ErrNotFound):
		return c.Status(fiber.StatusNotFound).JSON(dto.ErrorResponse{
			Code:    "NOT_FOUND",
			Error:   "Não encontrado",
			Message: fmt.Sprintf("Nenhum ingrediente encontrado com o ID %s", displayID(c.Params("id"))),
		})
	case errors.Is(err, domain.ErrConflict):
		return c.Status(fiber.StatusConflict).JSON(dto.ErrorResponse{
			Code: "CONFLICT", Error: "Conflito", Message: "Este ingrediente não pode ser removido pois está em uso",
		})
	}

	reqID := RequestIDFrom(c)
	log.Error().Err(err).
		Str("request_id", reqID).
		Str("method", c.Method()).
		Str("path", c.Path()).
		Msg(title)
	return c.Status(fiber.StatusInternalServerError).JSON(dto.ErrorResponse{
		Code:      "INTERNAL",
		Error:     title,
		RequestID: reqID,
		Timestamp: time.Now().UTC().Format(timestampLayout),
	})
}

// displayID normaliza el id de la ruta ("001", "+1" -> "1"); si no es un int64 lo deja tal cual.
func displayID(raw string) string {
	raw = strings.TrimSpace(raw)
	if id, err := strconv.ParseInt(raw, 10, 64); err == nil {
		return strconv.FormatInt(id, 10)
	}
	return raw
}

func invalidBody(c *fiber.Ctx) error {
	return c.Status(fiber.StatusBadRequest).JSON(dto.ErrorResponse{
		Code: "INVALID_BODY", Error: "Dados inválidos", Message: "corpo JSON inválido",
	})
}

// ErrorHandler manejador de errores de fiber: rutas inexistentes, pánicos recuperados, etc.
func ErrorHandler(c *fiber.Ctx, err error) error {
	code := fiber.StatusInternalServerError
	var fe *fiber.Error
	if errors.As(err, &fe) {
		code = fe.Code
	}
	switch code {
	case fiber.StatusNotFound:
		return c.Status(code).JSON(dto.ErrorResponse{Code: "ROUTE_NOT_FOUND", Error: "Não encontrado", Message: fe.Message})
	case fiber.StatusMethodNotAllowed:
		return c.Status(code).JSON(dto.ErrorResponse{Code: "METHOD_NOT_ALLOWED", Error: "Método não permitido"})
	}
	if code < fiber.StatusInternalServerError {
		return c.Status(code).JSON(dto.ErrorResponse{Code: "HTTP_ERROR", Error: err.Error()})
	}
	return respondError(c, err, "Erro no servidor")
}
