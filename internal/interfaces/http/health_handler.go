package http

import (
	"context"
	"time"

	"github.com/gofiber/fiber/v2"
)

// Pinger dependencia verificable (pgxpool.Pool, cliente Redis).
type Pinger interface {
	Ping(ctx context.Context) error
}

// HealthHandler GET /health.
type HealthHandler struct {
	service string
	db      Pinger
}

// NewHealthHandler db puede ser nil (siempre ok).
func NewHealthHandler(service string, db Pinger) *HealthHandler {
	return &HealthHandler{service: service, db: db}
}

// Health godoc
// @Summary      Estado del servicio
// @Tags         health
// @Produce      json
// @Success      200  {object}  map[string]string
// @Failure      503  {object}  map[string]string
// @Router       /health [get]
func (h *HealthHandler) Health(c *fiber.Ctx) error {
	if h.db != nil {
		ctx, cancel := context.WithTimeout(c.UserContext(), 2*time.Second)
		defer cancel()
		if err := h.db.Ping(ctx); err != nil {
			return c.Status(fiber.StatusServiceUnavailable).JSON(fiber.Map{
				"status": "unavailable", "service": h.service, "error": "database unreachable",
			})
		}
	}
	return c.JSON(fiber.Map{"status": "ok", "service": h.service})
}
