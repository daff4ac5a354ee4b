package http

import (
	"time"

	"github.com/gofiber/fiber/v2"

	"github.com/jhoicas/stockmanager/internal/application/panel"
	"github.com/jhoicas/stockmanager/internal/application/usecase"
)

// RouterDeps dependencias para el router.
type RouterDeps struct {
	IngredientUC *usecase.IngredientUseCase
	PanelUC      *panel.PanelUseCase
	ReportUC     *panel.ReportUseCase
	Health       *HealthHandler
	Metrics      fiber.Handler     // GET /metrics; nil lo omite
	Operations   OperationRecorder // opcional
	APIPrefix    string            // "" o "/api"
	Now          func() time.Time  // nil: time.Now
}

// Router registra las rutas de la API.
func Router(app *fiber.App, deps RouterDeps) {
	if deps.Health != nil {
		app.Get("/health", deps.Health.Health)
	}
	if deps.Metrics != nil {
		app.Get("/metrics", deps.Metrics)
	}

	var api fiber.Router = app
	if deps.APIPrefix != "" {
		api = app.Group(deps.APIPrefix)
	}

	// Ingredientes
	ingredientes := api.Group("/ingredientes", JSONContent())
	ingredientHandler := NewIngredientHandler(deps.IngredientUC, deps.APIPrefix, deps.Operations)
	ingredientes.Get("/", ingredientHandler.List)
	ingredientes.Post("/", ingredientHandler.Create)
	ingredientes.Get("/:id", ingredientHandler.GetByID)
	ingredientes.Put("/:id/quantidade", ingredientHandler.UpdateQuantity)
	ingredientes.Put("/:id", ingredientHandler.Update)
	ingredientes.Delete("/:id", ingredientHandler.Delete)

	// Panel y relatório
	panelHandler := NewPanelHandler(deps.PanelUC, deps.ReportUC, deps.Now)
	api.Get("/painel", JSONContent(), panelHandler.Panel)
	api.Get("/relatorio.pdf", panelHandler.Report)
}
