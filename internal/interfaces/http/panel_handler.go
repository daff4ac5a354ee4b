package http

import (
	"fmt"
	"time"

	"github.com/gofiber/fiber/v2"

	"github.com/jhoicas/stockmanager/internal/application/panel"
)

// PanelHandler sirve el panel de stock y su versión PDF.
type PanelHandler struct {
	panel  *panel.PanelUseCase
	report *panel.ReportUseCase
	now    func() time.Time
}

// NewPanelHandler now puede ser nil (time.Now).
func NewPanelHandler(p *panel.PanelUseCase, r *panel.ReportUseCase, now func() time.Time) *PanelHandler {
	if now == nil {
		now = time.Now
	}
	return &PanelHandler{panel: p, report: r, now: now}
}

// Panel godoc
// @Summary      Panel de stock
// @Description  Filas con alertas, clases CSS y ajustes rápidos; banner consolidado y resumo por tipo.
// @Tags         painel
// @Produce      json
// @Success      200  {object}  dto.PanelResponse
// @Failure      500  {object}  dto.ErrorResponse
// @Router       /painel [get]
func (h *PanelHandler) Panel(c *fiber.Ctx) error {
	out, err := h.panel.Build(c.UserContext(), h.now())
	if err != nil {
		return respondError(c, err, "Erro ao montar o painel")
	}
	return c.JSON(out)
}

// Report godoc
// @Summary      Relatório de estoque (PDF)
// @Tags         painel
// @Produce      application/pdf
// @Success      200  {file}    binary
// @Failure      500  {object}  dto.ErrorResponse
// @Router       /relatorio.pdf [get]
func (h *PanelHandler) Report(c *fiber.Ctx) error {
	pdfBytes, filename, err := h.report.Generate(c.UserContext(), h.now())
	if err != nil {
		return respondError(c, err, "Erro ao gerar relatório")
	}
	c.Set(fiber.HeaderContentType, "application/pdf")
	c.Set(fiber.HeaderContentDisposition, fmt.Sprintf(`inline; filename="%s"`, filename))
	return c.Send(pdfBytes)
}
