package panel

import (
	"context"
	"fmt"
	"time"

	"github.com/jhoicas/stockmanager/internal/application/dto"
)

// ReportGenerator interfaz del generador del relatório (implementada en infrastructure/pdf).
type ReportGenerator interface {
	GenerateStockReport(ctx context.Context, view *dto.PanelResponse) ([]byte, error)
}

// ReportUseCase genera el relatório de estoque en PDF con el mismo contenido que el panel.
type ReportUseCase struct {
	panel     *PanelUseCase
	generator ReportGenerator
}

// NewReportUseCase construye el caso de uso.
func NewReportUseCase(panel *PanelUseCase, generator ReportGenerator) *ReportUseCase {
	return &ReportUseCase{panel: panel, generator: generator}
}

// Generate devuelve los bytes del PDF y el nombre de archivo sugerido.
func (uc *ReportUseCase) Generate(ctx context.Context, now time.Time) (pdfBytes []byte, filename string, err error) {
	view, err := uc.panel.Build(ctx, now)
	if err != nil {
		return nil, "", err
	}
	pdfBytes, err = uc.generator.GenerateStockReport(ctx, view)
	if err != nil {
		return nil, "", fmt.Errorf("relatorio: generar pdf: %w", err)
	}
	return pdfBytes, fmt.Sprintf("estoque-%s.pdf", now.Format("20060102")), nil
}
