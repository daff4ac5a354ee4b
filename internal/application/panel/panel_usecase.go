// Package panel arma la vista del panel de stock: filas con alertas, clases CSS,
// botones de ajuste y el banner consolidado.
package panel

import (
	"context"
	"fmt"
	"time"

	"github.com/shopspring/decimal"
	"golang.org/x/text/language"
	"golang.org/x/text/message"
	"golang.org/x/text/number"

	"github.com/jhoicas/stockmanager/internal/application/dto"
	"github.com/jhoicas/stockmanager/internal/application/usecase"
	"github.com/jhoicas/stockmanager/internal/domain/entity"
	"github.com/jhoicas/stockmanager/internal/domain/stock"
)

const (
	ClassZeroStock = "table-warning-critical"
	ClassWarning   = "table-warning"
	ClassExpired   = "table-danger"
)

// Deltas de los botones de ajuste rápido.
var Deltas = []decimal.Decimal{
	decimal.RequireFromString("-0.5"),
	decimal.NewFromInt(-1),
	decimal.NewFromInt(1),
}

// Lister fuente de ingredientes (el repositorio o su decorador con caché).
type Lister interface {
	List(ctx context.Context) ([]*entity.Ingredient, error)
}

// AlertRecorder recibe el conteo de alertas de cada armado del panel (métricas).
type AlertRecorder interface {
	RecordAlerts(counts map[stock.Kind]int)
}

// PanelUseCase construye el panel a partir del listado.
type PanelUseCase struct {
	lister   Lister
	policy   stock.Policy
	recorder AlertRecorder
	printer  *message.Printer
}

// NewPanelUseCase recorder puede ser nil.
func NewPanelUseCase(lister Lister, policy stock.Policy, recorder AlertRecorder) *PanelUseCase {
	return &PanelUseCase{
		lister:   lister,
		policy:   policy,
		recorder: recorder,
		printer:  message.NewPrinter(language.BrazilianPortuguese),
	}
}

// Build evalúa cada ingrediente contra la política vigente en el instante now.
func (uc *PanelUseCase) Build(ctx context.Context, now time.Time) (*dto.PanelResponse, error) {
	list, err := uc.lister.List(ctx)
	if err != nil {
		return nil, err
	}

	out := &dto.PanelResponse{
		Rows:     make([]dto.PanelRowDTO, 0, len(list)),
		Alertas:  []string{},
		GeradoEm: now.Format(time.RFC3339),
	}
	evaluated := make([][]stock.Alert, 0, len(list))

	for _, ing := range list {
		alerts := uc.policy.Evaluate(*ing, now)
		evaluated = append(evaluated, alerts)

		row := dto.PanelRowDTO{
			Ingrediente: usecase.ToIngredientResponse(ing),
			Alertas:     make([]dto.AlertDTO, 0, len(alerts)),
			Classes:     RowClasses(alerts),
			Ajustes:     Adjustments(ing.Quantidade),
			Quantidade:  uc.FormatQuantity(ing.Quantidade, ing.Unidade),
			Minima:      uc.FormatQuantity(ing.QuantidadeMinima, ing.Unidade),
		}
		for _, a := range alerts {
			msg := Message(*ing, a)
			row.Alertas = append(row.Alertas, dto.AlertDTO{
				Tipo:       string(a.Kind),
				Severidade: string(a.Severity),
				Dias:       a.DaysLeft,
				Mensagem:   msg,
			})
			out.Alertas = append(out.Alertas, msg)
		}
		out.Rows = append(out.Rows, row)
	}

	summary := stock.Summary(evaluated...)
	out.Resumo = make(map[string]int, len(summary))
	for k, n := range summary {
		out.Resumo[string(k)] = n
	}
	if uc.recorder != nil {
		uc.recorder.RecordAlerts(summary)
	}
	return out, nil
}

// FormatQuantity "1.234,5 kg".
func (uc *PanelUseCase) FormatQuantity(q decimal.Decimal, unidade string) string {
	n := uc.printer.Sprint(number.Decimal(q.InexactFloat64(), number.MaxFractionDigits(3)))
	if unidade == "" {
		return n
	}
	return n + " " + unidade
}

// RowClasses clases CSS de la fila, sin repetir.
func RowClasses(alerts []stock.Alert) []string {
	classes := make([]string, 0, 2)
	seen := map[string]bool{}
	for _, a := range alerts {
		var c string
		switch a.Kind {
		case stock.KindZeroStock:
			c = ClassZeroStock
		case stock.KindLowStock, stock.KindExpiringSoon:
			c = ClassWarning
		case stock.KindExpired:
			c = ClassExpired
		}
		if c != "" && !seen[c] {
			seen[c] = true
			classes = append(classes, c)
		}
	}
	return classes
}

// Adjustments calcula la cantidad resultante de cada botón. Un ajuste que deja la
// cantidad negativa queda deshabilitado.
func Adjustments(current decimal.Decimal) []dto.AdjustmentDTO {
	out := make([]dto.AdjustmentDTO, 0, len(Deltas))
	for _, d := range Deltas {
		next := current.Add(d)
		out = append(out, dto.AdjustmentDTO{
			Delta:      d,
			Quantidade: next,
			Permitido:  !next.IsNegative(),
		})
	}
	return out
}

// Message texto del banner para una alerta.
func Message(ing entity.Ingredient, a stock.Alert) string {
	switch a.Kind {
	case stock.KindZeroStock:
		return "Sem estoque de " + ing.Nome
	case stock.KindLowStock:
		return "Estoque baixo de " + ing.Nome
	case stock.KindExpired:
		return fmt.Sprintf("ATENÇÃO: %s vencido em %s", ing.Nome, ing.Validade.Format("02/01/2006"))
	case stock.KindExpiringSoon:
		return fmt.Sprintf("Validade próxima: %s vence em %d dia(s)", ing.Nome, *a.DaysLeft)
	}
	return ""
}
