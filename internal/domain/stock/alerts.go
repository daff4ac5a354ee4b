// Package stock contiene las reglas de alerta de inventario (servicio de dominio puro):
// nivel de stock contra el punto de reposición y ventana de vencimiento.
package stock

import (
	"math"
	"time"

	"github.com/jhoicas/stockmanager/internal/domain/entity"
)

// Kind tipo de alerta. Las alertas de stock y de vencimiento son independientes.
type Kind string

const (
	KindZeroStock    Kind = "estoque_zerado"
	KindLowStock     Kind = "estoque_baixo"
	KindExpired      Kind = "vencido"
	KindExpiringSoon Kind = "validade_proxima"
)

// Severity gravedad de una alerta (por tipo de alerta, no combinada).
type Severity string

const (
	SeverityCritical Severity = "critical"
	SeverityWarning  Severity = "warning"
	SeverityDanger   Severity = "danger"
)

// Alert resultado de evaluar un ingrediente. DaysLeft solo se informa en alertas de vencimiento.
type Alert struct {
	Kind     Kind
	Severity Severity
	DaysLeft *int
}

// Policy umbrales de la evaluación.
type Policy struct {
	ExpiryWindowDays int
}

// DefaultPolicy avisa de vencimiento con 3 días de antelación.
var DefaultPolicy = Policy{ExpiryWindowDays: 3}

const day = 24 * time.Hour

// Evaluate aplica DefaultPolicy.
func Evaluate(ing entity.Ingredient, now time.Time) []Alert {
	return DefaultPolicy.Evaluate(ing, now)
}

// Evaluate devuelve cero, una o dos alertas: como máximo una de stock y una de vencimiento.
//
//	stock:       quantidade == 0 -> estoque_zerado; quantidade <= mínima -> estoque_baixo
//	vencimiento: diffDays <= 0 -> vencido; diffDays <= ventana -> validade_proxima
func (p Policy) Evaluate(ing entity.Ingredient, now time.Time) []Alert {
	alerts := make([]Alert, 0, 2)

	switch {
	case ing.Quantidade.IsZero():
		alerts = append(alerts, Alert{Kind: KindZeroStock, Severity: SeverityCritical})
	case ing.Quantidade.LessThanOrEqual(ing.QuantidadeMinima):
		alerts = append(alerts, Alert{Kind: KindLowStock, Severity: SeverityWarning})
	}

	if ing.Validade != nil {
		days := DaysUntil(*ing.Validade, now)
		switch {
		case days <= 0:
			alerts = append(alerts, Alert{Kind: KindExpired, Severity: SeverityDanger, DaysLeft: &days})
		case days <= p.ExpiryWindowDays:
			alerts = append(alerts, Alert{Kind: KindExpiringSoon, Severity: SeverityWarning, DaysLeft: &days})
		}
	}
	return alerts
}

// DaysUntil calcula ceil((vencimiento - now) / 1 día). La fecha de vencimiento se toma a
// medianoche en la zona horaria de now.
func DaysUntil(expiry, now time.Time) int {
	y, m, d := expiry.Date()
	midnight := time.Date(y, m, d, 0, 0, 0, 0, now.Location())
	return int(math.Ceil(float64(midnight.Sub(now)) / float64(day)))
}

// HasKind indica si alguna alerta es del tipo dado.
func HasKind(alerts []Alert, k Kind) bool {
	for _, a := range alerts {
		if a.Kind == k {
			return true
		}
	}
	return false
}

// Summary cuenta alertas por tipo. Siempre incluye los cuatro tipos (en cero si no hay).
func Summary(alerts ...[]Alert) map[Kind]int {
	out := map[Kind]int{
		KindZeroStock:    0,
		KindLowStock:     0,
		KindExpired:      0,
		KindExpiringSoon: 0,
	}
	for _, list := range alerts {
		for _, a := range list {
			out[a.Kind]++
		}
	}
	return out
}

// Kinds orden estable de los tipos de alerta (reportes y métricas).
func Kinds() []Kind {
	return []Kind{KindZeroStock, KindLowStock, KindExpired, KindExpiringSoon}
}
