package dto

import "github.com/shopspring/decimal"

func init() {
	// Cantidades como números JSON ({"quantidade": 5}), igual que consume el navegador.
	decimal.MarshalJSONWithoutQuotes = true
}

// ErrorResponse cuerpo de error HTTP. RequestID y Timestamp solo acompañan errores 500.
type ErrorResponse struct {
	Code      string `json:"code"`
	Error     string `json:"error"`
	Message   string `json:"message,omitempty"`
	RequestID string `json:"requestId,omitempty"`
	Timestamp string `json:"timestamp,omitempty"`
}
