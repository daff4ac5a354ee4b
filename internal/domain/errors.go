package domain

import "errors"

// Errores de dominio (sin dependencias externas).
var (
	ErrNotFound     = errors.New("recurso no encontrado")
	ErrInvalidInput = errors.New("entrada inválida")
	ErrConflict     = errors.New("conflicto con el estado actual")
)

// InputError entrada inválida con un mensaje apto para el cliente. errors.Is(err, ErrInvalidInput) es true.
type InputError struct {
	Title string // vacío: título genérico de validación
	Msg   string
}

func (e *InputError) Error() string { return e.Msg }

func (e *InputError) Is(target error) bool { return target == ErrInvalidInput }

// InvalidInput construye un InputError.
func InvalidInput(msg string) error {
	return &InputError{Msg: msg}
}

// InvalidID InputError para identificadores de ruta mal formados.
func InvalidID(msg string) error {
	return &InputError{Title: "ID inválido", Msg: msg}
}
