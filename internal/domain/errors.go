package domain

import "errors"

// Errores de dominio (sin dependencias externas).
var (
	ErrNotFound      = errors.New("recurso no encontrado")
	ErrInvalidInput  = errors.New("entrada inválida")
	ErrUnauthorized  = errors.New("no autorizado")
	ErrForbidden     = errors.New("acceso denegado")
	ErrEmptyPayout   = errors.New("el pesaje no tiene líneas con peso positivo")
	ErrNegativePrice = errors.New("el precio no puede ser negativo")
)
