package domain

import "errors"

// Errores de dominio (sin dependencias externas).
// Los fallos de almacenamiento NO son sentinelas: se propagan envueltos con %w
// desde la capa de infraestructura y nunca se descartan.
var (
	ErrNotFound     = errors.New("recurso no encontrado")
	ErrDuplicate    = errors.New("recurso duplicado")
	ErrInvalidInput = errors.New("entrada inválida")
)
