package domain

import "errors"

// Errores de dominio (sin dependencias externas).
var (
	ErrNotFound      = errors.New("recurso no encontrado")
	ErrInvalidInput  = errors.New("entrada inválida")
	ErrUnknownCity   = errors.New("municipio no encontrado en el catálogo")
	ErrUnknownNation = errors.New("nación no encontrada en el catálogo")
	ErrCatalogEmpty  = errors.New("catálogo de municipios o naciones vacío")
)
