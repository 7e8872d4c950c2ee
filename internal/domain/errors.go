package domain

import "errors"

// Errores de dominio (sin dependencias externas).
var (
	ErrInvalidInput  = errors.New("entrada inválida")
	ErrNotFound      = errors.New("recurso no encontrado")
	ErrURLTooLong    = errors.New("la URL de la factura excede el presupuesto de bytes")
	ErrNegativeTotal = errors.New("el total de la factura es negativo")
)
