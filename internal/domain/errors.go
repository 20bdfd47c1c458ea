package domain

import "errors"

// Errores de dominio (sin dependencias externas).
var (
	ErrInvalidInput    = errors.New("entrada inválida")
	ErrExtraction      = errors.New("no se pudo extraer el comprobante")
	ErrResourceMissing = errors.New("recurso gráfico no disponible")
	ErrCanvasWrite     = errors.New("no se pudo escribir el documento")
	ErrDocumentTimeout = errors.New("tiempo de procesamiento agotado")
	ErrUnknownProfile  = errors.New("perfil de impresión desconocido")
)
