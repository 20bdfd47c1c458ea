package receipt

import (
	"github.com/jhoicas/ticketera/internal/domain/entity"
	"github.com/jhoicas/ticketera/internal/domain/layout"
)

// RecordExtractor convierte el XML de un comprobante en InvoiceRecord.
// Implementado por infrastructure/ubl.
type RecordExtractor interface {
	Extract(data []byte) (entity.InvoiceRecord, error)
	// Validate devuelve advertencias (nil si no hay); nunca impide imprimir.
	Validate(rec entity.InvoiceRecord) error
}

// CanvasFactory crea un lienzo nuevo por comprobante. Los lienzos no se
// comparten entre documentos.
type CanvasFactory interface {
	NewCanvas(title string) layout.Canvas
}

// CanvasFactoryFunc adapta una función a CanvasFactory.
type CanvasFactoryFunc func(title string) layout.Canvas

// NewCanvas implementa CanvasFactory.
func (f CanvasFactoryFunc) NewCanvas(title string) layout.Canvas { return f(title) }

// DocumentStore acceso a los archivos del lote. Implementado por infrastructure/storage.
type DocumentStore interface {
	List(dir, ext string) ([]string, error)
	Read(path string) ([]byte, error)
	Write(path string, data []byte) error
	Exists(path string) bool
	OutputPath(dir, input, ext string) string
}
