// Package sink elige el lienzo de salida según el backend configurado.
package sink

import (
	"fmt"
	"strings"

	"github.com/jhoicas/ticketera/internal/application/receipt"
	"github.com/jhoicas/ticketera/internal/domain"
	"github.com/jhoicas/ticketera/internal/domain/layout"
	"github.com/jhoicas/ticketera/internal/infrastructure/pdf"
	"github.com/jhoicas/ticketera/internal/infrastructure/vector"
)

// Backends soportados.
const (
	BackendFPDF   = "fpdf"
	BackendVector = "vector"
)

// NewFactory devuelve la fábrica de lienzos del backend ("" = fpdf).
func NewFactory(backend, author string) (receipt.CanvasFactory, error) {
	switch strings.ToLower(strings.TrimSpace(backend)) {
	case "", BackendFPDF:
		return receipt.CanvasFactoryFunc(func(title string) layout.Canvas {
			return pdf.NewFPDFCanvas(pdf.Options{Title: title, Author: author})
		}), nil
	case BackendVector:
		return receipt.CanvasFactoryFunc(func(title string) layout.Canvas {
			return vector.New(vector.Options{Title: title, Author: author})
		}), nil
	default:
		return nil, fmt.Errorf("sink: backend %q: %w", backend, domain.ErrInvalidInput)
	}
}
