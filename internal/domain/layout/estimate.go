package layout

import "github.com/jhoicas/ticketera/internal/domain/entity"

// HeightEstimator calcula el alto del comprobante sin dibujar, sumando el
// mismo plan que luego recorre el renderizador.
type HeightEstimator struct {
	planner *Planner
}

// NewHeightEstimator crea el estimador sobre el planificador compartido.
func NewHeightEstimator(pl *Planner) *HeightEstimator {
	return &HeightEstimator{planner: pl}
}

// Estimate alto total en mm, siempre positivo.
func (e *HeightEstimator) Estimate(rec entity.InvoiceRecord) float64 {
	return e.planner.Plan(rec).Height()
}
