package layout

import "unicode/utf8"

// TextMeasurer devuelve el ancho impreso (mm) de un texto en una fuente.
type TextMeasurer interface {
	Measure(text string, font FontSpec) float64
}

// MetricMeasurer suma los avances de la tabla de anchos de la fuente.
// Es la medición de referencia.
type MetricMeasurer struct{}

// Measure suma los anchos por carácter y escala al tamaño de la fuente.
func (MetricMeasurer) Measure(text string, font FontSpec) float64 {
	if text == "" {
		return 0
	}
	table := GlyphTable(font.Family, font.Style)
	units := 0
	for _, r := range text {
		units += table.Width(r)
	}
	return float64(units) * font.Size / UnitsPerEm * PtToMm
}

// HeuristicMeasurer aproxima el ancho por número de caracteres, para entornos
// sin métricas: a 6 pt caben CharsPerMm caracteres por milímetro, y la
// densidad escala en proporción inversa al tamaño.
type HeuristicMeasurer struct {
	CharsPerMm float64
}

// heuristicReferenceSize tamaño (pt) al que se calibró CharsPerMm.
const heuristicReferenceSize = 6.0

// DefaultCharsPerMm densidad de caracteres de la aproximación heredada.
const DefaultCharsPerMm = 2.2

// Measure estima el ancho como caracteres / densidad.
func (h HeuristicMeasurer) Measure(text string, font FontSpec) float64 {
	n := utf8.RuneCountInString(text)
	if n == 0 {
		return 0
	}
	density := h.CharsPerMm
	if density <= 0 {
		density = DefaultCharsPerMm
	}
	size := font.Size
	if size <= 0 {
		size = heuristicReferenceSize
	}
	return float64(n) / density * size / heuristicReferenceSize
}
