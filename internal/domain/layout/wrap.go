package layout

import "strings"

// LineWrapper parte texto en líneas que caben en un ancho, de forma voraz.
type LineWrapper struct {
	measurer TextMeasurer
}

// NewLineWrapper crea un LineWrapper sobre el medidor dado.
func NewLineWrapper(m TextMeasurer) *LineWrapper {
	return &LineWrapper{measurer: m}
}

// Wrap agrega palabras a la línea actual mientras su ancho no supere maxWidth.
// Una palabra más ancha que maxWidth queda entera en su propia línea. Un texto
// vacío devuelve exactamente una línea vacía.
func (w *LineWrapper) Wrap(text string, maxWidth float64, font FontSpec) []string {
	words := strings.Fields(text)
	if len(words) == 0 {
		return []string{""}
	}

	lines := make([]string, 0, 2)
	current := words[0]
	for _, word := range words[1:] {
		tentative := current + " " + word
		if w.measurer.Measure(tentative, font) <= maxWidth {
			current = tentative
			continue
		}
		lines = append(lines, current)
		current = word
	}
	return append(lines, current)
}

// Measure expone el medidor subyacente.
func (w *LineWrapper) Measure(text string, font FontSpec) float64 {
	return w.measurer.Measure(text, font)
}
