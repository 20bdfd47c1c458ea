package layout_test

import (
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/jhoicas/ticketera/internal/domain/layout"
)

var wrapSamples = []string{
	"ARROZ SUPERIOR COSTEÑO 5KG",
	"  AZÚCAR   RUBIA\tCARTAVIO \n BOLSA 1KG ",
	"LECHE EVAPORADA GLORIA TARRO GRANDE 400G PAQUETE X 6 UNIDADES",
	"UNA",
	"PALABRAEXTREMADAMENTELARGAQUENOCABE corta",
}

func TestLineWrapper_TextoVacioDevuelveUnaLinea(t *testing.T) {
	w := layout.NewLineWrapper(layout.MetricMeasurer{})
	f := layout.Font(layout.Regular, 7)
	assert.Equal(t, []string{""}, w.Wrap("", 20, f))
	assert.Equal(t, []string{""}, w.Wrap("   \t ", 20, f))
}

func TestLineWrapper_PalabraLargaNoSeParte(t *testing.T) {
	w := layout.NewLineWrapper(layout.MetricMeasurer{})
	f := layout.Font(layout.Regular, 7)
	lines := w.Wrap("PALABRAEXTREMADAMENTELARGAQUENOCABE corta", 10, f)
	require.Len(t, lines, 2)
	assert.Equal(t, "PALABRAEXTREMADAMENTELARGAQUENOCABE", lines[0])
	assert.Equal(t, "corta", lines[1])
}

func TestLineWrapper_ReunirLineasRecuperaElTexto(t *testing.T) {
	w := layout.NewLineWrapper(layout.MetricMeasurer{})
	f := layout.Font(layout.Regular, 7)
	for _, text := range wrapSamples {
		for _, width := range []float64{5, 12, 18, 30, 80} {
			lines := w.Wrap(text, width, f)
			assert.Equal(t, strings.Join(strings.Fields(text), " "), strings.Join(lines, " "), "texto %q ancho %.0f", text, width)
		}
	}
}

func TestLineWrapper_CadaLineaCabeSalvoPalabraUnica(t *testing.T) {
	m := layout.MetricMeasurer{}
	w := layout.NewLineWrapper(m)
	f := layout.Font(layout.Regular, 7)
	for _, text := range wrapSamples {
		for _, width := range []float64{5, 12, 18, 30} {
			for _, line := range w.Wrap(text, width, f) {
				if strings.Contains(line, " ") {
					assert.LessOrEqual(t, m.Measure(line, f), width, "línea %q", line)
				}
			}
		}
	}
}

func TestLineWrapper_LlamadasIndependientes(t *testing.T) {
	w := layout.NewLineWrapper(layout.MetricMeasurer{})
	f := layout.Font(layout.Regular, 7)
	first := w.Wrap("ARROZ SUPERIOR COSTEÑO 5KG", 18, f)
	first[0] = "modificado"
	second := w.Wrap("ARROZ SUPERIOR COSTEÑO 5KG", 18, f)
	assert.Equal(t, "ARROZ", second[0])
}
