package layout_test

import (
	"fmt"
	"testing"

	"github.com/stretchr/testify/require"

	"github.com/jhoicas/ticketera/internal/domain/entity"
	"github.com/jhoicas/ticketera/internal/domain/layout"
)

// fakeImages proveedor de imágenes en memoria.
type fakeImages map[string]layout.Asset

func (f fakeImages) Lookup(name string) (layout.Asset, bool) {
	a, ok := f[name]
	return a, ok
}

func withImages(names ...string) fakeImages {
	f := fakeImages{}
	for _, n := range names {
		f[n] = layout.Asset{Name: n, Data: []byte{0x89, 'P', 'N', 'G'}, AspectRatio: 2}
	}
	return f
}

func mustProfile(name string) layout.Profile {
	p, err := layout.LookupProfile(name)
	if err != nil {
		panic(err)
	}
	return p
}

func mustEngine(p layout.Profile, images layout.ImageProvider) *layout.Engine {
	e, err := layout.NewEngine(p, images)
	if err != nil {
		panic(err)
	}
	return e
}

// buildRecord factura de prueba con n líneas de detalle.
func buildRecord(n int) entity.InvoiceRecord {
	rec := entity.InvoiceRecord{
		DocumentNumber: "F001-000123",
		IssueDate:      "2024-03-15",
		IssueTime:      "10:42:00",
		Issuer: entity.Party{
			Name:        "COMERCIAL MANCHESTER S.A.C.",
			TaxID:       "20100070970",
			AddressLine: "Av. Grau 1234",
			District:    "La Victoria",
			Department:  "Lima",
			Email:       "ventas@manchester.pe",
		},
		Buyer: entity.Party{
			Name:        "DISTRIBUIDORA EL SOL E.I.R.L.",
			TaxID:       "20123456789",
			AddressLine: "Jr. Huallaga 300",
			District:    "Cercado",
			Department:  "Lima",
		},
		ReferenceDocument: "T001-0045",
		PaymentTerm:       "Contado",
		AmountInWords:     "CIENTO DIECIOCHO CON 00/100 SOLES",
		Totals: entity.Totals{
			TaxableAmount: "100.00",
			TaxAmount:     "18.00",
			PayableAmount: "118.00",
		},
	}
	descriptions := []string{
		"ARROZ SUPERIOR COSTEÑO 5KG",
		"ACEITE",
		"AZÚCAR RUBIA CARTAVIO BOLSA 1KG PRECIO ESPECIAL POR MAYOR",
		"",
		"LECHE EVAPORADA GLORIA TARRO GRANDE 400G PAQUETE X 6 UNIDADES",
	}
	for i := 0; i < n; i++ {
		rec.LineItems = append(rec.LineItems, entity.LineItem{
			Code:        fmt.Sprintf("P%03d", i+1),
			Unit:        "NIU",
			Description: descriptions[i%len(descriptions)],
			Quantity:    "2.000",
			UnitPrice:   "12.5",
			LineTotal:   "25",
		})
	}
	return rec
}

// findTextBlock devuelve el bloque de texto de la sección cuya primera línea es first.
func findTextBlock(t *testing.T, sec layout.Section, first string) layout.TextBlock {
	t.Helper()
	for _, b := range sec.Blocks {
		if tb, ok := b.(layout.TextBlock); ok && len(tb.Lines) > 0 && tb.Lines[0] == first {
			return tb
		}
	}
	require.Failf(t, "bloque no encontrado", "sección %s sin %q", sec.State, first)
	return layout.TextBlock{}
}
