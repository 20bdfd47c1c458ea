package pdf_test

import (
	"bytes"
	"context"
	"image"
	"image/color"
	"image/png"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/jhoicas/ticketera/internal/domain/entity"
	"github.com/jhoicas/ticketera/internal/domain/layout"
	"github.com/jhoicas/ticketera/internal/infrastructure/pdf"
)

type images map[string]layout.Asset

func (m images) Lookup(name string) (layout.Asset, bool) {
	a, ok := m[name]
	return a, ok
}

func pngAsset(t *testing.T, name string) layout.Asset {
	t.Helper()
	img := image.NewRGBA(image.Rect(0, 0, 90, 30))
	img.Set(1, 1, color.Black)
	var buf bytes.Buffer
	require.NoError(t, png.Encode(&buf, img))
	return layout.Asset{Name: name, Data: buf.Bytes(), AspectRatio: 3}
}

func TestFPDFCanvas_GeneraPDF(t *testing.T) {
	p, err := layout.LookupProfile(layout.ProfileTicket80)
	require.NoError(t, err)
	e, err := layout.NewEngine(p, images{"logo.png": pngAsset(t, "logo.png")})
	require.NoError(t, err)

	rec := entity.InvoiceRecord{
		DocumentNumber: "B001-000045",
		IssueDate:      "2024-03-15",
		Issuer:         entity.Party{Name: "BODEGA DOÑA PEPA", TaxID: "10456789012"},
		Buyer:          entity.Party{Name: "CLIENTE VARIOS"},
		LineItems: []entity.LineItem{
			{Code: "1", Description: "ARROZ SUPERIOR COSTEÑO 5KG", Quantity: "1", UnitPrice: "25", LineTotal: "25"},
		},
		Totals: entity.Totals{TaxableAmount: "21.19", TaxAmount: "3.81", PayableAmount: "25.00"},
	}

	c := pdf.NewFPDFCanvas(pdf.Options{Title: rec.DocumentNumber})
	res, err := e.Render(context.Background(), rec, c)
	require.NoError(t, err)
	assert.NotContains(t, res.MissingAssets, "logo.png")
	assert.Contains(t, res.MissingAssets, "qr_default.png")

	var buf bytes.Buffer
	require.NoError(t, c.Save(&buf))
	assert.True(t, bytes.HasPrefix(buf.Bytes(), []byte("%PDF-")))
}

func TestFPDFCanvas_ImagenInvalida(t *testing.T) {
	c := pdf.NewFPDFCanvas(pdf.Options{})
	require.NoError(t, c.NewPage(80, 100))
	assert.False(t, c.PlaceImage(layout.Asset{Name: "x.png", Data: []byte("basura")}, 0, 0, 10, 10))
	assert.True(t, c.PlaceImage(pngAsset(t, "qr.png"), 15, 10, 50, 16.6), "el lienzo sigue usable")

	var buf bytes.Buffer
	assert.NoError(t, c.Save(&buf))
}

func TestFPDFCanvas_SinPagina(t *testing.T) {
	c := pdf.NewFPDFCanvas(pdf.Options{})
	var buf bytes.Buffer
	assert.Error(t, c.Save(&buf))
	assert.Error(t, c.NewPage(0, 100))
}

func TestFPDFCanvas_AltoConsumido(t *testing.T) {
	c := pdf.NewFPDFCanvas(pdf.Options{})
	require.NoError(t, c.NewPage(80, 120))
	h := c.PlaceMultilineText(2, 10, 20, 4, []string{"ARROZ", "SUPERIOR", "COSTEÑO 5KG"}, layout.Font(layout.Regular, 7), layout.AlignLeft, true)
	assert.InDelta(t, 12.0, h, 1e-9)
}
