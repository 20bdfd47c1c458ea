// Package vector implementa layout.Canvas sobre tdewolff/canvas, con las
// fuentes Go embebidas. El texto se escribe en UTF-8 sin transcodificar.
package vector

import (
	"bytes"
	"errors"
	"fmt"
	"image"
	"image/color"
	_ "image/gif"
	_ "image/jpeg"
	_ "image/png"
	"io"
	"math"

	"github.com/tdewolff/canvas"
	"github.com/tdewolff/canvas/renderers/pdf"
	"golang.org/x/image/font/gofont/gobold"
	"golang.org/x/image/font/gofont/gobolditalic"
	"golang.org/x/image/font/gofont/goitalic"
	"golang.org/x/image/font/gofont/goregular"

	"github.com/jhoicas/ticketera/internal/domain/layout"
)

const (
	familyName  = "ticketera-go"
	strokeWidth = 0.2
)

// Options metadatos y márgenes internos de celda.
type Options struct {
	Title       string
	Author      string
	CellPadding float64
}

// Canvas lienzo vectorial de una página. Un valor por documento.
type Canvas struct {
	opts   Options
	width  float64
	height float64
	c      *canvas.Canvas
	ctx    *canvas.Context
	family *canvas.FontFamily
}

var _ layout.Canvas = (*Canvas)(nil)

// New crea el lienzo; la página se abre con NewPage.
func New(opts Options) *Canvas {
	if opts.CellPadding <= 0 {
		opts.CellPadding = 1
	}
	return &Canvas{opts: opts}
}

// NewPage crea la página y carga las fuentes.
func (v *Canvas) NewPage(width, height float64) error {
	if width <= 0 || height <= 0 {
		return fmt.Errorf("vector: tamaño de página inválido %.2fx%.2f", width, height)
	}
	family, err := loadFamily()
	if err != nil {
		return err
	}
	v.width, v.height = width, height
	v.family = family
	v.c = canvas.New(width, height)
	v.ctx = canvas.NewContext(v.c)
	v.ctx.SetCoordSystem(canvas.CartesianIV)
	return nil
}

func loadFamily() (*canvas.FontFamily, error) {
	family := canvas.NewFontFamily(familyName)
	fonts := []struct {
		data  []byte
		style canvas.FontStyle
	}{
		{goregular.TTF, canvas.FontRegular},
		{gobold.TTF, canvas.FontBold},
		{goitalic.TTF, canvas.FontItalic},
		{gobolditalic.TTF, canvas.FontBold | canvas.FontItalic},
	}
	for _, f := range fonts {
		if err := family.LoadFont(f.data, 0, f.style); err != nil {
			return nil, fmt.Errorf("vector: cargar fuente: %w", err)
		}
	}
	return family, nil
}

// PlaceText dibuja una línea centrada verticalmente en la celda.
func (v *Canvas) PlaceText(x, y, w, h float64, text string, font layout.FontSpec, align layout.Align, border bool) {
	if v.ctx == nil {
		return
	}
	if border {
		v.rect(x, y, w, h)
	}
	if text == "" {
		return
	}
	face := v.face(font)
	m := face.Metrics()
	baseline := y + (h-(m.Ascent+math.Abs(m.Descent)))/2 + m.Ascent
	anchor, ta := v.anchor(x, w, align)
	v.ctx.DrawText(anchor, baseline, canvas.NewTextLine(face, text, ta))
}

// PlaceMultilineText dibuja líneas consecutivas; el borde rodea el bloque.
func (v *Canvas) PlaceMultilineText(x, y, w, lineHeight float64, lines []string, font layout.FontSpec, align layout.Align, border bool) float64 {
	h := float64(len(lines)) * lineHeight
	if v.ctx == nil {
		return h
	}
	for i, line := range lines {
		v.PlaceText(x, y+float64(i)*lineHeight, w, lineHeight, line, font, align, false)
	}
	if border {
		v.rect(x, y, w, h)
	}
	return h
}

// DrawRule traza una línea horizontal.
func (v *Canvas) DrawRule(x1, x2, y float64) {
	if v.ctx == nil {
		return
	}
	v.ctx.SetStrokeColor(canvas.Black)
	v.ctx.SetStrokeWidth(strokeWidth)
	p := &canvas.Path{}
	p.MoveTo(0, 0)
	p.LineTo(x2-x1, 0)
	v.ctx.DrawPath(x1, y, p)
}

// PlaceImage decodifica y dibuja la imagen escalada al ancho w.
func (v *Canvas) PlaceImage(img layout.Asset, x, y, w, h float64) bool {
	if v.ctx == nil || len(img.Data) == 0 || w <= 0 {
		return false
	}
	decoded, _, err := image.Decode(bytes.NewReader(img.Data))
	if err != nil || decoded.Bounds().Dx() == 0 {
		return false
	}
	dpmm := float64(decoded.Bounds().Dx()) / w
	v.ctx.DrawImage(x, y, decoded, canvas.DPMM(dpmm))
	return true
}

// Save renderiza la página a PDF.
func (v *Canvas) Save(w io.Writer) error {
	if v.c == nil {
		return errors.New("vector: documento sin página")
	}
	writer := pdf.New(w, v.width, v.height, nil)
	writer.SetInfo(v.opts.Title, "", "", v.opts.Author, "ticketera")
	v.c.RenderTo(writer)
	if err := writer.Close(); err != nil {
		return fmt.Errorf("vector: escribir PDF: %w", err)
	}
	return nil
}

func (v *Canvas) face(font layout.FontSpec) *canvas.FontFace {
	style := canvas.FontRegular
	if font.Style.IsBold() {
		style |= canvas.FontBold
	}
	if font.Style.IsItalic() {
		style |= canvas.FontItalic
	}
	return v.family.Face(font.Size, canvas.Black, style, canvas.FontNormal)
}

func (v *Canvas) anchor(x, w float64, align layout.Align) (float64, canvas.TextAlign) {
	switch align {
	case layout.AlignCenter:
		return x + w/2, canvas.Center
	case layout.AlignRight:
		return x + w - v.opts.CellPadding, canvas.Right
	default:
		return x + v.opts.CellPadding, canvas.Left
	}
}

func (v *Canvas) rect(x, y, w, h float64) {
	v.ctx.SetFillColor(color.RGBA{})
	v.ctx.SetStrokeColor(canvas.Black)
	v.ctx.SetStrokeWidth(strokeWidth)
	v.ctx.DrawPath(x, y, canvas.Rectangle(w, h))
}
