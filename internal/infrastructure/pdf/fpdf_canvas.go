// Package pdf implementa layout.Canvas sobre gofpdf con las fuentes base
// (Helvetica), cuyas métricas coinciden con las del motor de maquetado.
//
// Los textos se transcodifican a Windows-1252, la codificación de las fuentes
// base; los caracteres sin equivalente se reemplazan.
package pdf

import (
	"bytes"
	"errors"
	"fmt"
	"image"
	_ "image/gif"
	_ "image/jpeg"
	_ "image/png"
	"io"
	"strconv"

	"github.com/jung-kurt/gofpdf"
	"golang.org/x/text/encoding"
	"golang.org/x/text/encoding/charmap"

	"github.com/jhoicas/ticketera/internal/domain/layout"
)

// fontFamily nombre de la fuente base en gofpdf.
const fontFamily = "Arial"

// Options metadatos del documento.
type Options struct {
	Title       string
	Author      string
	CellPadding float64 // mm a cada lado del texto dentro de una celda
	LineWidth   float64
}

// FPDFCanvas lienzo de una sola página. Un valor por documento.
type FPDFCanvas struct {
	opts   Options
	pdf    *gofpdf.Fpdf
	enc    *encoding.Encoder
	images int
}

var _ layout.Canvas = (*FPDFCanvas)(nil)

// NewFPDFCanvas crea el lienzo; la página se abre con NewPage.
func NewFPDFCanvas(opts Options) *FPDFCanvas {
	if opts.CellPadding <= 0 {
		opts.CellPadding = 1
	}
	if opts.LineWidth <= 0 {
		opts.LineWidth = 0.2
	}
	return &FPDFCanvas{
		opts: opts,
		enc:  encoding.ReplaceUnsupported(charmap.Windows1252.NewEncoder()),
	}
}

// NewPage crea el documento con una página del tamaño exacto del ticket.
func (c *FPDFCanvas) NewPage(width, height float64) error {
	if width <= 0 || height <= 0 {
		return fmt.Errorf("pdf: tamaño de página inválido %.2fx%.2f", width, height)
	}
	f := gofpdf.NewCustom(&gofpdf.InitType{
		OrientationStr: "P",
		UnitStr:        "mm",
		Size:           gofpdf.SizeType{Wd: width, Ht: height},
	})
	f.SetMargins(0, 0, 0)
	f.SetAutoPageBreak(false, 0)
	f.SetCellMargin(c.opts.CellPadding)
	f.SetLineWidth(c.opts.LineWidth)
	f.SetCreator("ticketera", true)
	if c.opts.Title != "" {
		f.SetTitle(c.opts.Title, true)
	}
	if c.opts.Author != "" {
		f.SetAuthor(c.opts.Author, true)
	}
	f.AddPage()
	c.pdf = f
	return f.Error()
}

// PlaceText dibuja una celda de una línea.
func (c *FPDFCanvas) PlaceText(x, y, w, h float64, text string, font layout.FontSpec, align layout.Align, border bool) {
	if c.pdf == nil {
		return
	}
	c.setFont(font)
	c.pdf.SetXY(x, y)
	c.pdf.CellFormat(w, h, c.encode(text), borderStr(border), 0, align.String(), false, 0, "")
}

// PlaceMultilineText dibuja cada línea en su propia celda y, si corresponde,
// un único borde alrededor del bloque.
func (c *FPDFCanvas) PlaceMultilineText(x, y, w, lineHeight float64, lines []string, font layout.FontSpec, align layout.Align, border bool) float64 {
	h := float64(len(lines)) * lineHeight
	if c.pdf == nil {
		return h
	}
	c.setFont(font)
	for i, line := range lines {
		c.pdf.SetXY(x, y+float64(i)*lineHeight)
		c.pdf.CellFormat(w, lineHeight, c.encode(line), "", 0, align.String(), false, 0, "")
	}
	if border {
		c.pdf.Rect(x, y, w, h, "D")
	}
	return h
}

// DrawRule traza una línea horizontal.
func (c *FPDFCanvas) DrawRule(x1, x2, y float64) {
	if c.pdf == nil {
		return
	}
	c.pdf.Line(x1, y, x2, y)
}

// PlaceImage registra la imagen desde memoria y la dibuja. Si gofpdf no puede
// interpretarla, se descarta el error y se informa false.
func (c *FPDFCanvas) PlaceImage(img layout.Asset, x, y, w, h float64) bool {
	if c.pdf == nil || len(img.Data) == 0 {
		return false
	}
	_, format, err := image.DecodeConfig(bytes.NewReader(img.Data))
	if err != nil {
		return false
	}
	tp := imageType(format)
	if tp == "" {
		return false
	}
	c.images++
	name := "img" + strconv.Itoa(c.images)
	opts := gofpdf.ImageOptions{ImageType: tp}
	c.pdf.RegisterImageOptionsReader(name, opts, bytes.NewReader(img.Data))
	if !c.pdf.Ok() {
		c.pdf.ClearError()
		return false
	}
	c.pdf.ImageOptions(name, x, y, w, h, false, opts, 0, "")
	if !c.pdf.Ok() {
		c.pdf.ClearError()
		return false
	}
	return true
}

// Save escribe el PDF.
func (c *FPDFCanvas) Save(w io.Writer) error {
	if c.pdf == nil {
		return errors.New("pdf: documento sin página")
	}
	if err := c.pdf.Output(w); err != nil {
		return fmt.Errorf("pdf: escribir documento: %w", err)
	}
	return nil
}

func (c *FPDFCanvas) setFont(font layout.FontSpec) {
	c.pdf.SetFont(fontFamily, font.Style.String(), font.Size)
}

func (c *FPDFCanvas) encode(s string) string {
	out, err := c.enc.String(s)
	if err != nil {
		return s
	}
	return out
}

func borderStr(border bool) string {
	if border {
		return "1"
	}
	return ""
}

func imageType(format string) string {
	switch format {
	case "png":
		return "PNG"
	case "jpeg":
		return "JPG"
	case "gif":
		return "GIF"
	default:
		return ""
	}
}
