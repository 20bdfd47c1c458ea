package layout

import (
	"encoding/json"
	"fmt"
	"io"
	"math"
)

// Tipos de operación registrados por Recorder.
const (
	OpPage      = "page"
	OpText      = "text"
	OpMultiline = "multiline"
	OpRule      = "rule"
	OpImage     = "image"
)

// Op operación de dibujo registrada.
type Op struct {
	Kind   string    `json:"kind"`
	X      float64   `json:"x"`
	Y      float64   `json:"y"`
	W      float64   `json:"w"`
	H      float64   `json:"h"`
	Text   string    `json:"text,omitempty"`
	Lines  []string  `json:"lines,omitempty"`
	Font   *FontSpec `json:"font,omitempty"`
	Align  string    `json:"align,omitempty"`
	Border bool      `json:"border,omitempty"`
	Asset  string    `json:"asset,omitempty"`
}

// Bottom borde inferior de la operación.
func (o Op) Bottom() float64 { return o.Y + o.H }

// Recorder lienzo que solo registra las operaciones. Sirve para pruebas, para
// medir sin generar PDF y para volcar el maquetado en JSON.
type Recorder struct {
	Width  float64 `json:"width"`
	Height float64 `json:"height"`
	Ops    []Op    `json:"ops"`
	// MissingImages nombres de imagen que PlaceImage debe rechazar.
	MissingImages map[string]bool `json:"-"`
}

var _ Canvas = (*Recorder)(nil)

// NewPage fija el tamaño de página.
func (r *Recorder) NewPage(width, height float64) error {
	if width <= 0 || height <= 0 {
		return fmt.Errorf("layout: página inválida %.2fx%.2f", width, height)
	}
	r.Width, r.Height = width, height
	r.Ops = append(r.Ops, Op{Kind: OpPage, W: width, H: height})
	return nil
}

// PlaceText registra una celda de texto.
func (r *Recorder) PlaceText(x, y, w, h float64, text string, font FontSpec, align Align, border bool) {
	f := font
	r.Ops = append(r.Ops, Op{Kind: OpText, X: x, Y: y, W: w, H: h, Text: text, Font: &f, Align: align.String(), Border: border})
}

// PlaceMultilineText registra un bloque de líneas; consume líneas × alto de línea.
func (r *Recorder) PlaceMultilineText(x, y, w, lineHeight float64, lines []string, font FontSpec, align Align, border bool) float64 {
	h := float64(len(lines)) * lineHeight
	f := font
	r.Ops = append(r.Ops, Op{Kind: OpMultiline, X: x, Y: y, W: w, H: h, Lines: append([]string(nil), lines...), Font: &f, Align: align.String(), Border: border})
	return h
}

// DrawRule registra una línea horizontal.
func (r *Recorder) DrawRule(x1, x2, y float64) {
	r.Ops = append(r.Ops, Op{Kind: OpRule, X: x1, Y: y, W: x2 - x1})
}

// PlaceImage registra la imagen salvo que esté marcada como ausente.
func (r *Recorder) PlaceImage(img Asset, x, y, w, h float64) bool {
	if r.MissingImages[img.Name] {
		return false
	}
	r.Ops = append(r.Ops, Op{Kind: OpImage, X: x, Y: y, W: w, H: h, Asset: img.Name})
	return true
}

// Save vuelca las operaciones como JSON.
func (r *Recorder) Save(w io.Writer) error {
	return WriteDebugJSON(w, r)
}

// MaxY borde inferior más bajo de todo lo dibujado.
func (r *Recorder) MaxY() float64 {
	var y float64
	for _, op := range r.Ops {
		if op.Kind == OpPage {
			continue
		}
		y = math.Max(y, op.Bottom())
	}
	return y
}

// Texts textos dibujados en orden, incluidas las líneas de bloques.
func (r *Recorder) Texts() []string {
	var out []string
	for _, op := range r.Ops {
		switch op.Kind {
		case OpText:
			out = append(out, op.Text)
		case OpMultiline:
			out = append(out, op.Lines...)
		}
	}
	return out
}

// OpsOf operaciones de un tipo.
func (r *Recorder) OpsOf(kind string) []Op {
	var out []Op
	for _, op := range r.Ops {
		if op.Kind == kind {
			out = append(out, op)
		}
	}
	return out
}

// WriteDebugJSON escribe v como JSON indentado, para depurar o visualizar el maquetado.
func WriteDebugJSON(w io.Writer, v any) error {
	enc := json.NewEncoder(w)
	enc.SetIndent("", "  ")
	if err := enc.Encode(v); err != nil {
		return fmt.Errorf("layout: volcado JSON: %w", err)
	}
	return nil
}
