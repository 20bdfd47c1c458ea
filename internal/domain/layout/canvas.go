package layout

import "io"

// Cursor posición de dibujo. Cada sección la recibe por valor y devuelve la siguiente.
type Cursor struct {
	X float64
	Y float64
}

// Asset imagen disponible para imprimir.
type Asset struct {
	Name        string
	Data        []byte
	AspectRatio float64 // ancho / alto; 0 = desconocido
}

// ImageProvider informa si una imagen existe y la entrega.
type ImageProvider interface {
	Lookup(name string) (Asset, bool)
}

// NoImages proveedor sin imágenes.
type NoImages struct{}

// Lookup nunca encuentra la imagen.
func (NoImages) Lookup(string) (Asset, bool) { return Asset{}, false }

// Canvas operaciones primitivas del destino de impresión. Las coordenadas son
// absolutas en mm con origen en la esquina superior izquierda.
type Canvas interface {
	// NewPage fija el tamaño de la única página del documento.
	NewPage(width, height float64) error
	// PlaceText dibuja una línea dentro de la celda (x, y, w, h).
	PlaceText(x, y, w, h float64, text string, font FontSpec, align Align, border bool)
	// PlaceMultilineText dibuja líneas ya partidas y devuelve el alto consumido.
	PlaceMultilineText(x, y, w, lineHeight float64, lines []string, font FontSpec, align Align, border bool) float64
	// DrawRule traza una línea horizontal de x1 a x2 a la altura y.
	DrawRule(x1, x2, y float64)
	// PlaceImage dibuja la imagen en la caja dada; false si no pudo hacerlo.
	PlaceImage(img Asset, x, y, w, h float64) bool
	// Save escribe el documento terminado.
	Save(w io.Writer) error
}
