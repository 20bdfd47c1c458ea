// Package layout maqueta comprobantes en un ticket de ancho fijo y alto
// variable en dos pasadas: primero mide el alto exacto del contenido y luego
// dibuja sobre un lienzo dimensionado con esa medida.
//
//	┌──────────── 80 mm ────────────┐
//	│            [logo]             │  Header
//	│        RAZÓN SOCIAL           │  IssuerBlock
//	│   FACTURA ELECTRÓNICA F001-1  │  DocumentHeader
//	│ RUC: …  CLIENTE: … DIRECCIÓN  │  BuyerBlock
//	│ FORMA DE PAGO: …              │  PaymentTerm
//	│ COD│CANT│UNID│DESC│V.UN│V.VEN │  Table
//	│            OP. GRAVADA / IGV  │  Totals
//	│ SON: …                        │  AmountInWords
//	│  Fecha · QR · leyendas        │  Footer
//	└───────────────────────────────┘
//
// Las unidades de longitud son milímetros; los tamaños de fuente, puntos.
package layout

// FontFamily nombre lógico de la familia tipográfica.
type FontFamily string

// Helvetica es la familia de referencia ("Arial" en los sinks PDF).
const Helvetica FontFamily = "Helvetica"

// FontStyle estilo de la fuente.
type FontStyle int

const (
	Regular FontStyle = iota
	Bold
	Italic
	BoldItalic
)

func (s FontStyle) String() string {
	switch s {
	case Bold:
		return "B"
	case Italic:
		return "I"
	case BoldItalic:
		return "BI"
	default:
		return ""
	}
}

// IsBold indica si el estilo es negrita.
func (s FontStyle) IsBold() bool { return s == Bold || s == BoldItalic }

// IsItalic indica si el estilo es cursiva.
func (s FontStyle) IsItalic() bool { return s == Italic || s == BoldItalic }

// FontSpec familia, estilo y tamaño en puntos.
type FontSpec struct {
	Family FontFamily `json:"family"`
	Style  FontStyle  `json:"style"`
	Size   float64    `json:"size"`
}

// Font atajo para construir un FontSpec de Helvetica.
func Font(style FontStyle, size float64) FontSpec {
	return FontSpec{Family: Helvetica, Style: style, Size: size}
}

// Align alineación horizontal dentro de una celda.
type Align int

const (
	AlignLeft Align = iota
	AlignCenter
	AlignRight
)

func (a Align) String() string {
	switch a {
	case AlignCenter:
		return "C"
	case AlignRight:
		return "R"
	default:
		return "L"
	}
}

// PtToMm factor de conversión de puntos tipográficos a milímetros.
const PtToMm = 25.4 / 72
