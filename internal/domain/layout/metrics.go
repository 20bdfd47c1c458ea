package layout

import "sync"

// UnitsPerEm tamaño de referencia de las tablas de anchos.
const UnitsPerEm = 1000

// GlyphWidthTable anchos de avance por carácter en unidades de 1/1000 em.
// Se construye una sola vez y se comparte en solo lectura entre documentos.
type GlyphWidthTable struct {
	ascii        [95]int // 0x20..0x7E
	extra        map[rune]int
	defaultWidth int
}

// Width devuelve el ancho del carácter; los no tabulados usan el ancho medio.
func (t *GlyphWidthTable) Width(r rune) int {
	if r >= 0x20 && r <= 0x7E {
		return t.ascii[r-0x20]
	}
	if w, ok := t.extra[r]; ok {
		return w
	}
	return t.defaultWidth
}

// Known indica si el carácter tiene ancho tabulado.
func (t *GlyphWidthTable) Known(r rune) bool {
	if r >= 0x20 && r <= 0x7E {
		return true
	}
	_, ok := t.extra[r]
	return ok
}

// DefaultWidth ancho medio usado para caracteres sin métrica.
func (t *GlyphWidthTable) DefaultWidth() int { return t.defaultWidth }

type glyphKey struct {
	family FontFamily
	bold   bool
}

var (
	glyphOnce   sync.Once
	glyphTables map[glyphKey]*GlyphWidthTable
)

// GlyphTable devuelve la tabla de la familia y estilo. La cursiva comparte los
// anchos de su variante recta. Familias desconocidas usan Helvetica.
func GlyphTable(family FontFamily, style FontStyle) *GlyphWidthTable {
	glyphOnce.Do(loadGlyphTables)
	if t, ok := glyphTables[glyphKey{family, style.IsBold()}]; ok {
		return t
	}
	return glyphTables[glyphKey{Helvetica, style.IsBold()}]
}

func loadGlyphTables() {
	glyphTables = map[glyphKey]*GlyphWidthTable{
		{Helvetica, false}: {ascii: helveticaASCII, extra: helveticaLatin, defaultWidth: 556},
		{Helvetica, true}:  {ascii: helveticaBoldASCII, extra: helveticaBoldLatin, defaultWidth: 556},
	}
}

// =============================================================================
// Helvetica (métricas AFM estándar de Adobe)
// =============================================================================

var helveticaASCII = [95]int{
	278, 278, 355, 556, 556, 889, 667, 191, 333, 333, 389, 584, 278, 333, 278, 278, // ' '../
	556, 556, 556, 556, 556, 556, 556, 556, 556, 556, // 0-9
	278, 278, 584, 584, 584, 556, 1015, // :;<=>?@
	667, 667, 722, 722, 667, 611, 778, 722, 278, 500, 667, 556, 833, // A-M
	722, 778, 667, 778, 722, 667, 611, 722, 667, 944, 667, 667, 611, // N-Z
	278, 278, 278, 469, 556, 333, // [\]^_`
	556, 556, 500, 556, 556, 278, 556, 556, 222, 222, 500, 222, 833, // a-m
	556, 556, 556, 556, 333, 500, 278, 556, 500, 722, 500, 500, 500, // n-z
	334, 260, 334, 584, // {|}~
}

var helveticaLatin = map[rune]int{
	'¡': 333, '¿': 611, '°': 400, 'º': 365, 'ª': 370, '·': 278, '«': 556, '»': 556,
	'Á': 667, 'É': 667, 'Í': 278, 'Ó': 778, 'Ú': 722, 'Ñ': 722, 'Ü': 722,
	'á': 556, 'é': 556, 'í': 278, 'ó': 556, 'ú': 556, 'ñ': 556, 'ü': 556,
	'€': 556, '–': 556, '—': 1000, '‘': 222, '’': 222, '“': 333, '”': 333,
}

// =============================================================================
// Helvetica-Bold
// =============================================================================

var helveticaBoldASCII = [95]int{
	278, 333, 474, 556, 556, 889, 722, 238, 333, 333, 389, 584, 278, 333, 278, 278, // ' '../
	556, 556, 556, 556, 556, 556, 556, 556, 556, 556, // 0-9
	333, 333, 584, 584, 584, 611, 975, // :;<=>?@
	722, 722, 722, 722, 667, 611, 778, 722, 278, 556, 722, 611, 833, // A-M
	722, 778, 667, 778, 722, 667, 611, 722, 667, 944, 667, 667, 611, // N-Z
	333, 278, 333, 584, 556, 333, // [\]^_`
	556, 611, 556, 611, 556, 333, 611, 611, 278, 278, 556, 278, 889, // a-m
	611, 611, 611, 611, 389, 556, 333, 611, 556, 778, 556, 556, 500, // n-z
	389, 280, 389, 584, // {|}~
}

var helveticaBoldLatin = map[rune]int{
	'¡': 333, '¿': 611, '°': 400, 'º': 365, 'ª': 370, '·': 278, '«': 556, '»': 556,
	'Á': 722, 'É': 667, 'Í': 278, 'Ó': 778, 'Ú': 722, 'Ñ': 722, 'Ü': 722,
	'á': 556, 'é': 556, 'í': 278, 'ó': 611, 'ú': 611, 'ñ': 611, 'ü': 611,
	'€': 556, '–': 556, '—': 1000, '‘': 278, '’': 278, '“': 500, '”': 500,
}
