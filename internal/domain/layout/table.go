package layout

import (
	"math"

	"github.com/jhoicas/ticketera/internal/domain/entity"
)

// TableRow fila de detalle ya maquetada. Todas las celdas comparten Height.
type TableRow struct {
	Code        string   `json:"code"`
	Quantity    string   `json:"quantity"`
	Unit        string   `json:"unit"`
	Description []string `json:"description"`
	UnitPrice   string   `json:"unit_price"`
	LineTotal   string   `json:"line_total"`
	Height      float64  `json:"height"`
}

// TableLayout maqueta las líneas de detalle en una grilla con bordes.
// El alto de cada fila lo fija la descripción, que es la única celda que se parte.
type TableLayout struct {
	profile Profile
	wrapper *LineWrapper
}

// NewTableLayout crea la maquetación de tabla del perfil.
func NewTableLayout(p Profile, w *LineWrapper) *TableLayout {
	return &TableLayout{profile: p, wrapper: w}
}

// DescriptionWidth ancho disponible para el texto de la descripción.
func (t *TableLayout) DescriptionWidth() float64 {
	return t.profile.Columns[ColDescription].Width - 2*t.profile.CellPadding
}

// LayoutRow parte la descripción, recorta las celdas cortas y calcula el alto.
func (t *TableLayout) LayoutRow(item entity.LineItem) TableRow {
	p := t.profile
	lines := t.wrapper.Wrap(item.Description, t.DescriptionWidth(), p.TableBodyFont)
	return TableRow{
		Code:        Truncate(item.Code, p.CodeBudget),
		Quantity:    Truncate(item.Quantity, p.QuantityBudget),
		Unit:        Truncate(item.Unit, p.UnitBudget),
		Description: lines,
		UnitPrice:   FormatAmount(item.UnitPrice),
		LineTotal:   FormatAmount(item.LineTotal),
		Height:      t.RowHeight(len(lines)),
	}
}

// RowHeight alto de una fila con n líneas de descripción (mínimo una).
func (t *TableLayout) RowHeight(n int) float64 {
	return float64(max(1, n)) * t.profile.LineHeight
}

// HeaderHeight alto de la fila de encabezados.
func (t *TableLayout) HeaderHeight() float64 {
	return t.profile.TableHeaderHeight
}

// DrawHeader dibuja los encabezados y devuelve el origen de la primera fila.
func (t *TableLayout) DrawHeader(c Canvas, cur Cursor) Cursor {
	p := t.profile
	x := cur.X
	for _, col := range p.Columns {
		c.PlaceText(x, cur.Y, col.Width, p.TableHeaderHeight, col.Header, p.TableHeaderFont, AlignCenter, true)
		x += col.Width
	}
	return Cursor{X: cur.X, Y: cur.Y + p.TableHeaderHeight}
}

// DrawRow dibuja una fila: las celdas de una línea se estiran al alto de la
// fila y la descripción ocupa sus líneas. Devuelve el origen de la siguiente fila.
func (t *TableLayout) DrawRow(c Canvas, cur Cursor, row TableRow) Cursor {
	p := t.profile
	font := p.TableBodyFont
	cells := [columnCount]string{row.Code, row.Quantity, row.Unit, "", row.UnitPrice, row.LineTotal}

	x := cur.X
	height := row.Height
	for i, col := range p.Columns {
		if i == ColDescription {
			used := c.PlaceMultilineText(x, cur.Y, col.Width, p.LineHeight, row.Description, font, col.Align, true)
			height = math.Max(height, used)
		} else {
			c.PlaceText(x, cur.Y, col.Width, row.Height, cells[i], font, col.Align, true)
		}
		x += col.Width
	}
	return Cursor{X: cur.X, Y: cur.Y + height}
}
