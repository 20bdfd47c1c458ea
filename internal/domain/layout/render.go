package layout

import (
	"context"
	"fmt"
)

// State etapa del renderizador. Avanza solo hacia adelante.
type State int

const (
	StateHeader State = iota
	StateIssuerBlock
	StateDocumentHeader
	StateBuyerBlock
	StatePaymentTerm
	StateTable
	StateTotals
	StateAmountInWords
	StateFooter
	StateDone
)

var stateNames = [...]string{
	StateHeader:         "Header",
	StateIssuerBlock:    "IssuerBlock",
	StateDocumentHeader: "DocumentHeader",
	StateBuyerBlock:     "BuyerBlock",
	StatePaymentTerm:    "PaymentTerm",
	StateTable:          "Table",
	StateTotals:         "Totals",
	StateAmountInWords:  "AmountInWords",
	StateFooter:         "Footer",
	StateDone:           "Done",
}

func (s State) String() string {
	if s < 0 || int(s) >= len(stateNames) {
		return fmt.Sprintf("State(%d)", int(s))
	}
	return stateNames[s]
}

// MarshalText serializa el estado por nombre.
func (s State) MarshalText() ([]byte, error) {
	return []byte(s.String()), nil
}

// UnmarshalText lee el estado por nombre.
func (s *State) UnmarshalText(b []byte) error {
	for i, n := range stateNames {
		if n == string(b) {
			*s = State(i)
			return nil
		}
	}
	return fmt.Errorf("layout: estado desconocido %q", b)
}

// Next devuelve el estado siguiente; Done es terminal.
func (s State) Next() State {
	if s >= StateDone {
		return StateDone
	}
	return s + 1
}

// Renderer recorre el plan estado por estado emitiendo las llamadas de dibujo.
type Renderer struct {
	profile Profile
	table   *TableLayout
}

// NewRenderer crea el renderizador; table debe ser la del planificador.
func NewRenderer(p Profile, table *TableLayout) *Renderer {
	return &Renderer{profile: p, table: table}
}

// Render dibuja el plan en el lienzo, que ya debe tener su página. Devuelve la
// posición final, los estados visitados y las imágenes que el lienzo no pudo dibujar.
func (r *Renderer) Render(ctx context.Context, plan *Plan, c Canvas) (Cursor, []State, []string, error) {
	cur := Cursor{X: r.profile.Margin, Y: plan.Top}
	var visited []State
	var missing []string

	for st := StateHeader; st != StateDone; st = st.Next() {
		if err := ctx.Err(); err != nil {
			return cur, visited, missing, fmt.Errorf("layout: estado %s: %w", st, err)
		}
		var lost []string
		cur, lost = r.section(c, plan.Section(st), cur)
		missing = append(missing, lost...)
		visited = append(visited, st)
	}
	return cur, append(visited, StateDone), missing, nil
}

func (r *Renderer) section(c Canvas, s Section, cur Cursor) (Cursor, []string) {
	var lost []string
	for _, b := range s.Blocks {
		var ok bool
		cur, ok = r.block(c, b, cur)
		if !ok {
			if img, isImg := b.(ImageBlock); isImg {
				lost = append(lost, img.Name)
			}
		}
	}
	return cur, lost
}

func (r *Renderer) block(c Canvas, b Block, cur Cursor) (Cursor, bool) {
	p := r.profile
	width := p.ContentWidth()
	left := p.Margin

	switch blk := b.(type) {
	case Spacer:
		cur.Y += blk.H
	case Rule:
		c.DrawRule(left, left+width, cur.Y)
		cur.Y += blk.Gap
	case TextBlock:
		if blk.Multiline {
			cur.Y += c.PlaceMultilineText(left, cur.Y, width, blk.LineHeight, blk.Lines, blk.Font, blk.Align, false)
			break
		}
		for _, line := range blk.Lines {
			c.PlaceText(left, cur.Y, width, blk.LineHeight, line, blk.Font, blk.Align, false)
			cur.Y += blk.LineHeight
		}
	case PairBlock:
		x := left + width - (blk.LabelWidth + blk.ValueWidth)
		c.PlaceText(x, cur.Y, blk.LabelWidth, blk.H, blk.Label, blk.Font, AlignRight, false)
		c.PlaceText(x+blk.LabelWidth, cur.Y, blk.ValueWidth, blk.H, blk.Value, blk.Font, AlignRight, false)
		cur.Y += blk.H
	case ImageBlock:
		x := left + (width-blk.Width)/2
		ok := c.PlaceImage(blk.Asset, x, cur.Y, blk.Width, blk.ImageHeight)
		cur.Y += blk.Height()
		return cur, ok
	case TableBlock:
		cur = r.table.DrawHeader(c, cur)
		for _, row := range blk.Rows {
			cur = r.table.DrawRow(c, cur, row)
		}
	default:
		cur.Y += b.Height()
	}
	return cur, true
}
