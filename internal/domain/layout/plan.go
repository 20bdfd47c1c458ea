package layout

import (
	"github.com/jhoicas/ticketera/internal/domain/entity"
	"github.com/jhoicas/ticketera/pkg/sunat"
)

// Leyendas fijas del pie.
const (
	LegendPrintedCopy = "Representación impresa del comprobante de pago"
	LegendThanks      = "¡Gracias por su compra!"
)

// Block elemento vertical de una sección con alto conocido antes de dibujar.
type Block interface {
	Height() float64
}

// Spacer espacio en blanco.
type Spacer struct {
	H float64 `json:"h"`
}

func (b Spacer) Height() float64 { return b.H }

// Rule línea separadora seguida de Gap.
type Rule struct {
	Gap float64 `json:"gap"`
}

func (b Rule) Height() float64 { return b.Gap }

// TextBlock texto de una línea o ya partido en varias.
type TextBlock struct {
	Lines      []string `json:"lines"`
	Font       FontSpec `json:"font"`
	Align      Align    `json:"align"`
	LineHeight float64  `json:"line_height"`
	Multiline  bool     `json:"multiline"`
}

func (b TextBlock) Height() float64 { return float64(len(b.Lines)) * b.LineHeight }

// PairBlock fila etiqueta/valor de los totales, alineada a la derecha.
type PairBlock struct {
	Label      string   `json:"label"`
	Value      string   `json:"value"`
	Font       FontSpec `json:"font"`
	LabelWidth float64  `json:"label_width"`
	ValueWidth float64  `json:"value_width"`
	H          float64  `json:"h"`
}

func (b PairBlock) Height() float64 { return b.H }

// ImageBlock imagen centrada cuya presencia ya fue confirmada.
type ImageBlock struct {
	Asset       Asset   `json:"-"`
	Name        string  `json:"name"`
	Width       float64 `json:"width"`
	ImageHeight float64 `json:"image_height"`
	Gap         float64 `json:"gap"`
}

func (b ImageBlock) Height() float64 { return b.ImageHeight + b.Gap }

// TableBlock encabezado y filas de detalle.
type TableBlock struct {
	HeaderHeight float64    `json:"header_height"`
	Rows         []TableRow `json:"rows"`
}

func (b TableBlock) Height() float64 {
	h := b.HeaderHeight
	for _, r := range b.Rows {
		h += r.Height
	}
	return h
}

// Section bloques de un estado del renderizador; puede estar vacía.
type Section struct {
	State  State   `json:"state"`
	Blocks []Block `json:"blocks"`
}

// Height suma de los altos de sus bloques.
func (s Section) Height() float64 {
	var h float64
	for _, b := range s.Blocks {
		h += b.Height()
	}
	return h
}

// Plan estructura vertical completa de un comprobante. La recorren tanto la
// estimación de alto como el renderizador, en el mismo orden.
type Plan struct {
	Profile       string    `json:"profile"`
	Top           float64   `json:"top"`
	Bottom        float64   `json:"bottom"`
	Sections      []Section `json:"sections"`
	MissingAssets []string  `json:"missing_assets,omitempty"`
}

// Height alto total: márgenes más todas las secciones.
func (p *Plan) Height() float64 {
	h := p.Top + p.Bottom
	for _, s := range p.Sections {
		h += s.Height()
	}
	return h
}

// Section devuelve la sección del estado (vacía si no existe).
func (p *Plan) Section(st State) Section {
	for _, s := range p.Sections {
		if s.State == st {
			return s
		}
	}
	return Section{State: st}
}

// Planner decide qué bloques forman cada sección. Es la única fuente de las
// reglas de inclusión condicional.
type Planner struct {
	profile Profile
	wrapper *LineWrapper
	table   *TableLayout
	images  ImageProvider
}

// NewPlanner crea el planificador del perfil; images puede ser nil.
func NewPlanner(p Profile, images ImageProvider) *Planner {
	if images == nil {
		images = NoImages{}
	}
	w := NewLineWrapper(p.Measurer())
	return &Planner{profile: p, wrapper: w, table: NewTableLayout(p, w), images: images}
}

// Table maquetación de tabla compartida con el renderizador.
func (pl *Planner) Table() *TableLayout { return pl.table }

// Plan construye el plan del comprobante. El registro de entrada no se modifica.
func (pl *Planner) Plan(rec entity.InvoiceRecord) *Plan {
	rec.LineItems = append([]entity.LineItem(nil), rec.LineItems...)
	rec.Normalize()

	plan := &Plan{Profile: pl.profile.Name, Top: pl.profile.Margin, Bottom: pl.profile.Margin}
	builders := []func(entity.InvoiceRecord, *Plan) []Block{
		StateHeader:         pl.header,
		StateIssuerBlock:    pl.issuer,
		StateDocumentHeader: pl.documentHeader,
		StateBuyerBlock:     pl.buyer,
		StatePaymentTerm:    pl.paymentTerm,
		StateTable:          pl.detail,
		StateTotals:         pl.totals,
		StateAmountInWords:  pl.amountInWords,
		StateFooter:         pl.footer,
	}
	for st, build := range builders {
		plan.Sections = append(plan.Sections, Section{State: State(st), Blocks: build(rec, plan)})
	}
	return plan
}

// ── Secciones ────────────────────────────────────────────────────────────────

func (pl *Planner) header(_ entity.InvoiceRecord, plan *Plan) []Block {
	p := pl.profile
	var blocks []Block
	if img, ok := pl.image(p.LogoWidth, p.LogoGap, p.LogoName); ok {
		blocks = append(blocks, img)
	} else {
		plan.MissingAssets = append(plan.MissingAssets, p.LogoName)
	}
	return append(blocks, Spacer{p.HeaderGap})
}

func (pl *Planner) issuer(rec entity.InvoiceRecord, _ *Plan) []Block {
	p := pl.profile
	is := rec.Issuer
	blocks := []Block{
		pl.field(is.Name, p.IssuerNameFont, p.IssuerThreshold, AlignCenter),
		pl.line("RUC: "+is.TaxID, p.BodyFont, AlignCenter),
	}
	if is.HasAddress() {
		blocks = append(blocks, pl.field(is.Address(), p.BodyFont, p.IssuerThreshold, AlignCenter))
	}
	blocks = append(blocks, Spacer{p.FieldGap})
	if entity.Present(is.Email) {
		blocks = append(blocks, pl.field(is.Email, p.BodyFont, p.IssuerThreshold, AlignCenter), Spacer{p.FieldGap})
	}
	return append(blocks, Spacer{p.SectionGap}, Rule{p.RuleGap})
}

func (pl *Planner) documentHeader(rec entity.InvoiceRecord, _ *Plan) []Block {
	p := pl.profile
	title := pl.field(rec.DocumentType()+" "+sunat.TitleSuffix, p.DocumentTitleFont, p.IssuerThreshold, AlignCenter)
	title.LineHeight = p.DocumentTitleLine
	return []Block{
		title,
		pl.line(rec.DocumentNumber, p.BodyFont, AlignCenter),
		Spacer{p.SectionGap},
		Rule{p.RuleGap},
	}
}

func (pl *Planner) buyer(rec entity.InvoiceRecord, _ *Plan) []Block {
	p := pl.profile
	b := rec.Buyer
	var blocks []Block
	if label := b.IdentityLabel(); label != "" {
		blocks = append(blocks, pl.field(label+": "+b.TaxID, p.BodyFont, p.BuyerThreshold, AlignLeft))
	}
	blocks = append(blocks, pl.field("CLIENTE: "+b.Name, p.BodyFont, p.BuyerThreshold, AlignLeft))
	if b.HasAddress() {
		blocks = append(blocks, pl.field("DIRECCIÓN: "+b.Address(), p.BodyFont, p.BuyerThreshold, AlignLeft))
	}
	if entity.Present(rec.ReferenceDocument) {
		blocks = append(blocks, pl.field("GUIA DE REMISIÓN: N° "+rec.ReferenceDocument, p.BodyFont, p.BuyerThreshold, AlignLeft))
	}
	return append(blocks, Spacer{p.SectionGap}, Rule{p.RuleGap})
}

func (pl *Planner) paymentTerm(rec entity.InvoiceRecord, _ *Plan) []Block {
	if !entity.Present(rec.PaymentTerm) {
		return nil
	}
	p := pl.profile
	return []Block{
		pl.field("FORMA DE PAGO: "+rec.PaymentTerm, p.BodyFont, p.BuyerThreshold, AlignLeft),
		Spacer{p.SectionGap},
	}
}

func (pl *Planner) detail(rec entity.InvoiceRecord, _ *Plan) []Block {
	tb := TableBlock{HeaderHeight: pl.table.HeaderHeight(), Rows: make([]TableRow, 0, len(rec.LineItems))}
	for _, item := range rec.LineItems {
		tb.Rows = append(tb.Rows, pl.table.LayoutRow(item))
	}
	return []Block{tb, Spacer{pl.profile.SectionGap}}
}

func (pl *Planner) totals(rec entity.InvoiceRecord, _ *Plan) []Block {
	p := pl.profile
	pair := func(label, amount string, font FontSpec, h float64) PairBlock {
		return PairBlock{
			Label:      label,
			Value:      FormatCurrency(p.CurrencySymbol, amount),
			Font:       font,
			LabelWidth: p.TotalsLabelWidth,
			ValueWidth: p.TotalsValueWidth,
			H:          h,
		}
	}
	return []Block{
		pair("OP. GRAVADA:", rec.Totals.TaxableAmount, p.TotalsFont, p.TotalsRowHeight),
		pair("IGV:", rec.Totals.TaxAmount, p.TotalsFont, p.TotalsRowHeight),
		pair("TOTAL:", rec.Totals.PayableAmount, p.GrandTotalFont, p.GrandTotalHeight),
		Spacer{p.SectionGap},
	}
}

func (pl *Planner) amountInWords(rec entity.InvoiceRecord, _ *Plan) []Block {
	if !entity.Present(rec.AmountInWords) {
		return nil
	}
	p := pl.profile
	return []Block{
		pl.field("SON: "+rec.AmountInWords, p.BodyFont, p.WordsThreshold, AlignLeft),
		Spacer{p.SectionGap},
	}
}

func (pl *Planner) footer(rec entity.InvoiceRecord, plan *Plan) []Block {
	p := pl.profile
	var blocks []Block

	date, clock := entity.Present(rec.IssueDate), entity.Present(rec.IssueTime)
	switch {
	case date && clock:
		blocks = append(blocks, pl.line("Fecha: "+rec.IssueDate+" "+rec.IssueTime, p.BodyFont, AlignCenter))
	case date:
		blocks = append(blocks, pl.line("Fecha: "+rec.IssueDate, p.BodyFont, AlignCenter))
	case clock:
		blocks = append(blocks, pl.line("Hora: "+rec.IssueTime, p.BodyFont, AlignCenter))
	}
	blocks = append(blocks, Spacer{p.SectionGap})

	candidates := []string{p.FooterDefaultImage}
	if entity.Present(rec.Issuer.TaxID) {
		candidates = []string{rec.Issuer.TaxID + ".png", p.FooterDefaultImage}
	}
	if img, ok := pl.image(p.FooterImageWidth, p.FooterImageGap, candidates...); ok {
		blocks = append(blocks, img)
	} else {
		plan.MissingAssets = append(plan.MissingAssets, p.FooterDefaultImage)
	}

	return append(blocks,
		pl.field(LegendPrintedCopy, p.BodyFont, p.IssuerThreshold, AlignCenter),
		pl.field(LegendThanks, p.LegendFont, p.IssuerThreshold, AlignCenter),
	)
}

// ── Auxiliares ───────────────────────────────────────────────────────────────

// field una línea si el texto no supera el umbral; si lo supera, el texto
// partido al ancho útil.
func (pl *Planner) field(text string, font FontSpec, threshold float64, align Align) TextBlock {
	if pl.wrapper.Measure(text, font) <= threshold {
		return pl.line(text, font, align)
	}
	width := pl.profile.ContentWidth() - 2*pl.profile.CellPadding
	return TextBlock{
		Lines:      pl.wrapper.Wrap(text, width, font),
		Font:       font,
		Align:      align,
		LineHeight: pl.profile.LineHeight,
		Multiline:  true,
	}
}

func (pl *Planner) line(text string, font FontSpec, align Align) TextBlock {
	return TextBlock{Lines: []string{text}, Font: font, Align: align, LineHeight: pl.profile.LineHeight}
}

// image reserva espacio para la primera imagen encontrada.
func (pl *Planner) image(width, gap float64, names ...string) (ImageBlock, bool) {
	for _, name := range names {
		asset, ok := pl.images.Lookup(name)
		if !ok {
			continue
		}
		ratio := asset.AspectRatio
		if ratio <= 0 {
			ratio = pl.profile.DefaultAspectRatio
		}
		return ImageBlock{Asset: asset, Name: name, Width: width, ImageHeight: width / ratio, Gap: gap}, true
	}
	return ImageBlock{}, false
}
