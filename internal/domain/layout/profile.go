package layout

import (
	"fmt"
	"math"
	"sort"

	"github.com/jhoicas/ticketera/internal/domain"
	"github.com/jhoicas/ticketera/pkg/sunat"
)

// MeasurementMode estrategia de medición de texto del perfil.
type MeasurementMode string

const (
	MeasureMetric    MeasurementMode = "metric"
	MeasureHeuristic MeasurementMode = "heuristic"
)

// Column columna de la tabla de detalle.
type Column struct {
	Header string
	Width  float64
	Align  Align
}

// Índices de columna de la tabla de detalle.
const (
	ColCode = iota
	ColQuantity
	ColUnit
	ColDescription
	ColUnitPrice
	ColLineTotal
	columnCount
)

// Profile geometría, fuentes y umbrales de un formato de ticket.
// Se elige al construir el motor y no cambia durante el maquetado.
type Profile struct {
	Name        string
	Measurement MeasurementMode

	PageWidth  float64
	Margin     float64
	LineHeight float64
	MinHeight  float64
	MaxHeight  float64

	// Fuentes
	IssuerNameFont    FontSpec
	BodyFont          FontSpec
	DocumentTitleFont FontSpec
	TableHeaderFont   FontSpec
	TableBodyFont     FontSpec
	TotalsFont        FontSpec
	GrandTotalFont    FontSpec
	LegendFont        FontSpec

	// Umbrales (mm) a partir de los cuales un campo pasa a varias líneas.
	IssuerThreshold float64
	BuyerThreshold  float64
	WordsThreshold  float64

	// Tabla
	Columns           [columnCount]Column
	TableHeaderHeight float64
	CellPadding       float64
	CodeBudget        int
	QuantityBudget    int
	UnitBudget        int

	// Totales
	TotalsLabelWidth  float64
	TotalsValueWidth  float64
	TotalsRowHeight   float64
	GrandTotalHeight  float64
	DocumentTitleLine float64
	CurrencySymbol    string

	// Imágenes
	LogoName           string
	LogoWidth          float64
	LogoGap            float64
	HeaderGap          float64
	FooterImageWidth   float64
	FooterImageGap     float64
	FooterDefaultImage string
	DefaultAspectRatio float64

	// Separaciones
	FieldGap   float64
	SectionGap float64
	RuleGap    float64
}

// ContentWidth ancho útil entre márgenes.
func (p Profile) ContentWidth() float64 {
	return p.PageWidth - 2*p.Margin
}

// Measurer devuelve el medidor correspondiente al modo del perfil.
func (p Profile) Measurer() TextMeasurer {
	if p.Measurement == MeasureHeuristic {
		return HeuristicMeasurer{CharsPerMm: DefaultCharsPerMm}
	}
	return MetricMeasurer{}
}

// WithBounds devuelve una copia con otros límites de alto; los valores no
// positivos conservan los del perfil.
func (p Profile) WithBounds(minHeight, maxHeight float64) Profile {
	if minHeight > 0 {
		p.MinHeight = minHeight
	}
	if maxHeight > 0 {
		p.MaxHeight = maxHeight
	}
	p.MaxHeight = math.Max(p.MaxHeight, p.MinHeight)
	return p
}

// WithImages devuelve una copia con otros nombres de logo e imagen por defecto.
func (p Profile) WithImages(logo, footerDefault string) Profile {
	if logo != "" {
		p.LogoName = logo
	}
	if footerDefault != "" {
		p.FooterDefaultImage = footerDefault
	}
	return p
}

// Validate comprueba que la geometría sea coherente.
func (p Profile) Validate() error {
	if p.ContentWidth() <= 0 {
		return fmt.Errorf("layout: perfil %q: ancho útil no positivo", p.Name)
	}
	if p.LineHeight <= 0 {
		return fmt.Errorf("layout: perfil %q: alto de línea no positivo", p.Name)
	}
	if p.MinHeight <= 0 || p.MaxHeight < p.MinHeight {
		return fmt.Errorf("layout: perfil %q: límites de alto inválidos [%.1f, %.1f]", p.Name, p.MinHeight, p.MaxHeight)
	}
	var total float64
	for _, c := range p.Columns {
		total += c.Width
	}
	if total > p.ContentWidth()+1e-9 {
		return fmt.Errorf("layout: perfil %q: columnas (%.1f mm) exceden el ancho útil (%.1f mm)", p.Name, total, p.ContentWidth())
	}
	return nil
}

// =============================================================================
// Perfiles predefinidos
// =============================================================================

const (
	ProfileTicket80       = "ticket80"
	ProfileTicket80Legacy = "ticket80-legacy"
	ProfileTicket58       = "ticket58"
)

// DefaultProfile nombre del perfil de referencia.
const DefaultProfile = ProfileTicket80

func ticket80() Profile {
	return Profile{
		Name:        ProfileTicket80,
		Measurement: MeasureMetric,
		PageWidth:   80,
		Margin:      2,
		LineHeight:  4,
		MinHeight:   100,
		MaxHeight:   800,

		IssuerNameFont:    Font(Bold, 8),
		BodyFont:          Font(Regular, 8),
		DocumentTitleFont: Font(Bold, 10),
		TableHeaderFont:   Font(Bold, 5),
		TableBodyFont:     Font(Regular, 7),
		TotalsFont:        Font(Regular, 8),
		GrandTotalFont:    Font(Bold, 10),
		LegendFont:        Font(Italic, 8),

		IssuerThreshold: 70,
		BuyerThreshold:  35,
		WordsThreshold:  35,

		Columns: [columnCount]Column{
			{Header: "COD", Width: 6, Align: AlignCenter},
			{Header: "CANT.", Width: 16, Align: AlignCenter},
			{Header: "UNID.", Width: 8, Align: AlignCenter},
			{Header: "DESCRIPCION", Width: 20, Align: AlignLeft},
			{Header: "V.UNIT", Width: 10, Align: AlignRight},
			{Header: "V.VENTA", Width: 16, Align: AlignRight},
		},
		TableHeaderHeight: 5,
		CellPadding:       1,
		CodeBudget:        20,
		QuantityBudget:    6,
		UnitBudget:        4,

		TotalsLabelWidth:  50,
		TotalsValueWidth:  25,
		TotalsRowHeight:   5,
		GrandTotalHeight:  6,
		DocumentTitleLine: 5,
		CurrencySymbol:    sunat.CurrencySymbol,

		LogoName:           "logo.png",
		LogoWidth:          40,
		LogoGap:            2,
		HeaderGap:          5,
		FooterImageWidth:   50,
		FooterImageGap:     5,
		FooterDefaultImage: "qr_default.png",
		DefaultAspectRatio: 3,

		FieldGap:   1,
		SectionGap: 2,
		RuleGap:    2,
	}
}

func ticket80Legacy() Profile {
	p := ticket80()
	p.Name = ProfileTicket80Legacy
	p.Measurement = MeasureHeuristic
	p.TableBodyFont = Font(Regular, 6)
	return p
}

func ticket58() Profile {
	p := ticket80()
	p.Name = ProfileTicket58
	p.PageWidth = 58
	p.MinHeight = 80
	p.IssuerNameFont = Font(Bold, 7)
	p.BodyFont = Font(Regular, 7)
	p.DocumentTitleFont = Font(Bold, 8)
	p.TableBodyFont = Font(Regular, 6)
	p.TotalsFont = Font(Regular, 7)
	p.GrandTotalFont = Font(Bold, 8)
	p.LegendFont = Font(Italic, 7)
	p.IssuerThreshold = 50
	p.BuyerThreshold = 26
	p.WordsThreshold = 26
	p.Columns[ColCode].Width = 5
	p.Columns[ColQuantity].Width = 9
	p.Columns[ColUnit].Width = 6
	p.Columns[ColDescription].Width = 16
	p.Columns[ColUnitPrice].Width = 8
	p.Columns[ColLineTotal].Width = 10
	p.TotalsLabelWidth = 34
	p.TotalsValueWidth = 20
	p.LogoWidth = 30
	p.FooterImageWidth = 36
	return p
}

var profiles = map[string]func() Profile{
	ProfileTicket80:       ticket80,
	ProfileTicket80Legacy: ticket80Legacy,
	ProfileTicket58:       ticket58,
}

// LookupProfile devuelve el perfil por nombre ("" = perfil por defecto).
func LookupProfile(name string) (Profile, error) {
	if name == "" {
		name = DefaultProfile
	}
	build, ok := profiles[name]
	if !ok {
		return Profile{}, fmt.Errorf("layout: perfil %q: %w", name, domain.ErrUnknownProfile)
	}
	return build(), nil
}

// ProfileNames nombres de los perfiles disponibles, ordenados.
func ProfileNames() []string {
	names := make([]string, 0, len(profiles))
	for n := range profiles {
		names = append(names, n)
	}
	sort.Strings(names)
	return names
}
