package entity

import (
	"strings"

	"github.com/shopspring/decimal"

	"github.com/jhoicas/ticketera/pkg/sunat"
)

// Valores centinela para datos ausentes en el comprobante.
const (
	NotAvailable = sunat.NotAvailable
	ZeroAmount   = "0.00"
	ZeroQuantity = "0"
)

// InvoiceRecord es el comprobante ya extraído, listo para maquetar.
// Los importes se conservan como texto decimal y se interpretan al imprimir.
type InvoiceRecord struct {
	DocumentNumber    string
	IssueDate         string
	IssueTime         string
	Issuer            Party
	Buyer             Party
	ReferenceDocument string // guía de remisión
	PaymentTerm       string
	AmountInWords     string
	LineItems         []LineItem
	Totals            Totals
	Notes             []Note
}

// Party emisor o adquiriente. El correo solo se imprime para el emisor.
type Party struct {
	Name        string
	TaxID       string
	AddressLine string
	District    string
	Department  string
	Email       string
}

// LineItem una línea de detalle; el orden de LineItems es el de impresión.
type LineItem struct {
	Code        string
	Unit        string
	Description string
	Quantity    string
	UnitPrice   string
	LineTotal   string
}

// Totals resumen de importes, siempre presente.
type Totals struct {
	TaxableAmount string // OP. GRAVADA
	TaxAmount     string // IGV
	PayableAmount string // TOTAL
}

// Note nota libre del comprobante con sus atributos de idioma.
type Note struct {
	Text             string
	LanguageID       string
	LanguageLocaleID string
}

// NewInvoiceRecord devuelve un comprobante con todos los campos en su valor centinela.
func NewInvoiceRecord() InvoiceRecord {
	var r InvoiceRecord
	r.Normalize()
	return r
}

// Normalize rellena con centinelas los campos vacíos. Los textos opcionales
// que se omiten al imprimir (forma de pago, monto en letras) quedan vacíos.
func (r *InvoiceRecord) Normalize() {
	r.DocumentNumber = orDefault(r.DocumentNumber, NotAvailable)
	r.IssueDate = orDefault(r.IssueDate, NotAvailable)
	r.IssueTime = orDefault(r.IssueTime, NotAvailable)
	r.Issuer.normalize()
	r.Buyer.normalize()
	r.Totals.TaxableAmount = orDefault(r.Totals.TaxableAmount, ZeroAmount)
	r.Totals.TaxAmount = orDefault(r.Totals.TaxAmount, ZeroAmount)
	r.Totals.PayableAmount = orDefault(r.Totals.PayableAmount, ZeroAmount)
	for i := range r.LineItems {
		r.LineItems[i].normalize()
	}
}

func (p *Party) normalize() {
	p.Name = orDefault(p.Name, NotAvailable)
	p.TaxID = orDefault(p.TaxID, NotAvailable)
	p.AddressLine = orDefault(p.AddressLine, NotAvailable)
	p.District = orDefault(p.District, NotAvailable)
	p.Department = orDefault(p.Department, NotAvailable)
	p.Email = orDefault(p.Email, NotAvailable)
}

func (li *LineItem) normalize() {
	li.Code = orDefault(li.Code, NotAvailable)
	li.Unit = orDefault(li.Unit, NotAvailable)
	li.Description = orDefault(li.Description, NotAvailable)
	li.Quantity = orDefault(li.Quantity, ZeroQuantity)
	li.UnitPrice = orDefault(li.UnitPrice, ZeroAmount)
	li.LineTotal = orDefault(li.LineTotal, ZeroAmount)
}

// DocumentType devuelve "FACTURA" o "BOLETA DE VENTA" según la serie.
func (r InvoiceRecord) DocumentType() string {
	return sunat.DocumentTitle(r.DocumentNumber)
}

// Address devuelve la dirección compuesta sin los marcadores de dato ausente.
func (p Party) Address() string {
	return sunat.JoinPresent(p.AddressLine, p.District, p.Department)
}

// HasAddress indica si al menos una parte de la dirección es un dato real.
func (p Party) HasAddress() bool {
	return p.Address() != ""
}

// IdentityLabel etiqueta del documento de identidad ("RUC", "DNI", "CE" o "").
func (p Party) IdentityLabel() string {
	return sunat.IdentityLabel(p.TaxID)
}

// Money interpreta un importe decimal; un texto inválido vale cero.
func Money(s string) decimal.Decimal {
	d, err := decimal.NewFromString(strings.TrimSpace(s))
	if err != nil {
		return decimal.Zero
	}
	return d
}

// Present indica si el texto es un dato real y no un centinela.
func Present(s string) bool {
	return !sunat.IsPlaceholder(s)
}

func orDefault(s, def string) string {
	if strings.TrimSpace(s) == "" {
		return def
	}
	return s
}
