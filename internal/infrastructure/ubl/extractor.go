// Package ubl extrae comprobantes SUNAT en formato UBL 2.1 (Invoice) a
// entity.InvoiceRecord.
//
// Las rutas se buscan por nombre local, sin prefijo de namespace, de modo que
// documentos con prefijos distintos de cbc/cac se leen igual.
package ubl

import (
	"errors"
	"fmt"
	"io"
	"strings"

	"github.com/beevik/etree"
	"golang.org/x/text/encoding/charmap"
	"golang.org/x/text/encoding/ianaindex"
	"golang.org/x/text/transform"

	"github.com/jhoicas/ticketera/internal/domain"
	"github.com/jhoicas/ticketera/internal/domain/entity"
	"github.com/jhoicas/ticketera/pkg/sunat"
)

// Extractor lee el XML UBL de un comprobante. No guarda estado; es seguro
// usarlo desde varias goroutines.
type Extractor struct{}

// NewExtractor crea un Extractor.
func NewExtractor() *Extractor {
	return &Extractor{}
}

// Extract interpreta el XML y devuelve el comprobante con centinelas en los
// campos ausentes. Un XML mal formado devuelve domain.ErrExtraction.
func (x *Extractor) Extract(data []byte) (entity.InvoiceRecord, error) {
	doc := etree.NewDocument()
	doc.ReadSettings.CharsetReader = charsetReader
	if err := doc.ReadFromBytes(data); err != nil {
		return entity.InvoiceRecord{}, fmt.Errorf("ubl: parsear XML: %w: %v", domain.ErrExtraction, err)
	}
	root := doc.Root()
	if root == nil {
		return entity.InvoiceRecord{}, fmt.Errorf("ubl: documento sin raíz: %w", domain.ErrExtraction)
	}

	rec := entity.InvoiceRecord{
		DocumentNumber:    childText(root, "ID", entity.NotAvailable),
		IssueDate:         childText(root, "IssueDate", entity.NotAvailable),
		IssueTime:         childText(root, "IssueTime", ""),
		ReferenceDocument: findText(root, ".//DespatchDocumentReference/ID", ""),
	}

	// ── Notas: monto en letras, forma de pago y otras ──
	for _, n := range root.SelectElements("Note") {
		text := strings.TrimSpace(n.Text())
		switch {
		case n.SelectAttrValue("languageLocaleID", "") == sunat.LegendAmountInWords:
			rec.AmountInWords = text
		case n.SelectAttrValue("languageID", "") == sunat.NotePaymentTermLanguage:
			rec.PaymentTerm = text
		default:
			rec.Notes = append(rec.Notes, entity.Note{
				Text:             text,
				LanguageID:       n.SelectAttrValue("languageID", ""),
				LanguageLocaleID: n.SelectAttrValue("languageLocaleID", ""),
			})
		}
	}

	// ── Emisor ──
	if p := root.FindElement(".//AccountingSupplierParty/Party"); p != nil {
		rec.Issuer = entity.Party{
			Name:        firstText(p, entity.NotAvailable, ".//PartyName/Name", ".//RegistrationName", ".//Name"),
			TaxID:       findText(p, ".//ID", entity.NotAvailable),
			AddressLine: findText(p, ".//AddressLine/Line", entity.NotAvailable),
			District:    findText(p, ".//District", ""),
			Department:  firstText(p, "", ".//CityName", ".//CountrySubentity"),
			Email:       findText(p, ".//ElectronicMail", ""),
		}
	}

	// ── Adquiriente ──
	if p := root.FindElement(".//AccountingCustomerParty/Party"); p != nil {
		rec.Buyer = entity.Party{
			Name:        findText(p, ".//RegistrationName", entity.NotAvailable),
			TaxID:       findText(p, ".//ID", entity.NotAvailable),
			AddressLine: findText(p, ".//AddressLine/Line", entity.NotAvailable),
			District:    findText(p, ".//District", ""),
			Department:  firstText(p, "", ".//CityName", ".//CountrySubentity"),
		}
	}

	// ── Totales ──
	rec.Totals = entity.Totals{
		TaxableAmount: findText(root, ".//TaxSubtotal/TaxableAmount", entity.ZeroAmount),
		TaxAmount:     findText(root, ".//TaxTotal/TaxAmount", entity.ZeroAmount),
		PayableAmount: findText(root, ".//LegalMonetaryTotal/PayableAmount", entity.ZeroAmount),
	}

	// ── Líneas de detalle ──
	for _, line := range root.SelectElements("InvoiceLine") {
		unit := findText(line, "./Note", "")
		if unit == "" {
			if q := line.SelectElement("InvoicedQuantity"); q != nil {
				unit = q.SelectAttrValue("unitCode", "")
			}
		}
		rec.LineItems = append(rec.LineItems, entity.LineItem{
			Code:        findText(line, ".//SellersItemIdentification/ID", entity.NotAvailable),
			Unit:        unit,
			Description: findText(line, ".//Item/Description", entity.NotAvailable),
			Quantity:    findText(line, "./InvoicedQuantity", entity.ZeroQuantity),
			UnitPrice:   findText(line, ".//Price/PriceAmount", entity.ZeroAmount),
			LineTotal:   findText(line, "./LineExtensionAmount", entity.ZeroAmount),
		})
	}

	rec.Normalize()
	return rec, nil
}

// Validate revisa datos que no impiden imprimir pero conviene reportar.
// Devuelve nil o la unión de todas las advertencias.
func (x *Extractor) Validate(rec entity.InvoiceRecord) error {
	var errs []error
	if entity.Present(rec.Issuer.TaxID) {
		if err := sunat.ValidateRUC(rec.Issuer.TaxID); err != nil {
			errs = append(errs, fmt.Errorf("emisor: %w", err))
		}
	} else {
		errs = append(errs, errors.New("emisor: RUC ausente"))
	}
	if rec.Buyer.IdentityLabel() == "RUC" {
		if err := sunat.ValidateRUC(rec.Buyer.TaxID); err != nil {
			errs = append(errs, fmt.Errorf("adquiriente: %w", err))
		}
	}
	if len(rec.LineItems) == 0 {
		errs = append(errs, errors.New("comprobante sin líneas de detalle"))
	}
	return errors.Join(errs...)
}

// charsetReader decodifica las codificaciones de un byte habituales en
// comprobantes generados por sistemas antiguos.
func charsetReader(label string, input io.Reader) (io.Reader, error) {
	switch strings.ToLower(strings.TrimSpace(label)) {
	case "utf-8", "utf8", "":
		return input, nil
	case "iso-8859-1", "iso8859-1", "latin1", "latin-1":
		return transform.NewReader(input, charmap.ISO8859_1.NewDecoder()), nil
	case "windows-1252", "cp1252":
		return transform.NewReader(input, charmap.Windows1252.NewDecoder()), nil
	}
	enc, err := ianaindex.IANA.Encoding(label)
	if err != nil || enc == nil {
		return nil, fmt.Errorf("ubl: codificación no soportada %q", label)
	}
	return transform.NewReader(input, enc.NewDecoder()), nil
}

// ── Auxiliares de búsqueda ───────────────────────────────────────────────────

func childText(el *etree.Element, tag, def string) string {
	c := el.SelectElement(tag)
	if c == nil {
		return def
	}
	return orDefault(c.Text(), def)
}

func findText(el *etree.Element, path, def string) string {
	c := el.FindElement(path)
	if c == nil {
		return def
	}
	return orDefault(c.Text(), def)
}

func firstText(el *etree.Element, def string, paths ...string) string {
	for _, path := range paths {
		if v := findText(el, path, ""); v != "" {
			return v
		}
	}
	return def
}

func orDefault(s, def string) string {
	s = strings.TrimSpace(s)
	if s == "" {
		return def
	}
	return s
}
