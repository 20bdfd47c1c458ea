package ubl_test

import (
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"golang.org/x/text/encoding/charmap"

	"github.com/jhoicas/ticketera/internal/domain"
	"github.com/jhoicas/ticketera/internal/domain/entity"
	"github.com/jhoicas/ticketera/internal/infrastructure/ubl"
)

const sampleInvoice = `<?xml version="1.0" encoding="UTF-8"?>
<Invoice xmlns="urn:oasis:names:specification:ubl:schema:xsd:Invoice-2"
         xmlns:cac="urn:oasis:names:specification:ubl:schema:xsd:CommonAggregateComponents-2"
         xmlns:cbc="urn:oasis:names:specification:ubl:schema:xsd:CommonBasicComponents-2">
  <cbc:UBLVersionID>2.1</cbc:UBLVersionID>
  <cbc:ID>F001-000123</cbc:ID>
  <cbc:IssueDate>2024-03-15</cbc:IssueDate>
  <cbc:IssueTime>10:42:00</cbc:IssueTime>
  <cbc:Note languageLocaleID="1000">CIENTO DIECIOCHO CON 00/100 SOLES</cbc:Note>
  <cbc:Note languageID="L">Contado</cbc:Note>
  <cbc:Note>Entrega en almacén</cbc:Note>
  <cac:DespatchDocumentReference>
    <cbc:ID>T001-0045</cbc:ID>
  </cac:DespatchDocumentReference>
  <cac:AccountingSupplierParty>
    <cac:Party>
      <cac:PartyIdentification><cbc:ID schemeID="6">20100070970</cbc:ID></cac:PartyIdentification>
      <cac:PartyName><cbc:Name>COMERCIAL MANCHESTER S.A.C.</cbc:Name></cac:PartyName>
      <cac:PartyLegalEntity>
        <cbc:RegistrationName>MANCHESTER SOCIEDAD ANONIMA CERRADA</cbc:RegistrationName>
        <cac:RegistrationAddress>
          <cbc:ID>150115</cbc:ID>
          <cbc:CityName>LIMA</cbc:CityName>
          <cbc:District>LA VICTORIA</cbc:District>
          <cac:AddressLine><cbc:Line>AV. GRAU 1234</cbc:Line></cac:AddressLine>
        </cac:RegistrationAddress>
      </cac:PartyLegalEntity>
      <cac:Contact><cbc:ElectronicMail>ventas@manchester.pe</cbc:ElectronicMail></cac:Contact>
    </cac:Party>
  </cac:AccountingSupplierParty>
  <cac:AccountingCustomerParty>
    <cac:Party>
      <cac:PartyIdentification><cbc:ID schemeID="1">12345678</cbc:ID></cac:PartyIdentification>
      <cac:PartyLegalEntity>
        <cbc:RegistrationName>JUAN PÉREZ</cbc:RegistrationName>
      </cac:PartyLegalEntity>
    </cac:Party>
  </cac:AccountingCustomerParty>
  <cac:TaxTotal>
    <cbc:TaxAmount currencyID="PEN">18.00</cbc:TaxAmount>
    <cac:TaxSubtotal>
      <cbc:TaxableAmount currencyID="PEN">100.00</cbc:TaxableAmount>
      <cbc:TaxAmount currencyID="PEN">18.00</cbc:TaxAmount>
    </cac:TaxSubtotal>
  </cac:TaxTotal>
  <cac:LegalMonetaryTotal>
    <cbc:PayableAmount currencyID="PEN">118.00</cbc:PayableAmount>
  </cac:LegalMonetaryTotal>
  <cac:InvoiceLine>
    <cbc:ID>1</cbc:ID>
    <cbc:Note>UNIDAD</cbc:Note>
    <cbc:InvoicedQuantity unitCode="NIU">2.000</cbc:InvoicedQuantity>
    <cbc:LineExtensionAmount currencyID="PEN">50.00</cbc:LineExtensionAmount>
    <cac:PricingReference>
      <cac:AlternativeConditionPrice><cbc:PriceAmount>29.50</cbc:PriceAmount></cac:AlternativeConditionPrice>
    </cac:PricingReference>
    <cac:Item>
      <cbc:Description>ARROZ SUPERIOR COSTEÑO 5KG</cbc:Description>
      <cac:SellersItemIdentification><cbc:ID>ARR-5</cbc:ID></cac:SellersItemIdentification>
    </cac:Item>
    <cac:Price><cbc:PriceAmount currencyID="PEN">25.00</cbc:PriceAmount></cac:Price>
  </cac:InvoiceLine>
  <cac:InvoiceLine>
    <cbc:ID>2</cbc:ID>
    <cbc:InvoicedQuantity unitCode="KGM">1.500</cbc:InvoicedQuantity>
    <cbc:LineExtensionAmount currencyID="PEN">50.00</cbc:LineExtensionAmount>
    <cac:Item><cbc:Description>AZÚCAR RUBIA</cbc:Description></cac:Item>
  </cac:InvoiceLine>
</Invoice>`

func TestExtractor_FacturaCompleta(t *testing.T) {
	rec, err := ubl.NewExtractor().Extract([]byte(sampleInvoice))
	require.NoError(t, err)

	assert.Equal(t, "F001-000123", rec.DocumentNumber)
	assert.Equal(t, "FACTURA", rec.DocumentType())
	assert.Equal(t, "2024-03-15", rec.IssueDate)
	assert.Equal(t, "10:42:00", rec.IssueTime)
	assert.Equal(t, "CIENTO DIECIOCHO CON 00/100 SOLES", rec.AmountInWords)
	assert.Equal(t, "Contado", rec.PaymentTerm)
	require.Len(t, rec.Notes, 1)
	assert.Equal(t, "Entrega en almacén", rec.Notes[0].Text)
	assert.Equal(t, "T001-0045", rec.ReferenceDocument)

	assert.Equal(t, "COMERCIAL MANCHESTER S.A.C.", rec.Issuer.Name)
	assert.Equal(t, "20100070970", rec.Issuer.TaxID)
	assert.Equal(t, "AV. GRAU 1234", rec.Issuer.AddressLine)
	assert.Equal(t, "LA VICTORIA", rec.Issuer.District)
	assert.Equal(t, "LIMA", rec.Issuer.Department)
	assert.Equal(t, "ventas@manchester.pe", rec.Issuer.Email)

	assert.Equal(t, "JUAN PÉREZ", rec.Buyer.Name)
	assert.Equal(t, "12345678", rec.Buyer.TaxID)
	assert.Equal(t, "DNI", rec.Buyer.IdentityLabel())
	assert.False(t, rec.Buyer.HasAddress())

	assert.Equal(t, entity.Totals{TaxableAmount: "100.00", TaxAmount: "18.00", PayableAmount: "118.00"}, rec.Totals)
}

func TestExtractor_LineasConCentinelas(t *testing.T) {
	rec, err := ubl.NewExtractor().Extract([]byte(sampleInvoice))
	require.NoError(t, err)
	require.Len(t, rec.LineItems, 2)

	first := rec.LineItems[0]
	assert.Equal(t, entity.LineItem{
		Code:        "ARR-5",
		Unit:        "UNIDAD",
		Description: "ARROZ SUPERIOR COSTEÑO 5KG",
		Quantity:    "2.000",
		UnitPrice:   "25.00",
		LineTotal:   "50.00",
	}, first)

	second := rec.LineItems[1]
	assert.Equal(t, entity.NotAvailable, second.Code)
	assert.Equal(t, "KGM", second.Unit, "sin nota se usa el unitCode")
	assert.Equal(t, entity.ZeroAmount, second.UnitPrice)
	assert.Equal(t, "1.500", second.Quantity)
}

func TestExtractor_DocumentoVacioUsaCentinelas(t *testing.T) {
	rec, err := ubl.NewExtractor().Extract([]byte(`<Invoice/>`))
	require.NoError(t, err)
	assert.Equal(t, entity.NotAvailable, rec.DocumentNumber)
	assert.Equal(t, "BOLETA DE VENTA", rec.DocumentType())
	assert.Equal(t, entity.NotAvailable, rec.Issuer.Name)
	assert.Equal(t, entity.NotAvailable, rec.IssueTime)
	assert.Equal(t, entity.NotAvailable, rec.Buyer.District)
	assert.Equal(t, entity.ZeroAmount, rec.Totals.PayableAmount)
	assert.Empty(t, rec.LineItems)
	assert.Empty(t, rec.PaymentTerm)
}

func TestExtractor_XMLMalFormado(t *testing.T) {
	_, err := ubl.NewExtractor().Extract([]byte(`<Invoice><ID>F001</ID`))
	assert.ErrorIs(t, err, domain.ErrExtraction)

	_, err = ubl.NewExtractor().Extract([]byte(``))
	assert.ErrorIs(t, err, domain.ErrExtraction)
}

func TestExtractor_CodificacionISO88591(t *testing.T) {
	src := strings.Replace(sampleInvoice, `encoding="UTF-8"`, `encoding="ISO-8859-1"`, 1)
	latin1, err := charmap.ISO8859_1.NewEncoder().String(src)
	require.NoError(t, err)

	rec, err := ubl.NewExtractor().Extract([]byte(latin1))
	require.NoError(t, err)
	assert.Equal(t, "JUAN PÉREZ", rec.Buyer.Name)
	assert.Equal(t, "ARROZ SUPERIOR COSTEÑO 5KG", rec.LineItems[0].Description)
}

func TestExtractor_Validate(t *testing.T) {
	x := ubl.NewExtractor()
	rec, err := x.Extract([]byte(sampleInvoice))
	require.NoError(t, err)
	assert.NoError(t, x.Validate(rec))

	rec.Issuer.TaxID = "20100070971"
	rec.LineItems = nil
	err = x.Validate(rec)
	require.Error(t, err)
	assert.Contains(t, err.Error(), "emisor")
	assert.Contains(t, err.Error(), "sin líneas")
}
