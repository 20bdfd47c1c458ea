// Package sunat contiene catálogos y validaciones de comprobantes electrónicos
// SUNAT (Perú) usados al imprimir tickets de factura y boleta.
package sunat

import "strings"

// =============================================================================
// Catálogo 01 - Tipo de documento
// =============================================================================

const (
	DocumentTypeFactura = "01" // Factura
	DocumentTypeBoleta  = "03" // Boleta de venta
)

// Títulos impresos en la cabecera del ticket.
const (
	TitleFactura = "FACTURA"
	TitleBoleta  = "BOLETA DE VENTA"
	// TitleSuffix se añade al título del tipo de comprobante.
	TitleSuffix = "ELECTRÓNICA"
)

// DocumentTitle devuelve el título según la serie del comprobante: las series
// de factura empiezan por "F"; cualquier otra se imprime como boleta.
func DocumentTitle(documentNumber string) string {
	n := strings.TrimSpace(documentNumber)
	if n != "" && (n[0] == 'F' || n[0] == 'f') {
		return TitleFactura
	}
	return TitleBoleta
}

// DocumentTypeCode devuelve el código del catálogo 01 para la serie.
func DocumentTypeCode(documentNumber string) string {
	if DocumentTitle(documentNumber) == TitleFactura {
		return DocumentTypeFactura
	}
	return DocumentTypeBoleta
}

// =============================================================================
// Catálogo 06 - Tipo de documento de identidad
// =============================================================================

const (
	IdentityDNI = "1" // Documento Nacional de Identidad
	IdentityCE  = "4" // Carnet de extranjería
	IdentityRUC = "6" // Registro Único de Contribuyentes
)

const (
	rucLength = 11
	dniLength = 8
)

// IdentityLabel devuelve la etiqueta impresa delante del documento del
// adquiriente: "RUC" (11 dígitos), "DNI" (8), "CE" (otro valor no vacío).
// Devuelve "" cuando el documento está vacío o es un marcador.
func IdentityLabel(taxID string) string {
	id := strings.TrimSpace(taxID)
	if IsPlaceholder(id) {
		return ""
	}
	switch len([]rune(id)) {
	case rucLength:
		return "RUC"
	case dniLength:
		return "DNI"
	default:
		return "CE"
	}
}

// IdentityCode devuelve el código del catálogo 06 equivalente a IdentityLabel.
func IdentityCode(taxID string) string {
	switch IdentityLabel(taxID) {
	case "RUC":
		return IdentityRUC
	case "DNI":
		return IdentityDNI
	case "CE":
		return IdentityCE
	default:
		return ""
	}
}

// =============================================================================
// Leyendas (catálogo 52) e indicadores de notas UBL
// =============================================================================

const (
	// LegendAmountInWords es el languageLocaleID de la nota con el monto en letras.
	LegendAmountInWords = "1000"
	// NotePaymentTermLanguage es el languageID de la nota con la forma de pago.
	NotePaymentTermLanguage = "L"
)

// CurrencySymbol símbolo del sol peruano usado en los totales.
const CurrencySymbol = "S/."

// =============================================================================
// Marcadores de dato ausente
// =============================================================================

// NotAvailable es el valor que el extractor usa para campos de texto ausentes.
const NotAvailable = "N/A"

var placeholders = map[string]bool{
	"":    true,
	"N/A": true,
	"n/a": true,
	"-":   true,
	"--":  true,
	"---": true,
}

// IsPlaceholder indica si el valor representa un dato ausente.
func IsPlaceholder(s string) bool {
	return placeholders[strings.TrimSpace(s)]
}

// JoinPresent une con " - " las partes que no son marcadores.
func JoinPresent(parts ...string) string {
	out := make([]string, 0, len(parts))
	for _, p := range parts {
		if IsPlaceholder(p) {
			continue
		}
		out = append(out, strings.TrimSpace(p))
	}
	return strings.Join(out, " - ")
}
