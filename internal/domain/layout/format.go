package layout

import (
	"strings"

	"github.com/jhoicas/ticketera/internal/domain/entity"
)

// Truncate corta el texto a n caracteres.
func Truncate(s string, n int) string {
	s = strings.TrimSpace(s)
	if n <= 0 {
		return s
	}
	r := []rune(s)
	if len(r) <= n {
		return s
	}
	return string(r[:n])
}

// FormatAmount importe con dos decimales; un texto inválido se imprime 0.00.
func FormatAmount(s string) string {
	return entity.Money(s).StringFixed(2)
}

// FormatCurrency importe con símbolo de moneda ("S/. 12.50").
func FormatCurrency(symbol, s string) string {
	if symbol == "" {
		return FormatAmount(s)
	}
	return symbol + " " + FormatAmount(s)
}
