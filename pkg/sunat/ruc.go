package sunat

import (
	"fmt"
	"unicode"
)

// factores del módulo 11 aplicados a los 10 primeros dígitos del RUC.
var rucWeights = [10]int{5, 4, 3, 2, 7, 6, 5, 4, 3, 2}

// ValidateRUC valida longitud y dígito verificador de un RUC.
func ValidateRUC(ruc string) error {
	digits := extractDigits(ruc)
	if len(digits) != rucLength {
		return fmt.Errorf("sunat: RUC debe tener %d dígitos, se encontraron %d", rucLength, len(digits))
	}
	expected := ComputeRUCCheckDigit(digits[:10])
	if digits[10] != expected {
		return fmt.Errorf("sunat: dígito verificador del RUC inválido: esperado %c, recibido %c", expected, digits[10])
	}
	return nil
}

// ComputeRUCCheckDigit calcula el dígito verificador para los 10 primeros dígitos.
func ComputeRUCCheckDigit(base []byte) byte {
	var sum int
	for i := 0; i < len(base) && i < len(rucWeights); i++ {
		sum += int(base[i]-'0') * rucWeights[i]
	}
	d := 11 - sum%11
	switch d {
	case 10:
		d = 0
	case 11:
		d = 1
	}
	return byte('0' + d)
}

func extractDigits(s string) []byte {
	var out []byte
	for _, r := range s {
		if unicode.IsDigit(r) && r < unicode.MaxASCII {
			out = append(out, byte(r))
		}
	}
	return out
}
