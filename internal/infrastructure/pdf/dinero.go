package pdf

import (
	"strings"

	"github.com/shopspring/decimal"
)

// formatearPesos imprime un monto en pesos chilenos sin decimales y con
// separador de miles: 1000000 -> "$ 1.000.000".
func formatearPesos(d decimal.Decimal) string {
	s := d.Round(0).StringFixed(0)
	negativo := strings.HasPrefix(s, "-")
	if negativo {
		s = s[1:]
	}
	s = miles(s)
	if negativo {
		return "-$ " + s
	}
	return "$ " + s
}

// miles inserta puntos de miles en un string numérico sin decimales.
// Ej: "25000" -> "25.000", "1000000" -> "1.000.000"
func miles(s string) string {
	n := len(s)
	if n <= 3 {
		return s
	}
	buf := make([]byte, 0, n+n/3)
	for i, c := range []byte(s) {
		if i > 0 && (n-i)%3 == 0 {
			buf = append(buf, '.')
		}
		buf = append(buf, c)
	}
	return string(buf)
}
