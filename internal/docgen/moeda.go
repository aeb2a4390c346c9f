package docgen

import (
	"strings"

	"github.com/shopspring/decimal"
)

// FormatBRL formata um valor na convenção monetária brasileira:
// "R$ 1.234,56". Valores ausentes viram "Não informado".
func FormatBRL(v decimal.NullDecimal) string {
	if !v.Valid {
		return "Não informado"
	}
	fixed := v.Decimal.StringFixed(2) // ex.: -1234567.89
	neg := strings.HasPrefix(fixed, "-")
	fixed = strings.TrimPrefix(fixed, "-")

	parts := strings.SplitN(fixed, ".", 2)
	inteiro, centavos := parts[0], parts[1]

	var b strings.Builder
	for i, d := range inteiro {
		if i > 0 && (len(inteiro)-i)%3 == 0 {
			b.WriteByte('.')
		}
		b.WriteRune(d)
	}

	out := "R$ " + b.String() + "," + centavos
	if neg {
		out = "R$ -" + b.String() + "," + centavos
	}
	return out
}

// FormatDecimalVirgula formata um valor com vírgula decimal e sem
// separador de milhar, como aparece na exportação CSV ("0,00" quando
// ausente).
func FormatDecimalVirgula(v decimal.NullDecimal) string {
	if !v.Valid {
		return "0,00"
	}
	return strings.Replace(v.Decimal.StringFixed(2), ".", ",", 1)
}
