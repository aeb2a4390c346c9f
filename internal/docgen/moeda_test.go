package docgen

import (
	"testing"

	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/require"
)

func nd(s string) decimal.NullDecimal {
	d, _ := decimal.NewFromString(s)
	return decimal.NewNullDecimal(d)
}

func TestFormatBRL(t *testing.T) {
	casos := []struct {
		valor    string
		esperado string
	}{
		{"0", "R$ 0,00"},
		{"5", "R$ 5,00"},
		{"1234.56", "R$ 1.234,56"},
		{"1234567.89", "R$ 1.234.567,89"},
		{"1000000", "R$ 1.000.000,00"},
		{"999.999", "R$ 1.000,00"},
		{"-1234.56", "R$ -1.234,56"},
	}
	for _, c := range casos {
		require.Equal(t, c.esperado, FormatBRL(nd(c.valor)), "valor %s", c.valor)
	}
}

func TestFormatBRLSemValor(t *testing.T) {
	require.Equal(t, "Não informado", FormatBRL(decimal.NullDecimal{}))
}

func TestFormatDecimalVirgula(t *testing.T) {
	require.Equal(t, "1234,56", FormatDecimalVirgula(nd("1234.56")))
	require.Equal(t, "0,00", FormatDecimalVirgula(decimal.NullDecimal{}))
	require.Equal(t, "7,00", FormatDecimalVirgula(nd("7")))
}
