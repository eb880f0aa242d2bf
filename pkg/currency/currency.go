package currency

import (
	"fmt"
	"strconv"
	"strings"

	"github.com/shopspring/decimal"
	"golang.org/x/text/language"
	"golang.org/x/text/message"
)

const symbol = "Rp "

// O locale indonésio agrupa milhares com "."
var printer = message.NewPrinter(language.Indonesian)

// FormatCurrency arredonda para o inteiro mais próximo (metade para longe do zero)
// e formata em rupias: "Rp 600.000.000", "-Rp 1.000".
func FormatCurrency(amount decimal.Decimal) string {
	rounded := amount.Round(0)
	if rounded.IsNegative() {
		return "-" + symbol + group(rounded.Neg())
	}
	return symbol + group(rounded)
}

// FormatNumber formata o valor agrupado, sem símbolo
func FormatNumber(amount decimal.Decimal) string {
	rounded := amount.Round(0)
	if rounded.IsNegative() {
		return "-" + group(rounded.Neg())
	}
	return group(rounded)
}

func FormatPercentage(value float64) string {
	return fmt.Sprintf("%.2f%%", value)
}

// ParseCurrency descarta tudo que não for dígito e interpreta o restante.
// Entrada vazia, inválida ou fora do intervalo de int64 retorna 0.
func ParseCurrency(value string) int64 {
	var b strings.Builder
	for _, r := range value {
		if r >= '0' && r <= '9' {
			b.WriteRune(r)
		}
	}

	parsed, err := strconv.ParseInt(b.String(), 10, 64)
	if err != nil {
		return 0
	}
	return parsed
}

func group(amount decimal.Decimal) string {
	return printer.Sprintf("%d", amount.IntPart())
}
