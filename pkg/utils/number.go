package utils

import (
	"fmt"
	"strings"

	"github.com/shopspring/decimal"
)

// FormatBRL formata o valor no padrão brasileiro: R$ 1.234,56
func FormatBRL(v decimal.Decimal) string {
	v = v.Round(2)

	sign := ""
	if v.IsNegative() {
		sign = "-"
		v = v.Abs()
	}

	intPart, fracPart, _ := strings.Cut(v.StringFixed(2), ".")
	return fmt.Sprintf("%sR$ %s,%s", sign, groupThousands(intPart), fracPart)
}

// FormatPercent formata a porcentagem com uma casa decimal: 66.7%
func FormatPercent(v decimal.Decimal) string {
	return v.StringFixed(1) + "%"
}

func groupThousands(digits string) string {
	if len(digits) <= 3 {
		return digits
	}

	var b strings.Builder
	head := len(digits) % 3
	if head > 0 {
		b.WriteString(digits[:head])
	}

	for i := head; i < len(digits); i += 3 {
		if b.Len() > 0 {
			b.WriteByte('.')
		}
		b.WriteString(digits[i : i+3])
	}

	return b.String()
}
