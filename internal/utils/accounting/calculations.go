// Package accounting holds the salary arithmetic shared by services and renderers.
package accounting

import (
	"github.com/shopspring/decimal"
)

var hundred = decimal.NewFromInt(100)

// Remaining is salary minus withdrawn.
func Remaining(salary, withdrawn decimal.Decimal) decimal.Decimal {
	return salary.Sub(withdrawn)
}

// Percentage returns part/total*100 rounded to two places, or zero when
// total is zero.
func Percentage(part, total int) decimal.Decimal {
	if total <= 0 {
		return decimal.Zero
	}
	return decimal.NewFromInt(int64(part)).Mul(hundred).Div(decimal.NewFromInt(int64(total))).Round(2)
}

// FormatAmount renders an amount with thousands separators and two decimals,
// e.g. 1234567.5 -> "1,234,567.50".
func FormatAmount(amount decimal.Decimal) string {
	s := amount.StringFixed(2)
	neg := false
	if s[0] == '-' {
		neg = true
		s = s[1:]
	}
	intPart, frac := s[:len(s)-3], s[len(s)-3:]

	out := make([]byte, 0, len(s)+len(intPart)/3+1)
	for i := range intPart {
		if i > 0 && (len(intPart)-i)%3 == 0 {
			out = append(out, ',')
		}
		out = append(out, intPart[i])
	}
	out = append(out, frac...)
	if neg {
		return "-" + string(out)
	}
	return string(out)
}
