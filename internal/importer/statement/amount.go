package statement

import (
	"strings"

	"github.com/shopspring/decimal"
)

// parseSpend extracts the spend amount from a row based on the
// profile's amount mode. Only outgoing money becomes an expense:
// credit rows and positive single-column amounts return !ok.
func parseSpend(p *Profile, cols colIndex, row []string) (decimal.Decimal, bool) {
	switch p.AmountMode {
	case amountSingle:
		amount, err := parseAmount(cellValue(row, cols[p.AmountCol]))
		if err != nil || !amount.IsNegative() {
			return decimal.Zero, false
		}
		return amount.Neg(), true

	case amountSplit:
		amount, err := parseAmount(cellValue(row, cols[p.DebitCol]))
		if err != nil || amount.IsZero() {
			return decimal.Zero, false
		}
		return amount.Abs(), true
	}

	return decimal.Zero, false
}

// parseAmount handles both "1,234.56" and European "1.234,56" styles.
// Whichever separator appears last is taken as the decimal point.
func parseAmount(s string) (decimal.Decimal, error) {
	clean := strings.ReplaceAll(s, " ", "")

	if strings.LastIndex(clean, ",") > strings.LastIndex(clean, ".") {
		clean = strings.ReplaceAll(clean, ".", "")
		clean = strings.ReplaceAll(clean, ",", ".")
	} else {
		clean = strings.ReplaceAll(clean, ",", "")
	}

	return decimal.NewFromString(clean)
}
