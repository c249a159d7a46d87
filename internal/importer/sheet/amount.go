package sheet

import (
	"errors"
	"strings"
	"unicode"

	"github.com/shopspring/decimal"
)

var errEmpty = errors.New("empty number")

// parseNumber reads "1.234,56", "1 234,56", "1,234.56", "12,5" and "12.5".
// When both separators appear the last one is the decimal separator. Currency
// labels such as TND, DT or € are ignored.
func parseNumber(s string) (decimal.Decimal, error) {
	clean := strings.Map(func(r rune) rune {
		switch {
		case unicode.IsDigit(r), r == '.', r == ',', r == '-':
			return r
		}

		return -1
	}, s)

	if clean == "" {
		return decimal.Zero, errEmpty
	}

	lastDot := strings.LastIndexByte(clean, '.')
	lastComma := strings.LastIndexByte(clean, ',')

	switch {
	case lastDot >= 0 && lastComma >= 0 && lastComma > lastDot:
		clean = strings.ReplaceAll(clean, ".", "")
		clean = strings.Replace(clean, ",", ".", 1)
	case lastDot >= 0 && lastComma >= 0:
		clean = strings.ReplaceAll(clean, ",", "")
	case lastComma >= 0:
		if strings.Count(clean, ",") > 1 {
			clean = strings.ReplaceAll(clean, ",", "")
		} else {
			clean = strings.Replace(clean, ",", ".", 1)
		}
	case strings.Count(clean, ".") > 1:
		clean = strings.ReplaceAll(clean, ".", "")
	}

	return decimal.NewFromString(clean)
}

// parseCents converts an amount to cents, rounding half away from zero.
func parseCents(s string) (int64, error) {
	d, err := parseNumber(s)
	if err != nil {
		return 0, err
	}

	return d.Shift(2).Round(0).IntPart(), nil
}
