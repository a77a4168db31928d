// Package currencyutils normalizes the amount strings found in statement
// exports into decimal values.
package currencyutils

import (
	"fmt"
	"strings"

	"github.com/shopspring/decimal"
)

// placeholders are the cell values banks use for "no amount on this side".
// A debit cell holding one of these marks a credit-side row.
var placeholders = map[string]struct{}{
	"":     {},
	"-":    {},
	"na":   {},
	"n/a":  {},
	"nan":  {},
	"none": {},
	"null": {},
}

// IsPlaceholder reports whether a cell value stands for an absent amount.
func IsPlaceholder(s string) bool {
	_, ok := placeholders[strings.ToLower(strings.TrimSpace(s))]
	return ok
}

// ParseAmount parses an amount string into a decimal magnitude, tolerating
// currency symbols and digit-group separators. Placeholder values are an
// error here; callers that treat them specially check IsPlaceholder first.
func ParseAmount(amountStr string) (decimal.Decimal, error) {
	if IsPlaceholder(amountStr) {
		return decimal.Zero, fmt.Errorf("no amount in %q", amountStr)
	}

	standardized := StandardizeAmount(amountStr)
	amount, err := decimal.NewFromString(standardized)
	if err != nil {
		return decimal.Zero, fmt.Errorf("failed to parse amount %q: %w", amountStr, err)
	}

	return amount, nil
}

// StandardizeAmount strips currency symbols and group separators so the
// result parses with decimal.NewFromString. Handles "₹1,234.56",
// "Rs 1,234.56", "CHF 1'234.56", "1.234,56" and plain "1234.56".
func StandardizeAmount(amountStr string) string {
	amountStr = strings.TrimSpace(amountStr)

	// Currency words and symbols.
	for _, sym := range []string{"₹", "$", "€", "£", "¥", "CHF", "INR", "Rs.", "RS.", "Rs", "RS", "rs"} {
		amountStr = strings.ReplaceAll(amountStr, sym, "")
	}
	amountStr = strings.ReplaceAll(amountStr, " ", "")

	// European decimal comma (1.234,56) versus group comma (1,234.56).
	if strings.Contains(amountStr, ",") && strings.Contains(amountStr, ".") {
		if strings.LastIndex(amountStr, ".") < strings.LastIndex(amountStr, ",") {
			amountStr = strings.ReplaceAll(amountStr, ".", "")
			amountStr = strings.ReplaceAll(amountStr, ",", ".")
		} else {
			amountStr = strings.ReplaceAll(amountStr, ",", "")
		}
	} else if strings.Contains(amountStr, ",") {
		parts := strings.Split(amountStr, ",")
		if len(parts) > 1 && len(parts[len(parts)-1]) <= 2 {
			amountStr = strings.ReplaceAll(amountStr, ",", ".")
		} else {
			amountStr = strings.ReplaceAll(amountStr, ",", "")
		}
	}

	// Apostrophe group separators (1'234.56).
	amountStr = strings.ReplaceAll(amountStr, "'", "")

	return amountStr
}

// FormatAmount renders a decimal with two places for display.
func FormatAmount(amount decimal.Decimal) string {
	return amount.StringFixed(2)
}
