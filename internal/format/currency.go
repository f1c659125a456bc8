// Package format renders amounts for display in the calculator page.
package format

import (
	"errors"
	"fmt"
	"math"
	"math/big"
	"strings"

	"github.com/dustin/go-humanize"
)

// ErrNonFinite is returned for NaN and infinite amounts.
var ErrNonFinite = errors.New("amount is not a finite number")

// Placeholder is shown in place of an amount that cannot be formatted.
const Placeholder = "—"

// es-CO peso: "$" plus a no-break space, "." groups thousands, no decimals.
const (
	currencyPrefix = "$\u00a0"
	groupedNoCents = "#.###,"
)

// FormatFloat goes through int64; past 2^53 every float is already whole.
const exactIntegerLimit = 1 << 53

// Currency formats amount as Colombian pesos rounded to whole units,
// half away from zero.
func Currency(amount float64) (string, error) {
	if math.IsNaN(amount) || math.IsInf(amount, 0) {
		return "", fmt.Errorf("format %v: %w", amount, ErrNonFinite)
	}

	digits := groupDigits(math.Abs(amount))
	if amount < 0 && digits != "0" {
		return "-" + currencyPrefix + digits, nil
	}
	return currencyPrefix + digits, nil
}

func groupDigits(v float64) string {
	if v < exactIntegerLimit {
		return humanize.FormatFloat(groupedNoCents, v)
	}
	n, _ := new(big.Float).SetFloat64(v).Int(nil)
	return strings.ReplaceAll(humanize.BigComma(n), ",", ".")
}

// CurrencyOr is Currency with fallback substituted on error.
func CurrencyOr(amount float64, fallback string) string {
	s, err := Currency(amount)
	if err != nil {
		return fallback
	}
	return s
}
