package utils

import (
	"fmt"
	"strings"

	"github.com/MTeguhWijaksono07/TI215310-tubes-dpm-untungnyakutakpilihmenyerah/internal/apperrors"
	"github.com/shopspring/decimal"
)

// ParseAmount parses a user-entered amount string into a decimal value.
// Input arrives locale-formatted with "." or "," thousands separators
// (e.g. "1.000.000"); separators are stripped before parsing.
func ParseAmount(s string) (decimal.Decimal, error) {
	cleaned := strings.NewReplacer(".", "", ",", "", " ", "").Replace(strings.TrimSpace(s))
	if cleaned == "" {
		return decimal.Zero, fmt.Errorf("amount is empty: %w", apperrors.ErrValidation)
	}
	d, err := decimal.NewFromString(cleaned)
	if err != nil {
		return decimal.Zero, fmt.Errorf("amount %q is not numeric: %w", s, apperrors.ErrValidation)
	}
	return d, nil
}

// ParsePositiveAmount parses like ParseAmount and additionally requires a
// strictly positive value.
func ParsePositiveAmount(s string) (decimal.Decimal, error) {
	d, err := ParseAmount(s)
	if err != nil {
		return decimal.Zero, err
	}
	if !d.IsPositive() {
		return decimal.Zero, fmt.Errorf("amount must be positive: %w", apperrors.ErrValidation)
	}
	return d, nil
}

// ParseNonNegativeAmount parses like ParseAmount and rejects negative values.
// Zero is allowed; a wallet may start empty.
func ParseNonNegativeAmount(s string) (decimal.Decimal, error) {
	d, err := ParseAmount(s)
	if err != nil {
		return decimal.Zero, err
	}
	if d.IsNegative() {
		return decimal.Zero, fmt.Errorf("amount must not be negative: %w", apperrors.ErrValidation)
	}
	return d, nil
}
