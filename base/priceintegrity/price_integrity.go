package priceintegrity

import (
	bCtx "github.com/collectex/tradecore/base/ctx"
	"github.com/collectex/tradecore/domain"
)

// Display sentinels are valid non-monetary states and bypass numeric checks.
const (
	SentinelNotForSale = "Not for sale"
	SentinelNA         = "N/A"
)

// RepairResult reports the outcome of a repair pass. Corrected equals the
// input when it was already valid; OriginalDisplay is kept for audit logging.
type RepairResult struct {
	IsValid          bool
	Corrected        domain.Money
	OriginalDisplay  string
	CorrectedDisplay string
}

// PriceIntegrity is the last line of defense between a corrupted numeric
// price representation and a user or a signed transaction.
type PriceIntegrity interface {
	// ToBaseUnits parses a display string, optionally suffixed with a currency
	// symbol, into base units. Rejects non-numeric and negative values with
	// domain.ErrInvalidPriceFormat and values at or above the sanity ceiling
	// with domain.ErrPriceTooHigh. Zero is valid.
	ToBaseUnits(c bCtx.Ctx, displayPrice string) (domain.Money, error)
	// ToDisplay renders base units as "<decimal, 6 fractional digits> <SYMBOL>".
	ToDisplay(m domain.Money) string
	// Validate reports 0 <= value < ceiling.
	Validate(m domain.Money) bool
	// Repair substitutes fallback for an out-of-range value, logging the
	// discrepancy. A nil fallback uses the configured default. Never errors.
	Repair(c bCtx.Ctx, m domain.Money, fallback *domain.Money) RepairResult
	// Fallback returns the configured substitute value.
	Fallback() domain.Money
}

// IsDisplaySentinel reports whether a display string is one of the
// non-monetary placeholders.
func IsDisplaySentinel(s string) bool {
	return s == SentinelNotForSale || s == SentinelNA
}
