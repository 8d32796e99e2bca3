package priceintegrity

import (
	"math/big"
	"strings"

	"github.com/shopspring/decimal"

	bCtx "github.com/collectex/tradecore/base/ctx"
	"github.com/collectex/tradecore/base/log"
	"github.com/collectex/tradecore/domain"
)

const displayFractionDigits = 6

type PriceIntegrityCfg struct {
	// symbol applied when the parsed string carries none
	DefaultCurrency string
	// base-unit exponent, e.g. 18 for wei-style denominations
	TokenDecimals int32
	// whole units; a value equal to the ceiling is already invalid
	CeilingUnits int64
	// whole units, decimal string, substituted on repair
	FallbackUnits string
}

type impl struct {
	defaultCurrency string
	tokenDecimals   int32
	ceiling         *big.Int
	fallback        *big.Int
}

func New(cfg *PriceIntegrityCfg) PriceIntegrity {
	ceiling := decimal.NewFromInt(cfg.CeilingUnits).Shift(cfg.TokenDecimals).BigInt()
	fb, err := decimal.NewFromString(cfg.FallbackUnits)
	if err != nil {
		log.Log().WithFields(log.Fields{
			"fallback": cfg.FallbackUnits,
			"err":      err,
		}).Panic("invalid fallback configuration")
	}
	return &impl{
		defaultCurrency: cfg.DefaultCurrency,
		tokenDecimals:   cfg.TokenDecimals,
		ceiling:         ceiling,
		fallback:        fb.Shift(cfg.TokenDecimals).BigInt(),
	}
}

func (im *impl) ToBaseUnits(c bCtx.Ctx, displayPrice string) (domain.Money, error) {
	numeric, currency := splitCurrencySuffix(displayPrice)
	if currency == "" {
		currency = im.defaultCurrency
	}

	if numeric == "" {
		return domain.Money{}, domain.ErrInvalidPriceFormat
	}
	d, err := decimal.NewFromString(numeric)
	if err != nil {
		c.WithFields(log.Fields{
			"displayPrice": displayPrice,
			"err":          err,
		}).Warn("decimal.NewFromString failed")
		return domain.Money{}, domain.ErrInvalidPriceFormat
	}
	if d.IsNegative() {
		return domain.Money{}, domain.ErrInvalidPriceFormat
	}

	// sub-base-unit precision is truncated, not rounded
	value := d.Shift(im.tokenDecimals).Truncate(0).BigInt()
	if value.Cmp(im.ceiling) >= 0 {
		return domain.Money{}, domain.ErrPriceTooHigh
	}
	return domain.NewMoney(value, currency), nil
}

func (im *impl) ToDisplay(m domain.Money) string {
	value := m.Value
	if value == nil {
		value = domain.Big0
	}
	currency := m.Currency
	if currency == "" {
		currency = im.defaultCurrency
	}
	d := decimal.NewFromBigInt(value, -im.tokenDecimals)
	return d.StringFixed(displayFractionDigits) + " " + currency
}

func (im *impl) Validate(m domain.Money) bool {
	if m.Value == nil {
		return false
	}
	return m.Value.Sign() >= 0 && m.Value.Cmp(im.ceiling) < 0
}

func (im *impl) Repair(c bCtx.Ctx, m domain.Money, fallback *domain.Money) RepairResult {
	originalDisplay := im.ToDisplay(m)
	if im.Validate(m) {
		return RepairResult{
			IsValid:          true,
			Corrected:        m,
			OriginalDisplay:  originalDisplay,
			CorrectedDisplay: originalDisplay,
		}
	}

	corrected := im.Fallback()
	if fallback != nil {
		corrected = domain.NewMoney(fallback.Value, fallback.Currency)
	}
	if corrected.Currency == "" {
		corrected.Currency = m.Currency
	}

	c.WithFields(log.Fields{
		"original":  originalDisplay,
		"corrected": im.ToDisplay(corrected),
		"currency":  m.Currency,
	}).Warn("out of range price corrected")

	return RepairResult{
		IsValid:          false,
		Corrected:        corrected,
		OriginalDisplay:  originalDisplay,
		CorrectedDisplay: im.ToDisplay(corrected) + " (fixed)",
	}
}

func (im *impl) Fallback() domain.Money {
	return domain.NewMoney(im.fallback, im.defaultCurrency)
}

// splitCurrencySuffix separates "1.23 MATIC" into ("1.23", "MATIC"). A bare
// numeric string returns an empty currency.
func splitCurrencySuffix(s string) (string, string) {
	fields := strings.Fields(strings.TrimSpace(s))
	switch len(fields) {
	case 0:
		return "", ""
	case 1:
		return fields[0], ""
	case 2:
		return fields[0], fields[1]
	default:
		return "", ""
	}
}
