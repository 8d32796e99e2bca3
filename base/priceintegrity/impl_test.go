package priceintegrity

import (
	"math/big"
	"testing"

	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/require"

	bCtx "github.com/collectex/tradecore/base/ctx"
	"github.com/collectex/tradecore/domain"
)

var mockCtx = bCtx.Background()

func newSubject() PriceIntegrity {
	return New(&PriceIntegrityCfg{
		DefaultCurrency: "MATIC",
		TokenDecimals:   18,
		CeilingUnits:    1000,
		FallbackUnits:   "0.001",
	})
}

func units(s string) *big.Int {
	return decimal.RequireFromString(s).Shift(18).BigInt()
}

func TestToBaseUnits(t *testing.T) {
	req := require.New(t)
	subject := newSubject()

	cases := []struct {
		input    string
		value    *big.Int
		currency string
		err      error
	}{
		{input: "1.2345", value: units("1.2345"), currency: "MATIC"},
		{input: "1.2345 MATIC", value: units("1.2345"), currency: "MATIC"},
		{input: "2.5 WETH", value: units("2.5"), currency: "WETH"},
		{input: "0", value: big.NewInt(0), currency: "MATIC"},
		{input: "999.999999", value: units("999.999999"), currency: "MATIC"},
		// sub-base-unit precision truncates to zero
		{input: "0.0000000000000000001", value: big.NewInt(0), currency: "MATIC"},
		{input: "1000", err: domain.ErrPriceTooHigh},
		{input: "99999999999999", err: domain.ErrPriceTooHigh},
		{input: "-1", err: domain.ErrInvalidPriceFormat},
		{input: "abc", err: domain.ErrInvalidPriceFormat},
		{input: "", err: domain.ErrInvalidPriceFormat},
		{input: "1 2 3", err: domain.ErrInvalidPriceFormat},
	}

	for _, c := range cases {
		m, err := subject.ToBaseUnits(mockCtx, c.input)
		if c.err != nil {
			req.ErrorIs(err, c.err, c.input)
			continue
		}
		req.NoError(err, c.input)
		req.Zero(m.Value.Cmp(c.value), c.input)
		req.Equal(c.currency, m.Currency, c.input)
	}
}

func TestToDisplay(t *testing.T) {
	req := require.New(t)
	subject := newSubject()

	req.Equal("1.234500 MATIC", subject.ToDisplay(domain.NewMoney(units("1.2345"), "MATIC")))
	req.Equal("0.105000 MATIC", subject.ToDisplay(domain.NewMoney(units("0.105"), "MATIC")))
	req.Equal("0.000000 MATIC", subject.ToDisplay(domain.Money{}))
	req.Equal("2.000000 WETH", subject.ToDisplay(domain.NewMoney(units("2"), "WETH")))
}

func TestRoundTrip(t *testing.T) {
	req := require.New(t)
	subject := newSubject()

	for _, display := range []string{
		"1.234500 MATIC",
		"0.001000 MATIC",
		"0.000000 MATIC",
		"999.999999 MATIC",
	} {
		m, err := subject.ToBaseUnits(mockCtx, display)
		req.NoError(err)
		req.Equal(display, subject.ToDisplay(m))
	}
}

func TestValidate(t *testing.T) {
	req := require.New(t)
	subject := newSubject()

	req.True(subject.Validate(domain.NewMoney(big.NewInt(0), "MATIC")))
	req.True(subject.Validate(domain.NewMoney(units("999.999999"), "MATIC")))
	// the ceiling itself is already out of range
	req.False(subject.Validate(domain.NewMoney(units("1000"), "MATIC")))
	req.False(subject.Validate(domain.NewMoney(big.NewInt(-1), "MATIC")))
	req.False(subject.Validate(domain.Money{Currency: "MATIC"}))
}

func TestRepair(t *testing.T) {
	req := require.New(t)
	subject := newSubject()

	valid := domain.NewMoney(units("1.2345"), "MATIC")
	res := subject.Repair(mockCtx, valid, nil)
	req.True(res.IsValid)
	req.True(res.Corrected.Equals(valid))
	req.Equal("1.234500 MATIC", res.CorrectedDisplay)

	// a corrupted stored integer collapses to the fallback, tagged for the user
	corrupted := domain.NewMoney(units("99999999999999"), "MATIC")
	res = subject.Repair(mockCtx, corrupted, nil)
	req.False(res.IsValid)
	req.Zero(res.Corrected.Value.Cmp(units("0.001")))
	req.Equal("0.001000 MATIC (fixed)", res.CorrectedDisplay)
	req.Equal("99999999999999.000000 MATIC", res.OriginalDisplay)

	custom := domain.NewMoney(units("0.5"), "WETH")
	res = subject.Repair(mockCtx, corrupted, &custom)
	req.False(res.IsValid)
	req.Zero(res.Corrected.Value.Cmp(units("0.5")))
	req.Equal("WETH", res.Corrected.Currency)
}

func TestIsDisplaySentinel(t *testing.T) {
	req := require.New(t)
	req.True(IsDisplaySentinel(SentinelNotForSale))
	req.True(IsDisplaySentinel(SentinelNA))
	req.False(IsDisplaySentinel("1.000000 MATIC"))
}
