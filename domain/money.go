package domain

import (
	"math/big"
	"strings"
)

// Money is an amount in base units (e.g. 10^18 subunits per whole unit) plus
// its currency symbol. Base-unit integers are the only representation crossing
// the ledger boundary; display strings are produced at the presentation edge.
type Money struct {
	Value    *big.Int `json:"value"`
	Currency string   `json:"currency"`
}

func NewMoney(value *big.Int, currency string) Money {
	if value == nil {
		value = new(big.Int)
	}
	return Money{Value: new(big.Int).Set(value), Currency: currency}
}

func ZeroMoney(currency string) Money {
	return Money{Value: new(big.Int), Currency: currency}
}

func (m Money) IsZero() bool {
	return m.Value == nil || m.Value.Sign() == 0
}

func (m Money) IsNegative() bool {
	return m.Value != nil && m.Value.Sign() < 0
}

// SameCurrency reports whether two amounts are denominated alike. An empty
// symbol matches anything so partially built values stay comparable.
func (m Money) SameCurrency(o Money) bool {
	if m.Currency == "" || o.Currency == "" {
		return true
	}
	return strings.EqualFold(m.Currency, o.Currency)
}

func (m Money) Equals(o Money) bool {
	if !m.SameCurrency(o) {
		return false
	}
	if m.Value == nil || o.Value == nil {
		return m.IsZero() && o.IsZero()
	}
	return m.Value.Cmp(o.Value) == 0
}

func (m Money) Cmp(o Money) int {
	a, b := m.Value, o.Value
	if a == nil {
		a = Big0
	}
	if b == nil {
		b = Big0
	}
	return a.Cmp(b)
}

// MulQuantity returns m scaled by a unit count, used for total-price checks.
func (m Money) MulQuantity(quantity int64) Money {
	v := new(big.Int)
	if m.Value != nil {
		v.Mul(m.Value, big.NewInt(quantity))
	}
	return Money{Value: v, Currency: m.Currency}
}

// BufferedMinimum returns the smallest amount outbidding m by bufferBps basis
// points, rounding up so the boundary stays inclusive for the bidder.
func (m Money) BufferedMinimum(bufferBps int64) Money {
	v := new(big.Int)
	if m.Value != nil {
		v.Mul(m.Value, big.NewInt(10000+bufferBps))
		r := new(big.Int)
		v.QuoRem(v, Big10000, r)
		if r.Sign() > 0 {
			v.Add(v, Big1)
		}
	}
	return Money{Value: v, Currency: m.Currency}
}
