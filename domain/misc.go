package domain

import (
	"fmt"
	"math/big"
	"strings"
	"time"

	"golang.org/x/xerrors"
)

var (
	Big0     = big.NewInt(0)
	Big1     = big.NewInt(1)
	Big10    = big.NewInt(10)
	Big10000 = big.NewInt(10000)
)

type ChainId int32

type Address string

const EmptyAddress = Address("0x0000000000000000000000000000000000000000")

func (a Address) ToLower() Address {
	return Address(strings.ToLower(string(a)))
}

func (a Address) ToLowerStr() string {
	return strings.ToLower(string(a))
}

func (a Address) IsEmpty() bool {
	return len(a) == 0
}

func (a Address) Equals(b Address) bool {
	return a.ToLowerStr() == b.ToLowerStr()
}

type TokenId string

func (i TokenId) String() string {
	return string(i)
}

func (i TokenId) ToHexString() (string, error) {
	id, ok := new(big.Int).SetString(i.String(), 10)
	if !ok {
		return "", xerrors.Errorf("invalid id %s", i)
	}
	return fmt.Sprintf("%064x", id), nil
}

// AssetRef identifies one token of one contract on one chain.
type AssetRef struct {
	ChainId         ChainId `json:"chainId" validate:"gt=0"`
	ContractAddress Address `json:"contractAddress" validate:"required,eth_addr_lower"`
	TokenId         TokenId `json:"tokenId" validate:"required"`
}

func (a AssetRef) ToLower() AssetRef {
	a.ContractAddress = a.ContractAddress.ToLower()
	return a
}

func (a AssetRef) Equals(b AssetRef) bool {
	return a.ChainId == b.ChainId &&
		a.ContractAddress.Equals(b.ContractAddress) &&
		a.TokenId == b.TokenId
}

func (a AssetRef) String() string {
	return fmt.Sprintf("%d:%s:%s", a.ChainId, a.ContractAddress.ToLower(), a.TokenId)
}

// TxRef is an opaque reference to a submitted ledger transaction.
type TxRef string

func (t TxRef) IsEmpty() bool {
	return len(t) == 0
}

// SaleStatus is shared by listings, auctions and offers. Terminal states are
// kept for audit and never transition again.
type SaleStatus string

const (
	SaleStatusUnset     SaleStatus = "unset"
	SaleStatusCreated   SaleStatus = "created"
	SaleStatusCompleted SaleStatus = "completed"
	SaleStatusCancelled SaleStatus = "cancelled"
)

func (s SaleStatus) IsTerminal() bool {
	return s == SaleStatusCompleted || s == SaleStatusCancelled
}

func (s SaleStatus) IsCreated() bool {
	return s == SaleStatusCreated
}

// WithinWindow reports whether now falls inside [start, end].
func WithinWindow(now, start, end time.Time) bool {
	return !now.Before(start) && !now.After(end)
}
