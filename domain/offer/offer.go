package offer

import (
	"time"

	"github.com/collectex/tradecore/base/ctx"
	"github.com/collectex/tradecore/domain"
)

type Id string

func (i Id) String() string {
	return string(i)
}

const (
	MinDurationDays = 1
	MaxDurationDays = 30
)

// Offer is an escrowed bid against an asset not necessarily for sale. The
// escrow equals TotalPrice and is locked at submission time.
type Offer struct {
	Id         Id                `json:"id"`
	Offeror    domain.Address    `json:"offeror"`
	Asset      domain.AssetRef   `json:"asset"`
	Quantity   int64             `json:"quantity"`
	Currency   string            `json:"currency"`
	TotalPrice domain.Money      `json:"totalPrice"`
	ExpiresAt  time.Time         `json:"expiresAt"`
	Status     domain.SaleStatus `json:"status"`
}

func (o *Offer) LowerCase() {
	o.Offeror = o.Offeror.ToLower()
	o.Asset = o.Asset.ToLower()
}

// IsExpiredAt reports passive expiry: readers treat a past-expiry offer as
// cancelled even before the ledger records the transition.
func (o *Offer) IsExpiredAt(now time.Time) bool {
	return now.After(o.ExpiresAt)
}

// EffectiveStatus folds passive expiry into the ledger status.
func (o *Offer) EffectiveStatus(now time.Time) domain.SaleStatus {
	if o.Status.IsCreated() && o.IsExpiredAt(now) {
		return domain.SaleStatusCancelled
	}
	return o.Status
}

type MakeRequest struct {
	Offeror    domain.Address  `json:"offeror" validate:"required,eth_addr_lower"`
	Asset      domain.AssetRef `json:"asset" validate:"required"`
	TotalPrice domain.Money    `json:"totalPrice" validate:"required"`
	Quantity   int64           `json:"quantity" validate:"gte=0"`
	Currency   string          `json:"currency"`
	// bounded to [MinDurationDays, MaxDurationDays], checked by the use case so
	// the caller gets a duration error rather than a generic one
	DurationDays int `json:"durationDays"`
}

type UseCase interface {
	Make(c ctx.Ctx, req MakeRequest) (Id, error)
	Accept(c ctx.Ctx, id Id, caller domain.Address) (domain.TxRef, error)
	Withdraw(c ctx.Ctx, id Id, caller domain.Address) (domain.TxRef, error)
	GetOffer(c ctx.Ctx, id Id) (*Offer, error)
}
