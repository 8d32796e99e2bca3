package listing

import (
	"time"

	"github.com/collectex/tradecore/base/ctx"
	"github.com/collectex/tradecore/domain"
)

type Id string

func (i Id) String() string {
	return string(i)
}

// Listing is a fixed-price sale. The ledger owns the record; this struct is a
// read-only projection of it.
type Listing struct {
	Id           Id                `json:"id"`
	Creator      domain.Address    `json:"creator"`
	Asset        domain.AssetRef   `json:"asset"`
	Quantity     int64             `json:"quantity"`
	Currency     string            `json:"currency"`
	PricePerUnit domain.Money      `json:"pricePerUnit"`
	StartTime    time.Time         `json:"startTime"`
	EndTime      time.Time         `json:"endTime"`
	Reserved     bool              `json:"reserved"`
	Status       domain.SaleStatus `json:"status"`
}

func (l *Listing) LowerCase() {
	l.Creator = l.Creator.ToLower()
	l.Asset = l.Asset.ToLower()
}

// IsActiveAt reports whether the listing accepts purchases at the given time.
func (l *Listing) IsActiveAt(now time.Time) bool {
	return l.Status.IsCreated() && domain.WithinWindow(now, l.StartTime, l.EndTime)
}

// TotalPrice returns quantity * pricePerUnit.
func (l *Listing) TotalPrice(quantity int64) domain.Money {
	return l.PricePerUnit.MulQuantity(quantity)
}

type CreateRequest struct {
	Creator      domain.Address  `json:"creator" validate:"required,eth_addr_lower"`
	Asset        domain.AssetRef `json:"asset" validate:"required"`
	PricePerUnit domain.Money    `json:"pricePerUnit" validate:"required"`
	Quantity     int64           `json:"quantity" validate:"gte=0"`
	Currency     string          `json:"currency"`
	// defaults to now -> now + configured window when unset
	StartTime *time.Time `json:"startTime"`
	EndTime   *time.Time `json:"endTime"`
	Reserved  bool       `json:"reserved"`
}

type BuyRequest struct {
	Buyer    domain.Address `json:"buyer" validate:"required,eth_addr_lower"`
	Quantity int64          `json:"quantity" validate:"gt=0"`
	// must equal quantity * live pricePerUnit with zero tolerance
	ExpectedTotalPrice domain.Money `json:"expectedTotalPrice" validate:"required"`
}

type UseCase interface {
	Create(c ctx.Ctx, req CreateRequest) (Id, error)
	UpdatePrice(c ctx.Ctx, id Id, caller domain.Address, newPrice domain.Money) error
	Buy(c ctx.Ctx, id Id, req BuyRequest) (domain.TxRef, error)
	Cancel(c ctx.Ctx, id Id, caller domain.Address) error
	GetListing(c ctx.Ctx, id Id) (*Listing, error)
}
