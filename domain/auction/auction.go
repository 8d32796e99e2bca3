package auction

import (
	"time"

	"github.com/collectex/tradecore/base/ctx"
	"github.com/collectex/tradecore/domain"
)

type Id string

func (i Id) String() string {
	return string(i)
}

// Auction is a time-bounded bidding process. The ledger owns the record and
// may move EndTime forward on late bids, so cached copies must re-read it
// after every accepted bid.
type Auction struct {
	Id         Id              `json:"id"`
	Creator    domain.Address  `json:"creator"`
	Asset      domain.AssetRef `json:"asset"`
	Quantity   int64           `json:"quantity"`
	Currency   string          `json:"currency"`
	MinimumBid domain.Money    `json:"minimumBid"`
	// zero means buyout disabled
	BuyoutBid domain.Money `json:"buyoutBid"`
	// anti-snipe extension applied by the ledger to late winning bids
	TimeBuffer   time.Duration     `json:"timeBuffer"`
	BidBufferBps int64             `json:"bidBufferBps"`
	StartTime    time.Time         `json:"startTime"`
	EndTime      time.Time         `json:"endTime"`
	Status       domain.SaleStatus `json:"status"`
	// ledger-side collection flags, used to fail repeated collections fast
	PayoutCollected bool `json:"payoutCollected"`
	TokensCollected bool `json:"tokensCollected"`
}

// WinningBid is the auction's mutable companion, replaced only by strictly
// better bids.
type WinningBid struct {
	Bidder domain.Address `json:"bidder"`
	Amount domain.Money   `json:"amount"`
}

func (a *Auction) LowerCase() {
	a.Creator = a.Creator.ToLower()
	a.Asset = a.Asset.ToLower()
}

func (a *Auction) IsExpiredAt(now time.Time) bool {
	return now.After(a.EndTime)
}

func (a *Auction) BuyoutEnabled() bool {
	return !a.BuyoutBid.IsZero()
}

// MinNextBid returns the smallest acceptable bid given the current winning
// bid; the boundary is inclusive.
func (a *Auction) MinNextBid(prior *WinningBid) domain.Money {
	if prior == nil || prior.Amount.IsZero() {
		return a.MinimumBid
	}
	buffered := prior.Amount.BufferedMinimum(a.BidBufferBps)
	if buffered.Cmp(a.MinimumBid) < 0 {
		return a.MinimumBid
	}
	return buffered
}

type CreateRequest struct {
	Creator    domain.Address  `json:"creator" validate:"required,eth_addr_lower"`
	Asset      domain.AssetRef `json:"asset" validate:"required"`
	MinimumBid domain.Money    `json:"minimumBid" validate:"required"`
	// optional; must be strictly greater than MinimumBid when set
	BuyoutBid *domain.Money `json:"buyoutBid"`
	Quantity  int64         `json:"quantity" validate:"gte=0"`
	Currency  string        `json:"currency"`
	Duration  time.Duration `json:"duration" validate:"gt=0"`
	// zero values fall back to configured defaults
	TimeBuffer   time.Duration `json:"timeBuffer"`
	BidBufferBps int64         `json:"bidBufferBps"`
}

type UseCase interface {
	Create(c ctx.Ctx, req CreateRequest) (Id, error)
	PlaceBid(c ctx.Ctx, id Id, bidder domain.Address, amount domain.Money) (domain.TxRef, error)
	CollectPayout(c ctx.Ctx, id Id, caller domain.Address) (domain.TxRef, error)
	CollectTokens(c ctx.Ctx, id Id, caller domain.Address) (domain.TxRef, error)
	Cancel(c ctx.Ctx, id Id, caller domain.Address) error
	GetAuction(c ctx.Ctx, id Id) (*Auction, error)
	GetWinningBid(c ctx.Ctx, id Id) (*WinningBid, error)
	IsExpired(c ctx.Ctx, id Id) (bool, error)
}
