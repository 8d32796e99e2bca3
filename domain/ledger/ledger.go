package ledger

import (
	"time"

	"github.com/collectex/tradecore/base/ctx"
	"github.com/collectex/tradecore/domain"
	"github.com/collectex/tradecore/domain/auction"
	"github.com/collectex/tradecore/domain/listing"
	"github.com/collectex/tradecore/domain/offer"
)

type CreateListingParams struct {
	Creator      domain.Address
	Asset        domain.AssetRef
	Quantity     int64
	Currency     string
	PricePerUnit domain.Money
	StartTime    time.Time
	EndTime      time.Time
	Reserved     bool
}

type BuyFromListingParams struct {
	ListingId listing.Id
	Buyer     domain.Address
	Quantity  int64
	// the ledger must fail the call when its live total differs
	ExpectedTotalPrice domain.Money
}

type CreateAuctionParams struct {
	Creator      domain.Address
	Asset        domain.AssetRef
	Quantity     int64
	Currency     string
	MinimumBid   domain.Money
	BuyoutBid    domain.Money
	TimeBuffer   time.Duration
	BidBufferBps int64
	StartTime    time.Time
	EndTime      time.Time
}

type MakeOfferParams struct {
	Offeror    domain.Address
	Asset      domain.AssetRef
	Quantity   int64
	Currency   string
	TotalPrice domain.Money
	ExpiresAt  time.Time
}

// Gateway is the authoritative marketplace contract boundary. Money values
// crossing it are always base-unit integers. It is consumed here and
// implemented by the transport layer.
type Gateway interface {
	CreateListing(c ctx.Ctx, p CreateListingParams) (listing.Id, domain.TxRef, error)
	UpdateListingPrice(c ctx.Ctx, id listing.Id, newPrice domain.Money) (domain.TxRef, error)
	CancelListing(c ctx.Ctx, id listing.Id) (domain.TxRef, error)
	BuyFromListing(c ctx.Ctx, p BuyFromListingParams) (domain.TxRef, error)

	CreateAuction(c ctx.Ctx, p CreateAuctionParams) (auction.Id, domain.TxRef, error)
	PlaceBid(c ctx.Ctx, id auction.Id, bidder domain.Address, amount domain.Money) (domain.TxRef, error)
	CollectAuctionPayout(c ctx.Ctx, id auction.Id, caller domain.Address) (domain.TxRef, error)
	CollectAuctionTokens(c ctx.Ctx, id auction.Id, caller domain.Address) (domain.TxRef, error)
	CancelAuction(c ctx.Ctx, id auction.Id) (domain.TxRef, error)

	MakeOffer(c ctx.Ctx, p MakeOfferParams) (offer.Id, domain.TxRef, error)
	AcceptOffer(c ctx.Ctx, id offer.Id, caller domain.Address) (domain.TxRef, error)
	WithdrawOffer(c ctx.Ctx, id offer.Id, caller domain.Address) (domain.TxRef, error)

	ReadListing(c ctx.Ctx, id listing.Id) (*listing.Listing, error)
	ReadAuction(c ctx.Ctx, id auction.Id) (*auction.Auction, error)
	ReadWinningBid(c ctx.Ctx, id auction.Id) (*auction.WinningBid, error)
	IsAuctionExpired(c ctx.Ctx, id auction.Id) (bool, error)
	ReadOffer(c ctx.Ctx, id offer.Id) (*offer.Offer, error)

	// OwnerOf resolves the current holder; ownership preconditions are always
	// re-checked here at submission time, never from cached projections.
	OwnerOf(c ctx.Ctx, asset domain.AssetRef) (domain.Address, error)
}
