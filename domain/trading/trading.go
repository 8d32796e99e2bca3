package trading

import (
	"github.com/collectex/tradecore/base/ctx"
	"github.com/collectex/tradecore/domain"
	"github.com/collectex/tradecore/domain/auction"
	"github.com/collectex/tradecore/domain/listing"
	"github.com/collectex/tradecore/domain/offer"
)

// ActionKind tags the single primary action a viewer can take on an asset.
type ActionKind string

const (
	ActionBuy           ActionKind = "buy"
	ActionUpdatePrice   ActionKind = "updatePrice"
	ActionCancel        ActionKind = "cancel"
	ActionBid           ActionKind = "bid"
	ActionCollectPayout ActionKind = "collectPayout"
	ActionCollectTokens ActionKind = "collectTokens"
	ActionMakeOffer     ActionKind = "makeOffer"
	ActionList          ActionKind = "list"
	ActionCreateAuction ActionKind = "createAuction"
)

// TradeAction is the tagged union the presentation layer matches on. The
// decision table lives in one place instead of being duplicated per card
// component.
type TradeAction struct {
	Kind      ActionKind      `json:"kind"`
	Asset     domain.AssetRef `json:"asset"`
	ListingId *listing.Id     `json:"listingId,omitempty"`
	AuctionId *auction.Id     `json:"auctionId,omitempty"`
	OfferId   *offer.Id       `json:"offerId,omitempty"`
	// already repaired and formatted; empty when the action carries no price
	DisplayPrice string `json:"displayPrice,omitempty"`
}

// AssetState is what the presentation layer already knows about a card: which
// market objects are attached to the asset. Record contents are fetched and
// re-validated by the facade.
type AssetState struct {
	Asset     domain.AssetRef
	ListingId *listing.Id
	AuctionId *auction.Id
	OfferId   *offer.Id
}

// UseCase is the orchestration surface consumed by presentation code. Write
// methods accept display price strings; conversion to base units happens here
// and nowhere further down.
type UseCase interface {
	// GetTradeAction returns the viewer's primary action, or nil when there is
	// nothing actionable (e.g. creator of a live auction that has bids).
	GetTradeAction(c ctx.Ctx, viewer domain.Address, state AssetState) (*TradeAction, error)

	List(c ctx.Ctx, req listing.CreateRequest) (listing.Id, error)
	UpdatePrice(c ctx.Ctx, id listing.Id, caller domain.Address, displayPrice string) error
	Buy(c ctx.Ctx, id listing.Id, buyer domain.Address, quantity int64, expectedDisplayTotal string) (domain.TxRef, error)
	CancelListing(c ctx.Ctx, id listing.Id, caller domain.Address) error

	CreateAuction(c ctx.Ctx, req auction.CreateRequest) (auction.Id, error)
	PlaceBid(c ctx.Ctx, id auction.Id, bidder domain.Address, displayAmount string) (domain.TxRef, error)
	CollectPayout(c ctx.Ctx, id auction.Id, caller domain.Address) (domain.TxRef, error)
	CollectTokens(c ctx.Ctx, id auction.Id, caller domain.Address) (domain.TxRef, error)
	CancelAuction(c ctx.Ctx, id auction.Id, caller domain.Address) error

	MakeOffer(c ctx.Ctx, req offer.MakeRequest) (offer.Id, error)
	AcceptOffer(c ctx.Ctx, id offer.Id, caller domain.Address) (domain.TxRef, error)
	WithdrawOffer(c ctx.Ctx, id offer.Id, caller domain.Address) (domain.TxRef, error)
}
