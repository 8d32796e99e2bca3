package usecase

import (
	"time"

	"github.com/collectex/tradecore/base/ctx"
	"github.com/collectex/tradecore/base/log"
	"github.com/collectex/tradecore/base/priceintegrity"
	"github.com/collectex/tradecore/domain"
	"github.com/collectex/tradecore/domain/auction"
	"github.com/collectex/tradecore/domain/ledger"
	"github.com/collectex/tradecore/domain/listing"
	"github.com/collectex/tradecore/domain/offer"
	"github.com/collectex/tradecore/domain/trading"
	"github.com/collectex/tradecore/service/auctionsync"
)

type TradingUseCaseCfg struct {
	Ledger    ledger.Gateway
	ListingUC listing.UseCase
	AuctionUC auction.UseCase
	OfferUC   offer.UseCase
	Sync      auctionsync.Service
	Price     priceintegrity.PriceIntegrity
	// test seam, defaults to time.Now
	Now func() time.Time
}

type impl struct {
	ledger    ledger.Gateway
	listingUC listing.UseCase
	auctionUC auction.UseCase
	offerUC   offer.UseCase
	sync      auctionsync.Service
	price     priceintegrity.PriceIntegrity
	now       func() time.Time
}

func New(cfg *TradingUseCaseCfg) trading.UseCase {
	now := cfg.Now
	if now == nil {
		now = time.Now
	}
	return &impl{
		ledger:    cfg.Ledger,
		listingUC: cfg.ListingUC,
		auctionUC: cfg.AuctionUC,
		offerUC:   cfg.OfferUC,
		sync:      cfg.Sync,
		price:     cfg.Price,
		now:       now,
	}
}

// GetTradeAction is the single decision table choosing the viewer's primary
// action. Auction state wins over listing state; ownership is resolved against
// the ledger, not against cached projections.
func (im *impl) GetTradeAction(c ctx.Ctx, viewer domain.Address, state trading.AssetState) (*trading.TradeAction, error) {
	viewer = viewer.ToLower()
	now := im.now()

	if state.AuctionId != nil {
		act, decided, err := im.auctionAction(c, viewer, state, now)
		if err != nil {
			return nil, err
		}
		if decided {
			return act, nil
		}
	}

	if state.ListingId != nil {
		l, err := im.listingUC.GetListing(c, *state.ListingId)
		if err != nil {
			return nil, err
		}
		if l.IsActiveAt(now) {
			if l.Creator.Equals(viewer) {
				return &trading.TradeAction{
					Kind:         trading.ActionUpdatePrice,
					Asset:        state.Asset,
					ListingId:    state.ListingId,
					DisplayPrice: im.repairedDisplay(c, l.PricePerUnit),
				}, nil
			}
			return &trading.TradeAction{
				Kind:         trading.ActionBuy,
				Asset:        state.Asset,
				ListingId:    state.ListingId,
				DisplayPrice: im.repairedDisplay(c, l.PricePerUnit),
			}, nil
		}
	}

	owner, err := im.ledger.OwnerOf(c, state.Asset)
	if err != nil {
		c.WithFields(log.Fields{
			"asset": state.Asset,
			"err":   err,
		}).Error("ledger.OwnerOf failed")
		return nil, err
	}
	if owner.Equals(viewer) {
		return &trading.TradeAction{
			Kind:  trading.ActionList,
			Asset: state.Asset,
		}, nil
	}
	return &trading.TradeAction{
		Kind:  trading.ActionMakeOffer,
		Asset: state.Asset,
	}, nil
}

// auctionAction resolves the auction part of the decision table. decided is
// false when the auction is terminal and the table should fall through.
func (im *impl) auctionAction(c ctx.Ctx, viewer domain.Address, state trading.AssetState, now time.Time) (*trading.TradeAction, bool, error) {
	id := *state.AuctionId
	a, err := im.auctionUC.GetAuction(c, id)
	if err != nil {
		return nil, false, err
	}
	if !a.Status.IsCreated() {
		return nil, false, nil
	}

	wb, err := im.currentBid(c, id)
	if err != nil {
		return nil, false, err
	}
	hasBids := wb != nil && !wb.Amount.IsZero()

	if !a.IsExpiredAt(now) {
		if a.Creator.Equals(viewer) {
			if !hasBids {
				return &trading.TradeAction{
					Kind:      trading.ActionCancel,
					Asset:     state.Asset,
					AuctionId: state.AuctionId,
				}, true, nil
			}
			// creator of a live auction with bids can only wait
			return nil, true, nil
		}
		return &trading.TradeAction{
			Kind:         trading.ActionBid,
			Asset:        state.Asset,
			AuctionId:    state.AuctionId,
			DisplayPrice: im.repairedDisplay(c, a.MinNextBid(wb)),
		}, true, nil
	}

	if hasBids {
		if a.Creator.Equals(viewer) && !a.PayoutCollected {
			return &trading.TradeAction{
				Kind:         trading.ActionCollectPayout,
				Asset:        state.Asset,
				AuctionId:    state.AuctionId,
				DisplayPrice: im.repairedDisplay(c, wb.Amount),
			}, true, nil
		}
		if wb.Bidder.Equals(viewer) && !a.TokensCollected {
			return &trading.TradeAction{
				Kind:      trading.ActionCollectTokens,
				Asset:     state.Asset,
				AuctionId: state.AuctionId,
			}, true, nil
		}
	}
	return nil, true, nil
}

func (im *impl) List(c ctx.Ctx, req listing.CreateRequest) (listing.Id, error) {
	return im.listingUC.Create(c, req)
}

func (im *impl) UpdatePrice(c ctx.Ctx, id listing.Id, caller domain.Address, displayPrice string) error {
	price, err := im.price.ToBaseUnits(c, displayPrice)
	if err != nil {
		return err
	}
	return im.listingUC.UpdatePrice(c, id, caller, price)
}

func (im *impl) Buy(c ctx.Ctx, id listing.Id, buyer domain.Address, quantity int64, expectedDisplayTotal string) (domain.TxRef, error) {
	expected, err := im.price.ToBaseUnits(c, expectedDisplayTotal)
	if err != nil {
		return "", err
	}
	return im.listingUC.Buy(c, id, listing.BuyRequest{
		Buyer:              buyer,
		Quantity:           quantity,
		ExpectedTotalPrice: expected,
	})
}

func (im *impl) CancelListing(c ctx.Ctx, id listing.Id, caller domain.Address) error {
	return im.listingUC.Cancel(c, id, caller)
}

func (im *impl) CreateAuction(c ctx.Ctx, req auction.CreateRequest) (auction.Id, error) {
	return im.auctionUC.Create(c, req)
}

func (im *impl) PlaceBid(c ctx.Ctx, id auction.Id, bidder domain.Address, displayAmount string) (domain.TxRef, error) {
	amount, err := im.price.ToBaseUnits(c, displayAmount)
	if err != nil {
		return "", err
	}
	tx, err := im.auctionUC.PlaceBid(c, id, bidder, amount)
	if err != nil {
		return "", err
	}
	// pull the fresh winning bid into the display cache right away
	if im.sync != nil {
		im.sync.Refetch(c, id)
	}
	return tx, nil
}

func (im *impl) CollectPayout(c ctx.Ctx, id auction.Id, caller domain.Address) (domain.TxRef, error) {
	return im.auctionUC.CollectPayout(c, id, caller)
}

func (im *impl) CollectTokens(c ctx.Ctx, id auction.Id, caller domain.Address) (domain.TxRef, error) {
	return im.auctionUC.CollectTokens(c, id, caller)
}

func (im *impl) CancelAuction(c ctx.Ctx, id auction.Id, caller domain.Address) error {
	return im.auctionUC.Cancel(c, id, caller)
}

func (im *impl) MakeOffer(c ctx.Ctx, req offer.MakeRequest) (offer.Id, error) {
	return im.offerUC.Make(c, req)
}

func (im *impl) AcceptOffer(c ctx.Ctx, id offer.Id, caller domain.Address) (domain.TxRef, error) {
	return im.offerUC.Accept(c, id, caller)
}

func (im *impl) WithdrawOffer(c ctx.Ctx, id offer.Id, caller domain.Address) (domain.TxRef, error) {
	return im.offerUC.Withdraw(c, id, caller)
}

// currentBid prefers the sync cache for display; untracked ids fall back to a
// live read.
func (im *impl) currentBid(c ctx.Ctx, id auction.Id) (*auction.WinningBid, error) {
	if im.sync != nil {
		if snap, ok := im.sync.CurrentBid(id); ok {
			if snap.Amount.IsZero() && snap.LastFetchedAt.IsZero() {
				// tracked but never fetched, fall through to a live read
			} else {
				return &auction.WinningBid{Amount: snap.Amount}, nil
			}
		}
	}
	return im.auctionUC.GetWinningBid(c, id)
}

// repairedDisplay formats a price for the presentation edge, substituting the
// fallback for corrupted values so a broken integer never reaches a user.
func (im *impl) repairedDisplay(c ctx.Ctx, m domain.Money) string {
	res := im.price.Repair(c, m, nil)
	if !res.IsValid {
		return res.CorrectedDisplay
	}
	return im.price.ToDisplay(m)
}
