package usecase

import (
	"math/big"
	"testing"
	"time"

	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/suite"

	bCtx "github.com/collectex/tradecore/base/ctx"
	"github.com/collectex/tradecore/base/priceintegrity"
	"github.com/collectex/tradecore/domain"
	"github.com/collectex/tradecore/domain/auction"
	mAuction "github.com/collectex/tradecore/domain/auction/mocks"
	mLedger "github.com/collectex/tradecore/domain/ledger/mocks"
	"github.com/collectex/tradecore/domain/listing"
	mListing "github.com/collectex/tradecore/domain/listing/mocks"
	"github.com/collectex/tradecore/domain/offer"
	mOffer "github.com/collectex/tradecore/domain/offer/mocks"
	"github.com/collectex/tradecore/domain/trading"
	"github.com/collectex/tradecore/service/auctionsync"
	mSync "github.com/collectex/tradecore/service/auctionsync/mocks"
)

var mockCtx = bCtx.Background()

func units(s string) *big.Int {
	return decimal.RequireFromString(s).Shift(18).BigInt()
}

var (
	owner  = domain.Address("0xce4468e7ce84aceb74363f4ea64e5a038176f369")
	viewer = domain.Address("0xdf8650b0ca1260f7a2f4fdff9082aede554f65ad")
	asset  = domain.AssetRef{
		ChainId:         1,
		ContractAddress: domain.Address("0xdcf0de6b17785a143d006e1515a6afd123cde8ba"),
		TokenId:         domain.TokenId("42"),
	}
	listingId = listing.Id("l1")
	auctionId = auction.Id("a1")
)

type testsuite struct {
	suite.Suite
	ledger    *mLedger.Gateway
	listingUC *mListing.UseCase
	auctionUC *mAuction.UseCase
	offerUC   *mOffer.UseCase
	sync      *mSync.Service
	now       time.Time
	subject   *impl
}

func Test(t *testing.T) {
	suite.Run(t, new(testsuite))
}

func (t *testsuite) SetupTest() {
	t.ledger = &mLedger.Gateway{}
	t.listingUC = &mListing.UseCase{}
	t.auctionUC = &mAuction.UseCase{}
	t.offerUC = &mOffer.UseCase{}
	t.sync = &mSync.Service{}
	t.now = time.Date(2022, 7, 1, 12, 0, 0, 0, time.UTC)
	t.subject = &impl{
		ledger:    t.ledger,
		listingUC: t.listingUC,
		auctionUC: t.auctionUC,
		offerUC:   t.offerUC,
		sync:      t.sync,
		price: priceintegrity.New(&priceintegrity.PriceIntegrityCfg{
			DefaultCurrency: "MATIC",
			TokenDecimals:   18,
			CeilingUnits:    1000,
			FallbackUnits:   "0.001",
		}),
		now: func() time.Time { return t.now },
	}
}

func (t *testsuite) activeListing() *listing.Listing {
	return &listing.Listing{
		Id:           listingId,
		Creator:      owner,
		Asset:        asset,
		Quantity:     1,
		Currency:     "MATIC",
		PricePerUnit: domain.NewMoney(units("1.5"), "MATIC"),
		StartTime:    t.now.Add(-time.Hour),
		EndTime:      t.now.Add(time.Hour),
		Status:       domain.SaleStatusCreated,
	}
}

func (t *testsuite) liveAuction() *auction.Auction {
	return &auction.Auction{
		Id:           auctionId,
		Creator:      owner,
		Asset:        asset,
		Quantity:     1,
		Currency:     "MATIC",
		MinimumBid:   domain.NewMoney(units("0.1"), "MATIC"),
		BuyoutBid:    domain.ZeroMoney("MATIC"),
		BidBufferBps: 500,
		StartTime:    t.now.Add(-time.Hour),
		EndTime:      t.now.Add(time.Hour),
		Status:       domain.SaleStatusCreated,
	}
}

func (t *testsuite) TestOwnerOfBareAssetGetsList() {
	t.ledger.On("OwnerOf", mockCtx, asset).Return(owner, nil)

	act, err := t.subject.GetTradeAction(mockCtx, owner, trading.AssetState{Asset: asset})
	t.NoError(err)
	t.Equal(trading.ActionList, act.Kind)
}

func (t *testsuite) TestNonOwnerOfBareAssetGetsMakeOffer() {
	t.ledger.On("OwnerOf", mockCtx, asset).Return(owner, nil)

	act, err := t.subject.GetTradeAction(mockCtx, viewer, trading.AssetState{Asset: asset})
	t.NoError(err)
	t.Equal(trading.ActionMakeOffer, act.Kind)
}

func (t *testsuite) TestCreatorOfActiveListingGetsUpdatePrice() {
	t.listingUC.On("GetListing", mockCtx, listingId).Return(t.activeListing(), nil)

	act, err := t.subject.GetTradeAction(mockCtx, owner, trading.AssetState{Asset: asset, ListingId: &listingId})
	t.NoError(err)
	t.Equal(trading.ActionUpdatePrice, act.Kind)
	t.Equal("1.500000 MATIC", act.DisplayPrice)
}

func (t *testsuite) TestNonOwnerOfActiveListingGetsBuy() {
	t.listingUC.On("GetListing", mockCtx, listingId).Return(t.activeListing(), nil)

	act, err := t.subject.GetTradeAction(mockCtx, viewer, trading.AssetState{Asset: asset, ListingId: &listingId})
	t.NoError(err)
	t.Equal(trading.ActionBuy, act.Kind)
	t.Equal("1.500000 MATIC", act.DisplayPrice)
}

func (t *testsuite) TestExpiredListingFallsThroughToOwnership() {
	l := t.activeListing()
	l.EndTime = t.now.Add(-time.Minute)
	t.listingUC.On("GetListing", mockCtx, listingId).Return(l, nil)
	t.ledger.On("OwnerOf", mockCtx, asset).Return(owner, nil)

	act, err := t.subject.GetTradeAction(mockCtx, owner, trading.AssetState{Asset: asset, ListingId: &listingId})
	t.NoError(err)
	t.Equal(trading.ActionList, act.Kind)
}

func (t *testsuite) TestCorruptedListingPriceIsRepairedForDisplay() {
	l := t.activeListing()
	l.PricePerUnit = domain.NewMoney(units("99999999999999"), "MATIC")
	t.listingUC.On("GetListing", mockCtx, listingId).Return(l, nil)

	act, err := t.subject.GetTradeAction(mockCtx, viewer, trading.AssetState{Asset: asset, ListingId: &listingId})
	t.NoError(err)
	t.Equal("0.001000 MATIC (fixed)", act.DisplayPrice)
}

func (t *testsuite) TestBidderOnLiveAuctionGetsBidAtBufferedMinimum() {
	t.auctionUC.On("GetAuction", mockCtx, auctionId).Return(t.liveAuction(), nil)
	t.sync.On("CurrentBid", auctionId).Return(auctionsync.BidSnapshot{
		Amount:        domain.NewMoney(units("0.1"), "MATIC"),
		LastFetchedAt: t.now,
	}, true)

	act, err := t.subject.GetTradeAction(mockCtx, viewer, trading.AssetState{Asset: asset, AuctionId: &auctionId})
	t.NoError(err)
	t.Equal(trading.ActionBid, act.Kind)
	t.Equal("0.105000 MATIC", act.DisplayPrice)
}

func (t *testsuite) TestCreatorOfLiveAuctionWithoutBidsGetsCancel() {
	t.auctionUC.On("GetAuction", mockCtx, auctionId).Return(t.liveAuction(), nil)
	t.sync.On("CurrentBid", auctionId).Return(auctionsync.BidSnapshot{}, false)
	t.auctionUC.On("GetWinningBid", mockCtx, auctionId).Return(nil, nil)

	act, err := t.subject.GetTradeAction(mockCtx, owner, trading.AssetState{Asset: asset, AuctionId: &auctionId})
	t.NoError(err)
	t.Equal(trading.ActionCancel, act.Kind)
}

func (t *testsuite) TestCreatorOfLiveAuctionWithBidsWaits() {
	t.auctionUC.On("GetAuction", mockCtx, auctionId).Return(t.liveAuction(), nil)
	t.sync.On("CurrentBid", auctionId).Return(auctionsync.BidSnapshot{
		Amount:        domain.NewMoney(units("0.2"), "MATIC"),
		LastFetchedAt: t.now,
	}, true)

	act, err := t.subject.GetTradeAction(mockCtx, owner, trading.AssetState{Asset: asset, AuctionId: &auctionId})
	t.NoError(err)
	t.Nil(act)
}

func (t *testsuite) TestCreatorOfExpiredAuctionWithBidsGetsCollectPayout() {
	a := t.liveAuction()
	a.EndTime = t.now.Add(-time.Minute)
	t.auctionUC.On("GetAuction", mockCtx, auctionId).Return(a, nil)
	t.sync.On("CurrentBid", auctionId).Return(auctionsync.BidSnapshot{}, false)
	t.auctionUC.On("GetWinningBid", mockCtx, auctionId).
		Return(&auction.WinningBid{Bidder: viewer, Amount: domain.NewMoney(units("0.2"), "MATIC")}, nil)

	act, err := t.subject.GetTradeAction(mockCtx, owner, trading.AssetState{Asset: asset, AuctionId: &auctionId})
	t.NoError(err)
	t.Equal(trading.ActionCollectPayout, act.Kind)
	t.Equal("0.200000 MATIC", act.DisplayPrice)
}

func (t *testsuite) TestWinnerOfExpiredAuctionGetsCollectTokens() {
	a := t.liveAuction()
	a.EndTime = t.now.Add(-time.Minute)
	t.auctionUC.On("GetAuction", mockCtx, auctionId).Return(a, nil)
	t.sync.On("CurrentBid", auctionId).Return(auctionsync.BidSnapshot{}, false)
	t.auctionUC.On("GetWinningBid", mockCtx, auctionId).
		Return(&auction.WinningBid{Bidder: viewer, Amount: domain.NewMoney(units("0.2"), "MATIC")}, nil)

	act, err := t.subject.GetTradeAction(mockCtx, viewer, trading.AssetState{Asset: asset, AuctionId: &auctionId})
	t.NoError(err)
	t.Equal(trading.ActionCollectTokens, act.Kind)
}

func (t *testsuite) TestTerminalAuctionFallsThroughToListing() {
	a := t.liveAuction()
	a.Status = domain.SaleStatusCancelled
	t.auctionUC.On("GetAuction", mockCtx, auctionId).Return(a, nil)
	t.listingUC.On("GetListing", mockCtx, listingId).Return(t.activeListing(), nil)

	act, err := t.subject.GetTradeAction(mockCtx, viewer, trading.AssetState{
		Asset:     asset,
		ListingId: &listingId,
		AuctionId: &auctionId,
	})
	t.NoError(err)
	t.Equal(trading.ActionBuy, act.Kind)
}

func (t *testsuite) TestBuyParsesDisplayTotal() {
	t.listingUC.On("Buy", mockCtx, listingId, listing.BuyRequest{
		Buyer:              viewer,
		Quantity:           2,
		ExpectedTotalPrice: domain.NewMoney(units("3"), "MATIC"),
	}).Return(domain.TxRef("tx1"), nil)

	tx, err := t.subject.Buy(mockCtx, listingId, viewer, 2, "3 MATIC")
	t.NoError(err)
	t.Equal(domain.TxRef("tx1"), tx)
}

func (t *testsuite) TestBuyRejectsMalformedDisplayTotal() {
	_, err := t.subject.Buy(mockCtx, listingId, viewer, 1, "three")
	t.ErrorIs(err, domain.ErrInvalidPriceFormat)
	t.listingUC.AssertNotCalled(t.T(), "Buy", mock.Anything, mock.Anything, mock.Anything)
}

func (t *testsuite) TestPlaceBidRefreshesSyncCache() {
	t.auctionUC.On("PlaceBid", mockCtx, auctionId, viewer, domain.NewMoney(units("0.105"), "MATIC")).
		Return(domain.TxRef("tx2"), nil)
	t.sync.On("Refetch", mockCtx, auctionId).Return()

	tx, err := t.subject.PlaceBid(mockCtx, auctionId, viewer, "0.105 MATIC")
	t.NoError(err)
	t.Equal(domain.TxRef("tx2"), tx)
	t.sync.AssertCalled(t.T(), "Refetch", mockCtx, auctionId)
}

func (t *testsuite) TestUpdatePriceRejectsTooHighDisplayPrice() {
	err := t.subject.UpdatePrice(mockCtx, listingId, owner, "99999999999999 MATIC")
	t.ErrorIs(err, domain.ErrPriceTooHigh)
	t.listingUC.AssertNotCalled(t.T(), "UpdatePrice", mock.Anything, mock.Anything, mock.Anything, mock.Anything)
}

func (t *testsuite) TestMakeOfferDelegates() {
	req := offer.MakeRequest{
		Offeror:      viewer,
		Asset:        asset,
		TotalPrice:   domain.NewMoney(units("0.5"), "MATIC"),
		DurationDays: 7,
	}
	t.offerUC.On("Make", mockCtx, req).Return(offer.Id("o1"), nil)

	id, err := t.subject.MakeOffer(mockCtx, req)
	t.NoError(err)
	t.Equal(offer.Id("o1"), id)
}
