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
	"github.com/collectex/tradecore/base/ptr"
	bValidator "github.com/collectex/tradecore/base/validator"
	"github.com/collectex/tradecore/domain"
	"github.com/collectex/tradecore/domain/ledger"
	mLedger "github.com/collectex/tradecore/domain/ledger/mocks"
	"github.com/collectex/tradecore/domain/listing"
)

var mockCtx = bCtx.Background()

func units(s string) *big.Int {
	return decimal.RequireFromString(s).Shift(18).BigInt()
}

type testsuite struct {
	suite.Suite
	ledger  *mLedger.Gateway
	now     time.Time
	subject *impl
}

func Test(t *testing.T) {
	suite.Run(t, new(testsuite))
}

func (t *testsuite) SetupTest() {
	t.ledger = &mLedger.Gateway{}
	t.now = time.Date(2022, 7, 1, 12, 0, 0, 0, time.UTC)
	t.subject = &impl{
		ledger: t.ledger,
		price: priceintegrity.New(&priceintegrity.PriceIntegrityCfg{
			DefaultCurrency: "MATIC",
			TokenDecimals:   18,
			CeilingUnits:    1000,
			FallbackUnits:   "0.001",
		}),
		listingWindow: 30 * 24 * time.Hour,
		validate:      bValidator.New(),
		now:           func() time.Time { return t.now },
	}
}

var (
	creator = domain.Address("0xce4468e7ce84aceb74363f4ea64e5a038176f369")
	buyer   = domain.Address("0xdf8650b0ca1260f7a2f4fdff9082aede554f65ad")
	asset   = domain.AssetRef{
		ChainId:         1,
		ContractAddress: domain.Address("0xdcf0de6b17785a143d006e1515a6afd123cde8ba"),
		TokenId:         domain.TokenId("42"),
	}
)

func (t *testsuite) activeListing() *listing.Listing {
	return &listing.Listing{
		Id:           "l1",
		Creator:      creator,
		Asset:        asset,
		Quantity:     2,
		Currency:     "MATIC",
		PricePerUnit: domain.NewMoney(units("1"), "MATIC"),
		StartTime:    t.now.Add(-time.Hour),
		EndTime:      t.now.Add(time.Hour),
		Status:       domain.SaleStatusCreated,
	}
}

func (t *testsuite) TestCreate() {
	t.ledger.On("OwnerOf", mockCtx, asset).Return(creator, nil)
	t.ledger.On("CreateListing", mockCtx, mock.MatchedBy(func(p ledger.CreateListingParams) bool {
		return p.Creator == creator &&
			p.Quantity == 1 &&
			p.PricePerUnit.Value.Cmp(units("1.5")) == 0 &&
			p.EndTime.Equal(t.now.Add(30*24*time.Hour))
	})).Return(listing.Id("l1"), domain.TxRef("tx1"), nil)

	id, err := t.subject.Create(mockCtx, listing.CreateRequest{
		Creator:      creator,
		Asset:        asset,
		PricePerUnit: domain.NewMoney(units("1.5"), "MATIC"),
	})
	t.NoError(err)
	t.Equal(listing.Id("l1"), id)
}

func (t *testsuite) TestCreateNotOwner() {
	t.ledger.On("OwnerOf", mockCtx, asset).Return(buyer, nil)

	_, err := t.subject.Create(mockCtx, listing.CreateRequest{
		Creator:      creator,
		Asset:        asset,
		PricePerUnit: domain.NewMoney(units("1.5"), "MATIC"),
	})
	t.ErrorIs(err, domain.ErrNotOwner)
	t.ledger.AssertNotCalled(t.T(), "CreateListing", mock.Anything, mock.Anything)
}

func (t *testsuite) TestCreateRepairsOutOfRangePrice() {
	t.ledger.On("OwnerOf", mockCtx, asset).Return(creator, nil)
	t.ledger.On("CreateListing", mockCtx, mock.MatchedBy(func(p ledger.CreateListingParams) bool {
		// repaired to the fallback instead of failing the operation
		return p.PricePerUnit.Value.Cmp(units("0.001")) == 0
	})).Return(listing.Id("l1"), domain.TxRef("tx1"), nil)

	_, err := t.subject.Create(mockCtx, listing.CreateRequest{
		Creator:      creator,
		Asset:        asset,
		PricePerUnit: domain.NewMoney(units("99999999999999"), "MATIC"),
	})
	t.NoError(err)
}

func (t *testsuite) TestCreateMalformedCreator() {
	_, err := t.subject.Create(mockCtx, listing.CreateRequest{
		Creator:      domain.Address("definitely-not-an-address"),
		Asset:        asset,
		PricePerUnit: domain.NewMoney(units("1"), "MATIC"),
	})
	t.ErrorIs(err, domain.ErrBadParamInput)
	t.ledger.AssertNotCalled(t.T(), "OwnerOf", mock.Anything, mock.Anything)
	t.ledger.AssertNotCalled(t.T(), "CreateListing", mock.Anything, mock.Anything)
}

func (t *testsuite) TestCreateInvalidWindow() {
	t.ledger.On("OwnerOf", mockCtx, asset).Return(creator, nil)

	_, err := t.subject.Create(mockCtx, listing.CreateRequest{
		Creator:      creator,
		Asset:        asset,
		PricePerUnit: domain.NewMoney(units("1"), "MATIC"),
		EndTime:      ptr.Time(t.now.Add(-time.Minute)),
	})
	t.ErrorIs(err, domain.ErrInvalidDuration)
}

func (t *testsuite) TestBuy() {
	l := t.activeListing()
	t.ledger.On("ReadListing", mockCtx, l.Id).Return(l, nil)
	t.ledger.On("BuyFromListing", mockCtx, ledger.BuyFromListingParams{
		ListingId:          l.Id,
		Buyer:              buyer,
		Quantity:           2,
		ExpectedTotalPrice: domain.NewMoney(units("2"), "MATIC"),
	}).Return(domain.TxRef("tx2"), nil)

	tx, err := t.subject.Buy(mockCtx, l.Id, listing.BuyRequest{
		Buyer:              buyer,
		Quantity:           2,
		ExpectedTotalPrice: domain.NewMoney(units("2"), "MATIC"),
	})
	t.NoError(err)
	t.Equal(domain.TxRef("tx2"), tx)
}

func (t *testsuite) TestBuyPriceMismatch() {
	l := t.activeListing()
	t.ledger.On("ReadListing", mockCtx, l.Id).Return(l, nil)

	// the live price moved; zero tolerance
	_, err := t.subject.Buy(mockCtx, l.Id, listing.BuyRequest{
		Buyer:              buyer,
		Quantity:           2,
		ExpectedTotalPrice: domain.NewMoney(units("1.9"), "MATIC"),
	})
	t.ErrorIs(err, domain.ErrPriceMismatch)
	t.ledger.AssertNotCalled(t.T(), "BuyFromListing", mock.Anything, mock.Anything)
}

func (t *testsuite) TestBuyWrongCurrency() {
	l := t.activeListing()
	t.ledger.On("ReadListing", mockCtx, l.Id).Return(l, nil)

	// the right number in the wrong denomination is still a mismatch
	_, err := t.subject.Buy(mockCtx, l.Id, listing.BuyRequest{
		Buyer:              buyer,
		Quantity:           2,
		ExpectedTotalPrice: domain.NewMoney(units("2"), "WETH"),
	})
	t.ErrorIs(err, domain.ErrPriceMismatch)
	t.ledger.AssertNotCalled(t.T(), "BuyFromListing", mock.Anything, mock.Anything)
}

func (t *testsuite) TestBuyExpiredListing() {
	l := t.activeListing()
	l.EndTime = t.now.Add(-time.Minute)
	t.ledger.On("ReadListing", mockCtx, l.Id).Return(l, nil)

	_, err := t.subject.Buy(mockCtx, l.Id, listing.BuyRequest{
		Buyer:              buyer,
		Quantity:           1,
		ExpectedTotalPrice: domain.NewMoney(units("1"), "MATIC"),
	})
	t.ErrorIs(err, domain.ErrNotActive)
}

func (t *testsuite) TestBuyExcessQuantity() {
	l := t.activeListing()
	t.ledger.On("ReadListing", mockCtx, l.Id).Return(l, nil)

	_, err := t.subject.Buy(mockCtx, l.Id, listing.BuyRequest{
		Buyer:              buyer,
		Quantity:           3,
		ExpectedTotalPrice: domain.NewMoney(units("3"), "MATIC"),
	})
	t.ErrorIs(err, domain.ErrInvalidQuantity)
}

func (t *testsuite) TestUpdatePrice() {
	l := t.activeListing()
	t.ledger.On("ReadListing", mockCtx, l.Id).Return(l, nil)
	t.ledger.On("UpdateListingPrice", mockCtx, l.Id, domain.NewMoney(units("2"), "MATIC")).
		Return(domain.TxRef("tx3"), nil)

	err := t.subject.UpdatePrice(mockCtx, l.Id, creator, domain.NewMoney(units("2"), "MATIC"))
	t.NoError(err)
}

func (t *testsuite) TestUpdatePriceNoChange() {
	l := t.activeListing()
	t.ledger.On("ReadListing", mockCtx, l.Id).Return(l, nil)

	err := t.subject.UpdatePrice(mockCtx, l.Id, creator, domain.NewMoney(units("1"), "MATIC"))
	t.ErrorIs(err, domain.ErrNoChange)
}

func (t *testsuite) TestUpdatePriceWrongCurrency() {
	l := t.activeListing()
	t.ledger.On("ReadListing", mockCtx, l.Id).Return(l, nil)

	err := t.subject.UpdatePrice(mockCtx, l.Id, creator, domain.NewMoney(units("1"), "WETH"))
	t.ErrorIs(err, domain.ErrInvalidCurrency)
	t.ledger.AssertNotCalled(t.T(), "UpdateListingPrice", mock.Anything, mock.Anything, mock.Anything)
}

func (t *testsuite) TestUpdatePriceNotCreator() {
	l := t.activeListing()
	t.ledger.On("ReadListing", mockCtx, l.Id).Return(l, nil)

	err := t.subject.UpdatePrice(mockCtx, l.Id, buyer, domain.NewMoney(units("2"), "MATIC"))
	t.ErrorIs(err, domain.ErrNotCreator)
}

func (t *testsuite) TestCancelTerminal() {
	l := t.activeListing()
	l.Status = domain.SaleStatusCompleted
	t.ledger.On("ReadListing", mockCtx, l.Id).Return(l, nil)

	err := t.subject.Cancel(mockCtx, l.Id, creator)
	t.ErrorIs(err, domain.ErrNotActive)
	t.ledger.AssertNotCalled(t.T(), "CancelListing", mock.Anything, mock.Anything)
}

func (t *testsuite) TestCancel() {
	l := t.activeListing()
	t.ledger.On("ReadListing", mockCtx, l.Id).Return(l, nil)
	t.ledger.On("CancelListing", mockCtx, l.Id).Return(domain.TxRef("tx4"), nil)

	t.NoError(t.subject.Cancel(mockCtx, l.Id, creator))
}
