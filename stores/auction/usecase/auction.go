package usecase

import (
	"time"

	"github.com/go-playground/validator/v10"

	"github.com/collectex/tradecore/base/ctx"
	"github.com/collectex/tradecore/base/log"
	"github.com/collectex/tradecore/base/priceintegrity"
	bValidator "github.com/collectex/tradecore/base/validator"
	"github.com/collectex/tradecore/domain"
	"github.com/collectex/tradecore/domain/auction"
	"github.com/collectex/tradecore/domain/keys"
	"github.com/collectex/tradecore/domain/ledger"
	"github.com/collectex/tradecore/service/cache"
)

const (
	defaultTimeBuffer   = 300 * time.Second
	defaultBidBufferBps = 500
)

type AuctionUseCaseCfg struct {
	Ledger ledger.Gateway
	Price  priceintegrity.PriceIntegrity
	// optional projection cache for display reads
	Cache               cache.Service
	DefaultTimeBuffer   time.Duration
	DefaultBidBufferBps int64
	// test seam, defaults to time.Now
	Now func() time.Time
}

type impl struct {
	ledger       ledger.Gateway
	price        priceintegrity.PriceIntegrity
	cache        cache.Service
	timeBuffer   time.Duration
	bidBufferBps int64
	validate     *validator.Validate
	now          func() time.Time
}

func New(cfg *AuctionUseCaseCfg) auction.UseCase {
	timeBuffer := cfg.DefaultTimeBuffer
	if timeBuffer == 0 {
		timeBuffer = defaultTimeBuffer
	}
	bidBufferBps := cfg.DefaultBidBufferBps
	if bidBufferBps == 0 {
		bidBufferBps = defaultBidBufferBps
	}
	now := cfg.Now
	if now == nil {
		now = time.Now
	}
	return &impl{
		ledger:       cfg.Ledger,
		price:        cfg.Price,
		cache:        cfg.Cache,
		timeBuffer:   timeBuffer,
		bidBufferBps: bidBufferBps,
		validate:     bValidator.New(),
		now:          now,
	}
}

func (im *impl) Create(c ctx.Ctx, req auction.CreateRequest) (auction.Id, error) {
	if err := im.validate.Struct(req); err != nil {
		c.WithField("err", err).Warn("invalid create request")
		return "", domain.ErrBadParamInput
	}
	req.Creator = req.Creator.ToLower()
	req.Asset = req.Asset.ToLower()
	if req.Quantity == 0 {
		req.Quantity = 1
	}
	if req.TimeBuffer == 0 {
		req.TimeBuffer = im.timeBuffer
	}
	if req.BidBufferBps == 0 {
		req.BidBufferBps = im.bidBufferBps
	}

	minimumBid, err := im.checkPrice(c, req.MinimumBid)
	if err != nil {
		return "", err
	}

	buyoutBid := domain.ZeroMoney(minimumBid.Currency)
	if req.BuyoutBid != nil && !req.BuyoutBid.IsZero() {
		buyoutBid, err = im.checkPrice(c, *req.BuyoutBid)
		if err != nil {
			return "", err
		}
		if buyoutBid.Cmp(minimumBid) <= 0 {
			return "", domain.ErrBuyoutBelowMinimum
		}
	}

	owner, err := im.ledger.OwnerOf(c, req.Asset)
	if err != nil {
		c.WithFields(log.Fields{
			"asset": req.Asset,
			"err":   err,
		}).Error("ledger.OwnerOf failed")
		return "", err
	}
	if !owner.Equals(req.Creator) {
		return "", domain.ErrNotOwner
	}

	start := im.now()
	id, _, err := im.ledger.CreateAuction(c, ledger.CreateAuctionParams{
		Creator:      req.Creator,
		Asset:        req.Asset,
		Quantity:     req.Quantity,
		Currency:     minimumBid.Currency,
		MinimumBid:   minimumBid,
		BuyoutBid:    buyoutBid,
		TimeBuffer:   req.TimeBuffer,
		BidBufferBps: req.BidBufferBps,
		StartTime:    start,
		EndTime:      start.Add(req.Duration),
	})
	if err != nil {
		c.WithFields(log.Fields{
			"asset": req.Asset,
			"err":   err,
		}).Error("ledger.CreateAuction failed")
		return "", err
	}
	return id, nil
}

func (im *impl) PlaceBid(c ctx.Ctx, id auction.Id, bidder domain.Address, amount domain.Money) (domain.TxRef, error) {
	bidder = bidder.ToLower()

	a, err := im.readLive(c, id)
	if err != nil {
		return "", err
	}
	if !a.Status.IsCreated() {
		return "", domain.ErrNotActive
	}
	if a.IsExpiredAt(im.now()) {
		return "", domain.ErrExpired
	}

	amount, err = im.checkPrice(c, amount)
	if err != nil {
		return "", err
	}
	// bids compete in the auction's currency only
	if !amount.SameCurrency(a.MinimumBid) {
		return "", domain.ErrInvalidCurrency
	}

	// a bid meeting the buyout always wins, even when the buffered minimum
	// sits above it; the ledger completes the auction on such a bid
	buyout := a.BuyoutEnabled() && amount.Cmp(a.BuyoutBid) >= 0
	if !buyout {
		// the winning bid is re-read at submission time; the sync cache is for
		// display only
		prior, err := im.ledger.ReadWinningBid(c, id)
		if err != nil {
			c.WithFields(log.Fields{
				"auctionId": id,
				"err":       err,
			}).Error("ledger.ReadWinningBid failed")
			return "", err
		}
		if amount.Cmp(a.MinNextBid(prior)) < 0 {
			return "", domain.ErrBidTooLow
		}
	}

	tx, err := im.ledger.PlaceBid(c, id, bidder, amount)
	if err != nil {
		c.WithFields(log.Fields{
			"auctionId": id,
			"bidder":    bidder,
			"err":       err,
		}).Error("ledger.PlaceBid failed")
		return "", err
	}

	// a late winning bid may have extended endTime on the ledger; the stale
	// projection must not survive the accepted bid
	im.dropProjection(c, id)
	return tx, nil
}

func (im *impl) CollectPayout(c ctx.Ctx, id auction.Id, caller domain.Address) (domain.TxRef, error) {
	a, err := im.readLive(c, id)
	if err != nil {
		return "", err
	}
	if !a.Creator.Equals(caller) {
		return "", domain.ErrNotCreator
	}
	if err := im.requireExpired(c, id, a); err != nil {
		return "", err
	}
	if a.PayoutCollected {
		return "", domain.ErrAlreadyCollected
	}
	if wb, err := im.GetWinningBid(c, id); err != nil {
		return "", err
	} else if wb == nil || wb.Amount.IsZero() {
		return "", domain.ErrNoBids
	}

	tx, err := im.ledger.CollectAuctionPayout(c, id, caller.ToLower())
	if err != nil {
		c.WithFields(log.Fields{
			"auctionId": id,
			"err":       err,
		}).Error("ledger.CollectAuctionPayout failed")
		return "", err
	}
	im.dropProjection(c, id)
	return tx, nil
}

func (im *impl) CollectTokens(c ctx.Ctx, id auction.Id, caller domain.Address) (domain.TxRef, error) {
	a, err := im.readLive(c, id)
	if err != nil {
		return "", err
	}
	if err := im.requireExpired(c, id, a); err != nil {
		return "", err
	}
	wb, err := im.GetWinningBid(c, id)
	if err != nil {
		return "", err
	}
	if wb == nil || wb.Amount.IsZero() {
		return "", domain.ErrNoBids
	}
	if !wb.Bidder.Equals(caller) {
		return "", domain.ErrNotWinner
	}
	if a.TokensCollected {
		return "", domain.ErrAlreadyCollected
	}

	tx, err := im.ledger.CollectAuctionTokens(c, id, caller.ToLower())
	if err != nil {
		c.WithFields(log.Fields{
			"auctionId": id,
			"err":       err,
		}).Error("ledger.CollectAuctionTokens failed")
		return "", err
	}
	im.dropProjection(c, id)
	return tx, nil
}

func (im *impl) Cancel(c ctx.Ctx, id auction.Id, caller domain.Address) error {
	a, err := im.readLive(c, id)
	if err != nil {
		return err
	}
	if !a.Creator.Equals(caller) {
		return domain.ErrNotCreator
	}
	if !a.Status.IsCreated() {
		return domain.ErrNotActive
	}
	if a.IsExpiredAt(im.now()) {
		return domain.ErrExpired
	}
	wb, err := im.GetWinningBid(c, id)
	if err != nil {
		return err
	}
	if wb != nil && !wb.Amount.IsZero() {
		return domain.ErrHasBids
	}

	if _, err := im.ledger.CancelAuction(c, id); err != nil {
		c.WithFields(log.Fields{
			"auctionId": id,
			"err":       err,
		}).Error("ledger.CancelAuction failed")
		return err
	}
	im.dropProjection(c, id)
	return nil
}

func (im *impl) GetAuction(c ctx.Ctx, id auction.Id) (*auction.Auction, error) {
	if im.cache == nil {
		return im.readLive(c, id)
	}
	res := &auction.Auction{}
	err := im.cache.GetByFunc(c, keys.CacheKey(keys.PfxAuction, id.String()), res, func() (interface{}, error) {
		a, err := im.readLive(c, id)
		if err != nil {
			return nil, err
		}
		return a, nil
	})
	if err != nil {
		return nil, err
	}
	return res, nil
}

func (im *impl) GetWinningBid(c ctx.Ctx, id auction.Id) (*auction.WinningBid, error) {
	wb, err := im.ledger.ReadWinningBid(c, id)
	if err != nil {
		c.WithFields(log.Fields{
			"auctionId": id,
			"err":       err,
		}).Error("ledger.ReadWinningBid failed")
		return nil, err
	}
	if wb != nil {
		wb.Bidder = wb.Bidder.ToLower()
	}
	return wb, nil
}

func (im *impl) IsExpired(c ctx.Ctx, id auction.Id) (bool, error) {
	expired, err := im.ledger.IsAuctionExpired(c, id)
	if err != nil {
		c.WithFields(log.Fields{
			"auctionId": id,
			"err":       err,
		}).Error("ledger.IsAuctionExpired failed")
		return false, err
	}
	return expired, nil
}

func (im *impl) requireExpired(c ctx.Ctx, id auction.Id, a *auction.Auction) error {
	if a.IsExpiredAt(im.now()) {
		return nil
	}
	// endTime may have been extended ledger-side; trust the ledger's verdict
	expired, err := im.IsExpired(c, id)
	if err != nil {
		return err
	}
	if !expired {
		return domain.ErrNotExpired
	}
	return nil
}

func (im *impl) checkPrice(c ctx.Ctx, m domain.Money) (domain.Money, error) {
	if m.Value == nil || m.IsNegative() {
		return domain.Money{}, domain.ErrInvalidPriceFormat
	}
	res := im.price.Repair(c, m, nil)
	if !res.IsValid {
		c.WithFields(log.Fields{
			"original":  res.OriginalDisplay,
			"corrected": res.CorrectedDisplay,
		}).Warn("auction price corrected")
	}
	return res.Corrected, nil
}

func (im *impl) readLive(c ctx.Ctx, id auction.Id) (*auction.Auction, error) {
	a, err := im.ledger.ReadAuction(c, id)
	if err != nil {
		c.WithFields(log.Fields{
			"auctionId": id,
			"err":       err,
		}).Error("ledger.ReadAuction failed")
		return nil, err
	}
	a.LowerCase()
	return a, nil
}

func (im *impl) dropProjection(c ctx.Ctx, id auction.Id) {
	if im.cache == nil {
		return
	}
	if err := im.cache.Del(c, keys.CacheKey(keys.PfxAuction, id.String())); err != nil {
		c.WithFields(log.Fields{
			"auctionId": id,
			"err":       err,
		}).Warn("cache.Del failed")
	}
}
