package usecase

import (
	"time"

	"github.com/go-playground/validator/v10"

	"github.com/collectex/tradecore/base/ctx"
	"github.com/collectex/tradecore/base/log"
	"github.com/collectex/tradecore/base/priceintegrity"
	bValidator "github.com/collectex/tradecore/base/validator"
	"github.com/collectex/tradecore/domain"
	"github.com/collectex/tradecore/domain/keys"
	"github.com/collectex/tradecore/domain/ledger"
	"github.com/collectex/tradecore/domain/listing"
	"github.com/collectex/tradecore/service/cache"
)

type ListingUseCaseCfg struct {
	Ledger ledger.Gateway
	Price  priceintegrity.PriceIntegrity
	// optional projection cache for display reads; write preconditions always
	// re-read the ledger
	Cache         cache.Service
	ListingWindow time.Duration
	// test seam, defaults to time.Now
	Now func() time.Time
}

type impl struct {
	ledger        ledger.Gateway
	price         priceintegrity.PriceIntegrity
	cache         cache.Service
	listingWindow time.Duration
	validate      *validator.Validate
	now           func() time.Time
}

func New(cfg *ListingUseCaseCfg) listing.UseCase {
	window := cfg.ListingWindow
	if window == 0 {
		window = 30 * 24 * time.Hour
	}
	now := cfg.Now
	if now == nil {
		now = time.Now
	}
	return &impl{
		ledger:        cfg.Ledger,
		price:         cfg.Price,
		cache:         cfg.Cache,
		listingWindow: window,
		validate:      bValidator.New(),
		now:           now,
	}
}

func (im *impl) Create(c ctx.Ctx, req listing.CreateRequest) (listing.Id, error) {
	if err := im.validate.Struct(req); err != nil {
		c.WithField("err", err).Warn("invalid create request")
		return "", domain.ErrBadParamInput
	}
	req.Creator = req.Creator.ToLower()
	req.Asset = req.Asset.ToLower()
	if req.Quantity == 0 {
		req.Quantity = 1
	}

	price, err := im.checkPrice(c, req.PricePerUnit)
	if err != nil {
		return "", err
	}

	// ownership is re-checked against the ledger, never from a projection
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
	if req.StartTime != nil {
		start = *req.StartTime
	}
	end := start.Add(im.listingWindow)
	if req.EndTime != nil {
		end = *req.EndTime
	}
	if !end.After(start) {
		return "", domain.ErrInvalidDuration
	}

	id, _, err := im.ledger.CreateListing(c, ledger.CreateListingParams{
		Creator:      req.Creator,
		Asset:        req.Asset,
		Quantity:     req.Quantity,
		Currency:     price.Currency,
		PricePerUnit: price,
		StartTime:    start,
		EndTime:      end,
		Reserved:     req.Reserved,
	})
	if err != nil {
		c.WithFields(log.Fields{
			"asset": req.Asset,
			"err":   err,
		}).Error("ledger.CreateListing failed")
		return "", err
	}
	return id, nil
}

func (im *impl) UpdatePrice(c ctx.Ctx, id listing.Id, caller domain.Address, newPrice domain.Money) error {
	l, err := im.readLive(c, id)
	if err != nil {
		return err
	}
	if !l.Creator.Equals(caller) {
		return domain.ErrNotCreator
	}
	if !l.Status.IsCreated() {
		return domain.ErrNotActive
	}

	price, err := im.checkPrice(c, newPrice)
	if err != nil {
		return err
	}
	// a listing is denominated once at creation
	if !price.SameCurrency(l.PricePerUnit) {
		return domain.ErrInvalidCurrency
	}
	if price.Equals(l.PricePerUnit) {
		return domain.ErrNoChange
	}

	if _, err := im.ledger.UpdateListingPrice(c, id, price); err != nil {
		c.WithFields(log.Fields{
			"listingId": id,
			"err":       err,
		}).Error("ledger.UpdateListingPrice failed")
		return err
	}
	im.dropProjection(c, id)
	return nil
}

func (im *impl) Buy(c ctx.Ctx, id listing.Id, req listing.BuyRequest) (domain.TxRef, error) {
	if err := im.validate.Struct(req); err != nil {
		c.WithField("err", err).Warn("invalid buy request")
		return "", domain.ErrBadParamInput
	}
	req.Buyer = req.Buyer.ToLower()

	l, err := im.readLive(c, id)
	if err != nil {
		return "", err
	}
	if !l.IsActiveAt(im.now()) {
		return "", domain.ErrNotActive
	}
	if req.Quantity > l.Quantity {
		return "", domain.ErrInvalidQuantity
	}

	// zero tolerance: if the live price moved, fail here rather than sign a
	// transaction at a different total
	if !req.ExpectedTotalPrice.Equals(l.TotalPrice(req.Quantity)) {
		return "", domain.ErrPriceMismatch
	}

	tx, err := im.ledger.BuyFromListing(c, ledger.BuyFromListingParams{
		ListingId:          id,
		Buyer:              req.Buyer,
		Quantity:           req.Quantity,
		ExpectedTotalPrice: req.ExpectedTotalPrice,
	})
	if err != nil {
		c.WithFields(log.Fields{
			"listingId": id,
			"buyer":     req.Buyer,
			"err":       err,
		}).Error("ledger.BuyFromListing failed")
		return "", err
	}
	im.dropProjection(c, id)
	return tx, nil
}

func (im *impl) Cancel(c ctx.Ctx, id listing.Id, caller domain.Address) error {
	l, err := im.readLive(c, id)
	if err != nil {
		return err
	}
	if !l.Creator.Equals(caller) {
		return domain.ErrNotCreator
	}
	if !l.Status.IsCreated() {
		return domain.ErrNotActive
	}

	if _, err := im.ledger.CancelListing(c, id); err != nil {
		c.WithFields(log.Fields{
			"listingId": id,
			"err":       err,
		}).Error("ledger.CancelListing failed")
		return err
	}
	im.dropProjection(c, id)
	return nil
}

func (im *impl) GetListing(c ctx.Ctx, id listing.Id) (*listing.Listing, error) {
	if im.cache == nil {
		return im.readLive(c, id)
	}
	res := &listing.Listing{}
	err := im.cache.GetByFunc(c, keys.CacheKey(keys.PfxListing, id.String()), res, func() (interface{}, error) {
		l, err := im.readLive(c, id)
		if err != nil {
			return nil, err
		}
		return l, nil
	})
	if err != nil {
		return nil, err
	}
	return res, nil
}

// checkPrice enforces the validation taxonomy: malformed input is fatal, an
// out-of-range value is repaired in place and the operation proceeds.
func (im *impl) checkPrice(c ctx.Ctx, m domain.Money) (domain.Money, error) {
	if m.Value == nil || m.IsNegative() {
		return domain.Money{}, domain.ErrInvalidPriceFormat
	}
	res := im.price.Repair(c, m, nil)
	if !res.IsValid {
		c.WithFields(log.Fields{
			"original":  res.OriginalDisplay,
			"corrected": res.CorrectedDisplay,
		}).Warn("listing price corrected")
	}
	return res.Corrected, nil
}

func (im *impl) readLive(c ctx.Ctx, id listing.Id) (*listing.Listing, error) {
	l, err := im.ledger.ReadListing(c, id)
	if err != nil {
		c.WithFields(log.Fields{
			"listingId": id,
			"err":       err,
		}).Error("ledger.ReadListing failed")
		return nil, err
	}
	l.LowerCase()
	return l, nil
}

func (im *impl) dropProjection(c ctx.Ctx, id listing.Id) {
	if im.cache == nil {
		return
	}
	if err := im.cache.Del(c, keys.CacheKey(keys.PfxListing, id.String())); err != nil {
		c.WithFields(log.Fields{
			"listingId": id,
			"err":       err,
		}).Warn("cache.Del failed")
	}
}
