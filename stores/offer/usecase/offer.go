package usecase

import (
	"sync"
	"time"

	"github.com/go-playground/validator/v10"

	"github.com/collectex/tradecore/base/ctx"
	"github.com/collectex/tradecore/base/log"
	"github.com/collectex/tradecore/base/priceintegrity"
	bValidator "github.com/collectex/tradecore/base/validator"
	"github.com/collectex/tradecore/domain"
	"github.com/collectex/tradecore/domain/keys"
	"github.com/collectex/tradecore/domain/ledger"
	"github.com/collectex/tradecore/domain/offer"
)

type OfferUseCaseCfg struct {
	Ledger ledger.Gateway
	Price  priceintegrity.PriceIntegrity
	// test seam, defaults to time.Now
	Now func() time.Time
}

type liveOffer struct {
	id        offer.Id
	expiresAt time.Time
}

type impl struct {
	ledger   ledger.Gateway
	price    priceintegrity.PriceIntegrity
	validate *validator.Validate
	now      func() time.Time

	// mutex protected members
	mutex sync.Mutex
	// offeror+asset -> live offer, used for the duplicate-offer check
	liveOffers map[string]liveOffer
}

func New(cfg *OfferUseCaseCfg) offer.UseCase {
	now := cfg.Now
	if now == nil {
		now = time.Now
	}
	return &impl{
		ledger:     cfg.Ledger,
		price:      cfg.Price,
		validate:   bValidator.New(),
		now:        now,
		liveOffers: make(map[string]liveOffer),
	}
}

func (im *impl) Make(c ctx.Ctx, req offer.MakeRequest) (offer.Id, error) {
	if err := im.validate.Struct(req); err != nil {
		c.WithField("err", err).Warn("invalid make request")
		return "", domain.ErrBadParamInput
	}
	req.Offeror = req.Offeror.ToLower()
	req.Asset = req.Asset.ToLower()
	if req.Quantity == 0 {
		req.Quantity = 1
	}
	if req.DurationDays < offer.MinDurationDays || req.DurationDays > offer.MaxDurationDays {
		return "", domain.ErrInvalidDuration
	}

	price, err := im.checkPrice(c, req.TotalPrice)
	if err != nil {
		return "", err
	}

	key := liveOfferKey(req.Offeror, req.Asset)
	im.mutex.Lock()
	if lo, ok := im.liveOffers[key]; ok && im.now().Before(lo.expiresAt) {
		im.mutex.Unlock()
		return "", domain.ErrDuplicateOffer
	}
	im.mutex.Unlock()

	expiresAt := im.now().Add(time.Duration(req.DurationDays) * 24 * time.Hour)

	// escrow of the full total happens inside this call
	id, _, err := im.ledger.MakeOffer(c, ledger.MakeOfferParams{
		Offeror:    req.Offeror,
		Asset:      req.Asset,
		Quantity:   req.Quantity,
		Currency:   price.Currency,
		TotalPrice: price,
		ExpiresAt:  expiresAt,
	})
	if err != nil {
		c.WithFields(log.Fields{
			"asset":   req.Asset,
			"offeror": req.Offeror,
			"err":     err,
		}).Error("ledger.MakeOffer failed")
		return "", err
	}

	im.mutex.Lock()
	im.liveOffers[key] = liveOffer{id: id, expiresAt: expiresAt}
	im.mutex.Unlock()
	return id, nil
}

func (im *impl) Accept(c ctx.Ctx, id offer.Id, caller domain.Address) (domain.TxRef, error) {
	o, err := im.readLive(c, id)
	if err != nil {
		return "", err
	}
	if err := im.checkWritable(o); err != nil {
		return "", err
	}

	// only the current holder may accept; re-checked at submission time
	owner, err := im.ledger.OwnerOf(c, o.Asset)
	if err != nil {
		c.WithFields(log.Fields{
			"asset": o.Asset,
			"err":   err,
		}).Error("ledger.OwnerOf failed")
		return "", err
	}
	if !owner.Equals(caller) {
		return "", domain.ErrNotOwner
	}

	tx, err := im.ledger.AcceptOffer(c, id, caller.ToLower())
	if err != nil {
		c.WithFields(log.Fields{
			"offerId": id,
			"err":     err,
		}).Error("ledger.AcceptOffer failed")
		return "", err
	}
	im.forget(o)
	return tx, nil
}

func (im *impl) Withdraw(c ctx.Ctx, id offer.Id, caller domain.Address) (domain.TxRef, error) {
	o, err := im.readLive(c, id)
	if err != nil {
		return "", err
	}
	if !o.Offeror.Equals(caller) {
		return "", domain.ErrNotCreator
	}
	if err := im.checkWritable(o); err != nil {
		return "", err
	}

	tx, err := im.ledger.WithdrawOffer(c, id, caller.ToLower())
	if err != nil {
		c.WithFields(log.Fields{
			"offerId": id,
			"err":     err,
		}).Error("ledger.WithdrawOffer failed")
		return "", err
	}
	im.forget(o)
	return tx, nil
}

func (im *impl) GetOffer(c ctx.Ctx, id offer.Id) (*offer.Offer, error) {
	o, err := im.readLive(c, id)
	if err != nil {
		return nil, err
	}
	// readers see passive expiry even before the ledger records it
	o.Status = o.EffectiveStatus(im.now())
	return o, nil
}

// checkWritable fails fast on expired or terminal offers without spending a
// ledger call.
func (im *impl) checkWritable(o *offer.Offer) error {
	if o.Status.IsTerminal() {
		return domain.ErrNotActive
	}
	if o.IsExpiredAt(im.now()) {
		return domain.ErrExpired
	}
	if !o.Status.IsCreated() {
		return domain.ErrNotActive
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
		}).Warn("offer price corrected")
	}
	return res.Corrected, nil
}

func (im *impl) readLive(c ctx.Ctx, id offer.Id) (*offer.Offer, error) {
	o, err := im.ledger.ReadOffer(c, id)
	if err != nil {
		c.WithFields(log.Fields{
			"offerId": id,
			"err":     err,
		}).Error("ledger.ReadOffer failed")
		return nil, err
	}
	o.LowerCase()
	return o, nil
}

func (im *impl) forget(o *offer.Offer) {
	im.mutex.Lock()
	delete(im.liveOffers, liveOfferKey(o.Offeror, o.Asset))
	im.mutex.Unlock()
}

func liveOfferKey(offeror domain.Address, asset domain.AssetRef) string {
	return keys.CacheKey(keys.PfxOffer, offeror.ToLowerStr(), asset.String())
}
