// Package tradecore is the trading-state reconciliation layer of the
// marketplace. It validates and repairs prices, guards listing, auction and
// offer lifecycles against the authoritative ledger, and keeps a
// bounded-staleness cache of live auction bids.
package tradecore

import (
	"time"

	"github.com/collectex/tradecore/base/priceintegrity"
	"github.com/collectex/tradecore/domain"
	"github.com/collectex/tradecore/domain/auction"
	"github.com/collectex/tradecore/domain/ledger"
	"github.com/collectex/tradecore/domain/listing"
	"github.com/collectex/tradecore/domain/offer"
	"github.com/collectex/tradecore/domain/trading"
	"github.com/collectex/tradecore/service/auctionsync"
	"github.com/collectex/tradecore/service/cache"
	"github.com/collectex/tradecore/service/cache/provider/primitive"
	auctionUC "github.com/collectex/tradecore/stores/auction/usecase"
	listingUC "github.com/collectex/tradecore/stores/listing/usecase"
	offerUC "github.com/collectex/tradecore/stores/offer/usecase"
	tradingUC "github.com/collectex/tradecore/stores/trading/usecase"
)

const (
	// read projections go stale after this long even without an invalidating
	// write from this process
	projectionTtl = 30 * time.Second
	// in-process projection cache size, megabytes
	projectionCacheMb = 32
)

// Core bundles the wired trading components. Construct one per ledger gateway
// and call Close on shutdown to stop the auction pollers.
type Core struct {
	Price    priceintegrity.PriceIntegrity
	Listings listing.UseCase
	Auctions auction.UseCase
	Offers   offer.UseCase
	Sync     auctionsync.Service
	Trading  trading.UseCase
}

// New wires a Core from the `trading` config block.
func New(gw ledger.Gateway) *Core {
	return NewWithConfig(gw, domain.LoadTradingCfg())
}

func NewWithConfig(gw ledger.Gateway, cfg domain.TradingCfg) *Core {
	price := priceintegrity.New(&priceintegrity.PriceIntegrityCfg{
		DefaultCurrency: cfg.DefaultCurrency,
		TokenDecimals:   cfg.TokenDecimals,
		CeilingUnits:    cfg.CeilingUnits,
		FallbackUnits:   cfg.FallbackUnits,
	})

	projections := primitive.NewPrimitive("trading", projectionCacheMb)
	newCache := func(pfx string) cache.Service {
		return cache.New(cache.ServiceConfig{
			Ttl:   projectionTtl,
			Pfx:   pfx,
			Cache: projections,
		})
	}

	listings := listingUC.New(&listingUC.ListingUseCaseCfg{
		Ledger:        gw,
		Price:         price,
		Cache:         newCache("projection"),
		ListingWindow: cfg.DefaultListingWindow,
	})
	auctions := auctionUC.New(&auctionUC.AuctionUseCaseCfg{
		Ledger:              gw,
		Price:               price,
		Cache:               newCache("projection"),
		DefaultTimeBuffer:   cfg.DefaultTimeBuffer,
		DefaultBidBufferBps: cfg.DefaultBidBufferBps,
	})
	offers := offerUC.New(&offerUC.OfferUseCaseCfg{
		Ledger: gw,
		Price:  price,
	})
	sync := auctionsync.New(&auctionsync.ServiceCfg{
		AuctionUC:       auctions,
		DefaultInterval: cfg.SyncInterval,
		FailureStreak:   cfg.SyncFailureStreak,
		BackoffCapMulti: cfg.SyncBackoffCapMulti,
		MaxPollers:      cfg.SyncMaxPollers,
		IdleGrace:       cfg.SyncIdleGrace,
	})

	return &Core{
		Price:    price,
		Listings: listings,
		Auctions: auctions,
		Offers:   offers,
		Sync:     sync,
		Trading: tradingUC.New(&tradingUC.TradingUseCaseCfg{
			Ledger:    gw,
			ListingUC: listings,
			AuctionUC: auctions,
			OfferUC:   offers,
			Sync:      sync,
			Price:     price,
		}),
	}
}

func (c *Core) Close() {
	c.Sync.Close()
}
