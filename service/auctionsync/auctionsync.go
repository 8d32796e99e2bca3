package auctionsync

import (
	"time"

	"github.com/google/uuid"

	"github.com/collectex/tradecore/base/ctx"
	"github.com/collectex/tradecore/domain"
	"github.com/collectex/tradecore/domain/auction"
)

// Handle identifies one observer's interest in one auction. Observers must
// release their handle when the auction leaves view; unreleased handles are
// reaped by the idle-eviction grace period rather than leaking pollers.
type Handle struct {
	AuctionId auction.Id
	token     uuid.UUID
}

// BidSnapshot is the non-blocking read of a tracked auction's cached state.
// It is eventually consistent and never an authority for write preconditions.
type BidSnapshot struct {
	Amount        domain.Money
	LastFetchedAt time.Time
	IsFetching    bool
}

// Service keeps a bounded-staleness cache of each observed auction's winning
// bid. At most one fetch per auction id is in flight at any time.
type Service interface {
	// Observe registers interest; idempotent per id. Re-observing a tracked id
	// updates the desired refresh interval instead of starting a second poller.
	Observe(c ctx.Ctx, id auction.Id, refreshInterval time.Duration) (Handle, error)
	// CurrentBid returns the last known value even while a refresh is in
	// flight. ok is false for untracked ids.
	CurrentBid(id auction.Id) (snapshot BidSnapshot, ok bool)
	// Refetch forces an out-of-band refresh, still subject to single-flight.
	Refetch(c ctx.Ctx, id auction.Id)
	// Release stops polling for this observer; the poller stops once no
	// observers remain and the idle grace elapses.
	Release(h Handle)
	// Close stops every poller and releases the worker pool.
	Close()
}
