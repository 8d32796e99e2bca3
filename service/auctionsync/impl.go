package auctionsync

import (
	"sync"
	"sync/atomic"
	"time"

	"github.com/google/uuid"
	"github.com/viney-shih/goroutines"

	"github.com/collectex/tradecore/base/backoff"
	bCtx "github.com/collectex/tradecore/base/ctx"
	"github.com/collectex/tradecore/base/goroutine"
	"github.com/collectex/tradecore/base/log"
	"github.com/collectex/tradecore/base/metrics"
	"github.com/collectex/tradecore/domain"
	"github.com/collectex/tradecore/domain/auction"
)

const (
	defaultInterval        = 30 * time.Second
	defaultBackoffCapMulti = 10
	defaultFailureStreak   = 3
	defaultMaxPollers      = 256
	defaultIdleGrace       = 2 * time.Minute
)

type ServiceCfg struct {
	AuctionUC       auction.UseCase
	DefaultInterval time.Duration
	// consecutive failures before the refresh interval starts doubling
	FailureStreak int
	// cap on the widened interval, as a multiple of the base interval
	BackoffCapMulti int64
	// bound on concurrently executing fetches across all tracked auctions
	MaxPollers int
	// how long an entry with no observers survives before eviction
	IdleGrace time.Duration
	// test seam, defaults to time.Now
	Now func() time.Time
}

type entry struct {
	id auction.Id

	// single-flight guard, 0 = idle, 1 = fetch in flight
	isFetching int32

	stop     chan struct{}
	stopOnce sync.Once
	wake     chan struct{}

	// mutex protected members
	mutex sync.Mutex
	// set when the entry leaves im.entries; observers must not register on it
	removed       bool
	lastKnownBid  domain.Money
	lastFetchedAt time.Time
	baseInterval  time.Duration
	interval      time.Duration
	failures      int
	bo            *backoff.Backoff
	observers     map[uuid.UUID]struct{}
	idleSince     time.Time
}

type impl struct {
	auctionUC       auction.UseCase
	pool            *goroutines.Pool
	met             metrics.Service
	defaultInterval time.Duration
	failureStreak   int
	backoffCapMulti int64
	idleGrace       time.Duration
	now             func() time.Time

	done     chan struct{}
	doneOnce sync.Once

	// mutex protected members
	mutex   sync.Mutex
	entries map[auction.Id]*entry
}

func New(cfg *ServiceCfg) Service {
	interval := cfg.DefaultInterval
	if interval == 0 {
		interval = defaultInterval
	}
	streak := cfg.FailureStreak
	if streak == 0 {
		streak = defaultFailureStreak
	}
	capMulti := cfg.BackoffCapMulti
	if capMulti == 0 {
		capMulti = defaultBackoffCapMulti
	}
	maxPollers := cfg.MaxPollers
	if maxPollers == 0 {
		maxPollers = defaultMaxPollers
	}
	idleGrace := cfg.IdleGrace
	if idleGrace == 0 {
		idleGrace = defaultIdleGrace
	}
	now := cfg.Now
	if now == nil {
		now = time.Now
	}
	return &impl{
		auctionUC:       cfg.AuctionUC,
		pool:            goroutines.NewPool(maxPollers),
		met:             metrics.New("auctionsync"),
		defaultInterval: interval,
		failureStreak:   streak,
		backoffCapMulti: capMulti,
		idleGrace:       idleGrace,
		now:             now,
		done:            make(chan struct{}),
		entries:         make(map[auction.Id]*entry),
	}
}

func (im *impl) Observe(c bCtx.Ctx, id auction.Id, refreshInterval time.Duration) (Handle, error) {
	select {
	case <-im.done:
		return Handle{}, domain.ErrNotActive
	default:
	}

	if refreshInterval <= 0 {
		refreshInterval = im.defaultInterval
	}
	token := uuid.New()

	for {
		im.mutex.Lock()
		e, ok := im.entries[id]
		if !ok {
			e = &entry{
				id:           id,
				stop:         make(chan struct{}),
				wake:         make(chan struct{}, 1),
				baseInterval: refreshInterval,
				interval:     refreshInterval,
				bo:           backoff.NewExponential(refreshInterval, time.Duration(im.backoffCapMulti)*refreshInterval),
				observers:    map[uuid.UUID]struct{}{token: {}},
			}
			im.entries[id] = e
			im.mutex.Unlock()

			im.met.BumpSum("observe.new", 1)
			goroutine.RecoverableGo(func() { im.run(e) })
			return Handle{AuctionId: id, token: token}, nil
		}
		im.mutex.Unlock()

		// already tracked: adopt the newly desired interval. The entry can
		// retire between the two locks; start over on a dead one so the handle
		// always lands on a live poller.
		e.mutex.Lock()
		if e.removed {
			e.mutex.Unlock()
			continue
		}
		e.observers[token] = struct{}{}
		e.idleSince = time.Time{}
		if refreshInterval != e.baseInterval {
			e.baseInterval = refreshInterval
			e.interval = refreshInterval
			e.failures = 0
			e.bo = backoff.NewExponential(refreshInterval, time.Duration(im.backoffCapMulti)*refreshInterval)
		}
		e.mutex.Unlock()

		return Handle{AuctionId: id, token: token}, nil
	}
}

func (im *impl) CurrentBid(id auction.Id) (BidSnapshot, bool) {
	im.mutex.Lock()
	e, ok := im.entries[id]
	im.mutex.Unlock()
	if !ok {
		return BidSnapshot{}, false
	}

	e.mutex.Lock()
	snap := BidSnapshot{
		Amount:        e.lastKnownBid,
		LastFetchedAt: e.lastFetchedAt,
		IsFetching:    atomic.LoadInt32(&e.isFetching) == 1,
	}
	e.mutex.Unlock()
	return snap, true
}

func (im *impl) Refetch(c bCtx.Ctx, id auction.Id) {
	im.mutex.Lock()
	e, ok := im.entries[id]
	im.mutex.Unlock()
	if !ok {
		return
	}
	select {
	case e.wake <- struct{}{}:
	default:
		// a wakeup is already pending
	}
}

func (im *impl) Release(h Handle) {
	im.mutex.Lock()
	e, ok := im.entries[h.AuctionId]
	im.mutex.Unlock()
	if !ok {
		return
	}

	e.mutex.Lock()
	delete(e.observers, h.token)
	if len(e.observers) == 0 && e.idleSince.IsZero() {
		e.idleSince = im.now()
	}
	e.mutex.Unlock()
}

func (im *impl) Close() {
	im.doneOnce.Do(func() {
		close(im.done)
	})

	im.mutex.Lock()
	entries := make([]*entry, 0, len(im.entries))
	for _, e := range im.entries {
		entries = append(entries, e)
	}
	im.entries = make(map[auction.Id]*entry)
	im.mutex.Unlock()

	for _, e := range entries {
		e.stopOnce.Do(func() { close(e.stop) })
	}
	im.pool.Release()
}

// run is the per-auction poller loop. The loop itself is cheap; the fetch is
// scheduled on the shared bounded pool.
func (im *impl) run(e *entry) {
	c := bCtx.Background()
	c = bCtx.WithValue(c, "auctionId", e.id.String())

	timer := time.NewTimer(0)
	defer timer.Stop()

	for {
		select {
		case <-im.done:
			return
		case <-e.stop:
			return
		case <-e.wake:
		case <-timer.C:
		}

		if im.evictIfIdle(c, e) {
			return
		}

		if atomic.CompareAndSwapInt32(&e.isFetching, 0, 1) {
			im.pool.Schedule(func() { im.fetch(c, e) })
		} else {
			// never overlap fetches for one id
			im.met.BumpSum("tick.skip", 1)
		}

		e.mutex.Lock()
		interval := e.interval
		e.mutex.Unlock()
		timer.Reset(interval)
	}
}

func (im *impl) fetch(c bCtx.Ctx, e *entry) {
	defer atomic.StoreInt32(&e.isFetching, 0)
	defer im.met.BumpTime("fetch.time").End()

	expired, err := im.auctionUC.IsExpired(c, e.id)
	if err != nil {
		im.fail(c, e, err)
		return
	}

	wb, err := im.auctionUC.GetWinningBid(c, e.id)
	if err != nil {
		im.fail(c, e, err)
		return
	}

	e.mutex.Lock()
	if wb != nil {
		e.lastKnownBid = wb.Amount
	}
	e.lastFetchedAt = im.now()
	if e.failures >= im.failureStreak {
		// recovered, return to the requested cadence
		e.bo.Reset()
		e.interval = e.baseInterval
	}
	e.failures = 0
	e.mutex.Unlock()

	if expired {
		// one final read has just happened; the poller retires itself
		im.met.BumpSum("poller.expired", 1)
		im.remove(e)
	}
}

// fail logs and swallows a fetch failure; observers keep the stale value.
// A streak of failures widens the interval exponentially up to the cap.
func (im *impl) fail(c bCtx.Ctx, e *entry, err error) {
	im.met.BumpSum("fetch.err", 1)
	c.WithFields(log.Fields{
		"auctionId": e.id,
		"err":       err,
	}).Warn("refresh failed, keeping stale bid")

	e.mutex.Lock()
	e.failures++
	if e.failures >= im.failureStreak {
		e.interval = e.bo.Advance()
		im.met.BumpSum("fetch.backoff", 1)
	}
	e.mutex.Unlock()
}

func (im *impl) evictIfIdle(c bCtx.Ctx, e *entry) bool {
	e.mutex.Lock()
	idle := len(e.observers) == 0 && !e.idleSince.IsZero() && im.now().Sub(e.idleSince) >= im.idleGrace
	if idle {
		// decided under the same lock an Observe would register under, so no
		// observer can slip onto the entry after the verdict
		e.removed = true
	}
	e.mutex.Unlock()
	if !idle {
		return false
	}
	c.WithField("auctionId", e.id).Info("evicting idle auction poller")
	im.remove(e)
	return true
}

func (im *impl) remove(e *entry) {
	im.mutex.Lock()
	if cur, ok := im.entries[e.id]; ok && cur == e {
		delete(im.entries, e.id)
	}
	e.mutex.Lock()
	e.removed = true
	e.mutex.Unlock()
	im.mutex.Unlock()
	e.stopOnce.Do(func() { close(e.stop) })
}
