package domain

import (
	"time"

	"github.com/spf13/viper"
)

// TradingCfg collects the tunables of the trading core. It is loaded once and
// injected into each lifecycle manager at construction; nothing reads viper
// after startup.
type TradingCfg struct {
	// price integrity
	DefaultCurrency string
	TokenDecimals   int32
	// whole units; values at or above this are treated as corrupted
	CeilingUnits int64
	// whole units, decimal string; substituted for corrupted values
	FallbackUnits string

	// listing defaults
	DefaultListingWindow time.Duration

	// auction defaults
	DefaultTimeBuffer   time.Duration
	DefaultBidBufferBps int64

	// auction sync
	SyncInterval        time.Duration
	SyncBackoffCapMulti int64
	SyncFailureStreak   int
	SyncMaxPollers      int
	SyncIdleGrace       time.Duration
}

// LoadTradingCfg reads the `trading` config block, falling back to package
// defaults for unset keys.
func LoadTradingCfg() TradingCfg {
	v := viper.Sub("trading")
	if v == nil {
		v = viper.New()
	}
	v.SetDefault("default_currency", "MATIC")
	v.SetDefault("token_decimals", 18)
	v.SetDefault("ceiling_units", 1000)
	v.SetDefault("fallback_units", "0.001")
	v.SetDefault("listing_window", 30*24*time.Hour)
	v.SetDefault("time_buffer", 300*time.Second)
	v.SetDefault("bid_buffer_bps", 500)
	v.SetDefault("sync_interval", 30*time.Second)
	v.SetDefault("sync_backoff_cap_multi", 10)
	v.SetDefault("sync_failure_streak", 3)
	v.SetDefault("sync_max_pollers", 256)
	v.SetDefault("sync_idle_grace", 2*time.Minute)

	return TradingCfg{
		DefaultCurrency:      v.GetString("default_currency"),
		TokenDecimals:        int32(v.GetInt32("token_decimals")),
		CeilingUnits:         v.GetInt64("ceiling_units"),
		FallbackUnits:        v.GetString("fallback_units"),
		DefaultListingWindow: v.GetDuration("listing_window"),
		DefaultTimeBuffer:    v.GetDuration("time_buffer"),
		DefaultBidBufferBps:  v.GetInt64("bid_buffer_bps"),
		SyncInterval:         v.GetDuration("sync_interval"),
		SyncBackoffCapMulti:  v.GetInt64("sync_backoff_cap_multi"),
		SyncFailureStreak:    v.GetInt("sync_failure_streak"),
		SyncMaxPollers:       v.GetInt("sync_max_pollers"),
		SyncIdleGrace:        v.GetDuration("sync_idle_grace"),
	}
}
