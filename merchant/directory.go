// Package merchant resolves merchant profiles through a cache-or-fetch
// directory backed by a pluggable identity source.
package merchant

import (
	"context"
	"strings"

	"github.com/celopay/celopay-go/logger"
	"github.com/celopay/celopay-go/metrics"
	"github.com/celopay/celopay-go/types"
)

// ProfileSource looks up merchant profiles in an external identity
// directory. Lookups must be idempotent: the Directory caches results and
// may call Lookup repeatedly for the same address. Returning nil, nil means
// the address is unknown to the directory.
type ProfileSource interface {
	Lookup(ctx context.Context, address string) (*types.MerchantProfile, error)
}

// Directory answers profile queries from a cache, falling back to the
// source on a miss. It never returns an error: a failed lookup degrades to
// "not found", indistinguishable from an absent profile.
type Directory struct {
	source  ProfileSource
	cache   ProfileCache
	log     logger.Logger
	metrics metrics.Recorder
}

// NewDirectory wires a directory. A nil cache selects a default-sized
// MemoryCache; nil logger and recorder select Noop implementations.
func NewDirectory(source ProfileSource, cache ProfileCache, log logger.Logger, rec metrics.Recorder) *Directory {
	if cache == nil {
		cache = NewMemoryCache(0, 0)
	}
	if log == nil {
		log = logger.NoopLogger{}
	}
	if rec == nil {
		rec = metrics.NoopRecorder{}
	}
	return &Directory{
		source:  source,
		cache:   cache,
		log:     log,
		metrics: rec,
	}
}

// GetProfile returns the profile for address, consulting the cache first.
// Addresses are matched case-insensitively. A nil return means the address
// was not found or the lookup failed; callers must treat both the same.
func (d *Directory) GetProfile(ctx context.Context, address string) *types.MerchantProfile {
	key := strings.ToLower(address)

	cached, err := d.cache.Get(ctx, key)
	if err != nil {
		d.log.Warn("merchant cache read failed", map[string]any{
			"address": address,
			"error":   err.Error(),
		})
	} else if cached != nil {
		d.metrics.IncCounter("merchant_cache_hit", nil)
		return cached
	}

	profile, err := d.source.Lookup(ctx, address)
	if err != nil {
		d.metrics.IncCounter("merchant_lookup_failure", nil)
		d.log.Error("merchant profile lookup failed", map[string]any{
			"address": address,
			"error":   err.Error(),
		})
		return nil
	}
	if profile == nil {
		return nil
	}

	if err := d.cache.Set(ctx, key, profile); err != nil {
		d.log.Warn("merchant cache write failed", map[string]any{
			"address": address,
			"error":   err.Error(),
		})
	}
	return profile
}

// ClearCache drops every cached profile; the next GetProfile for any
// address consults the source again.
func (d *Directory) ClearCache(ctx context.Context) {
	if err := d.cache.Clear(ctx); err != nil {
		d.log.Warn("merchant cache clear failed", map[string]any{"error": err.Error()})
	}
}
