package merchant

import (
	"container/list"
	"context"
	"sync"
	"time"

	"github.com/celopay/celopay-go/types"
)

// ProfileCache stores merchant profiles keyed by normalized (lowercased)
// address. A nil profile with a nil error signals a miss.
type ProfileCache interface {
	Get(ctx context.Context, address string) (*types.MerchantProfile, error)
	Set(ctx context.Context, address string, profile *types.MerchantProfile) error
	Clear(ctx context.Context) error
}

// DefaultMaxEntries bounds the in-memory cache when no explicit size is
// given.
const DefaultMaxEntries = 1024

// MemoryCache is a size-bounded in-process ProfileCache with optional TTL.
// Least-recently-used entries are evicted once the bound is reached. A zero
// TTL keeps entries for the process lifetime.
type MemoryCache struct {
	mu         sync.Mutex
	maxEntries int
	ttl        time.Duration
	order      *list.List
	items      map[string]*list.Element
}

type cacheEntry struct {
	key      string
	profile  *types.MerchantProfile
	storedAt time.Time
}

// NewMemoryCache creates a MemoryCache. maxEntries <= 0 selects
// DefaultMaxEntries; ttl <= 0 disables expiry.
func NewMemoryCache(maxEntries int, ttl time.Duration) *MemoryCache {
	if maxEntries <= 0 {
		maxEntries = DefaultMaxEntries
	}
	return &MemoryCache{
		maxEntries: maxEntries,
		ttl:        ttl,
		order:      list.New(),
		items:      make(map[string]*list.Element),
	}
}

func (c *MemoryCache) Get(_ context.Context, address string) (*types.MerchantProfile, error) {
	c.mu.Lock()
	defer c.mu.Unlock()

	el, ok := c.items[address]
	if !ok {
		return nil, nil
	}
	entry := el.Value.(*cacheEntry)
	if c.ttl > 0 && time.Since(entry.storedAt) > c.ttl {
		c.order.Remove(el)
		delete(c.items, address)
		return nil, nil
	}
	c.order.MoveToFront(el)

	// Return a copy so cached entries stay immutable.
	p := *entry.profile
	return &p, nil
}

func (c *MemoryCache) Set(_ context.Context, address string, profile *types.MerchantProfile) error {
	if profile == nil {
		return nil
	}
	c.mu.Lock()
	defer c.mu.Unlock()

	p := *profile
	if el, ok := c.items[address]; ok {
		el.Value = &cacheEntry{key: address, profile: &p, storedAt: time.Now()}
		c.order.MoveToFront(el)
		return nil
	}

	c.items[address] = c.order.PushFront(&cacheEntry{key: address, profile: &p, storedAt: time.Now()})
	for c.order.Len() > c.maxEntries {
		oldest := c.order.Back()
		c.order.Remove(oldest)
		delete(c.items, oldest.Value.(*cacheEntry).key)
	}
	return nil
}

func (c *MemoryCache) Clear(_ context.Context) error {
	c.mu.Lock()
	defer c.mu.Unlock()

	c.order.Init()
	c.items = make(map[string]*list.Element)
	return nil
}

// Len reports the number of cached profiles.
func (c *MemoryCache) Len() int {
	c.mu.Lock()
	defer c.mu.Unlock()
	return c.order.Len()
}
