package adapter

import (
	"context"
	"sync"
	"time"

	"github.com/go-resty/resty/v2"
	"golang.org/x/sync/singleflight"
)

type cacheEntry struct {
	resp    *resty.Response
	expires time.Time
}

// responseCache keeps successful responses for ttl. Failures are never
// stored. Concurrent fetches of one key share a single request.
type responseCache struct {
	ttl   time.Duration
	now   func() time.Time
	group singleflight.Group

	mu      sync.Mutex
	entries map[string]cacheEntry
}

func newResponseCache(ttl time.Duration) *responseCache {
	return &responseCache{
		ttl:     ttl,
		now:     time.Now,
		entries: make(map[string]cacheEntry),
	}
}

func (c *responseCache) get(key string) (*resty.Response, bool) {
	c.mu.Lock()
	defer c.mu.Unlock()

	entry, ok := c.entries[key]
	if !ok {
		return nil, false
	}
	if !c.now().Before(entry.expires) {
		delete(c.entries, key)
		return nil, false
	}
	return entry.resp, true
}

func (c *responseCache) put(key string, resp *resty.Response) {
	c.mu.Lock()
	defer c.mu.Unlock()
	c.entries[key] = cacheEntry{resp: resp, expires: c.now().Add(c.ttl)}
}

func (c *responseCache) clear() {
	c.mu.Lock()
	defer c.mu.Unlock()
	clear(c.entries)
}

// fetch returns the cached response for key or calls fn once for all
// concurrent callers and caches its result. fn runs on a ctx detached from
// the caller that started it; each caller stops waiting when its own ctx is
// done.
func (c *responseCache) fetch(ctx context.Context, key string,
	fn func(context.Context) (*resty.Response, error)) (*resty.Response, error) {
	if resp, ok := c.get(key); ok {
		return resp, nil
	}

	detached := context.WithoutCancel(ctx)
	result := c.group.DoChan(key, func() (any, error) {
		if resp, ok := c.get(key); ok {
			return resp, nil
		}
		resp, err := fn(detached)
		if err != nil {
			return nil, err
		}
		c.put(key, resp)
		return resp, nil
	})

	select {
	case res := <-result:
		if res.Err != nil {
			return nil, res.Err
		}
		return res.Val.(*resty.Response), nil
	case <-ctx.Done():
		return nil, mapTransportError(ctx.Err())
	}
}
