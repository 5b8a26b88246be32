package cache

import (
	"fmt"
	"fxcalc/internal/domain"
	"time"

	"github.com/dgraph-io/ristretto"
	"github.com/google/uuid"
	"github.com/sirupsen/logrus"
)

type RistrettoQuoteCache struct {
	cache *ristretto.Cache
	ttl   time.Duration
}

const defaultMaxItems = 1000

// NewQuoteCache holds up to maxItems quotes; every quote costs 1.
func NewQuoteCache(maxItems int64, ttl time.Duration) (*RistrettoQuoteCache, error) {
	if maxItems <= 0 {
		maxItems = defaultMaxItems
	}
	c, err := ristretto.NewCache(&ristretto.Config{
		NumCounters:        10 * maxItems,
		MaxCost:            maxItems,
		BufferItems:        64,
		IgnoreInternalCost: true,
	})
	if err != nil {
		return nil, fmt.Errorf("create quote cache failed: %w", err)
	}
	return &RistrettoQuoteCache{cache: c, ttl: ttl}, nil
}

func (c *RistrettoQuoteCache) Get(id uuid.UUID) (domain.Quote, bool) {
	if v, ok := c.cache.Get(id.String()); ok {
		q, ok := v.(domain.Quote)
		return q, ok
	}
	return domain.Quote{}, false
}

// Set stores the quote and waits for the write to be applied, so a Get
// issued after Set returns sees it.
func (c *RistrettoQuoteCache) Set(q domain.Quote) {
	var accepted bool
	if c.ttl > 0 {
		accepted = c.cache.SetWithTTL(q.ID.String(), q, 1, c.ttl)
	} else {
		accepted = c.cache.Set(q.ID.String(), q, 1)
	}
	if !accepted {
		logrus.WithField("quote_id", q.ID).Warn("quote cache dropped write")
		return
	}
	c.cache.Wait()
}

func (c *RistrettoQuoteCache) Close() { c.cache.Close() }
