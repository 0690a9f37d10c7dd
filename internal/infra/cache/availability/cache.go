package availability

import (
	"context"
	"encoding/json"
	"fmt"
	"time"

	"github.com/redis/go-redis/v9"

	"github.com/fleetops/FMS-CarBookingService/internal/domain"
)

// Cache keeps rendered availability maps in redis for a short TTL so the
// calendar view does not hit the database on every poll.
//
// The cache is optional: a nil client turns every method into a no-op and
// the service keeps working straight off the database. Cache failures are
// treated the same way, availability is always recomputable.
type Cache struct {
	client *redis.Client
	ttl    time.Duration
}

// New creates the cache. client may be nil to disable caching.
func New(client *redis.Client, ttl time.Duration) *Cache {
	return &Cache{client: client, ttl: ttl}
}

// Get returns the cached availability for one vehicle and date.
// The second result is false on miss, disabled cache or any redis error.
func (c *Cache) Get(ctx context.Context, vehicleID int64, date time.Time) (domain.AvailabilityMap, bool) {
	if c.client == nil {
		return nil, false
	}

	raw, err := c.client.Get(ctx, key(vehicleID, date)).Bytes()
	if err != nil {
		return nil, false
	}

	var avail domain.AvailabilityMap
	if err := json.Unmarshal(raw, &avail); err != nil {
		return nil, false
	}

	return avail, true
}

// Set stores the availability map. Errors are ignored.
func (c *Cache) Set(ctx context.Context, vehicleID int64, date time.Time, avail domain.AvailabilityMap) {
	if c.client == nil {
		return
	}

	raw, err := json.Marshal(avail)
	if err != nil {
		return
	}

	c.client.Set(ctx, key(vehicleID, date), raw, c.ttl)
}

// Invalidate drops the cached entry after a booking write.
func (c *Cache) Invalidate(ctx context.Context, vehicleID int64, date time.Time) {
	if c.client == nil {
		return
	}

	c.client.Del(ctx, key(vehicleID, date))
}

func key(vehicleID int64, date time.Time) string {
	return fmt.Sprintf("availability:%d:%s", vehicleID, date.Format(domain.DateFormat))
}
