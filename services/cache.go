package services

import (
	"encoding/json"
	"fmt"
	"log"
	"time"

	"github.com/meinhoongagan/booking-platform/redis"
)

// Week results are cached briefly; writes that change availability drop the
// provider's keys explicitly, the TTL covers everything else.
const weekCacheTTL = 60 * time.Second

func weekCacheKey(providerID uint, weekStart time.Time, showUnavailable bool) string {
	return fmt.Sprintf("slots:week:%d:%s:%t", providerID, weekStart.Format(dateLayout), showUnavailable)
}

func (s *AvailabilityService) cachedWeek(providerID uint, weekStart time.Time, showUnavailable bool) ([]DaySlots, bool) {
	if redis.Client == nil {
		return nil, false
	}

	data, err := redis.Client.Get(redis.Ctx, weekCacheKey(providerID, weekStart, showUnavailable)).Result()
	if err != nil {
		return nil, false
	}

	var week []DaySlots
	if err := json.Unmarshal([]byte(data), &week); err != nil {
		return nil, false
	}
	return week, true
}

func (s *AvailabilityService) storeWeek(providerID uint, weekStart time.Time, showUnavailable bool, week []DaySlots) {
	if redis.Client == nil {
		return
	}

	data, err := json.Marshal(week)
	if err != nil {
		return
	}

	if err := redis.Client.Set(redis.Ctx, weekCacheKey(providerID, weekStart, showUnavailable), data, weekCacheTTL).Err(); err != nil {
		log.Printf("Failed to cache week slots: %v", err)
	}
}

// InvalidateSlotCache drops all cached week slots for a provider. Called
// after booking and restriction writes and availability updates.
func InvalidateSlotCache(providerID uint) {
	if redis.Client == nil {
		return
	}

	pattern := fmt.Sprintf("slots:week:%d:*", providerID)
	keys, err := redis.Client.Keys(redis.Ctx, pattern).Result()
	if err != nil || len(keys) == 0 {
		return
	}
	if err := redis.Client.Del(redis.Ctx, keys...).Err(); err != nil {
		log.Printf("Failed to invalidate slot cache: %v", err)
	}
}
