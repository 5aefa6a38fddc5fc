package controllers

import (
	"context"
	"fmt"
	"log"
	"strconv"
	"time"

	"Chirp/cache"
)

const unreadCountTTL = 60 * time.Second

func unreadCountKey(userID uint) string {
	return fmt.Sprintf("notifications:unread:%d", userID)
}

// cachedUnreadCount returns (count, true) on a cache hit. Any cache failure
// is treated as a miss; the database stays authoritative.
func cachedUnreadCount(userID uint) (int64, bool) {
	if cache.Client == nil {
		return 0, false
	}
	ctx, cancel := context.WithTimeout(context.Background(), 500*time.Millisecond)
	defer cancel()

	val, err := cache.Get(ctx, unreadCountKey(userID))
	if err != nil || val == "" {
		return 0, false
	}
	count, err := strconv.ParseInt(val, 10, 64)
	if err != nil {
		return 0, false
	}
	return count, true
}

func storeUnreadCount(userID uint, count int64) {
	if cache.Client == nil {
		return
	}
	ctx, cancel := context.WithTimeout(context.Background(), 500*time.Millisecond)
	defer cancel()

	if err := cache.Set(ctx, unreadCountKey(userID), []byte(strconv.FormatInt(count, 10)), unreadCountTTL); err != nil {
		log.Printf("unread count cache write failed for user %d: %v", userID, err)
	}
}

func invalidateUnreadCountCache(userID uint) {
	if cache.Client == nil {
		return
	}
	ctx, cancel := context.WithTimeout(context.Background(), 500*time.Millisecond)
	defer cancel()

	if err := cache.Delete(ctx, unreadCountKey(userID)); err != nil {
		log.Printf("unread count cache invalidation failed for user %d: %v", userID, err)
	}
}
