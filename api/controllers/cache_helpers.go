package controllers

import (
	"context"

	"github.com/jaekwan-dev/soccer-schedule-manager/api/cache"
)

const matchListCacheKey = "match_list"

// invalidateMatchListCache is best-effort: a cache failure never fails the
// primary write.
func invalidateMatchListCache() {
	_ = cache.Delete(context.Background(), matchListCacheKey)
}
