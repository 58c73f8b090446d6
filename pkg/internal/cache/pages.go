package cache

import (
	"context"
	"time"

	"github.com/eko/gocache/lib/v4/cache"
	"github.com/eko/gocache/lib/v4/store"
	"github.com/spf13/viper"
)

// Rendered pages are cached as finished HTML keyed by fragment identity
// (path plus page number). The index page is the same for every viewer, so
// one entry serves all of them until the TTL runs out or an explicit flush.
const RenderedPageTag = "rendered-pages"

func RenderedPageTTL() time.Duration {
	ttl := viper.GetDuration("cache.index_ttl")
	if ttl <= 0 {
		ttl = 20 * time.Second
	}
	return ttl
}

func pageManager() *cache.Cache[[]byte] {
	return cache.New[[]byte](S)
}

func SetRenderedPage(key string, content []byte) {
	_ = pageManager().Set(
		context.Background(),
		key,
		content,
		store.WithExpiration(RenderedPageTTL()),
		store.WithTags([]string{RenderedPageTag}),
	)
}

func GetRenderedPage(key string) ([]byte, bool) {
	content, err := pageManager().Get(context.Background(), key)
	if err != nil || len(content) == 0 {
		return nil, false
	}
	return content, true
}

// FlushRenderedPages invalidates every cached page immediately. Nothing else
// flushes the cache: a freshly created post stays invisible on the index
// page until the TTL elapses or this is called.
func FlushRenderedPages() error {
	return pageManager().Invalidate(
		context.Background(),
		store.WithInvalidateTags([]string{RenderedPageTag}),
	)
}
