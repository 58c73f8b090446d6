package cache

import (
	"github.com/dgraph-io/ristretto"
	ristretto_store "github.com/eko/gocache/store/ristretto/v4"
)

// R is the raw ristretto instance; S wraps it for gocache managers.
// Tests use R.Wait() to flush ristretto's buffered writes.
var (
	R *ristretto.Cache
	S *ristretto_store.RistrettoStore
)

func NewStore() error {
	inner, err := ristretto.NewCache(&ristretto.Config{
		NumCounters: 1e4,
		MaxCost:     1 << 26,
		BufferItems: 64,
	})
	if err != nil {
		return err
	}

	R = inner
	S = ristretto_store.NewRistretto(inner)

	return nil
}
