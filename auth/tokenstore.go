package auth

import (
	"context"
	"errors"
	"time"

	"github.com/allegro/bigcache/v3"
)

type (
	// TokenStore remembers which tokens this process has issued.
	TokenStore interface {
		Save(ctx context.Context, token string) error
		Lookup(ctx context.Context, token string) (bool, error)
	}

	memStore struct {
		cache *bigcache.BigCache
	}
)

// InMemoryTokenStore keeps issued tokens in process memory, entries are
// evicted after the given lifetime. Tokens are lost on restart, the
// user simply logs in again.
func InMemoryTokenStore(lifetime time.Duration) TokenStore {
	cache, _ := bigcache.NewBigCache(bigcache.DefaultConfig(lifetime))
	return &memStore{
		cache: cache,
	}
}

func (m *memStore) Save(ctx context.Context, token string) error {
	return m.cache.Set(token, []byte{1})
}

func (m *memStore) Lookup(ctx context.Context, token string) (bool, error) {
	buf, err := m.cache.Get(token)
	if errors.Is(err, bigcache.ErrEntryNotFound) {
		return false, nil
	} else if err != nil {
		return false, err
	}
	return (len(buf) > 0 && buf[0] == 1), nil
}
