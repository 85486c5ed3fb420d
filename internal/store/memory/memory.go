package memory

import (
	"context"

	"github.com/patrickmn/go-cache"
)

// Store is an in-process backend over go-cache with no expiration. It mirrors
// the session-local storage the persisted layout came from and doubles as the
// test backend.
type Store struct {
	cache *cache.Cache
}

func NewStore() *Store {
	return &Store{cache: cache.New(cache.NoExpiration, cache.NoExpiration)}
}

func (s *Store) Load(_ context.Context, key string) ([]byte, bool, error) {
	v, ok := s.cache.Get(key)
	if !ok {
		return nil, false, nil
	}
	raw, ok := v.([]byte)
	if !ok {
		return nil, false, nil
	}
	return raw, true, nil
}

func (s *Store) Save(_ context.Context, key string, value []byte) error {
	buf := make([]byte, len(value))
	copy(buf, value)
	s.cache.Set(key, buf, cache.NoExpiration)
	return nil
}

func (s *Store) Close() error {
	s.cache.Flush()
	return nil
}
