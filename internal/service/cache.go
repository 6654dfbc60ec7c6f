// internal/service/cache.go
package service

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"time"

	"github.com/desbravaprovas/clubcore/internal/cache"
	"github.com/desbravaprovas/clubcore/internal/domain"
)

const publicExamsKey = "exams:public"

// CacheService stores JSON-encoded values in a cache.Store.
type CacheService struct {
	store cache.Store
	ttl   time.Duration
}

// NewCacheService wraps store. A zero ttl defers to the store's default.
func NewCacheService(store cache.Store, ttl time.Duration) *CacheService {
	return &CacheService{store: store, ttl: ttl}
}

// Set stores value under key
func (s *CacheService) Set(ctx context.Context, key string, value interface{}) error {
	if key == "" {
		return domain.ErrInvalidArgument
	}

	data, err := json.Marshal(value)
	if err != nil {
		return fmt.Errorf("marshaling cache value: %w", err)
	}

	return s.store.Set(ctx, key, data, s.ttl)
}

// Get decodes the value under key into result. A missing key yields domain.ErrCacheMiss.
func (s *CacheService) Get(ctx context.Context, key string, result interface{}) error {
	if key == "" {
		return domain.ErrInvalidArgument
	}

	data, found, err := s.store.Get(ctx, key)
	if err != nil {
		return fmt.Errorf("reading cache: %w", err)
	}
	if !found {
		return domain.ErrCacheMiss
	}

	if err := json.Unmarshal(data, result); err != nil {
		return fmt.Errorf("unmarshaling cached value: %w", err)
	}
	return nil
}

// GetOrSet reads key into result, calling fetch and storing its value on a miss.
// A store failure falls through to fetch.
func (s *CacheService) GetOrSet(ctx context.Context, key string, result interface{}, fetch func() (interface{}, error)) error {
	err := s.Get(ctx, key, result)
	if err == nil {
		return nil
	}
	if errors.Is(err, domain.ErrInvalidArgument) {
		return err
	}

	value, err := fetch()
	if err != nil {
		return err
	}

	data, err := json.Marshal(value)
	if err != nil {
		return fmt.Errorf("marshaling fetched value: %w", err)
	}
	// Best effort; the fetched value is still returned.
	_ = s.store.Set(ctx, key, data, s.ttl)

	if err := json.Unmarshal(data, result); err != nil {
		return fmt.Errorf("unmarshaling fetched value: %w", err)
	}
	return nil
}

// Delete removes keys from the cache
func (s *CacheService) Delete(ctx context.Context, keys ...string) error {
	return s.store.Delete(ctx, keys...)
}

// InvalidatePublicExams drops the cached public exam listing.
func (s *CacheService) InvalidatePublicExams(ctx context.Context) error {
	return s.Delete(ctx, publicExamsKey)
}
