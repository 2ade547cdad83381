package kvstore

import (
	"context"
	"sync"

	lru "github.com/hashicorp/golang-lru"
	"go.uber.org/zap"

	"github.com/Jacobbishopxy/herding-go/option"
)

// ============================================================================
// In-memory store
// ============================================================================

// MapStore is a mutex-guarded in-memory Store. Safe for concurrent
// use; never returns an error.
type MapStore[V any] struct {
	mu sync.RWMutex
	m  map[string]V
}

// NewMapStore returns an empty MapStore.
func NewMapStore[V any]() *MapStore[V] {
	return &MapStore[V]{m: make(map[string]V)}
}

// Put implements Store.
func (s *MapStore[V]) Put(_ context.Context, key string, value V) error {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.m[key] = value
	return nil
}

// Get implements Store.
func (s *MapStore[V]) Get(_ context.Context, key string) (option.Option[V], error) {
	s.mu.RLock()
	defer s.mu.RUnlock()
	v, ok := s.m[key]
	return option.When(ok, v), nil
}

// Delete implements Store.
func (s *MapStore[V]) Delete(_ context.Context, key string) error {
	s.mu.Lock()
	defer s.mu.Unlock()
	delete(s.m, key)
	return nil
}

// Len reports the number of stored keys.
func (s *MapStore[V]) Len() int {
	s.mu.RLock()
	defer s.mu.RUnlock()
	return len(s.m)
}

// Snapshot returns a copy of the current contents.
func (s *MapStore[V]) Snapshot() map[string]V {
	s.mu.RLock()
	defer s.mu.RUnlock()
	out := make(map[string]V, len(s.m))
	for k, v := range s.m {
		out[k] = v
	}
	return out
}

// ============================================================================
// Traced store
// ============================================================================

type tracedStore[V any] struct {
	inner Store[V]
	log   *zap.Logger
}

// Traced wraps a store so every operation is logged before it runs.
// This is the observable interpreter: run a program against
// Traced(NewMapStore[V](), logger) to watch it execute.
func Traced[V any](inner Store[V], log *zap.Logger) Store[V] {
	return &tracedStore[V]{inner: inner, log: log}
}

func (s *tracedStore[V]) Put(ctx context.Context, key string, value V) error {
	s.log.Info("put", zap.String("key", key), zap.Any("value", value))
	return s.inner.Put(ctx, key, value)
}

func (s *tracedStore[V]) Get(ctx context.Context, key string) (option.Option[V], error) {
	o, err := s.inner.Get(ctx, key)
	s.log.Info("get",
		zap.String("key", key),
		zap.Bool("found", o.IsSome()),
		zap.Error(err))
	return o, err
}

func (s *tracedStore[V]) Delete(ctx context.Context, key string) error {
	s.log.Info("delete", zap.String("key", key))
	return s.inner.Delete(ctx, key)
}

// ============================================================================
// Cached store
// ============================================================================

type cachedStore[V any] struct {
	inner Store[V]
	cache *lru.Cache
}

// Cached wraps a store with an LRU read-through cache of the given
// size. Gets served from the cache never reach the inner store; Puts
// refresh the cache, Deletes invalidate it. Only present values are
// cached, so a miss on an absent key is re-asked each time.
func Cached[V any](inner Store[V], size int) (Store[V], error) {
	cache, err := lru.New(size)
	if err != nil {
		return nil, err
	}
	return &cachedStore[V]{inner: inner, cache: cache}, nil
}

func (s *cachedStore[V]) Put(ctx context.Context, key string, value V) error {
	if err := s.inner.Put(ctx, key, value); err != nil {
		return err
	}
	s.cache.Add(key, value)
	return nil
}

func (s *cachedStore[V]) Get(ctx context.Context, key string) (option.Option[V], error) {
	if v, ok := s.cache.Get(key); ok {
		return option.Some(v.(V)), nil
	}
	o, err := s.inner.Get(ctx, key)
	if err != nil {
		return o, err
	}
	if v, ok := o.Unpack(); ok {
		s.cache.Add(key, v)
	}
	return o, nil
}

func (s *cachedStore[V]) Delete(ctx context.Context, key string) error {
	if err := s.inner.Delete(ctx, key); err != nil {
		return err
	}
	s.cache.Remove(key)
	return nil
}
