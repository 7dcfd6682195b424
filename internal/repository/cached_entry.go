package repository

import (
	"context"

	"github.com/abhishek622/entrystore/pkg/model"
	"go.uber.org/zap"
)

// ListCache is the subset of cache.EntryListCache the decorator needs.
type ListCache interface {
	Get(ctx context.Context) (gen int64, entries []model.Entry, ok bool, err error)
	Set(ctx context.Context, gen int64, entries []model.Entry) error
	Invalidate(ctx context.Context) error
	Ping(ctx context.Context) error
}

// CachedEntryRepository reads the entry list through a cache and bumps the
// cache generation after every successful mutation. A snapshot is stored
// under the generation read before the store was queried, so a mutation that
// lands while the snapshot is being taken leaves it unreachable. Cache
// failures are logged and never returned; the wrapped store stays the source
// of truth.
type CachedEntryRepository struct {
	next   EntryStore
	cache  ListCache
	logger *zap.Logger
}

func NewCachedEntryRepository(next EntryStore, cache ListCache, logger *zap.Logger) *CachedEntryRepository {
	return &CachedEntryRepository{next: next, cache: cache, logger: logger}
}

func (r *CachedEntryRepository) List(ctx context.Context) ([]model.Entry, error) {
	gen, entries, ok, err := r.cache.Get(ctx)
	if err != nil {
		r.logger.Warn("entry_cache: get failed", zap.Error(err))
	}
	if ok {
		return entries, nil
	}
	cacheable := err == nil

	entries, err = r.next.List(ctx)
	if err != nil {
		return nil, err
	}
	if !cacheable {
		return entries, nil
	}
	if err := r.cache.Set(ctx, gen, entries); err != nil {
		r.logger.Warn("entry_cache: set failed", zap.Error(err))
	}
	return entries, nil
}

func (r *CachedEntryRepository) Create(ctx context.Context, title, content string) (model.Entry, error) {
	e, err := r.next.Create(ctx, title, content)
	if err != nil {
		return model.Entry{}, err
	}
	r.invalidate(ctx)
	return e, nil
}

func (r *CachedEntryRepository) Delete(ctx context.Context, id string) (int64, error) {
	n, err := r.next.Delete(ctx, id)
	if err != nil {
		return 0, err
	}
	if n > 0 {
		r.invalidate(ctx)
	}
	return n, nil
}

// Ping checks the store first; an unreachable cache degrades but does not
// fail the service.
func (r *CachedEntryRepository) Ping(ctx context.Context) error {
	if err := r.next.Ping(ctx); err != nil {
		return err
	}
	if err := r.cache.Ping(ctx); err != nil {
		r.logger.Warn("entry_cache: ping failed", zap.Error(err))
	}
	return nil
}

func (r *CachedEntryRepository) invalidate(ctx context.Context) {
	if err := r.cache.Invalidate(ctx); err != nil {
		r.logger.Warn("entry_cache: invalidate failed", zap.Error(err))
	}
}
