// Package cachedstore puts a time-limited snapshot cache in front of a
// RecordStore. Every write goes straight to the wrapped store and drops the
// cached snapshot, so the next load after a mutation always reads through.
//
// Invalidation also bumps a generation counter. A load remembers the
// generation it started under and only caches its table when no write
// invalidated in the meantime, so a slow reader cannot put a pre-write table
// back after the writer dropped it.
package cachedstore

import (
	"context"
	"log/slog"
	"time"

	"orderdesk/internal/core/ports"
)

// DefaultTTL is how long a loaded table is served from the cache.
const DefaultTTL = 60 * time.Second

// SnapshotCache holds at most one loaded table.
type SnapshotCache interface {
	// Get returns the cached table, if any.
	Get(ctx context.Context) (ports.Table, bool, error)

	// Generation returns the current invalidation generation.
	Generation(ctx context.Context) (uint64, error)

	// Put stores table only while the generation still equals generation.
	// It reports whether the table was stored.
	Put(ctx context.Context, table ports.Table, ttl time.Duration, generation uint64) (bool, error)

	// Invalidate drops the table and advances the generation.
	Invalidate(ctx context.Context) error
}

// RecordStore decorates a RecordStore with a SnapshotCache. Cache failures
// are logged and the wrapped store is used instead.
type RecordStore struct {
	next   ports.RecordStore
	cache  SnapshotCache
	ttl    time.Duration
	logger *slog.Logger
}

// NewRecordStore wraps next. A ttl of zero or less means DefaultTTL.
func NewRecordStore(next ports.RecordStore, cache SnapshotCache, ttl time.Duration, logger *slog.Logger) *RecordStore {
	if ttl <= 0 {
		ttl = DefaultTTL
	}
	return &RecordStore{
		next:   next,
		cache:  cache,
		ttl:    ttl,
		logger: logger.With("component", "record_cache"),
	}
}

// LoadAll serves the cached table or reads through to the wrapped store.
func (s *RecordStore) LoadAll(ctx context.Context) (ports.Table, error) {
	table, ok, err := s.cache.Get(ctx)
	if err != nil {
		s.logger.WarnContext(ctx, "cache read failed", "error", err)
	}
	if ok {
		return table, nil
	}

	generation, genErr := s.cache.Generation(ctx)
	if genErr != nil {
		s.logger.WarnContext(ctx, "cache generation read failed", "error", genErr)
	}

	table, err = s.next.LoadAll(ctx)
	if err != nil {
		return ports.Table{}, err
	}
	if genErr != nil {
		return table, nil
	}

	stored, err := s.cache.Put(ctx, table, s.ttl, generation)
	if err != nil {
		s.logger.WarnContext(ctx, "cache write failed", "error", err)
	} else if !stored {
		s.logger.DebugContext(ctx, "snapshot not cached, a write invalidated it during the load")
	}
	return table, nil
}

// UpdateField writes through and drops the snapshot, even when the write fails.
func (s *RecordStore) UpdateField(ctx context.Context, handle ports.SourceHandle, update ports.FieldUpdate) error {
	defer s.invalidate(ctx)
	return s.next.UpdateField(ctx, handle, update)
}

// BatchUpdateFields writes through and drops the snapshot.
func (s *RecordStore) BatchUpdateFields(ctx context.Context, handle ports.SourceHandle, updates []ports.FieldUpdate) error {
	defer s.invalidate(ctx)
	return s.next.BatchUpdateFields(ctx, handle, updates)
}

// AppendRow writes through and drops the snapshot.
func (s *RecordStore) AppendRow(ctx context.Context, handle ports.SourceHandle, values []string) error {
	defer s.invalidate(ctx)
	return s.next.AppendRow(ctx, handle, values)
}

// Invalidate drops the cached snapshot.
func (s *RecordStore) Invalidate(ctx context.Context) {
	s.invalidate(ctx)
}

func (s *RecordStore) invalidate(ctx context.Context) {
	if err := s.cache.Invalidate(ctx); err != nil {
		s.logger.WarnContext(ctx, "cache invalidation failed", "error", err)
	}
}
