package catalog

import (
	"context"
	"fmt"
	"sync"
	"time"

	"pricebook-be/internal/pkg/apperr"
	"pricebook-be/internal/pkg/logger"

	"golang.org/x/sync/singleflight"
)

// TableReader reads the legacy pricing table. Implementations own their own
// I/O timeouts.
type TableReader interface {
	Read(ctx context.Context, source string) ([]Record, []string, error)
}

// SourceProvider resolves the current location of the pricing table,
// normally backed by the settings store.
type SourceProvider interface {
	SourcePath(ctx context.Context) (string, error)
}

type SourceProviderFunc func(ctx context.Context) (string, error)

func (f SourceProviderFunc) SourcePath(ctx context.Context) (string, error) {
	return f(ctx)
}

const refreshKey = "catalog-refresh"

// Manager owns the shared catalog snapshot. Refreshes are single-flight:
// concurrent callers during a reload share one read against the source.
// When a refresh fails, the last known-good snapshot keeps being served.
type Manager struct {
	reader    TableReader
	source    SourceProvider
	log       logger.ILogger
	ttl       time.Duration
	staleWait time.Duration
	now       func() time.Time

	flight singleflight.Group

	mu    sync.RWMutex
	snap  *Snapshot
	fresh bool
	gen   uint64 // bumped by Invalidate, guards refreshes started before it
}

type Option func(*Manager)

func WithTTL(ttl time.Duration) Option {
	return func(m *Manager) { m.ttl = ttl }
}

// WithStaleWait bounds how long a caller that already holds a usable stale
// snapshot waits for an in-flight refresh before serving the stale one.
func WithStaleWait(d time.Duration) Option {
	return func(m *Manager) { m.staleWait = d }
}

// WithClock injects the time source, used by tests.
func WithClock(now func() time.Time) Option {
	return func(m *Manager) { m.now = now }
}

func NewManager(reader TableReader, source SourceProvider, log logger.ILogger, opts ...Option) *Manager {
	m := &Manager{
		reader:    reader,
		source:    source,
		log:       log,
		ttl:       5 * time.Minute,
		staleWait: 2 * time.Second,
		now:       time.Now,
	}
	for _, opt := range opts {
		opt(m)
	}
	return m
}

// Snapshot returns a usable snapshot, refreshing when none exists or the
// current one went stale. It never returns nil and never surfaces a source
// read failure: the fallback is the previous snapshot, then an empty one.
func (m *Manager) Snapshot(ctx context.Context) *Snapshot {
	snap, ok := m.current()
	if ok {
		return snap
	}

	ch := m.flight.DoChan(refreshKey, m.refresh)

	if snap != nil {
		// A usable fallback exists, wait for the refresh only briefly.
		timer := time.NewTimer(m.staleWait)
		defer timer.Stop()
		select {
		case res := <-ch:
			if res.Err != nil {
				return snap
			}
			return res.Val.(*Snapshot)
		case <-timer.C:
			return snap
		case <-ctx.Done():
			return snap
		}
	}

	select {
	case res := <-ch:
		if res.Err != nil {
			return NewSnapshot(nil, nil, m.now())
		}
		return res.Val.(*Snapshot)
	case <-ctx.Done():
		return NewSnapshot(nil, nil, m.now())
	}
}

// Invalidate marks the current snapshot as no longer fresh. It stays around
// as the stale fallback until a refresh succeeds.
func (m *Manager) Invalidate() {
	m.mu.Lock()
	m.fresh = false
	m.gen++
	m.mu.Unlock()
}

func (m *Manager) current() (*Snapshot, bool) {
	m.mu.RLock()
	defer m.mu.RUnlock()
	if m.snap == nil {
		return nil, false
	}
	if m.fresh && m.now().Sub(m.snap.LoadedAt()) < m.ttl {
		return m.snap, true
	}
	return m.snap, false
}

func (m *Manager) refresh() (interface{}, error) {
	// Detached from the triggering request: the result is shared by every
	// waiter, the first caller's cancellation must not abort it.
	ctx := context.Background()

	m.mu.RLock()
	startGen := m.gen
	m.mu.RUnlock()

	path, err := m.source.SourcePath(ctx)
	if err != nil {
		m.log.Error("catalog", "failed to resolve source location", map[string]interface{}{
			"error": err.Error(),
		})
		return nil, err
	}

	records, fields, err := m.reader.Read(ctx, path)
	if err != nil {
		m.log.Error("catalog", "source read failed", map[string]interface{}{
			"source": path,
			"error":  err.Error(),
		})
		return nil, fmt.Errorf("%w: %v", apperr.ErrSourceRead, err)
	}

	snap := NewSnapshot(records, fields, m.now())

	m.mu.Lock()
	m.snap = snap
	// An Invalidate that landed while this refresh was in flight may have
	// raced a source change, the snapshot stays usable but not fresh.
	m.fresh = m.gen == startGen
	m.mu.Unlock()

	m.log.Info("catalog", "snapshot refreshed", map[string]interface{}{
		"source":  path,
		"records": snap.Len(),
	})

	return snap, nil
}
