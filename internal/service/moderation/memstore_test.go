package moderation

import (
	"context"
	"encoding/json"
	"fmt"
	"log/slog"
	"maps"
	"slices"
	"sync"
	"testing"
	"time"

	"github.com/google/uuid"

	"github.com/heartmarshall/moderation-backend/internal/domain"
)

// memStore is an in-memory article aggregate behind the repository mocks.
// Transactions are serialized, standing in for the article row lock, and
// a failed transaction restores the state it started from.
type memStore struct {
	txLock sync.Mutex

	mu        sync.Mutex
	articles  map[uuid.UUID]domain.Article
	snapshots []domain.Snapshot
	mirrors   map[uuid.UUID]domain.PublishedArticle
	events    []domain.Event

	// failEvent makes the next event insert fail.
	failEvent error
}

func newMemStore() *memStore {
	return &memStore{
		articles: map[uuid.UUID]domain.Article{},
		mirrors:  map[uuid.UUID]domain.PublishedArticle{},
	}
}

type memState struct {
	articles  map[uuid.UUID]domain.Article
	snapshots []domain.Snapshot
	mirrors   map[uuid.UUID]domain.PublishedArticle
	events    []domain.Event
}

func (m *memStore) save() memState {
	m.mu.Lock()
	defer m.mu.Unlock()
	return memState{
		articles:  maps.Clone(m.articles),
		snapshots: slices.Clone(m.snapshots),
		mirrors:   maps.Clone(m.mirrors),
		events:    slices.Clone(m.events),
	}
}

func (m *memStore) restore(s memState) {
	m.mu.Lock()
	defer m.mu.Unlock()
	m.articles, m.snapshots, m.mirrors, m.events = s.articles, s.snapshots, s.mirrors, s.events
}

func (m *memStore) txMock() *txManagerMock {
	return &txManagerMock{
		RunInTxFunc: func(ctx context.Context, fn func(context.Context) error) (err error) {
			m.txLock.Lock()
			defer m.txLock.Unlock()

			saved := m.save()
			defer func() {
				if r := recover(); r != nil {
					m.restore(saved)
					panic(r)
				}
			}()
			if err := fn(ctx); err != nil {
				m.restore(saved)
				return err
			}
			return nil
		},
	}
}

func (m *memStore) articleMock() *articleRepoMock {
	return &articleRepoMock{
		GetByIDForUpdateFunc: func(_ context.Context, id uuid.UUID) (*domain.Article, error) {
			m.mu.Lock()
			defer m.mu.Unlock()
			a, ok := m.articles[id]
			if !ok {
				return nil, fmt.Errorf("article %s: %w", id, domain.ErrNotFound)
			}
			return &a, nil
		},
		UpdateStatusFunc: func(_ context.Context, id uuid.UUID, change domain.ArticleStatusChange, now time.Time) error {
			m.mu.Lock()
			defer m.mu.Unlock()
			a, ok := m.articles[id]
			if !ok {
				return fmt.Errorf("article %s: %w", id, domain.ErrNotFound)
			}
			a.Status = change.Status
			if change.LastModerationAt != nil {
				a.LastModerationAt = change.LastModerationAt
			}
			if change.SoftDelete {
				a.IsDeleted = true
			}
			if a.IsDeleted != (a.Status == domain.ArticleStatusDeleted) {
				return fmt.Errorf("article %s: soft-delete flag out of sync: %w", id, domain.ErrValidation)
			}
			a.UpdatedAt = now
			m.articles[id] = a
			return nil
		},
	}
}

func (m *memStore) snapshotMock() *snapshotRepoMock {
	return &snapshotRepoMock{
		LatestFunc: func(_ context.Context, articleID uuid.UUID) (*domain.Snapshot, error) {
			m.mu.Lock()
			defer m.mu.Unlock()
			var latest *domain.Snapshot
			for i := range m.snapshots {
				s := m.snapshots[i]
				if s.ArticleID != articleID {
					continue
				}
				if latest == nil || !s.CreatedAt.Before(latest.CreatedAt) {
					latest = &s
				}
			}
			return latest, nil
		},
		CreateFunc: func(_ context.Context, s domain.Snapshot) (*domain.Snapshot, error) {
			m.mu.Lock()
			defer m.mu.Unlock()
			m.snapshots = append(m.snapshots, s)
			return &s, nil
		},
		ResolveFunc: func(_ context.Context, id uuid.UUID, status domain.SnapshotStatus) error {
			m.mu.Lock()
			defer m.mu.Unlock()
			for i := range m.snapshots {
				if m.snapshots[i].ID != id {
					continue
				}
				if m.snapshots[i].Status != domain.SnapshotStatusPending {
					return fmt.Errorf("snapshot %s: already resolved: %w", id, domain.ErrConflict)
				}
				m.snapshots[i].Status = status
				return nil
			}
			return fmt.Errorf("snapshot %s: %w", id, domain.ErrNotFound)
		},
	}
}

func (m *memStore) publishedMock() *publishedRepoMock {
	return &publishedRepoMock{
		UpsertFunc: func(_ context.Context, p domain.PublishedArticle) (*domain.PublishedArticle, error) {
			m.mu.Lock()
			defer m.mu.Unlock()
			if cur, ok := m.mirrors[p.ArticleID]; ok {
				cur.Title, cur.Content, cur.UpdatedAt = p.Title, p.Content, p.UpdatedAt
				p = cur
			}
			m.mirrors[p.ArticleID] = p
			return &p, nil
		},
		DeleteByArticleIDFunc: func(_ context.Context, articleID uuid.UUID) (bool, error) {
			m.mu.Lock()
			defer m.mu.Unlock()
			_, ok := m.mirrors[articleID]
			delete(m.mirrors, articleID)
			return ok, nil
		},
	}
}

func (m *memStore) eventMock() *eventRepoMock {
	return &eventRepoMock{
		CreateFunc: func(_ context.Context, ev domain.Event) (*domain.Event, error) {
			m.mu.Lock()
			defer m.mu.Unlock()
			if m.failEvent != nil {
				err := m.failEvent
				m.failEvent = nil
				return nil, err
			}
			m.events = append(m.events, ev)
			return &ev, nil
		},
	}
}

// ---------------------------------------------------------------------------
// Fixtures and accessors
// ---------------------------------------------------------------------------

// addArticle stores a draft article owned by author and returns its id.
func (m *memStore) addArticle(author uuid.UUID, title, content string, now time.Time) uuid.UUID {
	m.mu.Lock()
	defer m.mu.Unlock()
	a := domain.Article{
		ID:        uuid.New(),
		AuthorID:  &author,
		Title:     title,
		Content:   json.RawMessage(content),
		Status:    domain.ArticleStatusDraft,
		CreatedAt: now,
		UpdatedAt: now,
	}
	m.articles[a.ID] = a
	return a.ID
}

// setStatus forces a status, bypassing the state machine.
func (m *memStore) setStatus(id uuid.UUID, s domain.ArticleStatus) {
	m.mu.Lock()
	defer m.mu.Unlock()
	a := m.articles[id]
	a.Status = s
	a.IsDeleted = s == domain.ArticleStatusDeleted
	m.articles[id] = a
}

// addSnapshot stores a pending snapshot of the article's current content.
func (m *memStore) addSnapshot(t *testing.T, id uuid.UUID, at time.Time) domain.Snapshot {
	t.Helper()
	m.mu.Lock()
	defer m.mu.Unlock()
	a := m.articles[id]
	hash, err := a.Fingerprint()
	if err != nil {
		t.Fatalf("fingerprint: %v", err)
	}
	s := domain.NewSnapshot(&a, hash, at)
	m.snapshots = append(m.snapshots, s)
	return s
}

// edit changes the article's content the way a direct edit would.
func (m *memStore) edit(id uuid.UUID, content string) {
	m.mu.Lock()
	defer m.mu.Unlock()
	a := m.articles[id]
	a.Content = json.RawMessage(content)
	m.articles[id] = a
}

func (m *memStore) editTitle(id uuid.UUID, title string) {
	m.mu.Lock()
	defer m.mu.Unlock()
	a := m.articles[id]
	a.Title = title
	m.articles[id] = a
}

func (m *memStore) article(id uuid.UUID) domain.Article {
	m.mu.Lock()
	defer m.mu.Unlock()
	return m.articles[id]
}

func (m *memStore) mirror(id uuid.UUID) (domain.PublishedArticle, bool) {
	m.mu.Lock()
	defer m.mu.Unlock()
	p, ok := m.mirrors[id]
	return p, ok
}

func (m *memStore) snapshotsOf(id uuid.UUID) []domain.Snapshot {
	m.mu.Lock()
	defer m.mu.Unlock()
	var out []domain.Snapshot
	for _, s := range m.snapshots {
		if s.ArticleID == id {
			out = append(out, s)
		}
	}
	return out
}

func (m *memStore) eventsOf(id uuid.UUID) []domain.Event {
	m.mu.Lock()
	defer m.mu.Unlock()
	var out []domain.Event
	for _, ev := range m.events {
		if ev.ArticleID == id {
			out = append(out, ev)
		}
	}
	return out
}

// fakeClock is a settable wall clock.
type fakeClock struct {
	mu  sync.Mutex
	now time.Time
}

func newFakeClock() *fakeClock {
	return &fakeClock{now: time.Date(2026, 3, 1, 9, 0, 0, 0, time.UTC)}
}

func (c *fakeClock) Now() time.Time {
	c.mu.Lock()
	defer c.mu.Unlock()
	return c.now
}

func (c *fakeClock) Advance(d time.Duration) {
	c.mu.Lock()
	defer c.mu.Unlock()
	c.now = c.now.Add(d)
}

// newStoreService wires a Service to the in-memory store.
func newStoreService(store *memStore, clock *fakeClock, opts ...Option) *Service {
	opts = append([]Option{WithClock(clock.Now)}, opts...)
	return NewService(
		slog.New(slog.DiscardHandler),
		store.articleMock(),
		store.snapshotMock(),
		store.publishedMock(),
		store.eventMock(),
		store.txMock(),
		opts...,
	)
}
