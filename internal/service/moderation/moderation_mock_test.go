package moderation

import (
	"context"
	"sync"
	"time"

	"github.com/google/uuid"

	"github.com/heartmarshall/moderation-backend/internal/domain"
)

var _ articleRepo = &articleRepoMock{}

type articleRepoMock struct {
	GetByIDForUpdateFunc func(ctx context.Context, id uuid.UUID) (*domain.Article, error)
	UpdateStatusFunc     func(ctx context.Context, id uuid.UUID, change domain.ArticleStatusChange, now time.Time) error

	calls struct {
		GetByIDForUpdate []struct {
			Ctx context.Context
			ID  uuid.UUID
		}
		UpdateStatus []struct {
			Ctx    context.Context
			ID     uuid.UUID
			Change domain.ArticleStatusChange
			Now    time.Time
		}
	}
	lockGetByIDForUpdate sync.RWMutex
	lockUpdateStatus     sync.RWMutex
}

func (mock *articleRepoMock) GetByIDForUpdate(ctx context.Context, id uuid.UUID) (*domain.Article, error) {
	if mock.GetByIDForUpdateFunc == nil {
		panic("articleRepoMock.GetByIDForUpdateFunc: method is nil but articleRepo.GetByIDForUpdate was just called")
	}
	callInfo := struct {
		Ctx context.Context
		ID  uuid.UUID
	}{Ctx: ctx, ID: id}
	mock.lockGetByIDForUpdate.Lock()
	mock.calls.GetByIDForUpdate = append(mock.calls.GetByIDForUpdate, callInfo)
	mock.lockGetByIDForUpdate.Unlock()
	return mock.GetByIDForUpdateFunc(ctx, id)
}

func (mock *articleRepoMock) GetByIDForUpdateCalls() []struct {
	Ctx context.Context
	ID  uuid.UUID
} {
	mock.lockGetByIDForUpdate.RLock()
	calls := mock.calls.GetByIDForUpdate
	mock.lockGetByIDForUpdate.RUnlock()
	return calls
}

func (mock *articleRepoMock) UpdateStatus(ctx context.Context, id uuid.UUID, change domain.ArticleStatusChange, now time.Time) error {
	if mock.UpdateStatusFunc == nil {
		panic("articleRepoMock.UpdateStatusFunc: method is nil but articleRepo.UpdateStatus was just called")
	}
	callInfo := struct {
		Ctx    context.Context
		ID     uuid.UUID
		Change domain.ArticleStatusChange
		Now    time.Time
	}{Ctx: ctx, ID: id, Change: change, Now: now}
	mock.lockUpdateStatus.Lock()
	mock.calls.UpdateStatus = append(mock.calls.UpdateStatus, callInfo)
	mock.lockUpdateStatus.Unlock()
	return mock.UpdateStatusFunc(ctx, id, change, now)
}

func (mock *articleRepoMock) UpdateStatusCalls() []struct {
	Ctx    context.Context
	ID     uuid.UUID
	Change domain.ArticleStatusChange
	Now    time.Time
} {
	mock.lockUpdateStatus.RLock()
	calls := mock.calls.UpdateStatus
	mock.lockUpdateStatus.RUnlock()
	return calls
}

var _ snapshotRepo = &snapshotRepoMock{}

type snapshotRepoMock struct {
	LatestFunc  func(ctx context.Context, articleID uuid.UUID) (*domain.Snapshot, error)
	CreateFunc  func(ctx context.Context, s domain.Snapshot) (*domain.Snapshot, error)
	ResolveFunc func(ctx context.Context, id uuid.UUID, status domain.SnapshotStatus) error

	calls struct {
		Latest []struct {
			Ctx       context.Context
			ArticleID uuid.UUID
		}
		Create []struct {
			Ctx context.Context
			S   domain.Snapshot
		}
		Resolve []struct {
			Ctx    context.Context
			ID     uuid.UUID
			Status domain.SnapshotStatus
		}
	}
	lockLatest  sync.RWMutex
	lockCreate  sync.RWMutex
	lockResolve sync.RWMutex
}

func (mock *snapshotRepoMock) Latest(ctx context.Context, articleID uuid.UUID) (*domain.Snapshot, error) {
	if mock.LatestFunc == nil {
		panic("snapshotRepoMock.LatestFunc: method is nil but snapshotRepo.Latest was just called")
	}
	callInfo := struct {
		Ctx       context.Context
		ArticleID uuid.UUID
	}{Ctx: ctx, ArticleID: articleID}
	mock.lockLatest.Lock()
	mock.calls.Latest = append(mock.calls.Latest, callInfo)
	mock.lockLatest.Unlock()
	return mock.LatestFunc(ctx, articleID)
}

func (mock *snapshotRepoMock) LatestCalls() []struct {
	Ctx       context.Context
	ArticleID uuid.UUID
} {
	mock.lockLatest.RLock()
	calls := mock.calls.Latest
	mock.lockLatest.RUnlock()
	return calls
}

func (mock *snapshotRepoMock) Create(ctx context.Context, s domain.Snapshot) (*domain.Snapshot, error) {
	if mock.CreateFunc == nil {
		panic("snapshotRepoMock.CreateFunc: method is nil but snapshotRepo.Create was just called")
	}
	callInfo := struct {
		Ctx context.Context
		S   domain.Snapshot
	}{Ctx: ctx, S: s}
	mock.lockCreate.Lock()
	mock.calls.Create = append(mock.calls.Create, callInfo)
	mock.lockCreate.Unlock()
	return mock.CreateFunc(ctx, s)
}

func (mock *snapshotRepoMock) CreateCalls() []struct {
	Ctx context.Context
	S   domain.Snapshot
} {
	mock.lockCreate.RLock()
	calls := mock.calls.Create
	mock.lockCreate.RUnlock()
	return calls
}

func (mock *snapshotRepoMock) Resolve(ctx context.Context, id uuid.UUID, status domain.SnapshotStatus) error {
	if mock.ResolveFunc == nil {
		panic("snapshotRepoMock.ResolveFunc: method is nil but snapshotRepo.Resolve was just called")
	}
	callInfo := struct {
		Ctx    context.Context
		ID     uuid.UUID
		Status domain.SnapshotStatus
	}{Ctx: ctx, ID: id, Status: status}
	mock.lockResolve.Lock()
	mock.calls.Resolve = append(mock.calls.Resolve, callInfo)
	mock.lockResolve.Unlock()
	return mock.ResolveFunc(ctx, id, status)
}

func (mock *snapshotRepoMock) ResolveCalls() []struct {
	Ctx    context.Context
	ID     uuid.UUID
	Status domain.SnapshotStatus
} {
	mock.lockResolve.RLock()
	calls := mock.calls.Resolve
	mock.lockResolve.RUnlock()
	return calls
}

var _ publishedRepo = &publishedRepoMock{}

type publishedRepoMock struct {
	UpsertFunc            func(ctx context.Context, p domain.PublishedArticle) (*domain.PublishedArticle, error)
	DeleteByArticleIDFunc func(ctx context.Context, articleID uuid.UUID) (bool, error)

	calls struct {
		Upsert []struct {
			Ctx context.Context
			P   domain.PublishedArticle
		}
		DeleteByArticleID []struct {
			Ctx       context.Context
			ArticleID uuid.UUID
		}
	}
	lockUpsert            sync.RWMutex
	lockDeleteByArticleID sync.RWMutex
}

func (mock *publishedRepoMock) Upsert(ctx context.Context, p domain.PublishedArticle) (*domain.PublishedArticle, error) {
	if mock.UpsertFunc == nil {
		panic("publishedRepoMock.UpsertFunc: method is nil but publishedRepo.Upsert was just called")
	}
	callInfo := struct {
		Ctx context.Context
		P   domain.PublishedArticle
	}{Ctx: ctx, P: p}
	mock.lockUpsert.Lock()
	mock.calls.Upsert = append(mock.calls.Upsert, callInfo)
	mock.lockUpsert.Unlock()
	return mock.UpsertFunc(ctx, p)
}

func (mock *publishedRepoMock) UpsertCalls() []struct {
	Ctx context.Context
	P   domain.PublishedArticle
} {
	mock.lockUpsert.RLock()
	calls := mock.calls.Upsert
	mock.lockUpsert.RUnlock()
	return calls
}

func (mock *publishedRepoMock) DeleteByArticleID(ctx context.Context, articleID uuid.UUID) (bool, error) {
	if mock.DeleteByArticleIDFunc == nil {
		panic("publishedRepoMock.DeleteByArticleIDFunc: method is nil but publishedRepo.DeleteByArticleID was just called")
	}
	callInfo := struct {
		Ctx       context.Context
		ArticleID uuid.UUID
	}{Ctx: ctx, ArticleID: articleID}
	mock.lockDeleteByArticleID.Lock()
	mock.calls.DeleteByArticleID = append(mock.calls.DeleteByArticleID, callInfo)
	mock.lockDeleteByArticleID.Unlock()
	return mock.DeleteByArticleIDFunc(ctx, articleID)
}

func (mock *publishedRepoMock) DeleteByArticleIDCalls() []struct {
	Ctx       context.Context
	ArticleID uuid.UUID
} {
	mock.lockDeleteByArticleID.RLock()
	calls := mock.calls.DeleteByArticleID
	mock.lockDeleteByArticleID.RUnlock()
	return calls
}

var _ eventRepo = &eventRepoMock{}

type eventRepoMock struct {
	CreateFunc func(ctx context.Context, ev domain.Event) (*domain.Event, error)

	calls struct {
		Create []struct {
			Ctx context.Context
			Ev  domain.Event
		}
	}
	lockCreate sync.RWMutex
}

func (mock *eventRepoMock) Create(ctx context.Context, ev domain.Event) (*domain.Event, error) {
	if mock.CreateFunc == nil {
		panic("eventRepoMock.CreateFunc: method is nil but eventRepo.Create was just called")
	}
	callInfo := struct {
		Ctx context.Context
		Ev  domain.Event
	}{Ctx: ctx, Ev: ev}
	mock.lockCreate.Lock()
	mock.calls.Create = append(mock.calls.Create, callInfo)
	mock.lockCreate.Unlock()
	return mock.CreateFunc(ctx, ev)
}

func (mock *eventRepoMock) CreateCalls() []struct {
	Ctx context.Context
	Ev  domain.Event
} {
	mock.lockCreate.RLock()
	calls := mock.calls.Create
	mock.lockCreate.RUnlock()
	return calls
}

var _ txManager = &txManagerMock{}

type txManagerMock struct {
	RunInTxFunc func(ctx context.Context, fn func(ctx context.Context) error) error

	calls struct {
		RunInTx []struct {
			Ctx context.Context
			Fn  func(ctx context.Context) error
		}
	}
	lockRunInTx sync.RWMutex
}

func (mock *txManagerMock) RunInTx(ctx context.Context, fn func(ctx context.Context) error) error {
	if mock.RunInTxFunc == nil {
		panic("txManagerMock.RunInTxFunc: method is nil but txManager.RunInTx was just called")
	}
	callInfo := struct {
		Ctx context.Context
		Fn  func(ctx context.Context) error
	}{Ctx: ctx, Fn: fn}
	mock.lockRunInTx.Lock()
	mock.calls.RunInTx = append(mock.calls.RunInTx, callInfo)
	mock.lockRunInTx.Unlock()
	return mock.RunInTxFunc(ctx, fn)
}

func (mock *txManagerMock) RunInTxCalls() []struct {
	Ctx context.Context
	Fn  func(ctx context.Context) error
} {
	mock.lockRunInTx.RLock()
	calls := mock.calls.RunInTx
	mock.lockRunInTx.RUnlock()
	return calls
}

