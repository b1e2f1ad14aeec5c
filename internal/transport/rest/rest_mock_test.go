package rest

import (
	"context"
	"sync"

	"github.com/google/uuid"

	"github.com/heartmarshall/moderation-backend/internal/domain"
	"github.com/heartmarshall/moderation-backend/internal/service/article"
	"github.com/heartmarshall/moderation-backend/internal/service/moderation"
)

var _ articleService = &articleServiceMock{}

type articleServiceMock struct {
	CreateArticleFunc  func(ctx context.Context, input article.CreateArticleInput) (*domain.Article, error)
	UpdateArticleFunc  func(ctx context.Context, input article.UpdateArticleInput) (*domain.Article, error)
	GetArticleFunc     func(ctx context.Context, id uuid.UUID) (*domain.Article, error)
	ListMyArticlesFunc func(ctx context.Context, input article.ListArticlesInput) ([]*domain.Article, error)
	ListSnapshotsFunc  func(ctx context.Context, articleID uuid.UUID, page domain.Page) ([]*domain.Snapshot, error)
	PendingQueueFunc   func(ctx context.Context, page domain.Page) ([]*domain.Snapshot, error)
	ListEventsFunc     func(ctx context.Context, input article.ListEventsInput) ([]*domain.Event, error)
	ListPublishedFunc  func(ctx context.Context, page domain.Page) ([]*domain.PublishedArticle, error)
	GetPublishedFunc   func(ctx context.Context, articleID uuid.UUID) (*domain.PublishedArticle, error)

	calls struct {
		CreateArticle []struct {
			Ctx   context.Context
			Input article.CreateArticleInput
		}
		UpdateArticle []struct {
			Ctx   context.Context
			Input article.UpdateArticleInput
		}
		GetArticle []struct {
			Ctx context.Context
			ID  uuid.UUID
		}
		ListMyArticles []struct {
			Ctx   context.Context
			Input article.ListArticlesInput
		}
		ListSnapshots []struct {
			Ctx       context.Context
			ArticleID uuid.UUID
			Page      domain.Page
		}
		PendingQueue []struct {
			Ctx  context.Context
			Page domain.Page
		}
		ListEvents []struct {
			Ctx   context.Context
			Input article.ListEventsInput
		}
		ListPublished []struct {
			Ctx  context.Context
			Page domain.Page
		}
		GetPublished []struct {
			Ctx       context.Context
			ArticleID uuid.UUID
		}
	}
	lockCreateArticle  sync.RWMutex
	lockUpdateArticle  sync.RWMutex
	lockGetArticle     sync.RWMutex
	lockListMyArticles sync.RWMutex
	lockListSnapshots  sync.RWMutex
	lockPendingQueue   sync.RWMutex
	lockListEvents     sync.RWMutex
	lockListPublished  sync.RWMutex
	lockGetPublished   sync.RWMutex
}

func (mock *articleServiceMock) CreateArticle(ctx context.Context, input article.CreateArticleInput) (*domain.Article, error) {
	if mock.CreateArticleFunc == nil {
		panic("articleServiceMock.CreateArticleFunc: method is nil but articleService.CreateArticle was just called")
	}
	callInfo := struct {
		Ctx   context.Context
		Input article.CreateArticleInput
	}{Ctx: ctx, Input: input}
	mock.lockCreateArticle.Lock()
	mock.calls.CreateArticle = append(mock.calls.CreateArticle, callInfo)
	mock.lockCreateArticle.Unlock()
	return mock.CreateArticleFunc(ctx, input)
}

func (mock *articleServiceMock) CreateArticleCalls() []struct {
	Ctx   context.Context
	Input article.CreateArticleInput
} {
	mock.lockCreateArticle.RLock()
	calls := mock.calls.CreateArticle
	mock.lockCreateArticle.RUnlock()
	return calls
}

func (mock *articleServiceMock) UpdateArticle(ctx context.Context, input article.UpdateArticleInput) (*domain.Article, error) {
	if mock.UpdateArticleFunc == nil {
		panic("articleServiceMock.UpdateArticleFunc: method is nil but articleService.UpdateArticle was just called")
	}
	callInfo := struct {
		Ctx   context.Context
		Input article.UpdateArticleInput
	}{Ctx: ctx, Input: input}
	mock.lockUpdateArticle.Lock()
	mock.calls.UpdateArticle = append(mock.calls.UpdateArticle, callInfo)
	mock.lockUpdateArticle.Unlock()
	return mock.UpdateArticleFunc(ctx, input)
}

func (mock *articleServiceMock) UpdateArticleCalls() []struct {
	Ctx   context.Context
	Input article.UpdateArticleInput
} {
	mock.lockUpdateArticle.RLock()
	calls := mock.calls.UpdateArticle
	mock.lockUpdateArticle.RUnlock()
	return calls
}

func (mock *articleServiceMock) GetArticle(ctx context.Context, id uuid.UUID) (*domain.Article, error) {
	if mock.GetArticleFunc == nil {
		panic("articleServiceMock.GetArticleFunc: method is nil but articleService.GetArticle was just called")
	}
	callInfo := struct {
		Ctx context.Context
		ID  uuid.UUID
	}{Ctx: ctx, ID: id}
	mock.lockGetArticle.Lock()
	mock.calls.GetArticle = append(mock.calls.GetArticle, callInfo)
	mock.lockGetArticle.Unlock()
	return mock.GetArticleFunc(ctx, id)
}

func (mock *articleServiceMock) GetArticleCalls() []struct {
	Ctx context.Context
	ID  uuid.UUID
} {
	mock.lockGetArticle.RLock()
	calls := mock.calls.GetArticle
	mock.lockGetArticle.RUnlock()
	return calls
}

func (mock *articleServiceMock) ListMyArticles(ctx context.Context, input article.ListArticlesInput) ([]*domain.Article, error) {
	if mock.ListMyArticlesFunc == nil {
		panic("articleServiceMock.ListMyArticlesFunc: method is nil but articleService.ListMyArticles was just called")
	}
	callInfo := struct {
		Ctx   context.Context
		Input article.ListArticlesInput
	}{Ctx: ctx, Input: input}
	mock.lockListMyArticles.Lock()
	mock.calls.ListMyArticles = append(mock.calls.ListMyArticles, callInfo)
	mock.lockListMyArticles.Unlock()
	return mock.ListMyArticlesFunc(ctx, input)
}

func (mock *articleServiceMock) ListMyArticlesCalls() []struct {
	Ctx   context.Context
	Input article.ListArticlesInput
} {
	mock.lockListMyArticles.RLock()
	calls := mock.calls.ListMyArticles
	mock.lockListMyArticles.RUnlock()
	return calls
}

func (mock *articleServiceMock) ListSnapshots(ctx context.Context, articleID uuid.UUID, page domain.Page) ([]*domain.Snapshot, error) {
	if mock.ListSnapshotsFunc == nil {
		panic("articleServiceMock.ListSnapshotsFunc: method is nil but articleService.ListSnapshots was just called")
	}
	callInfo := struct {
		Ctx       context.Context
		ArticleID uuid.UUID
		Page      domain.Page
	}{Ctx: ctx, ArticleID: articleID, Page: page}
	mock.lockListSnapshots.Lock()
	mock.calls.ListSnapshots = append(mock.calls.ListSnapshots, callInfo)
	mock.lockListSnapshots.Unlock()
	return mock.ListSnapshotsFunc(ctx, articleID, page)
}

func (mock *articleServiceMock) ListSnapshotsCalls() []struct {
	Ctx       context.Context
	ArticleID uuid.UUID
	Page      domain.Page
} {
	mock.lockListSnapshots.RLock()
	calls := mock.calls.ListSnapshots
	mock.lockListSnapshots.RUnlock()
	return calls
}

func (mock *articleServiceMock) PendingQueue(ctx context.Context, page domain.Page) ([]*domain.Snapshot, error) {
	if mock.PendingQueueFunc == nil {
		panic("articleServiceMock.PendingQueueFunc: method is nil but articleService.PendingQueue was just called")
	}
	callInfo := struct {
		Ctx  context.Context
		Page domain.Page
	}{Ctx: ctx, Page: page}
	mock.lockPendingQueue.Lock()
	mock.calls.PendingQueue = append(mock.calls.PendingQueue, callInfo)
	mock.lockPendingQueue.Unlock()
	return mock.PendingQueueFunc(ctx, page)
}

func (mock *articleServiceMock) PendingQueueCalls() []struct {
	Ctx  context.Context
	Page domain.Page
} {
	mock.lockPendingQueue.RLock()
	calls := mock.calls.PendingQueue
	mock.lockPendingQueue.RUnlock()
	return calls
}

func (mock *articleServiceMock) ListEvents(ctx context.Context, input article.ListEventsInput) ([]*domain.Event, error) {
	if mock.ListEventsFunc == nil {
		panic("articleServiceMock.ListEventsFunc: method is nil but articleService.ListEvents was just called")
	}
	callInfo := struct {
		Ctx   context.Context
		Input article.ListEventsInput
	}{Ctx: ctx, Input: input}
	mock.lockListEvents.Lock()
	mock.calls.ListEvents = append(mock.calls.ListEvents, callInfo)
	mock.lockListEvents.Unlock()
	return mock.ListEventsFunc(ctx, input)
}

func (mock *articleServiceMock) ListEventsCalls() []struct {
	Ctx   context.Context
	Input article.ListEventsInput
} {
	mock.lockListEvents.RLock()
	calls := mock.calls.ListEvents
	mock.lockListEvents.RUnlock()
	return calls
}

func (mock *articleServiceMock) ListPublished(ctx context.Context, page domain.Page) ([]*domain.PublishedArticle, error) {
	if mock.ListPublishedFunc == nil {
		panic("articleServiceMock.ListPublishedFunc: method is nil but articleService.ListPublished was just called")
	}
	callInfo := struct {
		Ctx  context.Context
		Page domain.Page
	}{Ctx: ctx, Page: page}
	mock.lockListPublished.Lock()
	mock.calls.ListPublished = append(mock.calls.ListPublished, callInfo)
	mock.lockListPublished.Unlock()
	return mock.ListPublishedFunc(ctx, page)
}

func (mock *articleServiceMock) ListPublishedCalls() []struct {
	Ctx  context.Context
	Page domain.Page
} {
	mock.lockListPublished.RLock()
	calls := mock.calls.ListPublished
	mock.lockListPublished.RUnlock()
	return calls
}

func (mock *articleServiceMock) GetPublished(ctx context.Context, articleID uuid.UUID) (*domain.PublishedArticle, error) {
	if mock.GetPublishedFunc == nil {
		panic("articleServiceMock.GetPublishedFunc: method is nil but articleService.GetPublished was just called")
	}
	callInfo := struct {
		Ctx       context.Context
		ArticleID uuid.UUID
	}{Ctx: ctx, ArticleID: articleID}
	mock.lockGetPublished.Lock()
	mock.calls.GetPublished = append(mock.calls.GetPublished, callInfo)
	mock.lockGetPublished.Unlock()
	return mock.GetPublishedFunc(ctx, articleID)
}

func (mock *articleServiceMock) GetPublishedCalls() []struct {
	Ctx       context.Context
	ArticleID uuid.UUID
} {
	mock.lockGetPublished.RLock()
	calls := mock.calls.GetPublished
	mock.lockGetPublished.RUnlock()
	return calls
}

var _ moderationService = &moderationServiceMock{}

type moderationServiceMock struct {
	ApplyFunc func(ctx context.Context, op domain.EventKind, input moderation.ActionInput) (*moderation.ActionResult, error)

	calls struct {
		Apply []struct {
			Ctx   context.Context
			Op    domain.EventKind
			Input moderation.ActionInput
		}
	}
	lockApply sync.RWMutex
}

func (mock *moderationServiceMock) Apply(ctx context.Context, op domain.EventKind, input moderation.ActionInput) (*moderation.ActionResult, error) {
	if mock.ApplyFunc == nil {
		panic("moderationServiceMock.ApplyFunc: method is nil but moderationService.Apply was just called")
	}
	callInfo := struct {
		Ctx   context.Context
		Op    domain.EventKind
		Input moderation.ActionInput
	}{Ctx: ctx, Op: op, Input: input}
	mock.lockApply.Lock()
	mock.calls.Apply = append(mock.calls.Apply, callInfo)
	mock.lockApply.Unlock()
	return mock.ApplyFunc(ctx, op, input)
}

func (mock *moderationServiceMock) ApplyCalls() []struct {
	Ctx   context.Context
	Op    domain.EventKind
	Input moderation.ActionInput
} {
	mock.lockApply.RLock()
	calls := mock.calls.Apply
	mock.lockApply.RUnlock()
	return calls
}

var _ purgeService = &purgeServiceMock{}

type purgeServiceMock struct {
	PurgeArticleFunc func(ctx context.Context, id uuid.UUID) error

	calls struct {
		PurgeArticle []struct {
			Ctx context.Context
			ID  uuid.UUID
		}
	}
	lockPurgeArticle sync.RWMutex
}

func (mock *purgeServiceMock) PurgeArticle(ctx context.Context, id uuid.UUID) error {
	if mock.PurgeArticleFunc == nil {
		panic("purgeServiceMock.PurgeArticleFunc: method is nil but purgeService.PurgeArticle was just called")
	}
	callInfo := struct {
		Ctx context.Context
		ID  uuid.UUID
	}{Ctx: ctx, ID: id}
	mock.lockPurgeArticle.Lock()
	mock.calls.PurgeArticle = append(mock.calls.PurgeArticle, callInfo)
	mock.lockPurgeArticle.Unlock()
	return mock.PurgeArticleFunc(ctx, id)
}

func (mock *purgeServiceMock) PurgeArticleCalls() []struct {
	Ctx context.Context
	ID  uuid.UUID
} {
	mock.lockPurgeArticle.RLock()
	calls := mock.calls.PurgeArticle
	mock.lockPurgeArticle.RUnlock()
	return calls
}

