package moderation

import (
	"context"
	"fmt"
	"log/slog"

	"github.com/google/uuid"

	"github.com/heartmarshall/moderation-backend/internal/domain"
	"github.com/heartmarshall/moderation-backend/pkg/ctxutil"
)

// actor is the authenticated caller of an operation.
type actor struct {
	id        uuid.UUID
	moderator bool
}

func actorFromCtx(ctx context.Context) (actor, error) {
	id, ok := ctxutil.UserIDFromCtx(ctx)
	if !ok {
		return actor{}, domain.ErrUnauthorized
	}
	return actor{id: id, moderator: ctxutil.IsModeratorCtx(ctx)}, nil
}

// authorize checks the caller against the locked article.
// Approve and reject are moderator decisions; the other operations are
// also open to the article's author.
func authorize(op domain.EventKind, a *domain.Article, who actor) error {
	if who.moderator {
		return nil
	}
	switch op {
	case domain.EventKindApprove, domain.EventKindReject:
		return fmt.Errorf("%s requires moderator: %w", op.Label(), domain.ErrForbidden)
	}
	if !a.IsAuthoredBy(who.id) {
		return fmt.Errorf("%s article %s: not the author: %w", op.Label(), a.ID, domain.ErrForbidden)
	}
	return nil
}

// apply runs op on the article inside one transaction. The article row is
// locked before its status is read, every precondition is checked before
// the first write, and exactly one event is appended on success.
func (s *Service) apply(ctx context.Context, op domain.EventKind, input ActionInput) (*ActionResult, error) {
	who, err := actorFromCtx(ctx)
	if err != nil {
		return nil, err
	}

	if err := input.Validate(s.annotationMaxLen); err != nil {
		return nil, err
	}

	var result *ActionResult
	err = s.tx.RunInTx(ctx, func(txCtx context.Context) error {
		a, err := s.articles.GetByIDForUpdate(txCtx, input.ArticleID)
		if err != nil {
			return fmt.Errorf("lock article: %w", err)
		}

		if err := authorize(op, a, who); err != nil {
			return err
		}

		tr, err := domain.Plan(a.Status, op)
		if err != nil {
			return err
		}

		now := s.now()

		latest, err := s.snapshots.Latest(txCtx, a.ID)
		if err != nil {
			return fmt.Errorf("latest snapshot: %w", err)
		}
		if tr.RequireSnapshot && latest == nil {
			return fmt.Errorf("%s article %s: %w", op.Label(), a.ID, domain.ErrMissingSnapshot)
		}

		if tr.CheckCooldown {
			if remaining := domain.CooldownRemaining(a.LastModerationAt, now, s.cooldown); remaining > 0 {
				return &domain.CooldownError{Remaining: remaining}
			}
		}

		var hash string
		if tr.CheckFingerprint || tr.CreateSnapshot {
			hash, err = a.Fingerprint()
			if err != nil {
				return fmt.Errorf("fingerprint article: %w", err)
			}
		}
		if tr.CheckFingerprint && latest != nil && latest.ContentHash == hash {
			return fmt.Errorf("submit article %s: %w", a.ID, domain.ErrNoChange)
		}

		// Preconditions hold; mutations follow.

		snap := latest
		if tr.CreateSnapshot {
			snap, err = s.snapshots.Create(txCtx, domain.NewSnapshot(a, hash, now))
			if err != nil {
				return fmt.Errorf("create snapshot: %w", err)
			}
		}

		if tr.ResolveSnapshot != "" {
			if err := s.snapshots.Resolve(txCtx, snap.ID, tr.ResolveSnapshot); err != nil {
				return fmt.Errorf("resolve snapshot: %w", err)
			}
			snap.Status = tr.ResolveSnapshot
		}

		if tr.UpsertMirror {
			if _, err := s.published.Upsert(txCtx, domain.MirrorOf(*snap, now)); err != nil {
				return fmt.Errorf("upsert published mirror: %w", err)
			}
		}

		if tr.DeleteMirror {
			if _, err := s.published.DeleteByArticleID(txCtx, a.ID); err != nil {
				return fmt.Errorf("delete published mirror: %w", err)
			}
		}

		change := domain.ArticleStatusChange{Status: tr.To, SoftDelete: tr.SoftDelete}
		if tr.StampModeration {
			change.LastModerationAt = &now
		}
		if err := s.articles.UpdateStatus(txCtx, a.ID, change, now); err != nil {
			return fmt.Errorf("update article status: %w", err)
		}

		var snapshotID *uuid.UUID
		if snap != nil {
			snapshotID = &snap.ID
		}
		ev, err := s.events.Create(txCtx, domain.NewEvent(op, a.ID, snapshotID, who.id, input.annotation(), now))
		if err != nil {
			return fmt.Errorf("record event: %w", err)
		}

		result = newActionResult(ev, who.id, tr.To)
		return nil
	})
	if err != nil {
		return nil, err
	}

	attrs := []any{
		slog.String("article_id", result.ArticleID.String()),
		slog.String("actor_id", who.id.String()),
		slog.String("event", op.String()),
		slog.String("status", result.Status.String()),
		slog.String("event_id", result.EventID.String()),
	}
	if result.SnapshotID != nil {
		attrs = append(attrs, slog.String("snapshot_id", result.SnapshotID.String()))
	}
	s.log.InfoContext(ctx, "moderation operation applied", attrs...)

	return result, nil
}
