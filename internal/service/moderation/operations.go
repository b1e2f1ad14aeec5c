package moderation

import (
	"context"

	"github.com/heartmarshall/moderation-backend/internal/domain"
)

// Submit snapshots the article's current content and queues it for review.
// It fails with CooldownActive inside the window after the last decision
// and with NoChange when the content matches the latest snapshot.
func (s *Service) Submit(ctx context.Context, input ActionInput) (*ActionResult, error) {
	return s.apply(ctx, domain.EventKindSubmit, input)
}

// Withdraw takes a pending article back to Draft.
func (s *Service) Withdraw(ctx context.Context, input ActionInput) (*ActionResult, error) {
	return s.apply(ctx, domain.EventKindWithdraw, input)
}

// Approve publishes the pending snapshot, creating or overwriting the
// article's published mirror.
func (s *Service) Approve(ctx context.Context, input ActionInput) (*ActionResult, error) {
	return s.apply(ctx, domain.EventKindApprove, input)
}

// Reject declines the pending snapshot.
func (s *Service) Reject(ctx context.Context, input ActionInput) (*ActionResult, error) {
	return s.apply(ctx, domain.EventKindReject, input)
}

// Unpublish takes a published article down. The mirror row is kept.
func (s *Service) Unpublish(ctx context.Context, input ActionInput) (*ActionResult, error) {
	return s.apply(ctx, domain.EventKindUnpublish, input)
}

// Delete soft-deletes the article and removes its published mirror.
func (s *Service) Delete(ctx context.Context, input ActionInput) (*ActionResult, error) {
	return s.apply(ctx, domain.EventKindDelete, input)
}

// Apply dispatches op by kind. It backs transports that address
// operations by name.
func (s *Service) Apply(ctx context.Context, op domain.EventKind, input ActionInput) (*ActionResult, error) {
	if !op.IsValid() {
		return nil, domain.NewValidationError("operation", "unknown operation")
	}
	return s.apply(ctx, op, input)
}
