package domain

// Effects lists the entity mutations and checks a transition requires.
type Effects struct {
	// CheckCooldown rejects the operation while the submit cooldown runs.
	CheckCooldown bool
	// CheckFingerprint rejects the operation when content is unchanged
	// since the latest snapshot.
	CheckFingerprint bool
	// CreateSnapshot appends a pending snapshot of the current content.
	CreateSnapshot bool
	// RequireSnapshot fails with ErrMissingSnapshot when the article has
	// no snapshot history.
	RequireSnapshot bool
	// ResolveSnapshot is the sub-status written to the latest snapshot.
	// Empty leaves the snapshot untouched.
	ResolveSnapshot SnapshotStatus
	// UpsertMirror copies the latest snapshot into the published mirror.
	UpsertMirror bool
	// DeleteMirror removes the published mirror if one exists.
	DeleteMirror bool
	// SoftDelete sets the article's soft-delete flag.
	SoftDelete bool
	// StampModeration sets last_moderation_at to the operation time.
	StampModeration bool
}

// Transition is one legal edge of the article lifecycle.
type Transition struct {
	Op   EventKind
	From ArticleStatus
	To   ArticleStatus
	Effects
}

type rule struct {
	allowed func(ArticleStatus) bool
	to      ArticleStatus
	effects Effects
}

func only(s ArticleStatus) func(ArticleStatus) bool {
	return func(from ArticleStatus) bool { return from == s }
}

// anyLive matches every status except Pending and Deleted.
// Deleted is terminal: a soft-deleted row must keep status DELETED, which
// the articles CHECK constraint ties to is_deleted.
func anyLive(from ArticleStatus) bool {
	return from != ArticleStatusPending && from != ArticleStatusDeleted
}

var rules = map[EventKind]rule{
	EventKindSubmit: {
		allowed: anyLive,
		to:      ArticleStatusPending,
		effects: Effects{
			CheckCooldown:    true,
			CheckFingerprint: true,
			CreateSnapshot:   true,
		},
	},
	EventKindWithdraw: {
		allowed: only(ArticleStatusPending),
		to:      ArticleStatusDraft,
		effects: Effects{
			RequireSnapshot: true,
			ResolveSnapshot: SnapshotStatusWithdrawn,
		},
	},
	EventKindApprove: {
		allowed: only(ArticleStatusPending),
		to:      ArticleStatusPublished,
		effects: Effects{
			RequireSnapshot: true,
			ResolveSnapshot: SnapshotStatusApproved,
			UpsertMirror:    true,
			StampModeration: true,
		},
	},
	EventKindReject: {
		allowed: only(ArticleStatusPending),
		to:      ArticleStatusRejected,
		effects: Effects{
			RequireSnapshot: true,
			ResolveSnapshot: SnapshotStatusRejected,
			StampModeration: true,
		},
	},
	EventKindUnpublish: {
		allowed: only(ArticleStatusPublished),
		to:      ArticleStatusUnpublished,
		effects: Effects{
			RequireSnapshot: true,
			StampModeration: true,
		},
	},
	EventKindDelete: {
		allowed: anyLive,
		to:      ArticleStatusDeleted,
		effects: Effects{
			DeleteMirror: true,
			SoftDelete:   true,
		},
	},
}

// Plan resolves the transition for op applied to an article in status from.
// It returns a *TransitionError when the edge does not exist.
func Plan(from ArticleStatus, op EventKind) (Transition, error) {
	r, ok := rules[op]
	if !ok || !from.IsValid() || !r.allowed(from) {
		return Transition{}, &TransitionError{From: from, Op: op}
	}
	return Transition{Op: op, From: from, To: r.to, Effects: r.effects}, nil
}

// CanApply reports whether op is legal from status from.
func CanApply(from ArticleStatus, op EventKind) bool {
	_, err := Plan(from, op)
	return err == nil
}

// AvailableOps lists the operations legal from status from, in lifecycle order.
func AvailableOps(from ArticleStatus) []EventKind {
	var ops []EventKind
	for _, op := range EventKinds {
		if CanApply(from, op) {
			ops = append(ops, op)
		}
	}
	return ops
}
