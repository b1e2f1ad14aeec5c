package domain

// ArticleStatus is the lifecycle status of an article.
type ArticleStatus string

const (
	ArticleStatusDraft       ArticleStatus = "DRAFT"
	ArticleStatusPending     ArticleStatus = "PENDING"
	ArticleStatusPublished   ArticleStatus = "PUBLISHED"
	ArticleStatusRejected    ArticleStatus = "REJECTED"
	ArticleStatusUnpublished ArticleStatus = "UNPUBLISHED"
	ArticleStatusDeleted     ArticleStatus = "DELETED"
)

// ArticleStatuses lists every status in lifecycle order.
var ArticleStatuses = []ArticleStatus{
	ArticleStatusDraft,
	ArticleStatusPending,
	ArticleStatusPublished,
	ArticleStatusRejected,
	ArticleStatusUnpublished,
	ArticleStatusDeleted,
}

func (s ArticleStatus) String() string { return string(s) }

func (s ArticleStatus) IsValid() bool {
	switch s {
	case ArticleStatusDraft, ArticleStatusPending, ArticleStatusPublished,
		ArticleStatusRejected, ArticleStatusUnpublished, ArticleStatusDeleted:
		return true
	}
	return false
}

// Label returns the human-readable name shown to callers.
func (s ArticleStatus) Label() string {
	switch s {
	case ArticleStatusDraft:
		return "Draft"
	case ArticleStatusPending:
		return "Pending"
	case ArticleStatusPublished:
		return "Published"
	case ArticleStatusRejected:
		return "Rejected"
	case ArticleStatusUnpublished:
		return "Unpublished"
	case ArticleStatusDeleted:
		return "Deleted"
	}
	return string(s)
}

// SnapshotStatus is the moderation sub-status of a snapshot.
type SnapshotStatus string

const (
	SnapshotStatusPending   SnapshotStatus = "PENDING"
	SnapshotStatusWithdrawn SnapshotStatus = "WITHDRAWN"
	SnapshotStatusApproved  SnapshotStatus = "APPROVED"
	SnapshotStatusRejected  SnapshotStatus = "REJECTED"
)

func (s SnapshotStatus) String() string { return string(s) }

func (s SnapshotStatus) IsValid() bool {
	switch s {
	case SnapshotStatusPending, SnapshotStatusWithdrawn, SnapshotStatusApproved, SnapshotStatusRejected:
		return true
	}
	return false
}

// IsFinal reports whether the sub-status has already been decided.
func (s SnapshotStatus) IsFinal() bool {
	return s != SnapshotStatusPending
}

// EventKind names the lifecycle operation recorded by an event.
type EventKind string

const (
	EventKindSubmit    EventKind = "SUBMIT"
	EventKindWithdraw  EventKind = "WITHDRAW"
	EventKindApprove   EventKind = "APPROVE"
	EventKindReject    EventKind = "REJECT"
	EventKindUnpublish EventKind = "UNPUBLISH"
	EventKindDelete    EventKind = "DELETE"
)

// EventKinds lists every moderation operation.
var EventKinds = []EventKind{
	EventKindSubmit,
	EventKindWithdraw,
	EventKindApprove,
	EventKindReject,
	EventKindUnpublish,
	EventKindDelete,
}

func (k EventKind) String() string { return string(k) }

func (k EventKind) IsValid() bool {
	switch k {
	case EventKindSubmit, EventKindWithdraw, EventKindApprove,
		EventKindReject, EventKindUnpublish, EventKindDelete:
		return true
	}
	return false
}

// Label returns the human-readable name shown to callers.
func (k EventKind) Label() string {
	switch k {
	case EventKindSubmit:
		return "Submit"
	case EventKindWithdraw:
		return "Withdraw"
	case EventKindApprove:
		return "Approve"
	case EventKindReject:
		return "Reject"
	case EventKindUnpublish:
		return "Unpublish"
	case EventKindDelete:
		return "Delete"
	}
	return string(k)
}

// UserRole is the role carried in an access token.
type UserRole string

const (
	UserRoleUser      UserRole = "user"
	UserRoleModerator UserRole = "moderator"
	UserRoleAdmin     UserRole = "admin"
)

func (r UserRole) String() string { return string(r) }

func (r UserRole) IsValid() bool {
	switch r {
	case UserRoleUser, UserRoleModerator, UserRoleAdmin:
		return true
	}
	return false
}

// IsModerator reports whether the role may take moderation decisions.
// Admins are moderators.
func (r UserRole) IsModerator() bool {
	return r == UserRoleModerator || r == UserRoleAdmin
}

func (r UserRole) IsAdmin() bool { return r == UserRoleAdmin }
