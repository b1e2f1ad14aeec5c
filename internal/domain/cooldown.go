package domain

import "time"

// DefaultSubmitCooldown is the wait after a moderation decision before the
// article may be resubmitted.
const DefaultSubmitCooldown = 6 * time.Hour

// CooldownRemaining returns how long until a submit is allowed again.
// Zero means no cooldown applies. A nil lastModeration means the article
// has never been decided on.
func CooldownRemaining(lastModeration *time.Time, now time.Time, window time.Duration) time.Duration {
	if lastModeration == nil || window <= 0 {
		return 0
	}
	remaining := lastModeration.Add(window).Sub(now)
	if remaining <= 0 {
		return 0
	}
	return remaining
}
