package config

import "fmt"

// Validate performs business-rule validation on the loaded configuration.
// It must be called after loading; Load calls it automatically.
func (c *Config) Validate() error {
	if len(c.Auth.JWTSecret) < 32 {
		return fmt.Errorf("auth.jwt_secret must be at least 32 characters (got %d)", len(c.Auth.JWTSecret))
	}

	if err := c.Moderation.validate(); err != nil {
		return fmt.Errorf("moderation: %w", err)
	}

	if st := c.Database.StatementTimeout; st < 0 {
		return fmt.Errorf("database.statement_timeout must be >= 0 (got %s)", st)
	} else if st > 0 && st <= c.Moderation.LockTimeout {
		return fmt.Errorf("database.statement_timeout (%s) must exceed moderation.lock_timeout (%s)", st, c.Moderation.LockTimeout)
	}

	if c.RateLimit.ModerationPerMinute <= 0 {
		return fmt.Errorf("rate_limit.moderation_per_minute must be > 0 (got %d)", c.RateLimit.ModerationPerMinute)
	}

	return nil
}

func (m *ModerationConfig) validate() error {
	if m.SubmitCooldown < 0 {
		return fmt.Errorf("submit_cooldown must be >= 0 (got %s)", m.SubmitCooldown)
	}
	if m.LockTimeout <= 0 {
		return fmt.Errorf("lock_timeout must be > 0 (got %s)", m.LockTimeout)
	}
	if m.PurgeRetention <= 0 {
		return fmt.Errorf("purge_retention must be > 0 (got %s)", m.PurgeRetention)
	}
	if m.AnnotationMaxLen <= 0 {
		return fmt.Errorf("annotation_max_len must be > 0 (got %d)", m.AnnotationMaxLen)
	}
	return nil
}
