package config

import (
	"fmt"
	"net/url"

	"golang.org/x/crypto/bcrypt"
)

// Validate performs business-rule validation on the loaded configuration.
// It must be called after loading; Load calls it automatically.
func (c *Config) Validate() error {
	if len(c.Auth.JWTSecret) < 32 {
		return fmt.Errorf("auth.jwt_secret must be at least 32 characters (got %d)", len(c.Auth.JWTSecret))
	}

	if c.Auth.PasswordHashCost < bcrypt.MinCost || c.Auth.PasswordHashCost > bcrypt.MaxCost {
		return fmt.Errorf("auth.password_hash_cost must be between %d and %d (got %d)",
			bcrypt.MinCost, bcrypt.MaxCost, c.Auth.PasswordHashCost)
	}

	if err := c.App.validate(); err != nil {
		return fmt.Errorf("app: %w", err)
	}

	if err := c.Realtime.validate(); err != nil {
		return fmt.Errorf("realtime: %w", err)
	}

	return nil
}

func (a *AppConfig) validate() error {
	u, err := url.Parse(a.PublicBaseURL)
	if err != nil || u.Scheme == "" || u.Host == "" {
		return fmt.Errorf("public_base_url must be an absolute URL (got %q)", a.PublicBaseURL)
	}

	switch a.DefaultLocale {
	case "en", "bn":
	default:
		return fmt.Errorf("default_locale must be en or bn (got %q)", a.DefaultLocale)
	}

	return nil
}

func (r *RealtimeConfig) validate() error {
	switch r.Driver {
	case RealtimeDriverMemory:
	case RealtimeDriverRedis:
		if r.RedisAddr == "" {
			return fmt.Errorf("redis_addr is required for the redis driver")
		}
	default:
		return fmt.Errorf("driver must be %q or %q (got %q)", RealtimeDriverMemory, RealtimeDriverRedis, r.Driver)
	}

	if r.SubscriberBuffer <= 0 {
		return fmt.Errorf("subscriber_buffer must be > 0 (got %d)", r.SubscriberBuffer)
	}
	if r.HeartbeatInterval <= 0 {
		return fmt.Errorf("heartbeat_interval must be > 0 (got %v)", r.HeartbeatInterval)
	}

	return nil
}
