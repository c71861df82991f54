package config

import (
	"golang.org/x/text/language"

	errs "github.com/kunhq/kundocs/pkg/errors"
)

// Validate checks enumerated values and required fields.
func (c *Config) Validate() error {
	switch c.Cache.Backend {
	case BackendFile, BackendRedis, BackendNone:
	default:
		return errs.New(errs.ErrCodeInvalidInput,
			"cache.backend must be one of file, redis, none (got %q)", c.Cache.Backend)
	}
	if c.Cache.Backend == BackendFile && c.Cache.Dir == "" {
		return errs.New(errs.ErrCodeInvalidInput, "cache.dir is required for the file backend")
	}
	if c.Cache.Backend == BackendRedis && c.Redis.Addr == "" {
		return errs.New(errs.ErrCodeInvalidInput, "redis.addr is required for the redis backend")
	}
	if c.Cache.TTL < 0 {
		return errs.New(errs.ErrCodeInvalidInput, "cache.ttl cannot be negative")
	}
	if _, err := language.Parse(c.Lang); err != nil {
		return errs.Wrap(errs.ErrCodeInvalidInput, err, "invalid lang %q", c.Lang)
	}
	if c.Server.Addr == "" {
		return errs.New(errs.ErrCodeInvalidInput, "server.addr cannot be empty")
	}
	return nil
}
