package middleware

import (
	"trade-custody/pkg/log"
)

type Middleware struct {
	l       log.Logger
	limiter *rateLimiter
}

// Config holds middleware settings.
type Config struct {
	// RateLimitPerMin is the per-client budget for write endpoints. 0 disables limiting.
	RateLimitPerMin int
}

func New(l log.Logger, cfg Config) Middleware {
	mw := Middleware{l: l}
	if cfg.RateLimitPerMin > 0 {
		mw.limiter = newRateLimiter(cfg.RateLimitPerMin)
	}
	return mw
}
