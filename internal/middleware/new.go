package middleware

import (
	"cashback-advisor/config"
	"cashback-advisor/pkg/log"
)

type Middleware struct {
	l       log.Logger
	limiter *rateLimiter // nil when rate limiting is disabled
}

func New(l log.Logger, rateCfg config.RateLimitConfig) Middleware {
	mw := Middleware{l: l}
	if rateCfg.Enabled && rateCfg.RequestsPerMin > 0 {
		mw.limiter = newRateLimiter(rateCfg.RequestsPerMin, rateCfg.Burst)
	}
	return mw
}
