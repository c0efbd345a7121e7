package middleware

import (
	"fmt"
	"sync"

	"github.com/darkkaiser/snowflake-server/internal/service/api/constants"
	"github.com/darkkaiser/snowflake-server/internal/service/api/httputil"
	applog "github.com/darkkaiser/snowflake-server/pkg/log"
	"github.com/labstack/echo/v4"
	"golang.org/x/time/rate"
)

// ipRateLimiter 클라이언트 IP마다 golang.org/x/time/rate의 토큰 버킷을 하나씩 배정합니다.
// 한 번 만들어진 버킷은 프로세스가 끝날 때까지 유지됩니다.
type ipRateLimiter struct {
	rate  rate.Limit
	burst int

	mu       sync.Mutex
	limiters map[string]*rate.Limiter
}

func newIPRateLimiter(requestsPerSecond int, burst int) *ipRateLimiter {
	return &ipRateLimiter{
		rate:     rate.Limit(requestsPerSecond),
		burst:    burst,
		limiters: make(map[string]*rate.Limiter),
	}
}

// allow ip의 버킷에서 토큰 하나를 꺼냅니다. 버킷이 비어 있으면 false를 반환합니다.
func (l *ipRateLimiter) allow(ip string) bool {
	l.mu.Lock()
	limiter, ok := l.limiters[ip]
	if !ok {
		limiter = rate.NewLimiter(l.rate, l.burst)
		l.limiters[ip] = limiter
	}
	l.mu.Unlock()

	return limiter.Allow()
}

// RateLimiting IP 기반 Rate Limiting 미들웨어를 반환합니다.
//
// 제한을 초과한 요청에는 Retry-After: 1 헤더와 함께 429 Too Many Requests를 응답합니다.
// requestsPerSecond 또는 burst가 0 이하이면 panic이 발생합니다.
func RateLimiting(requestsPerSecond int, burst int) echo.MiddlewareFunc {
	if requestsPerSecond <= 0 {
		panic(fmt.Sprintf(constants.PanicMsgRateLimitRequestsPerSecondInvalid, requestsPerSecond))
	}
	if burst <= 0 {
		panic(fmt.Sprintf(constants.PanicMsgRateLimitBurstInvalid, burst))
	}

	limiter := newIPRateLimiter(requestsPerSecond, burst)

	return func(next echo.HandlerFunc) echo.HandlerFunc {
		return func(c echo.Context) error {
			ip := c.RealIP()

			if limiter.allow(ip) {
				return next(c)
			}

			applog.WithComponentAndFields(constants.ComponentMiddleware, applog.Fields{
				"remote_ip": ip,
				"path":      c.Request().URL.Path,
				"method":    c.Request().Method,
			}).Warn(constants.LogMsgRateLimitExceeded)

			c.Response().Header().Set(constants.RetryAfter, "1")

			return httputil.NewTooManyRequestsError(constants.ErrMsgTooManyRequests)
		}
	}
}
