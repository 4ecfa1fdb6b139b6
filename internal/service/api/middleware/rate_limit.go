package middleware

import (
	"fmt"
	"sync"
	"time"

	"github.com/darkkaiser/dnf-profile-server/internal/service/api/constants"
	"github.com/darkkaiser/dnf-profile-server/internal/service/api/httputil"
	applog "github.com/darkkaiser/dnf-profile-server/pkg/log"
	"github.com/labstack/echo/v4"
	"golang.org/x/time/rate"
)

const (
	// maxIPRateLimiters 메모리에 유지하는 IP별 Limiter의 최대 개수
	maxIPRateLimiters = 10000

	// limiterIdleTTL 이 시간 동안 요청이 없던 IP의 Limiter는 정리 대상이 됩니다.
	limiterIdleTTL = 10 * time.Minute

	// retryAfterSeconds 429 응답의 Retry-After 헤더 값(초)
	retryAfterSeconds = "1"
)

type limiterEntry struct {
	limiter  *rate.Limiter
	lastSeen time.Time
}

// ipRateLimiter IP 주소별 Token Bucket Limiter를 관리합니다.
type ipRateLimiter struct {
	mu       sync.Mutex
	limiters map[string]*limiterEntry
	rate     rate.Limit
	burst    int

	now func() time.Time
}

func newIPRateLimiter(requestsPerSecond int, burst int) *ipRateLimiter {
	return &ipRateLimiter{
		limiters: make(map[string]*limiterEntry),
		rate:     rate.Limit(requestsPerSecond),
		burst:    burst,
		now:      time.Now,
	}
}

// allow ip의 토큰을 하나 소비합니다. 토큰이 없으면 false를 반환합니다.
func (i *ipRateLimiter) allow(ip string) bool {
	i.mu.Lock()
	defer i.mu.Unlock()

	now := i.now()

	entry, exists := i.limiters[ip]
	if !exists {
		if len(i.limiters) >= maxIPRateLimiters {
			i.evict(now)
		}

		entry = &limiterEntry{limiter: rate.NewLimiter(i.rate, i.burst)}
		i.limiters[ip] = entry
	}
	entry.lastSeen = now

	return entry.limiter.AllowN(now, 1)
}

// evict 유휴 상태인 Limiter를 정리합니다. 정리할 대상이 없으면 임의의 항목 하나를 제거합니다.
// 호출자는 i.mu를 보유하고 있어야 합니다.
func (i *ipRateLimiter) evict(now time.Time) {
	for ip, entry := range i.limiters {
		if now.Sub(entry.lastSeen) > limiterIdleTTL {
			delete(i.limiters, ip)
		}
	}

	if len(i.limiters) < maxIPRateLimiters {
		return
	}

	for ip := range i.limiters {
		delete(i.limiters, ip)
		break
	}
}

func (i *ipRateLimiter) size() int {
	i.mu.Lock()
	defer i.mu.Unlock()

	return len(i.limiters)
}

// RateLimiting IP 기반 Rate Limiting 미들웨어를 반환합니다.
//
// 요청마다 헤드리스 브라우저가 실행되므로 한 클라이언트가 서버 자원을 독점하지 못하도록 IP별로 요청 속도를 제한합니다.
// 제한을 초과하면 Retry-After 헤더와 함께 429 응답을 반환합니다.
//
// Panics:
//   - requestsPerSecond 또는 burst가 0 이하인 경우
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

			if !limiter.allow(ip) {
				applog.WithComponentAndFields(constants.ComponentMiddleware, applog.Fields{
					"remote_ip": ip,
					"path":      c.Request().URL.Path,
					"method":    c.Request().Method,
				}).Warn(constants.LogMsgRateLimitExceeded)

				c.Response().Header().Set(echo.HeaderRetryAfter, retryAfterSeconds)

				return httputil.NewTooManyRequestsError(constants.ErrMsgTooManyRequests)
			}

			return next(c)
		}
	}
}
