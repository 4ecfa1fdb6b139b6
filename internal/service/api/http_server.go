package api

import (
	"net/http"
	"time"

	"github.com/darkkaiser/dnf-profile-server/internal/service/api/constants"
	"github.com/darkkaiser/dnf-profile-server/internal/service/api/httputil"
	appmiddleware "github.com/darkkaiser/dnf-profile-server/internal/service/api/middleware"
	applog "github.com/darkkaiser/dnf-profile-server/pkg/log"
	"github.com/labstack/echo/v4"
	"github.com/labstack/echo/v4/middleware"
)

// HTTPServerConfig HTTP 서버 생성에 필요한 설정을 정의합니다.
type HTTPServerConfig struct {
	// Debug Echo 프레임워크의 디버그 모드 활성화 여부
	Debug bool

	// AllowOrigins CORS에서 허용할 Origin 목록
	AllowOrigins []string

	// RequestTimeout 요청 하나가 브라우저 작업에 쓸 수 있는 최대 시간
	// 미들웨어는 여기에 constants.RequestTimeoutGrace를 더한 시간으로 요청 컨텍스트를 제한합니다.
	// 0이면 constants.DefaultRequestTimeout을 사용합니다.
	RequestTimeout time.Duration

	// RateLimitPerSecond, RateLimitBurst IP별 요청 제한. 0이면 기본값을 사용합니다.
	RateLimitPerSecond int
	RateLimitBurst     int
}

// NewHTTPServer 설정된 미들웨어를 포함한 Echo 인스턴스를 생성합니다.
//
// 미들웨어는 다음 순서로 적용됩니다:
//
//  1. PanicRecovery - 핸들러와 이후 미들웨어의 panic을 복구하고 500으로 응답
//  2. RequestID - 요청마다 X-Request-ID 부여
//  3. Server 헤더 제거
//  4. HTTPLogger - 요청/응답 로깅 (429, 500 응답도 기록되도록 제한 미들웨어보다 앞에 위치)
//  5. RateLimiting - IP별 요청 제한. 요청마다 브라우저를 띄우므로 제한을 낮게 둡니다.
//  6. BodyLimit - GET 전용 API이므로 작은 값으로 제한
//  7. ContextTimeout - 요청 컨텍스트에 마감 시간을 설정
//  8. CORS - GET 요청만 허용
//  9. Secure - 보안 헤더 추가
//
// ContextTimeout은 응답을 대신 쓰지 않고 컨텍스트만 취소합니다. 핸들러가 브라우저를 반드시
// 해제한 뒤 직접 응답하며, 마감 시간 초과는 503이 아닌 500 Internal error로 응답됩니다.
//
// 라우트 설정은 포함되지 않으며, 반환된 Echo 인스턴스에 별도로 설정해야 합니다.
func NewHTTPServer(cfg HTTPServerConfig) *echo.Echo {
	e := echo.New()

	e.Debug = cfg.Debug
	e.HideBanner = true

	timeout := cfg.RequestTimeout
	if timeout <= 0 {
		timeout = constants.DefaultRequestTimeout
	}
	contextTimeout := timeout + constants.RequestTimeoutGrace

	e.Server.ReadTimeout = constants.DefaultReadTimeout
	e.Server.ReadHeaderTimeout = constants.DefaultReadHeaderTimeout
	// 쓰기 마감이 요청 마감보다 먼저 오면 오류 응답도 쓰지 못하고 연결이 끊깁니다.
	e.Server.WriteTimeout = max(constants.DefaultWriteTimeout, contextTimeout+constants.WriteTimeoutGrace)
	e.Server.IdleTimeout = constants.DefaultIdleTimeout

	e.Logger = appmiddleware.Logger{Logger: applog.StandardLogger()}

	e.HTTPErrorHandler = httputil.ErrorHandler

	rps := cfg.RateLimitPerSecond
	if rps == 0 {
		rps = constants.DefaultRateLimitPerSecond
	}
	burst := cfg.RateLimitBurst
	if burst == 0 {
		burst = constants.DefaultRateLimitBurst
	}

	// 1. Panic 복구
	e.Use(appmiddleware.PanicRecovery())
	// 2. Request ID
	e.Use(middleware.RequestID())
	// 3. Server 헤더 제거
	e.Use(func(next echo.HandlerFunc) echo.HandlerFunc {
		return func(c echo.Context) error {
			c.Response().Header().Set(echo.HeaderServer, "")
			return next(c)
		}
	})
	// 4. HTTP 로깅
	e.Use(appmiddleware.HTTPLogger())
	// 5. Rate Limiting
	e.Use(appmiddleware.RateLimiting(rps, burst))
	// 6. Body Limit
	e.Use(middleware.BodyLimit(constants.DefaultMaxBodySize))
	// 7. Context Timeout
	e.Use(middleware.ContextTimeoutWithConfig(middleware.ContextTimeoutConfig{
		Timeout: contextTimeout,
		ErrorHandler: func(err error, _ echo.Context) error {
			return err
		},
	}))
	// 8. CORS 설정
	e.Use(middleware.CORSWithConfig(middleware.CORSConfig{
		AllowOrigins: cfg.AllowOrigins,
		AllowMethods: []string{http.MethodGet},
	}))
	// 9. 보안 헤더
	e.Use(middleware.Secure())

	return e
}
