package api

import (
	"context"
	"errors"
	"net/http"
	"net/http/httptest"
	"testing"
	"time"

	"github.com/darkkaiser/dnf-profile-server/internal/service/api/constants"
	"github.com/labstack/echo/v4"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"github.com/tidwall/gjson"
)

func TestNewHTTPServer_Configuration(t *testing.T) {
	t.Parallel()

	e := NewHTTPServer(HTTPServerConfig{Debug: true, AllowOrigins: []string{"*"}})

	assert.True(t, e.Debug)
	assert.True(t, e.HideBanner)
	assert.Equal(t, constants.DefaultReadTimeout, e.Server.ReadTimeout)
	assert.Equal(t, constants.DefaultReadHeaderTimeout, e.Server.ReadHeaderTimeout)
	assert.Equal(t, constants.DefaultWriteTimeout, e.Server.WriteTimeout)
	assert.Equal(t, constants.DefaultIdleTimeout, e.Server.IdleTimeout)
}

func TestNewHTTPServer_WriteTimeout(t *testing.T) {
	t.Parallel()

	tests := []struct {
		name           string
		requestTimeout time.Duration
		want           time.Duration
	}{
		{name: "기본 요청 제한 시간", requestTimeout: 0, want: constants.DefaultWriteTimeout},
		{name: "짧은 요청 제한 시간", requestTimeout: 30 * time.Second, want: constants.DefaultWriteTimeout},
		{
			name:           "경계: 요청 마감과 기본 쓰기 마감 사이 여유가 정확히 맞음",
			requestTimeout: constants.DefaultWriteTimeout - constants.RequestTimeoutGrace - constants.WriteTimeoutGrace,
			want:           constants.DefaultWriteTimeout,
		},
		{
			name:           "경계: 여유가 1초 부족하면 쓰기 마감을 늘림",
			requestTimeout: constants.DefaultWriteTimeout - constants.RequestTimeoutGrace - constants.WriteTimeoutGrace + time.Second,
			want:           constants.DefaultWriteTimeout + time.Second,
		},
		{
			name:           "긴 요청 제한 시간",
			requestTimeout: 180 * time.Second,
			want:           180*time.Second + constants.RequestTimeoutGrace + constants.WriteTimeoutGrace,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			t.Parallel()

			e := NewHTTPServer(HTTPServerConfig{AllowOrigins: []string{"*"}, RequestTimeout: tt.requestTimeout})

			assert.Equal(t, tt.want, e.Server.WriteTimeout)

			// 요청 컨텍스트가 먼저 만료되어야 500 응답을 쓸 수 있습니다.
			requestDeadline := tt.requestTimeout
			if requestDeadline == 0 {
				requestDeadline = constants.DefaultRequestTimeout
			}
			assert.Greater(t, e.Server.WriteTimeout, requestDeadline+constants.RequestTimeoutGrace)
		})
	}
}

func TestNewHTTPServer_Middleware(t *testing.T) {
	t.Parallel()

	t.Run("보안 헤더와 Request ID", func(t *testing.T) {
		t.Parallel()

		e := NewHTTPServer(HTTPServerConfig{AllowOrigins: []string{"*"}})
		e.GET("/", func(c echo.Context) error { return c.String(http.StatusOK, "ok") })

		rec := httptest.NewRecorder()
		e.ServeHTTP(rec, httptest.NewRequest(http.MethodGet, "/", nil))

		assert.Equal(t, http.StatusOK, rec.Code)
		assert.Empty(t, rec.Header().Get(echo.HeaderServer))
		assert.NotEmpty(t, rec.Header().Get(echo.HeaderXRequestID))
		assert.Equal(t, "nosniff", rec.Header().Get(echo.HeaderXContentTypeOptions))
	})

	t.Run("등록되지 않은 경로는 404 Not found", func(t *testing.T) {
		t.Parallel()

		e := NewHTTPServer(HTTPServerConfig{AllowOrigins: []string{"*"}})

		rec := httptest.NewRecorder()
		e.ServeHTTP(rec, httptest.NewRequest(http.MethodGet, "/api/unknown", nil))

		assert.Equal(t, http.StatusNotFound, rec.Code)
		assert.JSONEq(t, `{"success":false,"message":"Not found"}`, rec.Body.String())
	})

	t.Run("핸들러 panic은 500 Internal error", func(t *testing.T) {
		t.Parallel()

		e := NewHTTPServer(HTTPServerConfig{AllowOrigins: []string{"*"}})
		e.GET("/panic", func(c echo.Context) error { panic("boom") })

		rec := httptest.NewRecorder()
		e.ServeHTTP(rec, httptest.NewRequest(http.MethodGet, "/panic", nil))

		assert.Equal(t, http.StatusInternalServerError, rec.Code)
		assert.Equal(t, constants.ErrMsgInternal, gjson.Get(rec.Body.String(), "message").String())
	})

	t.Run("요청 컨텍스트에 마감 시간이 설정됨", func(t *testing.T) {
		t.Parallel()

		e := NewHTTPServer(HTTPServerConfig{AllowOrigins: []string{"*"}, RequestTimeout: 10 * time.Second})

		var remaining time.Duration
		e.GET("/", func(c echo.Context) error {
			deadline, ok := c.Request().Context().Deadline()
			require.True(t, ok)
			remaining = time.Until(deadline)
			return c.NoContent(http.StatusNoContent)
		})

		rec := httptest.NewRecorder()
		e.ServeHTTP(rec, httptest.NewRequest(http.MethodGet, "/", nil))

		assert.Equal(t, http.StatusNoContent, rec.Code)
		assert.InDelta(t, float64(10*time.Second+constants.RequestTimeoutGrace), float64(remaining), float64(time.Second))
	})

	t.Run("마감 시간 초과는 503이 아닌 500", func(t *testing.T) {
		t.Parallel()

		e := NewHTTPServer(HTTPServerConfig{AllowOrigins: []string{"*"}, RequestTimeout: time.Millisecond})
		e.GET("/slow", func(c echo.Context) error {
			<-c.Request().Context().Done()
			err := c.Request().Context().Err()
			require.True(t, errors.Is(err, context.DeadlineExceeded))
			return echo.NewHTTPError(http.StatusInternalServerError, constants.ErrMsgInternal).WithInternal(err)
		})

		rec := httptest.NewRecorder()
		e.ServeHTTP(rec, httptest.NewRequest(http.MethodGet, "/slow", nil))

		assert.Equal(t, http.StatusInternalServerError, rec.Code)
	})

	t.Run("CORS는 GET만 허용", func(t *testing.T) {
		t.Parallel()

		e := NewHTTPServer(HTTPServerConfig{AllowOrigins: []string{"https://dnf.example.com"}})
		e.GET("/", func(c echo.Context) error { return c.String(http.StatusOK, "ok") })

		req := httptest.NewRequest(http.MethodOptions, "/", nil)
		req.Header.Set(echo.HeaderOrigin, "https://dnf.example.com")
		req.Header.Set(echo.HeaderAccessControlRequestMethod, http.MethodGet)
		rec := httptest.NewRecorder()
		e.ServeHTTP(rec, req)

		assert.Equal(t, http.StatusNoContent, rec.Code)
		assert.Equal(t, "https://dnf.example.com", rec.Header().Get(echo.HeaderAccessControlAllowOrigin))
		assert.Equal(t, http.MethodGet, rec.Header().Get(echo.HeaderAccessControlAllowMethods))
	})

	t.Run("요청 제한 초과는 429", func(t *testing.T) {
		t.Parallel()

		e := NewHTTPServer(HTTPServerConfig{AllowOrigins: []string{"*"}, RateLimitPerSecond: 1, RateLimitBurst: 1})
		e.GET("/", func(c echo.Context) error { return c.String(http.StatusOK, "ok") })

		codes := make([]int, 0, 2)
		for i := 0; i < 2; i++ {
			rec := httptest.NewRecorder()
			e.ServeHTTP(rec, httptest.NewRequest(http.MethodGet, "/", nil))
			codes = append(codes, rec.Code)
		}

		assert.Equal(t, []int{http.StatusOK, http.StatusTooManyRequests}, codes)
	})
}
