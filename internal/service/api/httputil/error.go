package httputil

import (
	"errors"
	"net/http"

	"github.com/darkkaiser/dnf-profile-server/internal/service/api/constants"
	"github.com/darkkaiser/dnf-profile-server/internal/service/api/model/response"
	applog "github.com/darkkaiser/dnf-profile-server/pkg/log"
	"github.com/labstack/echo/v4"
)

// ErrorHandler Echo 프레임워크의 전역 에러 핸들러입니다.
//
// 모든 에러를 {success:false, message} 형식으로 변환하여 반환합니다.
// 5xx 응답은 내부 정보를 노출하지 않도록 항상 고정된 메시지를 사용하며, 상세 내용은 로그로만 남깁니다.
func ErrorHandler(err error, c echo.Context) {
	code := http.StatusInternalServerError
	message := constants.ErrMsgInternal

	var he *echo.HTTPError
	if errors.As(err, &he) {
		code = he.Code
		switch msg := he.Message.(type) {
		case response.ErrorResponse:
			message = msg.Message
		case string:
			message = msg
			// 라우터가 만든 404는 Echo 기본 메시지 대신 고정된 메시지를 사용합니다.
			if code == http.StatusNotFound {
				message = constants.ErrMsgNotFound
			}
		}
	}

	if code >= http.StatusInternalServerError {
		message = constants.ErrMsgInternal
	}

	fields := applog.Fields{
		"path":        c.Request().URL.Path,
		"method":      c.Request().Method,
		"status_code": code,
		"error":       err,
		"remote_ip":   c.RealIP(),
		"request_id":  c.Response().Header().Get(echo.HeaderXRequestID),
	}

	if code >= http.StatusInternalServerError {
		applog.WithComponentAndFields(constants.ComponentErrorHandler, fields).Error(constants.LogMsgHTTP5xxServerError)
	} else if code >= http.StatusBadRequest {
		applog.WithComponentAndFields(constants.ComponentErrorHandler, fields).Warn(constants.LogMsgHTTP4xxClientError)
	}

	// 이미 응답이 전송된 경우 추가 응답을 시도하지 않습니다.
	if c.Response().Committed {
		return
	}

	if c.Request().Method == http.MethodHead {
		_ = c.NoContent(code)
		return
	}

	_ = c.JSON(code, response.NewErrorResponse(message))
}
