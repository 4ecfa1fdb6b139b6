package middleware

import (
	"fmt"
	"net/http"
	"runtime"

	apperrors "github.com/darkkaiser/dnf-profile-server/internal/pkg/errors"
	"github.com/darkkaiser/dnf-profile-server/internal/service/api/constants"
	applog "github.com/darkkaiser/dnf-profile-server/pkg/log"
	"github.com/labstack/echo/v4"
)

// stackBufferSize panic 발생 시 스택 트레이스를 저장할 버퍼 크기 (4KB)
const stackBufferSize = 4 << 10

// PanicRecovery 핸들러에서 발생한 panic을 복구하고 스택 트레이스와 함께 로깅하는 미들웨어를 반환합니다.
//
// 복구된 panic은 Internal 타입 에러로 변환되어 전역 에러 핸들러에서 500 응답으로 처리됩니다.
func PanicRecovery() echo.MiddlewareFunc {
	return func(next echo.HandlerFunc) echo.HandlerFunc {
		return func(c echo.Context) (returnErr error) {
			defer func() {
				r := recover()
				if r == nil {
					return
				}
				if r == http.ErrAbortHandler {
					panic(r)
				}

				err, ok := r.(error)
				if !ok {
					err = apperrors.New(apperrors.Internal, fmt.Sprintf("%v", r))
				} else {
					err = apperrors.Wrap(err, apperrors.Internal, "핸들러 실행 중 panic이 발생하였습니다")
				}

				stack := make([]byte, stackBufferSize)
				length := runtime.Stack(stack, false)

				applog.WithComponentAndFields(constants.ComponentMiddleware, applog.Fields{
					"error":      err,
					"path":       c.Request().URL.Path,
					"stack":      string(stack[:length]),
					"request_id": c.Response().Header().Get(echo.HeaderXRequestID),
				}).Error(constants.LogMsgPanicRecovered)

				returnErr = err
			}()

			return next(c)
		}
	}
}
