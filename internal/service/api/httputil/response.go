package httputil

import (
	"net/http"

	"github.com/darkkaiser/dnf-profile-server/internal/service/api/constants"
	"github.com/darkkaiser/dnf-profile-server/internal/service/api/model/response"
	"github.com/labstack/echo/v4"
)

// NewBadRequestError 400 Bad Request 에러를 생성합니다
func NewBadRequestError(message string) *echo.HTTPError {
	return echo.NewHTTPError(http.StatusBadRequest, response.NewErrorResponse(message))
}

// NewNotFoundError 404 Not Found 에러를 생성합니다
func NewNotFoundError(message string) *echo.HTTPError {
	return echo.NewHTTPError(http.StatusNotFound, response.NewErrorResponse(message))
}

// NewTooManyRequestsError 429 Too Many Requests 에러를 생성합니다
func NewTooManyRequestsError(message string) *echo.HTTPError {
	return echo.NewHTTPError(http.StatusTooManyRequests, response.NewErrorResponse(message))
}

// NewInternalServerError 500 Internal Server Error 에러를 생성합니다
func NewInternalServerError(message string) *echo.HTTPError {
	return echo.NewHTTPError(http.StatusInternalServerError, response.NewErrorResponse(message))
}

// NoData 조회 결과가 없음을 200 OK와 함께 반환합니다.
//
// 값이 없는 것은 예상 가능한 결과이므로 에러가 아닌 정상 응답으로 처리합니다.
func NoData(c echo.Context) error {
	return c.JSON(http.StatusOK, response.NewErrorResponse(constants.ErrMsgNoData))
}

// PNG 이미지 바이트를 image/png로 반환합니다.
func PNG(c echo.Context, b []byte) error {
	return c.Blob(http.StatusOK, "image/png", b)
}
