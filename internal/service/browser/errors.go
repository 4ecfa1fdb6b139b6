package browser

import (
	"context"
	"errors"
	"fmt"

	apperrors "github.com/darkkaiser/dnf-profile-server/internal/pkg/errors"
)

var (
	// ErrPageNotReady 추출을 시작하기 전 페이지의 기준 요소를 찾지 못했을 때 반환되는 에러입니다.
	// 개별 필드의 값 없음과는 구분되며, 클라이언트에는 500으로 응답합니다.
	ErrPageNotReady = apperrors.New(apperrors.Unavailable, "페이지가 준비되지 않았습니다")

	// ErrElementNotFound 캡처 대상 요소가 페이지에 존재하지 않을 때 반환되는 에러입니다.
	ErrElementNotFound = apperrors.New(apperrors.NotFound, "대상 요소를 찾을 수 없습니다")
)

func newPageNotReadyError(selector string, cause error) error {
	return apperrors.Wrap(ErrPageNotReady, apperrors.Unavailable, fmt.Sprintf("준비 셀렉터('%s')를 기다리는 중 실패하였습니다 (원인: %v)", selector, cause))
}

func newElementNotFoundError(selector string) error {
	return apperrors.Wrap(ErrElementNotFound, apperrors.NotFound, fmt.Sprintf("캡처 대상 요소('%s')가 페이지에 존재하지 않습니다", selector))
}

// wrapStepError 브라우저 작업 에러를 분류합니다. 제한 시간 초과는 Timeout, 그 외는 fallback 타입으로 감쌉니다.
func wrapStepError(err error, fallback apperrors.ErrorType, message string) error {
	if errors.Is(err, context.DeadlineExceeded) {
		return apperrors.Wrap(err, apperrors.Timeout, message+" (제한 시간 초과)")
	}
	return apperrors.Wrap(err, fallback, message)
}
