package notification

import (
	apperrors "github.com/darkkaiser/dnf-profile-server/internal/pkg/errors"
)

var (
	// ErrServiceNotRunning 알림 서비스가 시작되지 않았거나 이미 종료되었을 때 반환되는 에러입니다.
	ErrServiceNotRunning = apperrors.New(apperrors.Unavailable, "알림 서비스가 실행 중이 아닙니다")

	// ErrBotNotInitialized 텔레그램 봇 클라이언트가 초기화되지 않았을 때 반환되는 에러입니다.
	ErrBotNotInitialized = apperrors.New(apperrors.Internal, "텔레그램 봇 클라이언트가 초기화되지 않았습니다")
)
