package constants

// 헬스체크 및 시스템 상태 관련 상수입니다.
const (
	// ------------------------------------------------------------------------------------------------
	// 헬스체크 상태
	// ------------------------------------------------------------------------------------------------

	HealthStatusHealthy   = "healthy"
	HealthStatusUnhealthy = "unhealthy"

	// HealthStatusUnknown 아직 점검하지 않았거나 점검이 비활성화된 의존성
	HealthStatusUnknown = "unknown"

	// ------------------------------------------------------------------------------------------------
	// 외부 의존성
	// ------------------------------------------------------------------------------------------------

	DependencyBrowser             = "browser"
	DependencyNotificationService = "notification_service"

	MsgDepStatusHealthy    = "정상 작동 중"
	MsgDepStatusDisabled   = "설정에서 비활성화됨"
	MsgDepStatusNotChecked = "아직 점검되지 않음"
)
