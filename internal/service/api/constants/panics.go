package constants

// 서비스 구성 시 필수 의존성이 누락되었을 때의 패닉 메시지 상수입니다.
const (
	PanicMsgAppConfigRequired          = "AppConfig는 필수입니다"
	PanicMsgProfileServiceRequired     = "ProfileService는 필수입니다"
	PanicMsgNotificationSenderRequired = "NotificationSender는 필수입니다"
	PanicMsgHealthProbeRequired        = "HealthProbe는 필수입니다"

	PanicMsgRateLimitRequestsPerSecondInvalid = "RateLimiting: requestsPerSecond는 양수여야 합니다 (현재값: %d)"
	PanicMsgRateLimitBurstInvalid             = "RateLimiting: burst는 양수여야 합니다 (현재값: %d)"
)
