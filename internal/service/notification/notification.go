// Package notification 운영자에게 알림 메시지를 발송합니다.
//
// 요청 처리 중 예상하지 못한 오류나 브라우저 상태 점검 결과가 변경되었을 때 사용되며,
// 메시지는 내부 큐에 적재된 뒤 별도의 고루틴에서 순차적으로 발송됩니다.
package notification

// Sender 알림 메시지를 발송하는 인터페이스입니다.
//
// 모든 메서드는 블로킹되지 않으며, 반환값은 큐 적재 성공 여부입니다. 실제 발송 결과는 로그로만 확인할 수 있습니다.
type Sender interface {
	// NotifyDefault 일반 알림 메시지를 발송합니다.
	NotifyDefault(message string) bool

	// NotifyDefaultWithError 오류 성격의 알림 메시지를 발송합니다.
	NotifyDefaultWithError(message string) bool
}

// HealthChecker 알림 서비스의 상태를 확인하는 인터페이스입니다.
type HealthChecker interface {
	// Enabled 알림 채널이 설정에서 활성화되어 있는지 반환합니다.
	Enabled() bool

	// Health 알림 서비스가 메시지를 발송할 수 있는 상태이면 nil을 반환합니다.
	Health() error
}

// SenderHealthChecker Sender와 HealthChecker를 모두 구현하는 인터페이스입니다.
type SenderHealthChecker interface {
	Sender
	HealthChecker
}
