// Package mark 알림 메시지에 사용하는 이모지 상수를 관리합니다.
package mark

// Mark 이모지 상수 타입입니다.
type Mark string

const (
	// Alert 요청 처리 중 예상하지 못한 오류
	Alert Mark = "🚨"

	// Warning 브라우저 상태 점검 실패
	Warning Mark = "⚠️"

	// Recovered 브라우저 상태 점검 복구
	Recovered Mark = "✅"
)

// WithSpace 마크 앞에 공백을 붙여 반환합니다. 빈 마크는 빈 문자열을 반환합니다.
func (m Mark) WithSpace() string {
	if m == "" {
		return ""
	}
	return " " + string(m)
}

func (m Mark) String() string {
	return string(m)
}
