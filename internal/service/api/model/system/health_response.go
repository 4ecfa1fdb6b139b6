package system

// DependencyStatus 외부 의존성 헬스체크 결과
type DependencyStatus struct {
	// 헬스체크 상태: healthy, unhealthy, unknown
	Status string `json:"status" example:"healthy"`
	// 마지막 점검의 응답 지연시간(ms)
	LatencyMs int64 `json:"latency_ms,omitempty" example:"850"`
	// 마지막 점검 시각(RFC3339)
	CheckedAt string `json:"checked_at,omitempty" example:"2025-12-01T14:00:00+09:00"`
	// 상태 상세 정보 또는 에러 메시지
	Message string `json:"message,omitempty" example:"정상 작동 중"`
}

// HealthResponse 서버 헬스체크 응답
type HealthResponse struct {
	// 전체 헬스체크 상태: healthy, unhealthy
	Status string `json:"status" example:"healthy"`
	// 서버 가동 시간(초)
	Uptime int64 `json:"uptime" example:"3600"`
	// 외부 의존성별 헬스체크 결과 (키: 의존성 이름)
	Dependencies map[string]DependencyStatus `json:"dependencies,omitempty"`
}
